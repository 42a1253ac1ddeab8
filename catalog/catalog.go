// Package catalog provides canonical structure instances by name.
//
// The core ring package deliberately does not canonicalize: every call
// to ring.New yields a distinct structure. The catalog layers identity
// on top, so that everything resolving "ZZ" in one process shares one
// integer ring and therefore one set of cached distinguished elements.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/c360studio/algebra/ring"
)

// ErrNotFound is returned by Resolve when no registered instance or
// resolver recognizes a name.
var ErrNotFound = errors.New("structure not found")

// Resolver constructs structures for a family of names, such as "ZZ/n"
// for every modulus n. CanResolve must be cheap; Resolve is only called
// for names CanResolve accepted and runs at most once per name per
// catalog, under singleflight.
type Resolver interface {
	// Family names the resolver for listings and logs.
	Family() string

	// CanResolve reports whether this resolver handles the name.
	CanResolve(name string) bool

	// Resolve constructs the structure for the name.
	Resolve(name string) (*ring.Structure, error)
}

// Catalog maps names to canonical structure instances. Lookups that miss
// the instance table fall through to the registered resolvers, and the
// resolved structure is interned so later lookups return the identical
// instance.
type Catalog struct {
	mu        sync.RWMutex
	instances map[string]*ring.Structure
	resolvers []Resolver
	flight    singleflight.Group
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		instances: make(map[string]*ring.Structure),
	}
}

// Register interns s under name. Registering a second structure under a
// name already taken is an error: canonical identity is the whole point
// of the catalog.
func (c *Catalog) Register(name string, s *ring.Structure) error {
	if name == "" {
		return fmt.Errorf("register structure: empty name")
	}
	if s == nil {
		return fmt.Errorf("register structure %q: nil structure", name)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.instances[name]; ok {
		if existing == s {
			return nil
		}
		return fmt.Errorf("register structure %q: name already bound", name)
	}
	c.instances[name] = s
	return nil
}

// RegisterResolver appends a resolver. Resolvers are consulted in
// registration order; the first whose CanResolve accepts the name wins.
func (c *Catalog) RegisterResolver(r Resolver) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resolvers = append(c.resolvers, r)
}

// Get returns the interned instance for name, without resolving.
func (c *Catalog) Get(name string) (*ring.Structure, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.instances[name]
	return s, ok
}

// Resolve returns the canonical structure for name, constructing and
// interning it through the resolvers on first use. Concurrent resolves
// of the same name share one construction. Unknown names return an
// error wrapping ErrNotFound.
func (c *Catalog) Resolve(name string) (*ring.Structure, error) {
	if s, ok := c.Get(name); ok {
		return s, nil
	}

	v, err, _ := c.flight.Do(name, func() (interface{}, error) {
		// A racing resolve may have interned the name before this
		// flight started.
		if s, ok := c.Get(name); ok {
			return s, nil
		}

		c.mu.RLock()
		resolvers := make([]Resolver, len(c.resolvers))
		copy(resolvers, c.resolvers)
		c.mu.RUnlock()

		for _, r := range resolvers {
			if !r.CanResolve(name) {
				continue
			}
			s, err := r.Resolve(name)
			if err != nil {
				return nil, fmt.Errorf("resolve %q via %s: %w", name, r.Family(), err)
			}
			c.mu.Lock()
			if interned, ok := c.instances[name]; ok {
				c.mu.Unlock()
				return interned, nil
			}
			c.instances[name] = s
			c.mu.Unlock()
			return s, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	})
	if err != nil {
		return nil, err
	}
	return v.(*ring.Structure), nil
}

// Names lists the interned names in sorted order. Names resolvable but
// not yet resolved are not included.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.instances))
	for name := range c.instances {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Families lists the registered resolver families in registration order.
func (c *Catalog) Families() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	families := make([]string, 0, len(c.resolvers))
	for _, r := range c.resolvers {
		families = append(families, r.Family())
	}
	return families
}
