package catalog

import "sync"

// Builtin resolvers, registered by structure family packages from their
// init functions. Every catalog built by NewDefault starts with them.
var (
	builtinMu sync.Mutex
	builtins  []Resolver
)

// RegisterBuiltin records a resolver to be included in every default
// catalog. Structure family packages call this from init; programs pull
// the families in with a blank import.
func RegisterBuiltin(r Resolver) {
	builtinMu.Lock()
	defer builtinMu.Unlock()
	builtins = append(builtins, r)
}

// NewDefault creates a catalog with every builtin resolver registered.
func NewDefault() *Catalog {
	c := New()
	builtinMu.Lock()
	defer builtinMu.Unlock()
	for _, r := range builtins {
		c.RegisterResolver(r)
	}
	return c
}

// Global catalog instance and initialization guard.
var (
	defaultCatalog *Catalog
	defaultOnce    sync.Once
)

// Default returns the process-wide catalog, creating one with the
// builtin resolvers on first call.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = NewDefault()
	})
	return defaultCatalog
}

// InitDefault installs a custom catalog as the process-wide one.
// Must be called before any call to Default() to take effect.
// Safe for concurrent use but only the first call has any effect.
func InitDefault(c *Catalog) {
	defaultOnce.Do(func() {
		defaultCatalog = c
	})
}

// ResetDefault resets the process-wide catalog for testing purposes.
// This is NOT thread-safe and should only be used in tests.
func ResetDefault() {
	defaultOnce = sync.Once{}
	defaultCatalog = nil
}
