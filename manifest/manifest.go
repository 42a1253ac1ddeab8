// Package manifest loads structure declarations from YAML files and
// populates a catalog with them.
//
// A manifest declares structures by family rather than by Go calls, so
// deployments can describe their working set in data:
//
//	structures:
//	  - kind: modular
//	    modulus: 7
//	  - name: galois
//	    kind: modular
//	    modulus: 7
//	    category: field
//	  - kind: polynomial
//	    base: QQ
//	    variable: t
//
// Declarations build in order and register into a catalog, so later
// declarations can reference earlier ones (or anything the catalog's
// resolvers know) by name.
package manifest

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/algebra/arith"
	"github.com/c360studio/algebra/catalog"
	"github.com/c360studio/algebra/category"
	"github.com/c360studio/algebra/ring"
)

// Declaration kinds.
const (
	KindIntegers   = "integers"
	KindRationals  = "rationals"
	KindModular    = "modular"
	KindPolynomial = "polynomial"
	KindMatrix     = "matrix"
)

// Manifest is one declaration file.
type Manifest struct {
	Structures []Decl `yaml:"structures"`
}

// Decl declares one structure.
type Decl struct {
	// Name is the catalog name to register the structure under.
	// Empty defaults to the structure's own display name.
	Name string `yaml:"name"`

	// Kind selects the family: integers, rationals, modular,
	// polynomial or matrix.
	Kind string `yaml:"kind"`

	// Modulus is the modulus for modular declarations.
	Modulus uint64 `yaml:"modulus"`

	// Base names the coefficient or entry structure for polynomial and
	// matrix declarations, resolved through the catalog.
	Base string `yaml:"base"`

	// Variable is the polynomial variable. Defaults to x.
	Variable string `yaml:"variable"`

	// Dim is the matrix dimension.
	Dim int `yaml:"dim"`

	// Category optionally asserts a lattice tag the built structure
	// must satisfy. Coarser tags are fine; a tag the structure does
	// not reach is a category violation.
	Category string `yaml:"category"`
}

// Validate checks the declaration is structurally complete.
func (d *Decl) Validate() error {
	switch d.Kind {
	case KindIntegers, KindRationals:
	case KindModular:
		if d.Modulus == 0 {
			return fmt.Errorf("modular declaration requires a modulus")
		}
	case KindPolynomial:
		if d.Base == "" {
			return fmt.Errorf("polynomial declaration requires a base")
		}
	case KindMatrix:
		if d.Base == "" {
			return fmt.Errorf("matrix declaration requires a base")
		}
		if d.Dim < 1 {
			return fmt.Errorf("matrix declaration requires a positive dim")
		}
	case "":
		return fmt.Errorf("kind is required")
	default:
		return fmt.Errorf("unknown kind %q", d.Kind)
	}

	if d.Category != "" {
		if _, err := category.Parse(d.Category); err != nil {
			return err
		}
	}
	return nil
}

// Load reads a single manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	for i := range m.Structures {
		if err := m.Structures[i].Validate(); err != nil {
			return nil, fmt.Errorf("manifest %s, structure %d: %w", path, i, err)
		}
	}
	return &m, nil
}

// LoadGlob loads every manifest matching the patterns, which may use
// doublestar globs ("manifests/**/*.yaml"), and concatenates their
// declarations in sorted path order.
func LoadGlob(patterns []string) (*Manifest, error) {
	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad manifest pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				paths = append(paths, match)
			}
		}
	}
	sort.Strings(paths)

	merged := &Manifest{}
	for _, path := range paths {
		m, err := Load(path)
		if err != nil {
			return nil, err
		}
		merged.Structures = append(merged.Structures, m.Structures...)
	}
	return merged, nil
}

// Build constructs every declared structure and registers it in the
// catalog. Declarations build in order; the first failure aborts.
func (m *Manifest) Build(cat *catalog.Catalog) error {
	for i := range m.Structures {
		if err := buildDecl(&m.Structures[i], cat); err != nil {
			return fmt.Errorf("structure %d: %w", i, err)
		}
	}
	return nil
}

func buildDecl(d *Decl, cat *catalog.Catalog) error {
	if err := d.Validate(); err != nil {
		return err
	}

	var (
		s   *ring.Structure
		err error
	)
	switch d.Kind {
	case KindIntegers:
		s = arith.Integers()
	case KindRationals:
		s = arith.Rationals()
	case KindModular:
		s, err = arith.IntegersMod(d.Modulus)
	case KindPolynomial:
		s, err = buildOverBase(cat, d.Base, func(base *ring.Structure) (*ring.Structure, error) {
			variable := d.Variable
			if variable == "" {
				variable = "x"
			}
			return arith.PolynomialRing(base, variable)
		})
	case KindMatrix:
		s, err = buildOverBase(cat, d.Base, func(base *ring.Structure) (*ring.Structure, error) {
			return arith.MatrixAlgebra(base, d.Dim)
		})
	}
	if err != nil {
		return err
	}

	if d.Category != "" {
		declared, err := category.Parse(d.Category)
		if err != nil {
			return err
		}
		if !category.IsA(s.Category(), declared) {
			return &ring.CategoryViolationError{
				Tag:       declared,
				Structure: s.Name(),
				Reason:    "declared category not satisfied by " + s.Category().String(),
			}
		}
	}

	name := d.Name
	if name == "" {
		name = s.Name()
	}
	return cat.Register(name, s)
}

func buildOverBase(cat *catalog.Catalog, baseName string, build func(*ring.Structure) (*ring.Structure, error)) (*ring.Structure, error) {
	base, err := cat.Resolve(baseName)
	if err != nil {
		return nil, fmt.Errorf("base %q: %w", baseName, err)
	}
	return build(base)
}
