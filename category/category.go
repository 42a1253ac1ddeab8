package category

import "fmt"

// Category is a structural classification tag. Every structure carries
// exactly one Category, assigned at construction.
type Category string

const (
	// Ring is the root category: an associative unital ring, with no
	// further structure assumed.
	Ring Category = "ring"

	// CommutativeRing is a ring whose multiplication commutes.
	CommutativeRing Category = "commutative-ring"

	// IntegralDomain is a commutative ring with no zero divisors.
	IntegralDomain Category = "integral-domain"

	// DedekindDomain is an integral domain in which every nonzero proper
	// ideal factors into prime ideals.
	DedekindDomain Category = "dedekind-domain"

	// PrincipalIdealDomain is an integral domain in which every ideal is
	// generated by a single element.
	PrincipalIdealDomain Category = "principal-ideal-domain"

	// Field is a commutative ring in which every nonzero element is a unit.
	Field Category = "field"

	// Algebra is a ring equipped with a compatible module structure over
	// a base ring. Multiplication need not commute.
	Algebra Category = "algebra"

	// CommutativeAlgebra is an algebra whose multiplication commutes.
	CommutativeAlgebra Category = "commutative-algebra"
)

// all lists every category in display order: the commutative tower from
// coarsest to finest, then the algebra branch.
var all = []Category{
	Ring,
	CommutativeRing,
	IntegralDomain,
	DedekindDomain,
	PrincipalIdealDomain,
	Field,
	Algebra,
	CommutativeAlgebra,
}

// All returns every category in a fixed, documented order.
func All() []Category {
	out := make([]Category, len(all))
	copy(out, all)
	return out
}

// IsValid checks whether c is one of the eight lattice nodes.
func (c Category) IsValid() bool {
	switch c {
	case Ring, CommutativeRing, IntegralDomain, DedekindDomain,
		PrincipalIdealDomain, Field, Algebra, CommutativeAlgebra:
		return true
	}
	return false
}

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// Parse converts a string to a Category. Unknown strings are an error:
// callers that tolerate free-form input must handle it before tagging a
// structure, because construction treats an unknown tag as fatal.
func Parse(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}
