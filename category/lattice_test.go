package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsA(t *testing.T) {
	tests := []struct {
		name   string
		c      Category
		target Category
		want   bool
	}{
		{"category subsumes itself", Field, Field, true},
		{"field is a commutative ring", Field, CommutativeRing, true},
		{"field is a ring", Field, Ring, true},
		{"pid is a dedekind domain", PrincipalIdealDomain, DedekindDomain, true},
		{"pid is an integral domain", PrincipalIdealDomain, IntegralDomain, true},
		{"pid is a commutative ring", PrincipalIdealDomain, CommutativeRing, true},
		{"pid is a ring", PrincipalIdealDomain, Ring, true},
		{"pid is not a field", PrincipalIdealDomain, Field, false},
		{"field is not a pid", Field, PrincipalIdealDomain, false},
		{"algebra is a ring", Algebra, Ring, true},
		{"algebra is not commutative", Algebra, CommutativeRing, false},
		{"commutative algebra is a commutative ring", CommutativeAlgebra, CommutativeRing, true},
		{"commutative algebra is a ring", CommutativeAlgebra, Ring, true},
		{"commutative algebra is not an algebra tag", CommutativeAlgebra, Algebra, false},
		{"ring is not a field", Ring, Field, false},
		{"subsumption is not symmetric", CommutativeRing, IntegralDomain, false},
		{"unknown tag subsumes nothing", Category("group"), Ring, false},
		{"unknown tag does not subsume itself", Category("group"), Category("group"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsA(tt.c, tt.target))
		})
	}
}

func TestClosureIsStrict(t *testing.T) {
	// The precomputed table must be irreflexive and antisymmetric:
	// anything else means the edge list stopped being a partial order.
	for _, c := range All() {
		assert.False(t, closure[c][c], "closure must not relate %s to itself", c)
		for _, d := range All() {
			if c == d {
				continue
			}
			if closure[c][d] {
				assert.False(t, closure[d][c],
					"closure relates %s and %s in both directions", c, d)
			}
		}
	}
}

func TestImplied(t *testing.T) {
	tests := []struct {
		c    Category
		want []Category
	}{
		{Ring, []Category{Ring}},
		{Field, []Category{Field, Ring, CommutativeRing}},
		{PrincipalIdealDomain, []Category{
			PrincipalIdealDomain, Ring, CommutativeRing, IntegralDomain, DedekindDomain,
		}},
		{CommutativeAlgebra, []Category{CommutativeAlgebra, Ring, CommutativeRing}},
		{Category("group"), nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.c), func(t *testing.T) {
			assert.Equal(t, tt.want, Implied(tt.c))
		})
	}
}

func TestParentsAreCopies(t *testing.T) {
	ps := Parents(PrincipalIdealDomain)
	assert.Equal(t, []Category{DedekindDomain}, ps)

	ps[0] = Field
	assert.Equal(t, []Category{DedekindDomain}, Parents(PrincipalIdealDomain),
		"Parents must return a copy")
}
