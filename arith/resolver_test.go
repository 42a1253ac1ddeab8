package arith

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/algebra/catalog"
	"github.com/c360studio/algebra/category"
	"github.com/c360studio/algebra/ring"
)

func TestCanResolve(t *testing.T) {
	r := nameResolver{}

	accepted := []string{
		"ZZ", "QQ", "ZZ/2", "ZZ/6", "ZZ/97",
		"ZZ[x]", "QQ[t]", "QQ[x][y]", "ZZ/5[x]",
		"M1(QQ)", "M2(ZZ)", "M3(ZZ/5)", "M2(QQ[x])", "M2(QQ)[x]", "M2(M2(QQ))",
	}
	for _, name := range accepted {
		assert.True(t, r.CanResolve(name), "should accept %q", name)
	}

	rejected := []string{
		"", "zz", "GF(9)", "ZZ/", "ZZ/x", "ZZ/-3", "ZZ[]", "ZZ[1x]",
		"[x]", "M(QQ)", "M0(QQ)", "Mx(QQ)", "M2()", "M2(QQ", "RR",
	}
	for _, name := range rejected {
		assert.False(t, r.CanResolve(name), "should reject %q", name)
	}
}

func TestResolveCanonicalInstances(t *testing.T) {
	c := catalog.NewDefault()

	zz, err := c.Resolve("ZZ")
	require.NoError(t, err)
	assert.Same(t, Integers(), zz, "resolver should hand out the memoized ZZ")

	qq, err := c.Resolve("QQ")
	require.NoError(t, err)
	assert.Same(t, Rationals(), qq)

	zz6, err := c.Resolve("ZZ/6")
	require.NoError(t, err)
	direct, err := IntegersMod(6)
	require.NoError(t, err)
	assert.Same(t, direct, zz6, "resolver and direct construction should agree")
}

func TestResolveNestedNames(t *testing.T) {
	c := catalog.NewDefault()

	s, err := c.Resolve("M2(QQ[x])")
	require.NoError(t, err)
	assert.Equal(t, "M2(QQ[x])", s.Name())
	assert.Equal(t, category.Algebra, s.Category())

	base := s.Base()
	require.NotNil(t, base)
	assert.Equal(t, "QQ[x]", base.Name())
	assert.Equal(t, category.PrincipalIdealDomain, base.Category())
	assert.Same(t, Rationals(), base.Base())

	// Suffix binds last: this is a polynomial ring over a matrix
	// algebra, not a matrix algebra over polynomials.
	p, err := c.Resolve("M2(QQ)[x]")
	require.NoError(t, err)
	assert.Equal(t, category.Ring, p.Category())
}

func TestResolveSemanticErrors(t *testing.T) {
	c := catalog.NewDefault()

	// Syntactically fine, semantically empty: the zero ring is not
	// constructed.
	_, err := c.Resolve("ZZ/1")
	require.Error(t, err)
	assert.True(t, ring.IsDomainError(err), "got %v", err)
	assert.False(t, errors.Is(err, catalog.ErrNotFound))
}

func TestResolveUnknownFamily(t *testing.T) {
	c := catalog.NewDefault()

	_, err := c.Resolve("GF(9)")
	assert.True(t, errors.Is(err, catalog.ErrNotFound), "got %v", err)
}

func TestResolveInternsPerCatalog(t *testing.T) {
	c := catalog.NewDefault()

	a, err := c.Resolve("QQ[x]")
	require.NoError(t, err)
	b, err := c.Resolve("QQ[x]")
	require.NoError(t, err)
	assert.Same(t, a, b)
}
