package arith

import (
	"testing"

	"github.com/c360studio/algebra/category"
	"github.com/c360studio/algebra/ring"
)

func TestMatrixAlgebraValidation(t *testing.T) {
	if _, err := MatrixAlgebra(nil, 2); !ring.IsDomainError(err) {
		t.Errorf("nil base: got %v, want domain error", err)
	}
	for _, dim := range []int{0, -1} {
		if _, err := MatrixAlgebra(Rationals(), dim); !ring.IsDomainError(err) {
			t.Errorf("dim %d: got %v, want domain error", dim, err)
		}
	}
}

func TestMatrixAlgebraTags(t *testing.T) {
	m2, err := MatrixAlgebra(Rationals(), 2)
	if err != nil {
		t.Fatalf("MatrixAlgebra failed: %v", err)
	}
	if m2.Category() != category.Algebra {
		t.Errorf("M2(QQ) tagged %q, want algebra", m2.Category())
	}
	if m2.IsA(category.CommutativeRing) {
		t.Error("M2(QQ) should not pass for commutative")
	}
	if !m2.IsA(category.Ring) {
		t.Error("an algebra is still a ring")
	}
	if m2.Name() != "M2(QQ)" {
		t.Errorf("Name() = %q", m2.Name())
	}

	m1, err := MatrixAlgebra(Rationals(), 1)
	if err != nil {
		t.Fatalf("MatrixAlgebra failed: %v", err)
	}
	if m1.Category() != category.CommutativeAlgebra {
		t.Errorf("M1(QQ) tagged %q, want commutative algebra", m1.Category())
	}
}

func TestMatrixAlgebraIsMemoized(t *testing.T) {
	a, err := MatrixAlgebra(Rationals(), 2)
	if err != nil {
		t.Fatalf("MatrixAlgebra failed: %v", err)
	}
	b, err := MatrixAlgebra(Rationals(), 2)
	if err != nil {
		t.Fatalf("second MatrixAlgebra failed: %v", err)
	}
	if a != b {
		t.Error("same base and dimension should memoize")
	}

	c, err := MatrixAlgebra(Rationals(), 3)
	if err != nil {
		t.Fatalf("MatrixAlgebra dim 3 failed: %v", err)
	}
	if a == c {
		t.Error("distinct dimensions should yield distinct algebras")
	}
}

func TestMatrixAlgebraFieldResolution(t *testing.T) {
	// M1(QQ) is tagged commutative algebra, which the lattice does not
	// route through Field. The probe sees through the one-dimensional
	// wrapper, so resolution flips to true in the probe tier.
	m1, err := MatrixAlgebra(Rationals(), 1)
	if err != nil {
		t.Fatalf("MatrixAlgebra failed: %v", err)
	}
	if m1.IsA(category.Field) {
		t.Error("M1(QQ) should not be tagged a field")
	}
	if !ring.IsField(m1) {
		t.Error("M1(QQ) should resolve as a field through the probe")
	}
	if got := m1.ProbeIsField(); got != ring.VerdictTrue {
		t.Errorf("M1(QQ) probe = %q, want definite true", got)
	}

	m2, err := MatrixAlgebra(Rationals(), 2)
	if err != nil {
		t.Fatalf("MatrixAlgebra failed: %v", err)
	}
	if ring.IsField(m2) {
		t.Error("M2(QQ) should not resolve as a field")
	}
	if got := m2.ProbeIsField(); got != ring.VerdictFalse {
		t.Errorf("M2(QQ) probe = %q, want definite false", got)
	}

	// Over ZZ even the one-dimensional algebra is not a field, and the
	// base's own definite probe says so.
	m1z, err := MatrixAlgebra(Integers(), 1)
	if err != nil {
		t.Fatalf("MatrixAlgebra failed: %v", err)
	}
	if ring.IsField(m1z) {
		t.Error("M1(ZZ) should not resolve as a field")
	}
	if got := m1z.ProbeIsField(); got != ring.VerdictFalse {
		t.Errorf("M1(ZZ) probe = %q, want definite false", got)
	}
}

func TestMatrixAlgebraZeroDivisors(t *testing.T) {
	m2, err := MatrixAlgebra(Rationals(), 2)
	if err != nil {
		t.Fatalf("MatrixAlgebra failed: %v", err)
	}
	if got := m2.ZeroDivisorFree(); got != ring.VerdictFalse {
		t.Errorf("M2(QQ) ZeroDivisorFree() = %q, want definite false", got)
	}
	if _, err := m2.FractionField(); !ring.IsDomainError(err) {
		t.Errorf("Frac(M2(QQ)) should be refused, got %v", err)
	}

	m1z, err := MatrixAlgebra(Integers(), 1)
	if err != nil {
		t.Fatalf("MatrixAlgebra failed: %v", err)
	}
	if got := m1z.ZeroDivisorFree(); got != ring.VerdictTrue {
		t.Errorf("M1(ZZ) ZeroDivisorFree() = %q, want true via base", got)
	}
}

func TestMatrixElements(t *testing.T) {
	m2, err := MatrixAlgebra(Rationals(), 2)
	if err != nil {
		t.Fatalf("MatrixAlgebra failed: %v", err)
	}

	if got := m2.Zero().String(); got != "[[0, 0], [0, 0]]" {
		t.Errorf("zero matrix renders as %q", got)
	}
	if got := m2.One().String(); got != "[[1, 0], [0, 1]]" {
		t.Errorf("identity matrix renders as %q", got)
	}
	if m2.Zero().Equal(m2.One()) {
		t.Error("zero and identity should differ")
	}
	if m2.One() != m2.One() {
		t.Error("identity should be cached")
	}
}
