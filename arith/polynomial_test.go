package arith

import (
	"testing"

	"github.com/c360studio/algebra/category"
	"github.com/c360studio/algebra/ring"
)

func TestPolynomialRingTagFollowsBase(t *testing.T) {
	zz6, err := IntegersMod(6)
	if err != nil {
		t.Fatalf("IntegersMod(6) failed: %v", err)
	}
	m2, err := MatrixAlgebra(Rationals(), 2)
	if err != nil {
		t.Fatalf("MatrixAlgebra failed: %v", err)
	}

	tests := []struct {
		name string
		base *ring.Structure
		want category.Category
	}{
		// Over a field the ring is a PID; over ZZ it steps down to
		// integral domain, since (2, x) needs two generators.
		{"field base", Rationals(), category.PrincipalIdealDomain},
		{"domain base", Integers(), category.IntegralDomain},
		{"composite modular base", zz6, category.CommutativeRing},
		{"noncommutative base", m2, category.Ring},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := PolynomialRing(tt.base, "x")
			if err != nil {
				t.Fatalf("PolynomialRing failed: %v", err)
			}
			if s.Category() != tt.want {
				t.Errorf("%s tagged %q, want %q", s.Name(), s.Category(), tt.want)
			}
			if s.Base() != tt.base {
				t.Error("polynomial ring should reference its coefficient ring")
			}
		})
	}
}

func TestPolynomialRingValidation(t *testing.T) {
	if _, err := PolynomialRing(nil, "x"); !ring.IsDomainError(err) {
		t.Errorf("nil base: got %v, want domain error", err)
	}
	for _, vr := range []string{"", "1x", "x y", "x-y", "λ"} {
		if _, err := PolynomialRing(Rationals(), vr); !ring.IsDomainError(err) {
			t.Errorf("variable %q: got %v, want domain error", vr, err)
		}
	}
	for _, vr := range []string{"x", "t", "x1", "alpha"} {
		if _, err := PolynomialRing(Rationals(), vr); err != nil {
			t.Errorf("variable %q: unexpected error %v", vr, err)
		}
	}
}

func TestPolynomialRingIsMemoized(t *testing.T) {
	a, err := PolynomialRing(Rationals(), "x")
	if err != nil {
		t.Fatalf("PolynomialRing failed: %v", err)
	}
	b, err := PolynomialRing(Rationals(), "x")
	if err != nil {
		t.Fatalf("second PolynomialRing failed: %v", err)
	}
	if a != b {
		t.Error("same base and variable should memoize")
	}

	c, err := PolynomialRing(Rationals(), "y")
	if err != nil {
		t.Fatalf("PolynomialRing in y failed: %v", err)
	}
	if a == c {
		t.Error("distinct variables should yield distinct rings")
	}
}

func TestPolynomialRingIsNeverAField(t *testing.T) {
	qx, err := PolynomialRing(Rationals(), "x")
	if err != nil {
		t.Fatalf("PolynomialRing failed: %v", err)
	}

	// QQ[x] is a PID, the deepest non-field refinement, and the probe
	// is definite rather than unknown.
	if ring.IsField(qx) {
		t.Error("QQ[x] should not resolve as a field")
	}
	if got := qx.ProbeIsField(); got != ring.VerdictFalse {
		t.Errorf("probe = %q, want definite false", got)
	}
}

func TestPolynomialRingZeroDivisorDelegation(t *testing.T) {
	zz6, err := IntegersMod(6)
	if err != nil {
		t.Fatalf("IntegersMod(6) failed: %v", err)
	}
	dirty, err := PolynomialRing(zz6, "x")
	if err != nil {
		t.Fatalf("PolynomialRing failed: %v", err)
	}
	if got := dirty.ZeroDivisorFree(); got != ring.VerdictFalse {
		t.Errorf("ZZ/6[x] ZeroDivisorFree() = %q, want false via base", got)
	}

	if _, err := dirty.FractionField(); !ring.IsDomainError(err) {
		t.Errorf("Frac(ZZ/6[x]) should be refused, got %v", err)
	}
}

func TestPolynomialFractionFieldIsRationalFunctions(t *testing.T) {
	zx, err := PolynomialRing(Integers(), "x")
	if err != nil {
		t.Fatalf("PolynomialRing failed: %v", err)
	}

	frac, err := zx.FractionField()
	if err != nil {
		t.Fatalf("FractionField() failed: %v", err)
	}
	if frac.Name() != "Frac(ZZ[x])" {
		t.Errorf("fraction field name = %q", frac.Name())
	}
	if !frac.IsA(category.Field) || frac.Base() != zx {
		t.Error("rational function field should be a field over ZZ[x]")
	}
}

func TestPolynomialElements(t *testing.T) {
	qx, err := PolynomialRing(Rationals(), "x")
	if err != nil {
		t.Fatalf("PolynomialRing failed: %v", err)
	}

	if got := qx.Zero().String(); got != "0" {
		t.Errorf("zero polynomial renders as %q", got)
	}
	if got := qx.One().String(); got != "1" {
		t.Errorf("one polynomial renders as %q", got)
	}
	if qx.Zero().Equal(qx.One()) {
		t.Error("0 and 1 should differ")
	}
	if qx.Zero() != qx.Zero() {
		t.Error("zero should be cached by identity")
	}
}
