package arith

import (
	"strconv"
	"strings"
	"sync"

	"github.com/c360studio/algebra/category"
	"github.com/c360studio/algebra/ring"
)

type polyKey struct {
	base *ring.Structure
	vr   string
}

var (
	polyMu sync.Mutex
	polys  = make(map[polyKey]*ring.Structure)
)

// PolynomialRing returns the ring of univariate polynomials over base in
// the named variable, memoized per base and variable. The category tag
// follows the base: polynomials over a field form a principal ideal
// domain, over an integral domain an integral domain, over a commutative
// ring a commutative ring, and a plain ring otherwise.
func PolynomialRing(base *ring.Structure, variable string) (*ring.Structure, error) {
	if base == nil {
		return nil, &ring.DomainError{
			Op:     "polynomial_ring",
			Reason: "nil base ring",
		}
	}
	if !validVariable(variable) {
		return nil, &ring.DomainError{
			Op:        "polynomial_ring",
			Structure: base.Name(),
			Reason:    "invalid variable name " + strconv.Quote(variable),
		}
	}

	polyMu.Lock()
	defer polyMu.Unlock()
	key := polyKey{base: base, vr: variable}
	if s, ok := polys[key]; ok {
		return s, nil
	}

	tag := category.Ring
	switch {
	case base.IsA(category.Field):
		tag = category.PrincipalIdealDomain
	case base.IsA(category.IntegralDomain):
		tag = category.IntegralDomain
	case base.IsA(category.CommutativeRing):
		tag = category.CommutativeRing
	}
	s, err := ring.NewDerived(base.Name()+"["+variable+"]", tag, &polySupplier{base: base, vr: variable}, base)
	if err != nil {
		return nil, err
	}
	polys[key] = s
	return s, nil
}

// validVariable accepts an ASCII letter optionally followed by letters
// or digits.
func validVariable(v string) bool {
	if v == "" {
		return false
	}
	for i, r := range v {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// polyElement is a dense coefficient vector in ascending degree with no
// trailing zero coefficients, so the zero polynomial is the empty slice.
type polyElement struct {
	parent *ring.Structure
	vr     string
	coefs  []ring.Element
}

func (e *polyElement) Parent() *ring.Structure { return e.parent }

func (e *polyElement) Equal(other ring.Element) bool {
	o, ok := other.(*polyElement)
	if !ok || e.parent != o.parent || len(e.coefs) != len(o.coefs) {
		return false
	}
	for i := range e.coefs {
		if !e.coefs[i].Equal(o.coefs[i]) {
			return false
		}
	}
	return true
}

func (e *polyElement) String() string {
	if len(e.coefs) == 0 {
		return "0"
	}
	var b strings.Builder
	for i := len(e.coefs) - 1; i >= 0; i-- {
		if b.Len() > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(e.coefs[i].String())
		switch i {
		case 0:
		case 1:
			b.WriteString("*" + e.vr)
		default:
			b.WriteString("*" + e.vr + "^" + strconv.Itoa(i))
		}
	}
	return b.String()
}

type polySupplier struct {
	base *ring.Structure
	vr   string
}

func (ps *polySupplier) Zero(s *ring.Structure) ring.Element {
	return &polyElement{parent: s, vr: ps.vr}
}

func (ps *polySupplier) One(s *ring.Structure) ring.Element {
	return &polyElement{parent: s, vr: ps.vr, coefs: []ring.Element{ps.base.One()}}
}

// ProbeIsField is definite: the variable never has an inverse, so a
// polynomial ring is not a field regardless of base.
func (ps *polySupplier) ProbeIsField(*ring.Structure) ring.Verdict {
	return ring.VerdictFalse
}

// ZeroDivisorFree delegates to the base: constants embed, so zero
// divisors in the base survive, and a clean base keeps products of
// leading coefficients nonzero.
func (ps *polySupplier) ZeroDivisorFree(*ring.Structure) ring.Verdict {
	return ps.base.ZeroDivisorFree()
}
