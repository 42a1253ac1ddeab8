package ring

import "github.com/c360studio/algebra/category"

// FractionField returns the field of fractions of s, constructing it on
// first call and returning the cached instance afterwards.
//
// Two preconditions guard the construction. The structure must be a
// commutative ring, and it must be known zero-divisor-free: localizing
// at zero divisors collapses the ring, so an unknown certificate is
// treated as a refusal rather than a gamble. Violations surface as
// *DomainError and nothing is cached, leaving later calls free to
// succeed once the caller supplies a better-certified structure.
func (s *Structure) FractionField() (*Structure, error) {
	if f, ok := s.fracField.get(); ok {
		return f, nil
	}
	if !s.IsA(category.CommutativeRing) {
		recordDomainError("fraction_field")
		return nil, &DomainError{
			Op:        "fraction_field",
			Structure: s.name,
			Reason:    "fractions require a commutative ring",
		}
	}
	if v := s.ZeroDivisorFree(); v != VerdictTrue {
		recordDomainError("fraction_field")
		return nil, &DomainError{
			Op:        "fraction_field",
			Structure: s.name,
			Reason:    "not certified free of zero divisors (" + v.String() + ")",
		}
	}
	var (
		f   *Structure
		err error
	)
	if c, ok := s.supplier.(FractionFieldConstructor); ok {
		f, err = c.FractionField(s)
		// The constructed field must be Field-tagged with s as its base.
		// A construction that breaks that contract is discarded in favor
		// of the generic one, like a misbehaving IdealMonoidConstructor.
		if err == nil && (f == nil || !f.IsA(category.Field) || f.Base() != s) {
			f, err = newFormalFractions(s)
		}
	} else {
		f, err = newFormalFractions(s)
	}
	if err != nil {
		recordDomainError("fraction_field")
		return nil, err
	}
	f, won := s.fracField.publish(f)
	if won {
		recordSlotPopulated("fraction_field")
	}
	return f, nil
}

// newFormalFractions builds the generic fraction field: formal pairs
// num/den over the base ring, compared componentwise. Suppliers with a
// richer representation (ZZ normalizing to big.Rat, say) override this
// through the FractionFieldConstructor capability.
func newFormalFractions(base *Structure) (*Structure, error) {
	return NewDerived("Frac("+base.name+")", category.Field, &fracSupplier{base: base}, base)
}

// fracSupplier produces the distinguished elements of a formal fraction
// field. Zero is 0/1 and one is 1/1, with numerator and denominator
// drawn from the base ring's own cached elements.
type fracSupplier struct {
	base *Structure
}

func (fs *fracSupplier) Zero(s *Structure) Element {
	return &fracElement{parent: s, num: fs.base.Zero(), den: fs.base.One()}
}

func (fs *fracSupplier) One(s *Structure) Element {
	return &fracElement{parent: s, num: fs.base.One(), den: fs.base.One()}
}

// fracElement is a formal quotient of two base-ring elements. No
// normalization is attempted: equality is componentwise, which is exact
// for the distinguished elements this package constructs itself.
type fracElement struct {
	parent *Structure
	num    Element
	den    Element
}

func (e *fracElement) Parent() *Structure { return e.parent }

func (e *fracElement) Equal(other Element) bool {
	o, ok := other.(*fracElement)
	if !ok {
		return false
	}
	return e.parent == o.parent && e.num.Equal(o.num) && e.den.Equal(o.den)
}

func (e *fracElement) String() string {
	return e.num.String() + "/" + e.den.String()
}

// Num returns the formal numerator.
func (e *fracElement) Num() Element { return e.num }

// Den returns the formal denominator.
func (e *fracElement) Den() Element { return e.den }
