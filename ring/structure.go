package ring

import (
	"github.com/google/uuid"

	"github.com/c360studio/algebra/category"
)

// Structure represents one mathematical ring, field or algebra instance.
// It is immutable after construction except for the lazy cache slots,
// each of which is populated at most observably once (see package doc).
//
// Canonicalization of structurally equal structures is not this type's
// job: two independently constructed copies of the same ring are two
// structures. The catalog package provides canonical instances by name.
type Structure struct {
	id       uuid.UUID
	name     string
	tag      category.Category
	supplier Supplier

	// base is the structure this one is derived from (a fraction field's
	// base ring, a polynomial ring's coefficient ring). Nil for root
	// structures. Non-owning: a derived structure does not keep its base
	// alive, and callers must not release a base while derived structures
	// that reference it are still in use.
	base *Structure

	zero        cell[Element]
	one         cell[Element]
	zeroIdeal   cell[*Ideal]
	unitIdeal   cell[*Ideal]
	idealMonoid cell[*IdealMonoid]
	fracField   cell[*Structure]
}

// New constructs a root structure with the given display name, category
// tag and supplier. The tag must be one of the eight lattice nodes and
// is invariant for the structure's lifetime; there is deliberately no
// re-tagging API. An unknown tag or a nil supplier is a
// *CategoryViolationError.
func New(name string, tag category.Category, sup Supplier) (*Structure, error) {
	return NewDerived(name, tag, sup, nil)
}

// NewDerived constructs a structure derived from base: its fraction
// field, a polynomial ring over it, and so on. Base may be nil for root
// structures. The back-reference is non-owning.
func NewDerived(name string, tag category.Category, sup Supplier, base *Structure) (*Structure, error) {
	if !tag.IsValid() {
		return nil, &CategoryViolationError{
			Tag:       tag,
			Structure: name,
			Reason:    "not a node of the category lattice",
		}
	}
	if sup == nil {
		return nil, &CategoryViolationError{
			Tag:       tag,
			Structure: name,
			Reason:    "structure constructed without a supplier",
		}
	}
	recordConstruction(tag)
	return &Structure{
		id:       uuid.New(),
		name:     name,
		tag:      tag,
		supplier: sup,
		base:     base,
	}, nil
}

// ID returns the unique identifier assigned at construction.
func (s *Structure) ID() uuid.UUID { return s.id }

// Name returns the display name.
func (s *Structure) Name() string { return s.name }

// Category returns the declared lattice tag. It never changes.
func (s *Structure) Category() category.Category { return s.tag }

// Base returns the structure this one is derived from, or nil for root
// structures. The reference is non-owning.
func (s *Structure) Base() *Structure { return s.base }

// IsA reports whether the structure belongs to target: its declared tag
// equals target or is subsumed by it in the lattice.
func (s *Structure) IsA(target category.Category) bool {
	return category.IsA(s.tag, target)
}

// String renders the structure as "name (category)".
func (s *Structure) String() string {
	return s.name + " (" + s.tag.String() + ")"
}

// Zero returns the additive identity, obtained from the supplier on
// first call and the identical cached object on every call after.
func (s *Structure) Zero() Element {
	if e, ok := s.zero.get(); ok {
		return e
	}
	e, won := s.zero.publish(s.supplier.Zero(s))
	if won {
		recordSlotPopulated("zero")
	}
	return e
}

// One returns the multiplicative identity, cached like Zero.
func (s *Structure) One() Element {
	if e, ok := s.one.get(); ok {
		return e
	}
	e, won := s.one.publish(s.supplier.One(s))
	if won {
		recordSlotPopulated("one")
	}
	return e
}

// ZeroIdeal returns the ideal (0). It exists for every ring regardless
// of category refinement and is cached by identity.
func (s *Structure) ZeroIdeal() *Ideal {
	if i, ok := s.zeroIdeal.get(); ok {
		return i
	}
	i, won := s.zeroIdeal.publish(&Ideal{ring: s, kind: idealZero, gen: s.Zero()})
	if won {
		recordSlotPopulated("zero_ideal")
	}
	return i
}

// UnitIdeal returns the ideal (1), the whole ring. Cached like ZeroIdeal.
func (s *Structure) UnitIdeal() *Ideal {
	if i, ok := s.unitIdeal.get(); ok {
		return i
	}
	i, won := s.unitIdeal.publish(&Ideal{ring: s, kind: idealUnit, gen: s.One()})
	if won {
		recordSlotPopulated("unit_ideal")
	}
	return i
}

// IdealMonoid returns the monoid of ideals of the structure, built by
// the supplier's IdealMonoidConstructor capability when present and by
// the core's generic constructor otherwise. One cached instance per
// structure; its Base is always the receiver.
func (s *Structure) IdealMonoid() *IdealMonoid {
	if m, ok := s.idealMonoid.get(); ok {
		return m
	}
	var m *IdealMonoid
	if c, ok := s.supplier.(IdealMonoidConstructor); ok {
		m = c.IdealMonoid(s)
	}
	if m == nil || m.Base() != s {
		m = NewIdealMonoid(s)
	}
	m, won := s.idealMonoid.publish(m)
	if won {
		recordSlotPopulated("ideal_monoid")
	}
	return m
}

// ZeroDivisorFree reports, three-valued, whether the structure is known
// to have no zero divisors. The lattice answers for integral domains and
// their refinements; fields qualify by definition even though the
// lattice routes them around the IntegralDomain node. Beyond that, the
// supplier's ZeroDivisorCertifier capability is consulted. An absent or
// undecided certificate stays VerdictUnknown.
func (s *Structure) ZeroDivisorFree() Verdict {
	if s.IsA(category.IntegralDomain) || s.IsA(category.Field) {
		return VerdictTrue
	}
	if c, ok := s.supplier.(ZeroDivisorCertifier); ok {
		if v := c.ZeroDivisorFree(s); v.IsValid() {
			return v
		}
	}
	return VerdictUnknown
}
