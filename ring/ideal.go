package ring

// idealKind distinguishes the two trivial ideals every ring has.
type idealKind uint8

const (
	idealZero idealKind = iota
	idealUnit
)

// Ideal is one of the two trivial ideals of a structure: the zero ideal
// (0) or the unit ideal (1). General ideal construction and arithmetic
// belong to collaborator packages; the core guarantees only that these
// two exist for every ring and are cached by identity.
type Ideal struct {
	ring *Structure
	kind idealKind
	gen  Element
}

// Ring returns the structure this ideal lives in. Non-owning reference.
func (i *Ideal) Ring() *Structure { return i.ring }

// IsZero reports whether this is the zero ideal.
func (i *Ideal) IsZero() bool { return i.kind == idealZero }

// IsUnit reports whether this is the unit ideal, i.e. the whole ring.
func (i *Ideal) IsUnit() bool { return i.kind == idealUnit }

// Generator returns the single generator: the ring's zero or one.
func (i *Ideal) Generator() Element { return i.gen }

// String renders the ideal in generator notation.
func (i *Ideal) String() string {
	if i.kind == idealZero {
		return "(0) of " + i.ring.Name()
	}
	return "(1) of " + i.ring.Name()
}

// IdealMonoid is the structure whose elements are the ideals of a base
// ring, under ideal multiplication. It is a structure in its own right
// but not a Structure: the category lattice classifies rings and their
// refinements, and a monoid of ideals is neither. It exists here for its
// access contract: one cached instance per base ring, holding a
// non-owning back-reference.
type IdealMonoid struct {
	base *Structure
}

// NewIdealMonoid builds the monoid of ideals of base. Collaborators
// implementing IdealMonoidConstructor may wrap or replace this.
func NewIdealMonoid(base *Structure) *IdealMonoid {
	return &IdealMonoid{base: base}
}

// Base returns the ring whose ideals the monoid collects.
func (m *IdealMonoid) Base() *Structure { return m.base }

// String renders the monoid for display.
func (m *IdealMonoid) String() string { return "ideals of " + m.base.Name() }
