package ring

// Supplier is the protocol a concrete structure implements to plug into
// the core. The two identity hooks are required; everything else is an
// optional capability discovered by interface assertion on the same
// value.
//
// Hooks receive the owning structure so supplied objects can carry the
// parent back-reference. They are invoked at most once per cache slot in
// the absence of races, and may be invoked concurrently by racing first
// accesses; they must not depend on being called exactly once.
type Supplier interface {
	// Zero supplies the additive identity of s.
	Zero(s *Structure) Element

	// One supplies the multiplicative identity of s.
	One(s *Structure) Element
}

// IdealMonoidConstructor is an optional Supplier capability that builds
// the monoid of ideals of s. Structures without it get the core's
// generic monoid. The returned monoid must report s as its base.
type IdealMonoidConstructor interface {
	IdealMonoid(s *Structure) *IdealMonoid
}

// FractionFieldConstructor is an optional Supplier capability that builds
// the field of fractions of s, replacing the core's generic formal
// construction. Useful when a canonical field exists (the integers
// construct a genuine rational field rather than formal pairs).
//
// The returned structure must be tagged category.Field and must report s
// as its base. It is only invoked after the core has checked the
// zero-divisor precondition.
type FractionFieldConstructor interface {
	FractionField(s *Structure) (*Structure, error)
}

// ZeroDivisorCertifier is an optional Supplier capability certifying
// whether s is free of zero divisors. It extends the lattice: a
// structure may be known zero-divisor-free without carrying an
// IntegralDomain refinement. VerdictUnknown withholds certification and
// must be passed through, not treated as VerdictFalse.
type ZeroDivisorCertifier interface {
	ZeroDivisorFree(s *Structure) Verdict
}

// FieldProber is an optional Supplier capability: the structure's own
// three-valued "am I a field" test. It exists because the lattice tag is
// a conservative over-approximation; a structure can be a field in fact
// without being declared one. Expensive probes should cache their own
// result; the core does not.
type FieldProber interface {
	ProbeIsField(s *Structure) Verdict
}
