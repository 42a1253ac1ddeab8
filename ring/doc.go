// Package ring implements the structural layer shared by every algebraic
// structure in the system: construction with a category tag, distinguished
// elements, the trivial ideals and the ideal monoid, fields of fractions,
// and the capability test that decides whether a structure is a field.
//
// A Structure is immutable after construction except for its lazy caches.
// Each cached object (zero, one, the trivial ideals, the ideal monoid,
// the fraction field) is computed at most observably once: concurrent
// first accesses may race to compute, but a single winner is published
// and every later call returns that same object, so callers may rely on
// reference equality.
//
// Concrete structures plug in through the Supplier protocol. The required
// part supplies the additive and multiplicative identities; optional
// capabilities (ideal-monoid construction, fraction-field construction,
// zero-divisor certification, the three-valued field probe) are
// discovered by interface assertion:
//
//	zz, err := ring.New("ZZ", category.PrincipalIdealDomain, supplier)
//	if err != nil { ... }
//	zero := zz.Zero()          // identical object on every call
//	frac, err := zz.FractionField()
//	ring.IsField(zz)           // three-tier resolution, never "unknown"
//
// The probe protocol is deliberately three-valued: VerdictUnknown means
// "cannot decide", which is different from "no". Only IsField is allowed
// to collapse Unknown to false; everything else must pass it through.
package ring
