// Package category defines the closed lattice of structural categories
// that classify every algebraic structure in the system.
//
// The lattice has eight nodes (Ring at the root) and a fixed subsumption
// order: a structure tagged Field is also a CommutativeRing and a Ring,
// a PrincipalIdealDomain is also a DedekindDomain, an IntegralDomain and
// a CommutativeRing, and so on. The order is data, not a type hierarchy:
// tags are compared through a reachability table precomputed at package
// init, so IsA is a map lookup rather than a traversal.
//
// Tags never change after a structure is constructed. Code downstream of
// construction is entitled to treat the tag as invariant.
package category
