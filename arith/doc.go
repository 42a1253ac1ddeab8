// Package arith provides the standard arithmetic structures: the
// integers, the rationals, modular integer rings, and polynomial rings
// and matrix algebras over an arbitrary base.
//
// Every family is memoized, so Integers() or IntegersMod(6) return the
// identical instance on every call and the lazy caches inside are shared
// process-wide. The package also registers a name resolver with the
// default catalog, so blank-importing it makes names like "ZZ", "ZZ/6",
// "QQ[x]" and "M2(QQ)" resolvable:
//
//	import _ "github.com/c360studio/algebra/arith"
//
//	s, err := catalog.Default().Resolve("M2(QQ)")
package arith
