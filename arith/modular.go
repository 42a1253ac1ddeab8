package arith

import (
	"fmt"
	"math/big"
	"strconv"
	"sync"

	"github.com/c360studio/algebra/category"
	"github.com/c360studio/algebra/ring"
)

var (
	modMu sync.Mutex
	mods  = make(map[uint64]*ring.Structure)
)

// IntegersMod returns the ring of integers modulo n, memoized per
// modulus. A prime modulus yields a field; a composite one yields a
// commutative ring whose supplier certifies the presence of zero
// divisors, so fraction field construction fails with a domain error.
// Moduli below 2 are rejected.
func IntegersMod(n uint64) (*ring.Structure, error) {
	if n < 2 {
		return nil, &ring.DomainError{
			Op:        "integers_mod",
			Structure: "ZZ/" + strconv.FormatUint(n, 10),
			Reason:    "modulus must be at least 2",
		}
	}

	modMu.Lock()
	defer modMu.Unlock()
	if s, ok := mods[n]; ok {
		return s, nil
	}

	// ProbablyPrime(0) is exact for every uint64.
	prime := new(big.Int).SetUint64(n).ProbablyPrime(0)
	tag := category.CommutativeRing
	if prime {
		tag = category.Field
	}
	s, err := ring.New("ZZ/"+strconv.FormatUint(n, 10), tag, &modSupplier{n: n, prime: prime})
	if err != nil {
		return nil, fmt.Errorf("construct ZZ/%d: %w", n, err)
	}
	mods[n] = s
	return s, nil
}

// modElement is a residue class modulo the parent's modulus, stored
// reduced.
type modElement struct {
	parent *ring.Structure
	v      uint64
}

func (e *modElement) Parent() *ring.Structure { return e.parent }

func (e *modElement) Equal(other ring.Element) bool {
	o, ok := other.(*modElement)
	return ok && e.parent == o.parent && e.v == o.v
}

func (e *modElement) String() string { return strconv.FormatUint(e.v, 10) }

type modSupplier struct {
	n     uint64
	prime bool
}

func (ms *modSupplier) Zero(s *ring.Structure) ring.Element {
	return &modElement{parent: s, v: 0}
}

func (ms *modSupplier) One(s *ring.Structure) ring.Element {
	return &modElement{parent: s, v: 1}
}

func (ms *modSupplier) ProbeIsField(*ring.Structure) ring.Verdict {
	if ms.prime {
		return ring.VerdictTrue
	}
	return ring.VerdictFalse
}

// ZeroDivisorFree certifies by primality: a composite modulus factors,
// and the factors multiply to zero.
func (ms *modSupplier) ZeroDivisorFree(*ring.Structure) ring.Verdict {
	if ms.prime {
		return ring.VerdictTrue
	}
	return ring.VerdictFalse
}
