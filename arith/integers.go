package arith

import (
	"math/big"
	"sync"

	"github.com/c360studio/algebra/category"
	"github.com/c360studio/algebra/ring"
)

var (
	zzOnce sync.Once
	zz     *ring.Structure
)

// Integers returns the ring of integers ZZ, a principal ideal domain.
// The instance is process-wide.
func Integers() *ring.Structure {
	zzOnce.Do(func() {
		s, err := ring.New("ZZ", category.PrincipalIdealDomain, intSupplier{})
		if err != nil {
			panic("failed to construct ZZ: " + err.Error())
		}
		zz = s
	})
	return zz
}

// intElement is an arbitrary-precision integer. The wrapped value is
// never mutated after construction.
type intElement struct {
	parent *ring.Structure
	v      *big.Int
}

func (e *intElement) Parent() *ring.Structure { return e.parent }

func (e *intElement) Equal(other ring.Element) bool {
	o, ok := other.(*intElement)
	return ok && e.parent == o.parent && e.v.Cmp(o.v) == 0
}

func (e *intElement) String() string { return e.v.String() }

type intSupplier struct{}

func (intSupplier) Zero(s *ring.Structure) ring.Element {
	return &intElement{parent: s, v: big.NewInt(0)}
}

func (intSupplier) One(s *ring.Structure) ring.Element {
	return &intElement{parent: s, v: big.NewInt(1)}
}

// ProbeIsField proves ZZ is not a field: 2 has no integer inverse.
func (intSupplier) ProbeIsField(*ring.Structure) ring.Verdict {
	return ring.VerdictFalse
}

// FractionField replaces the generic formal construction with a field
// backed by genuine rational arithmetic.
func (intSupplier) FractionField(s *ring.Structure) (*ring.Structure, error) {
	return ring.NewDerived("Frac(ZZ)", category.Field, ratSupplier{}, s)
}
