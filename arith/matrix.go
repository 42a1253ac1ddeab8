package arith

import (
	"strconv"
	"strings"
	"sync"

	"github.com/c360studio/algebra/category"
	"github.com/c360studio/algebra/ring"
)

type matKey struct {
	base *ring.Structure
	dim  int
}

var (
	matMu sync.Mutex
	mats  = make(map[matKey]*ring.Structure)
)

// MatrixAlgebra returns the algebra of dim by dim matrices over base,
// memoized per base and dimension. Dimension one over a commutative base
// is tagged a commutative algebra; everything else is a plain algebra,
// since matrices of dimension two and up never commute.
func MatrixAlgebra(base *ring.Structure, dim int) (*ring.Structure, error) {
	if base == nil {
		return nil, &ring.DomainError{
			Op:     "matrix_algebra",
			Reason: "nil base ring",
		}
	}
	if dim < 1 {
		return nil, &ring.DomainError{
			Op:        "matrix_algebra",
			Structure: base.Name(),
			Reason:    "dimension must be positive, got " + strconv.Itoa(dim),
		}
	}

	matMu.Lock()
	defer matMu.Unlock()
	key := matKey{base: base, dim: dim}
	if s, ok := mats[key]; ok {
		return s, nil
	}

	tag := category.Algebra
	if dim == 1 && base.IsA(category.CommutativeRing) {
		tag = category.CommutativeAlgebra
	}
	name := "M" + strconv.Itoa(dim) + "(" + base.Name() + ")"
	s, err := ring.NewDerived(name, tag, &matSupplier{base: base, dim: dim}, base)
	if err != nil {
		return nil, err
	}
	mats[key] = s
	return s, nil
}

// matElement is a dense square matrix of base elements.
type matElement struct {
	parent  *ring.Structure
	entries [][]ring.Element
}

func (e *matElement) Parent() *ring.Structure { return e.parent }

func (e *matElement) Equal(other ring.Element) bool {
	o, ok := other.(*matElement)
	if !ok || e.parent != o.parent || len(e.entries) != len(o.entries) {
		return false
	}
	for i := range e.entries {
		for j := range e.entries[i] {
			if !e.entries[i][j].Equal(o.entries[i][j]) {
				return false
			}
		}
	}
	return true
}

func (e *matElement) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, row := range e.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(v.String())
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}

type matSupplier struct {
	base *ring.Structure
	dim  int
}

func (ms *matSupplier) Zero(s *ring.Structure) ring.Element {
	return ms.fill(s, func(int, int) ring.Element { return ms.base.Zero() })
}

func (ms *matSupplier) One(s *ring.Structure) ring.Element {
	return ms.fill(s, func(i, j int) ring.Element {
		if i == j {
			return ms.base.One()
		}
		return ms.base.Zero()
	})
}

func (ms *matSupplier) fill(s *ring.Structure, at func(i, j int) ring.Element) ring.Element {
	entries := make([][]ring.Element, ms.dim)
	for i := range entries {
		entries[i] = make([]ring.Element, ms.dim)
		for j := range entries[i] {
			entries[i][j] = at(i, j)
		}
	}
	return &matElement{parent: s, entries: entries}
}

// ProbeIsField sees through the one-dimensional case, where the algebra
// is just the base ring: a field-tagged base answers immediately and any
// other base is asked to probe itself. Higher dimensions are definite
// non-fields because off-diagonal matrices are not invertible.
func (ms *matSupplier) ProbeIsField(*ring.Structure) ring.Verdict {
	if ms.dim > 1 {
		return ring.VerdictFalse
	}
	if ms.base.IsA(category.Field) {
		return ring.VerdictTrue
	}
	return ms.base.ProbeIsField()
}

// ZeroDivisorFree is definite in dimension two and up, where shear
// matrices multiply to zero, and delegates to the base in dimension one.
func (ms *matSupplier) ZeroDivisorFree(*ring.Structure) ring.Verdict {
	if ms.dim > 1 {
		return ring.VerdictFalse
	}
	return ms.base.ZeroDivisorFree()
}
