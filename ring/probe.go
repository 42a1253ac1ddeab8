package ring

import "github.com/c360studio/algebra/category"

// ProbeIsField asks the supplier's FieldProber capability whether the
// structure is a field, without consulting the lattice first. Structures
// without the capability, and probes returning garbage, both come back
// VerdictUnknown. The three-valued result is the honest one; use the
// package-level IsField for the boolean boundary.
func (s *Structure) ProbeIsField() Verdict {
	p, ok := s.supplier.(FieldProber)
	if !ok {
		return VerdictUnknown
	}
	if v := p.ProbeIsField(s); v.IsValid() {
		return v
	}
	return VerdictUnknown
}

// IsField decides, as a plain bool, whether s is a field.
//
// Resolution runs in three tiers. The declared category answers first:
// a structure tagged at or under Field is a field, no probe needed.
// Otherwise the supplier is probed, and a definite verdict either way is
// trusted even when it contradicts nothing the lattice knows. Only when
// the probe stays undecided does the boundary collapse Unknown to false,
// so "not provably a field" and "provably not a field" leave callers
// with the same answer but distinct metrics trails.
func IsField(s *Structure) bool {
	if s.IsA(category.Field) {
		recordFieldResolution("lattice", VerdictTrue)
		return true
	}
	switch v := s.ProbeIsField(); v {
	case VerdictTrue:
		recordFieldResolution("probe", VerdictTrue)
		return true
	case VerdictFalse:
		recordFieldResolution("probe", VerdictFalse)
		return false
	default:
		recordFieldResolution("collapse", VerdictUnknown)
		return false
	}
}
