package ring

import (
	"sync/atomic"
	"testing"

	"github.com/c360studio/algebra/category"
)

// probeSupplier adds a field probe with a fixed verdict and counts how
// often the probe actually runs.
type probeSupplier struct {
	stubSupplier
	verdict Verdict
	probes  atomic.Int64
}

func (ps *probeSupplier) ProbeIsField(*Structure) Verdict {
	ps.probes.Add(1)
	return ps.verdict
}

func TestIsFieldLatticeShortCircuits(t *testing.T) {
	// The probe claims false, but the declared tag wins and the probe
	// must not run at all.
	sup := &probeSupplier{verdict: VerdictFalse}
	s := mustNew(t, "GF(7)", category.Field, sup)

	if !IsField(s) {
		t.Error("field-tagged structure should resolve true")
	}
	if got := sup.probes.Load(); got != 0 {
		t.Errorf("probe ran %d times on the lattice fast path, want 0", got)
	}
}

func TestIsFieldTrustsProbe(t *testing.T) {
	tests := []struct {
		name    string
		verdict Verdict
		want    bool
	}{
		{"probe true", VerdictTrue, true},
		{"probe false", VerdictFalse, false},
		{"probe unknown collapses", VerdictUnknown, false},
		{"probe garbage collapses", Verdict("probably"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sup := &probeSupplier{verdict: tt.verdict}
			s := mustNew(t, "R", category.CommutativeRing, sup)
			if got := IsField(s); got != tt.want {
				t.Errorf("IsField() = %v, want %v", got, tt.want)
			}
			if got := sup.probes.Load(); got != 1 {
				t.Errorf("probe ran %d times, want 1", got)
			}
		})
	}
}

func TestIsFieldWithoutProber(t *testing.T) {
	s := mustNew(t, "R", category.CommutativeRing, &stubSupplier{})
	if IsField(s) {
		t.Error("unprobeable non-field tag should collapse to false")
	}
}

func TestUndecidedProbeOnPrincipalIdealDomain(t *testing.T) {
	// A PID whose probe cannot decide: the boundary collapses to false,
	// while the caches and the fraction field work as for any domain.
	sup := &probeSupplier{verdict: VerdictUnknown}
	p := mustNew(t, "P", category.PrincipalIdealDomain, sup)

	if IsField(p) {
		t.Error("undecided probe should collapse to false at the boundary")
	}
	if got := p.ProbeIsField(); got != VerdictUnknown {
		t.Errorf("ProbeIsField() = %q, the verdict must survive uncollapsed", got)
	}
	if p.Zero() != p.Zero() {
		t.Error("zero should be identity-stable")
	}

	f, err := p.FractionField()
	if err != nil {
		t.Fatalf("FractionField() failed: %v", err)
	}
	if !f.IsA(category.Field) {
		t.Errorf("fraction field tagged %q", f.Category())
	}
	if f.Base() != p {
		t.Error("fraction field should reference the domain as base")
	}
}

func TestProbeIsFieldStaysThreeValued(t *testing.T) {
	tests := []struct {
		name string
		sup  Supplier
		want Verdict
	}{
		{"no capability", &stubSupplier{}, VerdictUnknown},
		{"definite true", &probeSupplier{verdict: VerdictTrue}, VerdictTrue},
		{"definite false", &probeSupplier{verdict: VerdictFalse}, VerdictFalse},
		{"garbage normalized", &probeSupplier{verdict: Verdict("42")}, VerdictUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustNew(t, "R", category.Ring, tt.sup)
			if got := s.ProbeIsField(); got != tt.want {
				t.Errorf("ProbeIsField() = %q, want %q", got, tt.want)
			}
		})
	}
}
