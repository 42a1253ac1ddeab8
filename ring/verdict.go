package ring

// Verdict is the result of a capability probe. It is three-valued on
// purpose: VerdictUnknown means the probe cannot decide (or is not
// implemented), which is a different statement from VerdictFalse.
//
// Unknown may only be collapsed to false at the resolution boundary
// (IsField). Code in between must pass it through unchanged.
type Verdict string

const (
	// VerdictTrue means the property provably holds.
	VerdictTrue Verdict = "true"

	// VerdictFalse means the property provably fails.
	VerdictFalse Verdict = "false"

	// VerdictUnknown means the probe cannot decide. Not the same as false.
	VerdictUnknown Verdict = "unknown"
)

// IsValid checks whether v is one of the three probe outcomes.
func (v Verdict) IsValid() bool {
	switch v {
	case VerdictTrue, VerdictFalse, VerdictUnknown:
		return true
	}
	return false
}

// String returns the string representation of the verdict.
func (v Verdict) String() string {
	return string(v)
}
