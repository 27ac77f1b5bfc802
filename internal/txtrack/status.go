package txtrack

import (
	"fmt"
	"strings"
)

// Status is the lifecycle stage of a watched transaction or deposit.
type Status string

const (
	// StatusInitiated marks a deposit sent on the source chain but not yet committed.
	StatusInitiated Status = "Initiated"

	// StatusCommited marks a transaction included in a committed block.
	// The spelling matches the value consumers already persist and display.
	StatusCommited Status = "Commited"

	// StatusVerified is terminal: the transaction is final.
	StatusVerified Status = "Verified"

	// StatusFailed is terminal: the provider rejected or the watch was aborted.
	StatusFailed Status = "Failed"
)

// IsTerminal reports whether no further transition is expected from s.
func (s Status) IsTerminal() bool {
	return s == StatusVerified || s == StatusFailed
}

// Phase identifies which confirmation a Notifier is asked to wait for.
type Phase string

const (
	PhaseCommit Phase = "COMMIT"
	PhaseVerify Phase = "VERIFY"
)

// FailurePolicy decides which terminal status a failed workflow records.
type FailurePolicy int

const (
	// FailureMarksFailed records StatusFailed so failures stay distinguishable.
	FailureMarksFailed FailurePolicy = iota

	// FailureMarksVerified collapses failures into StatusVerified, so the UI
	// never shows a pending entry that will not progress.
	FailureMarksVerified
)

// terminalStatus returns the status recorded when a workflow fails.
func (p FailurePolicy) terminalStatus() Status {
	if p == FailureMarksVerified {
		return StatusVerified
	}

	return StatusFailed
}

// String implements fmt.Stringer.
func (p FailurePolicy) String() string {
	if p == FailureMarksVerified {
		return "optimistic"
	}

	return "failed"
}

// ParseFailurePolicy maps "failed" and "optimistic" to a FailurePolicy.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "failed":
		return FailureMarksFailed, nil
	case "optimistic", "verified":
		return FailureMarksVerified, nil
	default:
		return 0, fmt.Errorf("unknown failure policy %q", s)
	}
}
