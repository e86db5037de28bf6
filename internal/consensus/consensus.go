// Package consensus turns a case's verdict list into a single enforcement
// outcome. The engine is pure: same verdicts in, same outcome out, no state
// kept between invocations, so a reopened case can reach a different outcome
// on its next quorum.
package consensus

import (
	"errors"

	"modflow/backend/internal/config"
)

// ErrNoVerdicts is returned when an outcome is requested for an empty list.
// That can only happen through internal state corruption and must never be
// resolved silently.
var ErrNoVerdicts = errors.New("consensus: empty verdict list")

// Outcome requires strict unanimity: if every verdict equals V the outcome is
// V, otherwise it is OutcomeNoConsensus. No majority voting.
func Outcome(verdicts []int) (int, error) {
	if len(verdicts) == 0 {
		return 0, ErrNoVerdicts
	}
	first := verdicts[0]
	for _, v := range verdicts[1:] {
		if v != first {
			return config.OutcomeNoConsensus, nil
		}
	}
	return first, nil
}

// Action is the enforcement step implied by an outcome code.
type Action int

const (
	ActionUnknown Action = iota
	// ActionAbsolve takes no enforcement step and notifies both sides.
	ActionAbsolve
	// ActionDelete removes the offending content.
	ActionDelete
	// ActionDeleteAndBan removes the content and the offending user.
	ActionDeleteAndBan
	// ActionReopen discards the verdicts and re-advertises the case.
	ActionReopen
)

// ActionFor maps an outcome code onto its enforcement action. The ranges are
// deliberate: exactly 90 is not absolved, exactly 20 bans, exactly 10 deletes.
func ActionFor(outcome int) Action {
	switch {
	case outcome > 90:
		return ActionAbsolve
	case outcome >= 20 && outcome < 30:
		return ActionDeleteAndBan
	case outcome >= 10 && outcome < 20:
		return ActionDelete
	case outcome == 0:
		return ActionReopen
	default:
		return ActionUnknown
	}
}
