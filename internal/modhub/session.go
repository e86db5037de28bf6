package modhub

import (
	"modflow/backend/internal/flow"
	"modflow/backend/internal/logger"
	"modflow/backend/internal/models"
)

// sessionInboxSize bounds how far ahead a single user can type; within the
// buffer, messages are applied strictly in arrival order.
const sessionInboxSize = 64

// session is the transient per-user state of one in-progress flow. Exactly
// one of report/review is set. The session goroutine is the only writer of
// flow state, which gives per-user FIFO processing without any cross-session
// locking.
type session struct {
	userID string
	inbox  chan models.ModEvent

	report *flow.ReportFlow
	review *flow.ReviewFlow
}

// sessionResult is handed back to the hub loop when a session terminates.
type sessionResult struct {
	userID string

	// ticket is the completed report intake, nil when the flow ended
	// without producing one.
	ticket *models.Ticket

	// caseID/verdict describe a finished review. verdict is nil when the
	// review was cancelled.
	caseID  int64
	verdict *int

	err error
}

// runSession drains the session inbox until its flow terminates, then
// reports the result to the hub loop for teardown.
func (m *ManagerService) runSession(s *session) {
	for ev := range s.inbox {
		res, done := m.applyEvent(s, ev)
		if done {
			m.sessionDoneCh <- res
			return
		}
	}
}

func (m *ManagerService) applyEvent(s *session, ev models.ModEvent) (sessionResult, bool) {
	res := sessionResult{userID: s.userID}

	if s.report != nil {
		replies, ticket := s.report.HandleMessage(ev.Text)
		m.deliver(s.userID, replies)
		res.ticket = ticket
		return res, s.report.Done()
	}

	res.caseID = s.review.CaseID()
	replies, verdict, err := s.review.HandleMessage(ev.Text)
	m.deliver(s.userID, replies)
	if err != nil {
		// Shared state went inconsistent mid-review. Abort the session and
		// leave the ticket as-is for manual inspection.
		logger.Log.WithField("user", s.userID).Errorf("review session failed: %v", err)
		m.deliver(s.userID, []string{"Something went wrong on our side; this review has been aborted."})
		res.err = err
		return res, true
	}
	res.verdict = verdict
	return res, s.review.Done()
}

// deliver pushes replies to the user's live client, falling back to the
// notifier when the user has no connection registered.
func (m *ManagerService) deliver(userID string, replies []string) {
	if len(replies) == 0 {
		return
	}

	client, ok := m.ClientFor(userID)

	for _, text := range replies {
		if ok {
			select {
			case client.GetSendChannel() <- models.Reply{UserID: userID, Text: text}:
				continue
			default:
				logger.Log.Warnf("send channel full for %s, falling back to notifier", userID)
			}
		}
		if m.Notifier != nil {
			if err := m.Notifier.Notify(userID, text); err != nil {
				logger.Log.Errorf("notify %s: %v", userID, err)
			}
		}
	}
}
