// Package modhub is the dispatcher at the center of the moderation pipeline.
// It routes inbound events to per-user flow sessions, turns completed intakes
// into advertised tickets, brokers moderator claims, and runs the consensus
// engine when a case collects its quorum of verdicts.
package modhub

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"modflow/backend/internal/config"
	"modflow/backend/internal/consensus"
	"modflow/backend/internal/flow"
	"modflow/backend/internal/logger"
	"modflow/backend/internal/models"
	"modflow/backend/internal/tickets"
)

// ManagerService owns the session table and all routing decisions. The Run
// loop itself only routes; per-session work happens on session goroutines so
// one user's input never waits on another's.
type ManagerService struct {
	clientsMu sync.RWMutex
	Clients   map[string]Client

	IncomingCh   chan models.ModEvent
	ClaimCh      chan models.ClaimSignal
	TicketCh     chan *models.Ticket
	RegisterCh   chan Client
	UnregisterCh chan Client

	sessionDoneCh chan sessionResult

	Tickets  tickets.Store
	Resolver flow.ContentResolver
	Notifier Notifier
	Actions  ContentActions
	Assigner *AssignerService

	sessions map[string]*session
}

func NewManagerService(store tickets.Store, resolver flow.ContentResolver) *ManagerService {
	return &ManagerService{
		Clients:       make(map[string]Client),
		IncomingCh:    make(chan models.ModEvent, 64),
		ClaimCh:       make(chan models.ClaimSignal, 16),
		TicketCh:      make(chan *models.Ticket, 16),
		RegisterCh:    make(chan Client),
		UnregisterCh:  make(chan Client),
		sessionDoneCh: make(chan sessionResult, 16),
		Tickets:       store,
		Resolver:      resolver,
		sessions:      make(map[string]*session),
	}
}

// Run is the hub's main loop.
func (m *ManagerService) Run() {
	logger.Log.Info("mod hub started")
	for {
		select {
		case client := <-m.RegisterCh:
			m.clientsMu.Lock()
			m.Clients[client.GetUserID()] = client
			m.clientsMu.Unlock()
			client.Run()

		case client := <-m.UnregisterCh:
			m.clientsMu.Lock()
			if current, ok := m.Clients[client.GetUserID()]; ok && current == client {
				delete(m.Clients, client.GetUserID())
			}
			m.clientsMu.Unlock()
			client.Close()

		case ev := <-m.IncomingCh:
			m.route(ev)

		case claim := <-m.ClaimCh:
			m.handleClaim(claim)

		case t := <-m.TicketCh:
			m.openTicket(t)

		case res := <-m.sessionDoneCh:
			m.finishSession(res)
		}
	}
}

// ClientFor looks up the registered client for a user. The hub loop mutates
// the client map under clientsMu, so every reader outside that loop must come
// through here (or take the lock itself).
func (m *ManagerService) ClientFor(userID string) (Client, bool) {
	m.clientsMu.RLock()
	defer m.clientsMu.RUnlock()
	c, ok := m.Clients[userID]
	return c, ok
}

// route classifies an inbound event: continuing session, review start,
// report start, or noise. A user with an open reviewer assignment is always
// routed to reviewing, even if their text matches the report keyword.
func (m *ManagerService) route(ev models.ModEvent) {
	if !ev.Direct {
		return
	}

	if s, ok := m.sessions[ev.UserID]; ok {
		m.enqueue(s, ev)
		return
	}

	if caseID, assigned := m.Tickets.AssignmentFor(ev.UserID); assigned {
		// The claim receipt asks the moderator to send the ready keyword;
		// anything else before that is ignored.
		if ev.Text != config.ReviewReadyKeyword {
			return
		}
		s := &session{
			userID: ev.UserID,
			inbox:  make(chan models.ModEvent, sessionInboxSize),
			review: flow.NewReviewFlow(m.Tickets, caseID, ev.UserID),
		}
		m.sessions[ev.UserID] = s
		go m.runSession(s)
		m.enqueue(s, ev)
		return
	}

	if strings.HasPrefix(ev.Text, config.StartKeyword) {
		s := &session{
			userID: ev.UserID,
			inbox:  make(chan models.ModEvent, sessionInboxSize),
			report: flow.NewReportFlow(m.Resolver, ev.UserID),
		}
		m.sessions[ev.UserID] = s
		go m.runSession(s)
		m.enqueue(s, ev)
	}
}

func (m *ManagerService) enqueue(s *session, ev models.ModEvent) {
	select {
	case s.inbox <- ev:
	default:
		logger.Log.WithField("user", ev.UserID).Warn("session inbox full, dropping event")
	}
}

// openTicket stores a freshly completed (or auto-flagged) ticket and
// advertises it for claiming.
func (m *ManagerService) openTicket(t *models.Ticket) {
	id, err := m.Tickets.Create(t)
	if err != nil {
		logger.Log.Errorf("creating ticket: %v", err)
		return
	}
	logger.Log.WithField("ticket", id).Info("ticket opened")
	if m.Assigner != nil {
		m.Assigner.Advertise(t)
	}
}

// handleClaim admits at most one moderator per remaining quorum slot and
// retracts the advertisement when the last slot is taken.
func (m *ManagerService) handleClaim(c models.ClaimSignal) {
	if _, busy := m.sessions[c.ModeratorID]; busy {
		m.notify(c.ModeratorID, "Finish your current session before claiming a ticket.")
		return
	}

	slotsLeft, err := m.Tickets.Claim(c.ModeratorID, c.TicketID)
	switch {
	case err == nil:
	case errors.Is(err, tickets.ErrAlreadyAssigned):
		m.notify(c.ModeratorID, "You already have an open review. Finish it before claiming another ticket.")
		return
	case errors.Is(err, tickets.ErrQuorumFull) || errors.Is(err, tickets.ErrTicketResolved):
		m.notify(c.ModeratorID, fmt.Sprintf("Ticket #%d is already fully claimed.", c.TicketID))
		return
	default:
		logger.Log.Errorf("claim of ticket %d by %s: %v", c.TicketID, c.ModeratorID, err)
		return
	}

	t, err := m.Tickets.Get(c.TicketID)
	if err != nil {
		// The claim slot is already reserved against a case we cannot load;
		// give the slot back rather than stranding the moderator.
		logger.Log.Errorf("claimed ticket %d vanished: %v", c.TicketID, err)
		m.Tickets.Release(c.ModeratorID)
		return
	}

	receipt := fmt.Sprintf("Report summary for Ticket #%d\n```%s```\nEnter '%s' when you're ready to start reviewing.",
		t.ID, t.Summary(), config.ReviewReadyKeyword)
	m.notify(c.ModeratorID, receipt)

	if slotsLeft == 0 && m.Assigner != nil {
		m.Assigner.Retract(c.TicketID)
	}
}

// finishSession tears the session down and applies its result: a new ticket
// from report intake, or a verdict (and possibly a consensus run) from a
// review.
func (m *ManagerService) finishSession(res sessionResult) {
	s := m.sessions[res.userID]
	delete(m.sessions, res.userID)
	if s != nil {
		// Events routed between the flow finishing and this teardown sit in
		// an inbox nobody reads anymore; put them back through routing once
		// the result has been applied.
		defer m.requeueLeftovers(s)
	}

	if res.ticket != nil {
		m.openTicket(res.ticket)
		return
	}

	if res.caseID == 0 {
		return // cancelled report, nothing to apply
	}

	m.Tickets.Release(res.userID)
	if res.err != nil || res.verdict == nil {
		return // aborted or cancelled review; the claim slot is freed
	}

	appended, err := m.Tickets.AppendVerdict(res.caseID, res.userID, *res.verdict)
	if err != nil {
		// Includes the resolved/quorum-full races; the verdict is dropped
		// and the case left untouched.
		logger.Log.Errorf("appending verdict for case %d: %v", res.caseID, err)
		return
	}
	logger.Log.WithField("ticket", res.caseID).Infof("verdict %d recorded (%d of quorum)", *res.verdict, appended.Count)

	if appended.QuorumReached {
		m.resolveCase(res.caseID, appended.Verdicts)
	}
}

// resolveCase runs the consensus engine over a full verdict list and applies
// the enforcement outcome.
func (m *ManagerService) resolveCase(caseID int64, verdicts []int) {
	outcome, err := consensus.Outcome(verdicts)
	if err != nil {
		logger.Log.Errorf("consensus for case %d: %v", caseID, err)
		return
	}
	t, err := m.Tickets.Get(caseID)
	if err != nil {
		logger.Log.Errorf("case %d reached quorum but is missing from the store: %v", caseID, err)
		return
	}

	switch consensus.ActionFor(outcome) {
	case consensus.ActionAbsolve:
		if err := m.Tickets.Resolve(caseID, outcome); err != nil {
			logger.Log.Errorf("resolving case %d: %v", caseID, err)
			return
		}
		m.announce("ticket_resolved", caseID,
			fmt.Sprintf("%s has been absolved. ```Code: %d, Ticket: %d```", t.Content.AuthorName, outcome, caseID))
		m.notifyReporter(t, "Your report has been processed and we have decided not to take action at this time. "+
			"Please feel free to message a moderator if you have further questions.")

	case consensus.ActionDeleteAndBan:
		m.takeDown(t)
		if err := m.Actions.RemoveUser(t.ReportedUser, t.Content.AuthorName); err != nil {
			logger.Log.Errorf("removing user %s: %v", t.ReportedUser, err)
		}
		if err := m.Tickets.Resolve(caseID, outcome); err != nil {
			logger.Log.Errorf("resolving case %d: %v", caseID, err)
			return
		}
		m.announce("ticket_resolved", caseID,
			fmt.Sprintf("%s has been removed. ```Code: %d, Ticket: %d```", t.Content.AuthorName, outcome, caseID))
		m.notifyReporter(t, "Your report has been processed - the offending post has been deleted and the offending user has been removed.")

	case consensus.ActionDelete:
		m.takeDown(t)
		if err := m.Tickets.Resolve(caseID, outcome); err != nil {
			logger.Log.Errorf("resolving case %d: %v", caseID, err)
			return
		}
		m.announce("ticket_resolved", caseID,
			fmt.Sprintf("%s's offending post has been deleted. ```Code: %d, Ticket: %d```", t.Content.AuthorName, outcome, caseID))
		m.notifyReporter(t, "Your report has been processed and the offending post has been deleted.")

	case consensus.ActionReopen:
		if err := m.Tickets.Reopen(caseID); err != nil {
			logger.Log.Errorf("reopening case %d: %v", caseID, err)
			return
		}
		m.announce("ticket_reopened", caseID,
			fmt.Sprintf("```Code: %d, Ticket: %d``` has been reopened. A consensus was not reached.", outcome, caseID))
		if reopened, err := m.Tickets.Get(caseID); err == nil && m.Assigner != nil {
			m.Assigner.Advertise(reopened)
		}

	default:
		// An outcome outside every known range means a corrupted verdict
		// list; leave the ticket for manual inspection.
		logger.Log.Errorf("case %d produced unmappable outcome %d, leaving ticket untouched", caseID, outcome)
	}
}

func (m *ManagerService) requeueLeftovers(s *session) {
	for {
		select {
		case ev := <-s.inbox:
			m.route(ev)
		default:
			return
		}
	}
}

func (m *ManagerService) takeDown(t *models.Ticket) {
	if err := m.Actions.DeleteContent(t.Content); err != nil {
		logger.Log.Errorf("deleting content for ticket %d: %v", t.ID, err)
	}
}

func (m *ManagerService) notify(userID, text string) {
	if m.Notifier == nil {
		return
	}
	if err := m.Notifier.Notify(userID, text); err != nil {
		logger.Log.Errorf("notify %s: %v", userID, err)
	}
}

// notifyReporter skips synthesized tickets, which have no human reporter to
// update.
func (m *ManagerService) notifyReporter(t *models.Ticket, text string) {
	if t.AutoFlagged {
		return
	}
	m.notify(t.ReportingUser, text)
}

func (m *ManagerService) announce(eventType string, ticketID int64, text string) {
	if m.Assigner == nil {
		return
	}
	m.Assigner.Broadcast(models.FeedEvent{Type: eventType, TicketID: ticketID, Text: text})
}
