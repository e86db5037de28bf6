// Package tickets holds the shared case state: every ticket, its verdict
// list, and the reviewer assignments. All mutation goes through the Store so
// concurrent reviews of the same case cannot race each other.
package tickets

import (
	"errors"
	"fmt"
	"sync"

	"modflow/backend/internal/models"
)

var (
	ErrNotFound        = errors.New("tickets: ticket not found")
	ErrTicketResolved  = errors.New("tickets: ticket already resolved")
	ErrQuorumFull      = errors.New("tickets: no review slot available for this case")
	ErrAlreadyAssigned = errors.New("tickets: moderator already has an open review")
)

// AppendResult reports the state of a case's verdict list right after an
// append. QuorumReached is true for exactly one append per quorum crossing.
type AppendResult struct {
	Count         int
	QuorumReached bool
	Verdicts      []int
}

// Store is the ticket state contract the dispatcher and the consensus
// pipeline operate against.
type Store interface {
	Create(t *models.Ticket) (int64, error)
	Get(id int64) (*models.Ticket, error)
	OpenTickets() []models.Ticket

	UpdateCategory(id int64, category, subcategory string) error

	AppendVerdict(id int64, reviewerID string, code int) (AppendResult, error)
	Verdicts(id int64) ([]int, error)
	Resolve(id int64, outcome int) error
	Reopen(id int64) error

	Claim(moderatorID string, id int64) (slotsLeft int, err error)
	Release(moderatorID string)
	AssignmentFor(moderatorID string) (int64, bool)
}

// Backend is the optional durable layer behind the store. The gorm/redis
// storage service satisfies it; tests run with a nil backend.
type Backend interface {
	SaveTicket(t *models.Ticket) error
	SaveVerdict(v *models.Verdict) error
	DeleteVerdicts(ticketID int64) error
	NextTicketID() (int64, error)
}

type verdictEntry struct {
	reviewerID string
	code       int
}

// caseState is everything mutable about one ticket. Its mutex serializes all
// case-level transitions, so two reviewers finishing at once cannot lose an
// append or double-fire the consensus engine.
type caseState struct {
	mu       sync.Mutex
	ticket   *models.Ticket
	verdicts []verdictEntry
	claims   map[string]bool
}

// CaseStore is the in-memory Store implementation, optionally write-through
// persistent.
type CaseStore struct {
	quorum  int
	backend Backend

	mu          sync.RWMutex
	cases       map[int64]*caseState
	assignments map[string]int64 // moderator -> ticket id
	nextID      int64
}

func NewCaseStore(quorum int, backend Backend) *CaseStore {
	return &CaseStore{
		quorum:      quorum,
		backend:     backend,
		cases:       make(map[int64]*caseState),
		assignments: make(map[string]int64),
	}
}

// Hydrate loads previously persisted tickets into the store, typically at
// startup. Verdict lists are rebuilt so a partially reviewed case keeps its
// progress across restarts.
func (s *CaseStore) Hydrate(ts []models.Ticket, verdicts map[int64][]models.Verdict) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range ts {
		t := ts[i]
		cs := &caseState{ticket: &t, claims: make(map[string]bool)}
		for _, v := range verdicts[t.ID] {
			cs.verdicts = append(cs.verdicts, verdictEntry{reviewerID: v.ReviewerID, code: v.Code})
		}
		s.cases[t.ID] = cs
		if t.ID > s.nextID {
			s.nextID = t.ID
		}
	}
}

func (s *CaseStore) Create(t *models.Ticket) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.backend != nil {
		id, err := s.backend.NextTicketID()
		if err != nil {
			return 0, fmt.Errorf("tickets: assigning id: %w", err)
		}
		t.ID = id
	} else {
		s.nextID++
		t.ID = s.nextID
	}
	if t.ID > s.nextID {
		s.nextID = t.ID
	}
	t.Status = models.TicketStatusOpen

	if s.backend != nil {
		if err := s.backend.SaveTicket(t); err != nil {
			return 0, err
		}
	}
	s.cases[t.ID] = &caseState{ticket: t, claims: make(map[string]bool)}
	return t.ID, nil
}

func (s *CaseStore) lookup(id int64) (*caseState, error) {
	s.mu.RLock()
	cs, ok := s.cases[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return cs, nil
}

// Get returns a copy of the ticket; callers never touch store-owned state.
func (s *CaseStore) Get(id int64) (*models.Ticket, error) {
	cs, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()
	t := *cs.ticket
	return &t, nil
}

func (s *CaseStore) OpenTickets() []models.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Ticket
	for _, cs := range s.cases {
		cs.mu.Lock()
		if cs.ticket.Status == models.TicketStatusOpen {
			out = append(out, *cs.ticket)
		}
		cs.mu.Unlock()
	}
	return out
}

// UpdateCategory is the single ticket mutation a review may perform: fixing
// a miscategorized report before judging the violation.
func (s *CaseStore) UpdateCategory(id int64, category, subcategory string) error {
	cs, err := s.lookup(id)
	if err != nil {
		return err
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if cs.ticket.Status == models.TicketStatusResolved {
		return ErrTicketResolved
	}
	cs.ticket.Category = category
	cs.ticket.Subcategory = subcategory
	if s.backend != nil {
		return s.backend.SaveTicket(cs.ticket)
	}
	return nil
}

// AppendVerdict adds one review verdict to the case. The verdict list never
// grows past the quorum; the append that makes it exactly quorum-long reports
// QuorumReached and every later attempt fails until the case is reopened.
func (s *CaseStore) AppendVerdict(id int64, reviewerID string, code int) (AppendResult, error) {
	cs, err := s.lookup(id)
	if err != nil {
		return AppendResult{}, err
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.ticket.Status == models.TicketStatusResolved {
		return AppendResult{}, ErrTicketResolved
	}
	if len(cs.verdicts) >= s.quorum {
		return AppendResult{}, ErrQuorumFull
	}

	cs.verdicts = append(cs.verdicts, verdictEntry{reviewerID: reviewerID, code: code})
	if s.backend != nil {
		if err := s.backend.SaveVerdict(&models.Verdict{TicketID: id, ReviewerID: reviewerID, Code: code}); err != nil {
			return AppendResult{}, err
		}
	}

	res := AppendResult{
		Count:         len(cs.verdicts),
		QuorumReached: len(cs.verdicts) == s.quorum,
		Verdicts:      verdictCodes(cs.verdicts),
	}
	return res, nil
}

func (s *CaseStore) Verdicts(id int64) ([]int, error) {
	cs, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return verdictCodes(cs.verdicts), nil
}

func (s *CaseStore) Resolve(id int64, outcome int) error {
	cs, err := s.lookup(id)
	if err != nil {
		return err
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.ticket.Status = models.TicketStatusResolved
	cs.ticket.Outcome = outcome
	if s.backend != nil {
		return s.backend.SaveTicket(cs.ticket)
	}
	return nil
}

// Reopen clears the case's verdict list and returns it to the open state so
// fresh reviewers can be solicited.
func (s *CaseStore) Reopen(id int64) error {
	cs, err := s.lookup(id)
	if err != nil {
		return err
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.verdicts = nil
	cs.ticket.Status = models.TicketStatusOpen
	cs.ticket.Outcome = 0
	if s.backend != nil {
		if err := s.backend.DeleteVerdicts(id); err != nil {
			return err
		}
		return s.backend.SaveTicket(cs.ticket)
	}
	return nil
}

// Claim reserves a review slot on the case for the moderator. A moderator
// holds at most one assignment, and a case hands out at most quorum slots per
// round (active claims plus verdicts already in). On success it returns how
// many slots remain, so the caller knows when to retract the advertisement.
func (s *CaseStore) Claim(moderatorID string, id int64) (int, error) {
	cs, err := s.lookup(id)
	if err != nil {
		return 0, err
	}

	// The assignment is reserved first and rolled back on failure; taking
	// s.mu while holding the case mutex would invert the lock order used by
	// OpenTickets.
	s.mu.Lock()
	if _, busy := s.assignments[moderatorID]; busy {
		s.mu.Unlock()
		return 0, ErrAlreadyAssigned
	}
	s.assignments[moderatorID] = id
	s.mu.Unlock()

	var (
		claimErr  error
		slotsLeft int
	)
	cs.mu.Lock()
	switch {
	case cs.ticket.Status == models.TicketStatusResolved:
		claimErr = ErrTicketResolved
	case len(cs.claims)+len(cs.verdicts) >= s.quorum:
		claimErr = ErrQuorumFull
	default:
		cs.claims[moderatorID] = true
		slotsLeft = s.quorum - len(cs.claims) - len(cs.verdicts)
	}
	cs.mu.Unlock()

	if claimErr != nil {
		s.mu.Lock()
		delete(s.assignments, moderatorID)
		s.mu.Unlock()
		return 0, claimErr
	}
	return slotsLeft, nil
}

// Release drops the moderator's assignment, freeing the claim slot. Called on
// both review completion and cancellation.
func (s *CaseStore) Release(moderatorID string) {
	s.mu.Lock()
	id, ok := s.assignments[moderatorID]
	delete(s.assignments, moderatorID)
	s.mu.Unlock()
	if !ok {
		return
	}
	if cs, err := s.lookup(id); err == nil {
		cs.mu.Lock()
		delete(cs.claims, moderatorID)
		cs.mu.Unlock()
	}
}

func (s *CaseStore) AssignmentFor(moderatorID string) (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.assignments[moderatorID]
	return id, ok
}

func verdictCodes(entries []verdictEntry) []int {
	codes := make([]int, len(entries))
	for i, e := range entries {
		codes[i] = e.code
	}
	return codes
}
