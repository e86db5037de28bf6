package tickets_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modflow/backend/internal/models"
	"modflow/backend/internal/tickets"
)

func newStore(t *testing.T, quorum int) (*tickets.CaseStore, int64) {
	t.Helper()
	store := tickets.NewCaseStore(quorum, nil)
	id, err := store.Create(&models.Ticket{
		ReportingUser: "reporter-1",
		Category:      "2",
		Subcategory:   "5",
	})
	require.NoError(t, err)
	return store, id
}

func TestCaseStore_CreateAssignsMonotonicIDs(t *testing.T) {
	store := tickets.NewCaseStore(1, nil)

	first, err := store.Create(&models.Ticket{})
	require.NoError(t, err)
	second, err := store.Create(&models.Ticket{})
	require.NoError(t, err)

	assert.Less(t, first, second)

	got, err := store.Get(first)
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatusOpen, got.Status)
}

func TestCaseStore_GetReturnsCopy(t *testing.T) {
	store, id := newStore(t, 1)

	got, err := store.Get(id)
	require.NoError(t, err)
	got.Category = "1"

	again, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "2", again.Category)
}

func TestCaseStore_AppendVerdictQuorumFiresOnce(t *testing.T) {
	store, id := newStore(t, 2)

	res, err := store.AppendVerdict(id, "mod-1", 10)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
	assert.False(t, res.QuorumReached)

	res, err = store.AppendVerdict(id, "mod-2", 99)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	assert.True(t, res.QuorumReached)
	assert.Equal(t, []int{10, 99}, res.Verdicts)

	_, err = store.AppendVerdict(id, "mod-3", 10)
	assert.ErrorIs(t, err, tickets.ErrQuorumFull)
}

func TestCaseStore_ConcurrentAppendsReachQuorumExactlyOnce(t *testing.T) {
	const quorum = 4
	store, id := newStore(t, quorum)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		reached int
		errs    int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			res, err := store.AppendVerdict(id, "mod", 10)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs++
				return
			}
			if res.QuorumReached {
				reached++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, reached)
	assert.Equal(t, 12, errs)

	verdicts, err := store.Verdicts(id)
	require.NoError(t, err)
	assert.Len(t, verdicts, quorum)
}

func TestCaseStore_AppendToResolvedTicket(t *testing.T) {
	store, id := newStore(t, 1)
	require.NoError(t, store.Resolve(id, 20))

	_, err := store.AppendVerdict(id, "mod-1", 10)
	assert.ErrorIs(t, err, tickets.ErrTicketResolved)
}

func TestCaseStore_ReopenClearsVerdicts(t *testing.T) {
	store, id := newStore(t, 2)

	_, err := store.AppendVerdict(id, "mod-1", 10)
	require.NoError(t, err)
	_, err = store.AppendVerdict(id, "mod-2", 99)
	require.NoError(t, err)

	require.NoError(t, store.Reopen(id))

	verdicts, err := store.Verdicts(id)
	require.NoError(t, err)
	assert.Empty(t, verdicts)

	got, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatusOpen, got.Status)
	assert.Equal(t, 0, got.Outcome)

	// A fresh round of reviews fits again.
	res, err := store.AppendVerdict(id, "mod-3", 10)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
}

func TestCaseStore_ClaimSlots(t *testing.T) {
	store, id := newStore(t, 2)

	slots, err := store.Claim("mod-1", id)
	require.NoError(t, err)
	assert.Equal(t, 1, slots)

	// One assignment per moderator.
	_, err = store.Claim("mod-1", id)
	assert.ErrorIs(t, err, tickets.ErrAlreadyAssigned)

	slots, err = store.Claim("mod-2", id)
	require.NoError(t, err)
	assert.Equal(t, 0, slots)

	_, err = store.Claim("mod-3", id)
	assert.ErrorIs(t, err, tickets.ErrQuorumFull)

	caseID, ok := store.AssignmentFor("mod-1")
	assert.True(t, ok)
	assert.Equal(t, id, caseID)
}

func TestCaseStore_ReleaseFreesSlot(t *testing.T) {
	store, id := newStore(t, 1)

	_, err := store.Claim("mod-1", id)
	require.NoError(t, err)
	_, err = store.Claim("mod-2", id)
	assert.ErrorIs(t, err, tickets.ErrQuorumFull)

	store.Release("mod-1")

	_, ok := store.AssignmentFor("mod-1")
	assert.False(t, ok)

	_, err = store.Claim("mod-2", id)
	assert.NoError(t, err)
}

func TestCaseStore_VerdictsCountAgainstClaimSlots(t *testing.T) {
	store, id := newStore(t, 2)

	_, err := store.Claim("mod-1", id)
	require.NoError(t, err)
	_, err = store.AppendVerdict(id, "mod-1", 10)
	require.NoError(t, err)
	store.Release("mod-1")

	// One verdict is in, so only one slot remains for this round.
	slots, err := store.Claim("mod-2", id)
	require.NoError(t, err)
	assert.Equal(t, 0, slots)

	_, err = store.Claim("mod-3", id)
	assert.ErrorIs(t, err, tickets.ErrQuorumFull)
}

func TestCaseStore_ClaimMissingTicket(t *testing.T) {
	store := tickets.NewCaseStore(1, nil)
	_, err := store.Claim("mod-1", 404)
	assert.ErrorIs(t, err, tickets.ErrNotFound)

	// The failed claim must not leave a dangling assignment.
	_, ok := store.AssignmentFor("mod-1")
	assert.False(t, ok)
}

func TestCaseStore_Hydrate(t *testing.T) {
	store := tickets.NewCaseStore(2, nil)
	store.Hydrate(
		[]models.Ticket{
			{ID: 7, Status: models.TicketStatusOpen, Category: "1", Subcategory: "3"},
		},
		map[int64][]models.Verdict{
			7: {{TicketID: 7, ReviewerID: "mod-1", Code: 10}},
		},
	)

	verdicts, err := store.Verdicts(7)
	require.NoError(t, err)
	assert.Equal(t, []int{10}, verdicts)

	// Ids continue past the hydrated maximum.
	id, err := store.Create(&models.Ticket{})
	require.NoError(t, err)
	assert.Greater(t, id, int64(7))

	// The rebuilt verdict list still counts toward quorum.
	res, err := store.AppendVerdict(7, "mod-2", 10)
	require.NoError(t, err)
	assert.True(t, res.QuorumReached)
}

func TestCaseStore_OpenTickets(t *testing.T) {
	store := tickets.NewCaseStore(1, nil)
	first, err := store.Create(&models.Ticket{})
	require.NoError(t, err)
	_, err = store.Create(&models.Ticket{})
	require.NoError(t, err)

	require.NoError(t, store.Resolve(first, 20))

	open := store.OpenTickets()
	require.Len(t, open, 1)
	assert.NotEqual(t, first, open[0].ID)
}
