package modhub_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"modflow/backend/internal/models"
	"modflow/backend/internal/modhub"
	"modflow/backend/internal/tickets"
)

const settle = 150 * time.Millisecond

type fixture struct {
	hub      *modhub.ManagerService
	store    *tickets.CaseStore
	notifier *MockNotifier
	actions  *MockActions
	channel  *MockChannel
}

func newFixture(quorum int) *fixture {
	store := tickets.NewCaseStore(quorum, nil)
	resolver := &mockResolver{content: models.ReportedContent{
		ChatID:     -100123,
		MessageID:  42,
		AuthorID:   "555",
		AuthorName: "offender",
		Text:       "you are all idiots",
	}}

	hub := modhub.NewManagerService(store, resolver)

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.Anything).Return(nil)
	actions := new(MockActions)
	channel := new(MockChannel)
	channel.On("PostTicket", mock.Anything).Return(int64(777), 1, nil)
	channel.On("Announce", mock.Anything).Return(nil)

	hub.Notifier = notifier
	hub.Actions = actions
	hub.Assigner = modhub.NewAssignerService(channel, nil)

	return &fixture{hub: hub, store: store, notifier: notifier, actions: actions, channel: channel}
}

func (f *fixture) say(userID, text string) {
	f.hub.IncomingCh <- models.ModEvent{UserID: userID, Text: text, Direct: true}
}

func TestManager_RegisterUnregister(t *testing.T) {
	f := newFixture(1)
	go f.hub.Run()

	client := newMockClient("user_A")
	f.hub.RegisterCh <- client
	time.Sleep(settle)
	got, ok := f.hub.ClientFor("user_A")
	require.True(t, ok)
	assert.Equal(t, client, got)

	f.hub.UnregisterCh <- client
	time.Sleep(settle)
	_, ok = f.hub.ClientFor("user_A")
	assert.False(t, ok)
}

func TestManager_ClientForIsSafeDuringRegistration(t *testing.T) {
	f := newFixture(1)
	go f.hub.Run()

	// Lookups come from transport goroutines while the hub loop rewrites the
	// client map; hammer both sides so -race has something to catch.
	stop := make(chan struct{})
	go func() {
		for {
			select {
			case <-stop:
				return
			default:
				f.hub.ClientFor("user_A")
			}
		}
	}()

	for i := 0; i < 200; i++ {
		client := newMockClient("user_A")
		f.hub.RegisterCh <- client
		f.hub.UnregisterCh <- client
	}
	close(stop)

	time.Sleep(settle)
	_, ok := f.hub.ClientFor("user_A")
	assert.False(t, ok)
}

func TestManager_ReportIntakeOpensAndAdvertisesTicket(t *testing.T) {
	f := newFixture(1)
	go f.hub.Run()

	client := newMockClient("reporter-1")
	f.hub.RegisterCh <- client
	time.Sleep(settle)

	for _, text := range []string{"report", "https://t.me/c/123/42", "3", "5", "skip"} {
		f.say("reporter-1", text)
	}
	time.Sleep(settle)

	open := f.store.OpenTickets()
	require.Len(t, open, 1)
	assert.Equal(t, "2", open[0].Category)
	assert.Equal(t, "5", open[0].Subcategory)
	assert.Equal(t, "555", open[0].ReportedUser)

	f.channel.AssertCalled(t, "PostTicket", mock.Anything)

	replies := client.drain()
	assert.True(t, received(replies, "Report Summary"), "reporter did not get the summary: %v", replies)
}

func TestManager_CancelledReportOpensNothing(t *testing.T) {
	f := newFixture(1)
	go f.hub.Run()

	client := newMockClient("reporter-1")
	f.hub.RegisterCh <- client
	time.Sleep(settle)

	f.say("reporter-1", "report")
	f.say("reporter-1", "cancel")
	time.Sleep(settle)

	assert.Empty(t, f.store.OpenTickets())
	f.channel.AssertNotCalled(t, "PostTicket", mock.Anything)

	// The session is gone; a fresh "report" starts over.
	f.say("reporter-1", "report")
	time.Sleep(settle)
	assert.True(t, received(client.drain(), "copy paste the link"))
}

func TestManager_MessageDuringTeardownStartsNextFlow(t *testing.T) {
	f := newFixture(1)
	go f.hub.Run()

	client := newMockClient("reporter-1")
	f.hub.RegisterCh <- client
	time.Sleep(settle)

	// Sent back to back, the second "report" often arrives while the
	// cancelled session is still being torn down; it must start a fresh
	// intake either way.
	for i := 0; i < 5; i++ {
		f.say("reporter-1", "report")
		time.Sleep(settle)
		client.drain()

		f.say("reporter-1", "cancel")
		f.say("reporter-1", "report")
		time.Sleep(settle)

		assert.True(t, received(client.drain(), "copy paste the link"),
			"round %d: follow-up report was swallowed", i)
	}
}

func TestManager_ClaimAndUnanimousRemoval(t *testing.T) {
	f := newFixture(1)
	go f.hub.Run()

	mod := newMockClient("mod-1")
	f.hub.RegisterCh <- mod
	time.Sleep(settle)

	id, err := f.store.Create(&models.Ticket{
		ReportingUser: "reporter-1",
		ReportedUser:  "555",
		Content:       models.ReportedContent{Text: "you are all idiots", AuthorName: "offender"},
		Category:      "2",
		Subcategory:   "5",
	})
	require.NoError(t, err)

	f.actions.On("DeleteContent", mock.Anything).Return(nil)
	f.actions.On("RemoveUser", "555", "offender").Return(nil)

	f.hub.ClaimCh <- models.ClaimSignal{ModeratorID: "mod-1", TicketID: id}
	time.Sleep(settle)

	f.notifier.AssertCalled(t, "Notify", "mod-1", mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "Report summary for Ticket #1")
	}))

	for _, text := range []string{"s", "y", "y", "y"} {
		f.say("mod-1", text)
	}
	time.Sleep(settle)

	resolved, err := f.store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatusResolved, resolved.Status)
	assert.Equal(t, 20, resolved.Outcome)

	f.actions.AssertCalled(t, "DeleteContent", mock.Anything)
	f.actions.AssertCalled(t, "RemoveUser", "555", "offender")
	f.channel.AssertCalled(t, "Announce", mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "has been removed")
	}))
	f.notifier.AssertCalled(t, "Notify", "reporter-1", mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "offending user has been removed")
	}))

	// The assignment is released once the review completes.
	_, assigned := f.store.AssignmentFor("mod-1")
	assert.False(t, assigned)
}

func TestManager_AssignedModeratorIsRoutedToReviewNotReport(t *testing.T) {
	f := newFixture(1)
	go f.hub.Run()

	mod := newMockClient("mod-1")
	f.hub.RegisterCh <- mod
	time.Sleep(settle)

	id, err := f.store.Create(&models.Ticket{Category: "2", Subcategory: "5",
		Content: models.ReportedContent{Text: "you are all idiots"}})
	require.NoError(t, err)

	f.hub.ClaimCh <- models.ClaimSignal{ModeratorID: "mod-1", TicketID: id}
	time.Sleep(settle)

	// Anything but the ready keyword is ignored while assigned, even the
	// report keyword.
	f.say("mod-1", "report")
	time.Sleep(settle)
	assert.False(t, received(mod.drain(), "copy paste the link"))

	f.say("mod-1", "s")
	time.Sleep(settle)
	assert.True(t, received(mod.drain(), "violates our policies"))
}

func TestManager_SecondClaimantIsRejected(t *testing.T) {
	f := newFixture(1)
	go f.hub.Run()

	id, err := f.store.Create(&models.Ticket{Category: "1", Subcategory: "3"})
	require.NoError(t, err)

	f.hub.ClaimCh <- models.ClaimSignal{ModeratorID: "mod-1", TicketID: id}
	f.hub.ClaimCh <- models.ClaimSignal{ModeratorID: "mod-2", TicketID: id}
	time.Sleep(settle)

	f.notifier.AssertCalled(t, "Notify", "mod-2", mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "already fully claimed")
	}))
}

func TestManager_DisagreementReopensAndReadvertises(t *testing.T) {
	f := newFixture(2)
	go f.hub.Run()

	modA := newMockClient("mod-1")
	modB := newMockClient("mod-2")
	f.hub.RegisterCh <- modA
	f.hub.RegisterCh <- modB
	time.Sleep(settle)

	// Enters through the hub so the advertisement count is observable.
	f.hub.TicketCh <- &models.Ticket{
		ReportingUser: "reporter-1",
		ReportedUser:  "555",
		Content:       models.ReportedContent{Text: "you are all idiots"},
		Category:      "2",
		Subcategory:   "5",
	}
	time.Sleep(settle)

	open := f.store.OpenTickets()
	require.Len(t, open, 1)
	id := open[0].ID

	f.hub.ClaimCh <- models.ClaimSignal{ModeratorID: "mod-1", TicketID: id}
	f.hub.ClaimCh <- models.ClaimSignal{ModeratorID: "mod-2", TicketID: id}
	time.Sleep(settle)

	// First reviewer finds a violation, second absolves.
	for _, text := range []string{"s", "y", "y", "y"} {
		f.say("mod-1", text)
	}
	time.Sleep(settle)
	for _, text := range []string{"s", "n"} {
		f.say("mod-2", text)
	}
	time.Sleep(settle)

	reopened, err := f.store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatusOpen, reopened.Status)

	verdicts, err := f.store.Verdicts(id)
	require.NoError(t, err)
	assert.Empty(t, verdicts)

	f.channel.AssertNumberOfCalls(t, "PostTicket", 2)
	f.channel.AssertCalled(t, "Announce", mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "reopened")
	}))

	// No enforcement happened.
	f.actions.AssertNotCalled(t, "DeleteContent", mock.Anything)
	f.actions.AssertNotCalled(t, "RemoveUser", mock.Anything, mock.Anything)
}

func TestManager_BusyModeratorCannotClaim(t *testing.T) {
	f := newFixture(1)
	go f.hub.Run()

	client := newMockClient("mod-1")
	f.hub.RegisterCh <- client
	time.Sleep(settle)

	// An in-progress report session blocks claiming.
	f.say("mod-1", "report")
	time.Sleep(settle)

	id, err := f.store.Create(&models.Ticket{Category: "1", Subcategory: "3"})
	require.NoError(t, err)

	f.hub.ClaimCh <- models.ClaimSignal{ModeratorID: "mod-1", TicketID: id}
	time.Sleep(settle)

	f.notifier.AssertCalled(t, "Notify", "mod-1", mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "Finish your current session")
	}))
}

func TestManager_NonDirectEventsAreIgnored(t *testing.T) {
	f := newFixture(1)
	go f.hub.Run()

	client := newMockClient("user_A")
	f.hub.RegisterCh <- client
	time.Sleep(settle)

	f.hub.IncomingCh <- models.ModEvent{UserID: "user_A", Text: "report", Direct: false}
	time.Sleep(settle)

	assert.Empty(t, client.drain())
	assert.Empty(t, f.store.OpenTickets())
}

func TestManager_AutoFlaggedReporterIsNotNotified(t *testing.T) {
	f := newFixture(1)
	go f.hub.Run()

	mod := newMockClient("mod-1")
	f.hub.RegisterCh <- mod
	time.Sleep(settle)

	f.actions.On("DeleteContent", mock.Anything).Return(nil)

	f.hub.TicketCh <- &models.Ticket{
		ReportingUser: "autoflag",
		ReportedUser:  "555",
		Content:       models.ReportedContent{Text: "spam spam spam"},
		Category:      "1",
		Subcategory:   "5",
		AutoFlagged:   true,
	}
	time.Sleep(settle)

	open := f.store.OpenTickets()
	require.Len(t, open, 1)

	f.hub.ClaimCh <- models.ClaimSignal{ModeratorID: "mod-1", TicketID: open[0].ID}
	time.Sleep(settle)
	for _, text := range []string{"s", "y", "y", "y"} {
		f.say("mod-1", text)
	}
	time.Sleep(settle)

	resolved, err := f.store.Get(open[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatusResolved, resolved.Status)
	assert.Equal(t, 10, resolved.Outcome)

	// Nothing to DM: the "reporter" is the flagging pipeline itself.
	f.notifier.AssertNotCalled(t, "Notify", "autoflag", mock.Anything)
}
