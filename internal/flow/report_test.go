package flow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modflow/backend/internal/flow"
	"modflow/backend/internal/models"
)

// mockResolver resolves a fixed set of references and fails everything else
// with a configurable error.
type mockResolver struct {
	known map[string]*models.ReportedContent
	err   error
}

func (r *mockResolver) Resolve(ref string) (*models.ReportedContent, error) {
	if content, ok := r.known[ref]; ok {
		return content, nil
	}
	if r.err != nil {
		return nil, r.err
	}
	return nil, flow.ErrMalformedReference
}

func newTestResolver() *mockResolver {
	return &mockResolver{
		known: map[string]*models.ReportedContent{
			"https://t.me/c/123/42": {
				ChatID:     -100123,
				MessageID:  42,
				AuthorID:   "555",
				AuthorName: "offender",
				Text:       "you are all idiots",
			},
		},
	}
}

func drive(f *flow.ReportFlow, inputs ...string) ([]string, *models.Ticket) {
	var (
		lastReplies []string
		ticket      *models.Ticket
	)
	for _, in := range inputs {
		lastReplies, ticket = f.HandleMessage(in)
	}
	return lastReplies, ticket
}

func TestReportFlow_AbusiveHateSpeech(t *testing.T) {
	f := flow.NewReportFlow(newTestResolver(), "reporter-1")

	replies, ticket := f.HandleMessage("report")
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0], "copy paste the link")
	assert.Nil(t, ticket)

	replies, ticket = f.HandleMessage("https://t.me/c/123/42")
	require.Len(t, replies, 3)
	assert.Contains(t, replies[1], "offender: you are all idiots")
	assert.Nil(t, ticket)

	replies, _ = f.HandleMessage("3")
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0], "Hate Speech, Harassment, or Bullying")

	replies, _ = f.HandleMessage("5")
	assert.Contains(t, replies[0], "optional")

	replies, ticket = f.HandleMessage("skip")
	require.True(t, f.Done())
	require.NotNil(t, ticket)
	assert.Contains(t, replies[0], "Report Summary")

	assert.Equal(t, "reporter-1", ticket.ReportingUser)
	assert.Equal(t, "555", ticket.ReportedUser)
	assert.Equal(t, "2", ticket.Category)
	assert.Equal(t, "5", ticket.Subcategory)
	assert.Equal(t, "Hate Speech, Harassment, or Bullying", ticket.CategoryLabel())
	assert.Empty(t, ticket.Description)
}

func TestReportFlow_CustomCategoryWithDescription(t *testing.T) {
	f := flow.NewReportFlow(newTestResolver(), "reporter-1")

	_, ticket := drive(f, "report", "https://t.me/c/123/42", "4", "doxxing", "they posted my address")
	require.True(t, f.Done())
	require.NotNil(t, ticket)

	assert.Equal(t, "3", ticket.Category)
	assert.Equal(t, "doxxing", ticket.Subcategory)
	assert.Equal(t, "doxxing", ticket.CategoryLabel())
	assert.Equal(t, "they posted my address", ticket.Description)
}

func TestReportFlow_NotInterestedProducesNoTicket(t *testing.T) {
	f := flow.NewReportFlow(newTestResolver(), "reporter-1")

	replies, ticket := drive(f, "report", "https://t.me/c/123/42", "1")
	require.True(t, f.Done())
	assert.False(t, f.Cancelled())
	assert.Nil(t, ticket)
	assert.Contains(t, replies[0], "fewer posts like this")
}

func TestReportFlow_InvalidMenuChoiceReprompts(t *testing.T) {
	f := flow.NewReportFlow(newTestResolver(), "reporter-1")

	replies, _ := drive(f, "report", "https://t.me/c/123/42", "7")
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0], "one of the numbers")
	assert.False(t, f.Done())

	// The menu is still live, a valid answer moves on.
	replies, _ = f.HandleMessage("2")
	assert.Contains(t, replies[0], "Fraudulent")
}

func TestReportFlow_FakeSubmenuRejectsReservedCode(t *testing.T) {
	f := flow.NewReportFlow(newTestResolver(), "reporter-1")

	// Subcategory 5 of the fake category belongs to the auto-flag pipeline
	// and is not offered to reporters.
	replies, _ := drive(f, "report", "https://t.me/c/123/42", "2", "5")
	assert.Contains(t, replies[0], "isn't one of the options")
	assert.False(t, f.Done())
}

func TestReportFlow_CancelAtAnyPoint(t *testing.T) {
	f := flow.NewReportFlow(newTestResolver(), "reporter-1")

	replies, ticket := drive(f, "report", "https://t.me/c/123/42", "cancel")
	require.True(t, f.Done())
	assert.True(t, f.Cancelled())
	assert.Nil(t, ticket)
	assert.Equal(t, []string{"Report cancelled."}, replies)
}

func TestReportFlow_ResolverErrors(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		reply string
	}{
		{"malformed", flow.ErrMalformedReference, "couldn't read that link"},
		{"source not visible", flow.ErrSourceNotVisible, "chats that I'm not in"},
		{"channel missing", flow.ErrChannelNotFound, "this channel was deleted"},
		{"content missing", flow.ErrContentNotFound, "this message was deleted"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resolver := &mockResolver{err: tc.err}
			f := flow.NewReportFlow(resolver, "reporter-1")

			replies, _ := drive(f, "report", "https://t.me/c/999/1")
			require.Len(t, replies, 1)
			assert.Contains(t, replies[0], tc.reply)
			assert.False(t, f.Done())

			// The flow stays on the target step so the user can retry.
			replies, _ = f.HandleMessage("nonsense")
			assert.Len(t, replies, 1)
		})
	}
}
