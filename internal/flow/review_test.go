package flow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modflow/backend/internal/flow"
	"modflow/backend/internal/models"
	"modflow/backend/internal/tickets"
)

func newReviewFixture(t *testing.T, category, subcategory, description string) (*flow.ReviewFlow, tickets.Store, int64) {
	t.Helper()
	store := tickets.NewCaseStore(1, nil)
	id, err := store.Create(&models.Ticket{
		ReportingUser: "reporter-1",
		ReportedUser:  "555",
		Content:       models.ReportedContent{Text: "you are all idiots", AuthorName: "offender"},
		Category:      category,
		Subcategory:   subcategory,
		Description:   description,
	})
	require.NoError(t, err)
	return flow.NewReviewFlow(store, id, "mod-1"), store, id
}

func TestReviewFlow_AbusiveViolation(t *testing.T) {
	f, _, _ := newReviewFixture(t, "2", "5", "")

	replies, verdict, err := f.HandleMessage("s")
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0], "you are all idiots")
	assert.Contains(t, replies[0], "violates our policies")
	assert.Nil(t, verdict)

	replies, verdict, err = f.HandleMessage("y")
	require.NoError(t, err)
	assert.Contains(t, replies[0], "Hate Speech, Harassment, or Bullying")
	assert.Nil(t, verdict)

	replies, verdict, err = f.HandleMessage("y")
	require.NoError(t, err)
	assert.Contains(t, replies[0], "CONTENT POLICY")
	assert.Nil(t, verdict)

	_, verdict, err = f.HandleMessage("y")
	require.NoError(t, err)
	require.True(t, f.Done())
	require.NotNil(t, verdict)
	assert.Equal(t, 20, *verdict)
}

func TestReviewFlow_NotEvenRemotelyPossible(t *testing.T) {
	f, _, _ := newReviewFixture(t, "1", "3", "")

	_, _, err := f.HandleMessage("s")
	require.NoError(t, err)

	replies, verdict, err := f.HandleMessage("n")
	require.NoError(t, err)
	require.True(t, f.Done())
	require.NotNil(t, verdict)
	assert.Equal(t, 99, *verdict)
	assert.Contains(t, replies[0], "non-violation")
}

func TestReviewFlow_FakeCategoryViolationDeletesOnly(t *testing.T) {
	f, _, _ := newReviewFixture(t, "1", "3", "")

	for _, in := range []string{"s", "y", "y"} {
		_, _, err := f.HandleMessage(in)
		require.NoError(t, err)
	}
	_, verdict, err := f.HandleMessage("y")
	require.NoError(t, err)
	require.NotNil(t, verdict)
	assert.Equal(t, 10, *verdict)
}

func TestReviewFlow_CategoryCorrection(t *testing.T) {
	f, store, id := newReviewFixture(t, "1", "3", "")

	_, _, err := f.HandleMessage("s")
	require.NoError(t, err)
	_, _, err = f.HandleMessage("y")
	require.NoError(t, err)

	// Correcting to abusive/hate speech both updates the ticket and moves
	// straight to the violation question.
	replies, _, err := f.HandleMessage("2,5")
	require.NoError(t, err)
	assert.Contains(t, replies[0], "Hate Speech, Harassment, or Bullying")

	updated, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "2", updated.Category)
	assert.Equal(t, "5", updated.Subcategory)

	// The verdict reflects the corrected category.
	_, verdict, err := f.HandleMessage("y")
	require.NoError(t, err)
	require.NotNil(t, verdict)
	assert.Equal(t, 20, *verdict)
}

func TestReviewFlow_WrongCategoryShowsTaxonomy(t *testing.T) {
	f, _, _ := newReviewFixture(t, "1", "3", "")

	_, _, err := f.HandleMessage("s")
	require.NoError(t, err)
	_, _, err = f.HandleMessage("y")
	require.NoError(t, err)

	replies, verdict, err := f.HandleMessage("n")
	require.NoError(t, err)
	assert.Nil(t, verdict)
	assert.Contains(t, replies[0], "Category 1: Fake, Spam, or Fraudulent")
	assert.False(t, f.Done())
}

func TestReviewFlow_DescriptionShownToReviewer(t *testing.T) {
	f, _, _ := newReviewFixture(t, "2", "2", "threatened to hurt me")

	for _, in := range []string{"s", "y"} {
		_, _, err := f.HandleMessage(in)
		require.NoError(t, err)
	}
	replies, _, err := f.HandleMessage("y")
	require.NoError(t, err)
	assert.Contains(t, replies[0], "threatened to hurt me")
}

func TestReviewFlow_Cancel(t *testing.T) {
	f, _, _ := newReviewFixture(t, "2", "5", "")

	_, _, err := f.HandleMessage("s")
	require.NoError(t, err)

	replies, verdict, err := f.HandleMessage("cancel")
	require.NoError(t, err)
	require.True(t, f.Done())
	assert.True(t, f.Cancelled())
	assert.Nil(t, verdict)
	assert.Equal(t, []string{"Review cancelled."}, replies)
}

func TestReviewFlow_CaseVanishedMidReview(t *testing.T) {
	store := tickets.NewCaseStore(1, nil)
	f := flow.NewReviewFlow(store, 404, "mod-1")

	_, _, err := f.HandleMessage("s")
	require.Error(t, err)
	assert.ErrorIs(t, err, tickets.ErrNotFound)
}

func TestReviewFlow_RepromptOnNoise(t *testing.T) {
	f, _, _ := newReviewFixture(t, "2", "5", "")

	_, _, err := f.HandleMessage("s")
	require.NoError(t, err)

	replies, verdict, err := f.HandleMessage("maybe")
	require.NoError(t, err)
	assert.Nil(t, verdict)
	assert.Equal(t, []string{"Enter 'y' or 'n'."}, replies)
	assert.False(t, f.Done())
}
