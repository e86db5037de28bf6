package autoflag_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modflow/backend/internal/autoflag"
	"modflow/backend/internal/models"
)

type stubScorer struct {
	scores map[string]float64
	err    error
}

func (s *stubScorer) Score(ctx context.Context, text string) (map[string]float64, error) {
	return s.scores, s.err
}

func TestPolicy_Evaluate(t *testing.T) {
	tests := []struct {
		name     string
		scores   map[string]float64
		decision autoflag.Decision
		flagged  []string
	}{
		{
			"clean",
			map[string]float64{"TOXICITY": 0.10, "THREAT": 0.02},
			autoflag.DecisionNone,
			nil,
		},
		{
			"borderline opens a ticket",
			map[string]float64{"TOXICITY": 0.92, "INSULT": 0.91},
			autoflag.DecisionReport,
			[]string{"INSULT", "TOXICITY"},
		},
		{
			"report threshold is inclusive",
			map[string]float64{"TOXICITY": 0.90},
			autoflag.DecisionReport,
			[]string{"TOXICITY"},
		},
		{
			"severe enough to delete",
			map[string]float64{"TOXICITY": 0.98, "THREAT": 0.50},
			autoflag.DecisionDelete,
			[]string{"TOXICITY"},
		},
		{
			"delete wins over report",
			map[string]float64{"TOXICITY": 0.98, "INSULT": 0.92},
			autoflag.DecisionDelete,
			[]string{"INSULT", "TOXICITY"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := autoflag.NewPolicy(&stubScorer{scores: tc.scores}, 0.90, 0.97)
			ev, err := p.Evaluate(context.Background(), "whatever")
			require.NoError(t, err)
			assert.Equal(t, tc.decision, ev.Decision)
			assert.Equal(t, tc.flagged, ev.Flagged)
		})
	}
}

func TestPolicy_EvaluateScorerFailure(t *testing.T) {
	p := autoflag.NewPolicy(&stubScorer{err: errors.New("api down")}, 0.90, 0.97)
	_, err := p.Evaluate(context.Background(), "whatever")
	assert.Error(t, err)
}

func TestPolicy_BuildTicket(t *testing.T) {
	p := autoflag.NewPolicy(&stubScorer{}, 0.90, 0.97)
	content := models.ReportedContent{
		ChatID:     -100123,
		MessageID:  42,
		AuthorID:   "555",
		AuthorName: "offender",
		Text:       "spam spam spam",
	}
	ev := autoflag.Evaluation{
		Decision: autoflag.DecisionReport,
		Flagged:  []string{"SPAM", "TOXICITY"},
		Scores:   map[string]float64{"SPAM": 0.95, "TOXICITY": 0.91},
	}

	ticket := p.BuildTicket(content, ev)

	assert.True(t, ticket.AutoFlagged)
	assert.Equal(t, "autoflag", ticket.ReportingUser)
	assert.Equal(t, "555", ticket.ReportedUser)
	assert.Equal(t, "1", ticket.Category)
	assert.Equal(t, "5", ticket.Subcategory)
	assert.Equal(t, "Periscope Auto-Flag", ticket.CategoryLabel())
	assert.Equal(t, []string{"SPAM", "TOXICITY"}, []string(ticket.FlaggedAttributes))
	assert.Contains(t, ticket.Description, "SPAM: 0.95")
	assert.Contains(t, ticket.Description, "TOXICITY: 0.91")
}

func TestMaxScore(t *testing.T) {
	attr, score := autoflag.MaxScore(map[string]float64{"TOXICITY": 0.3, "THREAT": 0.8})
	assert.Equal(t, "THREAT", attr)
	assert.InDelta(t, 0.8, score, 1e-9)
}
