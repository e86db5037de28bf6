// Package autoflag applies the automatic moderation policy to watched-chat
// messages: scoring them, deleting the worst outright, and synthesizing
// tickets for the borderline ones.
package autoflag

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"modflow/backend/internal/config"
	"modflow/backend/internal/models"
	"modflow/backend/internal/scorer"
)

// Decision is what the policy wants done with a message.
type Decision int

const (
	DecisionNone Decision = iota
	DecisionReport
	DecisionDelete
)

// Evaluation carries the decision plus the attributes that triggered it.
type Evaluation struct {
	Decision Decision
	Flagged  []string
	Scores   map[string]float64
}

// Policy scores message text and maps the scores to a decision using the
// configured thresholds.
type Policy struct {
	scorer          scorer.Scorer
	reportThreshold float64
	deleteThreshold float64
}

func NewPolicy(s scorer.Scorer, reportThreshold, deleteThreshold float64) *Policy {
	return &Policy{
		scorer:          s,
		reportThreshold: reportThreshold,
		deleteThreshold: deleteThreshold,
	}
}

// Evaluate scores the text. Any single attribute over the delete threshold
// forces deletion; otherwise any attribute over the report threshold opens a
// synthesized ticket.
func (p *Policy) Evaluate(ctx context.Context, text string) (Evaluation, error) {
	scores, err := p.scorer.Score(ctx, text)
	if err != nil {
		return Evaluation{}, err
	}

	ev := Evaluation{Decision: DecisionNone, Scores: scores}
	for attr, score := range scores {
		if score >= p.deleteThreshold {
			ev.Decision = DecisionDelete
		} else if score >= p.reportThreshold && ev.Decision == DecisionNone {
			ev.Decision = DecisionReport
		}
		if score >= p.reportThreshold {
			ev.Flagged = append(ev.Flagged, attr)
		}
	}
	sort.Strings(ev.Flagged)
	return ev, nil
}

// BuildTicket synthesizes an auto-flagged ticket for a borderline message. It
// enters the pipeline exactly like a human report, with the scores attached
// for the reviewer.
func (p *Policy) BuildTicket(content models.ReportedContent, ev Evaluation) *models.Ticket {
	var b strings.Builder
	b.WriteString("Automatically flagged. Scores:")
	for _, attr := range ev.Flagged {
		fmt.Fprintf(&b, "\n%s: %.2f", attr, ev.Scores[attr])
	}

	return &models.Ticket{
		ReportingUser:     "autoflag",
		ReportedUser:      content.AuthorID,
		Content:           content,
		Category:          config.AutoFlagCategory,
		Subcategory:       config.AutoFlagSubcategory,
		Description:       b.String(),
		AutoFlagged:       true,
		FlaggedAttributes: ev.Flagged,
	}
}

// MaxScore reports the highest attribute score, for logging.
func MaxScore(scores map[string]float64) (string, float64) {
	var (
		topAttr  string
		topScore float64
	)
	for attr, score := range scores {
		if score > topScore {
			topAttr, topScore = attr, score
		}
	}
	return topAttr, topScore
}
