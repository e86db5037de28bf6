package flow

import (
	"fmt"
	"regexp"

	"modflow/backend/internal/config"
	"modflow/backend/internal/models"
	"modflow/backend/internal/tickets"
)

type ReviewState int

const (
	StateReviewStart ReviewState = iota
	StateConfirmIssue
	StateConfirmCategory
	StateConfirmViolation
	StateReviewDone
	StateReviewCancelled
)

// Correction in the literal form "<category>,<subcategory>".
var correctionRe = regexp.MustCompile(`^([12]),([1-5])$`)

const taxonomyListing = `Category 1: Fake, Spam, or Fraudulent
    Subcategories:
    1 : Fraudulent
    2 : Fake/Misleading
    3 : Spam
    4 : Impersonation
    5 : Periscope Auto-Flag

Category 2: Offensive, Harmful, or Abusive
    Subcategories:
    1 : Nudity or Exploitation
    2 : Violence, Terrorism, or Incitement
    3 : Suicide or Self-Injury
    4 : Unauthorized or Illegal Sales
    5 : Hate Speech, Harassment, or Bullying

Enter the correct category number followed immediately by the subcategory number. i.e. '1,1' or '2,3'`

// ReviewFlow walks one moderator through judging one case. It reads the
// ticket through the store on every step so a category correction made here
// is what the violation question is asked about.
type ReviewFlow struct {
	state      ReviewState
	store      tickets.Store
	caseID     int64
	reviewerID string
}

func NewReviewFlow(store tickets.Store, caseID int64, reviewerID string) *ReviewFlow {
	return &ReviewFlow{
		state:      StateReviewStart,
		store:      store,
		caseID:     caseID,
		reviewerID: reviewerID,
	}
}

func (f *ReviewFlow) CaseID() int64 { return f.caseID }

func (f *ReviewFlow) Done() bool {
	return f.state == StateReviewDone || f.state == StateReviewCancelled
}

func (f *ReviewFlow) Cancelled() bool {
	return f.state == StateReviewCancelled
}

// HandleMessage applies one normalized inbound message. On completion it
// returns the verdict code to append to the case. An error means the shared
// state is inconsistent (case vanished mid-review); the session must surface
// it instead of guessing.
func (f *ReviewFlow) HandleMessage(text string) ([]string, *int, error) {
	if text == config.CancelKeyword {
		f.state = StateReviewCancelled
		return []string{"Review cancelled."}, nil, nil
	}

	ticket, err := f.store.Get(f.caseID)
	if err != nil {
		return nil, nil, fmt.Errorf("review of case %d: %w", f.caseID, err)
	}

	switch f.state {
	case StateReviewStart:
		f.state = StateConfirmIssue
		reply := fmt.Sprintf("Message: ```%s```\n", ticket.Content.Text) +
			"Is it (remotely) possible that this message violates our policies? Enter 'y' or 'n'"
		return []string{reply}, nil, nil

	case StateConfirmIssue:
		return f.confirmIssue(text, ticket)

	case StateConfirmCategory:
		return f.confirmCategory(text)

	case StateConfirmViolation:
		return f.confirmViolation(text, ticket)

	default:
		return nil, nil, nil
	}
}

func (f *ReviewFlow) confirmIssue(text string, ticket *models.Ticket) ([]string, *int, error) {
	switch text {
	case "y":
		f.state = StateConfirmCategory
		reply := fmt.Sprintf("The reported category was ```%s```\n", ticket.CategoryLabel()) +
			"Is that correct? Enter 'y' or 'n'"
		return []string{reply}, nil, nil
	case "n":
		f.state = StateReviewDone
		code := config.VerdictNonViolation
		return []string{"Review complete. Message marked as a non-violation."}, &code, nil
	default:
		return []string{"Enter 'y' or 'n'."}, nil, nil
	}
}

func (f *ReviewFlow) confirmCategory(text string) ([]string, *int, error) {
	if m := correctionRe.FindStringSubmatch(text); m != nil {
		if _, ok := config.CategoryCodes[m[1]][m[2]]; ok {
			if err := f.store.UpdateCategory(f.caseID, m[1], m[2]); err != nil {
				return nil, nil, fmt.Errorf("correcting category of case %d: %w", f.caseID, err)
			}
			text = "y"
		}
	}

	switch text {
	case "y":
		ticket, err := f.store.Get(f.caseID)
		if err != nil {
			return nil, nil, fmt.Errorf("review of case %d: %w", f.caseID, err)
		}
		f.state = StateConfirmViolation
		reply := fmt.Sprintf("```SNIPPET FROM ATTORNEY-APPROVED OFFICIAL CONTENT POLICY REGARDING: %s```\n", ticket.CategoryLabel())
		if ticket.Description != "" {
			reply += fmt.Sprintf("The reporter provided the following additional information: ```%s```\n", ticket.Description)
		}
		reply += "Does this post violate the above policy? Enter 'y' or 'n'"
		return []string{reply}, nil, nil
	case "n":
		return []string{taxonomyListing}, nil, nil
	default:
		return []string{"Enter 'y', 'n', or a correction like '2,3'."}, nil, nil
	}
}

func (f *ReviewFlow) confirmViolation(text string, ticket *models.Ticket) ([]string, *int, error) {
	var code int
	switch text {
	case "y":
		switch ticket.Category {
		case config.CategoryFakeSpamFraud:
			code = config.VerdictDelete
		case config.CategoryAbusive:
			code = config.VerdictDeleteAndBan
		default:
			// Custom-category violations get the delete-only tier; the
			// reviewer had the chance to reclassify above.
			code = config.VerdictDelete
		}
	case "n":
		code = config.VerdictNonViolation
	default:
		return []string{"Enter 'y' or 'n'."}, nil, nil
	}

	f.state = StateReviewDone
	return []string{"Thank you. This review is complete."}, &code, nil
}
