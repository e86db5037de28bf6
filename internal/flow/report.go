// Package flow contains the two per-user conversational state machines:
// report intake and moderator review. A flow suspends between messages; all
// of its state lives on the struct, never on a goroutine stack.
package flow

import (
	"errors"
	"fmt"

	"modflow/backend/internal/config"
	"modflow/backend/internal/models"
)

type ReportState int

const (
	StateReportStart ReportState = iota
	StateAwaitingTarget
	StateTargetIdentified
	StateCategoryFake
	StateCategoryAbusive
	StateCategoryOther
	StateCategoryComplete
	StateReportDone
	StateReportCancelled
)

const (
	reportUsage = "Thank you for starting the reporting process. " +
		"Say `help` at any time for more information.\n\n" +
		"Please copy paste the link to the message you want to report.\n" +
		"You can obtain this link by long-pressing the message and choosing `Copy Message Link`."

	reasonMenu = "Please tell us more about why you're reporting this post.\n" +
		" 1) I'm not interested in this post.\n" +
		" 2) It's fake, spam, or fraudulent.\n" +
		" 3) It's offensive, harmful, or abusive.\n" +
		" 4) Another reason."

	fakeSubMenu = "Thanks! We just need a little more information. Is it...\n" +
		"1) Fraudulent\n2) Fake/Misleading\n3) Spam\n4) Impersonation"

	abusiveSubMenu = "Thanks! We just need a little more information. Is it...\n" +
		"1) Nudity or Exploitation\n2) Violence, Terrorism, or Incitement\n" +
		"3) Suicide or Self-Injury\n4) Unauthorized or Illegal Sales\n" +
		"5) Hate Speech, Harassment, or Bullying"

	descriptionPrompt = "Alright! Final (optional) step, please share any relevant additional information or type 'skip' and press enter."
)

// ReportFlow walks a reporting user from a raw "report" request to a fully
// categorized ticket.
type ReportFlow struct {
	state    ReportState
	resolver ContentResolver
	draft    *models.Ticket
}

func NewReportFlow(resolver ContentResolver, reportingUser string) *ReportFlow {
	return &ReportFlow{
		state:    StateReportStart,
		resolver: resolver,
		draft:    &models.Ticket{ReportingUser: reportingUser},
	}
}

// Done reports whether the flow reached a terminal state, successful or not.
func (f *ReportFlow) Done() bool {
	return f.state == StateReportDone || f.state == StateReportCancelled
}

// Cancelled reports whether the flow was abandoned by the user.
func (f *ReportFlow) Cancelled() bool {
	return f.state == StateReportCancelled
}

// HandleMessage applies one normalized inbound message to the flow. It
// returns the replies to send back and, on successful completion of intake,
// the finished ticket. A nil ticket with Done() true means the flow ended
// without producing a report.
func (f *ReportFlow) HandleMessage(text string) ([]string, *models.Ticket) {
	if text == config.CancelKeyword {
		f.state = StateReportCancelled
		f.draft = nil
		return []string{"Report cancelled."}, nil
	}

	switch f.state {
	case StateReportStart:
		f.state = StateAwaitingTarget
		return []string{reportUsage}, nil

	case StateAwaitingTarget:
		return f.resolveTarget(text), nil

	case StateTargetIdentified:
		return f.chooseReason(text), nil

	case StateCategoryFake:
		// "5" (the auto-flag subcategory) is reserved and not offered here.
		return f.chooseSubcategory(text, config.CategoryFakeSpamFraud, []string{"1", "2", "3", "4"}, fakeSubMenu), nil

	case StateCategoryAbusive:
		return f.chooseSubcategory(text, config.CategoryAbusive, []string{"1", "2", "3", "4", "5"}, abusiveSubMenu), nil

	case StateCategoryOther:
		// The free-text reply becomes the custom subcategory label.
		f.draft.Category = config.CategoryCustom
		f.draft.Subcategory = text
		f.state = StateCategoryComplete
		return []string{descriptionPrompt}, nil

	case StateCategoryComplete:
		return f.finish(text)

	default:
		return nil, nil
	}
}

func (f *ReportFlow) resolveTarget(text string) []string {
	content, err := f.resolver.Resolve(text)
	switch {
	case errors.Is(err, ErrMalformedReference):
		return []string{"I'm sorry, I couldn't read that link. Please try again or say `cancel` to cancel."}
	case errors.Is(err, ErrSourceNotVisible):
		return []string{"I cannot accept reports of messages from chats that I'm not in. Please have the chat owner add me and try again."}
	case errors.Is(err, ErrChannelNotFound):
		return []string{"It seems this channel was deleted or never existed. Please try again or say `cancel` to cancel."}
	case errors.Is(err, ErrContentNotFound):
		return []string{"It seems this message was deleted or never existed. Please try again or say `cancel` to cancel."}
	case err != nil:
		return []string{"Something went wrong while looking that message up. Please try again or say `cancel` to cancel."}
	}

	f.draft.Content = *content
	f.draft.ReportedUser = content.AuthorID
	f.state = StateTargetIdentified
	return []string{
		"I found this message:",
		"```" + content.AuthorName + ": " + content.Text + "```",
		reasonMenu,
	}
}

func (f *ReportFlow) chooseReason(text string) []string {
	switch text {
	case "1":
		// Degenerate report: the user just doesn't want to see the post.
		f.state = StateReportDone
		f.draft = nil
		return []string{"Ok, we'll try to show you fewer posts like this."}
	case "2":
		f.state = StateCategoryFake
		return []string{fakeSubMenu}
	case "3":
		f.state = StateCategoryAbusive
		return []string{abusiveSubMenu}
	case "4":
		f.state = StateCategoryOther
		return []string{"Please let us know what type of abuse/misuse you think this is."}
	default:
		return []string{"Please answer with one of the numbers below.\n" + reasonMenu}
	}
}

func (f *ReportFlow) chooseSubcategory(text, category string, valid []string, menu string) []string {
	for _, code := range valid {
		if text == code {
			f.draft.Category = category
			f.draft.Subcategory = code
			f.state = StateCategoryComplete
			return []string{descriptionPrompt}
		}
	}
	return []string{"That isn't one of the options.\n" + menu}
}

func (f *ReportFlow) finish(text string) ([]string, *models.Ticket) {
	if text != config.SkipKeyword {
		f.draft.Description = text
	}
	f.state = StateReportDone

	ticket := f.draft
	f.draft = nil

	reply := fmt.Sprintf("Report Summary:\n```%s```\n", ticket.Summary()) +
		"We've received your report, a human will be reviewing it soon. We'll keep you updated here. " +
		"Thank you for helping keep our platform safe!"
	return []string{reply}, ticket
}
