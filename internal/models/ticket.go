package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"

	"modflow/backend/internal/config"
)

// Ticket statuses. A ticket is never deleted; it either resolves or is
// reopened for a fresh round of reviews.
const (
	TicketStatusOpen     = "open"
	TicketStatusResolved = "resolved"
)

// ReportedContent is an immutable snapshot of the flagged message taken at
// report time. The live message may be edited or deleted afterwards, so the
// ticket never references it directly.
type ReportedContent struct {
	ChatID     int64  `json:"chat_id"`
	MessageID  int    `json:"message_id"`
	AuthorID   string `json:"author_id"`
	AuthorName string `json:"author_name"`
	Text       string `gorm:"type:text" json:"text"`
}

// Ticket represents one flagged post under moderation review.
type Ticket struct {
	// ID is assigned by the ticket store at creation and is monotonically
	// increasing across the process lifetime.
	ID int64 `gorm:"primaryKey;autoIncrement:false" json:"id"`

	ReportingUser string `json:"reporting_user"`
	ReportedUser  string `json:"reported_user"`

	Content ReportedContent `gorm:"embedded;embeddedPrefix:content_" json:"content"`

	// Category and Subcategory are codes from config.CategoryCodes. When
	// Category is config.CategoryCustom, Subcategory holds the reporter's
	// free-text label instead of a code.
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`

	// Description is the reporter's optional elaboration; empty means the
	// reporter skipped it.
	Description string `gorm:"type:text" json:"description"`

	Status  string `json:"status"`
	Outcome int    `json:"outcome"`

	// AutoFlagged tickets were synthesized by the scorer policy rather than
	// a human reporter. FlaggedAttributes lists the score attributes that
	// crossed the report threshold.
	AutoFlagged       bool           `json:"auto_flagged"`
	FlaggedAttributes pq.StringArray `gorm:"type:text[]" json:"flagged_attributes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryLabel returns the human-readable category for the ticket. Custom
// categories carry the reporter's own label in the subcategory field.
func (t *Ticket) CategoryLabel() string {
	if t.Category == config.CategoryCustom {
		return t.Subcategory
	}
	if subs, ok := config.CategoryCodes[t.Category]; ok {
		if label, ok := subs[t.Subcategory]; ok {
			return label
		}
	}
	return "Uncategorized"
}

// Summary renders the ticket the way it is shown to reporters and claiming
// moderators.
func (t *Ticket) Summary() string {
	desc := t.Description
	if desc == "" {
		desc = "None"
	}
	return fmt.Sprintf("Reporting user: %s\nReported user: %s\nMessage: %s\nCategory: %s\nAdditional Info: %s",
		t.ReportingUser, t.ReportedUser, t.Content.Text, t.CategoryLabel(), desc)
}
