package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"modflow/backend/internal/models"
)

func TestTicket_CategoryLabel(t *testing.T) {
	tests := []struct {
		name        string
		category    string
		subcategory string
		label       string
	}{
		{"fake spam", "1", "3", "Spam"},
		{"auto flag", "1", "5", "Periscope Auto-Flag"},
		{"abusive hate speech", "2", "5", "Hate Speech, Harassment, or Bullying"},
		{"custom passthrough", "3", "doxxing", "doxxing"},
		{"unknown category", "9", "1", "Uncategorized"},
		{"unknown subcategory", "1", "9", "Uncategorized"},
		{"empty", "", "", "Uncategorized"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ticket := &models.Ticket{Category: tc.category, Subcategory: tc.subcategory}
			assert.Equal(t, tc.label, ticket.CategoryLabel())
		})
	}
}

func TestTicket_Summary(t *testing.T) {
	ticket := &models.Ticket{
		ReportingUser: "reporter-1",
		ReportedUser:  "555",
		Content:       models.ReportedContent{Text: "you are all idiots"},
		Category:      "2",
		Subcategory:   "5",
		Description:   "harassing me for days",
	}

	summary := ticket.Summary()
	assert.Contains(t, summary, "Reporting user: reporter-1")
	assert.Contains(t, summary, "Reported user: 555")
	assert.Contains(t, summary, "Message: you are all idiots")
	assert.Contains(t, summary, "Category: Hate Speech, Harassment, or Bullying")
	assert.Contains(t, summary, "Additional Info: harassing me for days")
}

func TestTicket_SummaryWithoutDescription(t *testing.T) {
	ticket := &models.Ticket{Category: "1", Subcategory: "1"}
	assert.Contains(t, ticket.Summary(), "Additional Info: None")
}
