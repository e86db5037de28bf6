package models

import "gorm.io/gorm"

// Verdict is one completed review of a ticket. Verdicts are append-only; the
// list for a case is discarded only when consensus fails and the case reopens.
type Verdict struct {
	gorm.Model

	TicketID   int64  `gorm:"index:idx_ticket_verdict"`
	ReviewerID string `gorm:"index:idx_ticket_verdict"`
	// Code is one of config.Verdict* — its numeric value drives the
	// enforcement outcome downstream.
	Code int
}

// Advertisement records the mod-channel post that offers a ticket for
// claiming. It is retracted once accepted claims reach the quorum.
type Advertisement struct {
	TicketID  int64 `gorm:"primaryKey"`
	ChatID    int64
	MessageID int
	Active    bool
}
