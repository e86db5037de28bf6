package models

// ModEvent is one inbound text event handed to the dispatcher. Text is the
// normalized copy of the user's message; the original transport payload is
// never mutated.
type ModEvent struct {
	UserID string `json:"user_id"`
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
	// Direct is true for one-on-one conversations with the bot. Only direct
	// events participate in report/review flows.
	Direct bool `json:"direct"`
}

// Reply is one outbound text destined for a specific user.
type Reply struct {
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}

// ClaimSignal is a moderator taking ownership of an advertised ticket,
// triggered by the claim button on the advertisement.
type ClaimSignal struct {
	ModeratorID string `json:"moderator_id"`
	TicketID    int64  `json:"ticket_id"`
}

// FeedEvent is broadcast to the moderation feed (the mod chat and every
// connected websocket observer).
type FeedEvent struct {
	Type     string  `json:"type"` // "ticket_opened", "ticket_resolved", "ticket_reopened", "auto_deleted"
	TicketID int64   `json:"ticket_id,omitempty"`
	Text     string  `json:"text"`
	Ticket   *Ticket `json:"ticket,omitempty"`
}
