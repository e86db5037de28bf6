package modhub

import "modflow/backend/internal/models"

// Client is the interface for any outbound connection to a user (Telegram
// DM, websocket observer). It abstracts the transport so the hub can deliver
// replies without knowing how they travel.
type Client interface {
	// GetUserID returns the unique identifier for the user behind the client.
	GetUserID() string

	// GetSendChannel returns the channel the hub writes replies into. It is
	// a send-only channel.
	GetSendChannel() chan<- models.Reply

	// Run starts the client's pumps.
	Run()
	// Close shuts the client down and releases its channels.
	Close()
}

// Notifier delivers a one-off text to a user who may not have a live client
// connection (consensus outcomes, claim receipts).
type Notifier interface {
	Notify(userID, text string) error
}

// ContentActions executes enforcement steps against the originating
// platform.
type ContentActions interface {
	// DeleteContent removes the flagged message at its source.
	DeleteContent(content models.ReportedContent) error
	// RemoveUser removes (or simulates removing) the offending user.
	RemoveUser(userID, userName string) error
}

// ModChannel is the place where tickets are advertised to the moderator
// pool.
type ModChannel interface {
	// PostTicket publishes a claimable advertisement and returns where it
	// landed.
	PostTicket(t *models.Ticket) (chatID int64, messageID int, err error)
	// Retract removes a previously posted advertisement.
	Retract(chatID int64, messageID int) error
	// Announce posts a plain status line to the moderator pool.
	Announce(text string) error
}
