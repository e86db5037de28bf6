package models

import "gorm.io/gorm"

// ArchivedMessage is a copy of a message seen in a watched group chat.
// Reports reference messages by chat and message ID; the archive lets a
// report resolve even after the source message was edited or deleted.
type ArchivedMessage struct {
	gorm.Model // ID, CreatedAt, UpdatedAt, DeletedAt

	ChatID    int64 `gorm:"not null;index:idx_chat_msg,unique"`
	MessageID int   `gorm:"not null;index:idx_chat_msg,unique"`

	AuthorID   string `gorm:"type:text;not null"`
	AuthorName string `gorm:"type:text"`
	// Content is the normalized message text as last seen.
	Content string `gorm:"type:text;not null"`

	// Taken is set once the content was deleted by an enforcement action.
	Taken bool
}
