package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents anyone the bot has talked to: reporters, reported authors
// and moderators alike.
type User struct {
	ID         string `gorm:"primaryKey" json:"id"` // anonymous UUID
	TelegramID int64  `gorm:"uniqueIndex"`
	Name       string
	// Moderator users may claim tickets and submit review verdicts.
	Moderator bool
}

// BeforeCreate is a GORM hook that assigns a fresh UUID when the ID is not
// set yet.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
