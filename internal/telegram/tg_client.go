package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"modflow/backend/internal/logger"
	"modflow/backend/internal/models"
	"modflow/backend/internal/modhub"
)

// Client реалізує інтерфейс modhub.Client
type Client struct {
	UserID string // внутрішній UUID користувача
	ChatID int64  // Telegram chat ID для прямих повідомлень
	Hub    *modhub.ManagerService
	Send   chan models.Reply
	BotAPI *tgbotapi.BotAPI
}

func (c *Client) GetUserID() string                   { return c.UserID }
func (c *Client) GetSendChannel() chan<- models.Reply { return c.Send }

// Run запускає 'write pump'. 'Read pump' обробляється централізовано.
func (c *Client) Run() {
	go c.writePump()
}

// Close закриває Send канал
func (c *Client) Close() {
	close(c.Send)
}

// writePump слухає канал Send і надсилає відповіді в Telegram
func (c *Client) writePump() {
	defer func() {
		logger.Log.Debugf("зупинка writePump для Telegram клієнта %s", c.UserID)
	}()

	for reply := range c.Send {
		msg := tgbotapi.NewMessage(c.ChatID, reply.Text)
		msg.ParseMode = tgbotapi.ModeMarkdown
		if _, err := c.BotAPI.Send(msg); err != nil {
			logger.Log.Errorf("sending reply to %s: %v", c.UserID, err)
		}
	}
}
