package telegram

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"modflow/backend/internal/flow"
	"modflow/backend/internal/logger"
	"modflow/backend/internal/models"
	"modflow/backend/internal/storage"
)

// Notifier delivers one-off DMs to users identified by their internal id.
type Notifier struct {
	BotAPI  *tgbotapi.BotAPI
	Storage storage.Storage
}

func (n *Notifier) Notify(userID, text string) error {
	user, err := n.Storage.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user == nil || user.TelegramID == 0 {
		return fmt.Errorf("telegram: no chat known for user %s", userID)
	}
	msg := tgbotapi.NewMessage(user.TelegramID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	_, err = n.BotAPI.Send(msg)
	return err
}

// Actions performs enforcement in the watched chat.
type Actions struct {
	BotAPI        *tgbotapi.BotAPI
	Storage       storage.Storage
	WatchedChatID int64
}

func (a *Actions) DeleteContent(content models.ReportedContent) error {
	del := tgbotapi.NewDeleteMessage(content.ChatID, content.MessageID)
	if _, err := a.BotAPI.Request(del); err != nil {
		return err
	}
	return a.Storage.MarkMessageTaken(content.ChatID, content.MessageID)
}

// RemoveUser bans the offender from the watched chat. Author ids that do not
// map to a telegram account cannot be acted on.
func (a *Actions) RemoveUser(userID, userName string) error {
	telegramID, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return fmt.Errorf("telegram: cannot map author %q (%s) to an account", userID, userName)
	}
	ban := tgbotapi.BanChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{
			ChatConfig: tgbotapi.ChatConfig{ChatID: a.WatchedChatID},
			UserID:     telegramID,
		},
	}
	_, err = a.BotAPI.Request(ban)
	return err
}

// ModTransport posts to the moderator channel: claimable advertisements and
// outcome announcements.
type ModTransport struct {
	BotAPI    *tgbotapi.BotAPI
	ModChatID int64
}

func (t *ModTransport) PostTicket(ticket *models.Ticket) (int64, int, error) {
	text := fmt.Sprintf("*Ticket #%d | %s*\n```\n%s\n```", ticket.ID, ticket.CategoryLabel(), ticket.Summary())
	msg := tgbotapi.NewMessage(t.ModChatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Claim", fmt.Sprintf("%s%d", claimCallbackPrefix, ticket.ID)),
		),
	)
	sent, err := t.BotAPI.Send(msg)
	if err != nil {
		return 0, 0, err
	}
	return t.ModChatID, sent.MessageID, nil
}

func (t *ModTransport) Retract(chatID int64, messageID int) error {
	del := tgbotapi.NewDeleteMessage(chatID, messageID)
	_, err := t.BotAPI.Request(del)
	return err
}

func (t *ModTransport) Announce(text string) error {
	msg := tgbotapi.NewMessage(t.ModChatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	_, err := t.BotAPI.Send(msg)
	return err
}

// messageLinkRe matches t.me message links, both the public username form
// and the private c/<id> form.
var messageLinkRe = regexp.MustCompile(`^(?:https?://)?t\.me/(c/)?([A-Za-z0-9_]+)/(\d+)$`)

// Resolver turns a pasted message link into the reported content by looking
// the message up in the archive of the watched chat. The Bot API cannot
// fetch arbitrary messages, so only archived (seen) messages resolve.
type Resolver struct {
	Storage       storage.Storage
	WatchedChatID int64
}

func (r *Resolver) Resolve(ref string) (*models.ReportedContent, error) {
	m := messageLinkRe.FindStringSubmatch(strings.TrimSpace(ref))
	if m == nil {
		return nil, flow.ErrMalformedReference
	}

	messageID, err := strconv.Atoi(m[3])
	if err != nil {
		return nil, flow.ErrMalformedReference
	}

	var chatID int64
	if m[1] == "c/" {
		raw, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return nil, flow.ErrMalformedReference
		}
		// t.me/c links carry the chat id without the -100 supergroup prefix.
		chatID, err = strconv.ParseInt("-100"+strconv.FormatInt(raw, 10), 10, 64)
		if err != nil {
			return nil, flow.ErrMalformedReference
		}
		if chatID != r.WatchedChatID {
			return nil, flow.ErrChannelNotFound
		}
	} else {
		// Public-username links cannot be mapped to a chat id without an
		// extra API round trip, and the bot only watches one chat anyway.
		return nil, flow.ErrSourceNotVisible
	}

	archived, err := r.Storage.GetArchivedMessage(chatID, messageID)
	if err != nil {
		logger.Log.Errorf("archive lookup %d/%d: %v", chatID, messageID, err)
		return nil, flow.ErrContentNotFound
	}
	if archived == nil || archived.Taken {
		return nil, flow.ErrContentNotFound
	}

	return &models.ReportedContent{
		ChatID:     chatID,
		MessageID:  messageID,
		AuthorID:   archived.AuthorID,
		AuthorName: archived.AuthorName,
		Text:       archived.Content,
	}, nil
}
