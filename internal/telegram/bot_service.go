// Package telegram handles the integration with the Telegram Bot API.
// It is responsible for receiving updates from Telegram, processing them,
// and communicating with the central moderation hub.
package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"modflow/backend/internal/autoflag"
	"modflow/backend/internal/config"
	"modflow/backend/internal/localization"
	"modflow/backend/internal/logger"
	"modflow/backend/internal/models"
	"modflow/backend/internal/modhub"
	"modflow/backend/internal/storage"
	"modflow/backend/internal/textnorm"
)

const claimCallbackPrefix = "claim_"

// BotService is responsible for receiving Telegram updates and routing them
// to the hub: direct messages feed the report and review flows, watched-chat
// messages are archived and auto-scored.
type BotService struct {
	BotAPI        *tgbotapi.BotAPI
	Hub           *modhub.ManagerService
	Storage       storage.Storage
	Localizer     *localization.Localizer
	Policy        *autoflag.Policy
	WatchedChatID int64
}

// NewBotService creates a new BotService instance. Mod-channel posting lives
// in ModTransport, so the service only needs the watched chat.
func NewBotService(token string, hub *modhub.ManagerService, s storage.Storage, policy *autoflag.Policy, watchedChatID int64) (*BotService, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	logger.Log.Infof("✅ Authorized on account %s", bot.Self.UserName)

	localizer, err := localization.NewLocalizer("internal/localization")
	if err != nil {
		return nil, fmt.Errorf("failed to create localizer: %w", err)
	}

	return &BotService{
		BotAPI:        bot,
		Hub:           hub,
		Storage:       s,
		Localizer:     localizer,
		Policy:        policy,
		WatchedChatID: watchedChatID,
	}, nil
}

// extractMessageContent uniformly extracts text or a caption from a message.
func extractMessageContent(msg *tgbotapi.Message) string {
	if msg == nil {
		return ""
	}
	if msg.Text != "" {
		return msg.Text
	}
	return msg.Caption
}

// getOrCreateClient retrieves an existing Telegram client or creates a new one.
func (s *BotService) getOrCreateClient(chatID int64, name string) *Client {
	user, err := s.Storage.SaveUserIfNotExists(chatID, name)
	if err != nil {
		logger.Log.Errorf("get/create user for TelegramID %d: %v", chatID, err)
		return nil
	}
	userID := user.ID

	if existingClient, ok := s.Hub.ClientFor(userID); ok {
		if client, ok := existingClient.(*Client); ok {
			return client
		}
		logger.Log.Errorf("client %d (user %s) is not of type *telegram.Client", chatID, userID)
	}

	newClient := &Client{
		UserID: userID,
		ChatID: chatID,
		Hub:    s.Hub,
		Send:   make(chan models.Reply, 10),
		BotAPI: s.BotAPI,
	}

	s.Hub.RegisterCh <- newClient
	return newClient
}

// Run is the main loop for receiving Telegram updates.
func (s *BotService) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := s.BotAPI.GetUpdatesChan(u)

	for update := range updates {
		switch {
		case update.CallbackQuery != nil:
			s.handleCallbackQuery(update.CallbackQuery)
		case update.EditedMessage != nil:
			if update.EditedMessage.Chat.ID == s.WatchedChatID {
				s.handleWatchedMessage(update.EditedMessage)
			}
		case update.Message != nil:
			switch {
			case update.Message.Chat.IsPrivate():
				s.handleDirectMessage(update.Message)
			case update.Message.Chat.ID == s.WatchedChatID:
				s.handleWatchedMessage(update.Message)
			}
		}
	}
}

// handleDirectMessage normalizes a DM and hands it to the hub. The help
// keyword is answered locally so it works mid-flow too.
func (s *BotService) handleDirectMessage(msg *tgbotapi.Message) {
	c := s.getOrCreateClient(msg.Chat.ID, msg.From.UserName)
	if c == nil {
		return
	}

	text := textnorm.Fold(extractMessageContent(msg))
	if text == config.HelpKeyword {
		reply := tgbotapi.NewMessage(msg.Chat.ID, s.Localizer.GetString("en", "help"))
		s.BotAPI.Send(reply)
		return
	}

	s.Hub.IncomingCh <- models.ModEvent{
		UserID: c.UserID,
		ChatID: msg.Chat.ID,
		Text:   text,
		Direct: true,
	}
}

// handleWatchedMessage archives a watched-chat message (new or edited) and
// runs the automatic moderation policy over its text.
func (s *BotService) handleWatchedMessage(msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	content := models.ReportedContent{
		ChatID:     msg.Chat.ID,
		MessageID:  msg.MessageID,
		AuthorID:   strconv.FormatInt(msg.From.ID, 10),
		AuthorName: msg.From.UserName,
		Text:       extractMessageContent(msg),
	}

	if err := s.Storage.ArchiveMessage(&models.ArchivedMessage{
		ChatID:     content.ChatID,
		MessageID:  content.MessageID,
		AuthorID:   content.AuthorID,
		AuthorName: content.AuthorName,
		Content:    content.Text,
	}); err != nil {
		logger.Log.Errorf("archiving message %d/%d: %v", content.ChatID, content.MessageID, err)
	}

	if s.Policy != nil && content.Text != "" {
		go s.autoModerate(content)
	}
}

// autoModerate applies the flagging policy to one message.
func (s *BotService) autoModerate(content models.ReportedContent) {
	ev, err := s.Policy.Evaluate(context.Background(), content.Text)
	if err != nil {
		logger.Log.Errorf("scoring message %d/%d: %v", content.ChatID, content.MessageID, err)
		return
	}

	switch ev.Decision {
	case autoflag.DecisionDelete:
		attr, score := autoflag.MaxScore(ev.Scores)
		logger.Log.Infof("auto-deleting message %d/%d (%s=%.2f)", content.ChatID, content.MessageID, attr, score)

		del := tgbotapi.NewDeleteMessage(content.ChatID, content.MessageID)
		if _, err := s.BotAPI.Request(del); err != nil {
			logger.Log.Errorf("auto-deleting message %d/%d: %v", content.ChatID, content.MessageID, err)
			return
		}
		if err := s.Storage.MarkMessageTaken(content.ChatID, content.MessageID); err != nil {
			logger.Log.Errorf("marking message taken: %v", err)
		}
		s.notifyAuthor(content, fmt.Sprintf(s.Localizer.GetString("en", "auto_deleted_notice"), content.Text))
		if s.Hub.Assigner != nil {
			s.Hub.Assigner.Broadcast(models.FeedEvent{
				Type: "auto_deleted",
				Text: fmt.Sprintf("Automatically removed a message from %s (%s: %.2f).", content.AuthorName, attr, score),
			})
		}

	case autoflag.DecisionReport:
		s.Hub.TicketCh <- s.Policy.BuildTicket(content, ev)
	}
}

// notifyAuthor DMs the author of a watched-chat message, if they can be
// mapped back to a telegram account.
func (s *BotService) notifyAuthor(content models.ReportedContent, text string) {
	authorID, err := strconv.ParseInt(content.AuthorID, 10, 64)
	if err != nil {
		return
	}
	msg := tgbotapi.NewMessage(authorID, text)
	if _, err := s.BotAPI.Send(msg); err != nil {
		logger.Log.Warnf("notifying author %d: %v", authorID, err)
	}
}

// handleCallbackQuery admits claim button presses from moderators.
func (s *BotService) handleCallbackQuery(callbackQuery *tgbotapi.CallbackQuery) {
	// Respond to the callback query to remove the "loading" state
	callback := tgbotapi.NewCallback(callbackQuery.ID, "")
	if _, err := s.BotAPI.Request(callback); err != nil {
		logger.Log.Errorf("failed to send callback response: %v", err)
	}

	if !strings.HasPrefix(callbackQuery.Data, claimCallbackPrefix) {
		return
	}
	ticketID, err := strconv.ParseInt(strings.TrimPrefix(callbackQuery.Data, claimCallbackPrefix), 10, 64)
	if err != nil {
		logger.Log.Warnf("malformed claim callback %q", callbackQuery.Data)
		return
	}

	user, err := s.Storage.GetUserByTelegramID(callbackQuery.From.ID)
	if err != nil || user == nil {
		logger.Log.Errorf("claim from unknown telegram user %d: %v", callbackQuery.From.ID, err)
		return
	}
	if !user.Moderator {
		logger.Log.Warnf("non-moderator %s pressed claim on ticket %d", user.ID, ticketID)
		reply := tgbotapi.NewMessage(callbackQuery.From.ID, s.Localizer.GetString("en", "not_a_moderator"))
		if _, err := s.BotAPI.Send(reply); err != nil {
			logger.Log.Warnf("notifying non-moderator %d: %v", callbackQuery.From.ID, err)
		}
		return
	}

	// A moderator claiming from the channel may never have DMed the bot;
	// make sure a client exists so the claim receipt can be delivered.
	s.getOrCreateClient(callbackQuery.From.ID, callbackQuery.From.UserName)

	s.Hub.ClaimCh <- models.ClaimSignal{ModeratorID: user.ID, TicketID: ticketID}
}
