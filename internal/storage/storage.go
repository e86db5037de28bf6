package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"modflow/backend/internal/logger"
	"modflow/backend/internal/models"
)

// Redis keys. The ticket id counter lives in redis so every instance hands
// out ids from the same sequence.
const (
	ticketCounterKey = "ticket:id"
	feedChannel      = "modflow:feed"
)

type Storage interface {
	SaveTicket(t *models.Ticket) error
	SaveVerdict(v *models.Verdict) error
	DeleteVerdicts(ticketID int64) error
	NextTicketID() (int64, error)

	OpenTickets() ([]models.Ticket, error)
	VerdictsByTicket() (map[int64][]models.Verdict, error)
	ListTickets(status string) ([]models.Ticket, error)

	SaveAdvertisement(ad *models.Advertisement) error
	GetAdvertisement(ticketID int64) (*models.Advertisement, error)
	PublishFeed(ev models.FeedEvent) error
	SubscribeFeed() *redis.PubSub

	SaveUserIfNotExists(telegramID int64, name string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	GetUserByTelegramID(telegramID int64) (*models.User, error)
	SetModerator(telegramID int64, moderator bool) error

	ArchiveMessage(msg *models.ArchivedMessage) error
	GetArchivedMessage(chatID int64, messageID int) (*models.ArchivedMessage, error)
	MarkMessageTaken(chatID int64, messageID int) error
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

func (s *Service) SaveTicket(t *models.Ticket) error {
	return s.DB.Save(t).Error
}

func (s *Service) SaveVerdict(v *models.Verdict) error {
	return s.DB.Create(v).Error
}

// DeleteVerdicts clears a ticket's verdict rows when the case is reopened.
func (s *Service) DeleteVerdicts(ticketID int64) error {
	return s.DB.Where("ticket_id = ?", ticketID).Delete(&models.Verdict{}).Error
}

// NextTicketID hands out the next id from the shared redis counter.
func (s *Service) NextTicketID() (int64, error) {
	return s.Redis.Incr(s.Ctx, ticketCounterKey).Result()
}

// EnsureTicketCounter bumps the redis counter to at least max, so ids stay
// monotonic after a restart that hydrated tickets from postgres.
func (s *Service) EnsureTicketCounter(max int64) error {
	current, err := s.Redis.Get(s.Ctx, ticketCounterKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	if current >= max {
		return nil
	}
	return s.Redis.Set(s.Ctx, ticketCounterKey, max, 0).Err()
}

// OpenTickets loads every unresolved ticket, typically for hydrating the
// in-memory case store at startup.
func (s *Service) OpenTickets() ([]models.Ticket, error) {
	var ts []models.Ticket
	if err := s.DB.Where("status = ?", models.TicketStatusOpen).Find(&ts).Error; err != nil {
		logger.Log.Errorf("loading open tickets: %v", err)
		return nil, err
	}
	return ts, nil
}

// VerdictsByTicket loads all persisted verdicts grouped by ticket.
func (s *Service) VerdictsByTicket() (map[int64][]models.Verdict, error) {
	var vs []models.Verdict
	if err := s.DB.Order("created_at asc").Find(&vs).Error; err != nil {
		return nil, err
	}
	out := make(map[int64][]models.Verdict)
	for _, v := range vs {
		out[v.TicketID] = append(out[v.TicketID], v)
	}
	return out, nil
}

// ListTickets returns tickets newest first, optionally filtered by status.
func (s *Service) ListTickets(status string) ([]models.Ticket, error) {
	var ts []models.Ticket
	q := s.DB.Order("created_at desc")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&ts).Error; err != nil {
		return nil, err
	}
	return ts, nil
}

func (s *Service) SaveAdvertisement(ad *models.Advertisement) error {
	return s.DB.Save(ad).Error
}

func (s *Service) GetAdvertisement(ticketID int64) (*models.Advertisement, error) {
	var ad models.Advertisement
	err := s.DB.First(&ad, "ticket_id = ?", ticketID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ad, nil
}

// PublishFeed pushes a feed event into Redis Pub/Sub so every instance's
// observers see it.
func (s *Service) PublishFeed(ev models.FeedEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return s.Redis.Publish(s.Ctx, feedChannel, string(data)).Err()
}

func (s *Service) SubscribeFeed() *redis.PubSub {
	return s.Redis.Subscribe(s.Ctx, feedChannel)
}

// SaveUserIfNotExists returns the stored user for the telegram account,
// creating one on first contact.
func (s *Service) SaveUserIfNotExists(telegramID int64, name string) (*models.User, error) {
	var user models.User

	defaults := models.User{
		TelegramID: telegramID,
		Name:       name,
	}

	result := s.DB.Where("telegram_id = ?", telegramID).FirstOrCreate(&user, defaults)
	if result.Error != nil {
		logger.Log.Errorf("saving user %d on first contact: %v", telegramID, result.Error)
		return nil, result.Error
	}

	if result.RowsAffected > 0 {
		logger.Log.Infof("new user %s saved to database (telegram id %d)", user.ID, telegramID)
	}

	return &user, nil
}

func (s *Service) GetUserByID(id string) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) GetUserByTelegramID(telegramID int64) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, "telegram_id = ?", telegramID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) SetModerator(telegramID int64, moderator bool) error {
	return s.DB.Model(&models.User{}).
		Where("telegram_id = ?", telegramID).
		Update("moderator", moderator).Error
}

// ArchiveMessage upserts a watched-chat message so reports and edits can be
// resolved against the last seen text.
func (s *Service) ArchiveMessage(msg *models.ArchivedMessage) error {
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chat_id"}, {Name: "message_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"author_id", "author_name", "content", "updated_at"}),
	}).Create(msg).Error
}

func (s *Service) GetArchivedMessage(chatID int64, messageID int) (*models.ArchivedMessage, error) {
	var msg models.ArchivedMessage
	err := s.DB.First(&msg, "chat_id = ? AND message_id = ?", chatID, messageID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// MarkMessageTaken flags an archived message as removed by enforcement, so a
// later report against it can be answered with "already handled".
func (s *Service) MarkMessageTaken(chatID int64, messageID int) error {
	return s.DB.Model(&models.ArchivedMessage{}).
		Where("chat_id = ? AND message_id = ?", chatID, messageID).
		Update("taken", true).Error
}
