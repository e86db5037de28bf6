package modhub

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"modflow/backend/internal/logger"
	"modflow/backend/internal/models"
)

// AdStore persists advertisements and relays feed events between instances.
// The gorm/redis storage service satisfies it; tests run without one.
type AdStore interface {
	SaveAdvertisement(ad *models.Advertisement) error
	GetAdvertisement(ticketID int64) (*models.Advertisement, error)
	PublishFeed(ev models.FeedEvent) error
	SubscribeFeed() *redis.PubSub
}

// AssignerService advertises open tickets to the moderator pool and fans
// moderation feed events out to every connected observer.
type AssignerService struct {
	Channel ModChannel
	Store   AdStore

	mu          sync.Mutex
	subscribers map[chan models.FeedEvent]bool
}

func NewAssignerService(channel ModChannel, store AdStore) *AssignerService {
	return &AssignerService{
		Channel:     channel,
		Store:       store,
		subscribers: make(map[chan models.FeedEvent]bool),
	}
}

// Advertise posts a claimable advertisement for the ticket and records where
// it landed so it can be retracted later.
func (a *AssignerService) Advertise(t *models.Ticket) {
	if a.Channel == nil {
		return
	}
	chatID, messageID, err := a.Channel.PostTicket(t)
	if err != nil {
		logger.Log.Errorf("advertising ticket %d: %v", t.ID, err)
		return
	}
	if a.Store != nil {
		ad := &models.Advertisement{TicketID: t.ID, ChatID: chatID, MessageID: messageID, Active: true}
		if err := a.Store.SaveAdvertisement(ad); err != nil {
			logger.Log.Errorf("saving advertisement for ticket %d: %v", t.ID, err)
		}
	}
	a.publish(models.FeedEvent{
		Type:     "ticket_opened",
		TicketID: t.ID,
		Text:     fmt.Sprintf("Ticket #%d | %s", t.ID, t.CategoryLabel()),
		Ticket:   t,
	})
}

// Retract removes the ticket's advertisement once its claim slots are used
// up.
func (a *AssignerService) Retract(ticketID int64) {
	if a.Store == nil || a.Channel == nil {
		return
	}
	ad, err := a.Store.GetAdvertisement(ticketID)
	if err != nil || ad == nil || !ad.Active {
		return
	}
	if err := a.Channel.Retract(ad.ChatID, ad.MessageID); err != nil {
		logger.Log.Errorf("retracting advertisement for ticket %d: %v", ticketID, err)
		return
	}
	ad.Active = false
	if err := a.Store.SaveAdvertisement(ad); err != nil {
		logger.Log.Errorf("saving retracted advertisement for ticket %d: %v", ticketID, err)
	}
}

// Broadcast announces an outcome to the moderator channel and the feed.
func (a *AssignerService) Broadcast(ev models.FeedEvent) {
	if a.Channel != nil {
		if err := a.Channel.Announce(ev.Text); err != nil {
			logger.Log.Errorf("announcing to mod channel: %v", err)
		}
	}
	a.publish(ev)
}

// Subscribe registers a feed observer. The returned channel is buffered;
// slow observers lose events rather than stall the fanout.
func (a *AssignerService) Subscribe() chan models.FeedEvent {
	ch := make(chan models.FeedEvent, 32)
	a.mu.Lock()
	a.subscribers[ch] = true
	a.mu.Unlock()
	return ch
}

func (a *AssignerService) Unsubscribe(ch chan models.FeedEvent) {
	a.mu.Lock()
	if a.subscribers[ch] {
		delete(a.subscribers, ch)
		close(ch)
	}
	a.mu.Unlock()
}

// publish hands the event to redis when a store is wired (the fanout then
// happens in RunFeed on receipt, on every instance) and directly to local
// subscribers otherwise.
func (a *AssignerService) publish(ev models.FeedEvent) {
	if a.Store != nil {
		if err := a.Store.PublishFeed(ev); err != nil {
			logger.Log.Errorf("publishing feed event: %v", err)
		}
		return
	}
	a.fanout(ev)
}

func (a *AssignerService) fanout(ev models.FeedEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for ch := range a.subscribers {
		select {
		case ch <- ev:
		default:
			logger.Log.Warn("feed subscriber lagging, dropping event")
		}
	}
}

// RunFeed consumes the cross-instance feed channel and fans events out to
// local subscribers. It blocks until the subscription closes.
func (a *AssignerService) RunFeed() {
	if a.Store == nil {
		return
	}
	pubsub := a.Store.SubscribeFeed()
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var ev models.FeedEvent
		if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
			logger.Log.Errorf("decoding feed event: %v", err)
			continue
		}
		a.fanout(ev)
	}
}
