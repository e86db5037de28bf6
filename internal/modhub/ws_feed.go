package modhub

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"

	"modflow/backend/internal/logger"
	"modflow/backend/internal/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// FeedObserver streams moderation feed events over a websocket. Observers
// are read-only: inbound frames are drained solely to service pings and
// detect the close.
type FeedObserver struct {
	ModeratorID string
	Conn        *websocket.Conn
	Assigner    *AssignerService

	feed chan models.FeedEvent
}

func NewFeedObserver(moderatorID string, conn *websocket.Conn, assigner *AssignerService) *FeedObserver {
	return &FeedObserver{
		ModeratorID: moderatorID,
		Conn:        conn,
		Assigner:    assigner,
	}
}

// Run subscribes to the feed and starts both pumps.
func (o *FeedObserver) Run() {
	o.feed = o.Assigner.Subscribe()
	go o.writePump()
	go o.readPump()
}

func (o *FeedObserver) readPump() {
	defer func() {
		o.Assigner.Unsubscribe(o.feed)
		o.Conn.Close()
	}()

	o.Conn.SetReadLimit(maxMessageSize)
	o.Conn.SetReadDeadline(time.Now().Add(pongWait))
	o.Conn.SetPongHandler(func(string) error {
		o.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := o.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Warnf("feed observer %s read error: %v", o.ModeratorID, err)
			}
			return
		}
	}
}

func (o *FeedObserver) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		o.Conn.Close()
	}()

	for {
		select {
		case ev, ok := <-o.feed:
			o.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				o.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			data, err := json.Marshal(ev)
			if err != nil {
				logger.Log.Errorf("encoding feed event for %s: %v", o.ModeratorID, err)
				continue
			}
			if err := o.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			o.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := o.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
