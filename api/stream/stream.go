// Package stream pushes execution reports to websocket clients.
package stream

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"matchcore/service"
)

const (
	subscriberBuffer = 256
	writeWait        = 5 * time.Second
	pingPeriod       = 30 * time.Second
)

type outboundMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Stream serves GET /ws/executions. A client that cannot keep up loses
// reports rather than slowing the engine; the Kafka topic is the complete
// record.
type Stream struct {
	hub      *hub[service.ExecutionReport]
	upgrader websocket.Upgrader
	log      *zap.Logger
}

func New(log *zap.Logger) *Stream {
	if log == nil {
		log = zap.NewNop()
	}
	return &Stream{
		hub:      newHub[service.ExecutionReport](),
		upgrader: websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		log:      log.Named("stream"),
	}
}

// Publish is a service.ExecutionListener.
func (s *Stream) Publish(r service.ExecutionReport) {
	s.hub.Broadcast(r)
}

func (s *Stream) Subscribers() int {
	return s.hub.Len()
}

// Close disconnects every client.
func (s *Stream) Close() {
	s.hub.Close()
}

func (s *Stream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug("upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	sub := s.hub.Subscribe(subscriberBuffer)
	defer s.hub.Unsubscribe(sub)
	s.log.Debug("subscriber connected", zap.String("remote", r.RemoteAddr))

	// Drain control frames; a read error means the client went away.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-gone:
			return
		case report, ok := <-sub.ch:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
					time.Now().Add(writeWait))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(outboundMessage{Type: "execution", Data: report}); err != nil {
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
