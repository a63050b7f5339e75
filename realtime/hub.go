// Package realtime implements the room-addressed event fan-out used to
// push order and bill updates to connected clients. Delivery is
// at-most-once with no backlog: subscribers that connect after an event
// was published never see it, and a subscriber that cannot keep up has
// events dropped rather than blocking the publisher.
package realtime

import (
	"log"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// StaffRoom receives every order event; individual users subscribe to
// their own user-id room.
const StaffRoom = "staff"

const subscriberBuffer = 16

type Event struct {
	Name    string `json:"event"`
	Room    string `json:"room"`
	Payload any    `json:"payload"`
}

type subscriber struct {
	rooms map[string]bool
	ch    chan Event
}

type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]*subscriber

	webhookURL string
	client     *resty.Client
}

// NewHub creates a hub. If webhookURL is non-empty every published event
// is additionally POSTed there, fire-and-forget.
func NewHub(webhookURL string) *Hub {
	h := &Hub{
		subscribers: make(map[string]*subscriber),
		webhookURL:  webhookURL,
	}
	if webhookURL != "" {
		h.client = resty.New()
	}
	return h
}

// Subscribe registers a listener on the given rooms and returns the event
// channel plus an unsubscribe function. The channel is closed on
// unsubscribe.
func (h *Hub) Subscribe(rooms ...string) (<-chan Event, func()) {
	sub := &subscriber{
		rooms: make(map[string]bool, len(rooms)),
		ch:    make(chan Event, subscriberBuffer),
	}
	for _, room := range rooms {
		sub.rooms[room] = true
	}

	id := uuid.NewString()
	h.mu.Lock()
	h.subscribers[id] = sub
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers, id)
			h.mu.Unlock()
			close(sub.ch)
		})
	}
	return sub.ch, cancel
}

// Publish delivers the event to every subscriber of the room. It never
// blocks: a subscriber with a full channel misses this event.
func (h *Hub) Publish(room, name string, payload any) {
	event := Event{Name: name, Room: room, Payload: payload}

	h.mu.RLock()
	for _, sub := range h.subscribers {
		if !sub.rooms[room] {
			continue
		}
		select {
		case sub.ch <- event:
		default:
		}
	}
	h.mu.RUnlock()

	if h.client != nil {
		go h.forward(event)
	}
}

func (h *Hub) forward(event Event) {
	_, err := h.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(event).
		Post(h.webhookURL)
	if err != nil {
		log.Println("Event webhook delivery failed:", err)
	}
}
