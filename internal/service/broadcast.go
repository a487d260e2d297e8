package service

import "sync"

// Update event names pushed to websocket subscribers.
const (
	EventWiserUpdated    = "wiser_updated"
	EventScheduleChanged = "schedule_changed"
)

// Update is one notification fanned out to subscribers: store mutations
// carry the hub, editor mutations carry the owning session.
type Update struct {
	Event   string `json:"event"`
	Hub     string `json:"hub,omitempty"`
	Session string `json:"session,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Broadcaster fans updates out to subscriber channels.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[chan Update]struct{}
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[chan Update]struct{})}
}

// Subscribe registers a buffered update channel.
func (b *Broadcaster) Subscribe() chan Update {
	ch := make(chan Update, 16)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes a subscriber channel. Safe to call twice.
func (b *Broadcaster) Unsubscribe(ch chan Update) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}

// Publish delivers the update to every subscriber. A subscriber whose buffer
// is full misses the update rather than blocking the publisher.
func (b *Broadcaster) Publish(u Update) {
	b.mu.Lock()
	for ch := range b.subs {
		select {
		case ch <- u:
		default:
		}
	}
	b.mu.Unlock()
}
