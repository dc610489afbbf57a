package memoclient

import "sync"

type NotificationLevel string

const (
	LevelSuccess NotificationLevel = "success"
	LevelError   NotificationLevel = "error"
)

type Notification struct {
	Message string
	Level   NotificationLevel
}

// Notifier is the fire-and-forget feedback channel. Implementations must not
// block the caller.
type Notifier interface {
	Notify(message string, level NotificationLevel)
}

// NotificationBus fans notifications out to all current subscribers.
// Subscribers with full buffers miss the notification rather than stall
// the publisher.
type NotificationBus struct {
	mu     sync.RWMutex
	nextId int
	subs   map[int]chan Notification
}

func NewNotificationBus() *NotificationBus {
	return &NotificationBus{
		subs: make(map[int]chan Notification),
	}
}

func (b *NotificationBus) Notify(message string, level NotificationLevel) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := Notification{Message: message, Level: level}
	for _, ch := range b.subs {
		select {
		case ch <- n:
		default:
		}
	}
}

// Subscribe registers a listener. The returned function removes the
// subscription and closes the channel; callers must invoke it when the
// listening component is disposed.
func (b *NotificationBus) Subscribe() (<-chan Notification, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextId
	b.nextId++

	ch := make(chan Notification, 16)
	b.subs[id] = ch

	unsubscribe := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}

	return ch, unsubscribe
}
