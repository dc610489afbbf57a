package memoclient

import (
	"sync"

	"github.com/google/uuid"
)

// Session is the resolved identity every mutation is gated on.
type Session struct {
	UserId      uuid.UUID
	Email       string
	AccessToken string
}

// SessionGate holds the process-wide identity state and broadcasts changes
// to subscribers. A nil current session means not authenticated.
type SessionGate struct {
	mu      sync.RWMutex
	current *Session
	nextId  int
	subs    map[int]chan *Session
}

func NewSessionGate() *SessionGate {
	return &SessionGate{
		subs: make(map[int]chan *Session),
	}
}

// Current returns the active session, or nil when signed out.
func (g *SessionGate) Current() *Session {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.current
}

// Set replaces the active session and notifies subscribers. Pass nil on
// sign-out.
func (g *SessionGate) Set(session *Session) {
	g.mu.Lock()
	g.current = session
	subs := make([]chan *Session, 0, len(g.subs))
	for _, ch := range g.subs {
		subs = append(subs, ch)
	}
	g.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- session:
		default:
		}
	}
}

// Subscribe registers for session changes. The returned function tears the
// subscription down; every subscriber must call it exactly once when done,
// or the subscription outlives its component.
func (g *SessionGate) Subscribe() (<-chan *Session, func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.nextId
	g.nextId++

	ch := make(chan *Session, 4)
	g.subs[id] = ch

	unsubscribe := func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		if sub, ok := g.subs[id]; ok {
			delete(g.subs, id)
			close(sub)
		}
	}

	return ch, unsubscribe
}
