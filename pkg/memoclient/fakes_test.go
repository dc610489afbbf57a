package memoclient

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// fakeStore records every call so tests can assert exactly which paths ran.
type fakeStore struct {
	memos map[uuid.UUID]*Memo

	insertCalls int
	findCalls   int
	updateCalls int
	deleteCalls int

	lastInserted    *Memo
	lastUpdateTitle string
	lastUpdateBody  string

	insertErr error
	findErr   error
	updateErr error
	deleteErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{memos: make(map[uuid.UUID]*Memo)}
}

func (s *fakeStore) put(memo *Memo) {
	s.memos[memo.Id] = memo
}

func (s *fakeStore) Insert(_ context.Context, memo *Memo) error {
	s.insertCalls++
	if s.insertErr != nil {
		return s.insertErr
	}
	if memo.Id == uuid.Nil {
		memo.Id = uuid.New()
	}
	copied := *memo
	s.lastInserted = &copied
	s.memos[memo.Id] = &copied
	return nil
}

func (s *fakeStore) FindOne(_ context.Context, id uuid.UUID, userId uuid.UUID) (*Memo, error) {
	s.findCalls++
	if s.findErr != nil {
		return nil, s.findErr
	}
	memo, ok := s.memos[id]
	if !ok || memo.UserId != userId {
		return nil, ErrMemoNotFound
	}
	copied := *memo
	return &copied, nil
}

func (s *fakeStore) Update(_ context.Context, id uuid.UUID, userId uuid.UUID, title string, content string) (*Memo, error) {
	s.updateCalls++
	s.lastUpdateTitle = title
	s.lastUpdateBody = content
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	memo, ok := s.memos[id]
	if !ok || memo.UserId != userId {
		return nil, ErrMemoNotFound
	}
	memo.Title = title
	memo.Content = content
	copied := *memo
	return &copied, nil
}

func (s *fakeStore) Delete(_ context.Context, id uuid.UUID, userId uuid.UUID) error {
	s.deleteCalls++
	if s.deleteErr != nil {
		return s.deleteErr
	}
	memo, ok := s.memos[id]
	if !ok || memo.UserId != userId {
		return ErrMemoNotFound
	}
	delete(s.memos, id)
	return nil
}

// recordingNotifier captures notifications in order.
type recordingNotifier struct {
	notifications []Notification
}

func (n *recordingNotifier) Notify(message string, level NotificationLevel) {
	n.notifications = append(n.notifications, Notification{Message: message, Level: level})
}

func (n *recordingNotifier) last() (Notification, bool) {
	if len(n.notifications) == 0 {
		return Notification{}, false
	}
	return n.notifications[len(n.notifications)-1], true
}

var errStoreDown = errors.New("store unreachable")

func signedInGate(userId uuid.UUID, token string) *SessionGate {
	gate := NewSessionGate()
	gate.Set(&Session{UserId: userId, Email: "user@example.com", AccessToken: token})
	return gate
}
