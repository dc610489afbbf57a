package memoclient

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionGateBroadcastsChanges(t *testing.T) {
	gate := NewSessionGate()
	ch, unsubscribe := gate.Subscribe()
	defer unsubscribe()

	session := &Session{UserId: uuid.New(), AccessToken: "token-1"}
	gate.Set(session)

	received := <-ch
	require.NotNil(t, received)
	assert.Equal(t, session.UserId, received.UserId)
	assert.Equal(t, session, gate.Current())

	gate.Set(nil)
	assert.Nil(t, <-ch)
	assert.Nil(t, gate.Current())
}

func TestSessionGateUnsubscribeStopsDelivery(t *testing.T) {
	gate := NewSessionGate()
	ch, unsubscribe := gate.Subscribe()

	unsubscribe()
	// Closing twice must be safe for sloppy teardown paths.
	unsubscribe()

	gate.Set(&Session{UserId: uuid.New()})

	_, open := <-ch
	assert.False(t, open, "channel should be closed after unsubscribe")
}

func TestNotificationBusFanOut(t *testing.T) {
	bus := NewNotificationBus()

	first, stopFirst := bus.Subscribe()
	second, stopSecond := bus.Subscribe()
	defer stopSecond()

	bus.Notify("メモを保存しました。", LevelSuccess)

	got := <-first
	assert.Equal(t, "メモを保存しました。", got.Message)
	assert.Equal(t, LevelSuccess, got.Level)
	got = <-second
	assert.Equal(t, LevelSuccess, got.Level)

	stopFirst()
	bus.Notify("after unsubscribe", LevelError)
	_, open := <-first
	assert.False(t, open)
}
