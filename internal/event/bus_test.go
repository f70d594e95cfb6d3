package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishCallsSubscribersInOrder(t *testing.T) {
	b := New()
	var calls []int
	b.Subscribe(KindRoomCleared, func(Event) { calls = append(calls, 1) })
	b.Subscribe(KindRoomCleared, func(Event) { calls = append(calls, 2) })
	b.Subscribe(KindRoomCleared, func(Event) { calls = append(calls, 3) })

	b.Publish(RoomCleared{RoomID: 4})

	assert.Equal(t, []int{1, 2, 3}, calls)
}

func TestPublishOnlyMatchingKind(t *testing.T) {
	b := New()
	cleared, entered := 0, 0
	b.Subscribe(KindRoomCleared, func(Event) { cleared++ })
	b.Subscribe(KindRoomEntered, func(Event) { entered++ })

	b.Publish(RoomEntered{RoomID: 1})

	assert.Equal(t, 0, cleared)
	assert.Equal(t, 1, entered)
}

func TestPublishWithoutSubscribersIsNoop(t *testing.T) {
	b := New()
	assert.NotPanics(t, func() { b.Publish(PlayerDied{}) })
}

func TestPayloadIsDelivered(t *testing.T) {
	b := New()
	var got EnemyDied
	b.Subscribe(KindEnemyDied, func(ev Event) { got = ev.(EnemyDied) })

	b.Publish(EnemyDied{EntityID: 7, X: 1.5, Y: 2.5})

	assert.Equal(t, EnemyDied{EntityID: 7, X: 1.5, Y: 2.5}, got)
}

func TestClearRemovesAllSubscriptions(t *testing.T) {
	b := New()
	called := false
	b.Subscribe(KindPlayerDied, func(Event) { called = true })
	b.Subscribe(KindRoomCleared, func(Event) { called = true })
	b.Clear()

	b.Publish(PlayerDied{})
	b.Publish(RoomCleared{})

	assert.False(t, called)
	assert.Zero(t, b.Handlers(KindPlayerDied))
}

func TestOnTypedHandler(t *testing.T) {
	b := New()
	var floors []int
	On(b, func(ev FloorCompleted) { floors = append(floors, ev.FloorNumber) })

	require.Equal(t, 1, b.Handlers(KindFloorCompleted))
	b.Publish(FloorCompleted{FloorNumber: 2})

	assert.Equal(t, []int{2}, floors)
}

func TestSubscribeDuringPublishSeesNextEventOnly(t *testing.T) {
	b := New()
	late := 0
	b.Subscribe(KindRoomEntered, func(Event) {
		b.Subscribe(KindRoomEntered, func(Event) { late++ })
	})

	b.Publish(RoomEntered{})
	assert.Equal(t, 0, late, "handler added during dispatch must not see the in-flight event")

	b.Publish(RoomEntered{})
	assert.Equal(t, 1, late)
}

func TestNestedPublishCompletesBeforeOuterContinues(t *testing.T) {
	b := New()
	var trace []string
	b.Subscribe(KindPlayerDamaged, func(ev Event) {
		trace = append(trace, "damaged")
		b.Publish(PlayerDied{})
	})
	b.Subscribe(KindPlayerDied, func(Event) { trace = append(trace, "died") })
	b.Subscribe(KindPlayerDamaged, func(Event) { trace = append(trace, "damaged-2") })

	b.Publish(PlayerDamaged{Amount: 1})

	assert.Equal(t, []string{"damaged", "died", "damaged-2"}, trace)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "pickup_collected", KindPickupCollected.String())
	assert.Equal(t, "unknown", Kind(200).String())
}
