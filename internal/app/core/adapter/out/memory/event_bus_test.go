package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-joint-ledger/internal/app/core/domain"
)

func TestEventBusFanOut(t *testing.T) {
	bus := NewEventBus()
	a, cancelA := bus.Subscribe(4)
	b, cancelB := bus.Subscribe(4)
	defer cancelB()

	require.NoError(t, bus.Publish(context.Background(), domain.Event{Sequence: 1}))
	assert.Equal(t, uint64(1), (<-a).Sequence)
	assert.Equal(t, uint64(1), (<-b).Sequence)

	cancelA()
	cancelA()
	_, ok := <-a
	assert.False(t, ok)
	assert.Equal(t, 1, bus.Len())
}

func TestEventBusDropsLaggingSubscriber(t *testing.T) {
	bus := NewEventBus()
	slow, cancel := bus.Subscribe(1)
	defer cancel()

	require.NoError(t, bus.Publish(context.Background(), domain.Event{Sequence: 1}))
	require.NoError(t, bus.Publish(context.Background(), domain.Event{Sequence: 2}))

	assert.Equal(t, uint64(1), (<-slow).Sequence)
	_, ok := <-slow
	assert.False(t, ok)
	assert.Equal(t, 0, bus.Len())
}
