package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var seen []Event
	d.Subscribe(EventUserCreated, func(_ context.Context, e Event) error {
		seen = append(seen, e)
		return nil
	})

	err := d.Publish(context.Background(), Event{ID: "e1", Type: EventUserCreated, SubjectID: "u1"})
	require.NoError(t, err)
	require.Len(t, seen, 1)
	assert.Equal(t, "u1", seen[0].SubjectID)
}

func TestDispatcherIgnoresUnrelatedEventTypes(t *testing.T) {
	d := NewInMemoryDispatcher()

	called := false
	d.Subscribe(EventAreaUpdated, func(_ context.Context, _ Event) error {
		called = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventPasswordChanged}))
	assert.False(t, called)
}

func TestDispatcherContinuesAfterHandlerError(t *testing.T) {
	d := NewInMemoryDispatcher()

	var order []string
	d.Subscribe(EventUserCreated, func(_ context.Context, _ Event) error {
		order = append(order, "first")
		return errors.New("boom")
	})
	d.Subscribe(EventUserCreated, func(_ context.Context, _ Event) error {
		order = append(order, "second")
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventUserCreated}))
	assert.Equal(t, []string{"first", "second"}, order)
}
