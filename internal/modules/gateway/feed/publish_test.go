package feed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelucius7/site-core/internal/modules/activity"
)

type fakePublisher struct {
	channel string
	message interface{}
	err     error
}

func (f *fakePublisher) Publish(_ context.Context, channel string, message interface{}) error {
	f.channel, f.message = channel, message
	return f.err
}

func TestPublishRoundTrip(t *testing.T) {
	pub := &fakePublisher{}
	msg := Message{Event: EventProcessUpdate, Payload: map[string]interface{}{"process": "Code"}}
	require.NoError(t, Publish(context.Background(), pub, "", msg))
	assert.Equal(t, DefaultChannel, pub.channel)

	raw, ok := pub.message.(string)
	require.True(t, ok)
	store := activity.NewStore()
	handled, err := Apply(store, mustParse(t, raw))
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, "Code", store.Activity().Process.Name)
}

func TestPublishErrors(t *testing.T) {
	pub := &fakePublisher{}
	assert.Error(t, Publish(context.Background(), pub, "", Message{Event: " "}))
	assert.Nil(t, pub.message)

	pub.err = errors.New("connection refused")
	err := Publish(context.Background(), pub, "custom", Message{Event: EventMediaUpdate})
	assert.ErrorIs(t, err, pub.err)
	assert.Equal(t, "custom", pub.channel)
}
