package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectRejectsBadURL(t *testing.T) {
	_, err := Connect(context.Background(), "http://localhost:6379/0")
	assert.ErrorContains(t, err, "invalid redis url")
}

func TestConnectCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Connect(ctx, "redis://127.0.0.1:1/0")
	assert.ErrorContains(t, err, "redis ping failed")
}
