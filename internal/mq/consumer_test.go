package mq

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConsumer_Subscribe_AlreadyStarted(t *testing.T) {
	c := &Consumer{started: true}

	err := c.Subscribe()
	assert.NoError(t, err)
}

func TestConsumer_Close(t *testing.T) {
	t.Run("nil consumer close returns nil", func(t *testing.T) {
		var c *Consumer
		assert.NoError(t, c.Close())
	})

	t.Run("consumer with nil client close returns nil", func(t *testing.T) {
		c := &Consumer{}
		assert.NoError(t, c.Close())
	})
}

func TestClickHandler(t *testing.T) {
	t.Run("handler processes event", func(t *testing.T) {
		processed := false
		handler := ClickHandler(func(ctx context.Context, event *ClickEvent) error {
			processed = true
			assert.Equal(t, "abc1234", event.Code)
			return nil
		})

		event := &ClickEvent{
			Code:     "abc1234",
			ClientID: "client1",
			At:       time.Now().UTC(),
		}

		assert.NoError(t, handler(context.Background(), event))
		assert.True(t, processed)
	})

	t.Run("handler error propagates", func(t *testing.T) {
		handler := ClickHandler(func(ctx context.Context, event *ClickEvent) error {
			return assert.AnError
		})

		err := handler(context.Background(), &ClickEvent{Code: "abc1234"})
		assert.Error(t, err)
	})
}
