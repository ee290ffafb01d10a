package mq

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProducer_PublishClick_NilProducer(t *testing.T) {
	var p *Producer
	event := &ClickEvent{
		Code:     "abc1234",
		ClientID: "client1",
		At:       time.Now().UTC(),
	}

	err := p.PublishClick(context.Background(), event)
	assert.NoError(t, err)
}

func TestProducer_Close(t *testing.T) {
	t.Run("nil producer close returns nil", func(t *testing.T) {
		var p *Producer
		assert.NoError(t, p.Close())
	})

	t.Run("producer with nil client close returns nil", func(t *testing.T) {
		p := &Producer{}
		assert.NoError(t, p.Close())
	})
}

func TestClickEvent(t *testing.T) {
	t.Run("marshal and unmarshal", func(t *testing.T) {
		at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		event := &ClickEvent{
			Code:     "abc1234",
			ClientID: "0011223344556677",
			At:       at,
		}

		data, err := json.Marshal(event)
		assert.NoError(t, err)

		var decoded ClickEvent
		err = json.Unmarshal(data, &decoded)
		assert.NoError(t, err)
		assert.Equal(t, event.Code, decoded.Code)
		assert.Equal(t, event.ClientID, decoded.ClientID)
		assert.True(t, event.At.Equal(decoded.At))
	})

	t.Run("empty event", func(t *testing.T) {
		data, err := json.Marshal(&ClickEvent{})
		assert.NoError(t, err)
		assert.NotEmpty(t, data)
	})
}
