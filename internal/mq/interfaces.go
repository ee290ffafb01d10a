package mq

import (
	"context"
)

// ProducerInterface defines the interface for click event publication
type ProducerInterface interface {
	PublishClick(ctx context.Context, event *ClickEvent) error
	Close() error
}

// ConsumerInterface defines the interface for click event consumption
type ConsumerInterface interface {
	Subscribe() error
	Close() error
}
