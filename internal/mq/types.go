package mq

import (
	"time"
)

// ClickEvent represents a single deduplicated click signal. The consumer
// turns each event into one atomic counter increment in MySQL.
type ClickEvent struct {
	Code     string    `json:"code"`
	ClientID string    `json:"client_id"`
	At       time.Time `json:"at"`
}
