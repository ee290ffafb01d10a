package model

import (
	"time"
)

// Well-known dynamic config keys. Values live in MySQL for persistence and
// are mirrored into Redis for fast reads on the request path.
const (
	ConfigKeyRateLimitLimit  = "RATE_LIMIT_LIMIT"
	ConfigKeyRateLimitWindow = "RATE_LIMIT_WINDOW"
	ConfigKeyMaintenanceMode = "MAINTENANCE_MODE"
)

// SystemConfig represents a dynamic configuration entry
type SystemConfig struct {
	Key         string    `json:"key" gorm:"type:varchar(128);primaryKey"`
	Value       string    `json:"value" gorm:"type:varchar(512);not null"`
	Description string    `json:"description" gorm:"type:varchar(512)"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName returns the table name for SystemConfig
func (SystemConfig) TableName() string {
	return "system_configs"
}

// ConfigUpdateRequest represents an admin request to set a config value
type ConfigUpdateRequest struct {
	Key         string `json:"key" binding:"required"`
	Value       string `json:"value" binding:"required"`
	Description string `json:"description"`
}
