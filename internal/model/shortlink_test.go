package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortLink_TableName(t *testing.T) {
	sl := ShortLink{}
	assert.Equal(t, "short_links", sl.TableName())
}

func TestShortenRequest_JSON(t *testing.T) {
	var req ShortenRequest
	err := json.Unmarshal([]byte(`{"url":"https://example.com","custom_alias":"promo1"}`), &req)

	assert.NoError(t, err)
	assert.Equal(t, "https://example.com", req.URL)
	assert.Equal(t, "promo1", req.CustomAlias)
}

func TestSystemConfig_TableName(t *testing.T) {
	cfg := SystemConfig{}
	assert.Equal(t, "system_configs", cfg.TableName())
}

func TestConfigKeys(t *testing.T) {
	assert.Equal(t, "RATE_LIMIT_LIMIT", ConfigKeyRateLimitLimit)
	assert.Equal(t, "RATE_LIMIT_WINDOW", ConfigKeyRateLimitWindow)
	assert.Equal(t, "MAINTENANCE_MODE", ConfigKeyMaintenanceMode)
}
