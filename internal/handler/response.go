package handler

import (
	"fmt"
	"time"

	"shortly/internal/model"
)

// requestTimeout bounds store access per request so a stalled database
// surfaces as a fast 5xx instead of a hung connection.
const requestTimeout = 5 * time.Second

// Response is the standard API response
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the error API response
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// linkInfo builds the public metadata view of a short link
func linkInfo(baseURL string, link *model.ShortLink) model.LinkInfoResponse {
	return model.LinkInfoResponse{
		ShortURL:       fmt.Sprintf("%s/%s", baseURL, link.Code),
		Code:           link.Code,
		TargetURL:      link.TargetURL,
		CreatedAt:      link.CreatedAt,
		LastAccessedAt: link.LastAccessedAt,
		ClickCount:     link.ClickCount,
		IsActive:       link.IsActive,
	}
}
