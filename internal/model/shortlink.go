package model

import (
	"time"
)

// ShortLink represents a short link entity. The code is the primary lookup
// key and is never recycled; the code -> target URL mapping is immutable
// once created. Target URLs carry their own unique index so that repeated
// shorten requests for the same URL are idempotent.
type ShortLink struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Code           string    `json:"code" gorm:"type:varchar(10);uniqueIndex:uk_short_links_code;not null"`
	TargetURL      string    `json:"target_url" gorm:"type:varchar(2048);uniqueIndex:uk_short_links_target_url,length:768;not null"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	LastAccessedAt time.Time `json:"last_accessed_at" gorm:"autoCreateTime"`
	ClickCount     int64     `json:"click_count" gorm:"default:0;not null"`
	IsActive       bool      `json:"is_active" gorm:"default:true;not null"`
}

// TableName returns the table name for ShortLink
func (ShortLink) TableName() string {
	return "short_links"
}

// ShortenRequest represents the request to shorten a URL
type ShortenRequest struct {
	URL         string `json:"url" binding:"required,url"`
	CustomAlias string `json:"custom_alias" binding:"omitempty,max=10"`
}

// ShortenResponse represents the response of a shorten request
type ShortenResponse struct {
	ShortURL  string    `json:"short_url"`
	Code      string    `json:"code"`
	TargetURL string    `json:"target_url"`
	CreatedAt time.Time `json:"created_at"`
}

// LinkInfoResponse represents the metadata view of a short link
type LinkInfoResponse struct {
	ShortURL       string    `json:"short_url"`
	Code           string    `json:"code"`
	TargetURL      string    `json:"target_url"`
	CreatedAt      time.Time `json:"created_at"`
	LastAccessedAt time.Time `json:"last_accessed_at"`
	ClickCount     int64     `json:"click_count"`
	IsActive       bool      `json:"is_active"`
}

// PaginatedLinks represents a page of short links for the admin listing
type PaginatedLinks struct {
	Total int64              `json:"total"`
	Skip  int                `json:"skip"`
	Limit int                `json:"limit"`
	Links []LinkInfoResponse `json:"links"`
}
