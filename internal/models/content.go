package models

import "time"

// Ключи документов-одиночек с контентом
const (
	ContentLiveUpdates   = "live_updates"
	ContentWelcomeNotice = "welcome_notice"
)

type ContentRecord struct {
	ID        string    `json:"-"`
	Content   string    `json:"content"`
	Enabled   *bool     `json:"enabled,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}
