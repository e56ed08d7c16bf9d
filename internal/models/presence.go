package models

import "time"

type PresenceRecord struct {
	SessionID string    `json:"session_id"`
	LastSeen  time.Time `json:"last_seen"`
}
