package models

import (
	"time"
)

// Известные категории инцидентов. Категория хранится как произвольная строка,
// значения вне списка тоже принимаются.
const (
	CategoryProtest    = "protest"
	CategoryTheft      = "theft"
	CategoryHarassment = "harassment"
)

const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

type Incident struct {
	ID           string    `json:"id"`
	Category     string    `json:"category"`
	Urgency      string    `json:"urgency"`
	Description  string    `json:"description"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	ContactEmail string    `json:"contact_email,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	IsVerified   bool      `json:"is_verified"`
	ClusterCount int       `json:"cluster_count"`
	LikeCount    int       `json:"like_count"`
	DislikeCount int       `json:"dislike_count"`
	Timestamp    time.Time `json:"timestamp"`
}

// Canonicalize заполняет значения по умолчанию для записей, созданных до
// появления поля. Вызывается на каждом чтении до передачи в сервис.
func (i *Incident) Canonicalize() {
	if i.ClusterCount < 1 {
		i.ClusterCount = 1
	}
	if i.LikeCount < 0 {
		i.LikeCount = 0
	}
	if i.DislikeCount < 0 {
		i.DislikeCount = 0
	}
	i.Timestamp = i.Timestamp.UTC()
}

// WithoutContact возвращает копию без контактных данных
func (i *Incident) WithoutContact() *Incident {
	c := *i
	c.ContactEmail = ""
	c.ContactPhone = ""
	return &c
}

// ReactionCounts - счетчики реакций после инкремента
type ReactionCounts struct {
	LikeCount    int `json:"like_count"`
	DislikeCount int `json:"dislike_count"`
}
