package models

import "time"

const DefaultHighlightCreator = "admin"

// StreetHighlight - отрезок улицы, отмеченный администратором на карте.
// Не удаляется по времени.
type StreetHighlight struct {
	ID          string    `json:"id"`
	StartLat    float64   `json:"start_lat"`
	StartLng    float64   `json:"start_lng"`
	EndLat      float64   `json:"end_lat"`
	EndLng      float64   `json:"end_lng"`
	Color       string    `json:"color"`
	Reason      string    `json:"reason"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   string    `json:"created_by"`
}

func (h *StreetHighlight) Canonicalize() {
	if h.CreatedBy == "" {
		h.CreatedBy = DefaultHighlightCreator
	}
	h.CreatedAt = h.CreatedAt.UTC()
}
