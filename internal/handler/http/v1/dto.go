package v1

import (
	"time"

	"github.com/shenikar/community_map/internal/models"
)

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Category     string   `json:"category" validate:"required,max=50"`
	Urgency      string   `json:"urgency" validate:"required,max=20"`
	Description  string   `json:"description" validate:"max=2000"`
	Latitude     *float64 `json:"latitude" validate:"required,latitude"`
	Longitude    *float64 `json:"longitude" validate:"required,longitude"`
	ContactEmail string   `json:"contact_email,omitempty" validate:"max=254"`
	ContactPhone string   `json:"contact_phone,omitempty" validate:"max=32"`
}

// IncidentResponse DTO для ответа с информацией об инциденте.
// В публичном списке контактные поля отсутствуют.
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
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

// ReactionRequest DTO для реакции на инцидент
// @Description DTO для реакции на инцидент
type ReactionRequest struct {
	Reaction string `json:"reaction" validate:"required"`
}

// ReactionResponse DTO с обновленными счетчиками реакций
// @Description DTO с обновленными счетчиками реакций
type ReactionResponse struct {
	Success      bool `json:"success"`
	LikeCount    int  `json:"like_count"`
	DislikeCount int  `json:"dislike_count"`
}

// AdminVerifyRequest DTO для проверки учетных данных администратора
// @Description DTO для проверки учетных данных администратора
type AdminVerifyRequest struct {
	Account string `json:"account" validate:"required"`
	PIN     string `json:"pin" validate:"required"`
}

// GeocodeRequest DTO для поиска адреса
// @Description DTO для поиска адреса
type GeocodeRequest struct {
	Address string `json:"address" validate:"required,max=500"`
}

// GeocodeResponse DTO с результатами геокодирования
// @Description DTO с результатами геокодирования
type GeocodeResponse struct {
	Success   bool                 `json:"success"`
	Locations []models.GeoLocation `json:"locations,omitempty"`
	Message   string               `json:"message,omitempty"`
}

// HeartbeatResponse DTO с числом активных сессий
// @Description DTO с числом активных сессий
type HeartbeatResponse struct {
	Success     bool  `json:"success"`
	ActiveCount int64 `json:"active_count"`
}

// ChatMessageRequest DTO для отправки сообщения в чат
// @Description DTO для отправки сообщения в чат
type ChatMessageRequest struct {
	Message string `json:"message" validate:"required,max=1000"`
	Author  string `json:"author,omitempty" validate:"max=50"`
}

// ChatMessageResponse DTO сообщения чата
// @Description DTO сообщения чата
type ChatMessageResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

// LiveUpdatesRequest DTO для обновления ленты новостей
// @Description DTO для обновления ленты новостей
type LiveUpdatesRequest struct {
	Content string `json:"content" validate:"max=10000"`
}

// LiveUpdatesResponse DTO ленты новостей
// @Description DTO ленты новостей
type LiveUpdatesResponse struct {
	Content   string     `json:"content"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// WelcomeNoticeRequest DTO для обновления приветственного сообщения
// @Description DTO для обновления приветственного сообщения
type WelcomeNoticeRequest struct {
	Content string `json:"content" validate:"max=20000"`
	Enabled *bool  `json:"enabled,omitempty"`
}

// WelcomeNoticeResponse DTO приветственного сообщения
// @Description DTO приветственного сообщения
type WelcomeNoticeResponse struct {
	Content   string     `json:"content"`
	Enabled   bool       `json:"enabled"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// CreateHighlightRequest DTO для создания отметки улицы
// @Description DTO для создания отметки улицы
type CreateHighlightRequest struct {
	StartLat    *float64 `json:"start_lat" validate:"required,latitude"`
	StartLng    *float64 `json:"start_lng" validate:"required,longitude"`
	EndLat      *float64 `json:"end_lat" validate:"required,latitude"`
	EndLng      *float64 `json:"end_lng" validate:"required,longitude"`
	Color       string   `json:"color" validate:"required,oneof=red yellow green"`
	Reason      string   `json:"reason" validate:"required,oneof=protest theft harassment road_closure construction accident other"`
	Description string   `json:"description,omitempty" validate:"max=500"`
	CreatedBy   string   `json:"created_by,omitempty" validate:"max=50"`
}

// HighlightResponse DTO отметки улицы
// @Description DTO отметки улицы
type HighlightResponse struct {
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

// SuccessResponse DTO результата изменяющей операции
// @Description DTO результата изменяющей операции
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
