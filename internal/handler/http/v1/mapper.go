package v1

import (
	"time"

	"github.com/shenikar/community_map/internal/models"
)

// DTOToIncidentModel преобразует DTO создания в доменную модель.
// Идентификатор, время и вычисляемые поля заполняет сервис.
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		Category:     dto.Category,
		Urgency:      dto.Urgency,
		Description:  dto.Description,
		Latitude:     *dto.Latitude,
		Longitude:    *dto.Longitude,
		ContactEmail: dto.ContactEmail,
		ContactPhone: dto.ContactPhone,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:           model.ID,
		Category:     model.Category,
		Urgency:      model.Urgency,
		Description:  model.Description,
		Latitude:     model.Latitude,
		Longitude:    model.Longitude,
		ContactEmail: model.ContactEmail,
		ContactPhone: model.ContactPhone,
		IsVerified:   model.IsVerified,
		ClusterCount: model.ClusterCount,
		LikeCount:    model.LikeCount,
		DislikeCount: model.DislikeCount,
		Timestamp:    model.Timestamp,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

func ModelToChatMessageResponse(model *models.ChatMessage) *ChatMessageResponse {
	return &ChatMessageResponse{
		ID:        model.ID,
		Message:   model.Message,
		Author:    model.Author,
		Timestamp: model.Timestamp,
	}
}

func ModelsToChatMessageResponses(models []*models.ChatMessage) []*ChatMessageResponse {
	responses := make([]*ChatMessageResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToChatMessageResponse(model)
	}
	return responses
}

func DTOToHighlightModel(dto CreateHighlightRequest) *models.StreetHighlight {
	return &models.StreetHighlight{
		StartLat:    *dto.StartLat,
		StartLng:    *dto.StartLng,
		EndLat:      *dto.EndLat,
		EndLng:      *dto.EndLng,
		Color:       dto.Color,
		Reason:      dto.Reason,
		Description: dto.Description,
		CreatedBy:   dto.CreatedBy,
	}
}

func ModelToHighlightResponse(model *models.StreetHighlight) *HighlightResponse {
	return &HighlightResponse{
		ID:          model.ID,
		StartLat:    model.StartLat,
		StartLng:    model.StartLng,
		EndLat:      model.EndLat,
		EndLng:      model.EndLng,
		Color:       model.Color,
		Reason:      model.Reason,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
		CreatedBy:   model.CreatedBy,
	}
}

func ModelsToHighlightResponses(models []*models.StreetHighlight) []*HighlightResponse {
	responses := make([]*HighlightResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToHighlightResponse(model)
	}
	return responses
}

// ModelToLiveUpdatesResponse - updated_at опускается, пока лента ни разу не сохранялась
func ModelToLiveUpdatesResponse(model *models.ContentRecord) *LiveUpdatesResponse {
	return &LiveUpdatesResponse{
		Content:   model.Content,
		UpdatedAt: optionalTime(model.UpdatedAt),
	}
}

func ModelToWelcomeNoticeResponse(model *models.ContentRecord) *WelcomeNoticeResponse {
	enabled := true
	if model.Enabled != nil {
		enabled = *model.Enabled
	}
	return &WelcomeNoticeResponse{
		Content:   model.Content,
		Enabled:   enabled,
		UpdatedAt: optionalTime(model.UpdatedAt),
	}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
