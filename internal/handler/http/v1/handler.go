package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/community_map/internal/config"
	"github.com/shenikar/community_map/internal/service"
	"github.com/sirupsen/logrus"
)

// Services - набор сервисов, которые обслуживает HTTP слой
type Services struct {
	Incidents  service.IncidentService
	Chat       service.ChatService
	Presence   service.PresenceService
	Highlights service.HighlightService
	Content    service.ContentService
	Admin      service.AdminService
	Geocode    service.GeocodeService
}

type Handler struct {
	incidentService  service.IncidentService
	chatService      service.ChatService
	presenceService  service.PresenceService
	highlightService service.HighlightService
	contentService   service.ContentService
	adminService     service.AdminService
	geocodeService   service.GeocodeService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(services Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService:  services.Incidents,
		chatService:      services.Chat,
		presenceService:  services.Presence,
		highlightService: services.Highlights,
		contentService:   services.Content,
		adminService:     services.Admin,
		geocodeService:   services.Geocode,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// bindAndValidate разбирает JSON тело и проверяет DTO; при ошибке ответ уже отправлен
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError сопоставляет ошибку сервиса с HTTP статусом
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		log.WithError(err).Warn("Rejected request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	default:
		log.WithError(err).Error("Request failed in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary API root
// @Description Returns the API name
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Community Map API"})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Verify admin credentials
// @Description Checks the admin account and PIN
// @Tags Admin
// @Accept json
// @Produce json
// @Param credentials body AdminVerifyRequest true "Admin credentials"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Invalid account or PIN"
// @Router /admin/verify [post]
func (h *Handler) verifyAdmin(c *gin.Context) {
	var input AdminVerifyRequest
	log := h.logger.WithField("method", "verifyAdmin")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if err := h.adminService.Verify(c.Request.Context(), input.Account, input.PIN); err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid account or PIN"})
			return
		}
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "Admin verified"})
}

// @Summary Geocode an address
// @Description Looks up an address with OpenStreetMap Nominatim. Provider failures are reported with success=false.
// @Tags Geocoding
// @Accept json
// @Produce json
// @Param address body GeocodeRequest true "Address search request"
// @Success 200 {object} GeocodeResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /geocode [post]
func (h *Handler) geocode(c *gin.Context) {
	var input GeocodeRequest
	log := h.logger.WithField("method", "geocode")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	locations, err := h.geocodeService.Search(c.Request.Context(), input.Address)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, GeocodeResponse{Success: true, Locations: locations})
	case errors.Is(err, service.ErrNoLocations):
		c.JSON(http.StatusOK, GeocodeResponse{Success: false, Message: "No locations found"})
	case errors.Is(err, service.ErrUpstreamUnavailable):
		c.JSON(http.StatusOK, GeocodeResponse{Success: false, Message: "Geocoding service unavailable"})
	case errors.Is(err, service.ErrInvalidArgument):
		h.respondError(c, log, err, "")
	default:
		log.WithError(err).Error("Geocoding failed")
		c.JSON(http.StatusOK, GeocodeResponse{Success: false, Message: "Error searching address"})
	}
}
