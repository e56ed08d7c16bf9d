package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Get live updates
// @Description Returns the live updates banner text
// @Tags Content
// @Produce json
// @Success 200 {object} LiveUpdatesResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /live-updates [get]
func (h *Handler) getLiveUpdates(c *gin.Context) {
	log := h.logger.WithField("method", "getLiveUpdates")

	rec, err := h.contentService.GetLiveUpdates(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, ModelToLiveUpdatesResponse(rec))
}

// @Summary Set live updates
// @Description Replaces the live updates banner text
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param content body LiveUpdatesRequest true "Live updates content"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/live-updates [post]
func (h *Handler) setLiveUpdates(c *gin.Context) {
	var input LiveUpdatesRequest
	log := h.logger.WithField("method", "setLiveUpdates")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	if err := h.contentService.SetLiveUpdates(c.Request.Context(), input.Content); err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "Live updates saved"})
}

// @Summary Get welcome notice
// @Description Returns the welcome notice HTML; a default notice is returned until an admin saves one
// @Tags Content
// @Produce json
// @Success 200 {object} WelcomeNoticeResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /welcome-notice [get]
func (h *Handler) getWelcomeNotice(c *gin.Context) {
	log := h.logger.WithField("method", "getWelcomeNotice")

	rec, err := h.contentService.GetWelcomeNotice(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, ModelToWelcomeNoticeResponse(rec))
}

// @Summary Set welcome notice
// @Description Replaces the welcome notice; enabled defaults to true
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param notice body WelcomeNoticeRequest true "Welcome notice"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/welcome-notice [post]
func (h *Handler) setWelcomeNotice(c *gin.Context) {
	var input WelcomeNoticeRequest
	log := h.logger.WithField("method", "setWelcomeNotice")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	enabled := true
	if input.Enabled != nil {
		enabled = *input.Enabled
	}

	if err := h.contentService.SetWelcomeNotice(c.Request.Context(), input.Content, enabled); err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "Welcome notice saved"})
}
