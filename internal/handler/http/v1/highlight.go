package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary List street highlights
// @Description Lists street segments highlighted by admins, oldest first
// @Tags Street highlights
// @Produce json
// @Success 200 {array} HighlightResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /street-highlights [get]
// @Router /admin/street-highlights [get]
func (h *Handler) listHighlights(c *gin.Context) {
	log := h.logger.WithField("method", "listHighlights")

	highlights, err := h.highlightService.ListHighlights(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, ModelsToHighlightResponses(highlights))
}

// @Summary Create a street highlight
// @Description Highlights a street segment on the map
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param highlight body CreateHighlightRequest true "Street highlight"
// @Success 201 {object} HighlightResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/street-highlights [post]
func (h *Handler) createHighlight(c *gin.Context) {
	var input CreateHighlightRequest
	log := h.logger.WithField("method", "createHighlight")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToHighlightModel(input)
	if err := h.highlightService.CreateHighlight(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusCreated, ModelToHighlightResponse(model))
}

// @Summary Update a street highlight
// @Description Partially updates a street highlight. The id and created_at fields are ignored.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Highlight ID"
// @Param fields body object true "Fields to update"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} map[string]string "Invalid request body or no updatable fields"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Street highlight not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/street-highlights/{id} [put]
func (h *Handler) updateHighlight(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateHighlight").WithField("id", id)

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.highlightService.UpdateHighlight(c.Request.Context(), id, fields); err != nil {
		h.respondError(c, log, err, "Street highlight not found")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "Street highlight updated"})
}

// @Summary Delete a street highlight
// @Description Deletes a street highlight by its ID
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Highlight ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Street highlight not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/street-highlights/{id} [delete]
func (h *Handler) deleteHighlight(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteHighlight").WithField("id", id)

	if err := h.highlightService.DeleteHighlight(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err, "Street highlight not found")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "Street highlight deleted"})
}
