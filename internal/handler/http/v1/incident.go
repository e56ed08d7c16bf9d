package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary Report a new incident
// @Description Creates an incident. The cluster size and verification flag are computed once, at creation.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToIncidentModel(input)
	if err := h.incidentService.CreateIncident(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary Get a list of incidents
// @Description Lists incidents from the last 6 hours without contact details, newest first.
// @Tags Incidents
// @Produce json
// @Param hours query int false "Only incidents from the last N hours"
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid hours parameter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	hours := 0
	if raw := c.Query("hours"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			log.WithField("hours", raw).Warn("Invalid hours parameter")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hours parameter"})
			return
		}
		hours = parsed
	}

	incidents, err := h.incidentService.ListPublic(c.Request.Context(), hours)
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary React to an incident
// @Description Increments the like or dislike counter of an incident
// @Tags Incidents
// @Accept json
// @Produce json
// @Param id path string true "Incident ID"
// @Param reaction body ReactionRequest true "Reaction: like or dislike"
// @Success 200 {object} ReactionResponse
// @Failure 400 {object} map[string]string "Unsupported reaction"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/react [post]
func (h *Handler) reactToIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "reactToIncident").WithField("id", id)

	var input ReactionRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	counts, err := h.incidentService.React(c.Request.Context(), id, input.Reaction)
	if err != nil {
		h.respondError(c, log, err, "Incident not found")
		return
	}
	c.JSON(http.StatusOK, ReactionResponse{
		Success:      true,
		LikeCount:    counts.LikeCount,
		DislikeCount: counts.DislikeCount,
	})
}

// @Summary List incidents for moderation
// @Description Lists incidents from the last 6 hours including contact details
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/incidents [get]
func (h *Handler) listAdminIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listAdminIncidents")

	incidents, err := h.incidentService.ListAdmin(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Update an incident
// @Description Partially updates an incident. The id and timestamp fields are ignored.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param fields body object true "Fields to update"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} map[string]string "Invalid request body or no updatable fields"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/incidents/{id} [put]
func (h *Handler) updateIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateIncident").WithField("id", id)

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.incidentService.UpdateIncident(c.Request.Context(), id, fields); err != nil {
		h.respondError(c, log, err, "Incident not found")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "Incident updated"})
}

// @Summary Delete an incident
// @Description Deletes an incident by its ID
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteIncident").WithField("id", id)

	if err := h.incidentService.DeleteIncident(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err, "Incident not found")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "Incident deleted"})
}
