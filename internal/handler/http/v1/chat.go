package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Session heartbeat
// @Description Marks a browser session as active and returns the number of sessions seen in the last 2 minutes
// @Tags Users
// @Produce json
// @Param session_id path string true "Client session ID"
// @Success 200 {object} HeartbeatResponse
// @Failure 400 {object} map[string]string "Invalid session ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/heartbeat/{session_id} [post]
func (h *Handler) heartbeat(c *gin.Context) {
	sessionID := c.Param("session_id")
	log := h.logger.WithField("method", "heartbeat").WithField("session_id", sessionID)

	count, err := h.presenceService.Heartbeat(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, HeartbeatResponse{Success: true, ActiveCount: count})
}

// @Summary List chat messages
// @Description Lists chat messages from the last 24 hours in chronological order
// @Tags Chat
// @Produce json
// @Success 200 {array} ChatMessageResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /chat/messages [get]
func (h *Handler) listChatMessages(c *gin.Context) {
	log := h.logger.WithField("method", "listChatMessages")

	messages, err := h.chatService.ListMessages(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, ModelsToChatMessageResponses(messages))
}

// @Summary Post a chat message
// @Description Posts an anonymous chat message
// @Tags Chat
// @Accept json
// @Produce json
// @Param message body ChatMessageRequest true "Chat message"
// @Success 201 {object} ChatMessageResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /chat/messages [post]
func (h *Handler) postChatMessage(c *gin.Context) {
	var input ChatMessageRequest
	log := h.logger.WithField("method", "postChatMessage")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	msg, err := h.chatService.PostMessage(c.Request.Context(), input.Message, input.Author)
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusCreated, ModelToChatMessageResponse(msg))
}
