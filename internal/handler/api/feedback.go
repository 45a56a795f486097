package api

import (
	"net/http"

	reqdto "support-notify/internal/handler/dto/request"
	"support-notify/internal/handler/httperr"
	"support-notify/internal/handler/middleware"
	"support-notify/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	cmds commands.FeedbackCommands
}

func NewFeedbackHandler(cmds commands.FeedbackCommands) *FeedbackHandler {
	return &FeedbackHandler{cmds: cmds}
}

// @Summary Ingest delivery feedback
// @Description Apply a provider delivery status callback. Unknown external ids are accepted and dropped.
// @Tags feedback
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param request body reqdto.DeliveryFeedbackRequest true "Delivery feedback"
// @Success 202 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /feedback [post]
func (h *FeedbackHandler) Ingest(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Tenant required", nil)
		return
	}
	var req reqdto.DeliveryFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid feedback event", nil)
		return
	}
	if err := h.cmds.Apply(c.Request.Context(), tenantID, cmd); err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}
