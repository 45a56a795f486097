package api

import (
	"net/http"
	"strconv"

	reqdto "support-notify/internal/handler/dto/request"
	resdto "support-notify/internal/handler/dto/response"
	"support-notify/internal/handler/httperr"
	"support-notify/internal/handler/middleware"
	"support-notify/internal/usecase/commands"
	"support-notify/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	cmds commands.NotificationCommands
	q    queries.NotificationQueries
}

func NewNotificationHandler(cmds commands.NotificationCommands, q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{cmds: cmds, q: q}
}

// @Summary Create notification
// @Description Enqueue a notification for delivery
// @Tags notifications
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param request body reqdto.CreateNotificationRequest true "Create notification request"
// @Success 201 {object} resdto.NotificationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /notifications [post]
func (h *NotificationHandler) Create(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Tenant required", nil)
		return
	}
	var req reqdto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), tenantID, cmd)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), tenantID, result.NotificationID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load notification", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromNotificationView(view))
}

// @Summary Get notification
// @Description Get a notification by ID
// @Tags notifications
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Notification ID"
// @Success 200 {object} resdto.NotificationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /notifications/{id} [get]
func (h *NotificationHandler) Get(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Tenant required", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNotificationView(view))
}

// @Summary Cancel notification
// @Description Cancel a pending or processing notification
// @Tags notifications
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /notifications/{id}/cancel [post]
func (h *NotificationHandler) Cancel(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Tenant required", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), tenantID, id); err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List recipient notifications
// @Description List notifications for a recipient with keyset pagination
// @Tags notifications
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param recipient_id query string true "Recipient ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /notifications [get]
func (h *NotificationHandler) ListByRecipient(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Tenant required", nil)
		return
	}
	recipientID, err := uuid.Parse(c.Query("recipient_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid recipient_id", nil)
		return
	}
	limit := 20
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	items, next, err := h.q.ListByRecipient(c.Request.Context(), tenantID, recipientID, cursor, limit)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	resp := gin.H{"notifications": resdto.FromNotificationList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List event notifications
// @Description List notifications produced by a platform event
// @Tags notifications
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param event_type query string true "Event type"
// @Param event_id query string true "Event ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /notifications/by-event [get]
func (h *NotificationHandler) ListByEvent(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Tenant required", nil)
		return
	}
	eventType := c.Query("event_type")
	if eventType == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "event_type is required", nil)
		return
	}
	eventID, err := uuid.Parse(c.Query("event_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event_id", nil)
		return
	}
	items, err := h.q.ListByEvent(c.Request.Context(), tenantID, eventType, eventID)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": resdto.FromNotificationList(items)})
}
