package api

import (
	"net/http"

	resdto "support-notify/internal/handler/dto/response"
	"support-notify/internal/handler/httperr"
	"support-notify/internal/handler/middleware"
	"support-notify/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	q queries.StatsQueries
}

func NewStatsHandler(q queries.StatsQueries) *StatsHandler {
	return &StatsHandler{q: q}
}

// @Summary Notification statistics
// @Description Get delivery and engagement statistics for the tenant
// @Tags stats
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Success 200 {object} resdto.StatsResponse
// @Failure 400 {object} map[string]string
// @Router /notifications/stats [get]
func (h *StatsHandler) Get(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Tenant required", nil)
		return
	}
	view, err := h.q.Get(c.Request.Context(), tenantID)
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatsView(view))
}
