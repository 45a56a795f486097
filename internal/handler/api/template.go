package api

import (
	"net/http"

	reqdto "support-notify/internal/handler/dto/request"
	resdto "support-notify/internal/handler/dto/response"
	"support-notify/internal/handler/httperr"
	"support-notify/internal/handler/middleware"
	"support-notify/internal/usecase/commands"
	"support-notify/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TemplateHandler struct {
	cmds commands.TemplateCommands
	q    queries.TemplateQueries
}

func NewTemplateHandler(cmds commands.TemplateCommands, q queries.TemplateQueries) *TemplateHandler {
	return &TemplateHandler{cmds: cmds, q: q}
}

// @Summary Create template
// @Description Create a notification content template
// @Tags templates
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param request body reqdto.CreateTemplateRequest true "Create template request"
// @Success 201 {object} resdto.TemplateResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /templates [post]
func (h *TemplateHandler) Create(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Tenant required", nil)
		return
	}
	var req reqdto.CreateTemplateRequest
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
	view, err := h.q.GetByID(c.Request.Context(), tenantID, result.TemplateID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load template", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTemplateView(view))
}

// @Summary Get template
// @Description Get a template by ID
// @Tags templates
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Template ID"
// @Success 200 {object} resdto.TemplateResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /templates/{id} [get]
func (h *TemplateHandler) Get(c *gin.Context) {
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
	c.JSON(http.StatusOK, resdto.FromTemplateView(view))
}

// @Summary List templates
// @Description List templates, optionally filtered by channel
// @Tags templates
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param channel query string false "Channel filter"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /templates [get]
func (h *TemplateHandler) List(c *gin.Context) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Tenant required", nil)
		return
	}
	views, err := h.q.List(c.Request.Context(), tenantID, c.Query("channel"))
	if err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": resdto.FromTemplateList(views)})
}

// @Summary Update template
// @Description Update template content or active flag
// @Tags templates
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Template ID"
// @Param request body reqdto.UpdateTemplateRequest true "Update template request"
// @Success 200 {object} resdto.TemplateResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /templates/{id} [patch]
func (h *TemplateHandler) Update(c *gin.Context) {
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
	var req reqdto.UpdateTemplateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), tenantID, id, req.ToCommand()); err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load template", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTemplateView(view))
}

// @Summary Set default template
// @Description Make the template the default for its event type, channel and language
// @Tags templates
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Template ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /templates/{id}/default [post]
func (h *TemplateHandler) SetDefault(c *gin.Context) {
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
	if err := h.cmds.SetDefault(c.Request.Context(), tenantID, id); err != nil {
		httperr.AbortDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
