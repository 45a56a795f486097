package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"support-notify/internal/handler/api"
	"support-notify/internal/handler/middleware"
	"support-notify/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	notificationHandler *api.NotificationHandler,
	feedbackHandler *api.FeedbackHandler,
	templateHandler *api.TemplateHandler,
	statsHandler *api.StatsHandler,
	callbackAuth *middleware.CallbackAuth,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, notificationHandler, feedbackHandler, templateHandler, statsHandler, callbackAuth)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	notificationHandler *api.NotificationHandler,
	feedbackHandler *api.FeedbackHandler,
	templateHandler *api.TemplateHandler,
	statsHandler *api.StatsHandler,
	callbackAuth *middleware.CallbackAuth,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(middleware.RequireTenant())
	{
		notifications := apiGroup.Group("/notifications")
		{
			addRoutes(notifications, []route{
				{Method: http.MethodPost, Path: "", Handler: notificationHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: notificationHandler.ListByRecipient},
				{Method: http.MethodGet, Path: "/stats", Handler: statsHandler.Get},
				{Method: http.MethodGet, Path: "/by-event", Handler: notificationHandler.ListByEvent},
				{Method: http.MethodGet, Path: "/:id", Handler: notificationHandler.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: notificationHandler.Cancel},
			})
		}

		feedback := apiGroup.Group("/feedback")
		feedback.Use(callbackAuth.VerifySignature())
		{
			addRoutes(feedback, []route{
				{Method: http.MethodPost, Path: "", Handler: feedbackHandler.Ingest},
			})
		}

		templates := apiGroup.Group("/templates")
		{
			addRoutes(templates, []route{
				{Method: http.MethodPost, Path: "", Handler: templateHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: templateHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: templateHandler.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: templateHandler.Update},
				{Method: http.MethodPost, Path: "/:id/default", Handler: templateHandler.SetDefault},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
