package handler

import (
	"net/http"

	"AppealOS/internal/middleware"
	"AppealOS/internal/workflow"
	"AppealOS/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterConfig struct {
	Service            *workflow.Service
	Sessions           middleware.SessionConfig
	RateLimitPerMinute int
}

// NewRouter wires middleware and routes. Login and session status are open;
// everything else needs an unlocked session. The paid upstream calls are rate
// limited per session, login never is.
func NewRouter(cfg RouterConfig) *gin.Engine {
	h := New(cfg.Service)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Recovery(), middleware.RequestLogger())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Request-ID")
	corsCfg.ExposeHeaders = []string{"X-Request-ID", middleware.SessionTokenHeader, "Content-Disposition"}
	router.Use(cors.New(corsCfg))

	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.Index)
	})
	router.GET("/health", Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api", middleware.Session(cfg.Sessions))
	api.POST("/login", h.Login)
	api.GET("/session", h.GetSession)

	limited := middleware.RateLimit(cfg.RateLimitPerMinute)
	protected := api.Group("", middleware.RequireUnlocked())
	{
		protected.POST("/dictation", limited, h.CaptureDictation)
		protected.PUT("/dictation", h.EditTranscript)
		protected.POST("/draft", limited, h.GenerateDraft)
		protected.PUT("/draft", h.EditDraft)
		protected.POST("/draft/speech", limited, h.ReadBackDraft)
		protected.POST("/appeals", h.SaveAppeal)
		protected.GET("/appeals", h.ListAppeals)
		protected.POST("/export", h.ExportAppeal)
		protected.GET("/denial-codes", h.ListDenialCodes)
	}

	return router
}
