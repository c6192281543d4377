package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sitekit/internal/config"
	"sitekit/internal/domain/entities"
	"sitekit/internal/ports/input"
)

// NewRouter wires the HTTP surface: the localized page, the feedback relay
// endpoint and the operational routes.
func NewRouter(cfg *config.Config, feedback input.FeedbackSender, pageStore entities.Store) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(), Metrics())

	corsCfg := cors.DefaultConfig()
	if cfg.AllowAllOrigins() {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type"}
	router.Use(cors.New(corsCfg))

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, relayError("method not allowed"))
	})

	fh := NewFeedbackHandler(feedback, cfg)
	router.GET("/api/feedback", fh.Diagnostics)
	router.POST("/api/feedback", fh.Submit)
	router.OPTIONS("/api/feedback", fh.Preflight)

	ph := NewPageHandler(pageStore)
	router.GET("/", ph.Serve)
	router.GET("/index.html", ph.Serve)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
