package httpapi

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sitekit/internal/adapters/htmldom"
	"sitekit/internal/application"
	"sitekit/internal/domain/entities"
	"sitekit/pkg/logger"
)

//go:embed web/index.html
var webFS embed.FS

// PageHandler serves the site's page, localized for the lang query
// parameter before it leaves the server.
type PageHandler struct {
	page  []byte
	store entities.Store
}

func NewPageHandler(store entities.Store) *PageHandler {
	page, err := webFS.ReadFile("web/index.html")
	if err != nil {
		// Unreachable: the file is embedded at compile time.
		panic("httpapi: missing embedded page: " + err.Error())
	}
	return &PageHandler{page: page, store: store}
}

func (h *PageHandler) Serve(c *gin.Context) {
	doc, err := htmldom.Parse(h.page)
	if err != nil {
		logger.Error("page: parse failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "page unavailable")
		return
	}

	loc := application.NewLocalizer(c.Request.URL.String(), doc)
	loc.Init(h.store)

	out, err := doc.Render()
	if err != nil {
		logger.Error("page: render failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "page unavailable")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", out)
}
