package httpapi

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"sitekit/internal/config"
	"sitekit/internal/domain/entities"
	"sitekit/internal/ports/input"
	"sitekit/pkg/logger"
)

// maxAttachmentBytes caps a single uploaded file; chat backends reject
// larger payloads anyway.
const maxAttachmentBytes = 10 << 20

// FeedbackHandler exposes the feedback relay endpoint.
type FeedbackHandler struct {
	service  input.FeedbackSender
	cfg      *config.Config
	validate *validator.Validate
}

func NewFeedbackHandler(service input.FeedbackSender, cfg *config.Config) *FeedbackHandler {
	return &FeedbackHandler{
		service:  service,
		cfg:      cfg,
		validate: validator.New(),
	}
}

type feedbackRequest struct {
	Type      string `json:"type" form:"type"`
	Lang      string `json:"lang" form:"lang"`
	Email     string `json:"email" form:"email" validate:"omitempty,email"`
	Message   string `json:"message" form:"message"`
	SentAt    string `json:"sentAt" form:"sentAt"`
	UserAgent string `json:"userAgent" form:"userAgent"`
}

func relayError(msg string) gin.H {
	return gin.H{"ok": false, "error": msg}
}

// Submit accepts a feedback submission as JSON or multipart form and relays
// it once to the configured chat backend.
func (h *FeedbackHandler) Submit(c *gin.Context) {
	if !h.cfg.RelayConfigured() {
		c.JSON(http.StatusInternalServerError, relayError("feedback relay is not configured"))
		return
	}

	var req feedbackRequest
	var attachment *entities.Attachment

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, relayError("malformed form body"))
			return
		}
		if fh, err := c.FormFile("file"); err == nil && fh.Size > 0 && fh.Size <= maxAttachmentBytes {
			f, err := fh.Open()
			if err == nil {
				data, readErr := io.ReadAll(f)
				f.Close()
				if readErr == nil {
					attachment = &entities.Attachment{Name: fh.Filename, Data: data}
				}
			}
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, relayError("malformed JSON body"))
			return
		}
	}

	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, relayError("invalid reply email"))
		return
	}

	if req.UserAgent == "" {
		req.UserAgent = c.Request.UserAgent()
	}

	fb := &entities.Feedback{
		Type:       req.Type,
		Lang:       req.Lang,
		Email:      req.Email,
		Message:    req.Message,
		SentAt:     req.SentAt,
		UserAgent:  req.UserAgent,
		Attachment: attachment,
	}

	if err := h.service.Submit(c.Request.Context(), fb); err != nil {
		feedbackForwardedTotal.WithLabelValues("error").Inc()
		logger.Error("feedback: delivery failed", zap.String("id", fb.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, relayError(err.Error()))
		return
	}

	feedbackForwardedTotal.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Diagnostics reports whether the upstream credentials are configured and
// which origins may call the endpoint. Used as a deploy-time smoke check.
func (h *FeedbackHandler) Diagnostics(c *gin.Context) {
	tokenSet, chatSet := h.cfg.CredentialFlags()
	c.JSON(http.StatusOK, gin.H{
		"ok":             true,
		"backend":        h.cfg.Backend,
		"tokenSet":       tokenSet,
		"chatSet":        chatSet,
		"allowedOrigins": h.cfg.AllowedOrigins,
	})
}

// Preflight answers CORS preflight with an empty response; the CORS
// middleware has already attached the relevant headers.
func (h *FeedbackHandler) Preflight(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
