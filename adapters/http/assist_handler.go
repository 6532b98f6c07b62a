package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/foliocraft/backend/internal/application/service"
	"github.com/foliocraft/backend/pkg/apperror"
	"github.com/foliocraft/backend/pkg/logger"
)

const bioFallbackNotConfigured = "Text generation is not configured. Please add an API key."
const bioFallbackError = "Error generating bio. Please try again."

// AssistHandler fronts the generative-text collaborator. Provider failures
// never surface as errors: the bio endpoint answers with a notice string and
// polish answers with the original text unchanged.
type AssistHandler struct {
	copySvc service.CopyService
	logger  logger.Logger
}

// NewAssistHandler accepts a nil service when no provider is configured.
func NewAssistHandler(copySvc service.CopyService, log logger.Logger) *AssistHandler {
	return &AssistHandler{copySvc: copySvc, logger: log}
}

func (h *AssistHandler) DraftBio(c *gin.Context) {
	var req DraftBioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for bio draft", err))
		return
	}

	if h.copySvc == nil {
		c.JSON(http.StatusOK, AssistResponse{Text: bioFallbackNotConfigured})
		return
	}

	text, err := h.copySvc.DraftBio(c.Request.Context(), req.Name, req.Skills, req.Tone)
	if err != nil {
		h.logger.Warn("bio draft failed", zap.Error(err))
		c.JSON(http.StatusOK, AssistResponse{Text: bioFallbackError})
		return
	}

	c.JSON(http.StatusOK, AssistResponse{Text: text})
}

func (h *AssistHandler) PolishText(c *gin.Context) {
	var req PolishTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for text polish", err))
		return
	}

	if h.copySvc == nil {
		c.JSON(http.StatusOK, AssistResponse{Text: req.Text})
		return
	}

	text, err := h.copySvc.PolishText(c.Request.Context(), req.Text)
	if err != nil {
		h.logger.Warn("text polish failed", zap.Error(err))
		c.JSON(http.StatusOK, AssistResponse{Text: req.Text})
		return
	}

	c.JSON(http.StatusOK, AssistResponse{Text: text})
}
