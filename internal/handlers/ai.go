package handlers

import (
	"errors"
	"net/http"

	apierrors "github.com/brunofarias/zapboard/internal/errors"
	"github.com/brunofarias/zapboard/internal/middleware"
	"github.com/brunofarias/zapboard/internal/services"
	"github.com/gin-gonic/gin"
)

// AIHandler exposes the AI template rewrite endpoint.
type AIHandler struct {
	aiService *services.AIService
}

// NewAIHandler creates a new AIHandler. aiService may be nil when the
// OpenAI key is not configured.
func NewAIHandler(aiService *services.AIService) *AIHandler {
	return &AIHandler{
		aiService: aiService,
	}
}

// ImproveTemplate rewrites a notification template in the requested style,
// keeping every {{variable}} token intact.
func (h *AIHandler) ImproveTemplate(c *gin.Context) {
	if _, exists := middleware.GetUserID(c); !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type ImproveTemplateRequest struct {
		Template string `json:"template" binding:"required"`
		Style    string `json:"style"`
	}

	var req ImproveTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if h.aiService == nil {
		apierrors.ServiceUnavailable(c, "AI service is not configured. Please set OPENAI_API_KEY environment variable.")
		return
	}

	improved, err := h.aiService.ImproveTemplate(c.Request.Context(), req.Template, req.Style)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAIUnknownStyle):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrAIEmptyResponse),
			errors.Is(err, services.ErrAITokensAltered):
			apierrors.ServiceUnavailable(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to improve template")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"template": improved,
	})
}
