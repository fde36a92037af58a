package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"machine-tracking-backend/internal/apperrors"
	service "machine-tracking-backend/internal/services/query"
)

type QueryHandler struct {
	service *service.Service
}

func NewQueryHandler(s *service.Service) *QueryHandler {
	return &QueryHandler{service: s}
}

// Ask turns a free-text question into a gated SELECT and returns the rows,
// the SQL that produced them, and an optional one-line answer.
func (h *QueryHandler) Ask(c *gin.Context) {
	var payload struct {
		Question string `json:"question"`
		Lang     string `json:"lang"`
		Provider string `json:"provider"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if strings.TrimSpace(payload.Question) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question required"})
		return
	}

	answer, err := h.service.Ask(c.Request.Context(), payload.Question, payload.Lang, payload.Provider)
	if err != nil {
		zap.S().Errorw("query pipeline failed", "question", payload.Question, "error", err)
		switch {
		case errors.Is(err, apperrors.ErrUnsafeQuery):
			c.JSON(http.StatusBadRequest, gin.H{"error": "generated query was rejected"})
		case errors.Is(err, apperrors.ErrGenerationFailure):
			c.JSON(http.StatusBadGateway, gin.H{"error": "could not generate a query"})
		case errors.Is(err, apperrors.ErrQueryFailure):
			c.JSON(http.StatusBadRequest, gin.H{"error": "generated query failed to execute"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, answer)
}
