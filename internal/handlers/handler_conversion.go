package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cequiv/currency_equivalences_app/internal/apperrors"
	portssvc "github.com/cequiv/currency_equivalences_app/internal/core/ports/services"
	"github.com/cequiv/currency_equivalences_app/internal/dto"
	"github.com/cequiv/currency_equivalences_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// conversionHandler handles amount-to-USD conversion requests.
type conversionHandler struct {
	conversionService portssvc.ConversionSvc
}

func newConversionHandler(cs portssvc.ConversionSvc) *conversionHandler {
	return &conversionHandler{conversionService: cs}
}

func registerConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvc) {
	h := newConversionHandler(conversionService)
	rg.POST("/convert", h.convert)
}

func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.conversionService.Convert(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		default:
			logger.Error("Failed to convert amount", slog.String("currency_id", req.CurrencyID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert amount"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
