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
	"github.com/google/uuid"
)

// currencyHandler handles HTTP requests related to currencies and the
// aggregated index data.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
	dataService     portssvc.CurrencyDataSvc
}

func newCurrencyHandler(cs portssvc.CurrencySvcFacade, ds portssvc.CurrencyDataSvc) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
		dataService:     ds,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade, dataService portssvc.CurrencyDataSvc) {
	h := newCurrencyHandler(currencyService, dataService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:currencyID", h.getCurrencyByID)
	}

	rg.GET("/equivalences/periods", h.getIndexData)
}

func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	list := h.currencyService.ListCurrencies
	if c.Query("withEquivalences") == "true" {
		list = h.currencyService.ListCurrenciesWithEquivalences
	}

	currencies, err := list(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

func (h *currencyHandler) getCurrencyByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyID := c.Param("currencyID")

	if _, err := uuid.Parse(currencyID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid currency ID"})
		return
	}

	currency, err := h.currencyService.GetCurrencyByID(c.Request.Context(), currencyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
			return
		}
		logger.Error("Failed to get currency", slog.String("currency_id", currencyID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve currency"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

func (h *currencyHandler) getIndexData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	data, err := h.dataService.IndexData(c.Request.Context())
	if err != nil {
		logger.Error("Failed to collect index data", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to collect index data"})
		return
	}

	c.JSON(http.StatusOK, data)
}
