package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/books_backend/internal/core/ports/services"
	"github.com/SscSPs/books_backend/internal/dto"
	"github.com/SscSPs/books_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type stockHandler struct {
	stockService portssvc.StockSvcFacade
}

// RegisterStockRoutes registers stock adjustment and movement routes.
func RegisterStockRoutes(rg *gin.RouterGroup, stockService portssvc.StockSvcFacade) {
	h := &stockHandler{stockService: stockService}

	stock := rg.Group("/stock")
	{
		stock.POST("/adjustments", h.adjustStock)
		stock.GET("/movements", h.listMovements)
	}
}

// adjustStock godoc
// @Summary Adjust stock
// @Description Records a signed quantity correction for a product
// @Tags stock
// @Accept json
// @Produce json
// @Param adjustment body dto.StockAdjustmentRequest true "Adjustment details"
// @Success 201 {object} dto.StockMovementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to adjust stock"
// @Security BearerAuth
// @Router /stock/adjustments [post]
func (h *stockHandler) adjustStock(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.StockAdjustmentRequest
	if !bindJSON(c, &req) {
		return
	}

	movement, err := h.stockService.AdjustStock(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to adjust stock")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Stock adjusted",
		slog.String("product_id", movement.ProductID),
		slog.String("quantity", movement.Quantity.String()))
	c.JSON(http.StatusCreated, dto.ToStockMovementResponse(movement))
}

// listMovements godoc
// @Summary List stock movements
// @Tags stock
// @Produce json
// @Param productId query string false "Product ID"
// @Param limit query int false "Limit number of results" default(50)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListStockMovementsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list stock movements"
// @Security BearerAuth
// @Router /stock/movements [get]
func (h *stockHandler) listMovements(c *gin.Context) {
	var params dto.ListStockMovementsParams
	if !bindQuery(c, &params) {
		return
	}

	movements, err := h.stockService.ListMovements(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list stock movements")
		return
	}
	c.JSON(http.StatusOK, dto.ToListStockMovementsResponse(movements))
}
