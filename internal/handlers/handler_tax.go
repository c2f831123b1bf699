package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/books_backend/internal/core/ports/services"
	"github.com/SscSPs/books_backend/internal/dto"
	"github.com/SscSPs/books_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type taxHandler struct {
	taxService portssvc.TaxSvcFacade
}

// RegisterTaxRoutes registers routes related to tax rates.
func RegisterTaxRoutes(rg *gin.RouterGroup, taxService portssvc.TaxSvcFacade) {
	h := &taxHandler{taxService: taxService}

	taxes := rg.Group("/taxes")
	{
		taxes.POST("", h.createTax)
		taxes.GET("", h.listTaxes)
		taxes.GET("/:id", h.getTax)
		taxes.DELETE("/:id", h.deleteTax)
	}
}

// createTax godoc
// @Summary Create a tax
// @Description Creates a PERCENTAGE or FIXED_VALUE tax
// @Tags taxes
// @Accept json
// @Produce json
// @Param tax body dto.CreateTaxRequest true "Tax details"
// @Success 201 {object} dto.TaxResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Tax name already exists"
// @Failure 500 {object} map[string]string "Failed to create tax"
// @Security BearerAuth
// @Router /taxes [post]
func (h *taxHandler) createTax(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.CreateTaxRequest
	if !bindJSON(c, &req) {
		return
	}

	tax, err := h.taxService.CreateTax(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create tax")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Tax created", slog.String("tax_id", tax.TaxID), slog.String("method", string(tax.Method)))
	c.JSON(http.StatusCreated, dto.ToTaxResponse(tax))
}

// getTax godoc
// @Summary Get a tax by ID
// @Tags taxes
// @Produce json
// @Param id path string true "Tax ID"
// @Success 200 {object} dto.TaxResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Tax not found"
// @Failure 500 {object} map[string]string "Failed to retrieve tax"
// @Security BearerAuth
// @Router /taxes/{id} [get]
func (h *taxHandler) getTax(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	tax, err := h.taxService.GetTaxByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to retrieve tax")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaxResponse(tax))
}

// listTaxes godoc
// @Summary List taxes
// @Tags taxes
// @Produce json
// @Success 200 {object} dto.ListTaxesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list taxes"
// @Security BearerAuth
// @Router /taxes [get]
func (h *taxHandler) listTaxes(c *gin.Context) {
	taxes, err := h.taxService.ListTaxes(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list taxes")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTaxesResponse(taxes))
}

// deleteTax godoc
// @Summary Delete a tax
// @Description Deletes a tax no product or line item refers to
// @Tags taxes
// @Param id path string true "Tax ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Tax not found"
// @Failure 409 {object} map[string]string "Tax is in use"
// @Failure 500 {object} map[string]string "Failed to delete tax"
// @Security BearerAuth
// @Router /taxes/{id} [delete]
func (h *taxHandler) deleteTax(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.taxService.DeleteTax(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete tax")
		return
	}
	c.Status(http.StatusNoContent)
}
