package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/books_backend/internal/core/ports/services"
	"github.com/SscSPs/books_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// ledgerHandler serves account statements from the ledger.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvc
}

func newLedgerHandler(ls portssvc.LedgerSvc) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// listEntriesByAccount godoc
// @Summary List ledger entries of an account
// @Description Lists an account's ledger entries newest first with cursor pagination
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListLedgerEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to list ledger entries"
// @Security BearerAuth
// @Router /accounts/{id}/entries [get]
func (h *ledgerHandler) listEntriesByAccount(c *gin.Context) {
	var params dto.ListLedgerEntriesParams
	if !bindQuery(c, &params) {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}
	entries, next, err := h.ledgerService.ListEntriesByAccount(c.Request.Context(), id, params)
	if err != nil {
		respondError(c, err, "Failed to list ledger entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLedgerEntriesResponse(entries, next))
}
