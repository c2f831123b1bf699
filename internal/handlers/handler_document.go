package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/books_backend/internal/core/domain"
	portssvc "github.com/SscSPs/books_backend/internal/core/ports/services"
	"github.com/SscSPs/books_backend/internal/dto"
	"github.com/SscSPs/books_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// documentRoutes maps each document kind to its collection path.
var documentRoutes = []struct {
	kind domain.DocumentKind
	path string
}{
	{domain.PurchaseOrder, "/purchase-orders"},
	{domain.SalesOrder, "/sales-orders"},
	{domain.VendorBill, "/vendor-bills"},
	{domain.CustomerInvoice, "/customer-invoices"},
}

// documentHandler serves one document kind. The four kinds share handlers and differ only in
// the routes registered: orders can be converted, bills and invoices take payments.
type documentHandler struct {
	kind            domain.DocumentKind
	documentService portssvc.DocumentSvcFacade
	paymentService  portssvc.PaymentSvcFacade
}

// RegisterDocumentRoutes registers the order, bill and invoice routes.
func RegisterDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade, paymentService portssvc.PaymentSvcFacade) {
	for _, route := range documentRoutes {
		h := &documentHandler{kind: route.kind, documentService: documentService, paymentService: paymentService}

		group := rg.Group(route.path)
		group.POST("", h.createDocument)
		group.GET("", h.listDocuments)
		group.GET("/:id", h.getDocument)
		group.DELETE("/:id", h.deleteDocument)

		if route.kind.IsOrder() {
			group.POST("/:id/convert", h.convertOrder)
			continue
		}
		group.POST("/:id/payments", h.recordPayment)
		group.GET("/:id/payments", h.listPayments)
		group.GET("/:id/payments/:paymentId", h.getPayment)
	}
}

// createDocument godoc
// @Summary Create a document
// @Description Creates a purchase order, sales order, vendor bill or customer invoice. Bills and invoices post to the ledger; bills and sales orders move stock.
// @Tags documents
// @Accept json
// @Produce json
// @Param kind path string true "Document collection" Enums(purchase-orders, sales-orders, vendor-bills, customer-invoices)
// @Param document body dto.CreateDocumentRequest true "Document details"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Contact, product or tax not found"
// @Failure 500 {object} map[string]string "Failed to create document"
// @Security BearerAuth
// @Router /{kind} [post]
func (h *documentHandler) createDocument(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.CreateDocumentRequest
	if !bindJSON(c, &req) {
		return
	}

	doc, err := h.documentService.CreateDocument(c.Request.Context(), h.kind, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create document")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Document created",
		slog.String("kind", string(h.kind)),
		slog.String("document_id", doc.DocumentID),
		slog.String("number", doc.Number),
		slog.String("total", doc.Total.String()))
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

// getDocument godoc
// @Summary Get a document by ID
// @Tags documents
// @Produce json
// @Param kind path string true "Document collection" Enums(purchase-orders, sales-orders, vendor-bills, customer-invoices)
// @Param id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to retrieve document"
// @Security BearerAuth
// @Router /{kind}/{id} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	doc, err := h.documentService.GetDocument(c.Request.Context(), h.kind, id)
	if err != nil {
		respondError(c, err, "Failed to retrieve document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// listDocuments godoc
// @Summary List documents
// @Description Lists documents newest first with token based pagination
// @Tags documents
// @Produce json
// @Param kind path string true "Document collection" Enums(purchase-orders, sales-orders, vendor-bills, customer-invoices)
// @Param contactId query string false "Contact ID"
// @Param status query string false "Document status" Enums(DRAFT, CONVERTED, ISSUED)
// @Param paymentStatus query string false "Payment status" Enums(UNPAID, PARTIAL, PAID)
// @Param from query string false "Earliest document date (YYYY-MM-DD)"
// @Param to query string false "Latest document date (YYYY-MM-DD)"
// @Param limit query int false "Limit number of results" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListDocumentsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list documents"
// @Security BearerAuth
// @Router /{kind} [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	var params dto.ListDocumentsParams
	if !bindQuery(c, &params) {
		return
	}

	docs, next, err := h.documentService.ListDocuments(c.Request.Context(), h.kind, params)
	if err != nil {
		respondError(c, err, "Failed to list documents")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDocumentsResponse(docs, next))
}

// deleteDocument godoc
// @Summary Delete a document
// @Description Deletes a draft order, or an unpaid bill or invoice whose postings are reversed
// @Tags documents
// @Param kind path string true "Document collection" Enums(purchase-orders, sales-orders, vendor-bills, customer-invoices)
// @Param id path string true "Document ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 409 {object} map[string]string "Document is converted or has payments"
// @Failure 500 {object} map[string]string "Failed to delete document"
// @Security BearerAuth
// @Router /{kind}/{id} [delete]
func (h *documentHandler) deleteDocument(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	documentID, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.documentService.DeleteDocument(c.Request.Context(), h.kind, documentID, userID); err != nil {
		respondError(c, err, "Failed to delete document")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Document deleted",
		slog.String("kind", string(h.kind)),
		slog.String("document_id", documentID))
	c.Status(http.StatusNoContent)
}

// convertOrder godoc
// @Summary Convert an order
// @Description Converts a draft purchase order into a vendor bill, or a draft sales order into a customer invoice
// @Tags documents
// @Accept json
// @Produce json
// @Param kind path string true "Order collection" Enums(purchase-orders, sales-orders)
// @Param id path string true "Order ID"
// @Param convert body dto.ConvertOrderRequest false "Dates of the new document"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 409 {object} map[string]string "Order already converted"
// @Failure 500 {object} map[string]string "Failed to convert order"
// @Security BearerAuth
// @Router /{kind}/{id}/convert [post]
func (h *documentHandler) convertOrder(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.ConvertOrderRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	orderID, ok := pathID(c)
	if !ok {
		return
	}
	doc, err := h.documentService.ConvertOrder(c.Request.Context(), h.kind, orderID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to convert order")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Order converted",
		slog.String("order_id", orderID),
		slog.String("document_id", doc.DocumentID),
		slog.String("number", doc.Number))
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

// recordPayment godoc
// @Summary Record a payment
// @Description Applies a payment against a vendor bill or customer invoice. Payments beyond the amount due are rejected.
// @Tags payments
// @Accept json
// @Produce json
// @Param kind path string true "Document collection" Enums(vendor-bills, customer-invoices)
// @Param id path string true "Document ID"
// @Param payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} dto.RecordPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 409 {object} map[string]string "Payment exceeds the amount due"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Security BearerAuth
// @Router /{kind}/{id}/payments [post]
func (h *documentHandler) recordPayment(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.RecordPaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	documentID, ok := pathID(c)
	if !ok {
		return
	}
	app, err := h.paymentService.RecordPayment(c.Request.Context(), h.kind, documentID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to record payment")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Payment recorded",
		slog.String("document_id", documentID),
		slog.String("payment_id", app.Payment.PaymentID),
		slog.String("amount", app.Payment.Amount.String()),
		slog.String("payment_status", string(app.PaymentStatus)))
	c.JSON(http.StatusCreated, dto.ToRecordPaymentResponse(app))
}

// listPayments godoc
// @Summary List payments of a document
// @Tags payments
// @Produce json
// @Param kind path string true "Document collection" Enums(vendor-bills, customer-invoices)
// @Param id path string true "Document ID"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Security BearerAuth
// @Router /{kind}/{id}/payments [get]
func (h *documentHandler) listPayments(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	payments, err := h.paymentService.ListPayments(c.Request.Context(), h.kind, id)
	if err != nil {
		respondError(c, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
}

// getPayment godoc
// @Summary Get a payment
// @Tags payments
// @Produce json
// @Param kind path string true "Document collection" Enums(vendor-bills, customer-invoices)
// @Param id path string true "Document ID"
// @Param paymentId path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to retrieve payment"
// @Security BearerAuth
// @Router /{kind}/{id}/payments/{paymentId} [get]
func (h *documentHandler) getPayment(c *gin.Context) {
	var path dto.PaymentPath
	if !bindURI(c, &path) {
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), h.kind, path.PaymentID)
	if err != nil {
		respondError(c, err, "Failed to retrieve payment")
		return
	}
	if payment.DocumentID != path.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}
