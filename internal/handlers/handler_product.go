package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/books_backend/internal/core/ports/services"
	"github.com/SscSPs/books_backend/internal/dto"
	"github.com/SscSPs/books_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// productHandler handles HTTP requests related to products and HSN codes.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

func newProductHandler(ps portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{productService: ps}
}

// RegisterProductRoutes registers the product catalogue and HSN code routes.
func RegisterProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := newProductHandler(productService)

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/:id", h.getProduct)
		products.PUT("/:id", h.updateProduct)
		products.DELETE("/:id", h.deleteProduct)
	}

	hsn := rg.Group("/hsn-codes")
	{
		hsn.POST("", h.createHSNCode)
		hsn.GET("", h.listHSNCodes)
		hsn.DELETE("/:code", h.deleteHSNCode)
	}
}

// createProduct godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Default tax not found"
// @Failure 409 {object} map[string]string "SKU already exists"
// @Failure 500 {object} map[string]string "Failed to create product"
// @Security BearerAuth
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create product")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Product created", slog.String("product_id", product.ProductID))
	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// getProduct godoc
// @Summary Get a product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to retrieve product"
// @Security BearerAuth
// @Router /products/{id} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	product, err := h.productService.GetProductByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to retrieve product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// listProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Param search query string false "Matches name or SKU"
// @Param limit query int false "Limit number of results" default(50)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListProductsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list products"
// @Security BearerAuth
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	var params dto.ListProductsParams
	if !bindQuery(c, &params) {
		return
	}

	products, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProductsResponse(products))
}

// updateProduct godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body dto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Product or tax not found"
// @Failure 500 {object} map[string]string "Failed to update product"
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}
	product, err := h.productService.UpdateProduct(c.Request.Context(), id, req, userID)
	if err != nil {
		respondError(c, err, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// deleteProduct godoc
// @Summary Delete a product
// @Description Deletes a product that no line item or stock movement refers to
// @Tags products
// @Param id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 409 {object} map[string]string "Product is in use"
// @Failure 500 {object} map[string]string "Failed to delete product"
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete product")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Product deleted", slog.String("product_id", id))
	c.Status(http.StatusNoContent)
}

// createHSNCode godoc
// @Summary Create an HSN code
// @Tags products
// @Accept json
// @Produce json
// @Param code body dto.CreateHSNCodeRequest true "HSN code"
// @Success 201 {object} dto.HSNCodeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Code already exists"
// @Failure 500 {object} map[string]string "Failed to create HSN code"
// @Security BearerAuth
// @Router /hsn-codes [post]
func (h *productHandler) createHSNCode(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.CreateHSNCodeRequest
	if !bindJSON(c, &req) {
		return
	}

	code, err := h.productService.CreateHSNCode(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create HSN code")
		return
	}
	c.JSON(http.StatusCreated, dto.ToHSNCodeResponse(code))
}

// listHSNCodes godoc
// @Summary List HSN codes
// @Tags products
// @Produce json
// @Success 200 {array} dto.HSNCodeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list HSN codes"
// @Security BearerAuth
// @Router /hsn-codes [get]
func (h *productHandler) listHSNCodes(c *gin.Context) {
	codes, err := h.productService.ListHSNCodes(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list HSN codes")
		return
	}
	c.JSON(http.StatusOK, dto.ToHSNCodeResponses(codes))
}

// deleteHSNCode godoc
// @Summary Delete an HSN code
// @Description Products classified under the code keep no code
// @Tags products
// @Param code path string true "HSN code"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Code not found"
// @Failure 500 {object} map[string]string "Failed to delete HSN code"
// @Security BearerAuth
// @Router /hsn-codes/{code} [delete]
func (h *productHandler) deleteHSNCode(c *gin.Context) {
	if err := h.productService.DeleteHSNCode(c.Request.Context(), c.Param("code")); err != nil {
		respondError(c, err, "Failed to delete HSN code")
		return
	}
	c.Status(http.StatusNoContent)
}
