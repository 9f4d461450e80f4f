package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopdesk/product-api/internal/models"
	"github.com/shopdesk/product-api/internal/services"
	"github.com/shopdesk/product-api/internal/utils"
)

// ProductCatalog is what the handler needs from the service layer. Tests
// substitute an in-memory implementation.
type ProductCatalog interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	CreateProduct(ctx context.Context, req *services.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uint, req *services.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}

type ProductHandler struct {
	catalog ProductCatalog
}

func NewProductHandler(catalog ProductCatalog) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// GET /api/v1/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	// An empty table still returns an array, never null.
	if products == nil {
		products = []models.Product{}
	}

	utils.SuccessResponse(c, "Products retrieved successfully", products)
}

// GET /api/v1/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	utils.SuccessResponse(c, "Product retrieved successfully", product)
}

// POST /api/v1/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.catalog.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.CreatedResponse(c, "Product created successfully", product)
}

// PUT /api/v1/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	// All supplied fields must pass before any of them is applied.
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.catalog.UpdateProduct(c.Request.Context(), id, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	utils.SuccessResponse(c, "Product updated successfully", product)
}

// DELETE /api/v1/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	if err := h.catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}

	utils.DeletedResponse(c, "Product deleted successfully")
}

func (h *ProductHandler) renderError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrProductNotFound) {
		utils.NotFoundResponse(c, "Product")
		return
	}

	utils.InternalErrorResponse(c, "")
}

// parseProductID reads the :id path segment. Anything that is not a positive
// integer cannot name a product, so it renders the same 404 a missing row
// does. Returns false when a response has already been written.
func parseProductID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.NotFoundResponse(c, "Product")
		return 0, false
	}

	return uint(id), true
}
