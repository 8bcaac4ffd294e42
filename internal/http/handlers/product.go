package handlers

import (
	"net/http"

	"cardapio/internal/repo"
	"cardapio/pkg/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	productRepo *repo.ProductRepository
}

func NewProductHandler(productRepo *repo.ProductRepository) *ProductHandler {
	return &ProductHandler{productRepo: productRepo}
}

// List godoc
// @Summary List products
// @Description Get all products for a tenant with their option groups
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {object} map[string]string
// @Router /products [get]
// @Security BearerAuth
func (h *ProductHandler) List(c echo.Context) error {
	tenantID := c.Get("tenant_id").(uuid.UUID)

	products, err := h.productRepo.List(tenantID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch products"})
	}

	return c.JSON(http.StatusOK, products)
}

// GetByID godoc
// @Summary Get product by ID
// @Description Get a product with its option groups
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
// @Security BearerAuth
func (h *ProductHandler) GetByID(c echo.Context) error {
	tenantID := c.Get("tenant_id").(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid product ID"})
	}

	product, err := h.productRepo.GetByID(tenantID, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "product not found"})
	}

	return c.JSON(http.StatusOK, product)
}

// Create godoc
// @Summary Create product
// @Description Create a product with its option groups
// @Tags products
// @Accept json
// @Produce json
// @Param product body models.CreateProductRequest true "Product data"
// @Success 201 {object} models.Product
// @Failure 400 {object} map[string]string
// @Router /products [post]
// @Security BearerAuth
func (h *ProductHandler) Create(c echo.Context) error {
	tenantID := c.Get("tenant_id").(uuid.UUID)

	var req models.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	product := models.Product{
		BaseTenantModel: models.BaseTenantModel{TenantID: tenantID},
		CategoryID:      req.CategoryID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		ImageURL:        req.ImageURL,
		IsAvailable:     isAvailable,
		AllowsHalfHalf:  req.AllowsHalfHalf,
		SortOrder:       req.SortOrder,
		OptionGroups:    buildOptionGroups(req.OptionGroups),
	}

	if err := h.productRepo.Create(&product); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, product)
}

// Update godoc
// @Summary Update product
// @Description Update a product. A non-null option_groups replaces the whole set.
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body models.UpdateProductRequest true "Product data"
// @Success 200 {object} models.Product
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [put]
// @Security BearerAuth
func (h *ProductHandler) Update(c echo.Context) error {
	tenantID := c.Get("tenant_id").(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid product ID"})
	}

	var req models.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	product, err := h.productRepo.GetByID(tenantID, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "product not found"})
	}

	if req.CategoryID != nil {
		product.CategoryID = req.CategoryID
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.IsAvailable != nil {
		product.IsAvailable = *req.IsAvailable
	}
	if req.AllowsHalfHalf != nil {
		product.AllowsHalfHalf = *req.AllowsHalfHalf
	}
	if req.SortOrder != nil {
		product.SortOrder = *req.SortOrder
	}

	replaceGroups := req.OptionGroups != nil
	if replaceGroups {
		product.OptionGroups = buildOptionGroups(req.OptionGroups)
	}
	product.Category = nil

	if err := h.productRepo.Update(product, replaceGroups); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, product)
}

// Delete godoc
// @Summary Delete product
// @Description Delete a product and its option groups
// @Tags products
// @Param id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /products/{id} [delete]
// @Security BearerAuth
func (h *ProductHandler) Delete(c echo.Context) error {
	tenantID := c.Get("tenant_id").(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid product ID"})
	}

	if err := h.productRepo.Delete(tenantID, id); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.NoContent(http.StatusNoContent)
}

func buildOptionGroups(reqs []models.OptionGroupRequest) []models.OptionGroup {
	groups := make([]models.OptionGroup, 0, len(reqs))
	for i, groupReq := range reqs {
		group := models.OptionGroup{
			Title:      groupReq.Title,
			IsRequired: groupReq.IsRequired,
			MaxSelect:  groupReq.MaxSelect,
			SortOrder:  i,
		}
		if group.MaxSelect < 1 {
			group.MaxSelect = 1
		}
		for j, optReq := range groupReq.Options {
			group.Options = append(group.Options, models.Option{
				Name:      optReq.Name,
				Price:     optReq.Price,
				SortOrder: j,
			})
		}
		groups = append(groups, group)
	}
	return groups
}

// RegisterRoutes registers product routes
func (h *ProductHandler) RegisterRoutes(e *echo.Group) {
	productGroup := e.Group("/products")

	productGroup.GET("", h.List)
	productGroup.GET("/:id", h.GetByID)
	productGroup.POST("", h.Create)
	productGroup.PUT("/:id", h.Update)
	productGroup.DELETE("/:id", h.Delete)
}
