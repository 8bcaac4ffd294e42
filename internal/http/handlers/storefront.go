package handlers

import (
	"net/http"
	"time"

	"cardapio/internal/http/middleware"
	"cardapio/internal/pricing"
	"cardapio/internal/repo"
	"cardapio/internal/services"
	"cardapio/pkg/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// StorefrontHandler serves the public menu: no authentication, tenant
// resolved from the store subdomain
type StorefrontHandler struct {
	categoryRepo *repo.CategoryRepository
	productRepo  *repo.ProductRepository
	zoneRepo     *repo.DeliveryZoneRepository
	availability *services.AvailabilityService
}

// NewStorefrontHandler creates a new storefront handler
func NewStorefrontHandler(categoryRepo *repo.CategoryRepository, productRepo *repo.ProductRepository, zoneRepo *repo.DeliveryZoneRepository, availability *services.AvailabilityService) *StorefrontHandler {
	return &StorefrontHandler{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		zoneRepo:     zoneRepo,
		availability: availability,
	}
}

// StoreInfo is the public projection of a tenant: no admin email, no
// internal flags beyond what the storefront renders
type StoreInfo struct {
	Subdomain        string                `json:"subdomain"`
	Name             string                `json:"name"`
	WhatsApp         string                `json:"whatsapp"`
	Address          string                `json:"address"`
	LogoURL          string                `json:"logo_url"`
	CoverURL         string                `json:"cover_url"`
	MinimumOrder     decimal.Decimal       `json:"minimum_order"`
	TableModeEnabled bool                  `json:"table_mode_enabled"`
	TableCount       int                   `json:"table_count"`
	Status           *services.StoreStatus `json:"status"`
	DeliveryZones    []models.DeliveryZone `json:"delivery_zones"`
}

// GetStore godoc
// @Summary Store info
// @Description Get the public store profile, open status and delivery zones
// @Tags storefront
// @Produce json
// @Success 200 {object} StoreInfo
// @Failure 404 {object} map[string]string
// @Router /store [get]
func (h *StorefrontHandler) GetStore(c echo.Context) error {
	sc := middleware.GetStoreContext(c)

	status, err := h.availability.Resolve(sc.Tenant, time.Now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to resolve store status"})
	}

	zones, err := h.zoneRepo.ListActive(sc.TenantID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch delivery zones"})
	}

	return c.JSON(http.StatusOK, StoreInfo{
		Subdomain:        sc.Tenant.Subdomain,
		Name:             sc.Tenant.Name,
		WhatsApp:         sc.Tenant.WhatsApp,
		Address:          sc.Tenant.Address,
		LogoURL:          sc.Tenant.LogoURL,
		CoverURL:         sc.Tenant.CoverURL,
		MinimumOrder:     sc.Tenant.MinimumOrder,
		TableModeEnabled: sc.Tenant.TableModeEnabled,
		TableCount:       sc.Tenant.TableCount,
		Status:           status,
		DeliveryZones:    zones,
	})
}

// GetStatus godoc
// @Summary Store open status
// @Description Get the effective open state, with the next opening when closed
// @Tags storefront
// @Produce json
// @Success 200 {object} services.StoreStatus
// @Router /store/status [get]
func (h *StorefrontHandler) GetStatus(c echo.Context) error {
	sc := middleware.GetStoreContext(c)

	status, err := h.availability.Resolve(sc.Tenant, time.Now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to resolve store status"})
	}

	return c.JSON(http.StatusOK, status)
}

// MenuSection is one category with its sellable products
type MenuSection struct {
	Category models.Category  `json:"category"`
	Products []models.Product `json:"products"`
}

// GetMenu godoc
// @Summary Store menu
// @Description Get the menu grouped by category. Only available products appear;
// @Description products without a category land in a final unnamed section.
// @Tags storefront
// @Produce json
// @Success 200 {array} MenuSection
// @Router /store/menu [get]
func (h *StorefrontHandler) GetMenu(c echo.Context) error {
	sc := middleware.GetStoreContext(c)

	categories, err := h.categoryRepo.List(sc.TenantID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch categories"})
	}

	products, err := h.productRepo.ListAvailable(sc.TenantID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch products"})
	}

	byCategory := make(map[uuid.UUID][]models.Product)
	var uncategorized []models.Product
	for _, p := range products {
		if p.CategoryID == nil {
			uncategorized = append(uncategorized, p)
			continue
		}
		byCategory[*p.CategoryID] = append(byCategory[*p.CategoryID], p)
	}

	sections := make([]MenuSection, 0, len(categories)+1)
	for _, category := range categories {
		items := byCategory[category.ID]
		if len(items) == 0 {
			continue
		}
		sections = append(sections, MenuSection{Category: category, Products: items})
	}
	if len(uncategorized) > 0 {
		sections = append(sections, MenuSection{
			Category: models.Category{Name: "Outros"},
			Products: uncategorized,
		})
	}

	return c.JSON(http.StatusOK, sections)
}

// ProductDetail is a product plus the flavors it can be combined with
type ProductDetail struct {
	models.Product
	HalfHalfCandidates []models.Product `json:"half_half_candidates,omitempty"`
}

// GetProduct godoc
// @Summary Product detail
// @Description Get a product with option groups and half-and-half candidates.
// @Description Candidates are only listed when at least two flavors exist.
// @Tags storefront
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ProductDetail
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /store/products/{id} [get]
func (h *StorefrontHandler) GetProduct(c echo.Context) error {
	sc := middleware.GetStoreContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid product ID"})
	}

	product, err := h.productRepo.GetByID(sc.TenantID, id)
	if err != nil || !product.IsAvailable {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "product not found"})
	}

	detail := ProductDetail{Product: *product}

	if product.AllowsHalfHalf && product.CategoryID != nil {
		siblings, err := h.productRepo.ListByCategory(sc.TenantID, *product.CategoryID)
		if err == nil {
			candidates := pricing.HalfHalfCandidates(siblings, *product)
			if len(candidates) >= 2 {
				detail.HalfHalfCandidates = candidates
			}
		}
	}

	return c.JSON(http.StatusOK, detail)
}

// RegisterRoutes registers the public storefront routes
func (h *StorefrontHandler) RegisterRoutes(e *echo.Group) {
	e.GET("", h.GetStore)
	e.GET("/status", h.GetStatus)
	e.GET("/menu", h.GetMenu)
	e.GET("/products/:id", h.GetProduct)
}
