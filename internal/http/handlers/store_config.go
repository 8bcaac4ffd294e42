package handlers

import (
	"net/http"

	"cardapio/internal/repo"
	"cardapio/internal/services"
	"cardapio/pkg/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// StoreConfigHandler exposes the store settings the admin panel edits
type StoreConfigHandler struct {
	tenantRepo     *repo.TenantRepository
	hoursRepo      *repo.BusinessHoursRepository
	storageService *services.StorageService
}

// NewStoreConfigHandler creates a new store config handler
func NewStoreConfigHandler(tenantRepo *repo.TenantRepository, hoursRepo *repo.BusinessHoursRepository, storageService *services.StorageService) *StoreConfigHandler {
	return &StoreConfigHandler{
		tenantRepo:     tenantRepo,
		hoursRepo:      hoursRepo,
		storageService: storageService,
	}
}

// GetConfig godoc
// @Summary Get store config
// @Description Get the authenticated store's settings
// @Tags store-config
// @Produce json
// @Success 200 {object} models.Tenant
// @Failure 404 {object} map[string]string
// @Router /store-config [get]
// @Security BearerAuth
func (h *StoreConfigHandler) GetConfig(c echo.Context) error {
	tenantID := c.Get("tenant_id").(uuid.UUID)

	tenant, err := h.tenantRepo.GetByID(tenantID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "store not found"})
	}

	return c.JSON(http.StatusOK, tenant)
}

// UpdateConfig godoc
// @Summary Update store config
// @Description Update the store's settings; only sent fields change
// @Tags store-config
// @Accept json
// @Produce json
// @Param config body models.UpdateStoreConfigRequest true "Store settings"
// @Success 200 {object} models.Tenant
// @Failure 400 {object} map[string]string
// @Router /store-config [put]
// @Security BearerAuth
func (h *StoreConfigHandler) UpdateConfig(c echo.Context) error {
	tenantID := c.Get("tenant_id").(uuid.UUID)

	var req models.UpdateStoreConfigRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	tenant, err := h.tenantRepo.GetByID(tenantID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "store not found"})
	}

	if req.Name != nil {
		tenant.Name = *req.Name
	}
	if req.WhatsApp != nil {
		tenant.WhatsApp = *req.WhatsApp
	}
	if req.Address != nil {
		tenant.Address = *req.Address
	}
	if req.LogoURL != nil {
		tenant.LogoURL = *req.LogoURL
	}
	if req.CoverURL != nil {
		tenant.CoverURL = *req.CoverURL
	}
	if req.IsOpen != nil {
		tenant.IsOpen = *req.IsOpen
	}
	if req.AutoScheduleEnabled != nil {
		tenant.AutoScheduleEnabled = *req.AutoScheduleEnabled
	}
	if req.MinimumOrder != nil {
		tenant.MinimumOrder = *req.MinimumOrder
	}
	if req.PixKey != nil {
		tenant.PixKey = *req.PixKey
	}
	if req.PixKeyType != nil {
		tenant.PixKeyType = *req.PixKeyType
	}
	if req.TableModeEnabled != nil {
		tenant.TableModeEnabled = *req.TableModeEnabled
	}
	if req.TableCount != nil {
		tenant.TableCount = *req.TableCount
	}

	if err := h.tenantRepo.Update(tenant); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, tenant)
}

// ListBusinessHours godoc
// @Summary List business hours
// @Description Get the full week schedule
// @Tags store-config
// @Produce json
// @Success 200 {array} models.BusinessHour
// @Failure 500 {object} map[string]string
// @Router /store-config/business-hours [get]
// @Security BearerAuth
func (h *StoreConfigHandler) ListBusinessHours(c echo.Context) error {
	tenantID := c.Get("tenant_id").(uuid.UUID)

	hours, err := h.hoursRepo.ListByTenant(tenantID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch business hours"})
	}

	return c.JSON(http.StatusOK, hours)
}

// UpdateDaySchedule godoc
// @Summary Replace a day's schedule
// @Description Replace the open flag and periods of one weekday
// @Tags store-config
// @Accept json
// @Produce json
// @Param schedule body models.DayScheduleRequest true "Day schedule"
// @Success 200 {object} models.BusinessHour
// @Failure 400 {object} map[string]string
// @Router /store-config/business-hours [put]
// @Security BearerAuth
func (h *StoreConfigHandler) UpdateDaySchedule(c echo.Context) error {
	tenantID := c.Get("tenant_id").(uuid.UUID)

	var req models.DayScheduleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	for _, period := range req.Periods {
		if period.OpenTime >= period.CloseTime {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "horário de abertura deve ser antes do fechamento",
			})
		}
	}

	hour, err := h.hoursRepo.ReplaceDaySchedule(tenantID, req.DayOfWeek, req.IsOpen, req.Periods)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, hour)
}

// UploadImage godoc
// @Summary Upload store image
// @Description Upload a logo, cover or product image and get its public URL
// @Tags store-config
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Param folder formData string false "Target folder: logo, cover or products"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /store-config/upload [post]
// @Security BearerAuth
func (h *StoreConfigHandler) UploadImage(c echo.Context) error {
	tenantID := c.Get("tenant_id").(uuid.UUID)

	if h.storageService == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "image storage not configured"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing file"})
	}

	folder := c.FormValue("folder")
	switch folder {
	case "logo", "cover", "products":
	default:
		folder = "products"
	}

	url, err := h.storageService.UploadImage(fileHeader, tenantID.String(), folder)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]string{"url": url})
}

// RegisterRoutes registers store config routes
func (h *StoreConfigHandler) RegisterRoutes(e *echo.Group) {
	configGroup := e.Group("/store-config")

	configGroup.GET("", h.GetConfig)
	configGroup.PUT("", h.UpdateConfig)
	configGroup.GET("/business-hours", h.ListBusinessHours)
	configGroup.PUT("/business-hours", h.UpdateDaySchedule)
	configGroup.POST("/upload", h.UploadImage)
}
