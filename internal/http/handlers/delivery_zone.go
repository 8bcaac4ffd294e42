package handlers

import (
	"net/http"

	"cardapio/internal/repo"
	"cardapio/pkg/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type DeliveryZoneHandler struct {
	zoneRepo *repo.DeliveryZoneRepository
}

func NewDeliveryZoneHandler(zoneRepo *repo.DeliveryZoneRepository) *DeliveryZoneHandler {
	return &DeliveryZoneHandler{zoneRepo: zoneRepo}
}

// List godoc
// @Summary List delivery zones
// @Description Get all delivery zones for the store
// @Tags delivery-zones
// @Produce json
// @Success 200 {array} models.DeliveryZone
// @Failure 500 {object} map[string]string
// @Router /delivery-zones [get]
// @Security BearerAuth
func (h *DeliveryZoneHandler) List(c echo.Context) error {
	tenantID := c.Get("tenant_id").(uuid.UUID)

	zones, err := h.zoneRepo.List(tenantID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch delivery zones"})
	}

	return c.JSON(http.StatusOK, zones)
}

// Create godoc
// @Summary Create delivery zone
// @Description Create a delivery zone with its flat fee
// @Tags delivery-zones
// @Accept json
// @Produce json
// @Param zone body models.CreateDeliveryZoneRequest true "Zone data"
// @Success 201 {object} models.DeliveryZone
// @Failure 400 {object} map[string]string
// @Router /delivery-zones [post]
// @Security BearerAuth
func (h *DeliveryZoneHandler) Create(c echo.Context) error {
	tenantID := c.Get("tenant_id").(uuid.UUID)

	var req models.CreateDeliveryZoneRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	zone := models.DeliveryZone{
		BaseTenantModel: models.BaseTenantModel{TenantID: tenantID},
		Name:            req.Name,
		Price:           req.Price,
		IsActive:        isActive,
	}
	if err := h.zoneRepo.Create(&zone); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, zone)
}

// Update godoc
// @Summary Update delivery zone
// @Description Update a delivery zone
// @Tags delivery-zones
// @Accept json
// @Produce json
// @Param id path string true "Zone ID"
// @Param zone body models.UpdateDeliveryZoneRequest true "Zone data"
// @Success 200 {object} models.DeliveryZone
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /delivery-zones/{id} [put]
// @Security BearerAuth
func (h *DeliveryZoneHandler) Update(c echo.Context) error {
	tenantID := c.Get("tenant_id").(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid zone ID"})
	}

	var req models.UpdateDeliveryZoneRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	zone, err := h.zoneRepo.GetByID(tenantID, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "zone not found"})
	}

	if req.Name != nil {
		zone.Name = *req.Name
	}
	if req.Price != nil {
		zone.Price = *req.Price
	}
	if req.IsActive != nil {
		zone.IsActive = *req.IsActive
	}

	if err := h.zoneRepo.Update(zone); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, zone)
}

// Delete godoc
// @Summary Delete delivery zone
// @Description Delete a delivery zone
// @Tags delivery-zones
// @Param id path string true "Zone ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /delivery-zones/{id} [delete]
// @Security BearerAuth
func (h *DeliveryZoneHandler) Delete(c echo.Context) error {
	tenantID := c.Get("tenant_id").(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid zone ID"})
	}

	if err := h.zoneRepo.Delete(tenantID, id); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.NoContent(http.StatusNoContent)
}

// RegisterRoutes registers delivery zone routes
func (h *DeliveryZoneHandler) RegisterRoutes(e *echo.Group) {
	zoneGroup := e.Group("/delivery-zones")

	zoneGroup.GET("", h.List)
	zoneGroup.POST("", h.Create)
	zoneGroup.PUT("/:id", h.Update)
	zoneGroup.DELETE("/:id", h.Delete)
}
