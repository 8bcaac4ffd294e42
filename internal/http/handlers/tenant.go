package handlers

import (
	"errors"
	"net/http"

	"cardapio/internal/repo"
	"cardapio/internal/services"
	"cardapio/pkg/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TenantHandler is the super-admin surface for store accounts
type TenantHandler struct {
	tenantRepo   *repo.TenantRepository
	provisioning *services.ProvisioningService
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenantRepo *repo.TenantRepository, provisioning *services.ProvisioningService) *TenantHandler {
	return &TenantHandler{
		tenantRepo:   tenantRepo,
		provisioning: provisioning,
	}
}

// List godoc
// @Summary List tenants
// @Description Get all store accounts
// @Tags tenants
// @Produce json
// @Success 200 {array} models.Tenant
// @Failure 500 {object} map[string]string
// @Router /tenants [get]
// @Security BearerAuth
func (h *TenantHandler) List(c echo.Context) error {
	tenants, err := h.tenantRepo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch tenants"})
	}

	return c.JSON(http.StatusOK, tenants)
}

// GetByID godoc
// @Summary Get tenant by ID
// @Description Get one store account
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} models.Tenant
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tenants/{id} [get]
// @Security BearerAuth
func (h *TenantHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid tenant ID"})
	}

	tenant, err := h.tenantRepo.GetByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "tenant not found"})
	}

	return c.JSON(http.StatusOK, tenant)
}

// Create godoc
// @Summary Provision tenant
// @Description Create a store account with its admin user and empty schedule
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body models.CreateTenantRequest true "Tenant data"
// @Success 201 {object} models.Tenant
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /tenants [post]
// @Security BearerAuth
func (h *TenantHandler) Create(c echo.Context) error {
	var req models.CreateTenantRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	tenant, err := h.provisioning.CreateTenant(req)
	if err != nil {
		if errors.Is(err, services.ErrSubdomainTaken) {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, tenant)
}

// UpdateStatus godoc
// @Summary Update tenant status
// @Description Activate or suspend a store account
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID"
// @Param request body map[string]string true "New status"
// @Success 200 {object} models.Tenant
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tenants/{id}/status [put]
// @Security BearerAuth
func (h *TenantHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid tenant ID"})
	}

	var req struct {
		Status string `json:"status" validate:"required,oneof=active suspended"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	tenant, err := h.tenantRepo.GetByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "tenant not found"})
	}

	tenant.Status = req.Status
	if err := h.tenantRepo.Update(tenant); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, tenant)
}

// Delete godoc
// @Summary Delete tenant
// @Description Remove a store account and everything it owns
// @Tags tenants
// @Param id path string true "Tenant ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tenants/{id} [delete]
// @Security BearerAuth
func (h *TenantHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid tenant ID"})
	}

	if err := h.provisioning.DeleteTenant(id); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "tenant not found"})
	}

	return c.NoContent(http.StatusNoContent)
}

// RegisterRoutes registers tenant routes
func (h *TenantHandler) RegisterRoutes(e *echo.Group) {
	tenantGroup := e.Group("/tenants")

	tenantGroup.GET("", h.List)
	tenantGroup.GET("/:id", h.GetByID)
	tenantGroup.POST("", h.Create)
	tenantGroup.PUT("/:id/status", h.UpdateStatus)
	tenantGroup.DELETE("/:id", h.Delete)
}
