package handlers

import (
	"cardapio/internal/app"
	"cardapio/internal/http/middleware"

	"github.com/labstack/echo/v4"
)

// SetupRoutes sets up all API routes
func SetupRoutes(api *echo.Group, services *app.Services) {
	// Auth routes (no authentication required)
	authHandler := NewAuthHandler(services.AuthService)
	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)

	// Protected routes (require authentication)
	protected := api.Group("")
	protected.Use(middleware.JWTAuth(services.AuthService))

	profileAuth := protected.Group("/auth")
	profileAuth.GET("/me", authHandler.Me)
	profileAuth.PUT("/change-password", authHandler.ChangePassword)

	// Super admin routes (platform operator, no tenant context)
	admin := protected.Group("/admin")
	admin.Use(middleware.SuperAdminOnly())
	tenantHandler := NewTenantHandler(services.TenantRepo, services.ProvisioningService)
	tenantHandler.RegisterRoutes(admin)

	// Store admin routes (tenant context from the JWT)
	storeAdmin := protected.Group("")
	storeAdmin.Use(middleware.StoreAdminOnly())

	NewStoreConfigHandler(services.TenantRepo, services.BusinessHoursRepo, services.StorageService).RegisterRoutes(storeAdmin)
	NewCategoryHandler(services.CategoryRepo).RegisterRoutes(storeAdmin)
	NewProductHandler(services.ProductRepo).RegisterRoutes(storeAdmin)
	NewDeliveryZoneHandler(services.DeliveryZoneRepo).RegisterRoutes(storeAdmin)

	// Public storefront routes (tenant from subdomain, cart from cookie)
	store := api.Group("/store")
	store.Use(middleware.StoreResolver(services.TenantRepo))
	store.Use(middleware.CartSession())

	NewStorefrontHandler(services.CategoryRepo, services.ProductRepo, services.DeliveryZoneRepo, services.AvailabilityService).RegisterRoutes(store)
	NewCartHandler(services.CartService, services.CheckoutService, services.ProductRepo, services.DeliveryZoneRepo).RegisterRoutes(store)

	// Health check
	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
}
