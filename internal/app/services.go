package app

import (
	"cardapio/internal/auth"
	"cardapio/internal/repo"
	"cardapio/internal/services"
	"cardapio/internal/whatsapp"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Services holds all application services
type Services struct {
	DB                  *gorm.DB
	AuthService         *auth.Service
	UserRepo            *repo.UserRepository
	TenantRepo          *repo.TenantRepository
	BusinessHoursRepo   *repo.BusinessHoursRepository
	CategoryRepo        *repo.CategoryRepository
	ProductRepo         *repo.ProductRepository
	DeliveryZoneRepo    *repo.DeliveryZoneRepository
	CartSnapshotRepo    *repo.CartSnapshotRepository
	AvailabilityService *services.AvailabilityService
	CartService         *services.CartService
	CheckoutService     *services.CheckoutService
	ProvisioningService *services.ProvisioningService
	StorageService      *services.StorageService
	Dispatcher          whatsapp.Dispatcher
}

// NewServices creates a new services container
func NewServices(db *gorm.DB) *Services {
	userRepo := repo.NewUserRepository(db)
	tenantRepo := repo.NewTenantRepository(db)
	businessHoursRepo := repo.NewBusinessHoursRepository(db)
	categoryRepo := repo.NewCategoryRepository(db)
	productRepo := repo.NewProductRepository(db)
	deliveryZoneRepo := repo.NewDeliveryZoneRepository(db)
	cartSnapshotRepo := repo.NewCartSnapshotRepository(db)

	authService := auth.NewService(userRepo)
	availabilityService := services.NewAvailabilityService(businessHoursRepo)
	cartService := services.NewCartService(cartSnapshotRepo)
	dispatcher := whatsapp.NewLinkDispatcher()
	checkoutService := services.NewCheckoutService(availabilityService, cartService, dispatcher)
	provisioningService := services.NewProvisioningService(db, tenantRepo, authService)

	// Image storage is optional: stores can run text-only menus
	storageService, err := services.NewStorageService()
	if err != nil {
		log.Warn().Err(err).Msg("Storage service disabled")
	}

	return &Services{
		DB:                  db,
		AuthService:         authService,
		UserRepo:            userRepo,
		TenantRepo:          tenantRepo,
		BusinessHoursRepo:   businessHoursRepo,
		CategoryRepo:        categoryRepo,
		ProductRepo:         productRepo,
		DeliveryZoneRepo:    deliveryZoneRepo,
		CartSnapshotRepo:    cartSnapshotRepo,
		AvailabilityService: availabilityService,
		CartService:         cartService,
		CheckoutService:     checkoutService,
		ProvisioningService: provisioningService,
		StorageService:      storageService,
		Dispatcher:          dispatcher,
	}
}
