package services

import (
	"errors"
	"regexp"
	"strings"

	"cardapio/internal/auth"
	"cardapio/internal/repo"
	"cardapio/pkg/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var subdomainPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{1,61}[a-z0-9])?$`)

// Provisioning failure modes
var (
	ErrSubdomainTaken   = errors.New("subdomínio já está em uso")
	ErrSubdomainInvalid = errors.New("subdomínio inválido: use letras minúsculas, números e hífens")
)

// ProvisioningService creates and removes store accounts. Super-admin
// only surface.
type ProvisioningService struct {
	db          *gorm.DB
	tenantRepo  *repo.TenantRepository
	authService *auth.Service
}

// NewProvisioningService creates a new provisioning service
func NewProvisioningService(db *gorm.DB, tenantRepo *repo.TenantRepository, authService *auth.Service) *ProvisioningService {
	return &ProvisioningService{
		db:          db,
		tenantRepo:  tenantRepo,
		authService: authService,
	}
}

// CreateTenant provisions a store: the tenant row, its admin user and an
// empty week schedule, all in one transaction
func (s *ProvisioningService) CreateTenant(req models.CreateTenantRequest) (*models.Tenant, error) {
	subdomain := strings.ToLower(strings.TrimSpace(req.Subdomain))
	if !subdomainPattern.MatchString(subdomain) {
		return nil, ErrSubdomainInvalid
	}

	var existing models.Tenant
	err := s.db.Where("subdomain = ?", subdomain).First(&existing).Error
	if err == nil {
		return nil, ErrSubdomainTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := s.authService.HashPassword(req.AdminPassword)
	if err != nil {
		return nil, err
	}

	tenant := models.Tenant{
		Subdomain:  subdomain,
		Name:       req.Name,
		AdminEmail: req.AdminEmail,
		Status:     "active",
		WhatsApp:   req.WhatsApp,
		IsOpen:     true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&tenant).Error; err != nil {
			return err
		}

		admin := models.User{
			TenantID: &tenant.ID,
			Email:    req.AdminEmail,
			Password: hashedPassword,
			Name:     req.Name,
			Role:     "admin",
			IsActive: true,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		// one row per weekday so the schedule editor always has a full week
		for day := 0; day < 7; day++ {
			hour := models.BusinessHour{
				TenantID:  tenant.ID,
				DayOfWeek: day,
			}
			if err := tx.Create(&hour).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("tenant_id", tenant.ID.String()).
		Str("subdomain", subdomain).
		Msg("Tenant provisioned")

	return &tenant, nil
}

// DeleteTenant removes a store account and everything it owns
func (s *ProvisioningService) DeleteTenant(id uuid.UUID) error {
	if _, err := s.tenantRepo.GetByID(id); err != nil {
		return err
	}
	if err := s.tenantRepo.Delete(id); err != nil {
		return err
	}
	log.Info().Str("tenant_id", id.String()).Msg("Tenant deleted")
	return nil
}
