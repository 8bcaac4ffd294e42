package repo

import (
	"cardapio/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantRepository handles store account data access
type TenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// GetByID gets a tenant by ID
func (r *TenantRepository) GetByID(id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := r.db.Where("id = ?", id).First(&tenant).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetBySubdomain gets an active tenant by its subdomain key
func (r *TenantRepository) GetBySubdomain(subdomain string) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := r.db.Where("subdomain = ? AND status = 'active'", subdomain).First(&tenant).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetWithBusinessHours loads a tenant with its full week schedule
func (r *TenantRepository) GetWithBusinessHours(id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.
		Preload("BusinessHours", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_of_week ASC")
		}).
		Preload("BusinessHours.Periods", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("id = ?", id).First(&tenant).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// List gets all tenants ordered by creation
func (r *TenantRepository) List() ([]models.Tenant, error) {
	var tenants []models.Tenant
	if err := r.db.Order("created_at DESC").Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

// Create creates a new tenant
func (r *TenantRepository) Create(tenant *models.Tenant) error {
	return r.db.Create(tenant).Error
}

// Update updates a tenant
func (r *TenantRepository) Update(tenant *models.Tenant) error {
	return r.db.Save(tenant).Error
}

// Delete hard deletes a tenant and everything it owns. Super-admin only.
func (r *TenantRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		owned := []interface{}{
			&models.BusinessHourPeriod{},
			&models.BusinessHour{},
			&models.Option{},
			&models.OptionGroup{},
			&models.Product{},
			&models.Category{},
			&models.DeliveryZone{},
			&models.CartSnapshot{},
			&models.User{},
		}
		for _, model := range owned {
			if err := tx.Unscoped().Where("tenant_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Unscoped().Where("id = ?", id).Delete(&models.Tenant{}).Error
	})
}
