package repo

import (
	"cardapio/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeliveryZoneRepository handles delivery zone data access
type DeliveryZoneRepository struct {
	db *gorm.DB
}

// NewDeliveryZoneRepository creates a new delivery zone repository
func NewDeliveryZoneRepository(db *gorm.DB) *DeliveryZoneRepository {
	return &DeliveryZoneRepository{db: db}
}

// List gets all zones for a tenant
func (r *DeliveryZoneRepository) List(tenantID uuid.UUID) ([]models.DeliveryZone, error) {
	var zones []models.DeliveryZone
	err := r.db.Where("tenant_id = ?", tenantID).
		Order("name ASC").
		Find(&zones).Error
	if err != nil {
		return nil, err
	}
	return zones, nil
}

// ListActive gets the zones the storefront can offer at checkout
func (r *DeliveryZoneRepository) ListActive(tenantID uuid.UUID) ([]models.DeliveryZone, error) {
	var zones []models.DeliveryZone
	err := r.db.Where("tenant_id = ? AND is_active = ?", tenantID, true).
		Order("name ASC").
		Find(&zones).Error
	if err != nil {
		return nil, err
	}
	return zones, nil
}

// GetByID gets a zone by ID within a tenant
func (r *DeliveryZoneRepository) GetByID(tenantID, id uuid.UUID) (*models.DeliveryZone, error) {
	var zone models.DeliveryZone
	if err := r.db.Where("tenant_id = ? AND id = ?", tenantID, id).First(&zone).Error; err != nil {
		return nil, err
	}
	return &zone, nil
}

// Create creates a new zone
func (r *DeliveryZoneRepository) Create(zone *models.DeliveryZone) error {
	return r.db.Create(zone).Error
}

// Update updates a zone
func (r *DeliveryZoneRepository) Update(zone *models.DeliveryZone) error {
	return r.db.Save(zone).Error
}

// Delete removes a zone
func (r *DeliveryZoneRepository) Delete(tenantID, id uuid.UUID) error {
	return r.db.Where("tenant_id = ? AND id = ?", tenantID, id).Delete(&models.DeliveryZone{}).Error
}
