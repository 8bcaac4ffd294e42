package repo

import (
	"encoding/json"
	"errors"

	"cardapio/internal/cart"
	"cardapio/pkg/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CartSnapshotRepository persists session carts as JSON rows
type CartSnapshotRepository struct {
	db *gorm.DB
}

// NewCartSnapshotRepository creates a new cart snapshot repository
func NewCartSnapshotRepository(db *gorm.DB) *CartSnapshotRepository {
	return &CartSnapshotRepository{db: db}
}

// ForTenant binds the repository to one tenant, satisfying cart.SnapshotStore
func (r *CartSnapshotRepository) ForTenant(tenantID uuid.UUID) cart.SnapshotStore {
	return &tenantSnapshots{db: r.db, tenantID: tenantID}
}

type tenantSnapshots struct {
	db       *gorm.DB
	tenantID uuid.UUID
}

// Load restores a persisted cart, or returns nil when the session has none
func (s *tenantSnapshots) Load(sessionKey string) (*cart.State, error) {
	var snapshot models.CartSnapshot
	err := s.db.Where("tenant_id = ? AND session_key = ?", s.tenantID, sessionKey).
		First(&snapshot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var state cart.State
	if err := json.Unmarshal(snapshot.Payload, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Save upserts the serialized cart for the session
func (s *tenantSnapshots) Save(sessionKey string, state *cart.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}

	var snapshot models.CartSnapshot
	err = s.db.Where("tenant_id = ? AND session_key = ?", s.tenantID, sessionKey).
		First(&snapshot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		snapshot = models.CartSnapshot{
			BaseTenantModel: models.BaseTenantModel{TenantID: s.tenantID},
			SessionKey:      sessionKey,
			Payload:         datatypes.JSON(payload),
		}
		return s.db.Create(&snapshot).Error
	}
	if err != nil {
		return err
	}

	snapshot.Payload = datatypes.JSON(payload)
	return s.db.Save(&snapshot).Error
}

// Delete drops the persisted cart after a successful checkout
func (s *tenantSnapshots) Delete(sessionKey string) error {
	return s.db.Unscoped().
		Where("tenant_id = ? AND session_key = ?", s.tenantID, sessionKey).
		Delete(&models.CartSnapshot{}).Error
}
