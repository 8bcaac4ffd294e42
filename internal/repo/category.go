package repo

import (
	"cardapio/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryRepository handles category data access
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List gets all categories for a tenant ordered for display
func (r *CategoryRepository) List(tenantID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("tenant_id = ?", tenantID).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID gets a category by ID within a tenant
func (r *CategoryRepository) GetByID(tenantID, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("tenant_id = ? AND id = ?", tenantID, id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Create creates a new category
func (r *CategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// Update updates a category
func (r *CategoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete removes a category. Products keep existing with a null category.
func (r *CategoryRepository) Delete(tenantID, id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Product{}).
			Where("tenant_id = ? AND category_id = ?", tenantID, id).
			Update("category_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Where("tenant_id = ? AND id = ?", tenantID, id).Delete(&models.Category{}).Error
	})
}
