package repo

import (
	"cardapio/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductRepository handles menu product data access
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func withOptionGroups(db *gorm.DB) *gorm.DB {
	return db.
		Preload("OptionGroups", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("OptionGroups.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		})
}

// List gets all products for a tenant with their option groups
func (r *ProductRepository) List(tenantID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := withOptionGroups(r.db).
		Where("tenant_id = ?", tenantID).
		Order("sort_order ASC, name ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// ListAvailable gets the products the storefront can sell
func (r *ProductRepository) ListAvailable(tenantID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := withOptionGroups(r.db).
		Where("tenant_id = ? AND is_available = ?", tenantID, true).
		Order("sort_order ASC, name ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// ListByCategory gets the products of one category
func (r *ProductRepository) ListByCategory(tenantID, categoryID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := withOptionGroups(r.db).
		Where("tenant_id = ? AND category_id = ?", tenantID, categoryID).
		Order("sort_order ASC, name ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID gets a product with its option groups within a tenant
func (r *ProductRepository) GetByID(tenantID, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := withOptionGroups(r.db).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Create creates a product with its option groups in one transaction
func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		groups := product.OptionGroups
		product.OptionGroups = nil
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		return r.createOptionGroups(tx, product, groups)
	})
}

// Update updates a product. When replaceGroups is true the option group
// set is swapped for product.OptionGroups.
func (r *ProductRepository) Update(product *models.Product, replaceGroups bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		groups := product.OptionGroups
		product.OptionGroups = nil
		if err := tx.Save(product).Error; err != nil {
			return err
		}
		if !replaceGroups {
			product.OptionGroups = groups
			return nil
		}

		var groupIDs []uuid.UUID
		err := tx.Model(&models.OptionGroup{}).
			Where("product_id = ?", product.ID).
			Pluck("id", &groupIDs).Error
		if err != nil {
			return err
		}
		if len(groupIDs) > 0 {
			if err := tx.Unscoped().Where("group_id IN ?", groupIDs).Delete(&models.Option{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("product_id = ?", product.ID).Delete(&models.OptionGroup{}).Error; err != nil {
				return err
			}
		}
		return r.createOptionGroups(tx, product, groups)
	})
}

func (r *ProductRepository) createOptionGroups(tx *gorm.DB, product *models.Product, groups []models.OptionGroup) error {
	product.OptionGroups = make([]models.OptionGroup, 0, len(groups))
	for _, group := range groups {
		options := group.Options
		group.Options = nil
		group.TenantID = product.TenantID
		group.ProductID = product.ID
		if err := tx.Create(&group).Error; err != nil {
			return err
		}
		group.Options = make([]models.Option, 0, len(options))
		for _, option := range options {
			option.TenantID = product.TenantID
			option.GroupID = group.ID
			if err := tx.Create(&option).Error; err != nil {
				return err
			}
			group.Options = append(group.Options, option)
		}
		product.OptionGroups = append(product.OptionGroups, group)
	}
	return nil
}

// Delete removes a product and its option groups
func (r *ProductRepository) Delete(tenantID, id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var groupIDs []uuid.UUID
		err := tx.Model(&models.OptionGroup{}).
			Where("tenant_id = ? AND product_id = ?", tenantID, id).
			Pluck("id", &groupIDs).Error
		if err != nil {
			return err
		}
		if len(groupIDs) > 0 {
			if err := tx.Unscoped().Where("group_id IN ?", groupIDs).Delete(&models.Option{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("product_id = ?", id).Delete(&models.OptionGroup{}).Error; err != nil {
				return err
			}
		}
		return tx.Where("tenant_id = ? AND id = ?", tenantID, id).Delete(&models.Product{}).Error
	})
}
