package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category represents a product category
type Category struct {
	BaseTenantModel
	Name      string `gorm:"not null" json:"name" validate:"required"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
}

// Product represents a product in the menu
type Product struct {
	BaseTenantModel
	CategoryID     *uuid.UUID      `gorm:"type:uuid;index;constraint:OnDelete:SET NULL" json:"category_id"`
	Name           string          `gorm:"not null" json:"name" validate:"required"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	ImageURL       string          `json:"image_url"`
	IsAvailable    bool            `gorm:"default:true" json:"is_available"`
	AllowsHalfHalf bool            `gorm:"default:false" json:"allows_half_half"`
	SortOrder      int             `gorm:"default:0" json:"sort_order"`

	// Relations
	Category     *Category     `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	OptionGroups []OptionGroup `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"option_groups,omitempty"`
}

// OptionGroup is a named set of selectable add-ons attached to a product
type OptionGroup struct {
	BaseTenantModel
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Title      string    `gorm:"not null" json:"title" validate:"required"`
	IsRequired bool      `gorm:"default:false" json:"is_required"`
	MaxSelect  int       `gorm:"default:1" json:"max_select" validate:"min=1"`
	SortOrder  int       `gorm:"default:0" json:"sort_order"`

	Options []Option `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
}

// Option is one selectable add-on with a flat per-unit surcharge
type Option struct {
	BaseTenantModel
	GroupID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"group_id"`
	Name      string          `gorm:"not null" json:"name" validate:"required"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"price"`
	SortOrder int             `gorm:"default:0" json:"sort_order"`
}

// CreateCategoryRequest creates a new category
type CreateCategoryRequest struct {
	Name      string `json:"name" validate:"required"`
	SortOrder int    `json:"sort_order"`
}

// UpdateCategoryRequest updates an existing category
type UpdateCategoryRequest struct {
	Name      *string `json:"name"`
	SortOrder *int    `json:"sort_order"`
}

// OptionGroupRequest is one option group within a product write
type OptionGroupRequest struct {
	Title      string          `json:"title" validate:"required"`
	IsRequired bool            `json:"is_required"`
	MaxSelect  int             `json:"max_select" validate:"min=1"`
	SortOrder  int             `json:"sort_order"`
	Options    []OptionRequest `json:"options" validate:"dive"`
}

// OptionRequest is one option within a product write
type OptionRequest struct {
	Name      string          `json:"name" validate:"required"`
	Price     decimal.Decimal `json:"price"`
	SortOrder int             `json:"sort_order"`
}

// CreateProductRequest creates a new product with its option groups
type CreateProductRequest struct {
	CategoryID     *uuid.UUID           `json:"category_id"`
	Name           string               `json:"name" validate:"required"`
	Description    string               `json:"description"`
	Price          decimal.Decimal      `json:"price"`
	ImageURL       string               `json:"image_url"`
	IsAvailable    *bool                `json:"is_available"`
	AllowsHalfHalf bool                 `json:"allows_half_half"`
	SortOrder      int                  `json:"sort_order"`
	OptionGroups   []OptionGroupRequest `json:"option_groups" validate:"dive"`
}

// UpdateProductRequest updates an existing product.
// When OptionGroups is non-nil the whole set is replaced.
type UpdateProductRequest struct {
	CategoryID     *uuid.UUID           `json:"category_id"`
	Name           *string              `json:"name"`
	Description    *string              `json:"description"`
	Price          *decimal.Decimal     `json:"price"`
	ImageURL       *string              `json:"image_url"`
	IsAvailable    *bool                `json:"is_available"`
	AllowsHalfHalf *bool                `json:"allows_half_half"`
	SortOrder      *int                 `json:"sort_order"`
	OptionGroups   []OptionGroupRequest `json:"option_groups"`
}
