package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Tenant represents one store account, isolated by subdomain
type Tenant struct {
	BaseModel
	Subdomain  string `gorm:"unique;not null" json:"subdomain" validate:"required"`
	Name       string `gorm:"not null" json:"name" validate:"required"`
	AdminEmail string `gorm:"not null" json:"admin_email" validate:"required,email"`
	Status     string `gorm:"default:'active'" json:"status"`

	// Contact and display
	WhatsApp string `json:"whatsapp"` // digits only, checkout destination
	Address  string `json:"address"`
	LogoURL  string `json:"logo_url"`
	CoverURL string `json:"cover_url"`

	// Availability flags
	IsOpen              bool `gorm:"default:true" json:"is_open"` // manual toggle
	AutoScheduleEnabled bool `gorm:"default:false" json:"auto_schedule_enabled"`

	// Commerce settings
	MinimumOrder decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"minimum_order"`
	PixKey       string          `json:"pix_key"`
	PixKeyType   string          `json:"pix_key_type"` // cpf, cnpj, email, phone, random

	// Table service
	TableModeEnabled bool `gorm:"default:false" json:"table_mode_enabled"`
	TableCount       int  `gorm:"default:0" json:"table_count"`

	// Relations
	BusinessHours []BusinessHour `gorm:"foreignKey:TenantID" json:"business_hours,omitempty"`
}

// BusinessHour holds the schedule for one day of the week (0=Sunday..6=Saturday).
// TenantID is declared here instead of via BaseTenantModel so it joins the
// composite unique index: one row per tenant per day.
type BusinessHour struct {
	BaseModel
	TenantID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uni_business_hours_tenant_day;constraint:OnDelete:CASCADE" json:"tenant_id"`
	DayOfWeek int       `gorm:"not null;uniqueIndex:uni_business_hours_tenant_day" json:"day_of_week" validate:"min=0,max=6"`
	IsOpen    bool      `gorm:"default:false" json:"is_open"`

	Periods []BusinessHourPeriod `gorm:"foreignKey:BusinessHourID;constraint:OnDelete:CASCADE" json:"periods"`
}

// BusinessHourPeriod is one open/close window within a day.
// Times are wall-clock strings, "HH:MM" or "HH:MM:SS".
type BusinessHourPeriod struct {
	BaseTenantModel
	BusinessHourID uuid.UUID `gorm:"type:uuid;not null;index" json:"business_hour_id"`
	OpenTime       string    `gorm:"not null" json:"open_time" validate:"required"`
	CloseTime      string    `gorm:"not null" json:"close_time" validate:"required"`
	SortOrder      int       `gorm:"default:0" json:"sort_order"`
}

// DeliveryZone is a flat delivery fee for a named neighborhood
type DeliveryZone struct {
	BaseTenantModel
	Name     string          `gorm:"not null" json:"name" validate:"required"`
	Price    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	IsActive bool            `gorm:"default:true" json:"is_active"`
}

// CartSnapshot persists a storefront session cart between visits.
// Payload is the serialized cart state; carts have no expiry.
type CartSnapshot struct {
	BaseTenantModel
	SessionKey string         `gorm:"uniqueIndex;not null" json:"session_key"`
	Payload    datatypes.JSON `gorm:"type:jsonb" json:"payload"`
}

// UpdateStoreConfigRequest carries the editable store settings
type UpdateStoreConfigRequest struct {
	Name                *string          `json:"name"`
	WhatsApp            *string          `json:"whatsapp"`
	Address             *string          `json:"address"`
	LogoURL             *string          `json:"logo_url"`
	CoverURL            *string          `json:"cover_url"`
	IsOpen              *bool            `json:"is_open"`
	AutoScheduleEnabled *bool            `json:"auto_schedule_enabled"`
	MinimumOrder        *decimal.Decimal `json:"minimum_order"`
	PixKey              *string          `json:"pix_key"`
	PixKeyType          *string          `json:"pix_key_type"`
	TableModeEnabled    *bool            `json:"table_mode_enabled"`
	TableCount          *int             `json:"table_count"`
}

// DayScheduleRequest replaces the whole schedule of one weekday
type DayScheduleRequest struct {
	DayOfWeek int  `json:"day_of_week" validate:"min=0,max=6"`
	IsOpen    bool `json:"is_open"`
	Periods   []PeriodRequest `json:"periods" validate:"dive"`
}

// PeriodRequest is one open/close window in a schedule update
type PeriodRequest struct {
	OpenTime  string `json:"open_time" validate:"required"`
	CloseTime string `json:"close_time" validate:"required"`
	SortOrder int    `json:"sort_order"`
}

// CreateDeliveryZoneRequest creates a new delivery zone
type CreateDeliveryZoneRequest struct {
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	IsActive *bool           `json:"is_active"`
}

// UpdateDeliveryZoneRequest updates an existing delivery zone
type UpdateDeliveryZoneRequest struct {
	Name     *string          `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	IsActive *bool            `json:"is_active"`
}

// CreateTenantRequest provisions a new store with its admin user
type CreateTenantRequest struct {
	Subdomain     string `json:"subdomain" validate:"required"`
	Name          string `json:"name" validate:"required"`
	AdminEmail    string `json:"admin_email" validate:"required,email"`
	AdminPassword string `json:"admin_password" validate:"required,min=6"`
	WhatsApp      string `json:"whatsapp"`
}
