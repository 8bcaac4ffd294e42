package models

import (
	"github.com/google/uuid"
)

// User represents a store admin or the platform super admin
type User struct {
	BaseModel
	TenantID *uuid.UUID `gorm:"type:uuid;index;constraint:OnDelete:CASCADE" json:"tenant_id,omitempty"` // null for super admins
	Email    string     `gorm:"unique;not null" json:"email" validate:"required,email"`
	Password string     `gorm:"not null" json:"-"`
	Name     string     `json:"name"`
	Role     string     `gorm:"not null" json:"role"` // admin or super_admin
	IsActive bool       `gorm:"default:true" json:"is_active"`
}

// ChangePasswordRequest represents a request to change user password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}
