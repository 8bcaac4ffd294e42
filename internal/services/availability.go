package services

import (
	"time"

	"cardapio/internal/schedule"
	"cardapio/pkg/models"

	"github.com/google/uuid"
)

// StoreStatus is the availability block the storefront renders in its
// header and uses to gate checkout
type StoreStatus struct {
	IsOpen      bool   `json:"is_open"`
	NextOpening string `json:"next_opening,omitempty"`
}

// HoursSource lists a tenant's weekly schedule
type HoursSource interface {
	ListByTenant(tenantID uuid.UUID) ([]models.BusinessHour, error)
}

// AvailabilityService resolves whether a store accepts orders right now
type AvailabilityService struct {
	hours HoursSource
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(hours HoursSource) *AvailabilityService {
	return &AvailabilityService{hours: hours}
}

func (s *AvailabilityService) listHours(tenantID uuid.UUID) ([]models.BusinessHour, error) {
	if s.hours == nil {
		return nil, nil
	}
	return s.hours.ListByTenant(tenantID)
}

// Resolve evaluates the tenant's effective open state at the given
// instant. The next opening label is computed from the schedule whenever
// the store is closed, the manual toggle included, so the banner can
// always tell the customer when to come back.
func (s *AvailabilityService) Resolve(tenant *models.Tenant, now time.Time) (*StoreStatus, error) {
	open, err := s.IsEffectivelyOpen(tenant, now)
	if err != nil {
		return nil, err
	}

	status := &StoreStatus{IsOpen: open}
	if open {
		return status, nil
	}

	hours, err := s.listHours(tenant.ID)
	if err != nil {
		return nil, err
	}
	status.NextOpening = schedule.NextOpeningTime(hours, now)
	return status, nil
}

// IsEffectivelyOpen is the checkout gate: a single boolean without the
// display label
func (s *AvailabilityService) IsEffectivelyOpen(tenant *models.Tenant, now time.Time) (bool, error) {
	if !tenant.AutoScheduleEnabled {
		return tenant.IsOpen, nil
	}
	hours, err := s.listHours(tenant.ID)
	if err != nil {
		return false, err
	}
	return schedule.IsOpenNow(hours, now), nil
}
