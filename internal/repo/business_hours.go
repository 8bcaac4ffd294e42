package repo

import (
	"cardapio/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessHoursRepository handles weekly schedule data access
type BusinessHoursRepository struct {
	db *gorm.DB
}

// NewBusinessHoursRepository creates a new business hours repository
func NewBusinessHoursRepository(db *gorm.DB) *BusinessHoursRepository {
	return &BusinessHoursRepository{db: db}
}

// ListByTenant gets the full week schedule ordered by day, periods sorted
func (r *BusinessHoursRepository) ListByTenant(tenantID uuid.UUID) ([]models.BusinessHour, error) {
	var hours []models.BusinessHour
	err := r.db.
		Preload("Periods", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("tenant_id = ?", tenantID).
		Order("day_of_week ASC").
		Find(&hours).Error
	if err != nil {
		return nil, err
	}
	return hours, nil
}

// ReplaceDaySchedule swaps the schedule of one weekday for the given
// periods in a single transaction
func (r *BusinessHoursRepository) ReplaceDaySchedule(tenantID uuid.UUID, day int, isOpen bool, periods []models.PeriodRequest) (*models.BusinessHour, error) {
	var result models.BusinessHour

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var hour models.BusinessHour
		err := tx.Where("tenant_id = ? AND day_of_week = ?", tenantID, day).First(&hour).Error
		if err == gorm.ErrRecordNotFound {
			hour = models.BusinessHour{
				TenantID:  tenantID,
				DayOfWeek: day,
			}
			if err := tx.Create(&hour).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		hour.IsOpen = isOpen
		if err := tx.Save(&hour).Error; err != nil {
			return err
		}

		if err := tx.Unscoped().Where("business_hour_id = ?", hour.ID).Delete(&models.BusinessHourPeriod{}).Error; err != nil {
			return err
		}

		hour.Periods = make([]models.BusinessHourPeriod, 0, len(periods))
		for i, p := range periods {
			period := models.BusinessHourPeriod{
				BaseTenantModel: models.BaseTenantModel{TenantID: tenantID},
				BusinessHourID:  hour.ID,
				OpenTime:        p.OpenTime,
				CloseTime:       p.CloseTime,
				SortOrder:       i,
			}
			if err := tx.Create(&period).Error; err != nil {
				return err
			}
			hour.Periods = append(hour.Periods, period)
		}

		result = hour
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
