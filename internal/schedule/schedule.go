// Package schedule decides whether a store is open right now and when it
// opens next, from the per-weekday period lists configured by the store
// owner. All evaluation happens on the Brasília wall clock.
package schedule

import (
	"fmt"
	"sort"
	"time"

	"cardapio/pkg/models"
)

// Timezone is the fixed wall clock for every store
const Timezone = "America/Sao_Paulo"

var weekdays = [7]string{
	"Domingo",
	"Segunda-feira",
	"Terça-feira",
	"Quarta-feira",
	"Quinta-feira",
	"Sexta-feira",
	"Sábado",
}

var location = loadLocation()

func loadLocation() *time.Location {
	loc, err := time.LoadLocation(Timezone)
	if err != nil {
		// Brasília has not observed DST since 2019
		return time.FixedZone("-03", -3*60*60)
	}
	return loc
}

// wallClock converts an instant to the local day of week (0=Sunday) and
// a zero-padded "HH:MM" string.
func wallClock(now time.Time) (int, string) {
	local := now.In(location)
	return int(local.Weekday()), fmt.Sprintf("%02d:%02d", local.Hour(), local.Minute())
}

// clip truncates "HH:MM:SS" to "HH:MM". Times are assumed well formed
// from the schedule admin; shorter strings pass through untouched.
func clip(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}

func hourForDay(hours []models.BusinessHour, day int) *models.BusinessHour {
	for i := range hours {
		if hours[i].DayOfWeek == day {
			return &hours[i]
		}
	}
	return nil
}

// IsOpenNow reports whether any period of today's schedule contains the
// current wall-clock time. Both boundaries are inclusive: an order placed
// at exactly closing time is accepted. A day marked open with no periods
// counts as closed.
func IsOpenNow(hours []models.BusinessHour, now time.Time) bool {
	day, current := wallClock(now)

	today := hourForDay(hours, day)
	if today == nil || !today.IsOpen {
		return false
	}

	if len(today.Periods) == 0 {
		return false
	}

	for _, period := range today.Periods {
		start := clip(period.OpenTime)
		end := clip(period.CloseTime)
		// Lexicographic comparison on zero-padded HH:MM matches numeric order
		if current >= start && current <= end {
			return true
		}
	}
	return false
}

// NextOpeningTime scans the next seven days (today included) for the next
// period start and returns a display label like "Hoje às 14:00",
// "Amanhã às 08:00" or "Sábado às 18:00". Today only counts periods that
// have not started yet. Returns "" when nothing opens within a week.
func NextOpeningTime(hours []models.BusinessHour, now time.Time) string {
	if len(hours) == 0 {
		return ""
	}

	day, current := wallClock(now)

	for offset := 0; offset < 7; offset++ {
		checkDay := (day + offset) % 7

		config := hourForDay(hours, checkDay)
		if config == nil || !config.IsOpen || len(config.Periods) == 0 {
			continue
		}

		sorted := make([]models.BusinessHourPeriod, len(config.Periods))
		copy(sorted, config.Periods)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].OpenTime < sorted[j].OpenTime
		})

		for _, period := range sorted {
			start := clip(period.OpenTime)

			if offset == 0 {
				if start > current {
					return "Hoje às " + start
				}
				continue
			}

			if offset == 1 {
				return "Amanhã às " + start
			}
			return weekdays[checkDay] + " às " + start
		}
	}

	return ""
}

// EffectiveOpen is the single boolean that gates ordering. With the
// automatic schedule disabled the manual toggle wins unconditionally;
// otherwise the schedule decides. Pure function of its inputs, so callers
// must re-evaluate whenever config or wall-clock time changes.
func EffectiveOpen(autoScheduleEnabled, manualIsOpen bool, hours []models.BusinessHour, now time.Time) bool {
	if !autoScheduleEnabled {
		return manualIsOpen
	}
	return IsOpenNow(hours, now)
}
