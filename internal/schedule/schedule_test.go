package schedule

import (
	"testing"
	"time"

	"cardapio/pkg/models"
)

// Wednesday on the Brasília wall clock
func wednesdayAt(hour, min int) time.Time {
	return time.Date(2026, time.August, 26, hour, min, 0, 0, location)
}

func day(dayOfWeek int, isOpen bool, periods ...models.BusinessHourPeriod) models.BusinessHour {
	return models.BusinessHour{
		DayOfWeek: dayOfWeek,
		IsOpen:    isOpen,
		Periods:   periods,
	}
}

func period(open, close string) models.BusinessHourPeriod {
	return models.BusinessHourPeriod{OpenTime: open, CloseTime: close}
}

func TestIsOpenNowInsidePeriod(t *testing.T) {
	hours := []models.BusinessHour{day(3, true, period("08:00", "12:00"))}

	if !IsOpenNow(hours, wednesdayAt(10, 30)) {
		t.Error("expected open at 10:30 within 08:00-12:00")
	}
	if IsOpenNow(hours, wednesdayAt(12, 1)) {
		t.Error("expected closed at 12:01")
	}
	if IsOpenNow(hours, wednesdayAt(7, 59)) {
		t.Error("expected closed at 07:59")
	}
}

func TestIsOpenNowInclusiveBoundaries(t *testing.T) {
	hours := []models.BusinessHour{day(3, true, period("08:00", "12:00"))}

	if !IsOpenNow(hours, wednesdayAt(8, 0)) {
		t.Error("opening time itself must count as open")
	}
	if !IsOpenNow(hours, wednesdayAt(12, 0)) {
		t.Error("closing time itself must count as open")
	}
}

func TestIsOpenNowOpenDayWithoutPeriods(t *testing.T) {
	hours := []models.BusinessHour{day(3, true)}

	if IsOpenNow(hours, wednesdayAt(10, 0)) {
		t.Error("a day marked open with zero periods is closed by convention")
	}
}

func TestIsOpenNowClosedDayAndMissingDay(t *testing.T) {
	closed := []models.BusinessHour{day(3, false, period("08:00", "18:00"))}
	if IsOpenNow(closed, wednesdayAt(10, 0)) {
		t.Error("is_open=false must win over periods")
	}

	otherDay := []models.BusinessHour{day(5, true, period("08:00", "18:00"))}
	if IsOpenNow(otherDay, wednesdayAt(10, 0)) {
		t.Error("missing entry for today means closed")
	}
}

func TestIsOpenNowClipsSeconds(t *testing.T) {
	hours := []models.BusinessHour{day(3, true, period("08:00:00", "12:00:00"))}

	if !IsOpenNow(hours, wednesdayAt(12, 0)) {
		t.Error("HH:MM:SS times must be truncated to HH:MM before comparing")
	}
}

func TestNextOpeningTimeBetweenPeriods(t *testing.T) {
	hours := []models.BusinessHour{
		day(3, true, period("08:00", "12:00"), period("14:00", "18:00")),
	}

	now := wednesdayAt(13, 0)
	if IsOpenNow(hours, now) {
		t.Fatal("expected closed at 13:00 between periods")
	}
	if got := NextOpeningTime(hours, now); got != "Hoje às 14:00" {
		t.Errorf("NextOpeningTime = %q, expected %q", got, "Hoje às 14:00")
	}
}

func TestNextOpeningTimeNeverInThePast(t *testing.T) {
	hours := []models.BusinessHour{
		day(3, true, period("08:00", "12:00")),
		day(4, true, period("09:00", "18:00")),
	}

	// 12:30, today's only period already started and ended
	if got := NextOpeningTime(hours, wednesdayAt(12, 30)); got != "Amanhã às 09:00" {
		t.Errorf("NextOpeningTime = %q, expected %q", got, "Amanhã às 09:00")
	}
}

func TestNextOpeningTimeSortsUnorderedPeriods(t *testing.T) {
	hours := []models.BusinessHour{
		day(3, true, period("18:00", "23:00"), period("11:00", "14:00")),
	}

	if got := NextOpeningTime(hours, wednesdayAt(9, 0)); got != "Hoje às 11:00" {
		t.Errorf("NextOpeningTime = %q, expected %q", got, "Hoje às 11:00")
	}
}

func TestNextOpeningTimeWeekdayLabel(t *testing.T) {
	hours := []models.BusinessHour{
		day(6, true, period("18:00", "23:00")),
	}

	if got := NextOpeningTime(hours, wednesdayAt(10, 0)); got != "Sábado às 18:00" {
		t.Errorf("NextOpeningTime = %q, expected %q", got, "Sábado às 18:00")
	}
}

func TestNextOpeningTimeNothingWithinAWeek(t *testing.T) {
	hours := []models.BusinessHour{
		day(3, false, period("08:00", "12:00")),
		day(4, true), // open flag but no periods
	}

	if got := NextOpeningTime(hours, wednesdayAt(10, 0)); got != "" {
		t.Errorf("NextOpeningTime = %q, expected empty", got)
	}

	if got := NextOpeningTime(nil, wednesdayAt(10, 0)); got != "" {
		t.Errorf("NextOpeningTime(nil) = %q, expected empty", got)
	}
}

func TestEffectiveOpenManualOverride(t *testing.T) {
	hours := []models.BusinessHour{day(3, true, period("08:00", "18:00"))}
	now := wednesdayAt(10, 0)

	if EffectiveOpen(false, false, hours, now) {
		t.Error("manual closed must win when auto schedule is disabled")
	}
	if !EffectiveOpen(false, true, nil, now) {
		t.Error("manual open must win regardless of hours content")
	}
	if !EffectiveOpen(true, false, hours, now) {
		t.Error("auto mode must ignore the manual toggle")
	}
	if EffectiveOpen(true, true, hours, wednesdayAt(19, 0)) {
		t.Error("auto mode closed outside periods even with manual open")
	}
}
