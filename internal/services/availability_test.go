package services

import (
	"testing"
	"time"

	"cardapio/internal/schedule"
	"cardapio/pkg/models"

	"github.com/google/uuid"
)

type fakeHours struct {
	hours []models.BusinessHour
	err   error
	calls int
}

func (f *fakeHours) ListByTenant(uuid.UUID) ([]models.BusinessHour, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.hours, nil
}

// Wednesday on the Brasília wall clock
func wednesdayAt(t *testing.T, hour, min int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation(schedule.Timezone)
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return time.Date(2026, time.August, 26, hour, min, 0, 0, loc)
}

func weekday(dayOfWeek int, open, close string) models.BusinessHour {
	return models.BusinessHour{
		DayOfWeek: dayOfWeek,
		IsOpen:    true,
		Periods:   []models.BusinessHourPeriod{{OpenTime: open, CloseTime: close}},
	}
}

func TestResolveManuallyClosedStillShowsNextOpening(t *testing.T) {
	hours := &fakeHours{hours: []models.BusinessHour{weekday(4, "08:00", "12:00")}}
	svc := NewAvailabilityService(hours)

	tenant := openTenant()
	tenant.IsOpen = false

	status, err := svc.Resolve(tenant, wednesdayAt(t, 22, 0))
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if status.IsOpen {
		t.Error("manually closed store must resolve closed")
	}
	if status.NextOpening != "Amanhã às 08:00" {
		t.Errorf("expected next opening from the schedule, got %q", status.NextOpening)
	}
}

func TestResolveManuallyOpenSkipsSchedule(t *testing.T) {
	hours := &fakeHours{}
	svc := NewAvailabilityService(hours)

	status, err := svc.Resolve(openTenant(), wednesdayAt(t, 22, 0))
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if !status.IsOpen {
		t.Error("manually open store must resolve open")
	}
	if status.NextOpening != "" {
		t.Errorf("open store has no next opening, got %q", status.NextOpening)
	}
	if hours.calls != 0 {
		t.Errorf("open store must not hit the schedule, got %d calls", hours.calls)
	}
}

func TestResolveAutoScheduleClosedBeforeOpening(t *testing.T) {
	hours := &fakeHours{hours: []models.BusinessHour{weekday(3, "08:00", "12:00")}}
	svc := NewAvailabilityService(hours)

	tenant := openTenant()
	tenant.AutoScheduleEnabled = true

	status, err := svc.Resolve(tenant, wednesdayAt(t, 6, 0))
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if status.IsOpen {
		t.Error("store must be closed before the first period")
	}
	if status.NextOpening != "Hoje às 08:00" {
		t.Errorf("expected same-day opening label, got %q", status.NextOpening)
	}
}
