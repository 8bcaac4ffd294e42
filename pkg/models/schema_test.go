package models

import (
	"sync"
	"testing"

	"gorm.io/gorm/schema"
)

// The week schedule is unique per tenant per day; a unique index on
// day_of_week alone would reject the second provisioned store.
func TestBusinessHourUniqueIndexIsTenantScoped(t *testing.T) {
	s, err := schema.Parse(&BusinessHour{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("parse BusinessHour schema: %v", err)
	}

	for _, idx := range s.ParseIndexes() {
		if idx.Name != "uni_business_hours_tenant_day" {
			continue
		}

		if idx.Class != "UNIQUE" {
			t.Errorf("uni_business_hours_tenant_day must be unique, got class %q", idx.Class)
		}

		cols := make([]string, 0, len(idx.Fields))
		for _, f := range idx.Fields {
			cols = append(cols, f.DBName)
		}
		if len(cols) != 2 || cols[0] != "tenant_id" || cols[1] != "day_of_week" {
			t.Errorf("index must cover (tenant_id, day_of_week), got %v", cols)
		}
		return
	}

	t.Fatal("uni_business_hours_tenant_day not found on BusinessHour")
}
