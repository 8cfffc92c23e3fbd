package contextual

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/rushteam/prodkit/core"
)

func TestResolver_Resolve(t *testing.T) {
	now := time.Date(2026, time.December, 5, 20, 0, 0, 0, time.UTC) // saturday evening
	r := NewResolver()
	r.Now = func() time.Time { return now }

	profile := &core.UserProfile{BudgetRange: core.BudgetLow, Country: "DE"}
	factors, err := r.Resolve(context.Background(), "u1", profile)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if factors.Geographic.Country != "DE" {
		t.Errorf("Country = %q, want DE", factors.Geographic.Country)
	}
	if factors.Geographic.Region != "europe" {
		t.Errorf("Region = %q, want europe", factors.Geographic.Region)
	}
	if factors.Temporal.Season != "winter" {
		t.Errorf("Season = %q, want winter", factors.Temporal.Season)
	}
	if factors.Temporal.Hour != 20 {
		t.Errorf("Hour = %d, want 20", factors.Temporal.Hour)
	}
	if factors.Temporal.Weekday != "saturday" {
		t.Errorf("Weekday = %q, want saturday", factors.Temporal.Weekday)
	}
	if !reflect.DeepEqual(factors.Temporal.ActiveEvents, []string{"holiday_season"}) {
		t.Errorf("ActiveEvents = %v, want [holiday_season]", factors.Temporal.ActiveEvents)
	}
	if factors.Economic.PriceSensitivity != sensitivityLowBudget {
		t.Errorf("PriceSensitivity = %v, want %v", factors.Economic.PriceSensitivity, sensitivityLowBudget)
	}
	if factors.Economic.BudgetCategory != core.BudgetLow {
		t.Errorf("BudgetCategory = %q, want low", factors.Economic.BudgetCategory)
	}
}

func TestResolver_UnknownCountryUsesDefault(t *testing.T) {
	r := NewResolver()
	profile := &core.UserProfile{BudgetRange: core.BudgetMedium, Country: "ZZ"}

	factors, err := r.Resolve(context.Background(), "u1", profile)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if factors.Geographic.Region != "global" {
		t.Errorf("Region = %q, want global fallback", factors.Geographic.Region)
	}
	if factors.Geographic.Country != "ZZ" {
		t.Errorf("Country = %q, want ZZ preserved", factors.Geographic.Country)
	}
}

func TestPriceSensitivity(t *testing.T) {
	tests := []struct {
		budget core.BudgetRange
		want   float64
	}{
		{core.BudgetLow, 0.9},
		{core.BudgetMedium, 0.5},
		{core.BudgetHigh, 0.2},
	}
	for _, tt := range tests {
		if got := priceSensitivity(tt.budget); got != tt.want {
			t.Errorf("priceSensitivity(%q) = %v, want %v", tt.budget, got, tt.want)
		}
	}
}

func TestMarketTable_Lookup(t *testing.T) {
	table := DefaultMarketTable()
	if e := table.Lookup("JP"); e.Region != "asia" {
		t.Errorf("Lookup(JP).Region = %q, want asia", e.Region)
	}
	if e := table.Lookup("nowhere"); e.Region != "global" {
		t.Errorf("Lookup(nowhere).Region = %q, want global", e.Region)
	}
}

func TestMarketEvent_Active(t *testing.T) {
	e := MarketEvent{Tag: "summer_sale", Months: []time.Month{time.June, time.July}}
	if !e.Active(time.June) {
		t.Error("Active(June) = false, want true")
	}
	if e.Active(time.March) {
		t.Error("Active(March) = true, want false")
	}
}
