package core

import (
	"errors"
	"testing"
	"time"

	"github.com/rushteam/prodkit/pkg/utils"
)

func TestDomainError(t *testing.T) {
	err := NewDomainError(ModuleRecommend, ErrorCodeInvalidInput, "limit must be >= 0")
	if err.Error() != "limit must be >= 0" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !IsInvalidInput(err) {
		t.Error("IsInvalidInput() = false, want true")
	}
	if IsNotFound(err) {
		t.Error("IsNotFound() = true, want false")
	}
	if IsInvalidInput(errors.New("plain error")) {
		t.Error("IsInvalidInput(plain) = true, want false")
	}
	if IsInvalidInput(nil) {
		t.Error("IsInvalidInput(nil) = true, want false")
	}
}

func TestUserProfile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		profile *UserProfile
		wantErr bool
	}{
		{"valid", &UserProfile{BudgetRange: BudgetLow, Country: "DE"}, false},
		{"nil profile", nil, true},
		{"unknown budget", &UserProfile{BudgetRange: "luxury", Country: "DE"}, true},
		{"missing country", &UserProfile{BudgetRange: BudgetHigh}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !IsInvalidInput(err) {
				t.Errorf("Validate() error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestSortNewestFirst(t *testing.T) {
	base := time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)
	in := []Interaction{
		{ProductID: "old", Timestamp: base.Add(-2 * time.Hour)},
		{ProductID: "new", Timestamp: base},
		{ProductID: "mid", Timestamp: base.Add(-1 * time.Hour)},
	}

	out := SortNewestFirst(in)
	want := []string{"new", "mid", "old"}
	for i, w := range want {
		if out[i].ProductID != w {
			t.Fatalf("out[%d] = %q, want %q", i, out[i].ProductID, w)
		}
	}

	// input left untouched
	if in[0].ProductID != "old" {
		t.Error("SortNewestFirst mutated its input")
	}
}

func TestInteraction_MetadataHelpers(t *testing.T) {
	i := Interaction{Metadata: map[string]any{
		"features_viewed": []string{"battery", "screen"},
		"page_type":       "comparison",
	}}
	if got := i.FeaturesViewed(); len(got) != 2 || got[0] != "battery" {
		t.Errorf("FeaturesViewed() = %v", got)
	}
	if i.PageType() != "comparison" {
		t.Errorf("PageType() = %q, want comparison", i.PageType())
	}

	// []any form, as produced by JSON decoding
	j := Interaction{Metadata: map[string]any{
		"features_viewed": []any{"battery", 42, "screen"},
	}}
	if got := j.FeaturesViewed(); len(got) != 2 || got[1] != "screen" {
		t.Errorf("FeaturesViewed() = %v, want non-strings skipped", got)
	}

	var empty Interaction
	if empty.FeaturesViewed() != nil || empty.PageType() != "" {
		t.Error("empty metadata should yield zero values")
	}
}

func TestCandidate_PutLabel(t *testing.T) {
	c := NewCandidate(&Product{ID: "p1"})
	c.PutLabel("filtered", utils.Label{Value: "true", Source: "filter.budget"})
	c.PutLabel("filtered", utils.Label{Value: "true", Source: "filter.availability"})

	lbl := c.Labels["filtered"]
	if lbl.Value != "true|true" {
		t.Errorf("Value = %q, want accumulated", lbl.Value)
	}
	if lbl.Source != "filter.budget,filter.availability" {
		t.Errorf("Source = %q, want accumulated", lbl.Source)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-0.2, 0, 1, 0},
		{1.3, 0, 1, 1},
		{0.05, 0.1, 0.95, 0.1},
		{0.99, 0.1, 0.95, 0.95},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestProduct_Helpers(t *testing.T) {
	p := &Product{
		Features:  []string{"eco_friendly"},
		Countries: []string{"DE", "US"},
	}
	if !p.HasFeature("eco_friendly") || p.HasFeature("missing") {
		t.Error("HasFeature() mismatch")
	}
	if !p.AvailableIn("DE") || p.AvailableIn("JP") {
		t.Error("AvailableIn() mismatch")
	}
}
