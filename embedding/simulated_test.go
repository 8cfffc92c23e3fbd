package embedding

import (
	"context"
	"math"
	"testing"

	"github.com/rushteam/prodkit/core"
)

func testProduct(id string) *core.Product {
	return &core.Product{
		ID:       id,
		Name:     "UltraBook Pro",
		Brand:    "acme",
		Category: "laptop",
		Price:    1299,
		Features: []string{"detailed_specs", "eco_friendly"},
	}
}

func TestSimulated_Deterministic(t *testing.T) {
	g := NewSimulated(0)
	ctx := context.Background()

	p := testProduct("p1")
	a, err := g.EmbedProduct(ctx, p)
	if err != nil {
		t.Fatalf("EmbedProduct() error = %v", err)
	}
	b, err := g.EmbedProduct(ctx, p)
	if err != nil {
		t.Fatalf("EmbedProduct() error = %v", err)
	}

	if len(a) != g.Dim() || len(b) != g.Dim() {
		t.Fatalf("dim = %d/%d, want %d", len(a), len(b), g.Dim())
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("vectors differ at %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestSimulated_FeatureOrderDoesNotMatter(t *testing.T) {
	g := NewSimulated(64)
	ctx := context.Background()

	p1 := testProduct("p1")
	p2 := testProduct("p1")
	p2.Features = []string{"eco_friendly", "detailed_specs"}

	a, _ := g.EmbedProduct(ctx, p1)
	b, _ := g.EmbedProduct(ctx, p2)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("feature order changed the vector at %d", i)
		}
	}
}

func TestSimulated_UnitMagnitude(t *testing.T) {
	g := NewSimulated(128)
	ctx := context.Background()

	vec, err := g.EmbedProduct(ctx, testProduct("p1"))
	if err != nil {
		t.Fatalf("EmbedProduct() error = %v", err)
	}

	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if math.Abs(math.Sqrt(sum)-1) > 1e-9 {
		t.Fatalf("magnitude = %v, want 1", math.Sqrt(sum))
	}
}

func TestSimulated_EmbedUser(t *testing.T) {
	g := NewSimulated(0)
	ctx := context.Background()

	profile := &core.UserProfile{
		BudgetRange:   core.BudgetMedium,
		RiskTolerance: "moderate",
		PreferredType: "laptop",
		Country:       "DE",
	}
	interactions := []core.Interaction{
		{Type: core.InteractionView, ProductID: "p1", ProductType: "laptop",
			Metadata: map[string]any{"features_viewed": []string{"detailed_specs"}}},
	}

	a, err := g.EmbedUser(ctx, profile, interactions)
	if err != nil {
		t.Fatalf("EmbedUser() error = %v", err)
	}
	b, _ := g.EmbedUser(ctx, profile, interactions)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("user vectors differ at %d", i)
		}
	}
	if len(a) != g.Dim() {
		t.Fatalf("user dim = %d, want %d", len(a), g.Dim())
	}

	// different history must move the vector
	c, _ := g.EmbedUser(ctx, profile, nil)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("history had no effect on user vector")
	}
}

func TestSimulated_NilProductIsZeroVector(t *testing.T) {
	g := NewSimulated(32)
	vec, err := g.EmbedProduct(context.Background(), nil)
	if err != nil {
		t.Fatalf("EmbedProduct(nil) error = %v", err)
	}
	for i, v := range vec {
		if v != 0 {
			t.Fatalf("component %d = %v, want 0", i, v)
		}
	}
}
