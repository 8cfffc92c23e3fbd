package embedding

import (
	"context"
	"testing"

	"github.com/rushteam/prodkit/core"
)

// countingGenerator wraps a Generator and counts delegated calls.
type countingGenerator struct {
	inner        Generator
	productCalls int
	userCalls    int
}

func (g *countingGenerator) Dim() int { return g.inner.Dim() }

func (g *countingGenerator) EmbedProduct(ctx context.Context, p *core.Product) ([]float64, error) {
	g.productCalls++
	return g.inner.EmbedProduct(ctx, p)
}

func (g *countingGenerator) EmbedUser(ctx context.Context, profile *core.UserProfile, interactions []core.Interaction) ([]float64, error) {
	g.userCalls++
	return g.inner.EmbedUser(ctx, profile, interactions)
}

func TestCachedGenerator_MemoizesProducts(t *testing.T) {
	counting := &countingGenerator{inner: NewSimulated(32)}
	cache := NewMemoryCache()
	g := NewCachedGenerator(counting, cache)
	ctx := context.Background()

	p := testProduct("p1")
	first, err := g.EmbedProduct(ctx, p)
	if err != nil {
		t.Fatalf("EmbedProduct() error = %v", err)
	}
	second, err := g.EmbedProduct(ctx, p)
	if err != nil {
		t.Fatalf("EmbedProduct() error = %v", err)
	}

	if counting.productCalls != 1 {
		t.Errorf("inner product calls = %d, want 1", counting.productCalls)
	}
	if cache.Len() != 1 {
		t.Errorf("cache size = %d, want 1", cache.Len())
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("cached vector differs at %d", i)
		}
	}
}

func TestCachedGenerator_NeverCachesUsers(t *testing.T) {
	counting := &countingGenerator{inner: NewSimulated(32)}
	cache := NewMemoryCache()
	g := NewCachedGenerator(counting, cache)
	ctx := context.Background()

	profile := &core.UserProfile{BudgetRange: core.BudgetLow, Country: "US"}
	for i := 0; i < 3; i++ {
		if _, err := g.EmbedUser(ctx, profile, nil); err != nil {
			t.Fatalf("EmbedUser() error = %v", err)
		}
	}

	if counting.userCalls != 3 {
		t.Errorf("inner user calls = %d, want 3", counting.userCalls)
	}
	if cache.Len() != 0 {
		t.Errorf("cache size = %d, want 0 (user vectors must not be cached)", cache.Len())
	}
}

func TestCachedGenerator_ProductWithoutIDBypassesCache(t *testing.T) {
	counting := &countingGenerator{inner: NewSimulated(32)}
	cache := NewMemoryCache()
	g := NewCachedGenerator(counting, cache)
	ctx := context.Background()

	p := testProduct("")
	g.EmbedProduct(ctx, p)
	g.EmbedProduct(ctx, p)

	if counting.productCalls != 2 {
		t.Errorf("inner product calls = %d, want 2", counting.productCalls)
	}
	if cache.Len() != 0 {
		t.Errorf("cache size = %d, want 0", cache.Len())
	}
}
