package scoring

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rushteam/prodkit/core"
)

func TestWeights_Validate(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Fatalf("DefaultWeights().Validate() error = %v", err)
	}

	neg := Weights{Semantic: -0.1, Behavioral: 0.5}
	if err := neg.Validate(); !core.IsInvalidInput(err) {
		t.Errorf("negative weight error = %v, want INVALID_INPUT", err)
	}

	zero := Weights{}
	if err := zero.Validate(); !core.IsInvalidInput(err) {
		t.Errorf("all-zero weights error = %v, want INVALID_INPUT", err)
	}
}

func TestLoadWeights(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.yaml")
	content := "semantic: 0.4\nbehavioral: 0.3\ncontextual: 0.2\ntrend: 0.1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := LoadWeights(path)
	if err != nil {
		t.Fatalf("LoadWeights() error = %v", err)
	}
	want := Weights{Semantic: 0.4, Behavioral: 0.3, Contextual: 0.2, Trend: 0.1}
	if w != want {
		t.Errorf("LoadWeights() = %+v, want %+v", w, want)
	}

	if _, err := LoadWeights(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadWeights(missing) error = nil, want error")
	}
}

func TestSimulatedTrend_SeedReproducible(t *testing.T) {
	a := NewSimulatedTrend(42)
	b := NewSimulatedTrend(42)

	p := scoringProduct()
	for i := 0; i < 5; i++ {
		sa, _ := a.Estimate(nil, p)
		sb, _ := b.Estimate(nil, p)
		if sa != sb {
			t.Fatalf("same seed diverged at step %d: %+v vs %+v", i, sa, sb)
		}
		if sa.Popularity < 0 || sa.Popularity > 1 || sa.Sector < 0 || sa.Sector > 1 {
			t.Fatalf("signal out of range: %+v", sa)
		}
	}
}
