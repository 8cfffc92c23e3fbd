package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/rushteam/prodkit/core"
	"github.com/rushteam/prodkit/feast"
)

// fakeFeastClient serves canned feature vectors.
type fakeFeastClient struct {
	values map[string]interface{}
	err    error
}

func (f *fakeFeastClient) GetOnlineFeatures(_ context.Context, req *feast.GetOnlineFeaturesRequest) (*feast.GetOnlineFeaturesResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &feast.GetOnlineFeaturesResponse{
		FeatureVectors: []feast.FeatureVector{
			{Values: f.values, EntityRow: req.EntityRows[0]},
		},
	}, nil
}

func (f *fakeFeastClient) Close() error { return nil }

func TestAnalyticsTrend_Estimate(t *testing.T) {
	trend := NewAnalyticsTrend(&fakeFeastClient{values: map[string]interface{}{
		"product_stats:popularity":   0.8,
		"product_stats:sector_trend": 0.3,
	}})

	signal, err := trend.Estimate(context.Background(), scoringProduct())
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	if signal.Popularity != 0.8 || signal.Sector != 0.3 {
		t.Errorf("signal = %+v, want {0.8 0.3}", signal)
	}
}

func TestAnalyticsTrend_ClampsOutOfRangeFeatures(t *testing.T) {
	trend := NewAnalyticsTrend(&fakeFeastClient{values: map[string]interface{}{
		"product_stats:popularity":   1.7,
		"product_stats:sector_trend": -0.2,
	}})

	signal, _ := trend.Estimate(context.Background(), scoringProduct())
	if signal.Popularity != 1 || signal.Sector != 0 {
		t.Errorf("signal = %+v, want clamped {1 0}", signal)
	}
}

func TestAnalyticsTrend_DegradesToNeutral(t *testing.T) {
	neutral := NeutralSignal()
	tests := []struct {
		name  string
		trend *AnalyticsTrend
		p     *core.Product
	}{
		{"nil client", &AnalyticsTrend{}, scoringProduct()},
		{"nil product", NewAnalyticsTrend(&fakeFeastClient{}), nil},
		{"store error", NewAnalyticsTrend(&fakeFeastClient{err: errors.New("connection refused")}), scoringProduct()},
		{"missing features", NewAnalyticsTrend(&fakeFeastClient{values: map[string]interface{}{}}), scoringProduct()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signal, err := tt.trend.Estimate(context.Background(), tt.p)
			if err != nil {
				t.Fatalf("Estimate() error = %v, want graceful degradation", err)
			}
			if signal != neutral {
				t.Errorf("signal = %+v, want neutral %+v", signal, neutral)
			}
		})
	}
}

func TestAnalyticsTrend_CustomFeatureNames(t *testing.T) {
	trend := &AnalyticsTrend{
		Client:            &fakeFeastClient{values: map[string]interface{}{"pop": 0.6, "sec": 0.4}},
		PopularityFeature: "pop",
		SectorFeature:     "sec",
	}
	signal, _ := trend.Estimate(context.Background(), scoringProduct())
	if signal.Popularity != 0.6 || signal.Sector != 0.4 {
		t.Errorf("signal = %+v, want {0.6 0.4}", signal)
	}
}
