package feast

import (
	"context"
	"testing"
)

// 注意：需要连接真实的 Feast 服务器才能运行，平时跳过。
func TestGrpcClient_GetOnlineFeatures(t *testing.T) {
	t.Skip("requires a live Feast server")

	ctx := context.Background()
	client, err := NewGrpcClient("localhost", 6565, "prodkit")
	if err != nil {
		t.Fatalf("NewGrpcClient() error = %v", err)
	}
	defer client.Close()

	resp, err := client.GetOnlineFeatures(ctx, &GetOnlineFeaturesRequest{
		Features: []string{
			"product_stats:popularity",
			"product_stats:sector_trend",
		},
		EntityRows: []map[string]interface{}{
			{"product_id": "p_1001"},
			{"product_id": "p_1002"},
		},
	})
	if err != nil {
		t.Fatalf("GetOnlineFeatures() error = %v", err)
	}
	if len(resp.FeatureVectors) != 2 {
		t.Errorf("feature vectors = %d, want 2", len(resp.FeatureVectors))
	}
}

func TestFeatureVector_Float64(t *testing.T) {
	fv := &FeatureVector{Values: map[string]interface{}{
		"float":  0.8,
		"float3": float32(0.5),
		"int":    42,
		"int64":  int64(7),
		"text":   "not a number",
	}}

	tests := []struct {
		name   string
		key    string
		want   float64
		wantOK bool
	}{
		{"float64 value", "float", 0.8, true},
		{"float32 value", "float3", 0.5, true},
		{"int value", "int", 42, true},
		{"int64 value", "int64", 7, true},
		{"non numeric", "text", 0, false},
		{"missing key", "absent", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := fv.Float64(tt.key)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Float64(%q) = (%v, %v), want (%v, %v)", tt.key, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
