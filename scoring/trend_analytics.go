package scoring

import (
	"context"

	"github.com/rushteam/prodkit/core"
	"github.com/rushteam/prodkit/feast"
)

// 默认的 Feast 特征名。
const (
	defaultPopularityFeature = "product_stats:popularity"
	defaultSectorFeature     = "product_stats:sector_trend"
)

// AnalyticsTrend 是 feast 在线特征库供数的趋势估计器：
// 用真实的商品热度/品类行情特征替换占位随机信号。
//
// 可用性约定：特征库不可用或特征缺失时降级为中性信号，
// 绝不让外部依赖拖垮评分链路。
type AnalyticsTrend struct {
	Client feast.Client

	// PopularityFeature / SectorFeature 特征名，空值使用默认
	PopularityFeature string
	SectorFeature     string
}

// NewAnalyticsTrend 创建 feast 供数的趋势估计器。
func NewAnalyticsTrend(client feast.Client) *AnalyticsTrend {
	return &AnalyticsTrend{Client: client}
}

func (t *AnalyticsTrend) Name() string { return "trend.analytics" }

func (t *AnalyticsTrend) Estimate(ctx context.Context, p *core.Product) (TrendSignal, error) {
	if t.Client == nil || p == nil || p.ID == "" {
		return NeutralSignal(), nil
	}

	popFeature := t.PopularityFeature
	if popFeature == "" {
		popFeature = defaultPopularityFeature
	}
	sectorFeature := t.SectorFeature
	if sectorFeature == "" {
		sectorFeature = defaultSectorFeature
	}

	resp, err := t.Client.GetOnlineFeatures(ctx, &feast.GetOnlineFeaturesRequest{
		Features:   []string{popFeature, sectorFeature},
		EntityRows: []map[string]interface{}{{"product_id": p.ID}},
	})
	if err != nil || len(resp.FeatureVectors) == 0 {
		return NeutralSignal(), nil
	}

	signal := NeutralSignal()
	fv := &resp.FeatureVectors[0]
	if v, ok := fv.Float64(popFeature); ok {
		signal.Popularity = core.Clamp01(v)
	}
	if v, ok := fv.Float64(sectorFeature); ok {
		signal.Sector = core.Clamp01(v)
	}
	return signal, nil
}
