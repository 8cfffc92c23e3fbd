// Package builders 注册内置 Node 的配置构建器。
// import _ 本包即可让 pipeline 配置文件驱动整条推荐链路。
package builders

import (
	"fmt"

	"github.com/rushteam/prodkit/config"
	"github.com/rushteam/prodkit/core"
	"github.com/rushteam/prodkit/embedding"
	"github.com/rushteam/prodkit/filter"
	"github.com/rushteam/prodkit/pipeline"
	"github.com/rushteam/prodkit/pkg/conv"
	"github.com/rushteam/prodkit/rank"
	"github.com/rushteam/prodkit/rerank"
	"github.com/rushteam/prodkit/scoring"
)

func init() {
	config.Register("rank.score", BuildScoreNode)
	config.Register("rerank.diversity", BuildDiversityNode)
	config.Register("rerank.topn", BuildTopNNode)
	config.Register("filter.node", BuildFilterNode)
}

// BuildScoreNode 构建评分节点。
//
// 配置示例：
//
//	type: rank.score
//	config:
//	  dim: 128
//	  max_concurrent: 8
//	  weights: {semantic: 0.3, behavioral: 0.25, contextual: 0.25, trend: 0.2}
//	  trend: {type: simulated, seed: 42}
func BuildScoreNode(cfg map[string]interface{}) (pipeline.Node, error) {
	weights := scoring.DefaultWeights()
	if wc, ok := cfg["weights"].(map[string]interface{}); ok {
		weights = scoring.Weights{
			Semantic:   conv.ConfigGetFloat(wc, "semantic", weights.Semantic),
			Behavioral: conv.ConfigGetFloat(wc, "behavioral", weights.Behavioral),
			Contextual: conv.ConfigGetFloat(wc, "contextual", weights.Contextual),
			Trend:      conv.ConfigGetFloat(wc, "trend", weights.Trend),
		}
		if err := weights.Validate(); err != nil {
			return nil, err
		}
	}

	trend, err := buildTrend(conv.ConfigGet[map[string]interface{}](cfg, "trend", nil))
	if err != nil {
		return nil, err
	}

	generator := embedding.NewCachedGenerator(
		embedding.NewSimulated(conv.ConfigGetInt(cfg, "dim", embedding.DefaultDim)),
		nil,
	)

	return &rank.ScoreNode{
		Generator:     generator,
		Engine:        scoring.NewEngine(weights, trend),
		MaxConcurrent: conv.ConfigGetInt(cfg, "max_concurrent", 0),
	}, nil
}

func buildTrend(cfg map[string]interface{}) (scoring.TrendEstimator, error) {
	trendType := conv.ConfigGet(cfg, "type", "simulated")
	switch trendType {
	case "simulated":
		return scoring.NewSimulatedTrend(int64(conv.ConfigGetInt(cfg, "seed", 1))), nil
	case "fixed":
		return &scoring.FixedTrend{Signal: scoring.TrendSignal{
			Popularity: conv.ConfigGetFloat(cfg, "popularity", 0.5),
			Sector:     conv.ConfigGetFloat(cfg, "sector", 0.5),
		}}, nil
	default:
		// analytics 需要 feast 客户端，无法仅从配置构建
		return nil, fmt.Errorf("unknown trend type: %s", trendType)
	}
}

// BuildDiversityNode 构建类目多样性节点。
func BuildDiversityNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return &rerank.Diversity{
		CapBase: conv.ConfigGetInt(cfg, "cap_base", 0),
	}, nil
}

// BuildTopNNode 构建排序截断节点。
func BuildTopNNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return &rerank.TopN{
		N: conv.ConfigGetInt(cfg, "n", 0),
	}, nil
}

// BuildFilterNode 构建过滤节点。
//
// 配置示例：
//
//	type: filter.node
//	config:
//	  availability: true
//	  budget_ceilings: {low: 800, medium: 2000}
//	  rules:
//	    - 'item.price > 3000 && user.budget == "low"'
func BuildFilterNode(cfg map[string]interface{}) (pipeline.Node, error) {
	var filters []filter.Filter

	if conv.ConfigGet(cfg, "availability", true) {
		filters = append(filters, &filter.AvailabilityFilter{})
	}

	budget := &filter.BudgetFilter{}
	if cc, ok := cfg["budget_ceilings"].(map[string]interface{}); ok {
		ceilings := make(filter.Ceilings, len(cc))
		for k, v := range cc {
			if f, ok := conv.ToFloat64(v); ok {
				ceilings[core.BudgetRange(k)] = f
			}
		}
		budget.Ceilings = ceilings
	}
	filters = append(filters, budget)

	for _, rule := range conv.SliceAnyToString(cfg["rules"]) {
		filters = append(filters, &filter.ExprFilter{Expr: rule})
	}

	return &filter.Node{Filters: filters}, nil
}
