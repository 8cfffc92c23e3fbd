// Package recommend 是推荐核心的组装入口：
// 校验请求 → 归纳行为画像与上下文因子 → 并发评分 → 多样性重排 →
// 硬过滤 → 排序截断，返回带解释的候选短名单。
//
// 所有组件显式构造、显式传入，没有进程级单例；
// 替换向量生成器、趋势估计器或过滤规则都不需要改这里的代码。
package recommend

import (
	"context"

	"github.com/rushteam/prodkit/behavior"
	"github.com/rushteam/prodkit/contextual"
	"github.com/rushteam/prodkit/core"
	"github.com/rushteam/prodkit/embedding"
	"github.com/rushteam/prodkit/filter"
	"github.com/rushteam/prodkit/pipeline"
	"github.com/rushteam/prodkit/rank"
	"github.com/rushteam/prodkit/rerank"
	"github.com/rushteam/prodkit/scoring"
)

// Recommender 是推荐核心的门面。
type Recommender struct {
	// Generator 向量生成器；构造时会包一层商品向量缓存
	Generator embedding.Generator

	// Analyzer 行为归纳器
	Analyzer *behavior.Analyzer

	// Resolver 上下文因子解析器
	Resolver *contextual.Resolver

	// Engine 评分引擎
	Engine *scoring.Engine

	// ExtraFilters 追加在内建硬过滤（可售性、预算）之后的过滤器，
	// 例如 filter.ExprFilter 承载的运营规则
	ExtraFilters []filter.Filter

	// MaxConcurrent 评分阶段的最大并发数（0 表示不限流）
	MaxConcurrent int
}

// New 组装一个 Recommender。
// generator / engine 必传；cache 为 nil 时使用进程内商品向量缓存。
func New(generator embedding.Generator, engine *scoring.Engine, cache embedding.Cache) *Recommender {
	return &Recommender{
		Generator: embedding.NewCachedGenerator(generator, cache),
		Analyzer:  behavior.NewAnalyzer(),
		Resolver:  contextual.NewResolver(),
		Engine:    engine,
	}
}

// Recommend 执行一次完整的推荐计算。
//
// 错误约定：
//   - 结构性非法输入（负 limit、画像缺必填字段）→ INVALID_INPUT，立即返回
//   - 空候选池 / 空交互历史 → 正常的退化输入，返回退化但合法的结果
//   - context 取消 → 返回已完成部分的结果，不阻塞
func (r *Recommender) Recommend(ctx context.Context, req *Request) (*Response, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	ordered := core.SortNewestFirst(req.Interactions)

	// 用户级派生值各计算一次，候选间共享只读
	pattern, err := r.Analyzer.Analyze(ctx, req.UserID, ordered)
	if err != nil {
		return nil, err
	}
	intent := r.Analyzer.PredictIntent(ordered)

	factors, err := r.Resolver.Resolve(ctx, req.UserID, req.Profile)
	if err != nil {
		return nil, err
	}

	// 用户向量依赖请求内历史，每次请求重新生成，不缓存
	userEmb, err := r.Generator.EmbedUser(ctx, req.Profile, ordered)
	if err != nil {
		return nil, err
	}

	rctx := &core.RecommendContext{
		UserID:        req.UserID,
		Profile:       req.Profile,
		Interactions:  ordered,
		UserEmbedding: userEmb,
		Pattern:       pattern,
		Factors:       factors,
		Intent:        intent,
	}
	if req.Context != "" {
		rctx.Params = map[string]any{"scene": req.Context}
	}

	candidates := make([]*core.Candidate, 0, len(req.Candidates))
	for _, p := range req.Candidates {
		if p == nil {
			continue
		}
		candidates = append(candidates, core.NewCandidate(p))
	}

	items, err := r.buildPipeline(req.limit()).Run(ctx, rctx, candidates)
	if err != nil {
		return nil, err
	}

	return &Response{
		Items:   items,
		Pattern: pattern,
		Factors: factors,
		Intent:  intent,
	}, nil
}

// buildPipeline 组装默认链路：评分 → 多样性 → 硬过滤 → 排序截断。
func (r *Recommender) buildPipeline(limit int) *pipeline.Pipeline {
	filters := []filter.Filter{
		&filter.AvailabilityFilter{},
		&filter.BudgetFilter{},
	}
	filters = append(filters, r.ExtraFilters...)

	return &pipeline.Pipeline{
		Nodes: []pipeline.Node{
			&rank.ScoreNode{
				Generator:     r.Generator,
				Engine:        r.Engine,
				MaxConcurrent: r.MaxConcurrent,
			},
			&rerank.Diversity{},
			&filter.Node{Filters: filters},
			&rerank.TopN{N: limit},
		},
	}
}
