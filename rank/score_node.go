// Package rank 提供评分 Node：对每个候选并发执行向量生成与多因子评分。
package rank

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/prodkit/core"
	"github.com/rushteam/prodkit/embedding"
	"github.com/rushteam/prodkit/pipeline"
	"github.com/rushteam/prodkit/pkg/utils"
	"github.com/rushteam/prodkit/scoring"
)

// ScoreNode 是评分 Node：候选之间相互独立，逐个并发地
// 生成商品向量并调用评分引擎，支持限流与取消。
//
// 取消语义：外部 context 取消时，已完成的候选原样返回（部分结果），
// 未开始的候选直接放弃；每个候选是天然的取消检查点。
type ScoreNode struct {
	// Generator 商品向量生成器（通常包一层 embedding.CachedGenerator）
	Generator embedding.Generator

	// Engine 评分引擎
	Engine *scoring.Engine

	// MaxConcurrent 最大并发数（0 表示不限流）
	MaxConcurrent int
}

func (n *ScoreNode) Name() string { return "rank.score" }

func (n *ScoreNode) Kind() pipeline.Kind { return pipeline.KindRank }

func (n *ScoreNode) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(candidates) == 0 {
		return candidates, nil
	}

	var eg errgroup.Group
	if n.MaxConcurrent > 0 {
		eg.SetLimit(n.MaxConcurrent)
	}

	// 结果按下标写入，保持输入顺序；未评分的槽位最后剔除
	scored := make([]bool, len(candidates))

	for i, c := range candidates {
		// 逐候选的取消检查点：取消后不再派发新任务
		if ctx.Err() != nil {
			break
		}

		i, c := i, c
		eg.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			if c == nil || c.Product == nil {
				return nil
			}

			productEmb, err := n.Generator.EmbedProduct(ctx, c.Product)
			if err != nil {
				// 单个候选失败不拖垮整批，留痕后跳过
				c.PutLabel("score_error", utils.Label{Value: err.Error(), Source: "rank"})
				return nil
			}

			score, err := n.Engine.Score(ctx, rctx.UserEmbedding, productEmb, c.Product, rctx.Pattern, rctx.Factors, rctx.Intent)
			if err != nil {
				c.PutLabel("score_error", utils.Label{Value: err.Error(), Source: "rank"})
				return nil
			}

			c.Score = score
			c.Reason = scoring.Reason(score)
			c.PutLabel("score_breakdown", utils.Label{
				Value: fmt.Sprintf("sem=%.2f,beh=%.2f,ctx=%.2f,trend=%.2f",
					score.Breakdown.SemanticSimilarity,
					score.Breakdown.BehavioralMatch,
					score.Breakdown.ContextualRelevance,
					score.Breakdown.MarketTrend),
				Source: "rank",
			})
			scored[i] = true
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make([]*core.Candidate, 0, len(candidates))
	for i, c := range candidates {
		if scored[i] {
			out = append(out, c)
		}
	}
	return out, nil
}
