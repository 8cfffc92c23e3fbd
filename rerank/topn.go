package rerank

import (
	"context"

	"github.com/rushteam/prodkit/core"
	"github.com/rushteam/prodkit/pipeline"
)

// TopN 是排序截断节点：按总分降序排序后截取前 N 个。
// 通常作为 Pipeline 的最后一个节点，N 对应调用方的 limit。
//
// 示例：
//
//	pipeline := &pipeline.Pipeline{
//	    Nodes: []pipeline.Node{
//	        &rank.ScoreNode{...},      // 评分
//	        &rerank.Diversity{},       // 类目多样性
//	        &filter.Node{...},         // 硬过滤
//	        &rerank.TopN{N: 5},        // 最终排序 + 截断
//	    },
//	}
type TopN struct {
	// N 要保留的候选数量
	// 如果 N <= 0，只排序不截断
	N int
}

func (n *TopN) Name() string { return "rerank.topn" }

func (n *TopN) Kind() pipeline.Kind { return pipeline.KindReRank }

func (n *TopN) Process(
	_ context.Context,
	_ *core.RecommendContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(candidates) == 0 {
		return candidates, nil
	}

	out := make([]*core.Candidate, len(candidates))
	copy(out, candidates)
	sortByScore(out)

	if n.N > 0 && len(out) > n.N {
		out = out[:n.N]
	}
	return out, nil
}
