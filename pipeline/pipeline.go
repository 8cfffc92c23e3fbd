package pipeline

import (
	"context"

	"github.com/rushteam/prodkit/core"
)

// Pipeline 是推荐核心的组合抽象：把评分逻辑拆成可组合的 Node 链
// （Rank → ReRank → Filter → ...），每个 Node 只做一件事。
type Pipeline struct {
	Nodes []Node
}

func (p *Pipeline) Run(
	ctx context.Context,
	rctx *core.RecommendContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	cur := candidates
	for _, node := range p.Nodes {
		next, err := node.Process(ctx, rctx, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
