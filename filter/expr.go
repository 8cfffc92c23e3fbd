package filter

import (
	"context"

	"github.com/rushteam/prodkit/core"
	"github.com/rushteam/prodkit/pkg/dsl"
)

// ExprFilter 是表达式过滤器：用 CEL 表达式描述排除规则，
// 运营侧可以不改代码上线临时规则。
//
// 表达式为 true 时候选被剔除，例如：
//   - `item.price > 3000 && user.budget == "low"`
//   - `item.brand == "acme"`
type ExprFilter struct {
	// Expr CEL 排除规则；空表达式不过滤任何候选
	Expr string
}

func (f *ExprFilter) Name() string { return "filter.expr" }

func (f *ExprFilter) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	c *core.Candidate,
) (bool, error) {
	if f.Expr == "" {
		return false, nil
	}
	return dsl.NewEval(c, rctx).Evaluate(f.Expr)
}
