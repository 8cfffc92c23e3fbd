package filter

import (
	"context"

	"github.com/rushteam/prodkit/core"
)

// Ceilings 是预算档位 → 价格上限；缺失的档位视为无上限。
type Ceilings map[core.BudgetRange]float64

// DefaultCeilings 返回默认价格上限：low 800，medium 2000，high 无上限。
func DefaultCeilings() Ceilings {
	return Ceilings{
		core.BudgetLow:    800,
		core.BudgetMedium: 2000,
	}
}

// BudgetFilter 是预算硬过滤器：价格超过档位上限的候选剔除。
type BudgetFilter struct {
	// Ceilings 价格上限表；nil 时使用默认表
	Ceilings Ceilings
}

func (f *BudgetFilter) Name() string { return "filter.budget" }

func (f *BudgetFilter) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	c *core.Candidate,
) (bool, error) {
	if c == nil || c.Product == nil {
		return true, nil
	}
	if rctx == nil || rctx.Profile == nil {
		return false, nil
	}

	ceilings := f.Ceilings
	if ceilings == nil {
		ceilings = DefaultCeilings()
	}
	ceiling, ok := ceilings[rctx.Profile.BudgetRange]
	if !ok || ceiling <= 0 {
		// 无上限档位（high）
		return false, nil
	}
	return c.Product.Price > ceiling, nil
}
