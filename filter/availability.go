package filter

import (
	"context"

	"github.com/rushteam/prodkit/core"
)

// AvailabilityFilter 是国家可售性硬过滤器：
// 商品在用户所在国家不可售时剔除，无论其评分多高。
// 这是契约级约束（geo 子分的 0 只是软信号，不能依赖它兜底）。
type AvailabilityFilter struct{}

func (f *AvailabilityFilter) Name() string { return "filter.availability" }

func (f *AvailabilityFilter) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	c *core.Candidate,
) (bool, error) {
	if c == nil || c.Product == nil {
		return true, nil
	}
	if rctx == nil || rctx.Profile == nil || rctx.Profile.Country == "" {
		// 无国家信息时不做该约束
		return false, nil
	}
	return !c.Product.AvailableIn(rctx.Profile.Country), nil
}
