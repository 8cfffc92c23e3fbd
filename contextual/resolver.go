// Package contextual 为一次推荐请求解析地理、时间、经济三类上下文因子。
//
// 因子是请求级瞬态值：每次请求重新计算，绝不持久化。
// 国家可售性在 filter 阶段是硬过滤条件，这里只产出软评分所需的因子。
package contextual

import (
	"context"
	"strings"
	"time"

	"github.com/rushteam/prodkit/behavior"
	"github.com/rushteam/prodkit/core"
)

// 预算档位 → 价格敏感度映射。
const (
	sensitivityLowBudget    = 0.9
	sensitivityMediumBudget = 0.5
	sensitivityHighBudget   = 0.2
)

// marketConditionStable 是当前的市场状况常量标签。
// TODO(market): 接入行情信号源后改为动态值，见 scoring.AnalyticsTrend 的接法。
const marketConditionStable = "stable"

// Resolver 是上下文因子解析器。
type Resolver struct {
	// Markets 国家市场表；nil 时使用内建表
	Markets MarketTable

	// Events 营销事件日历；nil 时使用内建日历
	Events []MarketEvent

	// Now 可注入时钟，便于测试；nil 时使用 time.Now
	Now func() time.Time
}

// NewResolver 创建带内建市场表与事件日历的解析器。
func NewResolver() *Resolver {
	return &Resolver{
		Markets: DefaultMarketTable(),
		Events:  DefaultEventCalendar(),
	}
}

func (r *Resolver) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Resolve 解析一次请求的全部上下文因子。
// 未知国家命中市场表的 default 条目，不返回错误。
func (r *Resolver) Resolve(_ context.Context, _ string, profile *core.UserProfile) (*core.ContextualFactors, error) {
	markets := r.Markets
	if markets == nil {
		markets = DefaultMarketTable()
	}

	country := ""
	budget := core.BudgetMedium
	if profile != nil {
		country = profile.Country
		if profile.BudgetRange.Valid() {
			budget = profile.BudgetRange
		}
	}

	entry := markets.Lookup(country)
	now := r.now()

	return &core.ContextualFactors{
		Geographic: core.GeographicFactors{
			Country:          country,
			Region:           entry.Region,
			MarketMaturity:   entry.Maturity,
			LocalPreferences: entry.LocalPreferences,
		},
		Temporal: core.TemporalFactors{
			Hour:         now.Hour(),
			Weekday:      strings.ToLower(now.Weekday().String()),
			Season:       behavior.SeasonOf(now.Month()),
			ActiveEvents: r.activeEvents(now.Month()),
		},
		Economic: core.EconomicFactors{
			PriceSensitivity: priceSensitivity(budget),
			BudgetCategory:   budget,
			MarketCondition:  marketConditionStable,
		},
	}, nil
}

func (r *Resolver) activeEvents(m time.Month) []string {
	events := r.Events
	if events == nil {
		events = DefaultEventCalendar()
	}
	var tags []string
	for _, e := range events {
		if e.Active(m) {
			tags = append(tags, e.Tag)
		}
	}
	return tags
}

// priceSensitivity 由预算档位映射：low→0.9, medium→0.5, high→0.2。
func priceSensitivity(budget core.BudgetRange) float64 {
	switch budget {
	case core.BudgetLow:
		return sensitivityLowBudget
	case core.BudgetHigh:
		return sensitivityHighBudget
	default:
		return sensitivityMediumBudget
	}
}
