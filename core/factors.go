package core

// GeographicFactors 是地理维度上下文。
type GeographicFactors struct {
	Country string
	Region  string

	// MarketMaturity 市场成熟度（emerging / developing / mature）
	MarketMaturity string

	// LocalPreferences 本地偏好特征标签
	LocalPreferences []string
}

// TemporalFactors 是时间维度上下文，由挂钟时间推导。
type TemporalFactors struct {
	Hour    int
	Weekday string

	// Season 与 behavior 包使用同一套月份→季节映射
	Season string

	// ActiveEvents 当前生效的营销事件标签（如 "holiday_season"）
	ActiveEvents []string
}

// EconomicFactors 是经济维度上下文。
type EconomicFactors struct {
	// PriceSensitivity 价格敏感度 ∈ [0,1]，由预算档位映射
	PriceSensitivity float64

	BudgetCategory BudgetRange

	// MarketCondition 市场状况标签（当前为常量）
	MarketCondition string
}

// ContextualFactors 是一次推荐请求的完整上下文因子。
// 请求级瞬态值：每次请求重新解析，绝不持久化。
type ContextualFactors struct {
	Geographic GeographicFactors
	Temporal   TemporalFactors
	Economic   EconomicFactors
}
