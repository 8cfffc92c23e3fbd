package core

// BudgetRange 是用户预算档位。
type BudgetRange string

const (
	BudgetLow    BudgetRange = "low"
	BudgetMedium BudgetRange = "medium"
	BudgetHigh   BudgetRange = "high"
)

// Valid 检查预算档位是否为已知值。
func (b BudgetRange) Valid() bool {
	switch b {
	case BudgetLow, BudgetMedium, BudgetHigh:
		return true
	}
	return false
}

// UserProfile 是用户画像的核心抽象。
//
// 一句话定义：用户画像 = 推荐请求的"静态输入"，由调用方每次请求传入。
//
// 设计要点：
//   - 请求级数据：核心不持久化画像，也不在请求之间共享
//   - 必填字段：BudgetRange 与 Country（缺失视为结构性非法输入）
//   - 行为信号不在这里：交互历史单独传入，由 behavior 包归纳
type UserProfile struct {
	// BudgetRange 预算档位（low / medium / high），必填
	BudgetRange BudgetRange

	// RiskTolerance 风险偏好（如 conservative / moderate / aggressive）
	RiskTolerance string

	// PreferredType 偏好的商品类型（如 "laptop"）
	PreferredType string

	// Country 用户所在国家（ISO 代码），必填，驱动可售性硬过滤
	Country string
}

// Validate 检查画像必填字段。结构性缺失返回 INVALID_INPUT 领域错误。
func (p *UserProfile) Validate() error {
	if p == nil {
		return NewDomainError(ModuleRecommend, ErrorCodeInvalidInput, "profile is required")
	}
	if !p.BudgetRange.Valid() {
		return NewDomainError(ModuleRecommend, ErrorCodeInvalidInput, "profile: unknown budget range "+string(p.BudgetRange))
	}
	if p.Country == "" {
		return NewDomainError(ModuleRecommend, ErrorCodeInvalidInput, "profile: country is required")
	}
	return nil
}
