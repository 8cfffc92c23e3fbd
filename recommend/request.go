package recommend

import "github.com/rushteam/prodkit/core"

// DefaultLimit 是结果条数的默认上限。
const DefaultLimit = 5

// Request 是一次推荐请求的完整输入。
// 所有数据由调用方传入，核心不做任何存储与网络读取。
type Request struct {
	UserID string

	// Profile 用户画像，必填（BudgetRange 与 Country 为必填字段）
	Profile *core.UserProfile

	// Interactions 交互历史，约定 newest-first；入口处会做防御性排序。
	// 空历史是正常输入（冷启动），不报错
	Interactions []core.Interaction

	// Candidates 候选商品池，由外部目录服务提供；空池返回空结果
	Candidates []*core.Product

	// Limit 结果条数上限；0 取 DefaultLimit，负数是校验错误
	Limit int

	// Context 可选的调用场景说明（如 "homepage", "comparison_page"）
	Context string
}

// Response 是推荐结果：按总分降序的候选列表，以及本次请求的派生信息。
type Response struct {
	// Items 每项都带 RecommendationScore 与一句话推荐理由
	Items []*core.Candidate

	// Pattern / Factors / Intent 是本次请求的瞬态派生值，仅供展示与调试
	Pattern *core.BehavioralPattern
	Factors *core.ContextualFactors
	Intent  []string
}

// validate 做结构性校验：纯函数输入问题立即报错，不重试。
func (r *Request) validate() error {
	if r == nil {
		return core.NewDomainError(core.ModuleRecommend, core.ErrorCodeInvalidInput, "request is required")
	}
	if r.Limit < 0 {
		return core.NewDomainError(core.ModuleRecommend, core.ErrorCodeInvalidInput, "limit must be >= 0")
	}
	return r.Profile.Validate()
}

// limit 返回生效的结果条数上限。
func (r *Request) limit() int {
	if r.Limit == 0 {
		return DefaultLimit
	}
	return r.Limit
}
