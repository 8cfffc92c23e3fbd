package core

import "github.com/rushteam/prodkit/pkg/utils"

// RecommendContext 承载一次推荐请求的用户侧信息，贯穿整个 Pipeline 透传。
//
// Pattern / Factors / Intent 在请求入口处各计算一次（而非每个候选一次），
// 之后以只读方式被各 Node 共享。
type RecommendContext struct {
	UserID string

	// Profile 是调用方传入的用户画像
	Profile *UserProfile

	// Interactions 是 newest-first 的交互历史（入口处已做防御性排序）
	Interactions []Interaction

	// UserEmbedding 在入口处计算一次；用户向量依赖请求内历史，不缓存
	UserEmbedding []float64

	// Pattern 是行为归纳结果，请求级瞬态值
	Pattern *BehavioralPattern

	// Factors 是上下文因子，请求级瞬态值
	Factors *ContextualFactors

	// Intent 是意图标签（research_focused / interested_in_laptop 等）
	Intent []string

	// Labels 是用户级标签，可驱动整个 Pipeline 行为
	Labels map[string]utils.Label

	// Params 请求级上下文参数（如调用场景、AB 桶等）
	Params map[string]any
}

// PutLabel 写入用户级 Label。
func (rctx *RecommendContext) PutLabel(key string, lbl utils.Label) {
	if rctx.Labels == nil {
		rctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := rctx.Labels[key]; ok {
		rctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	rctx.Labels[key] = lbl
}

// GetLabel 获取用户级 Label。
func (rctx *RecommendContext) GetLabel(key string) (utils.Label, bool) {
	if rctx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := rctx.Labels[key]
	return lbl, ok
}
