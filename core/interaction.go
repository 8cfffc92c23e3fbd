package core

import (
	"sort"
	"time"
)

// InteractionType 是用户交互类型。
type InteractionType string

const (
	InteractionView    InteractionType = "view"
	InteractionClick   InteractionType = "click"
	InteractionCompare InteractionType = "compare"
	InteractionSearch  InteractionType = "search"
)

// Interaction 是一条用户交互记录（浏览/点击/对比等）。
// 由外部日志服务提供，核心只做内存内归纳，不回写。
type Interaction struct {
	Type        InteractionType
	ProductID   string
	ProductType string

	// Duration 是交互时长（秒）
	Duration float64

	Timestamp time.Time

	// Metadata 是交互附加信息；约定 key "features_viewed" 为 []string，
	// key "page_type" 为 string（用于导航模式识别）
	Metadata map[string]any
}

// FeaturesViewed 从 Metadata 中取出浏览过的特征标签，缺失返回 nil。
func (i *Interaction) FeaturesViewed() []string {
	if i.Metadata == nil {
		return nil
	}
	switch v := i.Metadata["features_viewed"].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// PageType 从 Metadata 中取出页面类型，缺失返回空串。
func (i *Interaction) PageType() string {
	if i.Metadata == nil {
		return ""
	}
	if s, ok := i.Metadata["page_type"].(string); ok {
		return s
	}
	return ""
}

// SortNewestFirst 返回按时间戳从新到旧排序的副本。
// 契约上要求调用方传入 newest-first 序列，但这里不信任调用方：
// 统一做防御性排序，排序稳定，保证同一输入产生同一输出。
func SortNewestFirst(interactions []Interaction) []Interaction {
	out := make([]Interaction, len(interactions))
	copy(out, interactions)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Timestamp.After(out[b].Timestamp)
	})
	return out
}
