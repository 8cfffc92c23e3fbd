package behavior

import (
	"sort"

	"github.com/rushteam/prodkit/core"
)

// 意图标签中的固定阈值。
const (
	// navWindow 导航模式识别只看最近 N 条交互的页面类型
	navWindow = 5

	// highEngagementSeconds / mediumEngagementSeconds 平均时长阈值
	highEngagementSeconds   = 180.0
	mediumEngagementSeconds = 60.0

	// maxInterestLabels interested_in_<type> 标签上限
	maxInterestLabels = 3
)

// PredictIntent 从交互历史预测意图标签，由三类信号拼成：
//   - 导航模式：最近 5 条页面类型 → research_focused / browsing_heavy / goal_oriented
//   - 投入程度：平均时长 → high/medium/low_engagement
//   - 兴趣类型：出现最多的商品类型 → 最多 3 个 interested_in_<type>
//
// 空历史返回空列表，不返回错误。
func (a *Analyzer) PredictIntent(interactions []core.Interaction) []string {
	ordered := core.SortNewestFirst(interactions)
	if len(ordered) == 0 {
		return nil
	}

	intent := make([]string, 0, 2+maxInterestLabels)
	intent = append(intent, navigationLabel(ordered))
	intent = append(intent, engagementLabel(ordered))
	intent = append(intent, interestLabels(ordered)...)
	return intent
}

// navigationLabel 识别最近 navWindow 条交互的页面类型构成：
//   - 对比/详情/评测类页面 ≥ 2 → research_focused
//   - 列表/搜索/首页类页面 ≥ 3 → browsing_heavy
//   - 其余 → goal_oriented
func navigationLabel(ordered []core.Interaction) string {
	n := len(ordered)
	if n > navWindow {
		n = navWindow
	}

	var research, browsing int
	for i := 0; i < n; i++ {
		switch ordered[i].PageType() {
		case "comparison", "product_detail", "review", "specs":
			research++
		case "category", "search", "home", "list":
			browsing++
		}
	}

	switch {
	case research >= 2:
		return "research_focused"
	case browsing >= 3:
		return "browsing_heavy"
	default:
		return "goal_oriented"
	}
}

func engagementLabel(ordered []core.Interaction) string {
	var total float64
	for i := range ordered {
		total += ordered[i].Duration
	}
	avg := total / float64(len(ordered))

	switch {
	case avg > highEngagementSeconds:
		return "high_engagement"
	case avg > mediumEngagementSeconds:
		return "medium_engagement"
	default:
		return "low_engagement"
	}
}

// interestLabels 取出现频次最高的商品类型，同频按字典序。
func interestLabels(ordered []core.Interaction) []string {
	freq := make(map[string]int)
	for i := range ordered {
		if t := ordered[i].ProductType; t != "" {
			freq[t]++
		}
	}
	if len(freq) == 0 {
		return nil
	}

	types := make([]string, 0, len(freq))
	for t := range freq {
		types = append(types, t)
	}
	sort.Slice(types, func(a, b int) bool {
		if freq[types[a]] != freq[types[b]] {
			return freq[types[a]] > freq[types[b]]
		}
		return types[a] < types[b]
	})
	if len(types) > maxInterestLabels {
		types = types[:maxInterestLabels]
	}

	labels := make([]string, 0, len(types))
	for _, t := range types {
		labels = append(labels, "interested_in_"+t)
	}
	return labels
}
