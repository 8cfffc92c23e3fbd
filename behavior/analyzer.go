// Package behavior 把嘈杂的用户交互日志归纳为紧凑的行为画像：
// 分群（segment）、转化概率、偏好特征、时间分布，以及意图标签。
//
// 所有归纳都是请求级的纯内存计算：不读存储、不落盘、不跨请求共享。
package behavior

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rushteam/prodkit/core"
)

// 归纳公式中的固定参数。
const (
	// engagementCapSeconds 单次交互时长的归一化上限
	engagementCapSeconds = 300.0

	// recencyWindowHours 最近一次交互的线性衰减窗口；超窗记 0
	recencyWindowHours = 168.0

	// maxPreferredFeatures 偏好特征标签上限
	maxPreferredFeatures = 5

	// conversionFloor / conversionCeil 转化概率的强制边界
	conversionFloor = 0.1
	conversionCeil  = 0.95
)

// 转化概率各分量权重：engagement / recency / diversity。
const (
	engagementWeight = 0.5
	recencyWeight    = 0.3
	diversityWeight  = 0.2
)

// Analyzer 是行为归纳器。
//
// 输入契约：交互历史应为 newest-first；这里不信任调用方，
// 统一做防御性排序后再归纳（见 core.SortNewestFirst）。
type Analyzer struct {
	// Now 可注入时钟，便于测试；nil 时使用 time.Now
	Now func() time.Time
}

// NewAnalyzer 创建行为归纳器。
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

func (a *Analyzer) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// Analyze 把交互历史归纳为 BehavioralPattern。
// 空历史是正常输入：standard_user + 概率下限 + 空列表，不返回错误。
func (a *Analyzer) Analyze(_ context.Context, userID string, interactions []core.Interaction) (*core.BehavioralPattern, error) {
	ordered := core.SortNewestFirst(interactions)

	pattern := &core.BehavioralPattern{
		PatternID:        "pattern_" + userID,
		UserID:           userID,
		Segment:          core.SegmentStandardUser,
		InteractionCount: len(ordered),
	}

	if len(ordered) == 0 {
		pattern.ConversionProbability = conversionFloor
		return pattern, nil
	}

	pattern.Segment = segment(ordered)
	pattern.ConversionProbability = a.conversionProbability(ordered)
	pattern.PreferredFeatures = preferredFeatures(ordered)
	pattern.Timing = timingSummary(ordered)
	pattern.SequenceSummary = sequenceSummary(ordered)
	return pattern, nil
}

// segment 按优先级规则分群，命中即返回：
//  1. compare 次数 > 5            → analytical_buyer
//  2. view > 20 且 click < 2      → browser
//  3. click > 0.3 × view          → quick_decision_maker
//  4. 其余                        → standard_user
func segment(ordered []core.Interaction) core.UserSegment {
	var views, clicks, compares int
	for i := range ordered {
		switch ordered[i].Type {
		case core.InteractionView:
			views++
		case core.InteractionClick:
			clicks++
		case core.InteractionCompare:
			compares++
		}
	}

	switch {
	case compares > 5:
		return core.SegmentAnalyticalBuyer
	case views > 20 && clicks < 2:
		return core.SegmentBrowser
	case float64(clicks) > 0.3*float64(views):
		return core.SegmentQuickDecisionMaker
	default:
		return core.SegmentStandardUser
	}
}

// conversionProbability = clamp(0.5·engagement + 0.3·recency + 0.2·diversity, 0.1, 0.95)
func (a *Analyzer) conversionProbability(ordered []core.Interaction) float64 {
	var totalDuration float64
	for i := range ordered {
		totalDuration += ordered[i].Duration
	}
	avgDuration := totalDuration / float64(len(ordered))
	engagement := core.Clamp01(avgDuration / engagementCapSeconds)

	// recency：最近一次交互的年龄在 168h 窗口内线性衰减
	ageHours := a.now().Sub(ordered[0].Timestamp).Hours()
	recency := core.Clamp01(1 - ageHours/recencyWindowHours)

	p := engagement*engagementWeight + recency*recencyWeight + diversity(ordered)*diversityWeight
	return core.Clamp(p, conversionFloor, conversionCeil)
}

// diversity 由独立商品数与独立交互类型数共同决定，上限 1。
func diversity(ordered []core.Interaction) float64 {
	products := make(map[string]struct{})
	types := make(map[core.InteractionType]struct{})
	for i := range ordered {
		if ordered[i].ProductID != "" {
			products[ordered[i].ProductID] = struct{}{}
		}
		types[ordered[i].Type] = struct{}{}
	}
	d := float64(len(products))/10*0.6 + float64(len(types))/4*0.4
	return core.Clamp01(d)
}

// preferredFeatures 对 features_viewed 做频次排序，保留前 5，
// 同频按字典序，保证确定性。
func preferredFeatures(ordered []core.Interaction) []string {
	freq := make(map[string]int)
	for i := range ordered {
		for _, f := range ordered[i].FeaturesViewed() {
			freq[f]++
		}
	}
	if len(freq) == 0 {
		return nil
	}

	features := make([]string, 0, len(freq))
	for f := range freq {
		features = append(features, f)
	}
	sort.Slice(features, func(a, b int) bool {
		if freq[features[a]] != freq[features[b]] {
			return freq[features[a]] > freq[features[b]]
		}
		return features[a] < features[b]
	})

	if len(features) > maxPreferredFeatures {
		features = features[:maxPreferredFeatures]
	}
	return features
}

// timingSummary 统计交互的小时分布与季节分布。
func timingSummary(ordered []core.Interaction) core.TimingSummary {
	hourFreq := make(map[int]int)
	seasonFreq := make(map[string]int)
	for i := range ordered {
		ts := ordered[i].Timestamp
		hourFreq[ts.Hour()]++
		seasonFreq[SeasonOf(ts.Month())]++
	}

	// 峰值小时：频次超过小时均值的小时，升序输出
	var total int
	for _, c := range hourFreq {
		total += c
	}
	mean := float64(total) / float64(len(hourFreq))
	peaks := make([]int, 0, len(hourFreq))
	for h, c := range hourFreq {
		if float64(c) > mean {
			peaks = append(peaks, h)
		}
	}
	sort.Ints(peaks)

	return core.TimingSummary{
		PeakHours:       peaks,
		DominantSeasons: topSeasons(seasonFreq, 2),
	}
}

// seasonOrder 是季节的固定序，用作同频 tie-break。
var seasonOrder = []string{"winter", "spring", "summer", "autumn"}

// SeasonOf 是月份→季节映射：12–2 冬，3–5 春，6–8 夏，9–11 秋。
// contextual 包的时间因子使用同一映射。
func SeasonOf(m time.Month) string {
	switch m {
	case time.December, time.January, time.February:
		return "winter"
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	default:
		return "autumn"
	}
}

func topSeasons(freq map[string]int, n int) []string {
	seasons := make([]string, 0, len(freq))
	for _, s := range seasonOrder {
		if freq[s] > 0 {
			seasons = append(seasons, s)
		}
	}
	sort.SliceStable(seasons, func(a, b int) bool {
		return freq[seasons[a]] > freq[seasons[b]]
	})
	if len(seasons) > n {
		seasons = seasons[:n]
	}
	return seasons
}

// sequenceSummary 生成近期交互序列的人类可读摘要，如 "compare→view→view"。
func sequenceSummary(ordered []core.Interaction) string {
	n := len(ordered)
	if n > 5 {
		n = 5
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, string(ordered[i].Type))
	}
	return fmt.Sprintf("last_%d: %s", n, strings.Join(parts, "→"))
}
