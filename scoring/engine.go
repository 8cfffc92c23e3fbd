// Package scoring 把向量相似度、行为画像、上下文因子与市场趋势
// 合成为单个候选商品的评分与解释。
//
// 数值契约（强制）：
//   - 所有子分与总分 ∈ [0,1]
//   - 置信度 ∈ [0.1, 0.95]
//   - 商品可选字段缺失（价格/特征/评分）按中性值 0.5 参与计算，不报错
package scoring

import (
	"context"
	"math"
	"time"

	"github.com/rushteam/prodkit/core"
	"github.com/rushteam/prodkit/embedding"
)

// 行为匹配子分的分量权重。
const (
	behavioralBase       = 0.5
	featureOverlapWeight = 0.4
	segmentMatchWeight   = 0.3
	conversionWeight     = 0.3
)

// 上下文相关子分的分量权重与档位值。
const (
	contextualBase      = 0.5
	geoWeight           = 0.4
	temporalWeight      = 0.3
	economicWeight      = 0.3
	geoUnavailable      = 0.0
	geoLocalPreference  = 0.8
	geoAvailable        = 0.6
	temporalBase        = 0.5
	temporalSeasonBonus = 0.3
	temporalEventBonus  = 0.2
)

// 趋势子分的分量权重与新颖度窗口。
const (
	trendPopularityWeight = 0.4
	trendNoveltyWeight    = 0.3
	trendSectorWeight     = 0.3
	noveltyWindowDays     = 365.0
)

// 价格相关参数。
const (
	// highSensitivity / lowSensitivity 价格敏感度的分段阈值
	highSensitivity = 0.7
	lowSensitivity  = 0.3

	// priceScoreScale 价格分的归一化尺度
	priceScoreScale = 3000.0

	// budgetFitDecayRange 预算带外的线性衰减距离
	budgetFitDecayRange = 1000.0

	// DefaultHighPriceThreshold 高价风险提示阈值
	DefaultHighPriceThreshold = 2000.0

	// neutralScore 可选输入缺失时的中性值
	neutralScore = 0.5
)

// 置信度公式参数。
const (
	confidenceBase          = 0.5
	confidenceHistoryWeight = 0.3
	confidenceHistoryCap    = 20.0
	confidenceIntentBonus   = 0.2
	confidenceConvHigh      = 0.2
	confidenceConvLow       = 0.1
	confidenceConvThreshold = 0.3
	confidenceFloor         = 0.1
	confidenceCeil          = 0.95
)

// PriceBand 是预算档位对应的价格带；Max <= 0 表示无上限。
type PriceBand struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// DefaultBudgetBands 返回默认价格带：low 0–500，medium 500–1500，high 1500+。
func DefaultBudgetBands() map[core.BudgetRange]PriceBand {
	return map[core.BudgetRange]PriceBand{
		core.BudgetLow:    {Min: 0, Max: 500},
		core.BudgetMedium: {Min: 500, Max: 1500},
		core.BudgetHigh:   {Min: 1500, Max: 0},
	}
}

// DefaultSegmentFeatures 返回各分群偏好的规范特征标签表。
func DefaultSegmentFeatures() map[core.UserSegment][]string {
	return map[core.UserSegment][]string{
		core.SegmentAnalyticalBuyer:    {"detailed_specs", "comparison_tools", "technical_reviews"},
		core.SegmentBrowser:            {"visual_gallery", "quick_overview", "trending"},
		core.SegmentQuickDecisionMaker: {"one_click_buy", "fast_shipping", "deals"},
		core.SegmentStandardUser:       {"value_for_money", "popular_choice"},
	}
}

// Engine 是评分引擎。显式构造、无全局状态；
// 趋势估计器是可替换策略，测试用 FixedTrend 即可完全复现评分。
type Engine struct {
	Weights Weights

	// Trend 市场趋势估计器；nil 时按中性信号处理
	Trend TrendEstimator

	// SegmentFeatures 分群 → 规范特征标签；nil 时使用默认表
	SegmentFeatures map[core.UserSegment][]string

	// BudgetBands 预算档位 → 价格带；nil 时使用默认表
	BudgetBands map[core.BudgetRange]PriceBand

	// HighPriceThreshold 高价风险阈值；0 使用默认
	HighPriceThreshold float64

	// Now 可注入时钟（新颖度衰减），nil 时使用 time.Now
	Now func() time.Time
}

// NewEngine 创建带默认配置的评分引擎。
func NewEngine(weights Weights, trend TrendEstimator) *Engine {
	return &Engine{
		Weights:         weights,
		Trend:           trend,
		SegmentFeatures: DefaultSegmentFeatures(),
		BudgetBands:     DefaultBudgetBands(),
	}
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// Score 对单个候选商品评分。
// 所有输入均为只读；pattern / factors 可为 nil（退化为基线分）。
func (e *Engine) Score(
	ctx context.Context,
	userEmb, productEmb []float64,
	p *core.Product,
	pattern *core.BehavioralPattern,
	factors *core.ContextualFactors,
	intent []string,
) (*core.RecommendationScore, error) {
	if p == nil {
		return nil, core.NewDomainError(core.ModuleScoring, core.ErrorCodeInvalidInput, "score: product is required")
	}

	breakdown := core.ScoreBreakdown{
		SemanticSimilarity:  core.Clamp01(embedding.Cosine(userEmb, productEmb)),
		BehavioralMatch:     e.behavioralMatch(p, pattern),
		ContextualRelevance: e.contextualRelevance(p, factors),
		MarketTrend:         e.marketTrend(ctx, p),
	}

	w := e.Weights
	overall := core.Clamp01(
		w.Semantic*breakdown.SemanticSimilarity +
			w.Behavioral*breakdown.BehavioralMatch +
			w.Contextual*breakdown.ContextualRelevance +
			w.Trend*breakdown.MarketTrend,
	)

	return &core.RecommendationScore{
		Overall:     overall,
		Confidence:  e.confidence(pattern, intent),
		Breakdown:   breakdown,
		Explanation: e.explain(breakdown, p),
	}, nil
}

// behavioralMatch = clamp(0.5 + 0.4·特征重合 + 0.3·分群匹配 + 0.3·转化概率, ≤1)
func (e *Engine) behavioralMatch(p *core.Product, pattern *core.BehavioralPattern) float64 {
	convProb := confidenceFloor
	var preferred []string
	segment := core.SegmentStandardUser
	if pattern != nil {
		convProb = pattern.ConversionProbability
		preferred = pattern.PreferredFeatures
		segment = pattern.Segment
	}

	overlap := featureOverlap(p.Features, preferred)
	segMatch := e.segmentFeatureMatch(p, segment)

	return core.Clamp01(behavioralBase +
		featureOverlapWeight*overlap +
		segmentMatchWeight*segMatch +
		conversionWeight*convProb)
}

// featureOverlap 计算商品特征与偏好特征的重合度。
// 任一侧为空视为信息缺失，按中性值处理。
func featureOverlap(features, preferred []string) float64 {
	if len(features) == 0 || len(preferred) == 0 {
		return neutralScore
	}
	set := make(map[string]struct{}, len(features))
	for _, f := range features {
		set[f] = struct{}{}
	}
	var hits int
	for _, f := range preferred {
		if _, ok := set[f]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(preferred))
}

// segmentFeatureMatch 计算商品特征对分群规范标签的覆盖度。
func (e *Engine) segmentFeatureMatch(p *core.Product, segment core.UserSegment) float64 {
	if len(p.Features) == 0 {
		return neutralScore
	}
	table := e.SegmentFeatures
	if table == nil {
		table = DefaultSegmentFeatures()
	}
	canonical := table[segment]
	if len(canonical) == 0 {
		return neutralScore
	}
	var hits int
	for _, tag := range canonical {
		if p.HasFeature(tag) {
			hits++
		}
	}
	return float64(hits) / float64(len(canonical))
}

// contextualRelevance = clamp(0.5 + 0.4·geo + 0.3·temporal + 0.3·economic, ≤1)
func (e *Engine) contextualRelevance(p *core.Product, factors *core.ContextualFactors) float64 {
	if factors == nil {
		return core.Clamp01(contextualBase +
			geoWeight*geoAvailable +
			temporalWeight*temporalBase +
			economicWeight*neutralScore)
	}

	return core.Clamp01(contextualBase +
		geoWeight*geoRelevance(p, &factors.Geographic) +
		temporalWeight*temporalRelevance(p, &factors.Temporal) +
		economicWeight*e.economicRelevance(p, &factors.Economic))
}

// geoRelevance：不可售 0；命中本地偏好标签 0.8；可售 0.6。
// 注意不可售商品还会在 filter 阶段被硬过滤，这里的 0 只影响软评分。
func geoRelevance(p *core.Product, geo *core.GeographicFactors) float64 {
	if geo.Country != "" && !p.AvailableIn(geo.Country) {
		return geoUnavailable
	}
	for _, pref := range geo.LocalPreferences {
		if p.HasFeature(pref) {
			return geoLocalPreference
		}
	}
	return geoAvailable
}

// temporalRelevance = 0.5 + 0.3·季节命中 + 0.2·营销事件命中。
func temporalRelevance(p *core.Product, temporal *core.TemporalFactors) float64 {
	score := temporalBase
	for _, tag := range p.SeasonalTags {
		if tag == temporal.Season {
			score += temporalSeasonBonus
			break
		}
	}
	for _, tag := range p.SeasonalTags {
		for _, event := range temporal.ActiveEvents {
			if tag == event {
				score += temporalEventBonus
				return core.Clamp01(score)
			}
		}
	}
	return core.Clamp01(score)
}

// economicRelevance 是价格敏感度分与预算带匹配分的均值。
func (e *Engine) economicRelevance(p *core.Product, econ *core.EconomicFactors) float64 {
	return (priceSensitivityScore(p.Price, econ.PriceSensitivity) +
		e.budgetFit(p.Price, econ.BudgetCategory)) / 2
}

// priceSensitivityScore：高敏感用户价格越低分越高，低敏感用户相反，
// 中间档中性。价格缺失（<=0）按中性处理。
func priceSensitivityScore(price, sensitivity float64) float64 {
	if price <= 0 {
		return neutralScore
	}
	switch {
	case sensitivity > highSensitivity:
		return core.Clamp01(1 - price/priceScoreScale)
	case sensitivity < lowSensitivity:
		return core.Clamp01(price / priceScoreScale)
	default:
		return neutralScore
	}
}

// budgetFit：价格落在预算带内得 1.0，带外随距离线性衰减，下限 0。
func (e *Engine) budgetFit(price float64, budget core.BudgetRange) float64 {
	if price <= 0 {
		return neutralScore
	}
	bands := e.BudgetBands
	if bands == nil {
		bands = DefaultBudgetBands()
	}
	band, ok := bands[budget]
	if !ok {
		return neutralScore
	}

	var distance float64
	switch {
	case price < band.Min:
		distance = band.Min - price
	case band.Max > 0 && price > band.Max:
		distance = price - band.Max
	default:
		return 1.0
	}
	return math.Max(0, 1-distance/budgetFitDecayRange)
}

// marketTrend = 0.4·热度 + 0.3·新颖度 + 0.3·行情。
// 热度与行情来自可插拔估计器；新颖度由创建时间做 365 天线性衰减。
func (e *Engine) marketTrend(ctx context.Context, p *core.Product) float64 {
	signal := NeutralSignal()
	if e.Trend != nil {
		if s, err := e.Trend.Estimate(ctx, p); err == nil {
			signal = s
		}
	}

	novelty := neutralScore
	if !p.CreatedAt.IsZero() {
		ageDays := e.now().Sub(p.CreatedAt).Hours() / 24
		novelty = core.Clamp01(1 - ageDays/noveltyWindowDays)
	}

	return core.Clamp01(trendPopularityWeight*core.Clamp01(signal.Popularity) +
		trendNoveltyWeight*novelty +
		trendSectorWeight*core.Clamp01(signal.Sector))
}

// confidence = clamp(0.5 + 0.3·min(1, n/20) + 0.2·[有意图] + 转化加成, 0.1, 0.95)
func (e *Engine) confidence(pattern *core.BehavioralPattern, intent []string) float64 {
	var n int
	convProb := confidenceFloor
	if pattern != nil {
		n = pattern.InteractionCount
		convProb = pattern.ConversionProbability
	}

	c := confidenceBase + confidenceHistoryWeight*math.Min(1, float64(n)/confidenceHistoryCap)
	if len(intent) > 0 {
		c += confidenceIntentBonus
	}
	if convProb > confidenceConvThreshold {
		c += confidenceConvHigh
	} else {
		c += confidenceConvLow
	}
	return core.Clamp(c, confidenceFloor, confidenceCeil)
}
