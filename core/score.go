package core

// ScoreBreakdown 是总分的因子拆解，每个子分恒定落在 [0,1]。
type ScoreBreakdown struct {
	SemanticSimilarity  float64
	BehavioralMatch     float64
	ContextualRelevance float64
	MarketTrend         float64
}

// Explanation 是基于规则分桶生成的人类可读解释。
type Explanation struct {
	// PrimaryFactors 子分 > 0.7 的因子描述
	PrimaryFactors []string

	// SecondaryFactors 子分 ∈ [0.6, 0.7] 的因子描述
	SecondaryFactors []string

	// RiskFactors 子分 < 0.4 或高价风险的因子描述
	RiskFactors []string
}

// RecommendationScore 是单个候选商品的完整评分结果。
//
// 数值契约：
//   - Overall 与所有子分 ∈ [0,1]
//   - Confidence ∈ [0.1, 0.95]
type RecommendationScore struct {
	Overall     float64
	Confidence  float64
	Breakdown   ScoreBreakdown
	Explanation Explanation
}

// Clamp 把 v 限制在 [lo, hi]。
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 把 v 限制在 [0,1]。
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}
