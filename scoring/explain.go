package scoring

import (
	"fmt"
	"strings"

	"github.com/rushteam/prodkit/core"
)

// 解释分桶阈值：>0.7 主因子，[0.6,0.7] 次因子，<0.4 风险因子。
const (
	primaryThreshold   = 0.7
	secondaryThreshold = 0.6
	riskThreshold      = 0.4
)

// factorText 是各因子在不同档位下的人类可读描述。
var factorText = map[string][3]string{
	"semantic": {
		"closely matches your profile and browsing history",
		"reasonably similar to products you looked at",
		"little similarity to products you looked at",
	},
	"behavioral": {
		"fits your comparison and browsing habits well",
		"partly fits your browsing habits",
		"does not fit your usual browsing habits",
	},
	"contextual": {
		"well suited to your location, season and budget",
		"acceptable for your location and budget",
		"poor fit for your location or budget",
	},
	"trend": {
		"popular and trending in its category right now",
		"moderately popular in its category",
		"not currently in demand in its category",
	},
}

// explain 把 breakdown 按规则分桶，渲染为人类可读解释。
func (e *Engine) explain(b core.ScoreBreakdown, p *core.Product) core.Explanation {
	var exp core.Explanation

	factors := []struct {
		name  string
		score float64
	}{
		{"semantic", b.SemanticSimilarity},
		{"behavioral", b.BehavioralMatch},
		{"contextual", b.ContextualRelevance},
		{"trend", b.MarketTrend},
	}

	for _, f := range factors {
		text := factorText[f.name]
		switch {
		case f.score > primaryThreshold:
			exp.PrimaryFactors = append(exp.PrimaryFactors, text[0])
		case f.score >= secondaryThreshold:
			exp.SecondaryFactors = append(exp.SecondaryFactors, text[1])
		case f.score < riskThreshold:
			exp.RiskFactors = append(exp.RiskFactors, text[2])
		}
	}

	threshold := e.HighPriceThreshold
	if threshold <= 0 {
		threshold = DefaultHighPriceThreshold
	}
	if p.Price > threshold {
		exp.RiskFactors = append(exp.RiskFactors,
			fmt.Sprintf("price %.0f %s is on the high end", p.Price, p.Currency))
	}

	return exp
}

// Reason 从解释中生成一句话推荐理由，rank 阶段写到候选上。
func Reason(score *core.RecommendationScore) string {
	if score == nil {
		return ""
	}
	if len(score.Explanation.PrimaryFactors) > 0 {
		return strings.Join(score.Explanation.PrimaryFactors, "; ")
	}
	if len(score.Explanation.SecondaryFactors) > 0 {
		return strings.Join(score.Explanation.SecondaryFactors, "; ")
	}
	return "balanced overall fit for your profile"
}
