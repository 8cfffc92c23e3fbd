package core

import "github.com/rushteam/prodkit/pkg/utils"

// Candidate 是推荐链路中的统一承载结构：商品、评分、解释、标签。
// Labels 用于 explain / 观测 / 策略驱动；Score 用于排序与过滤决策。
type Candidate struct {
	Product *Product

	// Score 在 rank 阶段写入；未打分时为 nil
	Score *RecommendationScore

	// Reason 是面向用户的一句话推荐理由，rank 阶段生成
	Reason string

	Labels map[string]utils.Label
}

// NewCandidate 把商品包装成候选项。
func NewCandidate(p *Product) *Candidate {
	return &Candidate{
		Product: p,
		Labels:  make(map[string]utils.Label),
	}
}

// Overall 返回总分；未打分返回 0。
func (c *Candidate) Overall() float64 {
	if c.Score == nil {
		return 0
	}
	return c.Score.Overall
}

// Category 返回商品类目；空商品返回空串。
func (c *Candidate) Category() string {
	if c.Product == nil {
		return ""
	}
	return c.Product.Category
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (c *Candidate) PutLabel(key string, lbl utils.Label) {
	if c.Labels == nil {
		c.Labels = make(map[string]utils.Label)
	}
	if old, ok := c.Labels[key]; ok {
		c.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	c.Labels[key] = lbl
}
