package embedding

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"sort"
	"strings"

	"github.com/rushteam/prodkit/core"
)

// Simulated 是占位向量生成器：把实体的复合文本描述哈希成种子，
// 再用三角函数展开生成定长向量并做 L2 归一化。
//
// 它不是真实的 embedding 模型，但满足 Generator 的全部契约
// （确定性、归一化、维度一致），语义相近的文本描述会产出相近的向量种子，
// 足以支撑评分链路的开发、测试与回放。
type Simulated struct {
	// EmbeddingDim 向量维度，0 表示 DefaultDim
	EmbeddingDim int
}

// NewSimulated 创建占位生成器。
func NewSimulated(dim int) *Simulated {
	if dim <= 0 {
		dim = DefaultDim
	}
	return &Simulated{EmbeddingDim: dim}
}

func (g *Simulated) Dim() int {
	if g.EmbeddingDim <= 0 {
		return DefaultDim
	}
	return g.EmbeddingDim
}

// EmbedProduct 生成商品向量：name/brand/category/price/features 拼接描述。
func (g *Simulated) EmbedProduct(_ context.Context, p *core.Product) ([]float64, error) {
	if p == nil {
		return make([]float64, g.Dim()), nil
	}
	features := append([]string(nil), p.Features...)
	sort.Strings(features)

	desc := strings.ToLower(strings.Join([]string{
		p.Name,
		p.Brand,
		p.Category,
		fmt.Sprintf("price_%.0f", p.Price),
		strings.Join(features, " "),
	}, " "))
	return g.fromDescription(desc), nil
}

// EmbedUser 生成用户向量：budget/risk/type + 行为偏好标签拼接描述。
// 行为标签来自交互历史（浏览过的特征、商品类型），因此依赖请求内状态。
func (g *Simulated) EmbedUser(_ context.Context, profile *core.UserProfile, interactions []core.Interaction) ([]float64, error) {
	parts := make([]string, 0, 8)
	if profile != nil {
		parts = append(parts,
			"budget_"+string(profile.BudgetRange),
			"risk_"+profile.RiskTolerance,
			"type_"+profile.PreferredType,
		)
	}
	parts = append(parts, behavioralTags(interactions)...)

	desc := strings.ToLower(strings.Join(parts, " "))
	return g.fromDescription(desc), nil
}

// behavioralTags 从交互历史提炼稳定有序的标签序列。
func behavioralTags(interactions []core.Interaction) []string {
	seen := make(map[string]int)
	types := make(map[string]int)
	for i := range interactions {
		it := &interactions[i]
		for _, f := range it.FeaturesViewed() {
			seen[f]++
		}
		if it.ProductType != "" {
			types[it.ProductType]++
		}
	}

	tags := make([]string, 0, len(seen)+len(types))
	for f := range seen {
		tags = append(tags, "feature_"+f)
	}
	for t := range types {
		tags = append(tags, "viewed_"+t)
	}
	// map 遍历无序，排序保证确定性
	sort.Strings(tags)
	return tags
}

// fromDescription 由描述文本确定性地展开出单位向量。
func (g *Simulated) fromDescription(desc string) []float64 {
	dim := g.Dim()
	vec := make([]float64, dim)
	if desc == "" {
		// 退化输入：返回零向量，相似度按定义为 0
		return vec
	}

	h := fnv.New64a()
	h.Write([]byte(desc))
	seed := h.Sum64()

	for i := 0; i < dim; i++ {
		// 三角展开：种子与维度下标共同决定每个分量，确定且平滑
		x := float64(seed%100000)/100000 + float64(i)*0.173
		vec[i] = math.Sin(x) * math.Cos(x*0.5)
	}
	return l2Normalize(vec)
}

// l2Normalize 做 L2 归一化；零向量原样返回（定义上的退化情形）。
func l2Normalize(vec []float64) []float64 {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return vec
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}
