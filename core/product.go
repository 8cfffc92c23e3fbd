package core

import "time"

// Product 是比价平台的商品快照：一旦进入推荐核心即视为只读。
// 候选商品由外部目录服务提供，核心不做任何存储与网络操作。
type Product struct {
	ID       string
	Name     string
	Brand    string
	Category string
	Price    float64
	Currency string

	// Features 是商品特征标签集合（如 "detailed_specs", "eco_friendly"）
	Features []string

	// Countries 是商品可售国家列表，作为硬过滤条件使用
	Countries []string

	// SeasonalTags 是商品的季节/营销事件标签（如 "winter", "back_to_school"）
	SeasonalTags []string

	// CreatedAt 用于新颖度（novelty）衰减计算
	CreatedAt time.Time

	// Rating 可选；缺失时相关子分按中性值 0.5 处理
	Rating *float64
}

// HasFeature 检查商品是否带有某个特征标签。
func (p *Product) HasFeature(tag string) bool {
	for _, f := range p.Features {
		if f == tag {
			return true
		}
	}
	return false
}

// AvailableIn 检查商品在指定国家是否可售。
func (p *Product) AvailableIn(country string) bool {
	for _, c := range p.Countries {
		if c == country {
			return true
		}
	}
	return false
}
