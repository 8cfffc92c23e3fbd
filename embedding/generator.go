package embedding

import (
	"context"

	"github.com/rushteam/prodkit/core"
)

// DefaultDim 是默认向量维度。
// 商品向量与用户向量必须共用同一维度，余弦相似度才恒有定义。
const DefaultDim = 128

// Generator 是向量生成策略接口。
//
// 实现契约（强制）：
//   - 确定性：同一输入必须产出同一向量
//   - 归一化：非退化输入产出单位向量
//   - 维度一致：EmbedProduct 与 EmbedUser 产出同一维度
//
// 实现：
//   - Simulated：哈希种子 + 三角展开的占位实现（默认）
//   - 生产环境可替换为真实 embedding 模型的客户端实现
type Generator interface {
	// EmbedProduct 生成商品向量。纯函数，可按商品 ID 缓存。
	EmbedProduct(ctx context.Context, p *core.Product) ([]float64, error)

	// EmbedUser 生成用户向量。依赖请求内交互历史，禁止缓存。
	EmbedUser(ctx context.Context, profile *core.UserProfile, interactions []core.Interaction) ([]float64, error)

	// Dim 返回向量维度
	Dim() int
}
