package scoring

import (
	"context"
	"math/rand"
	"sync"

	"github.com/rushteam/prodkit/core"
)

// TrendSignal 是市场趋势估计器的输出，两个信号都 ∈ [0,1]。
type TrendSignal struct {
	// Popularity 商品热度
	Popularity float64

	// Sector 商品所在品类的行情趋势
	Sector float64
}

// TrendEstimator 是市场趋势信号的可插拔策略。
//
// 评分引擎只消费 TrendSignal，不关心来源，因此：
//   - SimulatedTrend：可注入种子的伪随机占位实现（默认）
//   - FixedTrend：固定值，用于测试与消融
//   - AnalyticsTrend：feast 在线特征库供数的生产实现
//
// 新颖度（novelty）不在这里：它由商品创建时间确定性推导，引擎自算。
type TrendEstimator interface {
	Name() string
	Estimate(ctx context.Context, p *core.Product) (TrendSignal, error)
}

// SimulatedTrend 是占位趋势估计器：伪随机生成热度与行情信号。
// 通过固定种子可以完整复现一次评分序列。
type SimulatedTrend struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedTrend 创建带种子的占位估计器。
func NewSimulatedTrend(seed int64) *SimulatedTrend {
	return &SimulatedTrend{rng: rand.New(rand.NewSource(seed))}
}

func (t *SimulatedTrend) Name() string { return "trend.simulated" }

func (t *SimulatedTrend) Estimate(_ context.Context, _ *core.Product) (TrendSignal, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return TrendSignal{
		Popularity: t.rng.Float64(),
		Sector:     t.rng.Float64(),
	}, nil
}

// FixedTrend 返回固定信号，用于可复现测试与权重消融。
type FixedTrend struct {
	Signal TrendSignal
}

func (t *FixedTrend) Name() string { return "trend.fixed" }

func (t *FixedTrend) Estimate(_ context.Context, _ *core.Product) (TrendSignal, error) {
	return t.Signal, nil
}

// NeutralSignal 是信号缺失时的中性兜底值。
func NeutralSignal() TrendSignal {
	return TrendSignal{Popularity: 0.5, Sector: 0.5}
}
