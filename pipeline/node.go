package pipeline

import (
	"context"

	"github.com/rushteam/prodkit/core"
)

// Kind 用于标记 Node 类型，方便观测/治理/编排（例如按阶段打点）。
type Kind string

const (
	KindRank        Kind = "rank"        // 评分阶段：对候选打分并生成解释
	KindReRank      Kind = "rerank"      // 重排阶段：多样性约束/排序截断
	KindFilter      Kind = "filter"      // 过滤阶段：剔除不符合硬约束的候选
	KindPostProcess Kind = "postprocess" // 后处理阶段：补充信息或最终修饰
)

// Node 是 Pipeline 的最小可扩展单元。
// 统一采用“输入 candidates -> 输出 candidates”的形态，
// 方便评分、过滤、重排等操作自由组合。
type Node interface {
	Name() string
	Kind() Kind

	Process(
		ctx context.Context,
		rctx *core.RecommendContext,
		candidates []*core.Candidate,
	) ([]*core.Candidate, error)
}
