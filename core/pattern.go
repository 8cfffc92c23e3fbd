package core

// UserSegment 是行为分群标签。
type UserSegment string

const (
	SegmentAnalyticalBuyer    UserSegment = "analytical_buyer"
	SegmentBrowser            UserSegment = "browser"
	SegmentQuickDecisionMaker UserSegment = "quick_decision_maker"
	SegmentStandardUser       UserSegment = "standard_user"
)

// TimingSummary 是交互时间分布摘要。
type TimingSummary struct {
	// PeakHours 是交互频次高于小时均值的小时（0-23），升序
	PeakHours []int

	// DominantSeasons 是交互最集中的前两个季节（winter/spring/summer/autumn）
	DominantSeasons []string
}

// BehavioralPattern 是对用户交互历史的紧凑归纳。
//
// 设计要点：
//   - 请求级瞬态值：每次请求重新计算，绝不持久化
//   - ConversionProbability 恒定落在 [0.1, 0.95]
//   - PreferredFeatures 最多 5 个，按出现频次降序
type BehavioralPattern struct {
	PatternID string
	UserID    string
	Segment   UserSegment

	// SequenceSummary 是近期交互序列的简要描述（人类可读）
	SequenceSummary string

	ConversionProbability float64
	PreferredFeatures     []string
	Timing                TimingSummary

	// InteractionCount 是参与归纳的交互条数，用于置信度估计
	InteractionCount int
}
