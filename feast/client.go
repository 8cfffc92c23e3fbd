// Package feast 封装 Feast Feature Store 的在线特征读取，
// 为 scoring.AnalyticsTrend 提供商品热度/行情信号。
//
// 设计原则（DDD）：
//   - 领域层：Client 接口，评分链路只依赖它
//   - 基础设施层：GrpcClient 基于官方 SDK 实现
//
// 推荐核心自身不做网络 I/O；feast 客户端只被生产环境的
// AnalyticsTrend 策略持有，测试与开发环境使用 Simulated/Fixed 策略。
package feast

import "context"

// Client 是 Feast 在线特征读取的客户端接口。
type Client interface {
	// GetOnlineFeatures 获取在线特征（用于实时评分）
	//
	// 参数示例：
	//   - Features: ["product_stats:popularity", "product_stats:sector_trend"]
	//   - EntityRows: [{"product_id": "p_1001"}]
	GetOnlineFeatures(ctx context.Context, req *GetOnlineFeaturesRequest) (*GetOnlineFeaturesResponse, error)

	// Close 关闭客户端连接
	Close() error
}

// GetOnlineFeaturesRequest 获取在线特征请求。
type GetOnlineFeaturesRequest struct {
	// Features 特征名称列表，例如 ["product_stats:popularity"]
	Features []string

	// EntityRows 实体行，例如 [{"product_id": "p_1001"}]
	EntityRows []map[string]interface{}

	// Project 项目名称（可选，默认取客户端配置）
	Project string
}

// FeatureVector 是单个实体行的特征向量。
type FeatureVector struct {
	// Values key 为特征名称，value 为特征值
	Values map[string]interface{}

	// EntityRow 对应的实体行
	EntityRow map[string]interface{}
}

// GetOnlineFeaturesResponse 获取在线特征响应。
type GetOnlineFeaturesResponse struct {
	FeatureVectors []FeatureVector
}

// Float64 按特征名取数值特征；缺失或非数值返回 (0, false)。
func (v *FeatureVector) Float64(name string) (float64, bool) {
	raw, ok := v.Values[name]
	if !ok {
		return 0, false
	}
	switch val := raw.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int64:
		return float64(val), true
	case int:
		return float64(val), true
	}
	return 0, false
}
