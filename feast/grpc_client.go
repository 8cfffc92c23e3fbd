package feast

import (
	"context"
	"fmt"
	"strconv"

	feastsdk "github.com/feast-dev/feast/sdk/go"
	feasttypes "github.com/feast-dev/feast/sdk/go/protos/feast/types"
)

// GrpcClient 是基于官方 Feast Go SDK 的 gRPC 客户端实现。
//
// 工程特征：
//   - 实时性：优秀（gRPC 低延迟、连接复用）
//   - 可替换：实现 Client 接口，评分链路不感知具体实现
type GrpcClient struct {
	client *feastsdk.GrpcClient

	// Project 项目名称
	Project string

	// Endpoint 服务端点（用于信息展示）
	Endpoint string
}

// NewGrpcClient 创建一个基于官方 SDK 的 Feast gRPC 客户端。
// port 为 0 时使用默认 gRPC 端口 6565。
func NewGrpcClient(host string, port int, project string) (*GrpcClient, error) {
	if port == 0 {
		port = 6565
	}

	client, err := feastsdk.NewGrpcClient(host, port)
	if err != nil {
		return nil, fmt.Errorf("create feast grpc client: %w", err)
	}

	return &GrpcClient{
		client:   client,
		Project:  project,
		Endpoint: fmt.Sprintf("%s:%d", host, port),
	}, nil
}

// GetOnlineFeatures 获取在线特征（实现 Client 接口）。
func (c *GrpcClient) GetOnlineFeatures(ctx context.Context, req *GetOnlineFeaturesRequest) (*GetOnlineFeaturesResponse, error) {
	if len(req.Features) == 0 {
		return nil, fmt.Errorf("features are required")
	}
	if len(req.EntityRows) == 0 {
		return nil, fmt.Errorf("entity rows are required")
	}

	project := req.Project
	if project == "" {
		project = c.Project
	}
	if project == "" {
		return nil, fmt.Errorf("project is required")
	}

	// 转换实体行为 SDK 格式（Row 是 map[string]*types.Value）
	entityRows := make([]feastsdk.Row, len(req.EntityRows))
	for i, row := range req.EntityRows {
		entityRow := make(feastsdk.Row)
		for k, v := range row {
			switch val := v.(type) {
			case string:
				entityRow[k] = feastsdk.StrVal(val)
			case int:
				entityRow[k] = feastsdk.Int64Val(int64(val))
			case int32:
				entityRow[k] = feastsdk.Int64Val(int64(val))
			case int64:
				entityRow[k] = feastsdk.Int64Val(val)
			case float32:
				entityRow[k] = feastsdk.FloatVal(val)
			case float64:
				entityRow[k] = feastsdk.DoubleVal(val)
			case bool:
				entityRow[k] = feastsdk.BoolVal(val)
			case []byte:
				entityRow[k] = feastsdk.BytesVal(val)
			default:
				entityRow[k] = feastsdk.StrVal(fmt.Sprintf("%v", val))
			}
		}
		entityRows[i] = entityRow
	}

	sdkResp, err := c.client.GetOnlineFeatures(ctx, &feastsdk.OnlineFeaturesRequest{
		Features: req.Features,
		Entities: entityRows,
		Project:  project,
	})
	if err != nil {
		return nil, fmt.Errorf("feast get online features: %w", err)
	}

	rows := sdkResp.Rows()
	if len(rows) != len(req.EntityRows) {
		return nil, fmt.Errorf("response row count mismatch: expected %d, got %d", len(req.EntityRows), len(rows))
	}

	featureVectors := make([]FeatureVector, len(rows))
	for i := range rows {
		values := make(map[string]interface{})
		for _, featureName := range req.Features {
			if val, exists := rows[i][featureName]; exists {
				if converted := fromSDKValue(val); converted != nil {
					values[featureName] = converted
				}
			}
		}
		featureVectors[i] = FeatureVector{
			Values:    values,
			EntityRow: req.EntityRows[i],
		}
	}

	return &GetOnlineFeaturesResponse{FeatureVectors: featureVectors}, nil
}

// Close 关闭客户端连接（实现 Client 接口）。
// 官方 SDK 的连接由 gRPC 库管理，这里只释放引用。
func (c *GrpcClient) Close() error {
	c.client = nil
	return nil
}

// fromSDKValue 把 SDK 值转换为 interface{}，数值统一为 float64。
func fromSDKValue(val interface{}) interface{} {
	if val == nil {
		return nil
	}
	switch v := val.(type) {
	case *feasttypes.Value:
		switch v.Val.(type) {
		case *feasttypes.Value_StringVal:
			return v.GetStringVal()
		case *feasttypes.Value_Int32Val:
			return float64(v.GetInt32Val())
		case *feasttypes.Value_Int64Val:
			return float64(v.GetInt64Val())
		case *feasttypes.Value_FloatVal:
			return float64(v.GetFloatVal())
		case *feasttypes.Value_DoubleVal:
			return v.GetDoubleVal()
		case *feasttypes.Value_BoolVal:
			if v.GetBoolVal() {
				return float64(1)
			}
			return float64(0)
		case *feasttypes.Value_BytesVal:
			return string(v.GetBytesVal())
		}
		return nil
	case string:
		return v
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case float32:
		return float64(v)
	case float64:
		return v
	case bool:
		if v {
			return float64(1)
		}
		return float64(0)
	case []byte:
		return string(v)
	default:
		strVal := fmt.Sprintf("%v", val)
		if f, err := strconv.ParseFloat(strVal, 64); err == nil {
			return f
		}
		return strVal
	}
}

// 确保 GrpcClient 实现了 Client 接口
var _ Client = (*GrpcClient)(nil)
