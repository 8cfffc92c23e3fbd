package embedding

import "math"

// Cosine 计算余弦相似度：点积除以模长之积，结果 ∈ [-1, 1]。
//
// 边界约定（强制）：
//   - 任一向量模长为 0 → 返回 0，绝不产生 NaN
//   - 维度不一致 → 返回 0（生成器契约保证正常情况下维度一致）
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
