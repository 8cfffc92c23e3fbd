package scoring

import (
	"fmt"
	"os"

	"github.com/rushteam/prodkit/core"
	"gopkg.in/yaml.v3"
)

// Weights 是总分的因子权重配置。
//
// 设计要点：权重是命名的、可外部配置的常量，调权与消融实验
// 只改配置不改代码（支持 YAML 加载）。
type Weights struct {
	Semantic   float64 `yaml:"semantic" json:"semantic"`
	Behavioral float64 `yaml:"behavioral" json:"behavioral"`
	Contextual float64 `yaml:"contextual" json:"contextual"`
	Trend      float64 `yaml:"trend" json:"trend"`
}

// DefaultWeights 返回默认权重：0.3 / 0.25 / 0.25 / 0.2。
func DefaultWeights() Weights {
	return Weights{
		Semantic:   0.3,
		Behavioral: 0.25,
		Contextual: 0.25,
		Trend:      0.2,
	}
}

// Validate 检查权重合法性：全部非负且至少一项为正。
func (w Weights) Validate() error {
	if w.Semantic < 0 || w.Behavioral < 0 || w.Contextual < 0 || w.Trend < 0 {
		return core.NewDomainError(core.ModuleScoring, core.ErrorCodeInvalidInput, "weights: negative weight")
	}
	if w.Semantic+w.Behavioral+w.Contextual+w.Trend == 0 {
		return core.NewDomainError(core.ModuleScoring, core.ErrorCodeInvalidInput, "weights: all weights are zero")
	}
	return nil
}

// LoadWeights 从 YAML 文件加载权重配置。
func LoadWeights(path string) (Weights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Weights{}, fmt.Errorf("read weights: %w", err)
	}

	var w Weights
	if err := yaml.Unmarshal(data, &w); err != nil {
		return Weights{}, fmt.Errorf("parse weights: %w", err)
	}
	if err := w.Validate(); err != nil {
		return Weights{}, err
	}
	return w, nil
}
