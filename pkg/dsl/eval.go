package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/prodkit/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义变量
func initCELEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		cel.Variable("item", cel.DynType),
		cel.Variable("label", cel.DynType),
		cel.Variable("user", cel.DynType),
	)
	return env, err
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	var err error
	celEnvOnce.Do(func() {
		celEnv, err = initCELEnv()
	})
	return celEnv, err
}

// Eval 是候选规则的解释器，使用 CEL (Common Expression Language) 实现。
// 运营可以用表达式配置硬排除规则，不用改代码。
//
// 表达式语法（CEL 标准语法）：
//   - 数值：item.price > 3000 / item.score >= 0.5
//   - 逻辑：item.category == "accessories" && item.price > 500
//   - 标签：label.filtered == "true" / label.score_breakdown.contains("sem=0")
//   - 用户侧：user.budget == "low" / user.country == "US"
//
// 示例：
//   - `item.price > 3000 && user.budget == "low"` → 低预算用户排除高价商品
//   - `item.brand == "acme"` → 临时下架某品牌
type Eval struct {
	candidate *core.Candidate
	rctx      *core.RecommendContext
	env       *cel.Env
}

// NewEval 创建一个新的规则解释器。
func NewEval(candidate *core.Candidate, rctx *core.RecommendContext) *Eval {
	env, _ := getCELEnv()
	return &Eval{
		candidate: candidate,
		rctx:      rctx,
		env:       env,
	}
}

// Evaluate 解析并执行规则表达式，返回布尔结果。
// 空表达式恒为 true。
func (e *Eval) Evaluate(expr string) (bool, error) {
	if expr == "" {
		return true, nil
	}
	if e.env == nil {
		return false, fmt.Errorf("cel env not initialized")
	}

	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return false, fmt.Errorf("compile error: %v", issues.Err())
	}

	prg, err := e.env.Program(ast)
	if err != nil {
		return false, fmt.Errorf("program error: %v", err)
	}

	val, _, err := prg.Eval(e.buildInput())
	if err != nil {
		return false, fmt.Errorf("eval error: %v", err)
	}

	b, ok := val.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression did not evaluate to bool: %v", val.Value())
	}
	return b, nil
}

// buildInput 把候选与请求上下文展开为 CEL 变量。
func (e *Eval) buildInput() map[string]any {
	item := make(map[string]any)
	label := make(map[string]any)
	user := make(map[string]any)

	if e.candidate != nil {
		if p := e.candidate.Product; p != nil {
			item["id"] = p.ID
			item["name"] = p.Name
			item["brand"] = p.Brand
			item["category"] = p.Category
			item["price"] = p.Price
		}
		item["score"] = e.candidate.Overall()
		item["reason"] = e.candidate.Reason
		for k, v := range e.candidate.Labels {
			label[k] = v.Value
		}
	}

	if e.rctx != nil {
		user["id"] = e.rctx.UserID
		if p := e.rctx.Profile; p != nil {
			user["country"] = p.Country
			user["budget"] = string(p.BudgetRange)
			user["risk"] = p.RiskTolerance
		}
	}

	return map[string]any{
		"item":  item,
		"label": label,
		"user":  user,
	}
}
