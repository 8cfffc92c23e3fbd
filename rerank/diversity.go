// Package rerank 提供重排 Node：类目多样性约束与排序截断。
package rerank

import (
	"context"
	"sort"

	"github.com/rushteam/prodkit/core"
	"github.com/rushteam/prodkit/pipeline"
	"github.com/rushteam/prodkit/pkg/utils"
)

// DefaultCapBase 是类目上限公式的分子：cap = max(1, CapBase / 类目数)。
const DefaultCapBase = 10

// Diversity 是类目多样性 ReRank：限制单一类目在结果中的占比。
//
// 规则：设候选池中有 k 个类目，每个类目最多保留
// max(1, floor(CapBase/k)) 个总分最高的候选，然后按类目字典序
// 依次拼接，保证同一输入产生同一输出。
type Diversity struct {
	// CapBase 上限公式分子，0 表示 DefaultCapBase
	CapBase int
}

func (n *Diversity) Name() string { return "rerank.diversity" }

func (n *Diversity) Kind() pipeline.Kind { return pipeline.KindReRank }

func (n *Diversity) Process(
	_ context.Context,
	_ *core.RecommendContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(candidates) == 0 {
		return candidates, nil
	}

	// 按类目分组；空类目归入 "" 组，同样受上限约束
	groups := make(map[string][]*core.Candidate)
	for _, c := range candidates {
		if c == nil {
			continue
		}
		groups[c.Category()] = append(groups[c.Category()], c)
	}

	capBase := n.CapBase
	if capBase <= 0 {
		capBase = DefaultCapBase
	}
	perCategory := capBase / len(groups)
	if perCategory < 1 {
		perCategory = 1
	}

	// 类目字典序，保证输出确定
	categories := make([]string, 0, len(groups))
	for cate := range groups {
		categories = append(categories, cate)
	}
	sort.Strings(categories)

	out := make([]*core.Candidate, 0, len(candidates))
	for _, cate := range categories {
		group := groups[cate]
		sortByScore(group)
		if len(group) > perCategory {
			for _, dropped := range group[perCategory:] {
				dropped.PutLabel("diversity_dropped", utils.Label{Value: "true", Source: "rerank"})
			}
			group = group[:perCategory]
		}
		out = append(out, group...)
	}
	return out, nil
}

// sortByScore 按总分降序稳定排序，同分按商品 ID 升序兜底，保证确定性。
func sortByScore(candidates []*core.Candidate) {
	sort.SliceStable(candidates, func(a, b int) bool {
		sa, sb := candidates[a].Overall(), candidates[b].Overall()
		if sa != sb {
			return sa > sb
		}
		var ida, idb string
		if candidates[a].Product != nil {
			ida = candidates[a].Product.ID
		}
		if candidates[b].Product != nil {
			idb = candidates[b].Product.ID
		}
		return ida < idb
	})
}
