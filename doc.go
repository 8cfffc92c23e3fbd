// Package prodkit 是比价平台的推荐评分核心（Product Recommendation Kit）。
//
// 设计要点：
// - Pipeline-first: 推荐逻辑通过 Node 串联（Rank → ReRank → Filter）
// - Labels-first: labels 全链路透传与标准化 merge，支持 explain / 观测 / 策略驱动
// - 策略可插拔: 向量生成器与市场趋势估计器都是可替换策略，测试可完全复现
// - 无全局状态: 组件显式构造显式传入，商品向量缓存是可替换字段而非进程单例
package prodkit

import "github.com/rushteam/prodkit/pipeline"

// 轻量 facade：便于用户直接 import "prodkit" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindRank        = pipeline.KindRank
	KindReRank      = pipeline.KindReRank
	KindFilter      = pipeline.KindFilter
	KindPostProcess = pipeline.KindPostProcess
)
