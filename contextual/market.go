package contextual

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// MarketEntry 是单个国家的市场画像。
type MarketEntry struct {
	Region           string   `yaml:"region" json:"region"`
	Maturity         string   `yaml:"maturity" json:"maturity"`
	LocalPreferences []string `yaml:"local_preferences" json:"local_preferences"`
}

// MarketTable 是国家 → 市场画像查找表。
// 约定 key "default" 为兜底条目：未知国家必须命中它，绝不失败。
type MarketTable map[string]MarketEntry

// Lookup 按国家查市场画像，未知国家返回 default 条目。
func (t MarketTable) Lookup(country string) MarketEntry {
	if e, ok := t[country]; ok {
		return e
	}
	return t["default"]
}

// DefaultMarketTable 返回内建市场表。生产环境可用 LoadMarketTable 覆盖。
func DefaultMarketTable() MarketTable {
	return MarketTable{
		"US": {Region: "north_america", Maturity: "mature", LocalPreferences: []string{"premium_brands", "fast_shipping"}},
		"UK": {Region: "europe", Maturity: "mature", LocalPreferences: []string{"eco_friendly", "premium_brands"}},
		"DE": {Region: "europe", Maturity: "mature", LocalPreferences: []string{"detailed_specs", "eco_friendly"}},
		"JP": {Region: "asia", Maturity: "mature", LocalPreferences: []string{"compact_design", "premium_brands"}},
		"CN": {Region: "asia", Maturity: "developing", LocalPreferences: []string{"value_for_money", "fast_shipping"}},
		"IN": {Region: "asia", Maturity: "emerging", LocalPreferences: []string{"value_for_money", "budget_friendly"}},
		"BR": {Region: "south_america", Maturity: "emerging", LocalPreferences: []string{"value_for_money"}},
		"default": {
			Region:           "global",
			Maturity:         "developing",
			LocalPreferences: []string{"value_for_money"},
		},
	}
}

// LoadMarketTable 从 YAML 文件加载市场表。
// 文件缺失 default 条目时自动补上内建兜底，保证 Lookup 永不落空。
func LoadMarketTable(path string) (MarketTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read market table: %w", err)
	}

	var table MarketTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse market table: %w", err)
	}
	if _, ok := table["default"]; !ok {
		table["default"] = DefaultMarketTable()["default"]
	}
	return table, nil
}

// MarketEvent 是按月份窗口生效的营销事件。
type MarketEvent struct {
	Tag    string       `yaml:"tag" json:"tag"`
	Months []time.Month `yaml:"months" json:"months"`
}

// Active 检查事件在指定月份是否生效。
func (e MarketEvent) Active(m time.Month) bool {
	for _, month := range e.Months {
		if month == m {
			return true
		}
	}
	return false
}

// DefaultEventCalendar 返回内建营销事件日历。
func DefaultEventCalendar() []MarketEvent {
	return []MarketEvent{
		{Tag: "holiday_season", Months: []time.Month{time.November, time.December}},
		{Tag: "new_year_sale", Months: []time.Month{time.January}},
		{Tag: "summer_sale", Months: []time.Month{time.June, time.July}},
		{Tag: "back_to_school", Months: []time.Month{time.August, time.September}},
	}
}
