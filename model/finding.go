package model

import (
	"cmp"
	"slices"
)

// RuleKey 是规则的稳定标识 (e.g., "S1068")
type RuleKey string

// Finding 描述一次规则违规，是工具的核心输出结构
type Finding struct {
	Rule     RuleKey  `json:"Rule"`
	Location Location `json:"Location"`
	Message  string   `json:"Message"`
	Node     *Node    `json:"-"` // 锚定的语法节点
}

// SortFindings 按源码位置排序，位置相同时按规则标识排序
func SortFindings(findings []Finding) {
	slices.SortStableFunc(findings, func(a, b Finding) int {
		if c := a.Location.Compare(b.Location); c != 0 {
			return c
		}
		return cmp.Compare(a.Rule, b.Rule)
	})
}
