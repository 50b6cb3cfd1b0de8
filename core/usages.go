package core

import (
	"slices"

	"github.com/CodMac/go-treesitter-java-checks/model"
)

// UsageIndex 记录每个符号在当前编译单元内的引用。
// 跨文件的引用不可见，因此"没有引用"只代表本文件内未使用。
type UsageIndex struct {
	records map[*model.Symbol][]model.UsageRecord
}

// UsagesOf 返回 sym 的全部引用，按源码顺序
func (u *UsageIndex) UsagesOf(sym *model.Symbol) []model.UsageRecord {
	if u == nil {
		return nil
	}
	return u.records[sym]
}

// IsUnused 判断 sym 在本单元内没有任何引用
func (u *UsageIndex) IsUnused(sym *model.Symbol) bool {
	return len(u.UsagesOf(sym)) == 0
}

func sortUsages(recs []model.UsageRecord) {
	slices.SortStableFunc(recs, func(a, b model.UsageRecord) int {
		if a.Node == nil || b.Node == nil {
			return 0
		}
		return a.Node.Location().Compare(b.Node.Location())
	})
}
