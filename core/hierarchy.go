package core

import (
	"strings"

	"github.com/CodMac/go-treesitter-java-checks/model"
)

// TypeHierarchy 保存一个编译单元内类型之间的继承/实现边与声明嵌套关系。
// 接口多继承使其成为 DAG，所有查询都带有访问集合，上游数据出现环时也能终止。
type TypeHierarchy struct {
	supertypes map[*model.Symbol][]*model.Symbol // 声明的父类与接口，按源码顺序
	enclosing  map[*model.Symbol]*model.Symbol   // 直接外层类型声明
}

// Supertypes 返回 t 直接声明的父类型
func (h *TypeHierarchy) Supertypes(t *model.Symbol) []*model.Symbol {
	if h == nil {
		return nil
	}
	return h.supertypes[t]
}

// Enclosing 返回 t 的直接外层类型声明
func (h *TypeHierarchy) Enclosing(t *model.Symbol) *model.Symbol {
	if h == nil {
		return nil
	}
	return h.enclosing[t]
}

// IsSubtypeOf 判断 t 或其任一祖先的限定名是否等于 ancestor
func (h *TypeHierarchy) IsSubtypeOf(t *model.Symbol, ancestor string) bool {
	found := false
	h.Ancestors(t, func(s *model.Symbol) bool {
		found = s.QualifiedName == ancestor
		return !found
	})
	return found
}

// HasAncestorWithPrefix 判断 t 或其任一祖先的限定名是否以 prefixes 之一开头
func (h *TypeHierarchy) HasAncestorWithPrefix(t *model.Symbol, prefixes []string) bool {
	found := false
	h.Ancestors(t, func(s *model.Symbol) bool {
		found = hasAnyPrefix(s.QualifiedName, prefixes)
		return !found
	})
	return found
}

// EnclosingHasAncestorWithPrefix 判断 t 的外层声明链上是否有类型满足 HasAncestorWithPrefix。
// 与祖先遍历相互独立，各自维护访问集合。
func (h *TypeHierarchy) EnclosingHasAncestorWithPrefix(t *model.Symbol, prefixes []string) bool {
	return h.enclosingHasPrefix(t, prefixes, make(map[*model.Symbol]struct{}))
}

func (h *TypeHierarchy) enclosingHasPrefix(t *model.Symbol, prefixes []string, visited map[*model.Symbol]struct{}) bool {
	outer := h.Enclosing(t)
	if outer == nil {
		return false
	}
	if _, seen := visited[outer]; seen {
		return false
	}
	visited[outer] = struct{}{}

	return h.HasAncestorWithPrefix(outer, prefixes) || h.enclosingHasPrefix(outer, prefixes, visited)
}

// Ancestors 以深度优先顺序访问 t 本身及其所有祖先，每个类型至多访问一次；
// yield 返回 false 时提前结束。
func (h *TypeHierarchy) Ancestors(t *model.Symbol, yield func(*model.Symbol) bool) {
	if t == nil {
		return
	}
	h.ancestors(t, make(map[*model.Symbol]struct{}), yield)
}

func (h *TypeHierarchy) ancestors(t *model.Symbol, visited map[*model.Symbol]struct{}, yield func(*model.Symbol) bool) bool {
	if _, seen := visited[t]; seen {
		return true
	}
	visited[t] = struct{}{}

	if !yield(t) {
		return false
	}
	for _, super := range h.Supertypes(t) {
		if !h.ancestors(super, visited, yield) {
			return false
		}
	}
	return true
}

func hasAnyPrefix(name string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}
