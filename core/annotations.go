package core

import (
	"maps"
	"slices"

	"github.com/CodMac/go-treesitter-java-checks/model"
)

// NameSet 是不可变的限定名集合，用于注解白名单等配置
type NameSet struct {
	names map[string]struct{}
}

func NewNameSet(names ...string) NameSet {
	s := NameSet{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		s.names[n] = struct{}{}
	}
	return s
}

func (s NameSet) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

func (s NameSet) Len() int { return len(s.names) }

// Names 返回排序后的全部名称
func (s NameSet) Names() []string {
	return slices.Sorted(maps.Keys(s.names))
}

// AnnotationIndex 按符号索引声明上的注解实例
type AnnotationIndex struct {
	bySymbol map[*model.Symbol][]model.AnnotationInstance
}

// All 返回 sym 上的全部注解，按源码顺序
func (x *AnnotationIndex) All(sym *model.Symbol) []model.AnnotationInstance {
	if x == nil {
		return nil
	}
	return x.bySymbol[sym]
}

// AnnotationsOf 返回 sym 上类型为 qualifiedName 的注解实例，按源码顺序
func (x *AnnotationIndex) AnnotationsOf(sym *model.Symbol, qualifiedName string) []model.AnnotationInstance {
	var result []model.AnnotationInstance
	for _, a := range x.All(sym) {
		if a.QualifiedName == qualifiedName {
			result = append(result, a)
		}
	}
	return result
}

// HasAnyOf 判断 sym 是否带有 names 中任一注解
func (x *AnnotationIndex) HasAnyOf(sym *model.Symbol, names NameSet) bool {
	for _, a := range x.All(sym) {
		if names.Contains(a.QualifiedName) {
			return true
		}
	}
	return false
}

// HasLiteralArgument 判断 sym 上类型为 qualifiedName 的注解是否有值等于 value 的字面量实参。
// 非字面量实参 (如常量引用) 从不参与比较。
func (x *AnnotationIndex) HasLiteralArgument(sym *model.Symbol, qualifiedName, value string) bool {
	for _, a := range x.AnnotationsOf(sym, qualifiedName) {
		if slices.Contains(a.LiteralArguments(), value) {
			return true
		}
	}
	return false
}

// LiteralArgument 返回注解实例第 i 个实参的字面量值；非字面量或越界时 ok 为 false
func (x *AnnotationIndex) LiteralArgument(inst model.AnnotationInstance, i int) (string, bool) {
	return inst.LiteralArgument(i)
}
