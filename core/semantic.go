package core

import "github.com/CodMac/go-treesitter-java-checks/model"

// SemanticModel 是一个编译单元的只读语义快照：声明与符号的对应、调用目标、
// 类型层次、注解与引用索引。构建完成后不再修改，可被多个规则并发读取。
type SemanticModel struct {
	symbols map[*model.Node]*model.Symbol     // 声明节点 -> 符号
	targets map[*model.Node]*model.Symbol     // 方法调用节点 -> 被调用方法
	members map[*model.Symbol][]*model.Symbol // 类型/方法 -> 直接成员，按源码顺序

	Hierarchy   *TypeHierarchy
	Annotations *AnnotationIndex
	Usages      *UsageIndex
}

// SymbolOf 返回声明节点对应的符号
func (m *SemanticModel) SymbolOf(decl *model.Node) *model.Symbol {
	if m == nil || decl == nil {
		return nil
	}
	return m.symbols[decl]
}

// TargetOf 返回方法调用解析到的方法符号，无法解析时为 nil
func (m *SemanticModel) TargetOf(invocation *model.Node) *model.Symbol {
	if m == nil || invocation == nil {
		return nil
	}
	return m.targets[invocation]
}

// Members 返回 owner 的直接成员
func (m *SemanticModel) Members(owner *model.Symbol) []*model.Symbol {
	if m == nil {
		return nil
	}
	return m.members[owner]
}

// LookupMember 在 owner 的直接成员中按名称查找，不查找父类型
func (m *SemanticModel) LookupMember(owner *model.Symbol, name string, kinds ...model.ElementKind) *model.Symbol {
	for _, s := range m.Members(owner) {
		if s.Name != name {
			continue
		}
		if len(kinds) == 0 {
			return s
		}
		for _, k := range kinds {
			if s.Kind == k {
				return s
			}
		}
	}
	return nil
}

// SemanticBuilder 在解析阶段逐步填充语义信息，Build 之后交出只读的 SemanticModel。
// 同一 Builder 不可在 Build 之后继续使用。
type SemanticBuilder struct {
	m *SemanticModel
}

func NewSemanticBuilder() *SemanticBuilder {
	return &SemanticBuilder{m: &SemanticModel{
		symbols:     make(map[*model.Node]*model.Symbol),
		targets:     make(map[*model.Node]*model.Symbol),
		members:     make(map[*model.Symbol][]*model.Symbol),
		Hierarchy:   &TypeHierarchy{supertypes: make(map[*model.Symbol][]*model.Symbol), enclosing: make(map[*model.Symbol]*model.Symbol)},
		Annotations: &AnnotationIndex{bySymbol: make(map[*model.Symbol][]model.AnnotationInstance)},
		Usages:      &UsageIndex{records: make(map[*model.Symbol][]model.UsageRecord)},
	}}
}

// DeclareSymbol 登记一个符号，并挂到其 Owner 的成员列表上。
// sym.Decl 非空时建立声明节点到符号的映射。
func (b *SemanticBuilder) DeclareSymbol(sym *model.Symbol) {
	if sym.Decl != nil {
		b.m.symbols[sym.Decl] = sym
	}
	if sym.Owner != nil {
		b.m.members[sym.Owner] = append(b.m.members[sym.Owner], sym)
	}
}

// BindTarget 记录方法调用的目标方法
func (b *SemanticBuilder) BindTarget(invocation *model.Node, method *model.Symbol) {
	if invocation == nil || method == nil {
		return
	}
	b.m.targets[invocation] = method
}

// AddSupertype 增加一条 sub -> super 的继承/实现边，重复边被忽略
func (b *SemanticBuilder) AddSupertype(sub, super *model.Symbol) {
	if sub == nil || super == nil {
		return
	}
	for _, s := range b.m.Hierarchy.supertypes[sub] {
		if s == super {
			return
		}
	}
	b.m.Hierarchy.supertypes[sub] = append(b.m.Hierarchy.supertypes[sub], super)
}

// SetEnclosing 记录 inner 的直接外层类型
func (b *SemanticBuilder) SetEnclosing(inner, outer *model.Symbol) {
	if inner == nil || outer == nil {
		return
	}
	b.m.Hierarchy.enclosing[inner] = outer
}

// Annotate 为 sym 追加一个注解实例
func (b *SemanticBuilder) Annotate(sym *model.Symbol, inst model.AnnotationInstance) {
	if sym == nil {
		return
	}
	b.m.Annotations.bySymbol[sym] = append(b.m.Annotations.bySymbol[sym], inst)
}

// AddUsage 记录一次引用
func (b *SemanticBuilder) AddUsage(sym *model.Symbol, ref *model.Node) {
	if sym == nil {
		return
	}
	b.m.Usages.records[sym] = append(b.m.Usages.records[sym], model.UsageRecord{Symbol: sym, Node: ref})
}

// Build 返回构建完成的语义模型，引用记录按源码位置排序
func (b *SemanticBuilder) Build() *SemanticModel {
	for sym, recs := range b.m.Usages.records {
		sortUsages(recs)
		b.m.Usages.records[sym] = recs
	}
	m := b.m
	b.m = nil
	return m
}
