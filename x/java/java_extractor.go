package java

import (
	"strings"

	"github.com/CodMac/go-treesitter-java-checks/context"
	"github.com/CodMac/go-treesitter-java-checks/core"
	"github.com/CodMac/go-treesitter-java-checks/model"
)

type Extractor struct {
	resolver context.SymbolResolver
}

func NewJavaExtractor(resolver context.SymbolResolver) *Extractor {
	return &Extractor{resolver: resolver}
}

// Extract 在单个编译单元内完成语义解析。所有可变状态都在 binder 中，Extractor 可被多个 worker 共享。
func (e *Extractor) Extract(fc *core.FileContext) (*core.SemanticModel, error) {
	b := newBinder(fc, e.resolver)

	// 1. 登记声明
	b.declare()
	// 2. 解析声明类型与方法签名
	b.resolveSignatures()
	// 3. 继承/实现关系与嵌套关系
	b.linkHierarchy()
	// 4. 注解
	b.collectAnnotations()
	// 5. 引用与方法调用目标
	b.bindReferences(fc.RootNode, nil, nil)

	return b.sb.Build(), nil
}

type binder struct {
	fc       *core.FileContext
	resolver context.SymbolResolver
	sb       *core.SemanticBuilder

	parents   map[*model.Node]*model.Node
	unitTypes map[string]*model.Symbol          // 本文件声明的类型
	members   map[*model.Symbol][]*model.Symbol // 类型/方法 -> 直接成员
	supers    map[*model.Symbol][]*model.Symbol // 含按需链接的内置类型边
	external  map[string]*model.Symbol          // 未知类型的占位符号
	linked    map[string]bool                   // 已链接继承边的内置类型
	exprTypes map[*model.Node]model.TypeRef     // 表达式静态类型缓存
}

func newBinder(fc *core.FileContext, resolver context.SymbolResolver) *binder {
	return &binder{
		fc:        fc,
		resolver:  resolver,
		sb:        core.NewSemanticBuilder(),
		parents:   make(map[*model.Node]*model.Node),
		unitTypes: make(map[string]*model.Symbol),
		members:   make(map[*model.Symbol][]*model.Symbol),
		supers:    make(map[*model.Symbol][]*model.Symbol),
		external:  make(map[string]*model.Symbol),
		linked:    make(map[string]bool),
		exprTypes: make(map[*model.Node]model.TypeRef),
	}
}

func (b *binder) declare() {
	core.Inspect(b.fc.RootNode, func(n *model.Node) bool {
		for child := range n.Children() {
			b.parents[child] = n
		}
		return true
	})

	for _, def := range b.fc.Definitions() {
		sym := def.Symbol
		b.sb.DeclareSymbol(sym)
		if sym.IsType() {
			b.unitTypes[sym.QualifiedName] = sym
		}
		if sym.Owner != nil {
			b.members[sym.Owner] = append(b.members[sym.Owner], sym)
		}
	}
}

// --- 类型解析 ---

func (b *binder) resolveTypeText(text string) model.TypeRef {
	return parseTypeRef(text, func(name string) string {
		qn, _ := b.resolver.ResolveType(b.fc, name)
		return qn
	})
}

// typeNodeOf 返回声明节点的类型引用节点
func typeNodeOf(decl *model.Node) *model.Node {
	if t := decl.ChildByField("type"); t.Is(model.NodeType) {
		return t
	}
	for child := range decl.Children() {
		if child.Is(model.NodeType) {
			return child
		}
		// catch (A | B e)
		if child.Grammar() == "catch_type" {
			return child.Child(0)
		}
	}
	return nil
}

func (b *binder) resolveSignatures() {
	defs := b.fc.Definitions()
	for _, def := range defs {
		sym := def.Symbol
		if !sym.Kind.IsVariable() {
			continue
		}
		if sym.Kind == model.EnumConstant {
			sym.Type = model.TypeRef{QualifiedName: sym.Owner.QualifiedName}
			continue
		}
		t := typeNodeOf(def.Node)
		if t == nil || t.Name() == "var" {
			continue
		}
		tr := b.resolveTypeText(t.Name())
		tr.Dimensions += strings.Count(def.Node.Value(), "[]")
		sym.Type = tr
	}

	for _, def := range defs {
		sym := def.Symbol
		if sym.Kind != model.Method {
			continue
		}
		if t := def.Node.ChildByField("type"); t.Is(model.NodeType) {
			sym.Type = b.resolveTypeText(t.Name())
		}
		for _, p := range b.parametersOf(def.Node) {
			sym.Parameters = append(sym.Parameters, p.Type)
		}
	}
}

func (b *binder) parametersOf(method *model.Node) []*model.Symbol {
	params := method.ChildByField("parameters")
	if params == nil {
		return nil
	}
	var out []*model.Symbol
	for p := range params.Children() {
		if def := b.fc.DefinitionOf(p); def != nil {
			out = append(out, def.Symbol)
		}
	}
	return out
}

// typeSymbol 返回限定名对应的类型符号：本文件类型、内置类型或占位符号
func (b *binder) typeSymbol(qn string) *model.Symbol {
	if qn == "" {
		return nil
	}
	if sym, ok := b.unitTypes[qn]; ok {
		return sym
	}
	if entry, ok := lookupBuiltin(qn); ok {
		b.linkBuiltin(qn, entry)
		return entry.sym
	}
	if sym, ok := b.external[qn]; ok {
		return sym
	}

	sym := &model.Symbol{
		Kind:          model.Class,
		Name:          qn[strings.LastIndex(qn, ".")+1:],
		QualifiedName: qn,
	}
	b.external[qn] = sym
	b.addSupertype(sym, b.typeSymbol(objectQN))
	return sym
}

func (b *binder) linkBuiltin(qn string, entry *builtinEntry) {
	if b.linked[qn] {
		return
	}
	b.linked[qn] = true
	for _, s := range entry.supers {
		b.addSupertype(entry.sym, b.typeSymbol(s))
	}
}

func (b *binder) addSupertype(sub, super *model.Symbol) {
	if sub == nil || super == nil || sub == super {
		return
	}
	for _, s := range b.supers[sub] {
		if s == super {
			return
		}
	}
	b.supers[sub] = append(b.supers[sub], super)
	b.sb.AddSupertype(sub, super)
}

// --- 继承关系 ---

func (b *binder) linkHierarchy() {
	for _, def := range b.fc.Definitions() {
		sym := def.Symbol
		if !sym.IsType() {
			continue
		}
		if enc := sym.EnclosingType(); enc != nil {
			b.sb.SetEnclosing(sym, enc)
		}

		hasSuperclass := false
		if sym.IsAnonymous() {
			hasSuperclass = b.linkAnonymous(sym, def.Node)
		}
		for child := range def.Node.Children() {
			switch child.Grammar() {
			case kindSuperclass:
				hasSuperclass = true
				b.linkTypesUnder(sym, child)
			case kindSuperInterfaces, kindExtendsInterfaces:
				b.linkTypesUnder(sym, child)
			}
		}

		switch {
		case hasSuperclass:
		case sym.Kind == model.Class && sym.QualifiedName != objectQN:
			b.addSupertype(sym, b.typeSymbol(objectQN))
		case sym.Kind == model.Enum:
			b.addSupertype(sym, b.typeSymbol(enumQN))
		case sym.Kind == model.Record:
			b.addSupertype(sym, b.typeSymbol(recordQN))
		}
	}
}

// linkAnonymous 匿名类的父类型来自 new 表达式或所属的枚举
func (b *binder) linkAnonymous(sym *model.Symbol, decl *model.Node) bool {
	parent := b.parents[decl]
	switch {
	case parent.Is(model.NodeNewClass):
		t := parent.ChildByField("type")
		if t == nil {
			return false
		}
		super := b.typeSymbol(b.resolveTypeText(t.Name()).QualifiedName)
		b.addSupertype(sym, super)
		if super != nil && super.Kind == model.Interface {
			b.addSupertype(sym, b.typeSymbol(objectQN))
		}
		return true
	case parent.Is(model.NodeVariable) && parent.Grammar() == kindEnumConstant && sym.Owner != nil:
		b.addSupertype(sym, sym.Owner)
		return true
	}
	return false
}

func (b *binder) linkTypesUnder(sym *model.Symbol, clause *model.Node) {
	core.Inspect(clause, func(n *model.Node) bool {
		if n.Is(model.NodeType) {
			b.addSupertype(sym, b.typeSymbol(b.resolveTypeText(n.Name()).QualifiedName))
			return false
		}
		return true
	})
}

// --- 注解 ---

func (b *binder) collectAnnotations() {
	for _, def := range b.fc.Definitions() {
		for child := range def.Node.Children() {
			if !child.Is(model.NodeModifiers) {
				continue
			}
			for ann := range child.Children() {
				if ann.Is(model.NodeAnnotation) {
					b.sb.Annotate(def.Symbol, b.annotationInstance(ann))
				}
			}
		}
	}
}

func (b *binder) annotationInstance(ann *model.Node) model.AnnotationInstance {
	qn, resolved := b.resolver.ResolveType(b.fc, ann.Name())
	inst := model.AnnotationInstance{QualifiedName: qn, Resolved: resolved, Node: ann}

	args := ann.ChildByField("arguments")
	if args == nil {
		return inst
	}
	for arg := range args.Children() {
		if arg.Grammar() == kindElementValuePair {
			inst.Arguments = appendAnnotationValue(inst.Arguments, arg.Name(), arg.Child(0))
			continue
		}
		inst.Arguments = appendAnnotationValue(inst.Arguments, "value", arg)
	}
	return inst
}

// appendAnnotationValue 展开数组初始化器；只有字面量会被求值
func appendAnnotationValue(args []model.AnnotationArgument, name string, value *model.Node) []model.AnnotationArgument {
	if value == nil {
		return args
	}
	if value.Grammar() == kindElementValueArray {
		for elem := range value.Children() {
			args = appendAnnotationValue(args, name, elem)
		}
		return args
	}
	if value.Is(model.NodeLiteral) {
		return append(args, model.AnnotationArgument{Name: name, Value: model.TrimQuotes(value.Value()), Literal: true})
	}
	return append(args, model.AnnotationArgument{Name: name})
}
