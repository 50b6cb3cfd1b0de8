package java

import (
	"strings"

	"github.com/CodMac/go-treesitter-java-checks/model"
)

// scope 是词法作用域。类型作用域通过 typ 暴露该类型 (及其父类型) 的字段。
type scope struct {
	parent *scope
	vars   map[string]*model.Symbol
	typ    *model.Symbol
}

func (s *scope) define(sym *model.Symbol) {
	if s.vars == nil {
		s.vars = make(map[string]*model.Symbol)
	}
	s.vars[sym.Name] = sym
}

func (s *scope) currentType() *model.Symbol {
	for sc := s; sc != nil; sc = sc.parent {
		if sc.typ != nil {
			return sc.typ
		}
	}
	return nil
}

// bindReferences 按源码顺序遍历语法树，记录变量/字段引用与方法调用目标。
// 子表达式先于父节点处理，因此父节点可以使用已推断出的子表达式类型。
func (b *binder) bindReferences(n, parent *model.Node, s *scope) {
	switch {
	case n.Kind().IsTypeDeclaration():
		inner := &scope{parent: s}
		if def := b.fc.DefinitionOf(n); def != nil {
			inner.typ = def.Symbol
		}
		b.bindChildren(n, inner)

	case n.Is(model.NodeMethod):
		b.bindChildren(n, &scope{parent: s})

	case n.Is(model.NodeVariable):
		b.bindChildren(n, s)
		def := b.fc.DefinitionOf(n)
		if def == nil || def.Symbol.Kind != model.Variable {
			return
		}
		sym := def.Symbol
		if s == nil {
			return
		}
		if sym.Type.IsZero() {
			if value := n.ChildByField("value"); value != nil {
				sym.Type = b.exprType(value)
			}
		}
		s.define(sym)

	case n.Is(model.NodeIdentifier):
		b.bindIdentifier(n, parent, s)

	case n.Is(model.NodeMemberSelect):
		b.bindMemberSelect(n, s)

	case n.Is(model.NodeMethodInvocation):
		b.bindInvocation(n, s)

	case n.Grammar() == kindThis:
		if t := s.currentType(); t != nil {
			b.exprTypes[n] = model.TypeRef{QualifiedName: t.QualifiedName}
		}

	case n.Grammar() == kindSuper:
		if super := b.superclassOf(s.currentType()); super != nil {
			b.exprTypes[n] = model.TypeRef{QualifiedName: super.QualifiedName}
		}

	case n.Grammar() == kindPackageDecl || n.Grammar() == kindImportDecl:

	case scopeKinds[n.Grammar()]:
		b.bindChildren(n, &scope{parent: s})

	default:
		b.bindChildren(n, s)
	}
}

func (b *binder) bindChildren(n *model.Node, s *scope) {
	for child := range n.Children() {
		b.bindReferences(child, n, s)
	}
}

func (b *binder) bindIdentifier(n, parent *model.Node, s *scope) {
	if isDeclaringOrLabel(n, parent) {
		return
	}
	if sym := b.lookupVariable(s, n.Name()); sym != nil {
		b.sb.AddUsage(sym, n)
		b.exprTypes[n] = sym.Type
		return
	}
	// 不是变量时按类型名处理，用于静态调用 Foo.bar()
	if qn, resolved := b.resolver.ResolveType(b.fc, n.Name()); resolved {
		b.exprTypes[n] = model.TypeRef{QualifiedName: qn}
	}
}

// isDeclaringOrLabel 判断标识符是否是声明名、方法名或标签，而非变量引用
func isDeclaringOrLabel(n, parent *model.Node) bool {
	if parent == nil {
		return false
	}
	switch n.Field() {
	case "name":
		if parent.Is(model.NodeVariable, model.NodeMethod, model.NodeMethodInvocation) || parent.Kind().IsTypeDeclaration() {
			return true
		}
	case "field":
		if parent.Is(model.NodeMemberSelect) {
			return true
		}
	}
	switch parent.Grammar() {
	case kindLabeledStatement, kindBreakStatement, kindContinueStatement:
		return true
	case kindMethodReference:
		return parent.Child(0) != n
	}
	return false
}

func (b *binder) lookupVariable(s *scope, name string) *model.Symbol {
	for sc := s; sc != nil; sc = sc.parent {
		if sym, ok := sc.vars[name]; ok {
			return sym
		}
		if sc.typ != nil {
			if f := b.findField(sc.typ, name); f != nil {
				return f
			}
		}
	}
	return nil
}

// findField 在类型及其父类型中查找字段；父类型的 private 字段不可见
func (b *binder) findField(t *model.Symbol, name string) *model.Symbol {
	visited := make(map[*model.Symbol]bool)
	var find func(t *model.Symbol, inherited bool) *model.Symbol
	find = func(t *model.Symbol, inherited bool) *model.Symbol {
		if t == nil || visited[t] {
			return nil
		}
		visited[t] = true
		for _, m := range b.members[t] {
			if (m.Kind == model.Field || m.Kind == model.EnumConstant) && m.Name == name {
				if inherited && m.HasModifier(modPrivate) {
					continue
				}
				return m
			}
		}
		for _, super := range b.supers[t] {
			if f := find(super, true); f != nil {
				return f
			}
		}
		return nil
	}
	return find(t, false)
}

func (b *binder) bindMemberSelect(n *model.Node, s *scope) {
	obj := n.ChildByField("object")
	if obj != nil {
		b.bindReferences(obj, n, s)
	}

	// Outer.this
	if n.Name() == kindThis {
		b.exprTypes[n] = b.exprType(obj)
		return
	}

	var owner *model.Symbol
	switch {
	case obj == nil:
	case obj.Grammar() == kindSuper:
		owner = b.superclassOf(s.currentType())
	default:
		if t := b.exprType(obj); !t.IsZero() && !t.Primitive && t.Dimensions == 0 {
			owner = b.unitTypes[t.QualifiedName]
		} else if t.Dimensions > 0 && n.Name() == "length" {
			b.exprTypes[n] = model.TypeRef{QualifiedName: "int", Primitive: true}
		}
	}
	if owner == nil {
		return
	}
	if f := b.findField(owner, n.Name()); f != nil {
		ref := n.ChildByField("field")
		if ref == nil {
			ref = n
		}
		b.sb.AddUsage(f, ref)
		b.exprTypes[n] = f.Type
	}
}

func (b *binder) superclassOf(t *model.Symbol) *model.Symbol {
	if t == nil {
		return nil
	}
	for _, s := range b.supers[t] {
		if s.Kind == model.Class {
			return s
		}
	}
	return b.typeSymbol(objectQN)
}

// --- 方法调用 ---

func (b *binder) bindInvocation(n *model.Node, s *scope) {
	for child := range n.Children() {
		if child.Field() == "name" {
			continue
		}
		b.bindReferences(child, n, s)
	}

	target := b.resolveInvocation(n, s)
	if target == nil {
		return
	}
	b.sb.BindTarget(n, target)
	if target.Decl != nil {
		b.sb.AddUsage(target, n)
	}
	b.exprTypes[n] = target.Type
}

// resolveInvocation 在接收者的声明类型上查找方法，找不到时回退到 java.lang.Object
func (b *binder) resolveInvocation(n *model.Node, s *scope) *model.Symbol {
	name := n.Name()
	args := n.Arguments()
	recv := n.Receiver()

	switch {
	case recv == nil:
		for sc := s; sc != nil; sc = sc.parent {
			if sc.typ == nil {
				continue
			}
			if m := b.findMethod(sc.typ, name, args); m != nil {
				return m
			}
		}
	case recv.Grammar() == kindSuper:
		if m := b.findMethod(b.superclassOf(s.currentType()), name, args); m != nil {
			return m
		}
	default:
		t := b.exprType(recv)
		if t.Primitive && t.Dimensions == 0 {
			return nil
		}
		if !t.IsZero() && t.Dimensions == 0 {
			if m := b.findMethod(b.typeSymbol(t.QualifiedName), name, args); m != nil {
				return m
			}
		}
	}
	return b.findMethod(b.typeSymbol(objectQN), name, args)
}

// findMethod 沿继承关系深度优先查找，返回声明该方法的类型上的符号
func (b *binder) findMethod(t *model.Symbol, name string, args []*model.Node) *model.Symbol {
	visited := make(map[*model.Symbol]bool)
	var find func(t *model.Symbol) *model.Symbol
	find = func(t *model.Symbol) *model.Symbol {
		if t == nil || visited[t] {
			return nil
		}
		visited[t] = true
		if m := b.selectOverload(b.methodsOf(t, name), args); m != nil {
			return m
		}
		for _, super := range b.supers[t] {
			if m := find(super); m != nil {
				return m
			}
		}
		return nil
	}
	return find(t)
}

func (b *binder) methodsOf(t *model.Symbol, name string) []*model.Symbol {
	var candidates []*model.Symbol
	members := b.members[t]
	if entry, ok := lookupBuiltin(t.QualifiedName); ok && entry.sym == t {
		members = entry.methods
	}
	for _, m := range members {
		if m.Kind == model.Method && m.Name == name {
			candidates = append(candidates, m)
		}
	}
	return candidates
}

// selectOverload 按参数个数筛选重载，仍有多个时优先选择参数类型完全一致的
func (b *binder) selectOverload(candidates []*model.Symbol, args []*model.Node) *model.Symbol {
	var byArity []*model.Symbol
	for _, m := range candidates {
		if len(m.Parameters) == len(args) || (isVarargs(m) && len(args) >= len(m.Parameters)-1) {
			byArity = append(byArity, m)
		}
	}
	if len(byArity) <= 1 {
		if len(byArity) == 1 {
			return byArity[0]
		}
		return nil
	}

	for _, m := range byArity {
		if len(m.Parameters) != len(args) {
			continue
		}
		exact := true
		for i, p := range m.Parameters {
			if b.exprType(args[i]).String() != p.String() {
				exact = false
				break
			}
		}
		if exact {
			return m
		}
	}
	return byArity[0]
}

func isVarargs(m *model.Symbol) bool {
	if m.Decl == nil {
		return false
	}
	params := m.Decl.ChildByField("parameters")
	if params == nil || params.ChildCount() == 0 {
		return false
	}
	return params.Child(params.ChildCount()-1).Grammar() == kindSpreadParameter
}

// --- 表达式类型 ---

// exprType 返回表达式的静态类型，无法推断时返回零值
func (b *binder) exprType(n *model.Node) model.TypeRef {
	if n == nil {
		return model.TypeRef{}
	}
	if t, ok := b.exprTypes[n]; ok {
		return t
	}

	switch {
	case n.Is(model.NodeLiteral):
		return literalType(n)
	case n.Is(model.NodeNewClass):
		return b.resolveTypeText(n.Name())
	}

	switch n.Grammar() {
	case kindClassLiteral:
		return model.TypeRef{QualifiedName: classQN}
	case kindParenthesized:
		return b.exprType(n.Child(0))
	case kindCast:
		if t := n.ChildByField("type"); t.Is(model.NodeType) {
			return b.resolveTypeText(t.Name())
		}
	case kindTernary:
		return b.exprType(n.ChildByField("consequence"))
	case kindBinary:
		if n.Value() == "+" {
			left, right := b.exprType(n.ChildByField("left")), b.exprType(n.ChildByField("right"))
			if left.Is(stringQN) || right.Is(stringQN) {
				return model.TypeRef{QualifiedName: stringQN}
			}
		}
	case kindArrayAccess:
		t := b.exprType(n.ChildByField("array"))
		if t.Dimensions > 0 {
			t.Dimensions--
			return t
		}
	}
	return model.TypeRef{}
}

func literalType(n *model.Node) model.TypeRef {
	primitive := func(name string) model.TypeRef {
		return model.TypeRef{QualifiedName: name, Primitive: true}
	}
	v := n.Value()
	switch n.Grammar() {
	case kindStringLiteral:
		return model.TypeRef{QualifiedName: stringQN}
	case kindCharacterLiteral:
		return primitive("char")
	case "true", "false":
		return primitive("boolean")
	case "decimal_floating_point_literal", "hex_floating_point_literal":
		if strings.HasSuffix(v, "f") || strings.HasSuffix(v, "F") {
			return primitive("float")
		}
		return primitive("double")
	case "null_literal":
		return model.TypeRef{}
	}
	if strings.HasSuffix(v, "l") || strings.HasSuffix(v, "L") {
		return primitive("long")
	}
	return primitive("int")
}
