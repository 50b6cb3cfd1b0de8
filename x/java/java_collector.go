package java

import (
	"strconv"
	"strings"

	"github.com/CodMac/go-treesitter-java-checks/context"
	"github.com/CodMac/go-treesitter-java-checks/core"
	"github.com/CodMac/go-treesitter-java-checks/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

type Collector struct {
	resolver context.SymbolResolver
}

func NewJavaCollector(resolver context.SymbolResolver) *Collector {
	return &Collector{resolver: resolver}
}

// collectState 是单次 CollectDefinitions 的可变状态，不在调用之间共享
type collectState struct {
	fCtx      *core.FileContext
	anonCount map[*model.Symbol]int // 外层类型 -> 已分配的匿名类序号
}

func (c *Collector) CollectDefinitions(rootNode *sitter.Node, filePath string, sourceBytes []byte) (*core.FileContext, error) {
	fCtx := core.NewFileContext(filePath, sourceBytes)

	// 1. 处理顶级声明 (Package & Imports)
	c.processTopLevelDeclarations(rootNode, fCtx)

	// 2. 转换为不可变语法树
	fCtx.RootNode = newConverter(filePath, sourceBytes).convertRoot(rootNode)

	// 3. 递归收集定义
	st := &collectState{fCtx: fCtx, anonCount: make(map[*model.Symbol]int)}
	c.collectDefinitionsRecursive(st, fCtx.RootNode, nil, nil, fCtx.PackageName)

	return fCtx, nil
}

func (c *Collector) processTopLevelDeclarations(root *sitter.Node, fCtx *core.FileContext) {
	for i := uint(0); i < root.ChildCount(); i++ {
		child := root.Child(i)
		if child == nil {
			continue
		}

		switch child.Kind() {
		case kindPackageDecl:
			for j := uint(0); j < child.ChildCount(); j++ {
				sub := child.Child(j)
				if sub.Kind() == kindScopedIdentifier || sub.Kind() == kindIdentifier {
					fCtx.PackageName = sub.Utf8Text(fCtx.SourceBytes)
					break
				}
			}
		case kindImportDecl:
			c.handleImport(child, fCtx)
		}
	}
}

func (c *Collector) handleImport(node *sitter.Node, fCtx *core.FileContext) {
	isStatic := false
	var pathParts []string

	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		kind := child.Kind()

		if kind == "static" {
			isStatic = true
			continue
		}

		if kind == kindScopedIdentifier || kind == kindIdentifier || kind == "asterisk" {
			pathParts = append(pathParts, child.Utf8Text(fCtx.SourceBytes))
		}
	}

	if len(pathParts) == 0 {
		return
	}

	fullPath := strings.Join(pathParts, ".")
	isWildcard := pathParts[len(pathParts)-1] == "*"

	loc := newConverter(fCtx.FilePath, nil).location(node)
	entry := &core.ImportEntry{
		RawImportPath: fullPath,
		IsWildcard:    isWildcard,
		IsStatic:      isStatic,
		Location:      &loc,
	}

	alias := ""
	if isWildcard {
		alias = "*"
		entry.Kind = model.Package
	} else {
		alias = fullPath[strings.LastIndex(fullPath, ".")+1:]
		entry.Kind = model.Class
		if isStatic {
			entry.Kind = model.Unknown
		}
	}
	entry.Alias = alias
	fCtx.AddImport(alias, entry)
}

// collectDefinitionsRecursive 为每个声明节点创建唯一的 Symbol。
// owner 是最近的类型或方法符号，prefix 是子声明的 QN 前缀。
func (c *Collector) collectDefinitionsRecursive(st *collectState, node, parent *model.Node, owner *model.Symbol, prefix string) {
	if sym := c.definitionOf(st, node, parent, owner, prefix); sym != nil {
		st.fCtx.AddDefinition(sym, prefix, node)

		// 只有类型与方法需要作为后续子节点的 owner
		if sym.IsType() || sym.Kind == model.Method {
			owner = sym
			prefix = sym.QualifiedName
		}
	}

	for child := range node.Children() {
		c.collectDefinitionsRecursive(st, child, node, owner, prefix)
	}
}

func (c *Collector) definitionOf(st *collectState, node, parent *model.Node, owner *model.Symbol, prefix string) *model.Symbol {
	switch {
	case node.Kind().IsTypeDeclaration():
		return c.typeSymbol(st, node, owner, prefix)
	case node.Is(model.NodeMethod):
		return &model.Symbol{
			Kind:          model.Method,
			Name:          node.Name(),
			QualifiedName: c.resolver.BuildQualifiedName(prefix, node.Name()),
			Owner:         owner,
			Modifiers:     c.methodModifiers(node, owner),
			Decl:          node,
		}
	case node.Is(model.NodeVariable):
		if node.Name() == "" {
			return nil
		}
		kind, mods := c.variableKind(node, parent, owner)
		return &model.Symbol{
			Kind:          kind,
			Name:          node.Name(),
			QualifiedName: c.resolver.BuildQualifiedName(prefix, node.Name()),
			Owner:         owner,
			Modifiers:     mods,
			Decl:          node,
		}
	}
	return nil
}

func (c *Collector) typeSymbol(st *collectState, node *model.Node, owner *model.Symbol, prefix string) *model.Symbol {
	var kind model.ElementKind
	switch node.Kind() {
	case model.NodeClass:
		kind = model.Class
	case model.NodeInterface:
		kind = model.Interface
	case model.NodeEnum:
		kind = model.Enum
	case model.NodeRecord:
		kind = model.Record
	default:
		kind = model.KAnnotation
	}

	sym := &model.Symbol{
		Kind:      kind,
		Name:      node.Name(),
		Owner:     owner,
		Modifiers: modifiersOf(node),
		Decl:      node,
	}

	if sym.Name == "" {
		// 匿名类按 javac 的方式编号：Outer$1, Outer$2 ...
		outer := owner
		if outer != nil && !outer.IsType() {
			outer = outer.EnclosingType()
		}
		st.anonCount[outer]++
		base := prefix
		if outer != nil {
			base = outer.QualifiedName
		}
		sym.QualifiedName = base + "$" + strconv.Itoa(st.anonCount[outer])
	} else {
		sym.QualifiedName = c.resolver.BuildQualifiedName(prefix, sym.Name)
	}

	if kind == model.Record {
		sym.Modifiers = withModifiers(sym.Modifiers, modFinal)
	}
	if owner != nil && owner.IsType() && (owner.Kind == model.Interface || owner.Kind == model.KAnnotation) {
		sym.Modifiers = withModifiers(sym.Modifiers, modPublic, modStatic)
	}
	return sym
}

// variableKind 区分成员字段、枚举常量、record 组件与局部变量，并补全隐式修饰符
func (c *Collector) variableKind(node, parent *model.Node, owner *model.Symbol) (model.ElementKind, []string) {
	mods := modifiersOf(node)
	switch node.Grammar() {
	case kindFieldDecl:
		if owner != nil && (owner.Kind == model.Interface || owner.Kind == model.KAnnotation) {
			mods = withModifiers(mods, modPublic, modStatic, modFinal)
		}
		return model.Field, mods
	case kindConstantDecl:
		return model.Field, withModifiers(mods, modPublic, modStatic, modFinal)
	case kindEnumConstant:
		return model.EnumConstant, withModifiers(mods, modPublic, modStatic, modFinal)
	}

	// record 组件通过自动生成的访问器对外可见
	if parent != nil && parent.Grammar() == kindFormalParameters && owner != nil && owner.Kind == model.Record {
		return model.Field, withModifiers(mods, modFinal)
	}
	return model.Variable, mods
}

func (c *Collector) methodModifiers(node *model.Node, owner *model.Symbol) []string {
	mods := modifiersOf(node)
	if owner != nil && owner.Kind == model.Interface && !slicesContainsAny(mods, modPrivate, modStatic, "default") {
		if node.ChildByField("body") == nil {
			mods = withModifiers(mods, modAbstract)
		}
		mods = withModifiers(mods, modPublic)
	}
	return mods
}

// modifiersOf 返回声明节点上的关键字修饰符，按源码顺序
func modifiersOf(node *model.Node) []string {
	for child := range node.Children() {
		if child.Is(model.NodeModifiers) {
			return strings.Fields(child.Value())
		}
	}
	return nil
}

func withModifiers(mods []string, extra ...string) []string {
	for _, m := range extra {
		if !slicesContainsAny(mods, m) {
			mods = append(mods, m)
		}
	}
	return mods
}

func slicesContainsAny(mods []string, targets ...string) bool {
	for _, m := range mods {
		for _, t := range targets {
			if m == t {
				return true
			}
		}
	}
	return false
}
