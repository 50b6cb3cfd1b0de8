package java

import (
	"strings"

	"github.com/CodMac/go-treesitter-java-checks/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// converter 把 tree-sitter 语法树转换为不可变的 model.Node 树。
// 转换后不再持有任何 tree-sitter 对象，原始树可以立即释放。
type converter struct {
	filePath    string
	sourceBytes []byte
}

func newConverter(filePath string, sourceBytes []byte) *converter {
	return &converter{filePath: filePath, sourceBytes: sourceBytes}
}

func (c *converter) convertRoot(root *sitter.Node) *model.Node {
	nodes := c.convert(root, "")
	if len(nodes) == 0 {
		return model.NewNode(model.NodeSpec{Kind: model.NodeCompilationUnit, Grammar: kindProgram, Location: c.location(root)})
	}
	return nodes[0]
}

// convert 转换单个节点。字段/局部变量声明会按 declarator 展开为多个 VARIABLE 节点，注释被丢弃。
func (c *converter) convert(n *sitter.Node, field string) []*model.Node {
	kind := n.Kind()
	switch {
	case kind == kindLineComment || kind == kindBlockComment:
		return nil
	case typeKinds[kind]:
		return one(c.leaf(n, model.NodeType, field, compact(c.text(n)), ""))
	case literalKinds[kind]:
		return one(c.leaf(n, model.NodeLiteral, field, "", c.text(n)))
	}

	switch kind {
	case kindProgram:
		return one(c.node(n, model.NodeCompilationUnit, field, "", "", c.children(n)))
	case kindIdentifier:
		return one(c.leaf(n, model.NodeIdentifier, field, c.text(n), ""))
	case kindThis, kindSuper:
		return one(c.leaf(n, model.NodeOther, field, kind, ""))
	case kindScopedIdentifier:
		return one(c.leaf(n, model.NodeOther, field, c.text(n), ""))
	case kindClassDecl:
		return one(c.typeDecl(n, model.NodeClass, field))
	case kindInterfaceDecl:
		return one(c.typeDecl(n, model.NodeInterface, field))
	case kindEnumDecl:
		return one(c.typeDecl(n, model.NodeEnum, field))
	case kindRecordDecl:
		return one(c.typeDecl(n, model.NodeRecord, field))
	case kindAnnotationTypeDecl:
		return one(c.typeDecl(n, model.NodeAnnotationType, field))
	case kindMethodDecl, kindConstructorDecl, kindCompactConstructor, kindAnnotationElement:
		return one(c.node(n, model.NodeMethod, field, c.text(n.ChildByFieldName("name")), "", c.children(n)))
	case kindFieldDecl, kindConstantDecl, kindLocalVarDecl:
		return c.declarators(n)
	case kindFormalParameter, kindSpreadParameter, kindCatchFormalParam:
		return one(c.parameter(n, field))
	case kindResource:
		if n.ChildByFieldName("name") != nil {
			return one(c.parameter(n, field))
		}
	case kindEnumConstant:
		return one(c.enumConstant(n, field))
	case kindEnhancedFor:
		return one(c.enhancedFor(n, field))
	case kindLambda:
		return one(c.lambda(n, field))
	case kindInstanceof:
		return one(c.instanceof(n, field))
	case kindTypePattern:
		return one(c.typePattern(n, field))
	case kindMethodInvocation:
		return one(c.node(n, model.NodeMethodInvocation, field, c.text(n.ChildByFieldName("name")), "", c.children(n)))
	case kindFieldAccess:
		return one(c.node(n, model.NodeMemberSelect, field, c.text(n.ChildByFieldName("field")), "", c.children(n)))
	case kindObjectCreation:
		return one(c.newClass(n, field))
	case kindArgumentList, kindAnnotationArgList:
		return one(c.node(n, model.NodeArguments, field, "", "", c.children(n)))
	case kindModifiers:
		return one(c.modifiers(n))
	case kindMarkerAnnotation, kindAnnotation:
		return one(c.annotation(n, field))
	case kindElementValuePair:
		return one(c.elementValuePair(n, field))
	}

	value := ""
	if op := n.ChildByFieldName("operator"); op != nil {
		value = c.text(op)
	}
	return one(c.node(n, model.NodeOther, field, "", value, c.children(n)))
}

// children 按源码顺序转换所有具名子节点，保留字段名
func (c *converter) children(n *sitter.Node) []*model.Node {
	var out []*model.Node
	c.eachChild(n, func(child *sitter.Node, field string) {
		out = append(out, c.convert(child, field)...)
	})
	return out
}

func (c *converter) eachChild(n *sitter.Node, fn func(child *sitter.Node, field string)) {
	cursor := n.Walk()
	defer cursor.Close()

	if !cursor.GotoFirstChild() {
		return
	}
	for {
		child := cursor.Node()
		if child.IsNamed() {
			fn(child, cursor.FieldName())
		}
		if !cursor.GotoNextSibling() {
			break
		}
	}
}

func (c *converter) typeDecl(n *sitter.Node, kind model.NodeKind, field string) *model.Node {
	return c.node(n, kind, field, c.text(n.ChildByFieldName("name")), "", c.children(n))
}

// anonymousClass 把 class_body 包装成没有名称的类声明
func (c *converter) anonymousClass(body *sitter.Node) *model.Node {
	inner := c.node(body, model.NodeOther, "body", "", "", c.children(body))
	return model.NewNode(model.NodeSpec{
		Kind:     model.NodeClass,
		Grammar:  kindClassBody,
		Field:    "body",
		Location: c.location(body),
		Children: []*model.Node{inner},
	})
}

func (c *converter) newClass(n *sitter.Node, field string) *model.Node {
	var children []*model.Node
	c.eachChild(n, func(child *sitter.Node, f string) {
		if child.Kind() == kindClassBody {
			children = append(children, c.anonymousClass(child))
			return
		}
		children = append(children, c.convert(child, f)...)
	})
	return c.node(n, model.NodeNewClass, field, compact(c.text(n.ChildByFieldName("type"))), "", children)
}

func (c *converter) enumConstant(n *sitter.Node, field string) *model.Node {
	var children []*model.Node
	c.eachChild(n, func(child *sitter.Node, f string) {
		if child.Kind() == kindClassBody {
			children = append(children, c.anonymousClass(child))
			return
		}
		children = append(children, c.convert(child, f)...)
	})
	return c.node(n, model.NodeVariable, field, c.text(n.ChildByFieldName("name")), "", children)
}

// declarators 把 "int a, b[] = x;" 展开为每个 declarator 一个 VARIABLE 节点，
// 修饰符与类型在每个节点下各转换一份。
func (c *converter) declarators(n *sitter.Node) []*model.Node {
	var modifiers, typ *sitter.Node
	var decls []*sitter.Node
	c.eachChild(n, func(child *sitter.Node, f string) {
		switch {
		case child.Kind() == kindModifiers:
			modifiers = child
		case f == "type":
			typ = child
		case f == "declarator":
			decls = append(decls, child)
		}
	})

	var out []*model.Node
	for _, d := range decls {
		var children []*model.Node
		if modifiers != nil {
			children = append(children, c.convert(modifiers, "modifiers")...)
		}
		if typ != nil {
			children = append(children, c.convert(typ, "type")...)
		}
		children = append(children, c.children(d)...)

		loc := c.location(n)
		end := c.location(d)
		loc.EndLine, loc.EndColumn = end.EndLine, end.EndColumn
		out = append(out, model.NewNode(model.NodeSpec{
			Kind:     model.NodeVariable,
			Grammar:  n.Kind(),
			Field:    "declarator",
			Name:     c.text(d.ChildByFieldName("name")),
			Value:    c.dimensions(d),
			Location: loc,
			Children: children,
		}))
	}
	return out
}

// parameter 转换形参、可变参数、catch 参数与 try 资源声明
func (c *converter) parameter(n *sitter.Node, field string) *model.Node {
	name := n.ChildByFieldName("name")
	dims := c.dimensions(n)
	var children []*model.Node
	c.eachChild(n, func(child *sitter.Node, f string) {
		if child.Kind() == kindVariableDeclarator {
			name = child.ChildByFieldName("name")
			dims += c.dimensions(child)
			children = append(children, c.children(child)...)
			return
		}
		children = append(children, c.convert(child, f)...)
	})
	if n.Kind() == kindSpreadParameter {
		dims += "[]"
	}
	return c.node(n, model.NodeVariable, field, c.text(name), dims, children)
}

// enhancedFor 把 for (T x : xs) 中内联的循环变量提取为独立的 VARIABLE 节点
func (c *converter) enhancedFor(n *sitter.Node, field string) *model.Node {
	var varChildren, rest []*model.Node
	var name *sitter.Node
	c.eachChild(n, func(child *sitter.Node, f string) {
		switch {
		case child.Kind() == kindModifiers || f == "type" || f == "dimensions":
			varChildren = append(varChildren, c.convert(child, f)...)
		case f == "name":
			name = child
			varChildren = append(varChildren, c.convert(child, f)...)
		default:
			rest = append(rest, c.convert(child, f)...)
		}
	})
	if name == nil {
		return c.node(n, model.NodeOther, field, "", "", append(varChildren, rest...))
	}

	loopVar := c.node(name, model.NodeVariable, "variable", c.text(name), c.dimensions(n), varChildren)
	return c.node(n, model.NodeOther, field, "", "", append([]*model.Node{loopVar}, rest...))
}

func (c *converter) lambda(n *sitter.Node, field string) *model.Node {
	var children []*model.Node
	c.eachChild(n, func(child *sitter.Node, f string) {
		if f != "parameters" {
			children = append(children, c.convert(child, f)...)
			return
		}
		switch child.Kind() {
		case kindIdentifier:
			children = append(children, c.leafVariable(child, f))
		case kindInferredParameters:
			var params []*model.Node
			c.eachChild(child, func(id *sitter.Node, _ string) {
				if id.Kind() == kindIdentifier {
					params = append(params, c.leafVariable(id, ""))
				}
			})
			children = append(children, c.node(child, model.NodeOther, f, "", "", params))
		default:
			children = append(children, c.convert(child, f)...)
		}
	})
	return c.node(n, model.NodeOther, field, "", "", children)
}

// instanceof 中的模式变量 (x instanceof Foo foo) 转换为 VARIABLE 节点
func (c *converter) instanceof(n *sitter.Node, field string) *model.Node {
	name := n.ChildByFieldName("name")
	if name == nil {
		return c.node(n, model.NodeOther, field, "", "", c.children(n))
	}

	var children []*model.Node
	var typ *sitter.Node
	c.eachChild(n, func(child *sitter.Node, f string) {
		if f == "right" {
			typ = child
		}
		if f != "name" {
			children = append(children, c.convert(child, f)...)
		}
	})
	var varChildren []*model.Node
	if typ != nil {
		varChildren = c.convert(typ, "type")
	}
	children = append(children, c.node(name, model.NodeVariable, "name", c.text(name), "", varChildren))
	return c.node(n, model.NodeOther, field, "", "", children)
}

func (c *converter) typePattern(n *sitter.Node, field string) *model.Node {
	var name *sitter.Node
	var children []*model.Node
	c.eachChild(n, func(child *sitter.Node, f string) {
		if child.Kind() == kindIdentifier {
			name = child
			return
		}
		if typeKinds[child.Kind()] {
			f = "type"
		}
		children = append(children, c.convert(child, f)...)
	})
	if name == nil {
		return c.node(n, model.NodeOther, field, "", "", children)
	}
	return c.node(n, model.NodeVariable, field, c.text(name), "", children)
}

func (c *converter) leafVariable(id *sitter.Node, field string) *model.Node {
	nameNode := c.leaf(id, model.NodeIdentifier, "name", c.text(id), "")
	return c.node(id, model.NodeVariable, field, c.text(id), "", []*model.Node{nameNode})
}

// modifiers 的关键字是匿名 token，拼接后放入 Value，注解作为子节点保留
func (c *converter) modifiers(n *sitter.Node) *model.Node {
	var keywords []string
	var annotations []*model.Node
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		if child.IsNamed() {
			annotations = append(annotations, c.convert(child, "")...)
			continue
		}
		keywords = append(keywords, c.text(child))
	}
	return c.node(n, model.NodeModifiers, "modifiers", "", strings.Join(keywords, " "), annotations)
}

// annotation 的名称转换为 TYPE 叶子，避免被当作变量引用
func (c *converter) annotation(n *sitter.Node, field string) *model.Node {
	nameNode := n.ChildByFieldName("name")
	name := compact(c.text(nameNode))
	var children []*model.Node
	if nameNode != nil {
		children = append(children, c.leaf(nameNode, model.NodeType, "name", name, ""))
	}
	if args := n.ChildByFieldName("arguments"); args != nil {
		children = append(children, c.convert(args, "arguments")...)
	}
	return c.node(n, model.NodeAnnotation, field, name, "", children)
}

func (c *converter) elementValuePair(n *sitter.Node, field string) *model.Node {
	var children []*model.Node
	if v := n.ChildByFieldName("value"); v != nil {
		children = c.convert(v, "value")
	}
	return c.node(n, model.NodeOther, field, c.text(n.ChildByFieldName("key")), "", children)
}

// dimensions 返回 declarator 上的数组维度后缀，如 "int a[][]" 中的 "[][]"
func (c *converter) dimensions(n *sitter.Node) string {
	d := n.ChildByFieldName("dimensions")
	if d == nil {
		return ""
	}
	return strings.Repeat("[]", strings.Count(c.text(d), "["))
}

func (c *converter) node(n *sitter.Node, kind model.NodeKind, field, name, value string, children []*model.Node) *model.Node {
	return model.NewNode(model.NodeSpec{
		Kind:     kind,
		Grammar:  n.Kind(),
		Field:    field,
		Name:     name,
		Value:    value,
		Location: c.location(n),
		Children: children,
	})
}

func (c *converter) leaf(n *sitter.Node, kind model.NodeKind, field, name, value string) *model.Node {
	return c.node(n, kind, field, name, value, nil)
}

// location 行号从 1 开始，列号从 1 开始
func (c *converter) location(n *sitter.Node) model.Location {
	if n == nil {
		return model.Location{FilePath: c.filePath}
	}
	return model.Location{
		FilePath:    c.filePath,
		StartLine:   int(n.StartPosition().Row) + 1,
		EndLine:     int(n.EndPosition().Row) + 1,
		StartColumn: int(n.StartPosition().Column) + 1,
		EndColumn:   int(n.EndPosition().Column) + 1,
	}
}

func (c *converter) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Utf8Text(c.sourceBytes)
}

// compact 去掉类型文本中的空白，"Map< String , X >" -> "Map<String,X>"
func compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func one(n *model.Node) []*model.Node {
	return []*model.Node{n}
}
