package model

import (
	"iter"
	"slices"
)

// NodeKind 是语法节点的种类标签，与具体 Tree-sitter 语法无关
type NodeKind string

const (
	NodeCompilationUnit  NodeKind = "COMPILATION_UNIT"
	NodeClass            NodeKind = "CLASS" // 类声明，匿名类的 Name 为空
	NodeInterface        NodeKind = "INTERFACE"
	NodeEnum             NodeKind = "ENUM"
	NodeRecord           NodeKind = "RECORD"
	NodeAnnotationType   NodeKind = "ANNOTATION_TYPE"
	NodeMethod           NodeKind = "METHOD"   // 方法与构造函数
	NodeVariable         NodeKind = "VARIABLE" // 字段、局部变量、参数，每个 declarator 一个节点
	NodeMethodInvocation NodeKind = "METHOD_INVOCATION"
	NodeMemberSelect     NodeKind = "MEMBER_SELECT" // a.b 形式的字段访问
	NodeNewClass         NodeKind = "NEW_CLASS"
	NodeIdentifier       NodeKind = "IDENTIFIER"
	NodeLiteral          NodeKind = "LITERAL"
	NodeType             NodeKind = "TYPE" // 类型引用，Name 为源码中的类型文本
	NodeAnnotation       NodeKind = "ANNOTATION"
	NodeModifiers        NodeKind = "MODIFIERS" // Value 为空格分隔的关键字修饰符
	NodeArguments        NodeKind = "ARGUMENTS"
	NodeOther            NodeKind = "OTHER" // 其余节点，Grammar 保留原始语法种类
)

// IsTypeDeclaration 判断节点种类是否为类型声明
func (k NodeKind) IsTypeDeclaration() bool {
	switch k {
	case NodeClass, NodeInterface, NodeEnum, NodeRecord, NodeAnnotationType:
		return true
	default:
		return false
	}
}

// NodeSpec 描述构造一个 Node 所需的全部信息
type NodeSpec struct {
	Kind     NodeKind
	Grammar  string // 原始语法种类 (e.g., "class_declaration")
	Field    string // 在父节点中的字段名 (e.g., "object", "arguments")
	Name     string
	Value    string
	Location Location
	Children []*Node
}

// Node 是语法树节点 (SyntaxNode)。构造后不可修改，可被多个规则并发只读访问。
type Node struct {
	kind     NodeKind
	grammar  string
	field    string
	name     string
	value    string
	loc      Location
	children []*Node
}

// NewNode 根据 NodeSpec 创建节点，Children 会被复制
func NewNode(spec NodeSpec) *Node {
	return &Node{
		kind:     spec.Kind,
		grammar:  spec.Grammar,
		field:    spec.Field,
		name:     spec.Name,
		value:    spec.Value,
		loc:      spec.Location,
		children: slices.Clone(spec.Children),
	}
}

func (n *Node) Kind() NodeKind     { return n.kind }
func (n *Node) Grammar() string    { return n.grammar }
func (n *Node) Field() string      { return n.field }
func (n *Node) Name() string       { return n.name }
func (n *Node) Value() string      { return n.value }
func (n *Node) Location() Location { return n.loc }

// Is 判断节点是否属于给定种类之一
func (n *Node) Is(kinds ...NodeKind) bool {
	return n != nil && slices.Contains(kinds, n.kind)
}

// ChildCount 返回子节点数量
func (n *Node) ChildCount() int { return len(n.children) }

// Child 返回第 i 个子节点，越界时返回 nil
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children 按源码顺序遍历子节点
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, c := range n.children {
			if !yield(c) {
				return
			}
		}
	}
}

// ChildByField 返回第一个字段名为 field 的子节点
func (n *Node) ChildByField(field string) *Node {
	for _, c := range n.children {
		if c.field == field {
			return c
		}
	}
	return nil
}

// Receiver 返回方法调用或成员访问的接收者表达式，非限定形式返回 nil
func (n *Node) Receiver() *Node {
	if !n.Is(NodeMethodInvocation, NodeMemberSelect) {
		return nil
	}
	return n.ChildByField("object")
}

// Arguments 返回调用的实参表达式列表
func (n *Node) Arguments() []*Node {
	args := n.ChildByField("arguments")
	if args == nil {
		return nil
	}
	return slices.Clone(args.children)
}
