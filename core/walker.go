package core

import "github.com/CodMac/go-treesitter-java-checks/model"

// Action 控制遍历是否进入当前节点的子树
type Action int

const (
	// Continue 继续遍历子节点
	Continue Action = iota
	// SkipChildren 不再进入当前节点的子树，用于避免重复匹配嵌套出现
	SkipChildren
)

// Visitor 为每类节点提供一个钩子。实现方通常嵌入 BaseVisitor，只覆盖关心的方法。
type Visitor interface {
	VisitCompilationUnit(n *model.Node) Action
	VisitClass(n *model.Node) Action // 所有类型声明，含匿名类
	VisitMethod(n *model.Node) Action
	VisitVariable(n *model.Node) Action
	VisitMethodInvocation(n *model.Node) Action
	VisitMemberSelect(n *model.Node) Action
	VisitNewClass(n *model.Node) Action
	VisitNode(n *model.Node) Action // 其它种类
}

// BaseVisitor 的所有钩子都返回 Continue
type BaseVisitor struct{}

func (BaseVisitor) VisitCompilationUnit(*model.Node) Action  { return Continue }
func (BaseVisitor) VisitClass(*model.Node) Action            { return Continue }
func (BaseVisitor) VisitMethod(*model.Node) Action           { return Continue }
func (BaseVisitor) VisitVariable(*model.Node) Action         { return Continue }
func (BaseVisitor) VisitMethodInvocation(*model.Node) Action { return Continue }
func (BaseVisitor) VisitMemberSelect(*model.Node) Action     { return Continue }
func (BaseVisitor) VisitNewClass(*model.Node) Action         { return Continue }
func (BaseVisitor) VisitNode(*model.Node) Action             { return Continue }

// Walk 以深度优先、源码顺序只读遍历 root。遍历本身不保存任何状态，
// 同一棵树可以被多个 Visitor 独立、并发地遍历。
func Walk(root *model.Node, v Visitor) {
	if root == nil {
		return
	}
	if dispatch(root, v) == SkipChildren {
		return
	}
	for child := range root.Children() {
		Walk(child, v)
	}
}

func dispatch(n *model.Node, v Visitor) Action {
	switch n.Kind() {
	case model.NodeCompilationUnit:
		return v.VisitCompilationUnit(n)
	case model.NodeClass, model.NodeInterface, model.NodeEnum, model.NodeRecord, model.NodeAnnotationType:
		return v.VisitClass(n)
	case model.NodeMethod:
		return v.VisitMethod(n)
	case model.NodeVariable:
		return v.VisitVariable(n)
	case model.NodeMethodInvocation:
		return v.VisitMethodInvocation(n)
	case model.NodeMemberSelect:
		return v.VisitMemberSelect(n)
	case model.NodeNewClass:
		return v.VisitNewClass(n)
	default:
		return v.VisitNode(n)
	}
}

// Inspect 是 Walk 的函数形式，f 返回 false 时跳过子树
func Inspect(root *model.Node, f func(*model.Node) bool) {
	Walk(root, inspector(f))
}

type inspector func(*model.Node) bool

func (f inspector) action(n *model.Node) Action {
	if f(n) {
		return Continue
	}
	return SkipChildren
}

func (f inspector) VisitCompilationUnit(n *model.Node) Action  { return f.action(n) }
func (f inspector) VisitClass(n *model.Node) Action            { return f.action(n) }
func (f inspector) VisitMethod(n *model.Node) Action           { return f.action(n) }
func (f inspector) VisitVariable(n *model.Node) Action         { return f.action(n) }
func (f inspector) VisitMethodInvocation(n *model.Node) Action { return f.action(n) }
func (f inspector) VisitMemberSelect(n *model.Node) Action     { return f.action(n) }
func (f inspector) VisitNewClass(n *model.Node) Action         { return f.action(n) }
func (f inspector) VisitNode(n *model.Node) Action             { return f.action(n) }
