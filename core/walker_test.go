package core_test

import (
	"testing"

	"github.com/CodMac/go-treesitter-java-checks/core"
	"github.com/CodMac/go-treesitter-java-checks/model"
	"github.com/stretchr/testify/assert"
)

func node(kind model.NodeKind, name string, line int, children ...*model.Node) *model.Node {
	return model.NewNode(model.NodeSpec{
		Kind:     kind,
		Name:     name,
		Location: model.Location{FilePath: "T.java", StartLine: line, StartColumn: 1},
		Children: children,
	})
}

type recorder struct {
	core.BaseVisitor
	visited []string
	skip    string
}

func (r *recorder) VisitClass(n *model.Node) core.Action {
	r.visited = append(r.visited, "class:"+n.Name())
	return core.Continue
}

func (r *recorder) VisitMethodInvocation(n *model.Node) core.Action {
	r.visited = append(r.visited, "call:"+n.Name())
	if n.Name() == r.skip {
		return core.SkipChildren
	}
	return core.Continue
}

func (r *recorder) VisitNode(n *model.Node) core.Action {
	r.visited = append(r.visited, "node:"+n.Name())
	return core.Continue
}

func sampleTree() *model.Node {
	inner := node(model.NodeMethodInvocation, "inner", 3, node(model.NodeIdentifier, "x", 3))
	outer := node(model.NodeMethodInvocation, "outer", 3, inner, node(model.NodeIdentifier, "y", 3))
	return node(model.NodeCompilationUnit, "", 1,
		node(model.NodeClass, "A", 1,
			outer,
			node(model.NodeClass, "B", 5),
		),
	)
}

func TestWalk_SourceOrder(t *testing.T) {
	r := &recorder{}
	core.Walk(sampleTree(), r)

	assert.Equal(t, []string{
		"class:A", "call:outer", "call:inner", "node:x", "node:y", "class:B",
	}, r.visited)
}

func TestWalk_SkipChildren(t *testing.T) {
	r := &recorder{skip: "outer"}
	core.Walk(sampleTree(), r)

	// outer 的子树 (inner, x, y) 不再被访问，兄弟节点 B 仍被访问
	assert.Equal(t, []string{"class:A", "call:outer", "class:B"}, r.visited)
}

func TestWalk_NilRoot(t *testing.T) {
	r := &recorder{}
	core.Walk(nil, r)
	assert.Empty(t, r.visited)
}

func TestInspect(t *testing.T) {
	var names []string
	core.Inspect(sampleTree(), func(n *model.Node) bool {
		if n.Is(model.NodeIdentifier) {
			names = append(names, n.Name())
		}
		return !n.Is(model.NodeMethodInvocation) || n.Name() != "inner"
	})
	assert.Equal(t, []string{"y"}, names)
}
