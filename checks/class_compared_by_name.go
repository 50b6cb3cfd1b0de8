package checks

import (
	"github.com/CodMac/go-treesitter-java-checks/core"
	"github.com/CodMac/go-treesitter-java-checks/model"
)

func init() {
	Register(ClassComparedByName{})
}

var (
	stringEquals = core.NewSignatureMatcher(
		core.NewSignature("java.lang.String", "equals"),
	)
	classGetName = core.NewSignatureMatcher(
		core.NewSignature("java.lang.Class", "getName"),
		core.NewSignature("java.lang.Class", "getSimpleName"),
	)
)

// ClassComparedByName 报告通过类名字符串比较类型的写法
type ClassComparedByName struct{}

func (ClassComparedByName) Key() model.RuleKey { return "S1872" }
func (ClassComparedByName) Name() string       { return "Classes should not be compared by name" }

func (ClassComparedByName) Run(p *Pass) {
	if p.Semantic == nil {
		return
	}
	core.Inspect(p.File.RootNode, func(n *model.Node) bool {
		if stringEquals.Matches(p.Semantic, n) {
			onEqualsFound(p, n)
		}
		return true
	})
}

func onEqualsFound(p *Pass, call *model.Node) {
	detector := &classNameDetector{pass: p}
	if recv := call.Receiver(); recv != nil {
		core.Walk(recv, detector)
	}
	if args := call.Arguments(); len(args) > 0 {
		core.Walk(args[0], detector)
	}
}

// classNameDetector 在方法调用处只沿接收者继续向下，不进入实参
type classNameDetector struct {
	core.BaseVisitor
	pass *Pass
}

func (d *classNameDetector) VisitMethodInvocation(n *model.Node) core.Action {
	if classGetName.Matches(d.pass.Semantic, n) {
		d.pass.Report(n, `Use an "instanceof" comparison instead.`)
	}
	if recv := n.Receiver(); recv != nil {
		core.Walk(recv, d)
	}
	return core.SkipChildren
}
