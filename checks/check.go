package checks

import (
	"log/slog"

	"github.com/CodMac/go-treesitter-java-checks/core"
	"github.com/CodMac/go-treesitter-java-checks/model"
)

// Check 是一条规则。实现必须无状态：每次 Run 的全部中间状态都放在 Pass 或局部变量中，
// 同一个 Check 实例可以被多个 worker 同时用于不同文件。
type Check interface {
	Key() model.RuleKey
	Name() string
	Run(p *Pass)
}

// Pass 是一条规则对一个编译单元的一次运行
type Pass struct {
	File     *core.FileContext
	Semantic *core.SemanticModel
	Config   *Config
	Logger   *slog.Logger

	rule     model.RuleKey
	findings []model.Finding
}

// Report 记录一个锚定在 node 上的问题
func (p *Pass) Report(node *model.Node, message string) {
	if node == nil {
		return
	}
	p.findings = append(p.findings, model.Finding{
		Rule:     p.rule,
		Location: node.Location(),
		Message:  message,
		Node:     node,
	})
}
