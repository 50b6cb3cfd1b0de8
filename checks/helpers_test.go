package checks_test

import (
	"testing"

	"github.com/CodMac/go-treesitter-java-checks/checks"
	"github.com/CodMac/go-treesitter-java-checks/core"
	"github.com/CodMac/go-treesitter-java-checks/model"
	"github.com/CodMac/go-treesitter-java-checks/processor"
	"github.com/stretchr/testify/require"

	_ "github.com/CodMac/go-treesitter-java-checks/x/java" // 确保注册 Java
)

// analyze 解析内联 Java 源码并构建语义模型
func analyze(t *testing.T, src string) *core.FileContext {
	t.Helper()
	engine, err := checks.NewEngine(nil, nil)
	require.NoError(t, err)
	proc, err := processor.NewFileProcessor(model.LangJava, engine)
	require.NoError(t, err)

	fc, err := proc.AnalyzeSource("Test.java", []byte(src))
	require.NoError(t, err)
	require.True(t, fc.HasSemantic())
	return fc
}

// run 只运行指定的规则
func run(t *testing.T, src string, keys ...model.RuleKey) []model.Finding {
	t.Helper()
	engine, err := checks.NewEngine(checks.DefaultConfig(), nil, keys...)
	require.NoError(t, err)
	return engine.Run(analyze(t, src))
}

type finding struct {
	Line    int
	Column  int
	Message string
}

func simplify(findings []model.Finding) []finding {
	out := []finding{}
	for _, f := range findings {
		out = append(out, finding{f.Location.StartLine, f.Location.StartColumn, f.Message})
	}
	return out
}
