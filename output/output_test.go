package output_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CodMac/go-treesitter-java-checks/checks"
	"github.com/CodMac/go-treesitter-java-checks/core"
	"github.com/CodMac/go-treesitter-java-checks/model"
	"github.com/CodMac/go-treesitter-java-checks/noisefilter"
	"github.com/CodMac/go-treesitter-java-checks/output"
	"github.com/CodMac/go-treesitter-java-checks/processor"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/CodMac/go-treesitter-java-checks/x/java" // 确保注册 Java
)

func sampleFindings() []model.Finding {
	return []model.Finding{
		{Rule: "S1068", Location: model.Location{FilePath: "a/A.java", StartLine: 4, StartColumn: 5}, Message: `Remove this unused "foo" private field.`},
		{Rule: "S1872", Location: model.Location{FilePath: "a/A.java", StartLine: 9, StartColumn: 16}, Message: `Use an "instanceof" comparison instead.`},
		{Rule: "S2057", Location: model.Location{FilePath: "b/B.java", StartLine: 3, StartColumn: 1}, Message: `Add a "static final long serialVersionUID" field to this class.`},
	}
}

func TestJSONLWriter_WriteFindings(t *testing.T) {
	var buf bytes.Buffer
	header := output.NewRunHeader([]model.RuleKey{"S1068", "S1872", "S2057"}, 2)
	require.NoError(t, output.NewJSONLWriter(&buf).WriteFindings(header, sampleFindings()))

	scanner := bufio.NewScanner(&buf)
	var lines []map[string]any
	for scanner.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		lines = append(lines, rec)
	}
	require.Len(t, lines, 4)

	// 1. 运行头
	assert.Equal(t, "run", lines[0]["Type"])
	_, err := uuid.Parse(lines[0]["RunID"].(string))
	assert.NoError(t, err)
	assert.EqualValues(t, 2, lines[0]["Files"])

	// 2. 问题记录，不输出语法节点
	assert.Equal(t, "finding", lines[1]["Type"])
	assert.Equal(t, "S1068", lines[1]["Rule"])
	assert.NotContains(t, lines[1], "Node")
	loc := lines[1]["Location"].(map[string]any)
	assert.EqualValues(t, 4, loc["StartLine"])
	assert.Equal(t, "a/A.java", loc["FilePath"])
}

func TestNewRunHeader_UniqueIDs(t *testing.T) {
	a := output.NewRunHeader(nil, 0)
	b := output.NewRunHeader(nil, 0)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestExportFindings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "findings.jsonl")
	n, err := output.ExportFindings(path, output.NewRunHeader(nil, 1), sampleFindings())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(string(data), "\n"))
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.NewTextWriter(&buf).WriteFindings(sampleFindings()))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "a/A.java"), "findings are grouped by file")
	assert.Contains(t, out, "4:5")
	assert.Contains(t, out, `S1068  Remove this unused "foo" private field.`)
	assert.Contains(t, out, "b/B.java")
	assert.Contains(t, out, "3 issue(s) found.")

	buf.Reset()
	require.NoError(t, output.NewTextWriter(&buf).WriteFindings(nil))
	assert.Contains(t, buf.String(), "No issues found.")
}

func analyze(t *testing.T, src string) *core.FileContext {
	t.Helper()
	engine, err := checks.NewEngine(nil, nil)
	require.NoError(t, err)
	proc, err := processor.NewFileProcessor(model.LangJava, engine)
	require.NoError(t, err)
	fc, err := proc.AnalyzeSource("src/p/Shapes.java", []byte(src))
	require.NoError(t, err)
	return fc
}

func TestWriteMermaidGraph(t *testing.T) {
	fc := analyze(t, `package p;

import java.io.Serializable;

class Shape implements Serializable {
    class Part {}
}

class Circle extends Shape {}
`)

	var buf bytes.Buffer
	require.NoError(t, output.WriteMermaidGraph(&buf, []*core.FileContext{fc}, nil))
	graph := buf.String()

	assert.True(t, strings.HasPrefix(graph, "    graph LR\n"))
	assert.Contains(t, graph, `subgraph "📦 p"`)
	assert.Contains(t, graph, `subgraph "📄 Shapes.java"`)
	assert.Contains(t, graph, `n_p_Shape["Shape <small>(CLASS)</small>"]`)
	assert.Contains(t, graph, "n_p_Circle ==继承/实现==> n_p_Shape")
	assert.Contains(t, graph, "n_p_Shape ==继承/实现==> n_java_io_Serializable")
	assert.Contains(t, graph, "n_p_Shape_Part -.嵌套.-> n_p_Shape")
	assert.Contains(t, graph, "n_p_Shape ==继承/实现==> n_java_lang_Object")

	t.Run("Verify implicit supertypes are filtered", func(t *testing.T) {
		var filtered bytes.Buffer
		require.NoError(t, output.WriteMermaidGraph(&filtered, []*core.FileContext{fc}, noisefilter.GetNoiseFilter(model.LangJava)))
		assert.NotContains(t, filtered.String(), "n_java_lang_Object")
		assert.Contains(t, filtered.String(), "n_p_Shape ==继承/实现==> n_java_io_Serializable")
	})
}

func TestGetNoiseFilter_Unregistered(t *testing.T) {
	assert.False(t, noisefilter.GetNoiseFilter("cobol").IsNoise("java.lang.Object"))
}

func TestExportMermaidHTML(t *testing.T) {
	fc := analyze(t, "package p;\nclass A {}\n")
	path := filepath.Join(t.TempDir(), "hierarchy.html")
	require.NoError(t, output.ExportMermaidHTML(path, []*core.FileContext{fc}, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mermaid.initialize")
	assert.Contains(t, string(data), "n_p_A")
}
