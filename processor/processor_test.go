package processor_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/CodMac/go-treesitter-java-checks/checks"
	"github.com/CodMac/go-treesitter-java-checks/model"
	"github.com/CodMac/go-treesitter-java-checks/processor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/CodMac/go-treesitter-java-checks/x/java" // 确保注册 Java
)

const unusedField = `package p;

class A {
    private int foo;
}
`

// writeTree 在临时目录中创建文件，返回根目录
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func newProcessor(t *testing.T, opts ...processor.Option) *processor.FileProcessor {
	t.Helper()
	engine, err := checks.NewEngine(checks.DefaultConfig(), nil)
	require.NoError(t, err)
	proc, err := processor.NewFileProcessor(model.LangJava, engine, opts...)
	require.NoError(t, err)
	return proc
}

func relPaths(t *testing.T, root string, files []string) []string {
	var out []string
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestDiscover(t *testing.T) {
	root := writeTree(t, map[string]string{
		"A.java":                      unusedField,
		"src/main/B.java":             unusedField,
		"src/main/notes.txt":          "x",
		"build/Gen.java":              unusedField,
		"src/generated/Dto.java":      unusedField,
		".git/objects/Hidden.java":    unusedField,
		"src/test/resources/Res.java": unusedField,
	})

	t.Run("default walk skips hidden directories", func(t *testing.T) {
		files, err := processor.Discover(root, model.LangJava, nil)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			"A.java", "src/main/B.java", "build/Gen.java", "src/generated/Dto.java", "src/test/resources/Res.java",
		}, relPaths(t, root, files))
	})

	t.Run("exclude patterns", func(t *testing.T) {
		files, err := processor.Discover(root, model.LangJava, []string{"build/**", "**/generated/**", "src/test/**"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"A.java", "src/main/B.java"}, relPaths(t, root, files))
	})

	t.Run("root level files match double star patterns", func(t *testing.T) {
		files, err := processor.Discover(root, model.LangJava, []string{"**/A.java", "build/**", "src/**"})
		require.ErrorIs(t, err, processor.ErrNoFiles)
		assert.Empty(t, files)
	})

	t.Run("double star patterns prune top level directories", func(t *testing.T) {
		files, err := processor.Discover(root, model.LangJava, []string{"**/build/**", "**/generated/**"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			"A.java", "src/main/B.java", "src/test/resources/Res.java",
		}, relPaths(t, root, files))
	})

	t.Run("single file", func(t *testing.T) {
		files, err := processor.Discover(filepath.Join(root, "A.java"), model.LangJava, nil)
		require.NoError(t, err)
		assert.Len(t, files, 1)

		_, err = processor.Discover(filepath.Join(root, "src", "main", "notes.txt"), model.LangJava, nil)
		assert.ErrorIs(t, err, processor.ErrNoFiles)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := processor.Discover(root, model.LangJava, []string{"[unclosed"})
		assert.Error(t, err)
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := processor.Discover(filepath.Join(root, "nope"), model.LangJava, nil)
		assert.Error(t, err)
	})
}

func TestProcessFiles_IsolatesFailures(t *testing.T) {
	root := writeTree(t, map[string]string{
		"Good.java":   unusedField,
		"Broken.java": "package p;\nclass B { private int x; void m( }\n",
	})
	files := []string{
		filepath.Join(root, "Good.java"),
		filepath.Join(root, "Broken.java"),
		filepath.Join(root, "Missing.java"),
	}

	metrics := processor.NewMetrics(nil)
	proc := newProcessor(t, processor.WithMetrics(metrics), processor.WithWorkers(3))

	findings, err := proc.ProcessFiles(context.Background(), files)
	require.NoError(t, err)

	// 语法错误的文件没有语义信息，不产生结果；缺失的文件被跳过
	require.Len(t, findings, 1)
	assert.Equal(t, filepath.Join(root, "Good.java"), findings[0].Location.FilePath)
	assert.Equal(t, `Remove this unused "foo" private field.`, findings[0].Message)
}

func TestProcessFiles_SemanticDisabled(t *testing.T) {
	root := writeTree(t, map[string]string{"A.java": unusedField})

	proc := newProcessor(t, processor.WithSemantic(false))
	findings, err := proc.ProcessFiles(context.Background(), []string{filepath.Join(root, "A.java")})
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestProcessFiles_Cancelled(t *testing.T) {
	root := writeTree(t, map[string]string{"A.java": unusedField})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newProcessor(t).ProcessFiles(ctx, []string{filepath.Join(root, "A.java")})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessFiles_Deterministic(t *testing.T) {
	files := map[string]string{}
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		files[name+".java"] = unusedField
	}
	root := writeTree(t, files)
	paths, err := processor.Discover(root, model.LangJava, nil)
	require.NoError(t, err)

	proc := newProcessor(t, processor.WithWorkers(4))
	first, err := proc.ProcessFiles(context.Background(), paths)
	require.NoError(t, err)
	second, err := proc.ProcessFiles(context.Background(), paths)
	require.NoError(t, err)

	require.Len(t, first, 6)
	for i := range first {
		assert.Equal(t, first[i].Location, second[i].Location)
		assert.Equal(t, first[i].Message, second[i].Message)
	}
}

func TestAnalyzeSource(t *testing.T) {
	proc := newProcessor(t)

	fc, err := proc.AnalyzeSource("A.java", []byte(unusedField))
	require.NoError(t, err)
	assert.True(t, fc.HasSemantic())
	assert.Equal(t, "p", fc.PackageName)

	fc, err = proc.AnalyzeSource("B.java", []byte("class B { void m( }"))
	assert.ErrorIs(t, err, processor.ErrSyntax)
	require.NotNil(t, fc)
	assert.False(t, fc.HasSemantic())
	assert.NotNil(t, fc.RootNode)
}

func TestNewFileProcessor_UnknownLanguage(t *testing.T) {
	engine, err := checks.NewEngine(nil, nil)
	require.NoError(t, err)
	_, err = processor.NewFileProcessor(model.Language("cobol"), engine)
	assert.Error(t, err)
}
