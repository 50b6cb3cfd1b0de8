package java_test

import (
	"path/filepath"
	"testing"

	"github.com/CodMac/go-treesitter-java-checks/core"
	"github.com/CodMac/go-treesitter-java-checks/model"
	"github.com/CodMac/go-treesitter-java-checks/parser"
	"github.com/CodMac/go-treesitter-java-checks/x/java"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestFilePath(name string) string {
	currentDir, _ := filepath.Abs(filepath.Dir("."))
	return filepath.Join(currentDir, "testdata", name)
}

func getJavaParser(t *testing.T) parser.Parser {
	javaParser, err := parser.NewParser(model.LangJava)
	if err != nil {
		t.Fatalf("Failed to create Java parser: %v", err)
	}
	t.Cleanup(javaParser.Close)
	return javaParser
}

// collectFile 只运行收集阶段
func collectFile(t *testing.T, name string) *core.FileContext {
	t.Helper()
	path := getTestFilePath(name)

	tree, sourceBytes, err := getJavaParser(t).ParseFile(path)
	require.NoError(t, err)
	defer tree.Close()
	require.False(t, tree.RootNode().HasError(), "fixture %s has syntax errors", name)

	fCtx, err := java.NewJavaCollector(java.NewJavaSymbolResolver()).CollectDefinitions(tree.RootNode(), path, sourceBytes)
	require.NoError(t, err)
	return fCtx
}

// definition 按限定名查找唯一的声明
func definition(t *testing.T, fCtx *core.FileContext, qn string) *model.Symbol {
	t.Helper()
	var found []*model.Symbol
	for _, def := range fCtx.Definitions() {
		if def.Symbol.QualifiedName == qn {
			found = append(found, def.Symbol)
		}
	}
	require.Len(t, found, 1, "expected exactly one definition of %s", qn)
	return found[0]
}

func TestJavaCollector_CollectDefinitions(t *testing.T) {
	fCtx := collectFile(t, filepath.Join("com", "example", "app", "MyClass.java"))

	// 1. 验证 Package Name
	assert.Equal(t, "com.example.app", fCtx.PackageName)

	// 2. 验证关键定义的 QN 和 Kind
	expected := map[string]model.ElementKind{
		"com.example.app.MyClass":                  model.Class,
		"com.example.app.MyClass.serialVersionUID": model.Field,
		"com.example.app.MyClass.count":            model.Field,
		"com.example.app.MyClass.limit":            model.Field,
		"com.example.app.MyClass.names":            model.Field,
		"com.example.app.MyClass.MyClass":          model.Method,
		"com.example.app.MyClass.MyClass.count":    model.Variable,
		"com.example.app.MyClass.run":              model.Method,
		"com.example.app.MyClass.run.r":            model.Variable,
		"com.example.app.MyClass$1":                model.Class,
		"com.example.app.MyClass$1.run":            model.Method,
		"com.example.app.MyClass.Inner":            model.Class,
		"com.example.app.MyClass.Inner.touch":      model.Method,
		"com.example.app.MyClass.Inner.touch.args": model.Variable,
		"com.example.app.MyClass.Inner.touch.a":    model.Variable,
		"com.example.app.MyClass.Color":            model.Enum,
		"com.example.app.MyClass.Color.RED":        model.EnumConstant,
		"com.example.app.MyClass.Color.GREEN":      model.EnumConstant,
		"com.example.app.MyClass.Color$1":          model.Class,
		"com.example.app.MyClass.Callback":         model.Interface,
		"com.example.app.MyClass.Callback.LIMIT":   model.Field,
		"com.example.app.MyClass.Callback.call":    model.Method,
		"com.example.app.MyClass.Point":            model.Record,
		"com.example.app.MyClass.Point.x":          model.Field,
		"com.example.app.MyClass.Point.y":          model.Field,
	}
	for qn, kind := range expected {
		t.Run(qn, func(t *testing.T) {
			assert.Equal(t, kind, definition(t, fCtx, qn).Kind)
		})
	}

	t.Run("Verify declarators share declaration modifiers", func(t *testing.T) {
		count := definition(t, fCtx, "com.example.app.MyClass.count")
		limit := definition(t, fCtx, "com.example.app.MyClass.limit")
		assert.Equal(t, []string{"private"}, count.Modifiers)
		assert.Equal(t, []string{"private"}, limit.Modifiers)
		assert.NotSame(t, count.Decl, limit.Decl)
		assert.Equal(t, 9, limit.Decl.Location().StartLine)
	})

	t.Run("Verify implicit modifiers", func(t *testing.T) {
		assert.ElementsMatch(t, []string{"public", "static", "final"}, definition(t, fCtx, "com.example.app.MyClass.Callback.LIMIT").Modifiers)
		assert.ElementsMatch(t, []string{"public", "abstract"}, definition(t, fCtx, "com.example.app.MyClass.Callback.call").Modifiers)
		assert.ElementsMatch(t, []string{"public", "static", "final"}, definition(t, fCtx, "com.example.app.MyClass.Color.RED").Modifiers)
		assert.True(t, definition(t, fCtx, "com.example.app.MyClass.Point").HasModifier("final"))

		x := definition(t, fCtx, "com.example.app.MyClass.Point.x")
		assert.True(t, x.HasModifier("final"))
		assert.False(t, x.HasModifier("private"))
	})

	t.Run("Verify owners", func(t *testing.T) {
		anon := definition(t, fCtx, "com.example.app.MyClass$1")
		assert.True(t, anon.IsAnonymous())
		assert.Equal(t, "com.example.app.MyClass.run", anon.Owner.QualifiedName)
		assert.Equal(t, "com.example.app.MyClass", anon.EnclosingType().QualifiedName)

		local := definition(t, fCtx, "com.example.app.MyClass.run.r")
		assert.Equal(t, model.Method, local.Owner.Kind)
	})
}

func TestJavaCollector_Imports(t *testing.T) {
	fCtx := collectFile(t, filepath.Join("com", "example", "app", "MyClass.java"))

	require.Len(t, fCtx.Imports["Serializable"], 1)
	single := fCtx.Imports["Serializable"][0]
	assert.Equal(t, "java.io.Serializable", single.RawImportPath)
	assert.Equal(t, model.Class, single.Kind)
	assert.False(t, single.IsWildcard)
	require.NotNil(t, single.Location)
	assert.Equal(t, 3, single.Location.StartLine)

	require.Len(t, fCtx.Imports["*"], 1)
	wildcard := fCtx.Imports["*"][0]
	assert.Equal(t, "java.util.*", wildcard.RawImportPath)
	assert.True(t, wildcard.IsWildcard)
	assert.Equal(t, model.Package, wildcard.Kind)

	require.Len(t, fCtx.Imports["emptyList"], 1)
	static := fCtx.Imports["emptyList"][0]
	assert.True(t, static.IsStatic)
	assert.Equal(t, model.Unknown, static.Kind)
}

func TestJavaCollector_SyntaxTree(t *testing.T) {
	fCtx := collectFile(t, filepath.Join("com", "example", "app", "MyClass.java"))

	root := fCtx.RootNode
	require.NotNil(t, root)
	assert.Equal(t, model.NodeCompilationUnit, root.Kind())

	// 顶层类声明的位置从 1 开始计数
	cls := definition(t, fCtx, "com.example.app.MyClass").Decl
	assert.Equal(t, model.NodeClass, cls.Kind())
	assert.Equal(t, 7, cls.Location().StartLine)
	assert.Equal(t, 1, cls.Location().StartColumn)

	// 字段声明携带修饰符与类型
	uid := definition(t, fCtx, "com.example.app.MyClass.serialVersionUID").Decl
	assert.Equal(t, "private static final", uid.ChildByField("modifiers").Value())
	assert.Equal(t, "long", uid.ChildByField("type").Name())
	assert.Equal(t, "1L", uid.ChildByField("value").Value())
}
