package java

import (
	"strings"

	"github.com/CodMac/go-treesitter-java-checks/core"
)

const javaLangPrefix = "java.lang."

type SymbolResolver struct{}

func NewJavaSymbolResolver() *SymbolResolver {
	return &SymbolResolver{}
}

func (j *SymbolResolver) BuildQualifiedName(parentQN, name string) string {
	if parentQN == "" || parentQN == "." {
		return name
	}
	return parentQN + "." + name
}

// ResolveType 按 Java 的可见性顺序解析类型名。name 不含泛型参数与数组维度。
func (j *SymbolResolver) ResolveType(fc *core.FileContext, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	if primitiveTypes[name] {
		return name, true
	}

	// 限定名 "Outer.Inner" 或 "java.util.List"：先把首段当作类型解析
	if head, rest, ok := strings.Cut(name, "."); ok {
		if qn, found := j.resolveSimple(fc, head); found {
			return qn + "." + rest, true
		}
		_, known := lookupBuiltin(name)
		return name, known || j.isLocalType(fc, name)
	}

	if qn, found := j.resolveSimple(fc, name); found {
		return qn, true
	}

	// 兜底：同包
	return j.BuildQualifiedName(fc.PackageName, name), false
}

func (j *SymbolResolver) resolveSimple(fc *core.FileContext, name string) (string, bool) {
	// 1. 文件内声明的类型 (含嵌套类型)
	for _, def := range fc.DefinitionsBySN[name] {
		if def.Symbol.IsType() {
			return def.Symbol.QualifiedName, true
		}
	}

	// 2. 精确导入
	for _, imp := range fc.Imports[name] {
		if !imp.IsWildcard && !imp.IsStatic {
			return imp.RawImportPath, true
		}
	}

	// 3. java.lang 默认导入
	if _, ok := lookupBuiltin(javaLangPrefix + name); ok {
		return javaLangPrefix + name, true
	}

	// 4. Java 特有的通配符导入，只能对已知类型判定
	for _, imp := range fc.Imports["*"] {
		if imp.IsStatic {
			continue
		}
		qn := strings.TrimSuffix(imp.RawImportPath, "*") + name
		if _, ok := lookupBuiltin(qn); ok {
			return qn, true
		}
	}
	return "", false
}

func (j *SymbolResolver) isLocalType(fc *core.FileContext, qn string) bool {
	for _, def := range fc.Definitions() {
		if def.Symbol.IsType() && def.Symbol.QualifiedName == qn {
			return true
		}
	}
	return false
}
