package context

import (
	"fmt"
	"sync"

	"github.com/CodMac/go-treesitter-java-checks/core"
	"github.com/CodMac/go-treesitter-java-checks/model"
)

// --- 语言特有的符号解析接口 ---

type SymbolResolver interface {
	// BuildQualifiedName 根据父节点和当前名构建 QN
	// (Java 用 ".", C++ 用 "::")
	BuildQualifiedName(parentQN, name string) string

	// ResolveType 在单个文件的可见范围内把类型名解析为完整限定名：
	// 文件内声明、精确导入、语言默认包、通配符导入、同包。
	// resolved 为 false 时 qn 只是按同包规则推测的结果。
	ResolveType(fc *core.FileContext, name string) (qn string, resolved bool)
}

var (
	resolverMu        sync.RWMutex
	symbolResolverMap = make(map[model.Language]SymbolResolver)
)

// RegisterSymbolResolver 注册一个语言与其对应的 SymbolResolver。
func RegisterSymbolResolver(lang model.Language, resolver SymbolResolver) {
	resolverMu.Lock()
	defer resolverMu.Unlock()

	symbolResolverMap[lang] = resolver
}

// GetSymbolResolver 根据语言类型获取对应的 SymbolResolver 实例。
func GetSymbolResolver(lang model.Language) (SymbolResolver, error) {
	resolverMu.RLock()
	defer resolverMu.RUnlock()

	resolver, ok := symbolResolverMap[lang]
	if !ok {
		return nil, fmt.Errorf("no SymbolResolver for language: %s", lang)
	}

	return resolver, nil
}
