package model

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Language 标识支持的编程语言
type Language string

const (
	LangJava Language = "java"
)

var (
	langMu  sync.RWMutex
	langMap = make(map[Language]*sitter.Language) // 语言标识 -> Tree-sitter 语言对象
)

// RegisterLanguage 用于注册 Tree-sitter 语言库，通常由 x/<lang> 包的 init() 调用
func RegisterLanguage(lang Language, tsLang *sitter.Language) {
	langMu.Lock()
	defer langMu.Unlock()

	langMap[lang] = tsLang
}

// GetLanguage 获取已注册的 Tree-sitter 语言对象
func GetLanguage(lang Language) (*sitter.Language, error) {
	langMu.RLock()
	defer langMu.RUnlock()

	tsLang, ok := langMap[lang]
	if !ok {
		return nil, fmt.Errorf("language %s not registered", lang)
	}

	return tsLang, nil
}

// Extension 返回语言对应的源文件扩展名
func (l Language) Extension() string {
	switch l {
	case LangJava:
		return ".java"
	default:
		return ""
	}
}

// RegisteredLanguages 返回已注册的语言，按名称排序
func RegisteredLanguages() []Language {
	langMu.RLock()
	defer langMu.RUnlock()

	return slices.Sorted(maps.Keys(langMap))
}
