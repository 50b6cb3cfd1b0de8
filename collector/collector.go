package collector

import (
	"fmt"
	"sync"

	"github.com/CodMac/go-treesitter-java-checks/core"
	"github.com/CodMac/go-treesitter-java-checks/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Collector 用于收集符号定义。
type Collector interface {
	// CollectDefinitions 将 tree-sitter 语法树转换为不可变的 model.Node 树，
	// 登记所有声明，返回该文件的 FileContext。返回后调用方即可释放 tree-sitter 树。
	CollectDefinitions(rootNode *sitter.Node, filePath string, sourceBytes []byte) (*core.FileContext, error)
}

var (
	collectorMu  sync.RWMutex
	collectorMap = make(map[model.Language]Collector)
)

// RegisterCollector 注册一个语言与其对应的 Collector
func RegisterCollector(lang model.Language, collector Collector) {
	collectorMu.Lock()
	defer collectorMu.Unlock()

	collectorMap[lang] = collector
}

// GetCollector 根据语言类型获取对应的 Collector 实例。
func GetCollector(lang model.Language) (Collector, error) {
	collectorMu.RLock()
	defer collectorMu.RUnlock()

	collector, ok := collectorMap[lang]
	if !ok {
		return nil, fmt.Errorf("no collector registered for language: %s", lang)
	}

	return collector, nil
}
