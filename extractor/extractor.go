package extractor

import (
	"fmt"
	"sync"

	"github.com/CodMac/go-treesitter-java-checks/core"
	"github.com/CodMac/go-treesitter-java-checks/model"
)

// Extractor 定义了第二阶段的能力：在单个文件内解析引用，构建语义模型。
type Extractor interface {
	// Extract 解析类型、继承关系、注解、引用与方法调用目标。
	// 只读取 fc，不修改 fc.Semantic，由调用方决定是否挂载结果。
	Extract(fc *core.FileContext) (*core.SemanticModel, error)
}

var (
	extractorMu  sync.RWMutex
	extractorMap = make(map[model.Language]Extractor)
)

// RegisterExtractor 注册一个语言与其对应的 Extractor
func RegisterExtractor(lang model.Language, ext Extractor) {
	extractorMu.Lock()
	defer extractorMu.Unlock()

	extractorMap[lang] = ext
}

// GetExtractor 根据语言类型获取对应的 Extractor 实例。
func GetExtractor(lang model.Language) (Extractor, error) {
	extractorMu.RLock()
	defer extractorMu.RUnlock()

	ext, ok := extractorMap[lang]
	if !ok {
		return nil, fmt.Errorf("no extractor registered for language: %s", lang)
	}
	return ext, nil
}
