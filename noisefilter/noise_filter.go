package noisefilter

import (
	"sync"

	"github.com/CodMac/go-treesitter-java-checks/model"
)

// NoiseFilter 定义了如何识别特定语言中的背景噪音。
// 层级图用它隐藏每个类型都会有的隐式父类型，避免图被同一个节点淹没。
type NoiseFilter interface {
	IsNoise(qualifiedName string) bool
}

var (
	noiseFilterMu  sync.RWMutex
	noiseFilterMap = make(map[model.Language]NoiseFilter)
)

// RegisterNoiseFilter 注册一个语言与其对应的 NoiseFilter
func RegisterNoiseFilter(lang model.Language, noiseFilter NoiseFilter) {
	noiseFilterMu.Lock()
	defer noiseFilterMu.Unlock()

	noiseFilterMap[lang] = noiseFilter
}

// GetNoiseFilter 根据语言类型获取对应的 NoiseFilter 实例。未注册时返回不过滤的默认实现。
func GetNoiseFilter(lang model.Language) NoiseFilter {
	noiseFilterMu.RLock()
	defer noiseFilterMu.RUnlock()

	noiseFilter, ok := noiseFilterMap[lang]
	if !ok {
		return DefaultNoiseFilter{}
	}
	return noiseFilter
}

// DefaultNoiseFilter 默认过滤器：不对任何 QN 进行噪音判定
type DefaultNoiseFilter struct{}

func (DefaultNoiseFilter) IsNoise(string) bool { return false }
