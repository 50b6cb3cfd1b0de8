package checks

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"sync"

	"github.com/CodMac/go-treesitter-java-checks/core"
	"github.com/CodMac/go-treesitter-java-checks/model"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[model.RuleKey]Check)
)

// Register 注册一条规则，通常在 init() 中调用
func Register(c Check) {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry[c.Key()] = c
}

// Get 按规则标识获取已注册的规则
func Get(key model.RuleKey) (Check, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	c, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("no check registered for rule: %s", key)
	}
	return c, nil
}

// All 返回按规则标识排序的全部已注册规则
func All() []Check {
	registryMu.RLock()
	defer registryMu.RUnlock()

	all := make([]Check, 0, len(registry))
	for _, c := range registry {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Key() < all[j].Key() })
	return all
}

// Keys 返回全部已注册规则标识
func Keys() []model.RuleKey {
	var keys []model.RuleKey
	for _, c := range All() {
		keys = append(keys, c.Key())
	}
	return keys
}

// Engine 对一个编译单元依次运行启用的规则。Engine 本身不可变，可以在多个 worker 间共享。
type Engine struct {
	cfg    *Config
	checks []Check
	logger *slog.Logger
}

// NewEngine 创建引擎；keys 为空时启用全部已注册规则
func NewEngine(cfg *Config, logger *slog.Logger, keys ...model.RuleKey) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	var enabled []Check
	if len(keys) == 0 {
		enabled = All()
	} else {
		for _, k := range keys {
			c, err := Get(k)
			if err != nil {
				return nil, err
			}
			enabled = append(enabled, c)
		}
	}

	return &Engine{cfg: cfg, checks: enabled, logger: logger}, nil
}

// Checks 返回启用的规则
func (e *Engine) Checks() []Check {
	return slices.Clone(e.checks)
}

// Run 运行所有启用的规则并返回按 (位置, 规则) 排序的问题列表。
// 语义信息不可用时直接返回空结果。
func (e *Engine) Run(fc *core.FileContext) []model.Finding {
	if fc == nil || !fc.HasSemantic() {
		return nil
	}

	var findings []model.Finding
	for _, c := range e.checks {
		p := &Pass{
			File:     fc,
			Semantic: fc.Semantic,
			Config:   e.cfg,
			Logger:   e.logger.With("rule", c.Key(), "file", fc.FilePath),
			rule:     c.Key(),
		}
		c.Run(p)
		findings = append(findings, p.findings...)
	}

	model.SortFindings(findings)
	return findings
}
