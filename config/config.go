package config

import (
	"github.com/CodMac/go-treesitter-java-checks/checks"
	"github.com/CodMac/go-treesitter-java-checks/core"
	"github.com/CodMac/go-treesitter-java-checks/model"
)

// Config 对应 .javacheck.yaml，可被 JAVACHECK_* 环境变量覆盖
type Config struct {
	Rules    RulesConfig    `yaml:"rules" mapstructure:"rules"`
	Analysis AnalysisConfig `yaml:"analysis" mapstructure:"analysis"`
	Paths    PathsConfig    `yaml:"paths" mapstructure:"paths"`
}

// RulesConfig 控制启用的规则及其参数
type RulesConfig struct {
	Enabled              []string `yaml:"enabled" mapstructure:"enabled"`                               // 为空时启用全部规则
	UsedTypeAnnotations  []string `yaml:"used_type_annotations" mapstructure:"used_type_annotations"`   // S1068 类级白名单
	UsedFieldAnnotations []string `yaml:"used_field_annotations" mapstructure:"used_field_annotations"` // S1068 字段级白名单
	GUIPrefixes          []string `yaml:"gui_prefixes" mapstructure:"gui_prefixes"`                     // S2057 GUI 包前缀
}

// AnalysisConfig 控制处理流程
type AnalysisConfig struct {
	Workers  int  `yaml:"workers" mapstructure:"workers"`
	Semantic bool `yaml:"semantic" mapstructure:"semantic"` // false 时所有依赖语义的规则都不产生结果
}

// PathsConfig 定义忽略的文件
type PathsConfig struct {
	Exclude []string `yaml:"exclude" mapstructure:"exclude"` // 相对扫描根目录的 glob
}

// Default 返回默认配置，规则参数与 checks.DefaultConfig 一致
func Default() *Config {
	rules := checks.DefaultConfig()
	return &Config{
		Rules: RulesConfig{
			UsedTypeAnnotations:  rules.UsedTypeAnnotations.Names(),
			UsedFieldAnnotations: rules.UsedFieldAnnotations.Names(),
			GUIPrefixes:          rules.GUIPrefixes,
		},
		Analysis: AnalysisConfig{
			Workers:  4,
			Semantic: true,
		},
		Paths: PathsConfig{
			Exclude: []string{
				"**/build/**",
				"**/target/**",
				"**/generated/**",
			},
		},
	}
}

// ChecksConfig 转换为规则引擎使用的只读配置
func (c *Config) ChecksConfig() *checks.Config {
	return &checks.Config{
		UsedTypeAnnotations:  core.NewNameSet(c.Rules.UsedTypeAnnotations...),
		UsedFieldAnnotations: core.NewNameSet(c.Rules.UsedFieldAnnotations...),
		GUIPrefixes:          append([]string(nil), c.Rules.GUIPrefixes...),
	}
}

// RuleKeys 返回启用的规则标识；为空表示全部
func (c *Config) RuleKeys() []model.RuleKey {
	keys := make([]model.RuleKey, 0, len(c.Rules.Enabled))
	for _, k := range c.Rules.Enabled {
		keys = append(keys, model.RuleKey(k))
	}
	return keys
}
