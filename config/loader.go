package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load 按 默认值 -> 配置文件 -> 环境变量 的优先级加载配置
	Load() (*Config, error)
}

type loader struct {
	rootDir    string
	configFile string
}

// NewLoader 创建加载器。configFile 为空时在 rootDir 中查找 .javacheck.yaml。
func NewLoader(rootDir, configFile string) Loader {
	return &loader{
		rootDir:    rootDir,
		configFile: configFile,
	}
}

func (l *loader) Load() (*Config, error) {
	v := viper.New()

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		v.SetConfigName(".javacheck")
		v.SetConfigType("yaml")
		v.AddConfigPath(l.rootDir)
	}

	// 环境变量覆盖，例如 JAVACHECK_ANALYSIS_WORKERS
	v.SetEnvPrefix("JAVACHECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// 没有配置文件时使用默认值 + 环境变量；显式指定的文件必须存在
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || l.configFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setDefaults 同时让 AutomaticEnv 能识别所有键
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("rules.enabled", defaults.Rules.Enabled)
	v.SetDefault("rules.used_type_annotations", defaults.Rules.UsedTypeAnnotations)
	v.SetDefault("rules.used_field_annotations", defaults.Rules.UsedFieldAnnotations)
	v.SetDefault("rules.gui_prefixes", defaults.Rules.GUIPrefixes)

	v.SetDefault("analysis.workers", defaults.Analysis.Workers)
	v.SetDefault("analysis.semantic", defaults.Analysis.Semantic)

	v.SetDefault("paths.exclude", defaults.Paths.Exclude)
}
