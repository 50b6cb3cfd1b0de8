package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/CodMac/go-treesitter-java-checks/checks"
	"github.com/CodMac/go-treesitter-java-checks/model"
)

var (
	ErrInvalidWorkers = errors.New("analysis.workers must be positive")
	ErrUnknownRule    = errors.New("unknown rule")
)

// Validate 校验配置，返回全部错误
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Analysis.Workers <= 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidWorkers, cfg.Analysis.Workers))
	}

	known := checks.Keys()
	for _, k := range cfg.Rules.Enabled {
		if !slices.Contains(known, model.RuleKey(k)) {
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownRule, k))
		}
	}
	return errors.Join(errs...)
}
