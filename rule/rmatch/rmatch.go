// Package rmatch provides 'match' rule to check a text field against a glob pattern, e.g.
// "orders-*" or "*.internal"
package rmatch

import (
	"fmt"

	"github.com/gobwas/glob"
	"github.com/relex/gotils/logger"
	"github.com/relex/record-refiner/base"
	"github.com/relex/record-refiner/base/bconfig"
)

// Config for matchRule
type Config struct {
	bconfig.RuleTarget `yaml:",inline"`
	Pattern            string `yaml:"pattern"`
}

type matchRule struct {
	pattern glob.Glob
}

// NewRule creates matchRule
func (cfg *Config) NewRule(_ logger.Logger) base.RuleCheck {
	return &matchRule{
		pattern: glob.MustCompile(cfg.Pattern),
	}
}

// VerifyConfig verifies matchRule config
func (cfg *Config) VerifyConfig() error {
	if len(cfg.Pattern) == 0 {
		return fmt.Errorf(".pattern is unspecified")
	}
	if _, err := glob.Compile(cfg.Pattern); err != nil {
		return fmt.Errorf(".pattern: %w", err)
	}
	return nil
}

func (rule *matchRule) Check(value any) bool {
	return rule.pattern.Match(base.RenderString(value))
}
