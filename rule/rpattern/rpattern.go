// Package rpattern provides 'pattern' rule to check a text field against a regular expression
package rpattern

import (
	"fmt"
	"regexp"

	"github.com/relex/gotils/logger"
	"github.com/relex/record-refiner/base"
	"github.com/relex/record-refiner/base/bconfig"
)

// Config for patternRule
type Config struct {
	bconfig.RuleTarget `yaml:",inline"`
	Pattern            string `yaml:"pattern"`
}

type patternRule struct {
	pattern *regexp.Regexp
}

// NewRule creates patternRule
func (cfg *Config) NewRule(_ logger.Logger) base.RuleCheck {
	return &patternRule{
		pattern: regexp.MustCompile(cfg.Pattern),
	}
}

// VerifyConfig verifies patternRule config
func (cfg *Config) VerifyConfig() error {
	if len(cfg.Pattern) == 0 {
		return fmt.Errorf(".pattern is unspecified")
	}
	if _, err := regexp.Compile(cfg.Pattern); err != nil {
		return fmt.Errorf(".pattern: %w", err)
	}
	return nil
}

func (rule *patternRule) Check(value any) bool {
	return rule.pattern.MatchString(base.RenderString(value))
}
