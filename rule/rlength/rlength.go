// Package rlength provides 'length' rule to check the character count of a text field
package rlength

import (
	"fmt"
	"unicode/utf8"

	"github.com/relex/gotils/logger"
	"github.com/relex/record-refiner/base"
	"github.com/relex/record-refiner/base/bconfig"
)

// Config for lengthRule; Max of zero means unbounded
type Config struct {
	bconfig.RuleTarget `yaml:",inline"`
	Min                int `yaml:"min"`
	Max                int `yaml:"max"`
}

type lengthRule struct {
	min int
	max int
}

// NewRule creates lengthRule
func (cfg *Config) NewRule(_ logger.Logger) base.RuleCheck {
	return &lengthRule{min: cfg.Min, max: cfg.Max}
}

// VerifyConfig verifies lengthRule config
func (cfg *Config) VerifyConfig() error {
	if cfg.Min < 0 {
		return fmt.Errorf(".min is negative")
	}
	if cfg.Max < 0 {
		return fmt.Errorf(".max is negative")
	}
	if cfg.Max > 0 && cfg.Min > cfg.Max {
		return fmt.Errorf(".min %d exceeds .max %d", cfg.Min, cfg.Max)
	}
	return nil
}

func (rule *lengthRule) Check(value any) bool {
	length := utf8.RuneCountInString(base.RenderString(value))
	if length < rule.min {
		return false
	}
	if rule.max > 0 && length > rule.max {
		return false
	}
	return true
}
