// Package rrange provides 'range' rule to check that a numeric field falls within bounds
//
// A value that cannot be interpreted as a number fails the rule.
package rrange

import (
	"fmt"

	"github.com/relex/gotils/logger"
	"github.com/relex/record-refiner/base"
	"github.com/relex/record-refiner/base/bconfig"
)

// Config for rangeRule; nil bounds are unbounded
type Config struct {
	bconfig.RuleTarget `yaml:",inline"`
	Min                *float64 `yaml:"min"`
	Max                *float64 `yaml:"max"`
}

type rangeRule struct {
	min *float64
	max *float64
}

// NewRule creates rangeRule
func (cfg *Config) NewRule(_ logger.Logger) base.RuleCheck {
	return &rangeRule{min: cfg.Min, max: cfg.Max}
}

// VerifyConfig verifies rangeRule config
func (cfg *Config) VerifyConfig() error {
	if cfg.Min == nil && cfg.Max == nil {
		return fmt.Errorf("one of .min and .max must be specified")
	}
	if cfg.Min != nil && cfg.Max != nil && *cfg.Min > *cfg.Max {
		return fmt.Errorf(".min %f exceeds .max %f", *cfg.Min, *cfg.Max)
	}
	return nil
}

func (rule *rangeRule) Check(value any) bool {
	number, ok := base.ToFloat(value)
	if !ok {
		return false
	}
	if rule.min != nil && number < *rule.min {
		return false
	}
	if rule.max != nil && number > *rule.max {
		return false
	}
	return true
}
