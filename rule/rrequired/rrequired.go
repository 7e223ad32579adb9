// Package rrequired provides 'required' rule to check that a field is present and, for text
// values, not blank
package rrequired

import (
	"strings"

	"github.com/relex/gotils/logger"
	"github.com/relex/record-refiner/base"
	"github.com/relex/record-refiner/base/bconfig"
)

// Config for requiredRule
type Config struct {
	bconfig.RuleTarget `yaml:",inline"`
}

type requiredRule struct {
}

// NewRule creates requiredRule
func (cfg *Config) NewRule(_ logger.Logger) base.RuleCheck {
	return &requiredRule{}
}

// VerifyConfig verifies requiredRule config
func (cfg *Config) VerifyConfig() error {
	return nil
}

func (rule *requiredRule) Check(value any) bool {
	if value == nil {
		return false
	}
	if text, isText := value.(string); isText {
		return len(strings.TrimSpace(text)) > 0
	}
	return true
}
