package bconfig

import (
	"github.com/relex/gotils/logger"
	"github.com/relex/record-refiner/base"
)

// RuleTarget defines the common parts of RuleCheckConfig implementations: the type name, the dotted
// path of the checked field and the human-readable error message recorded on failure
type RuleTarget struct {
	Header  `yaml:",inline"`
	Field   string `yaml:"field"`
	Message string `yaml:"message"`
}

// GetField returns the dotted path of the checked field
func (target *RuleTarget) GetField() string {
	return target.Field
}

// GetMessage returns the error message recorded when the rule fails
func (target *RuleTarget) GetMessage() string {
	return target.Message
}

// RuleCheckConfig provides an interface for the configuration of base.RuleCheck(s)
//
// All the implementations should support YAML unmarshalling
type RuleCheckConfig interface {
	BaseConfig

	GetField() string
	GetMessage() string

	NewRule(parentLogger logger.Logger) base.RuleCheck

	VerifyConfig() error
}

// RuleCheckConfigHolder holds RuleCheckConfig
type RuleCheckConfigHolder = ConfigHolder[RuleCheckConfig]

// RuleCheckConfigCreatorTable defines the table of constructors for RuleCheckConfig implementations
type RuleCheckConfigCreatorTable = ConfigCreatorTable[RuleCheckConfig]

// RegisterRuleCheckConfigConstructors registers the table of RuleCheckConfig constructors
func RegisterRuleCheckConfigConstructors(newMap RuleCheckConfigCreatorTable) {
	RegisterConfigConstructors(newMap)
}
