// Package rule registers the list of all built-in RuleCheck implementations
package rule

import (
	"github.com/relex/record-refiner/base/bconfig"
	"github.com/relex/record-refiner/rule/rexpr"
	"github.com/relex/record-refiner/rule/rlength"
	"github.com/relex/record-refiner/rule/rmatch"
	"github.com/relex/record-refiner/rule/rpattern"
	"github.com/relex/record-refiner/rule/rrange"
	"github.com/relex/record-refiner/rule/rrequired"
)

func init() {
	bconfig.RegisterRuleCheckConfigConstructors(map[string]func() bconfig.RuleCheckConfig{
		"expr":     func() bconfig.RuleCheckConfig { return &rexpr.Config{} },
		"length":   func() bconfig.RuleCheckConfig { return &rlength.Config{} },
		"match":    func() bconfig.RuleCheckConfig { return &rmatch.Config{} },
		"pattern":  func() bconfig.RuleCheckConfig { return &rpattern.Config{} },
		"range":    func() bconfig.RuleCheckConfig { return &rrange.Config{} },
		"required": func() bconfig.RuleCheckConfig { return &rrequired.Config{} },
	})
}

// Register registers all rule config types
func Register() {
	// trigger init()
}
