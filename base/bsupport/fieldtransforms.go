// Package bsupport provides helpers shared by config loading and engine assembly
package bsupport

import (
	"fmt"

	"github.com/relex/gotils/logger"
	"github.com/relex/record-refiner/base"
	"github.com/relex/record-refiner/base/bconfig"
	"github.com/relex/record-refiner/defs"
)

// NewTransformsFromConfig creates transforms from a list of transform configurations
func NewTransformsFromConfig(transformConfigs []bconfig.FieldTransformConfigHolder,
	parentLogger logger.Logger, degradationRegistry base.DegradationCounterRegistry,
) []base.FieldTransform {
	transforms := make([]base.FieldTransform, len(transformConfigs))
	for i, tc := range transformConfigs {
		tlogger := parentLogger.WithFields(logger.Fields{
			defs.LabelPart:   tc.Value.GetType(),
			defs.LabelSource: tc.Location,
		})
		transforms[i] = tc.Value.NewTransform(tlogger, degradationRegistry)
	}
	return transforms
}

// VerifyTransformConfigs verifies a list of transform configurations, including their target fields
func VerifyTransformConfigs(transformConfigs []bconfig.FieldTransformConfigHolder, header string) error {
	for i, tfc := range transformConfigs {
		if err := verifyFieldPath(tfc.Value.GetField()); err != nil {
			return fmt.Errorf("%s[%d] %s: .field %w", header, i, tfc.Location, err)
		}
		if err := tfc.Value.VerifyConfig(); err != nil {
			return fmt.Errorf("%s[%d] %s: %w", header, i, tfc.Location, err)
		}
	}
	return nil
}

// VerifyRuleConfigs verifies a list of validation rule configurations, including their target fields
func VerifyRuleConfigs(ruleConfigs []bconfig.RuleCheckConfigHolder, header string) error {
	for i, rc := range ruleConfigs {
		if err := verifyFieldPath(rc.Value.GetField()); err != nil {
			return fmt.Errorf("%s[%d] %s: .field %w", header, i, rc.Location, err)
		}
		if err := rc.Value.VerifyConfig(); err != nil {
			return fmt.Errorf("%s[%d] %s: %w", header, i, rc.Location, err)
		}
	}
	return nil
}

func verifyFieldPath(path string) error {
	if len(path) == 0 {
		return fmt.Errorf("is unspecified")
	}
	if _, err := base.NewFieldLocator(path); err != nil {
		return fmt.Errorf("'%s' is invalid: %w", path, err)
	}
	return nil
}
