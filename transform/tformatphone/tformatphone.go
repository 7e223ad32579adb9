// Package tformatphone provides 'formatPhoneNumber' transform to format North-American phone
// numbers as "(NNN) NNN-NNNN", with an optional "+1 " prefix for 11-digit numbers starting with 1
//
// Values with any other digit count pass through unchanged.
package tformatphone

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/relex/gotils/logger"
	"github.com/relex/record-refiner/base"
	"github.com/relex/record-refiner/base/bconfig"
)

// Config for formatPhoneTransform
type Config struct {
	bconfig.TransformTarget `yaml:",inline"`
	Label                   string `yaml:"label"`
}

type formatPhoneTransform struct {
	countUnchanged func()
}

// NewTransform creates formatPhoneTransform
func (cfg *Config) NewTransform(_ logger.Logger, degradationRegistry base.DegradationCounterRegistry) base.FieldTransform {
	label := cfg.Label
	if len(label) == 0 {
		label = cfg.Type
	}
	return &formatPhoneTransform{
		countUnchanged: degradationRegistry.RegisterDegradationCounter(label),
	}
}

// VerifyConfig verifies formatPhoneTransform config
func (cfg *Config) VerifyConfig() error {
	return nil
}

func (tf *formatPhoneTransform) Apply(value any) (any, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, base.RenderString(value))

	switch {
	case len(digits) == 10:
		return fmt.Sprintf("(%s) %s-%s", digits[0:3], digits[3:6], digits[6:10]), nil
	case len(digits) == 11 && digits[0] == '1':
		return fmt.Sprintf("+1 (%s) %s-%s", digits[1:4], digits[4:7], digits[7:11]), nil
	default:
		tf.countUnchanged()
		return value, nil
	}
}
