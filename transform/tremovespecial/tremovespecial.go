// Package tremovespecial provides 'removeSpecialChars' transform to strip everything but letters,
// digits and whitespace from a text field
package tremovespecial

import (
	"strings"
	"unicode"

	"github.com/relex/gotils/logger"
	"github.com/relex/record-refiner/base"
	"github.com/relex/record-refiner/base/bconfig"
)

// Config for removeSpecialCharsTransform
type Config struct {
	bconfig.TransformTarget `yaml:",inline"`
}

type removeSpecialCharsTransform struct {
}

// NewTransform creates removeSpecialCharsTransform
func (cfg *Config) NewTransform(_ logger.Logger, _ base.DegradationCounterRegistry) base.FieldTransform {
	return &removeSpecialCharsTransform{}
}

// VerifyConfig verifies removeSpecialCharsTransform config
func (cfg *Config) VerifyConfig() error {
	return nil
}

func (tf *removeSpecialCharsTransform) Apply(value any) (any, error) {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, base.RenderString(value)), nil
}
