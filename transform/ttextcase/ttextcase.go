// Package ttextcase provides the 'convertToUpper' and 'capitalizeFirst' transforms for letter-case
// conversion of a text field
package ttextcase

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/relex/gotils/logger"
	"github.com/relex/record-refiner/base"
	"github.com/relex/record-refiner/base/bconfig"
)

// Config for textCaseTransform, shared by 'convertToUpper' and 'capitalizeFirst'
type Config struct {
	bconfig.TransformTarget `yaml:",inline"`
}

type textCaseTransform struct {
	capitalizeFirstOnly bool
}

// NewTransform creates textCaseTransform for the configured type
func (cfg *Config) NewTransform(_ logger.Logger, _ base.DegradationCounterRegistry) base.FieldTransform {
	return &textCaseTransform{
		capitalizeFirstOnly: cfg.Type == "capitalizeFirst",
	}
}

// VerifyConfig verifies textCaseTransform config
func (cfg *Config) VerifyConfig() error {
	switch cfg.Type {
	case "convertToUpper", "capitalizeFirst":
		return nil
	default:
		return fmt.Errorf(".type: unsupported '%s'", cfg.Type)
	}
}

func (tf *textCaseTransform) Apply(value any) (any, error) {
	text := base.RenderString(value)
	if !tf.capitalizeFirstOnly {
		return strings.ToUpper(text), nil
	}
	if len(text) == 0 {
		return text, nil
	}
	first, size := utf8.DecodeRuneInString(text)
	return string(unicode.ToUpper(first)) + strings.ToLower(text[size:]), nil
}
