// Package tparsenumeric provides 'parseNumericValue' transform to parse a text field as a decimal
// number, tolerating thousand separators and a currency sign
//
// Unparseable input degrades to 0.
package tparsenumeric

import (
	"strconv"
	"strings"

	"github.com/relex/gotils/logger"
	"github.com/relex/record-refiner/base"
	"github.com/relex/record-refiner/base/bconfig"
)

// Config for parseNumericTransform
type Config struct {
	bconfig.TransformTarget `yaml:",inline"`
	Label                   string `yaml:"label"`
}

type parseNumericTransform struct {
	stripper      *strings.Replacer
	countDegraded func()
}

// NewTransform creates parseNumericTransform
func (cfg *Config) NewTransform(_ logger.Logger, degradationRegistry base.DegradationCounterRegistry) base.FieldTransform {
	label := cfg.Label
	if len(label) == 0 {
		label = cfg.Type
	}
	return &parseNumericTransform{
		stripper:      strings.NewReplacer(",", "", "$", "", " ", ""),
		countDegraded: degradationRegistry.RegisterDegradationCounter(label),
	}
}

// VerifyConfig verifies parseNumericTransform config
func (cfg *Config) VerifyConfig() error {
	return nil
}

func (tf *parseNumericTransform) Apply(value any) (any, error) {
	switch value.(type) {
	case float64, float32, int, int64, uint64:
		number, _ := base.ToFloat(value)
		return number, nil
	}
	number, err := strconv.ParseFloat(tf.stripper.Replace(base.RenderString(value)), 64)
	if err != nil {
		tf.countDegraded()
		return float64(0), nil
	}
	return number, nil
}
