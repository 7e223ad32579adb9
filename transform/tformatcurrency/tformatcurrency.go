// Package tformatcurrency provides 'formatCurrency' transform to render a numeric field as a
// currency amount with two decimals, e.g. "$1234.50"
//
// Input that cannot be parsed as a decimal degrades to the zero amount instead of failing the record.
package tformatcurrency

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/relex/gotils/logger"
	"github.com/relex/record-refiner/base"
	"github.com/relex/record-refiner/base/bconfig"
)

// Config for formatCurrencyTransform
type Config struct {
	bconfig.TransformTarget `yaml:",inline"`
	Symbol                  string `yaml:"symbol"`
	Label                   string `yaml:"label"`
}

type formatCurrencyTransform struct {
	symbol        string
	countDegraded func()
}

// NewTransform creates formatCurrencyTransform
func (cfg *Config) NewTransform(_ logger.Logger, degradationRegistry base.DegradationCounterRegistry) base.FieldTransform {
	symbol := cfg.Symbol
	if len(symbol) == 0 {
		symbol = "$"
	}
	label := cfg.Label
	if len(label) == 0 {
		label = cfg.Type
	}
	return &formatCurrencyTransform{
		symbol:        symbol,
		countDegraded: degradationRegistry.RegisterDegradationCounter(label),
	}
}

// VerifyConfig verifies formatCurrencyTransform config
func (cfg *Config) VerifyConfig() error {
	if strings.ContainsAny(cfg.Symbol, "0123456789") {
		return fmt.Errorf(".symbol '%s' contains digits", cfg.Symbol)
	}
	return nil
}

func (tf *formatCurrencyTransform) Apply(value any) (any, error) {
	amount, ok := base.ToFloat(value)
	if !ok {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(base.RenderString(value)), 64)
		if err != nil {
			tf.countDegraded()
			return tf.symbol + "0.00", nil
		}
		amount = parsed
	}
	return fmt.Sprintf("%s%.2f", tf.symbol, amount), nil
}
