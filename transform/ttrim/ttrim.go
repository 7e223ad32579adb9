// Package ttrim provides 'trimWhitespace' transform to remove leading and trailing whitespace
// from a text field
package ttrim

import (
	"strings"

	"github.com/relex/gotils/logger"
	"github.com/relex/record-refiner/base"
	"github.com/relex/record-refiner/base/bconfig"
)

// Config for trimWhitespaceTransform
type Config struct {
	bconfig.TransformTarget `yaml:",inline"`
}

type trimWhitespaceTransform struct {
}

// NewTransform creates trimWhitespaceTransform
func (cfg *Config) NewTransform(_ logger.Logger, _ base.DegradationCounterRegistry) base.FieldTransform {
	return &trimWhitespaceTransform{}
}

// VerifyConfig verifies trimWhitespaceTransform config
func (cfg *Config) VerifyConfig() error {
	return nil
}

func (tf *trimWhitespaceTransform) Apply(value any) (any, error) {
	return strings.TrimSpace(base.RenderString(value)), nil
}
