// Package tnormalizetext provides 'normalizeText' transform to trim surrounding whitespace and
// lowercase the value of a text field. The result is stable under repeated application.
package tnormalizetext

import (
	"strings"

	"github.com/relex/gotils/logger"
	"github.com/relex/record-refiner/base"
	"github.com/relex/record-refiner/base/bconfig"
)

// Config for normalizeTextTransform
type Config struct {
	bconfig.TransformTarget `yaml:",inline"`
}

type normalizeTextTransform struct {
}

// NewTransform creates normalizeTextTransform
func (cfg *Config) NewTransform(_ logger.Logger, _ base.DegradationCounterRegistry) base.FieldTransform {
	return &normalizeTextTransform{}
}

// VerifyConfig verifies normalizeTextTransform config
func (cfg *Config) VerifyConfig() error {
	return nil
}

func (tf *normalizeTextTransform) Apply(value any) (any, error) {
	return strings.ToLower(strings.TrimSpace(base.RenderString(value))), nil
}
