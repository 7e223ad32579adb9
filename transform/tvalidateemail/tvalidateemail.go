// Package tvalidateemail provides 'validateEmailFormat' transform to normalize an email field to
// lowercase without surrounding whitespace
//
// A value that does not look like an email address degrades to the literal "INVALID_EMAIL", a
// sentinel kept for output compatibility with existing consumers.
package tvalidateemail

import (
	"regexp"
	"strings"

	"github.com/relex/gotils/logger"
	"github.com/relex/record-refiner/base"
	"github.com/relex/record-refiner/base/bconfig"
)

// InvalidEmail is the sentinel output for values failing the format check
const InvalidEmail = "INVALID_EMAIL"

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// Config for validateEmailTransform
type Config struct {
	bconfig.TransformTarget `yaml:",inline"`
	Label                   string `yaml:"label"`
}

type validateEmailTransform struct {
	countDegraded func()
}

// NewTransform creates validateEmailTransform
func (cfg *Config) NewTransform(_ logger.Logger, degradationRegistry base.DegradationCounterRegistry) base.FieldTransform {
	label := cfg.Label
	if len(label) == 0 {
		label = cfg.Type
	}
	return &validateEmailTransform{
		countDegraded: degradationRegistry.RegisterDegradationCounter(label),
	}
}

// VerifyConfig verifies validateEmailTransform config
func (cfg *Config) VerifyConfig() error {
	return nil
}

func (tf *validateEmailTransform) Apply(value any) (any, error) {
	normalized := strings.ToLower(strings.TrimSpace(base.RenderString(value)))
	if !emailPattern.MatchString(normalized) {
		tf.countDegraded()
		return InvalidEmail, nil
	}
	return normalized, nil
}
