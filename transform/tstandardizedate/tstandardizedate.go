// Package tstandardizedate provides 'standardizeDate' transform to parse a date field in one of
// the accepted layouts and re-render it in a single output layout
//
// Unparseable input degrades to the zero date ("0001-01-01") rather than failing the record. The
// zero-date sentinel is legacy behavior kept for output compatibility: consumers must treat it as
// "unknown date", not as a real ancient date.
package tstandardizedate

import (
	"fmt"
	"time"

	"github.com/relex/gotils/logger"
	"github.com/relex/record-refiner/base"
	"github.com/relex/record-refiner/base/bconfig"
)

// Config for standardizeDateTransform
type Config struct {
	bconfig.TransformTarget `yaml:",inline"`
	Layouts                 []string `yaml:"layouts"`
	OutputLayout            string   `yaml:"outputLayout"`
	Label                   string   `yaml:"label"`
}

var defaultLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"02.01.2006",
}

const defaultOutputLayout = "2006-01-02"

type standardizeDateTransform struct {
	layouts       []string
	outputLayout  string
	warnLogger    logger.Logger
	countDegraded func()
}

// NewTransform creates standardizeDateTransform
func (cfg *Config) NewTransform(parentLogger logger.Logger, degradationRegistry base.DegradationCounterRegistry) base.FieldTransform {
	layouts := cfg.Layouts
	if len(layouts) == 0 {
		layouts = defaultLayouts
	}
	outputLayout := cfg.OutputLayout
	if len(outputLayout) == 0 {
		outputLayout = defaultOutputLayout
	}
	label := cfg.Label
	if len(label) == 0 {
		label = cfg.Type
	}
	return &standardizeDateTransform{
		layouts:       layouts,
		outputLayout:  outputLayout,
		warnLogger:    parentLogger,
		countDegraded: degradationRegistry.RegisterDegradationCounter(label),
	}
}

// VerifyConfig verifies standardizeDateTransform config
func (cfg *Config) VerifyConfig() error {
	for i, layout := range cfg.Layouts {
		if len(layout) == 0 {
			return fmt.Errorf(".layouts[%d] is empty", i)
		}
	}
	return nil
}

func (tf *standardizeDateTransform) Apply(value any) (any, error) {
	if tm, isTime := value.(time.Time); isTime {
		return tm.Format(tf.outputLayout), nil
	}
	text := base.RenderString(value)
	for _, layout := range tf.layouts {
		if tm, err := time.Parse(layout, text); err == nil {
			return tm.Format(tf.outputLayout), nil
		}
	}
	tf.countDegraded()
	// TODO: omit repeated warnings for the same field
	tf.warnLogger.Warnf("failed to parse date: '%s'", text)
	return time.Time{}.Format(tf.outputLayout), nil
}
