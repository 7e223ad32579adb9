// Package run assembles engines from configuration files and drives batch processing for
// the command-line tool
package run

import (
	"fmt"

	"github.com/c2h5oh/datasize"
	"gopkg.in/yaml.v3"

	"github.com/relex/record-refiner/base/bconfig"
	"github.com/relex/record-refiner/base/bsupport"
	"github.com/relex/record-refiner/engine"
	"github.com/relex/record-refiner/rule"
	"github.com/relex/record-refiner/transform"
	"github.com/relex/record-refiner/util"
)

// Config defines the root of record-refiner config file
type Config struct {
	Anchors         AnchorsConfig                        `yaml:"anchors"`
	Options         OptionsConfig                        `yaml:"options"`
	Transformations []bconfig.FieldTransformConfigHolder `yaml:"transformations"`
	Rules           []bconfig.RuleCheckConfigHolder      `yaml:"rules"`
}

// AnchorsConfig defines the anchors section in config file
// The section is meant to provide anchors for other sections and doesn't need to be unmarshalled itself
type AnchorsConfig struct {
}

// OptionsConfig defines the options section in config file
type OptionsConfig struct {
	FreezeOnFirstBatch bool   `yaml:"freezeOnFirstBatch"`
	MetricsPrefix      string `yaml:"metricsPrefix"`
	LogMaxBytes        string `yaml:"logMaxBytes"`
}

func init() {
	rule.Register()
	transform.Register()
}

// LoadConfigFile loads config from the path and verifies all configurations
func LoadConfigFile(filepath string) (*Config, error) {
	cref := &Config{}
	if err := util.UnmarshalYamlFile(filepath, cref); err != nil {
		return nil, err
	}
	if _, err := cref.Options.engineOptions(); err != nil {
		return nil, err
	}
	if err := bsupport.VerifyTransformConfigs(cref.Transformations, "transformations"); err != nil {
		return nil, err
	}
	if err := bsupport.VerifyRuleConfigs(cref.Rules, "rules"); err != nil {
		return nil, err
	}
	return cref, nil
}

func (options OptionsConfig) engineOptions() (engine.Options, error) {
	eopts := engine.Options{
		FreezeOnFirstBatch: options.FreezeOnFirstBatch,
		MetricsPrefix:      options.MetricsPrefix,
	}
	if len(options.LogMaxBytes) > 0 {
		size, err := datasize.ParseString(options.LogMaxBytes)
		if err != nil {
			return eopts, fmt.Errorf("options.logMaxBytes: %w", err)
		}
		eopts.LogMaxBytes = size
	}
	return eopts, nil
}

// MarshalYAML provides custom marshalling to export readable document. The result is not reversible.
func (holder AnchorsConfig) MarshalYAML() (interface{}, error) {
	return []string(nil), nil
}

// UnmarshalYAML provides custom unmarshalling for the implementations of Config
func (holder *AnchorsConfig) UnmarshalYAML(value *yaml.Node) error {
	return nil
}
