package bconfig

import (
	"github.com/relex/gotils/logger"
	"github.com/relex/record-refiner/base"
)

// TransformTarget defines the common parts of FieldTransformConfig implementations: the type name,
// an optional registration name and the dotted path of the target field
//
// An empty name defaults to "<type>(<field>)" at registration time.
type TransformTarget struct {
	Header `yaml:",inline"`
	Name   string `yaml:"name"`
	Field  string `yaml:"field"`
}

// GetName returns the registration name, possibly empty
func (target *TransformTarget) GetName() string {
	return target.Name
}

// GetField returns the dotted path of the target field
func (target *TransformTarget) GetField() string {
	return target.Field
}

// FieldTransformConfig provides an interface for the configuration of base.FieldTransform(s)
//
// All the implementations should support YAML unmarshalling
type FieldTransformConfig interface {
	BaseConfig

	GetName() string
	GetField() string

	NewTransform(parentLogger logger.Logger, degradationRegistry base.DegradationCounterRegistry) base.FieldTransform

	VerifyConfig() error
}

// FieldTransformConfigHolder holds FieldTransformConfig
type FieldTransformConfigHolder = ConfigHolder[FieldTransformConfig]

// FieldTransformConfigCreatorTable defines the table of constructors for FieldTransformConfig implementations
type FieldTransformConfigCreatorTable = ConfigCreatorTable[FieldTransformConfig]

// RegisterFieldTransformConfigConstructors registers the table of FieldTransformConfig constructors
func RegisterFieldTransformConfigConstructors(newMap FieldTransformConfigCreatorTable) {
	RegisterConfigConstructors(newMap)
}
