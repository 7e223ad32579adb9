// Package bconfig provides YAML configuration holders for the pluggable parts of the engine:
// field transforms and validation rules
//
// Interface-valued config slots are unmarshalled through a "type:"-keyed constructor table,
// with strict known-field checking and yaml line:column error reporting.
package bconfig

// BaseConfig contains basic properties required for all Config types
type BaseConfig interface {
	// GetType returns the type name
	GetType() string
}
