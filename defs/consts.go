package defs

// Common labels for logging
const (
	LabelComponent = "component"
	LabelName      = "name"
	LabelField     = "field"
	LabelPart      = "part"
	LabelSource    = "source"

	LabelBatch = "batch"
)
