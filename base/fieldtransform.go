package base

// FieldTransform maps the current value of one field to a new value
//
// Implementations must be pure with regard to engine state and safe for concurrent use,
// as the same transform may be applied by concurrent batches.
//
// Built-in transforms are total: they degrade to a sentinel output on malformed input
// instead of returning an error. An error return aborts processing of the current record
// only, never the whole batch.
type FieldTransform interface {
	Apply(value any) (any, error)
}

// FieldTransformFunc defines a function to perform transformation of a single field value
type FieldTransformFunc func(value any) (any, error)

// Apply implements FieldTransform
func (f FieldTransformFunc) Apply(value any) (any, error) {
	return f(value)
}

// DegradationCounterRegistry registers counters incremented when a built-in transform degrades
// malformed input to its sentinel output
type DegradationCounterRegistry interface {

	// RegisterDegradationCounter returns a function to count degraded outputs under the given label
	//
	// Must not be called during processing stage
	RegisterDegradationCounter(label string) func()
}
