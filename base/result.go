package base

import (
	"fmt"
	"time"
)

// ValidationResult is the outcome of applying all validation rules to one record
//
// Created fresh per validation call and never mutated after return
type ValidationResult struct {
	Valid  bool
	Errors []string // triggered rule messages in rule registration order
}

// BatchResult is the report assembled while processing one batch of records
//
// Failed records are absent from ProcessedData, not represented by placeholders;
// the surviving records keep their relative input order.
type BatchResult struct {
	BatchID        string
	SuccessCount   int
	ErrorCount     int
	Errors         []string // each prefixed with the originating record's identity
	ProcessedData  []Record
	ProcessingTime time.Time     // when the batch was finalized
	Elapsed        time.Duration // wall time spent processing the batch
}

// TransformError wraps an error raised by a FieldTransform with the transform's registered
// name and target field
type TransformError struct {
	Name  string
	Field string
	Cause error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transform '%s' on field '%s': %s", e.Name, e.Field, e.Cause.Error())
}

func (e *TransformError) Unwrap() error {
	return e.Cause
}
