// Package engine implements the rule-driven record transformation and validation engine
//
// An Engine owns ordered registries of field transforms and validation rules, populated at
// setup time and treated as read-only during processing. Batches are processed record by
// record: invalid records and transform failures are recorded as per-record errors and never
// abort the batch; only registration misuse and log export I/O surface as errors.
package engine

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/google/uuid"
	"github.com/relex/gotils/logger"
	"github.com/relex/record-refiner/base"
	"github.com/relex/record-refiner/defs"
)

// Options configures an Engine
type Options struct {
	FreezeOnFirstBatch bool              // reject registrations once the first batch has started
	MetricsPrefix      string            // prefix for Prometheus metric names, defaults to defs.DefaultMetricsPrefix
	LogMaxBytes        datasize.ByteSize // advisory cap of the processing log, defaults to defs.ProcessingLogMaxBytes
}

// ValidationRule is one registered validation check: a target field, a predicate and the
// error message recorded when the predicate fails
type ValidationRule struct {
	Field   string
	Check   base.RuleCheck
	Message string

	locator base.FieldLocator
}

type transformBinding struct {
	name    string
	locator base.FieldLocator
	tf      base.FieldTransform
}

// Engine transforms and validates batches of records
//
// Registries may be read by concurrent batches but must not be modified mid-batch; with
// FreezeOnFirstBatch the engine enforces the construction-then-freeze discipline itself.
type Engine struct {
	elogger logger.Logger
	options Options
	plog    *base.ProcessingLog
	metrics *engineMetrics

	mutex       sync.RWMutex
	frozen      atomic.Bool
	bindings    []transformBinding
	indexByName map[string]int
	rules       []ValidationRule
}

// New creates an Engine with empty registries
func New(options Options, parentLogger logger.Logger) *Engine {
	if len(options.MetricsPrefix) == 0 {
		options.MetricsPrefix = defs.DefaultMetricsPrefix
	}
	if options.LogMaxBytes == 0 {
		options.LogMaxBytes = defs.ProcessingLogMaxBytes
	}
	return &Engine{
		elogger:     parentLogger.WithField(defs.LabelComponent, "Engine"),
		options:     options,
		plog:        base.NewProcessingLog(options.LogMaxBytes.Bytes()),
		metrics:     newEngineMetrics(options.MetricsPrefix),
		indexByName: make(map[string]int, 20),
	}
}

// RegisterTransformation registers a named transform bound to the field at the given dotted path
//
// Transforms are applied in first-registration order; re-registering a name replaces the
// existing binding in place. Returns ErrInvalidArgument for missing arguments and ErrFrozen
// once the engine is frozen.
func (eng *Engine) RegisterTransformation(name string, field string, tf base.FieldTransform) error {
	if eng.frozen.Load() {
		return fmt.Errorf("%w: cannot register transformation '%s'", ErrFrozen, name)
	}
	if len(name) == 0 || len(field) == 0 || tf == nil {
		return fmt.Errorf("%w: transformation requires name, field and function", ErrInvalidArgument)
	}
	locator, lerr := base.LocateField(field)
	if lerr != nil {
		return fmt.Errorf("%w: field '%s': %s", ErrInvalidArgument, field, lerr.Error())
	}

	eng.mutex.Lock()
	defer eng.mutex.Unlock()
	binding := transformBinding{name: name, locator: locator, tf: tf}
	if index, exists := eng.indexByName[name]; exists {
		eng.bindings[index] = binding
		eng.plog.Append("replaced transformation '%s' for field '%s'", name, field)
	} else {
		eng.bindings = append(eng.bindings, binding)
		eng.indexByName[name] = len(eng.bindings) - 1
		eng.plog.Append("registered transformation '%s' for field '%s'", name, field)
	}
	return nil
}

// AddValidationRule appends a validation rule for the field at the given dotted path
//
// Rules run for every record in registration order without short-circuit. An empty message
// defaults to a generic one naming the field.
func (eng *Engine) AddValidationRule(field string, check base.RuleCheck, message string) error {
	if eng.frozen.Load() {
		return fmt.Errorf("%w: cannot add validation rule for '%s'", ErrFrozen, field)
	}
	if len(field) == 0 || check == nil {
		return fmt.Errorf("%w: validation rule requires field and predicate", ErrInvalidArgument)
	}
	locator, lerr := base.LocateField(field)
	if lerr != nil {
		return fmt.Errorf("%w: field '%s': %s", ErrInvalidArgument, field, lerr.Error())
	}
	if len(message) == 0 {
		message = fmt.Sprintf("field '%s' is invalid", field)
	}

	eng.mutex.Lock()
	defer eng.mutex.Unlock()
	eng.rules = append(eng.rules, ValidationRule{Field: field, Check: check, Message: message, locator: locator})
	eng.plog.Append("added validation rule for field '%s': %s", field, message)
	return nil
}

// RegisterDegradationCounter implements base.DegradationCounterRegistry on top of engine metrics
func (eng *Engine) RegisterDegradationCounter(label string) func() {
	counter := eng.metrics.degradedTotal.WithLabelValues(label)
	return func() {
		counter.Inc()
	}
}

// Freeze makes all further registrations fail with ErrFrozen
func (eng *Engine) Freeze() {
	eng.frozen.Store(true)
}

// Log returns the engine's processing log
func (eng *Engine) Log() *base.ProcessingLog {
	return eng.plog
}

// Validate applies all registered rules to the record in registration order, without short-circuit
//
// A panic inside a rule predicate is a programmer error and is deliberately not recovered here.
func (eng *Engine) Validate(record base.Record) base.ValidationResult {
	eng.mutex.RLock()
	rules := eng.rules
	eng.mutex.RUnlock()

	var failures []string
	for _, rule := range rules {
		value, _ := rule.locator.Get(record)
		if !rule.Check.Check(value) {
			failures = append(failures, rule.Message)
		}
	}
	return base.ValidationResult{Valid: len(failures) == 0, Errors: failures}
}

// ProcessBatch validates and transforms the given records in input order and assembles the
// batch report
//
// Records failing validation are never transformed; a transform error aborts only the record
// it occurred on. The caller's records are left untouched: transforms run on deep copies.
func (eng *Engine) ProcessBatch(records []base.Record) *base.BatchResult {
	if eng.options.FreezeOnFirstBatch {
		eng.frozen.Store(true)
	}
	eng.mutex.RLock()
	bindings := eng.bindings
	eng.mutex.RUnlock()

	batchID := uuid.New().String()
	blogger := eng.elogger.WithField(defs.LabelBatch, batchID)
	startTime := time.Now()
	result := &base.BatchResult{BatchID: batchID}
	eng.plog.Append("batch %s: started with %d records", batchID, len(records))

	for index, record := range records {
		identity := recordIdentity(record, index)

		validation := eng.Validate(record)
		if !validation.Valid {
			result.ErrorCount++
			for _, message := range validation.Errors {
				result.Errors = append(result.Errors, identity+": "+message)
			}
			eng.metrics.countRecord(resultValidationError)
			eng.plog.Append("batch %s: %s failed validation: %s", batchID, identity, strings.Join(validation.Errors, "; "))
			continue
		}

		processed, terr := applyTransforms(bindings, record)
		if terr != nil {
			result.ErrorCount++
			result.Errors = append(result.Errors, identity+": "+terr.Error())
			eng.metrics.countRecord(resultTransformError)
			blogger.Warnf("%s: %s", identity, terr.Error())
			eng.plog.Append("batch %s: %s aborted: %s", batchID, identity, terr.Error())
			continue
		}

		result.ProcessedData = append(result.ProcessedData, processed)
		result.SuccessCount++
		eng.metrics.countRecord(resultSuccess)
	}

	result.ProcessingTime = time.Now()
	result.Elapsed = result.ProcessingTime.Sub(startTime)
	eng.metrics.batchesTotal.Inc()
	eng.plog.Append("batch %s: finished with %d succeeded, %d failed in %s",
		batchID, result.SuccessCount, result.ErrorCount, result.Elapsed)
	blogger.Infof("processed %d records: %d succeeded, %d failed", len(records), result.SuccessCount, result.ErrorCount)
	return result
}

// applyTransforms runs all transform bindings on a deep copy of the record
//
// A field absent from the record is left alone; present values, including nil, are transformed.
func applyTransforms(bindings []transformBinding, source base.Record) (base.Record, error) {
	record := base.DeepCopyRecord(source)
	for _, binding := range bindings {
		value, found := binding.locator.Get(record)
		if !found {
			continue
		}
		newValue, err := binding.tf.Apply(value)
		if err != nil {
			return nil, &base.TransformError{Name: binding.name, Field: binding.locator.Name(), Cause: err}
		}
		binding.locator.Set(record, newValue)
	}
	return record, nil
}

// recordIdentity tags batch errors with the source record's "id" field if present, or its
// position in the batch otherwise
func recordIdentity(record base.Record, index int) string {
	if value, found := record["id"]; found {
		return base.RenderString(value)
	}
	return fmt.Sprintf("record[%d]", index)
}
