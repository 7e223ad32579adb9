package engine

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/relex/gotils/logger"
	"github.com/relex/record-refiner/base"
	"github.com/relex/record-refiner/util"
	"github.com/stretchr/testify/assert"
)

func newTestEngine(options Options) *Engine {
	return New(options, logger.Root())
}

func TestEngineProcessBatch(t *testing.T) {
	eng := newTestEngine(Options{})
	assert.NoError(t, eng.RegisterTransformation("upperName", "name", base.FieldTransformFunc(func(value any) (any, error) {
		return strings.ToUpper(base.RenderString(value)), nil
	})))
	assert.NoError(t, eng.RegisterTransformation("failOnBadStatus", "status", base.FieldTransformFunc(func(value any) (any, error) {
		if base.RenderString(value) == "broken" {
			return nil, errors.New("unsupported status")
		}
		return value, nil
	})))
	assert.NoError(t, eng.AddValidationRule("name", base.RuleCheckFunc(func(value any) bool {
		return value != nil && len(base.RenderString(value)) > 0
	}), "name is required"))

	source := []base.Record{
		{"id": "ok-1", "name": "alice", "status": "active"},
		{"id": "bad-2", "status": "active"},
		{"id": "bad-3", "name": "carol", "status": "broken"},
	}
	recordsBefore := util.SumMetricValues(eng.metrics.recordsTotal)
	result := eng.ProcessBatch(source)
	assert.Equal(t, float64(3), util.SumMetricValues(eng.metrics.recordsTotal)-recordsBefore)

	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 2, result.ErrorCount)
	if assert.Len(t, result.ProcessedData, 1) {
		assert.Equal(t, "ALICE", result.ProcessedData[0]["name"])
	}
	if assert.Len(t, result.Errors, 2) {
		assert.Equal(t, "bad-2: name is required", result.Errors[0])
		assert.Equal(t, "bad-3: transform 'failOnBadStatus' on field 'status': unsupported status", result.Errors[1])
	}
	assert.NotEmpty(t, result.BatchID)
	// source records must not be mutated
	assert.Equal(t, "alice", source[0]["name"])
}

func TestEngineValidateCollectsAllFailures(t *testing.T) {
	eng := newTestEngine(Options{})
	never := base.RuleCheckFunc(func(value any) bool { return false })
	assert.NoError(t, eng.AddValidationRule("a", never, "first"))
	assert.NoError(t, eng.AddValidationRule("b", never, "second"))
	assert.NoError(t, eng.AddValidationRule("c", never, ""))

	result := eng.Validate(base.Record{"a": 1, "b": 2})
	assert.False(t, result.Valid)
	assert.Equal(t, []string{"first", "second", "field 'c' is invalid"}, result.Errors)

	empty := newTestEngine(Options{}).Validate(base.Record{"a": 1})
	assert.True(t, empty.Valid)
	assert.Empty(t, empty.Errors)
}

func TestEngineSkipsAbsentFields(t *testing.T) {
	eng := newTestEngine(Options{})
	applied := 0
	assert.NoError(t, eng.RegisterTransformation("count", "maybe.field", base.FieldTransformFunc(func(value any) (any, error) {
		applied++
		return value, nil
	})))

	result := eng.ProcessBatch([]base.Record{
		{"id": "r1"},
		{"id": "r2", "maybe": base.Record{"field": "x"}},
	})
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, applied)
}

func TestEngineRegistrationErrors(t *testing.T) {
	eng := newTestEngine(Options{FreezeOnFirstBatch: true})
	identity := base.FieldTransformFunc(func(value any) (any, error) { return value, nil })

	assert.ErrorIs(t, eng.RegisterTransformation("", "field", identity), ErrInvalidArgument)
	assert.ErrorIs(t, eng.RegisterTransformation("noop", "", identity), ErrInvalidArgument)
	assert.ErrorIs(t, eng.RegisterTransformation("noop", "field", nil), ErrInvalidArgument)
	assert.ErrorIs(t, eng.AddValidationRule("field", nil, "msg"), ErrInvalidArgument)

	assert.NoError(t, eng.RegisterTransformation("noop", "field", identity))
	eng.ProcessBatch([]base.Record{{"field": "x"}})

	assert.ErrorIs(t, eng.RegisterTransformation("late", "field", identity), ErrFrozen)
	assert.ErrorIs(t, eng.AddValidationRule("field", base.RuleCheckFunc(func(any) bool { return true }), ""), ErrFrozen)
}

func TestEngineReplacesNamedTransformation(t *testing.T) {
	eng := newTestEngine(Options{})
	assert.NoError(t, eng.RegisterTransformation("step", "value", base.FieldTransformFunc(func(value any) (any, error) {
		return "old", nil
	})))
	assert.NoError(t, eng.RegisterTransformation("suffix", "value", base.FieldTransformFunc(func(value any) (any, error) {
		return base.RenderString(value) + "!", nil
	})))
	assert.NoError(t, eng.RegisterTransformation("step", "value", base.FieldTransformFunc(func(value any) (any, error) {
		return "new", nil
	})))

	result := eng.ProcessBatch([]base.Record{{"value": "x"}})
	if assert.Len(t, result.ProcessedData, 1) {
		// "step" keeps its original position before "suffix"
		assert.Equal(t, "new!", result.ProcessedData[0]["value"])
	}
}

func TestEngineStatistics(t *testing.T) {
	eng := newTestEngine(Options{})
	result := eng.ProcessBatch([]base.Record{
		{"id": "1", "region": "east"},
		{"id": "2", "region": "east"},
		{"id": "3", "region": "west"},
		{"id": "4"},
	})

	stats, err := eng.GetStatistics(result, "region")
	assert.NoError(t, err)
	assert.Equal(t, map[string]int{
		"total":            4,
		"success":          4,
		"errors":           0,
		"region:east":      2,
		"region:west":      1,
		"region:<missing>": 1,
	}, stats)

	rendered := FormatStatistics(stats)
	assert.Contains(t, rendered, "region:east=2\n")

	_, gerr := eng.GetStatistics(result, ".bad.")
	assert.ErrorIs(t, gerr, ErrInvalidArgument)
}

func TestEngineConcurrentBatches(t *testing.T) {
	eng := newTestEngine(Options{FreezeOnFirstBatch: true})
	assert.NoError(t, eng.RegisterTransformation("upper", "name", base.FieldTransformFunc(func(value any) (any, error) {
		return strings.ToUpper(base.RenderString(value)), nil
	})))
	assert.NoError(t, eng.AddValidationRule("name", base.RuleCheckFunc(func(value any) bool {
		return value != nil
	}), "name is required"))
	eng.Freeze()

	var waitGroup sync.WaitGroup
	results := make([]*base.BatchResult, 10)
	for i := range results {
		waitGroup.Add(1)
		go func(slot int) {
			defer waitGroup.Done()
			results[slot] = eng.ProcessBatch([]base.Record{
				{"id": "good", "name": fmt.Sprintf("batch-%d", slot)},
				{"id": "bad"},
			})
		}(i)
	}
	waitGroup.Wait()

	seenIDs := make(map[string]bool, 10)
	for slot, result := range results {
		assert.Equal(t, 1, result.SuccessCount)
		assert.Equal(t, 1, result.ErrorCount)
		if assert.Len(t, result.ProcessedData, 1) {
			assert.Equal(t, fmt.Sprintf("BATCH-%d", slot), result.ProcessedData[0]["name"])
		}
		seenIDs[result.BatchID] = true
	}
	assert.Len(t, seenIDs, 10)
}

func TestEngineGzipLogExport(t *testing.T) {
	eng := newTestEngine(Options{})
	eng.ProcessBatch([]base.Record{{"id": "only"}})

	path := filepath.Join(t.TempDir(), "processing.log.gz")
	assert.NoError(t, eng.ExportProcessingLog(path))

	file, oerr := os.Open(path)
	assert.NoError(t, oerr)
	defer file.Close()
	gzReader, gerr := gzip.NewReader(file)
	assert.NoError(t, gerr)
	content, rerr := io.ReadAll(gzReader)
	assert.NoError(t, rerr)
	assert.Contains(t, string(content), "started with 1 records")
}

func TestEngineReportAndLogExport(t *testing.T) {
	eng := newTestEngine(Options{})
	assert.NoError(t, eng.RegisterTransformation("noop", "name", base.FieldTransformFunc(func(value any) (any, error) {
		return value, nil
	})))
	assert.NoError(t, eng.AddValidationRule("name", base.RuleCheckFunc(func(value any) bool { return value != nil }), "name is required"))

	result := eng.ProcessBatch([]base.Record{
		{"id": "a", "name": "x"},
		{"id": "b"},
	})
	report := eng.GenerateReport(result)
	assert.Contains(t, report, "Batch "+result.BatchID)
	assert.Contains(t, report, "Records: 2 total, 1 succeeded, 1 failed")
	assert.Contains(t, report, "  - b: name is required")
	assert.Contains(t, report, "  - noop -> name")
	assert.Contains(t, report, "  - name: name is required")

	path := filepath.Join(t.TempDir(), "processing.log")
	assert.NoError(t, eng.ExportProcessingLog(path))
	content, rerr := os.ReadFile(path)
	assert.NoError(t, rerr)
	assert.Contains(t, string(content), "batch "+result.BatchID+": started with 2 records")

	assert.Error(t, eng.ExportProcessingLog(filepath.Join(t.TempDir(), "missing-dir", "processing.log")))
}
