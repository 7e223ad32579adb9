package engine

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/relex/record-refiner/base"
)

// GenerateReport renders a deterministic human-readable summary of a batch result, including
// the engine's registered transforms and rules in their application order
func (eng *Engine) GenerateReport(result *base.BatchResult) string {
	eng.mutex.RLock()
	bindings := eng.bindings
	rules := eng.rules
	eng.mutex.RUnlock()

	builder := &strings.Builder{}
	fmt.Fprintf(builder, "Batch %s\n", result.BatchID)
	fmt.Fprintf(builder, "Processed at: %s\n", result.ProcessingTime.Format(time.RFC3339))
	fmt.Fprintf(builder, "Elapsed: %s\n", result.Elapsed)
	fmt.Fprintf(builder, "Records: %d total, %d succeeded, %d failed\n",
		result.SuccessCount+result.ErrorCount, result.SuccessCount, result.ErrorCount)
	if len(result.Errors) > 0 {
		builder.WriteString("Errors:\n")
		for _, message := range result.Errors {
			fmt.Fprintf(builder, "  - %s\n", message)
		}
	}
	builder.WriteString("Transformations (in application order):\n")
	for _, binding := range bindings {
		fmt.Fprintf(builder, "  - %s -> %s\n", binding.name, binding.locator.Name())
	}
	builder.WriteString("Validation rules:\n")
	for _, rule := range rules {
		fmt.Fprintf(builder, "  - %s: %s\n", rule.Field, rule.Message)
	}
	return builder.String()
}

// GetStatistics computes summary counters for a batch result: "total", "success" and "errors",
// plus per-value counts of the given field over the successfully processed records when a
// group field is given
func (eng *Engine) GetStatistics(result *base.BatchResult, groupField string) (map[string]int, error) {
	stats := map[string]int{
		"total":   result.SuccessCount + result.ErrorCount,
		"success": result.SuccessCount,
		"errors":  result.ErrorCount,
	}
	if len(groupField) == 0 {
		return stats, nil
	}

	locator, lerr := base.LocateField(groupField)
	if lerr != nil {
		return nil, fmt.Errorf("%w: group field '%s': %s", ErrInvalidArgument, groupField, lerr.Error())
	}
	for _, record := range result.ProcessedData {
		key := groupField + ":"
		if value, found := locator.Get(record); found {
			key += base.RenderString(value)
		} else {
			key += "<missing>"
		}
		stats[key]++
	}
	return stats, nil
}

// FormatStatistics renders statistics as sorted "key=value" lines
func FormatStatistics(stats map[string]int) string {
	keys := maps.Keys(stats)
	slices.Sort(keys)
	builder := &strings.Builder{}
	for _, key := range keys {
		fmt.Fprintf(builder, "%s=%d\n", key, stats[key])
	}
	return builder.String()
}
