package engine

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/relex/gotils/logger"
)

const (
	resultSuccess         = "success"
	resultValidationError = "validation_error"
	resultTransformError  = "transform_error"
)

type engineMetrics struct {
	recordsTotal  *prometheus.CounterVec
	batchesTotal  prometheus.Counter
	degradedTotal *prometheus.CounterVec
}

func newEngineMetrics(prefix string) *engineMetrics {
	return &engineMetrics{
		recordsTotal: mustRegisterCounterVec(prometheus.CounterOpts{
			Name: prefix + "records_total",
			Help: "Numbers of processed records by result",
		}, []string{"result"}),
		batchesTotal: mustRegisterCounterVec(prometheus.CounterOpts{
			Name: prefix + "batches_total",
			Help: "Numbers of processed batches",
		}, []string{}).WithLabelValues(),
		degradedTotal: mustRegisterCounterVec(prometheus.CounterOpts{
			Name: prefix + "degraded_values_total",
			Help: "Numbers of degraded transform outputs by label",
		}, []string{"label"}),
	}
}

func (metrics *engineMetrics) countRecord(result string) {
	metrics.recordsTotal.WithLabelValues(result).Inc()
}

// mustRegisterCounterVec registers a counter-vec in the default registry, reusing the existing
// collector when engines share a metrics prefix
func mustRegisterCounterVec(opts prometheus.CounterOpts, labelNames []string) *prometheus.CounterVec {
	vec := prometheus.NewCounterVec(opts, labelNames)
	err := prometheus.Register(vec)
	if err == nil {
		return vec
	}
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		return already.ExistingCollector.(*prometheus.CounterVec)
	}
	logger.Panicf("failed to register counter-vec '%s': %s", opts.Name, err.Error())
	return nil
}
