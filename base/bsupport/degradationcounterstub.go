package bsupport

import (
	"github.com/relex/record-refiner/base"
)

type stubDegradationCounterRegistry struct {
}

// NewStubDegradationCounterRegistry creates a stub DegradationCounterRegistry for testing
func NewStubDegradationCounterRegistry() base.DegradationCounterRegistry {
	return &stubDegradationCounterRegistry{}
}

func (stub *stubDegradationCounterRegistry) RegisterDegradationCounter(label string) func() {
	return func() {}
}
