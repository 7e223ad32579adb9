package defs

import (
	"github.com/c2h5oh/datasize"
)

var (
	// InputFileMaxSize defines the maximum size of a single input record file accepted by the CLI
	//
	// Larger files should be split by the caller; the limit exists to catch accidental huge inputs,
	// as a whole batch is decoded into memory before processing
	InputFileMaxSize = 64 * datasize.MB

	// ProcessingLogMaxBytes defines the advisory cap on the in-memory processing log
	//
	// Once the cap is reached, appends are counted but no longer stored and a single
	// truncation marker is kept in their place
	ProcessingLogMaxBytes = 4 * datasize.MB

	// DefaultMetricsPrefix is prepended to all engine metrics unless overridden in config
	DefaultMetricsPrefix = "refiner_"
)
