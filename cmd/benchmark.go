package cmd

import (
	"time"

	"github.com/relex/gotils/logger"
	"github.com/relex/record-refiner/engine"
	"github.com/relex/record-refiner/run"
)

type benchmarkCommandState struct {
	Config string `help:"Configuration file path"`
	Repeat int    `help:"Number of times to process each input file"`
}

var benchCmd = benchmarkCommandState{
	Config: "refiner.yml",
	Repeat: 100,
}

func (cmd *benchmarkCommandState) run(args []string) {
	eng := mustCreateEngine(cmd.Config)

	for _, path := range expandInputArgs(args) {
		records, rerr := run.ReadRecordsFile(path)
		if rerr != nil {
			logger.Fatalf("input %s: %s", path, rerr.Error())
		}

		startTime := time.Now()
		numRecords := 0
		for round := 0; round < cmd.Repeat; round++ {
			result := eng.ProcessBatch(records)
			numRecords += result.SuccessCount + result.ErrorCount
		}
		elapsed := time.Since(startTime)
		logger.Infof("input %s: processed %d records in %s, %.0f records/s",
			path, numRecords, elapsed, float64(numRecords)/elapsed.Seconds())
	}
}

func mustCreateEngine(configPath string) *engine.Engine {
	cref, cerr := run.LoadConfigFile(configPath)
	if cerr != nil {
		logger.Fatalf("config: %s", cerr.Error())
	}
	eng, eerr := run.NewEngine(cref, logger.Root())
	if eerr != nil {
		logger.Fatalf("config: %s", eerr.Error())
	}
	return eng
}
