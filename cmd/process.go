package cmd

import (
	"fmt"

	"github.com/relex/gotils/logger"
	"github.com/relex/record-refiner/base"
	"github.com/relex/record-refiner/engine"
	"github.com/relex/record-refiner/output"
	"github.com/relex/record-refiner/run"
	"github.com/relex/record-refiner/util"
)

type processCommandState struct {
	Config    string `help:"Configuration file path"`
	Output    string `help:"Output file path: .json, .jsonl, .ndjson or .msgpack, optionally with .gz"`
	Report    bool   `help:"Print the report of each batch to standard output"`
	GroupBy   string `name:"group-by" help:"Add per-value statistics of the given field to each report"`
	ExportLog string `name:"export-log" help:"Export the processing log to the given path at the end"`
}

var processCmd = processCommandState{
	Config: "refiner.yml",
}

func (cmd *processCommandState) run(args []string) {
	eng := mustCreateEngine(cmd.Config)

	var allProcessed []base.Record
	for _, path := range expandInputArgs(args) {
		records, rerr := run.ReadRecordsFile(path)
		if rerr != nil {
			logger.Fatalf("input %s: %s", path, rerr.Error())
		}
		result := eng.ProcessBatch(records)
		logger.Infof("input %s: %d of %d records succeeded", path, result.SuccessCount, len(records))
		allProcessed = append(allProcessed, result.ProcessedData...)

		if cmd.Report {
			fmt.Print(eng.GenerateReport(result))
			stats, serr := eng.GetStatistics(result, cmd.GroupBy)
			if serr != nil {
				logger.Fatalf("statistics: %s", serr.Error())
			}
			fmt.Print(engine.FormatStatistics(stats))
		}
	}

	if cmd.Output != "" {
		writer, werr := output.NewFileWriter(cmd.Output, logger.Root())
		if werr != nil {
			logger.Fatalf("output %s: %s", cmd.Output, werr.Error())
		}
		if err := writer.Write(allProcessed); err != nil {
			logger.Fatalf("output %s: %s", cmd.Output, err.Error())
		}
	}

	if cmd.ExportLog != "" {
		if err := eng.ExportProcessingLog(cmd.ExportLog); err != nil {
			logger.Fatalf("export-log: %s", err.Error())
		}
	}
}

// expandInputArgs resolves input arguments as glob patterns or directories, aborting when one
// of them matches nothing
func expandInputArgs(args []string) []string {
	var pathList []string
	for _, arg := range args {
		matched, lerr := util.ListFiles(arg)
		if lerr != nil {
			logger.Fatalf("input %s: %s", arg, lerr.Error())
		}
		if len(matched) == 0 {
			logger.Fatalf("input %s: no file matched", arg)
		}
		pathList = append(pathList, matched...)
	}
	return pathList
}
