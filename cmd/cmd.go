// Package cmd provides the list of commands of the record-refiner tool
package cmd

import (
	"github.com/relex/gotils/config"
)

func init() {
	config.AddParentCmdWithArgs("", "record-refiner transforms and validates batches of records by configurable rules", &rootCmd, rootCmd.preRun, rootCmd.postRun)
	config.AddCmdWithArgs("process <input> ...", "Process input record files and write the results", &processCmd, processCmd.run)
	config.AddCmdWithArgs("benchmark <input> ...", "Measure processing throughput on input record files", &benchCmd, benchCmd.run)
}

// Execute parses the command line and runs the specified command
func Execute() {
	// trigger init

	config.Execute()
}
