package engine

import (
	"fmt"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// ExportProcessingLog writes the processing log to the given path, gzip-compressed if the
// path ends with ".gz". I/O errors are logged and returned to the caller.
func (eng *Engine) ExportProcessingLog(path string) error {
	eng.plog.Append("exporting processing log to %s", path)

	file, cerr := os.Create(path)
	if cerr != nil {
		eng.elogger.Errorf("failed to export processing log to %s: %s", path, cerr.Error())
		return fmt.Errorf("failed to export processing log: %w", cerr)
	}

	werr := eng.writeLog(file, strings.HasSuffix(path, ".gz"))
	if werr != nil {
		eng.elogger.Errorf("failed to export processing log to %s: %s", path, werr.Error())
		file.Close()
		return fmt.Errorf("failed to export processing log: %w", werr)
	}
	if ferr := file.Close(); ferr != nil {
		eng.elogger.Errorf("failed to export processing log to %s: %s", path, ferr.Error())
		return fmt.Errorf("failed to export processing log: %w", ferr)
	}
	return nil
}

func (eng *Engine) writeLog(file *os.File, compress bool) error {
	if !compress {
		_, err := eng.plog.WriteTo(file)
		return err
	}
	gzWriter := gzip.NewWriter(file)
	if _, err := eng.plog.WriteTo(gzWriter); err != nil {
		gzWriter.Close()
		return err
	}
	return gzWriter.Close()
}
