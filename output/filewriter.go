// Package output writes processed records to files
//
// The encoding is chosen by file extension: ".json" for a single JSON array, ".jsonl" or
// ".ndjson" for newline-delimited JSON, and ".msgpack" for a stream of msgpack maps. A
// trailing ".gz" adds gzip compression on top of any encoding.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/xattr"
	"github.com/relex/gotils/logger"
	"github.com/vmihailenco/msgpack/v4"

	"github.com/relex/record-refiner/base"
	"github.com/relex/record-refiner/defs"
)

// recordCountAttr tags output files with the number of records they hold
const recordCountAttr = "user.refiner.records"

type codecFunc func(writer io.Writer, records []base.Record) error

// Writer writes batches of processed records to some destination
type Writer interface {
	Write(records []base.Record) error
}

// FileWriter writes batches of records to a file, overwriting it on every call
type FileWriter struct {
	olog  logger.Logger
	path  string
	codec codecFunc
	gzip  bool
}

// NewFileWriter creates a FileWriter for the given path, deciding encoding and compression
// from the file extension
func NewFileWriter(path string, parentLogger logger.Logger) (*FileWriter, error) {
	codec, compress, err := codecForPath(path)
	if err != nil {
		return nil, err
	}
	return &FileWriter{
		olog:  parentLogger.WithFields(logger.Fields{defs.LabelComponent: "FileWriter", defs.LabelName: path}),
		path:  path,
		codec: codec,
		gzip:  compress,
	}, nil
}

// Write encodes all records into the target file
func (writer *FileWriter) Write(records []base.Record) error {
	file, cerr := os.Create(writer.path)
	if cerr != nil {
		return fmt.Errorf("failed to create output file: %w", cerr)
	}

	werr := writer.encode(file, records)
	if werr != nil {
		file.Close()
		return fmt.Errorf("failed to write output file: %w", werr)
	}
	if ferr := file.Close(); ferr != nil {
		return fmt.Errorf("failed to close output file: %w", ferr)
	}

	writer.markRecordCount(len(records))
	writer.olog.Infof("wrote %d records", len(records))
	return nil
}

func (writer *FileWriter) encode(file *os.File, records []base.Record) error {
	if !writer.gzip {
		return writer.codec(file, records)
	}
	gzWriter := gzip.NewWriter(file)
	if err := writer.codec(gzWriter, records); err != nil {
		gzWriter.Close()
		return err
	}
	return gzWriter.Close()
}

// markRecordCount tags the file with its record count via extended attributes, skipped on
// filesystems without xattr support
func (writer *FileWriter) markRecordCount(count int) {
	if err := xattr.Set(writer.path, recordCountAttr, []byte(strconv.Itoa(count))); err != nil {
		writer.olog.Debugf("failed to set record-count attribute: %s", err.Error())
	}
}

func codecForPath(path string) (codecFunc, bool, error) {
	compress := false
	if strings.HasSuffix(path, ".gz") {
		compress = true
		path = strings.TrimSuffix(path, ".gz")
	}
	switch filepath.Ext(path) {
	case ".json":
		return encodeJSONArray, compress, nil
	case ".jsonl", ".ndjson":
		return encodeJSONLines, compress, nil
	case ".msgpack":
		return encodeMsgpack, compress, nil
	default:
		return nil, false, fmt.Errorf("unsupported output format '%s'", filepath.Ext(path))
	}
}

func encodeJSONArray(writer io.Writer, records []base.Record) error {
	if records == nil {
		records = []base.Record{}
	}
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

func encodeJSONLines(writer io.Writer, records []base.Record) error {
	encoder := json.NewEncoder(writer)
	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			return err
		}
	}
	return nil
}

func encodeMsgpack(writer io.Writer, records []base.Record) error {
	encoder := msgpack.NewEncoder(writer)
	for _, record := range records {
		if err := encoder.Encode(map[string]any(record)); err != nil {
			return err
		}
	}
	return nil
}
