package run

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/klauspost/compress/gzip"

	"github.com/relex/record-refiner/base"
	"github.com/relex/record-refiner/defs"
)

// ReadRecordsFile reads input records from a ".json" array file or a ".jsonl" / ".ndjson"
// file of one JSON object per line, optionally gzip-compressed with a trailing ".gz"
func ReadRecordsFile(path string) ([]base.Record, error) {
	info, serr := os.Stat(path)
	if serr != nil {
		return nil, fmt.Errorf("failed to read input file: %w", serr)
	}
	if datasize.ByteSize(info.Size()) > defs.InputFileMaxSize {
		return nil, fmt.Errorf("input file '%s' exceeds the size limit of %s", path, defs.InputFileMaxSize)
	}

	file, oerr := os.Open(path)
	if oerr != nil {
		return nil, fmt.Errorf("failed to read input file: %w", oerr)
	}
	defer file.Close()

	var reader io.Reader = file
	name := path
	if strings.HasSuffix(name, ".gz") {
		gzReader, gerr := gzip.NewReader(file)
		if gerr != nil {
			return nil, fmt.Errorf("failed to read input file '%s': %w", path, gerr)
		}
		defer gzReader.Close()
		reader = gzReader
		name = strings.TrimSuffix(name, ".gz")
	}

	switch filepath.Ext(name) {
	case ".json":
		return decodeJSONArray(path, reader)
	case ".jsonl", ".ndjson":
		return decodeJSONLines(path, reader)
	default:
		return nil, fmt.Errorf("unsupported input format '%s'", filepath.Ext(name))
	}
}

func decodeJSONArray(path string, reader io.Reader) ([]base.Record, error) {
	var records []base.Record
	if err := json.NewDecoder(reader).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode input file '%s': %w", path, err)
	}
	return records, nil
}

func decodeJSONLines(path string, reader io.Reader) ([]base.Record, error) {
	var records []base.Record
	decoder := json.NewDecoder(reader)
	for {
		var record base.Record
		if err := decoder.Decode(&record); err != nil {
			if errors.Is(err, io.EOF) {
				return records, nil
			}
			return nil, fmt.Errorf("failed to decode input file '%s': %w", path, err)
		}
		records = append(records, record)
	}
}
