package output

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/relex/gotils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/vmihailenco/msgpack/v4"

	"github.com/relex/record-refiner/base"
)

var testRecords = []base.Record{
	{"id": "1", "name": "alice"},
	{"id": "2", "name": "bob"},
}

func TestFileWriterJSONArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	writer, err := NewFileWriter(path, logger.Root())
	assert.NoError(t, err)
	assert.NoError(t, writer.Write(testRecords))

	content, rerr := os.ReadFile(path)
	assert.NoError(t, rerr)
	var decoded []map[string]any
	assert.NoError(t, json.Unmarshal(content, &decoded))
	if assert.Len(t, decoded, 2) {
		assert.Equal(t, "alice", decoded[0]["name"])
	}
}

func TestFileWriterJSONArrayEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	writer, err := NewFileWriter(path, logger.Root())
	assert.NoError(t, err)
	assert.NoError(t, writer.Write(nil))

	content, rerr := os.ReadFile(path)
	assert.NoError(t, rerr)
	assert.Equal(t, "[]", string(bytes.TrimSpace(content)))
}

func TestFileWriterJSONLinesGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl.gz")
	writer, err := NewFileWriter(path, logger.Root())
	assert.NoError(t, err)
	assert.NoError(t, writer.Write(testRecords))

	file, oerr := os.Open(path)
	assert.NoError(t, oerr)
	defer file.Close()
	gzReader, gerr := gzip.NewReader(file)
	assert.NoError(t, gerr)
	content, rerr := io.ReadAll(gzReader)
	assert.NoError(t, rerr)

	lines := bytes.Split(bytes.TrimSpace(content), []byte("\n"))
	assert.Len(t, lines, 2)
	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(lines[1], &decoded))
	assert.Equal(t, "bob", decoded["name"])
}

func TestFileWriterMsgpack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.msgpack")
	writer, err := NewFileWriter(path, logger.Root())
	assert.NoError(t, err)
	assert.NoError(t, writer.Write(testRecords))

	file, oerr := os.Open(path)
	assert.NoError(t, oerr)
	defer file.Close()
	decoder := msgpack.NewDecoder(file)
	var first map[string]any
	assert.NoError(t, decoder.Decode(&first))
	assert.Equal(t, "alice", first["name"])
	var second map[string]any
	assert.NoError(t, decoder.Decode(&second))
	assert.Equal(t, "bob", second["name"])
}

func TestFileWriterUnsupportedFormat(t *testing.T) {
	_, err := NewFileWriter(filepath.Join(t.TempDir(), "out.xml"), logger.Root())
	assert.ErrorContains(t, err, "unsupported output format")
}
