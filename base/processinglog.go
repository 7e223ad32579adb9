package base

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// ProcessingLog is an append-only trace of engine operations, kept for the lifetime of an
// engine instance
//
// Appends from concurrent batches are serialized by an internal mutex. The log is never
// truncated automatically; once the advisory byte cap is reached, further entries are
// counted but not stored, and WriteTo emits a single truncation marker in their place.
type ProcessingLog struct {
	mutex    sync.Mutex
	entries  []LogEntry
	numBytes uint64
	maxBytes uint64
	dropped  int
}

// LogEntry is one timestamped operation line in a ProcessingLog
type LogEntry struct {
	Time    time.Time
	Message string
}

// NewProcessingLog creates a ProcessingLog with the given advisory byte cap (0 = unlimited)
func NewProcessingLog(maxBytes uint64) *ProcessingLog {
	return &ProcessingLog{
		entries:  make([]LogEntry, 0, 100),
		maxBytes: maxBytes,
	}
}

// Append formats and appends one operation line
func (plog *ProcessingLog) Append(format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	now := time.Now()

	plog.mutex.Lock()
	defer plog.mutex.Unlock()
	if plog.maxBytes > 0 && plog.numBytes >= plog.maxBytes {
		plog.dropped++
		return
	}
	plog.entries = append(plog.entries, LogEntry{Time: now, Message: message})
	plog.numBytes += uint64(len(message))
}

// Snapshot returns a copy of all stored entries
func (plog *ProcessingLog) Snapshot() []LogEntry {
	plog.mutex.Lock()
	defer plog.mutex.Unlock()
	snapshot := make([]LogEntry, len(plog.entries))
	copy(snapshot, plog.entries)
	return snapshot
}

// Length returns the number of stored entries
func (plog *ProcessingLog) Length() int {
	plog.mutex.Lock()
	defer plog.mutex.Unlock()
	return len(plog.entries)
}

// Clear removes all stored entries and resets the byte counter
func (plog *ProcessingLog) Clear() {
	plog.mutex.Lock()
	defer plog.mutex.Unlock()
	plog.entries = plog.entries[:0]
	plog.numBytes = 0
	plog.dropped = 0
}

// WriteTo writes all entries as timestamped lines
func (plog *ProcessingLog) WriteTo(writer io.Writer) (int64, error) {
	var written int64
	for _, entry := range plog.Snapshot() {
		n, err := fmt.Fprintf(writer, "%s %s\n", entry.Time.Format(time.RFC3339Nano), entry.Message)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	plog.mutex.Lock()
	dropped := plog.dropped
	plog.mutex.Unlock()
	if dropped > 0 {
		n, err := fmt.Fprintf(writer, "... %d more entries dropped over size cap\n", dropped)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
