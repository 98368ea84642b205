// =============================================================================
// KLV Inspector - In-Memory History
// =============================================================================
//
// Bounded, in-memory record of recent parse outcomes. The batch pipeline
// appends one record per processed buffer and reads the whole log back when
// building its summary report. Nothing is persisted: the history lives and
// dies with the process.
//
// The log is safe for concurrent appends because the batch command records
// results from multiple worker goroutines.
//
// =============================================================================

package history

import (
	"sync"
	"time"
)

// Record is one remembered parse outcome.
type Record struct {
	// Source identifies where the buffer came from (file path or "inline").
	Source string

	// Valid is the validation verdict for the buffer.
	Valid bool

	// EntryCount is the number of entries parsed.
	EntryCount int

	// TotalLength is the character length of the stripped buffer.
	TotalLength int

	// Errors are the parse error messages, if any.
	Errors []string

	// ProcessedAt is when the buffer was parsed.
	ProcessedAt time.Time
}

// Log is a bounded history of Records. The zero value is not usable; create
// one with New.
type Log struct {
	mu      sync.Mutex
	records []Record
	limit   int
}

// New creates a Log retaining at most limit records. Limits below 1 are
// raised to 1.
func New(limit int) *Log {
	if limit < 1 {
		limit = 1
	}
	return &Log{
		records: make([]Record, 0, limit),
		limit:   limit,
	}
}

// Append adds a record, evicting the oldest one when the log is full.
func (l *Log) Append(record Record) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.records) == l.limit {
		l.records = append(l.records[:0], l.records[1:]...)
	}
	l.records = append(l.records, record)
}

// Records returns a copy of the retained records, oldest first.
func (l *Log) Records() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of retained records.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// Counts returns how many retained records were valid and invalid.
func (l *Log) Counts() (valid, invalid int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, r := range l.records {
		if r.Valid {
			valid++
		} else {
			invalid++
		}
	}
	return valid, invalid
}
