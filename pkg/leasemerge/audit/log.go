// Package audit keeps the in-process trail of successful merges.
//
// A Log lives as long as the process that created it. Entries are only ever
// appended and read: nothing is removed, deduplicated or persisted, so a
// restart starts from an empty trail.
package audit

import (
	"sync"

	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/models"
)

// Log is an append-only, insertion-ordered list of merge records.
// It is safe for concurrent use; one mutex guards append and read.
type Log struct {
	mu      sync.RWMutex
	entries []models.AuditEntry
}

// New creates an empty Log.
func New() *Log {
	return &Log{}
}

// Record appends entry to the log.
func (l *Log) Record(entry models.AuditEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

// Entries returns a copy of all entries, oldest first.
func (l *Log) Entries() []models.AuditEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.AuditEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Table renders the log for display.
func (l *Log) Table() models.Table {
	return models.AuditTable(l.Entries())
}
