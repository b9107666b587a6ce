package audit

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/leasemerge-go/pkg/leasemerge/models"
)

func entry(i int) models.AuditEntry {
	return models.AuditEntry{
		ID:          fmt.Sprintf("run-%d", i),
		Record:      models.ExtractedRecord{Region: "East", SiteNumber: fmt.Sprint(i), MonthlyTotal: "1", CommencementDate: "d"},
		SourceLabel: "book.xlsx",
	}
}

func TestLogAppendOnly(t *testing.T) {
	log := New()
	assert.Zero(t, log.Len())
	assert.Empty(t, log.Entries())

	var snapshots [][]models.AuditEntry
	for i := 0; i < 5; i++ {
		log.Record(entry(i))
		snapshots = append(snapshots, log.Entries())
	}

	all := log.Entries()
	require.Len(t, all, 5)
	for i, e := range all {
		assert.Equal(t, fmt.Sprintf("run-%d", i), e.ID)
	}
	// Every earlier snapshot is a prefix of the final state.
	for i, snap := range snapshots {
		assert.Equal(t, all[:i+1], snap)
	}
}

func TestLogEntriesIsCopy(t *testing.T) {
	log := New()
	log.Record(entry(0))

	got := log.Entries()
	got[0].SourceLabel = "mutated"

	assert.Equal(t, "book.xlsx", log.Entries()[0].SourceLabel)
}

func TestLogDuplicatesKept(t *testing.T) {
	log := New()
	log.Record(entry(1))
	log.Record(entry(1))
	assert.Equal(t, 2, log.Len())
}

func TestLogConcurrentRecord(t *testing.T) {
	log := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			log.Record(entry(i))
			_ = log.Entries()
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, log.Len())
}

func TestLogTable(t *testing.T) {
	log := New()
	log.Record(entry(7))

	table := log.Table()
	require.Len(t, table.Rows, 1)
	assert.Equal(t, models.HeaderFileName, table.Headers[4])
	assert.Equal(t, []string{"East", "7", "1", "d", "book.xlsx"}, table.Rows[0])
}
