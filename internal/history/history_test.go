package history

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_AppendAndRead(t *testing.T) {
	log := New(10)

	log.Append(Record{Source: "a.klv", Valid: true, EntryCount: 3, ProcessedAt: time.Now()})
	log.Append(Record{Source: "b.klv", Valid: false, Errors: []string{"Invalid format at position 0"}})

	records := log.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "a.klv", records[0].Source)
	assert.Equal(t, "b.klv", records[1].Source)

	valid, invalid := log.Counts()
	assert.Equal(t, 1, valid)
	assert.Equal(t, 1, invalid)
}

func TestLog_EvictsOldestWhenFull(t *testing.T) {
	log := New(3)

	for i := 0; i < 5; i++ {
		log.Append(Record{Source: fmt.Sprintf("%d.klv", i)})
	}

	records := log.Records()
	require.Len(t, records, 3)
	assert.Equal(t, "2.klv", records[0].Source)
	assert.Equal(t, "4.klv", records[2].Source)
}

func TestLog_MinimumLimit(t *testing.T) {
	log := New(0)

	log.Append(Record{Source: "a.klv"})
	log.Append(Record{Source: "b.klv"})

	records := log.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "b.klv", records[0].Source)
}

func TestLog_RecordsReturnsCopy(t *testing.T) {
	log := New(5)
	log.Append(Record{Source: "a.klv"})

	records := log.Records()
	records[0].Source = "tampered"

	assert.Equal(t, "a.klv", log.Records()[0].Source)
}

func TestLog_ConcurrentAppends(t *testing.T) {
	log := New(1000)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			log.Append(Record{Source: fmt.Sprintf("%d.klv", n), Valid: n%2 == 0})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, log.Len())
	valid, invalid := log.Counts()
	assert.Equal(t, 50, valid)
	assert.Equal(t, 50, invalid)
}
