package xlsxwriter

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/klv-inspector/internal/history"
	"github.com/ginjaninja78/klv-inspector/internal/klv"
)

func TestWriteEntries(t *testing.T) {
	outcome := klv.Parse("00206AB48DE" + "04903840")
	require.Empty(t, outcome.Errors)

	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, outcome.Entries))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Entries")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Key", "Name", "Length", "Value", "Position", "Annotation"}, rows[0])
	assert.Equal(t, "002", rows[1][0])
	assert.Equal(t, "Tracking Number", rows[1][1])
	assert.Equal(t, "6", rows[1][2])
	assert.Equal(t, "AB48DE", rows[1][3])
	assert.Equal(t, "049", rows[2][0])
	assert.Equal(t, "🇺🇸 USD - US Dollar", rows[2][5])
}

func TestSaveEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.xlsx")

	require.NoError(t, SaveEntries(path, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Entries")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only for an empty entry list")
}

func TestSaveSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.xlsx")

	records := []history.Record{
		{Source: "a.klv", Valid: true, EntryCount: 2, TotalLength: 20, ProcessedAt: time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)},
		{Source: "b.klv", Valid: false, Errors: []string{"Invalid format at position 0"}, ProcessedAt: time.Date(2026, 8, 26, 10, 1, 0, 0, time.UTC)},
	}

	require.NoError(t, SaveSummary(path, records))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "a.klv", rows[1][0])
	assert.Equal(t, "TRUE", rows[1][1])
	assert.Equal(t, "Invalid format at position 0", rows[2][4])
}
