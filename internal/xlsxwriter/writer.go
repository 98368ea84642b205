// =============================================================================
// KLV Inspector - XLSX Writer Module
// =============================================================================
//
// This module renders parsed entries and batch summaries as XLSX workbooks.
// It is the spreadsheet counterpart of the textual exporter in internal/klv:
// the CLI uses it for `export --format xlsx` and for the batch summary
// report.
//
// WORKBOOK LAYOUT (entries):
//   Sheet "Entries", bold header row:
//   Key | Name | Length | Value | Position | Annotation
//
// WORKBOOK LAYOUT (batch summary):
//   Sheet "Summary", bold header row:
//   Source | Valid | Entries | Total Length | Errors | Processed At
//
// =============================================================================

package xlsxwriter

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/klv-inspector/internal/history"
	"github.com/ginjaninja78/klv-inspector/internal/klv"
)

// Sheet names used in generated workbooks.
const (
	entriesSheet = "Entries"
	summarySheet = "Summary"
)

// =============================================================================
// ENTRY WORKBOOKS
// =============================================================================

// WriteEntries renders entries as an XLSX workbook and writes it to w.
func WriteEntries(w io.Writer, entries []klv.Entry) error {
	f, err := entriesWorkbook(entries)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// SaveEntries renders entries as an XLSX workbook at path.
func SaveEntries(path string, entries []klv.Entry) error {
	f, err := entriesWorkbook(entries)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// entriesWorkbook builds the entries workbook shared by Write/SaveEntries.
func entriesWorkbook(entries []klv.Entry) (*excelize.File, error) {
	f, err := newWorkbook(entriesSheet, []string{"Key", "Name", "Length", "Value", "Position", "Annotation"})
	if err != nil {
		return nil, err
	}

	for i, entry := range entries {
		row := []any{
			entry.Key,
			entry.FieldName,
			entry.Length,
			entry.Value,
			entry.Offset,
			entry.AnnotatedValue,
		}
		if err := writeRow(f, entriesSheet, i+2, row); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// =============================================================================
// BATCH SUMMARY WORKBOOKS
// =============================================================================

// SaveSummary renders batch history records as an XLSX report at path.
func SaveSummary(path string, records []history.Record) error {
	f, err := newWorkbook(summarySheet, []string{"Source", "Valid", "Entries", "Total Length", "Errors", "Processed At"})
	if err != nil {
		return err
	}
	defer f.Close()

	for i, record := range records {
		row := []any{
			record.Source,
			record.Valid,
			record.EntryCount,
			record.TotalLength,
			strings.Join(record.Errors, "; "),
			record.ProcessedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writeRow(f, summarySheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// =============================================================================
// WORKBOOK HELPERS
// =============================================================================

// newWorkbook creates a single-sheet workbook with a bold header row.
func newWorkbook(sheet string, headers []string) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := writeRow(f, sheet, 1, toAnySlice(headers)); err != nil {
		f.Close()
		return nil, err
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	lastCell, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to compute header range: %w", err)
	}

	if err := f.SetCellStyle(sheet, "A1", lastCell, style); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to apply header style: %w", err)
	}

	return f, nil
}

// writeRow writes values into the 1-indexed row of a sheet.
func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	return nil
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
