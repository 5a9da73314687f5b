// Package export serializes test results into an xlsx workbook.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/plmtools/plm-translator/models"
)

// ErrNoResults means there was nothing to export; no file is produced.
var ErrNoResults = errors.New("no test results to export")

// SheetName is the single worksheet holding the exported table.
const SheetName = "Test Results"

const (
	createdAtLayout = "2006-01-02 15:04:05"
	maxColumnWidth  = 50
)

var headers = []string{
	"ID", "Text to Translate", "Translated Text", "Source Language",
	"Target Language", "Outcome", "Observation", "Accuracy (%)",
	"Tested By", "Date Created", "Session ID",
}

// Workbook builds an xlsx file with one header row and one row per
// result, in the order given. Columns are auto-sized up to a cap.
func Workbook(results []models.TestResult) ([]byte, error) {
	if len(results) == 0 {
		return nil, ErrNoResults
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), SheetName)

	widths := make([]int, len(headers))
	for col, h := range headers {
		widths[col] = len(h)
	}

	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, rec := range results {
		row := []any{
			rec.ID,
			deref(rec.TextToTranslate),
			deref(rec.TranslatedText),
			deref(rec.SourceLanguage),
			deref(rec.TargetLanguage),
			rec.Outcome,
			deref(rec.Observation),
			rec.Accuracy,
			deref(rec.TestedBy),
			rec.CreatedAt.Format(createdAtLayout),
			deref(rec.SessionID),
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}

		for col, v := range row {
			if n := cellWidth(v); n > widths[col] {
				widths[col] = n
			}
		}
	}

	for col := range headers {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, fmt.Errorf("failed to name column %d: %w", col+1, err)
		}
		width := widths[col] + 2
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		if err := f.SetColWidth(SheetName, name, name, float64(width)); err != nil {
			return nil, fmt.Errorf("failed to size column %s: %w", name, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func cellWidth(v any) int {
	switch x := v.(type) {
	case string:
		return len(x)
	case int64:
		return len(strconv.FormatInt(x, 10))
	case float64:
		return len(strconv.FormatFloat(x, 'f', -1, 64))
	default:
		return 0
	}
}
