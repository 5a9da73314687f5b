package export

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/plmtools/plm-translator/models"
)

func strPtr(s string) *string { return &s }

func TestWorkbook_Empty(t *testing.T) {
	if _, err := Workbook(nil); !errors.Is(err, ErrNoResults) {
		t.Errorf("expected ErrNoResults, got %v", err)
	}
	if _, err := Workbook([]models.TestResult{}); !errors.Is(err, ErrNoResults) {
		t.Errorf("expected ErrNoResults, got %v", err)
	}
}

func TestWorkbook_RowsAndColumns(t *testing.T) {
	results := []models.TestResult{
		{
			ID:              2,
			Outcome:         models.OutcomeSuccess,
			Accuracy:        95.5,
			Observation:     strPtr("накладная translated cleanly"),
			TestedBy:        strPtr("alice"),
			TextToTranslate: strPtr("Hello"),
			TranslatedText:  strPtr("Bonjour"),
			SourceLanguage:  strPtr("en"),
			TargetLanguage:  strPtr("fr"),
			SessionID:       strPtr("s-1"),
			CreatedAt:       time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		},
		{
			ID:        1,
			Outcome:   models.OutcomeFailure,
			Accuracy:  12,
			CreatedAt: time.Date(2026, 3, 13, 8, 0, 0, 0, time.UTC),
		},
	}

	data, err := Workbook(results)
	if err != nil {
		t.Fatalf("Workbook failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("failed to read sheet: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected header + 2 data rows, got %d rows", len(rows))
	}
	if len(rows[0]) != 11 {
		t.Fatalf("expected 11 columns, got %d", len(rows[0]))
	}
	for i, want := range headers {
		if rows[0][i] != want {
			t.Errorf("header %d: expected %q, got %q", i, want, rows[0][i])
		}
	}

	// Rows keep the given order
	if rows[1][0] != "2" || rows[2][0] != "1" {
		t.Errorf("unexpected row order: %v / %v", rows[1][0], rows[2][0])
	}
	if rows[1][7] != "95.5" {
		t.Errorf("expected accuracy 95.5, got %q", rows[1][7])
	}
	if rows[1][9] != "2026-03-14 09:26:53" {
		t.Errorf("unexpected date format: %q", rows[1][9])
	}
	if rows[1][6] != "накладная translated cleanly" {
		t.Errorf("unicode observation mangled: %q", rows[1][6])
	}
}

func TestWorkbook_ColumnWidthCap(t *testing.T) {
	long := strPtr("this observation goes on and on and repeats itself well past the fifty character column cap")
	results := []models.TestResult{
		{ID: 1, Outcome: models.OutcomeSuccess, Accuracy: 80, Observation: long, CreatedAt: time.Now().UTC()},
	}

	data, err := Workbook(results)
	if err != nil {
		t.Fatalf("Workbook failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	// Observation is column G
	width, err := f.GetColWidth(SheetName, "G")
	if err != nil {
		t.Fatalf("failed to read column width: %v", err)
	}
	if width > maxColumnWidth {
		t.Errorf("column width %v exceeds cap %d", width, maxColumnWidth)
	}
}
