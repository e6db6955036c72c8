package reader

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/darkron008/Tip-and-hours-Calculator/internal/model"
)

func TestRead_CSV(t *testing.T) {
	t.Parallel()

	data := []byte("Date,Employee,Hours\n2025-06-28,Alice,5\n2025-06-29,Bob\n")

	raw, err := Read(data, "clock.csv")
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(raw) != 3 {
		t.Fatalf("row count: got=%d want=3", len(raw))
	}
	// Ragged rows come through as-is.
	if len(raw[2]) != 2 {
		t.Fatalf("ragged row width: got=%d want=2", len(raw[2]))
	}
	if raw[1][1] != "Alice" {
		t.Fatalf("cell: got=%q want=%q", raw[1][1], "Alice")
	}
}

func TestRead_XLSX(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	_ = f.SetCellValue("Sheet1", "A1", "Date")
	_ = f.SetCellValue("Sheet1", "B1", "Tips")
	_ = f.SetCellValue("Sheet1", "A2", "2025-06-28")
	_ = f.SetCellValue("Sheet1", "B2", 100)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	raw, err := Read(buf.Bytes(), "sales.xlsx")
	if err != nil {
		t.Fatalf("read xlsx: %v", err)
	}
	if len(raw) != 2 || raw[0][0] != "Date" {
		t.Fatalf("unexpected grid: %v", raw)
	}
}

func TestRead_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	_, err := Read([]byte("x"), "report.pdf")
	var unsupported *model.UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedFormatError, got %v", err)
	}
	if unsupported.Ext != ".pdf" {
		t.Fatalf("extension: got=%q want=%q", unsupported.Ext, ".pdf")
	}
}
