// Package reader turns uploaded spreadsheet bytes into raw cell grids,
// dispatching on the file extension.
package reader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/darkron008/Tip-and-hours-Calculator/internal/model"
)

// Read parses the file contents into a RawTable. Supported extensions are
// .csv, .xlsx and .xls; anything else fails with UnsupportedFormatError.
func Read(data []byte, filename string) (model.RawTable, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv":
		return readCSV(data)
	case ".xlsx":
		return readXLSX(data)
	case ".xls":
		return readXLS(data)
	default:
		return nil, &model.UnsupportedFormatError{Ext: ext}
	}
}

func readCSV(data []byte) (model.RawTable, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // exports are ragged
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return model.RawTable(records), nil
}

func readXLSX(data []byte) (model.RawTable, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return model.RawTable{}, nil
	}

	// Only the first sheet carries data in the exports we ingest.
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return model.RawTable(rows), nil
}

func readXLS(data []byte) (model.RawTable, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open xls: %w", err)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return model.RawTable{}, nil
	}

	out := make(model.RawTable, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			out = append(out, []string{})
			continue
		}
		cells := make([]string, 0, row.LastCol())
		for c := row.FirstCol(); c < row.LastCol(); c++ {
			cells = append(cells, row.Col(c))
		}
		out = append(out, cells)
	}
	return out, nil
}
