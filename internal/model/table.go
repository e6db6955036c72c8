package model

import "strings"

// RawTable is a headerless grid of cell values exactly as read from a file.
// Rows may be ragged; callers must not assume uniform width.
type RawTable [][]string

// HeaderedTable is a RawTable with one row promoted to column names.
type HeaderedTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ColumnIndex returns the position of the named column, or -1.
func (t *HeaderedTable) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Cell returns the trimmed value of the named column in the given data row.
// Short rows yield "".
func (t *HeaderedTable) Cell(row int, column string) string {
	idx := t.ColumnIndex(column)
	if idx < 0 || row < 0 || row >= len(t.Rows) {
		return ""
	}
	cells := t.Rows[row]
	if idx >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[idx])
}

// Concat appends another table's rows, aligning columns by name. Columns
// missing from other come through empty; extra columns in other are dropped.
func (t *HeaderedTable) Concat(other *HeaderedTable) {
	for r := range other.Rows {
		row := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			if j := other.ColumnIndex(col); j >= 0 && j < len(other.Rows[r]) {
				row[i] = other.Rows[r][j]
			}
		}
		t.Rows = append(t.Rows, row)
	}
}

// Role is the semantic meaning assigned to a column.
type Role string

const (
	RoleDate  Role = "date"
	RoleName  Role = "name"
	RoleHours Role = "hours"
	RoleTips  Role = "tips"
)

// AllRoles lists every role a flat tips table must resolve, in the order
// detection and error reporting use.
var AllRoles = []Role{RoleDate, RoleName, RoleHours, RoleTips}

// RoleMap maps each resolved role to a concrete column name.
type RoleMap map[Role]string

// FileKind classifies an uploaded table.
type FileKind string

const (
	FileKindClock FileKind = "clock"
	FileKindTips  FileKind = "tips"
)
