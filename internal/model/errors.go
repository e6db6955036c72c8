package model

import (
	"fmt"
	"strings"
)

// MissingColumnError reports the semantic roles that could not be resolved
// on a table, along with the column names that were actually found.
type MissingColumnError struct {
	Roles []Role
	Found []string
}

func (e *MissingColumnError) Error() string {
	roles := make([]string, len(e.Roles))
	for i, r := range e.Roles {
		roles[i] = string(r)
	}
	return fmt.Sprintf("missing required columns for roles [%s], found columns: [%s]",
		strings.Join(roles, ", "), strings.Join(e.Found, ", "))
}

// UnsupportedFormatError reports a file extension the reader cannot handle.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %q (expected .csv, .xlsx or .xls)", e.Ext)
}
