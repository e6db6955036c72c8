package parser

import (
	"strings"

	"github.com/darkron008/Tip-and-hours-Calculator/internal/model"
)

// RoleDetector infers which column plays which semantic role (date, name,
// hours, tips) on a headered table.
type RoleDetector struct{}

// NewRoleDetector creates a detector.
func NewRoleDetector() *RoleDetector {
	return &RoleDetector{}
}

// Detect resolves all four roles or fails with a MissingColumnError listing
// every role it could not place. Resolution runs three passes: keyword
// containment, date content sniffing, then fuzzy name matching. The result
// is deterministic for identical input.
func (d *RoleDetector) Detect(t model.HeaderedTable) (model.RoleMap, error) {
	return d.DetectSubset(t, model.AllRoles)
}

// DetectSubset resolves only the requested roles. Clock tables use this to
// skip the tips role they legitimately lack.
func (d *RoleDetector) DetectSubset(t model.HeaderedTable, wanted []model.Role) (model.RoleMap, error) {
	lower := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		lower[i] = strings.ToLower(NormalizeColumnName(col))
	}

	roles := make(model.RoleMap, len(wanted))

	// Pass 1: keyword containment, first matching column wins.
	for _, role := range wanted {
		for i, col := range lower {
			if ContainsAny(col, roleKeywords[role]) {
				roles[role] = t.Columns[i]
				break
			}
		}
	}

	// Pass 2: content sniffing for the date column only.
	if _, ok := roles[model.RoleDate]; !ok && roleWanted(wanted, model.RoleDate) {
		if col, ok := sniffDateColumn(t); ok {
			roles[model.RoleDate] = col
		}
	}

	// Pass 3: fuzzy match each keyword against all column names.
	for _, role := range wanted {
		if _, ok := roles[role]; ok {
			continue
		}
		if col, ok := fuzzyMatchColumn(roleKeywords[role], lower, t.Columns); ok {
			roles[role] = col
		}
	}

	missing := make([]model.Role, 0, len(wanted))
	for _, role := range wanted {
		if _, ok := roles[role]; !ok {
			missing = append(missing, role)
		}
	}
	if len(missing) > 0 {
		return nil, &model.MissingColumnError{Roles: missing, Found: t.Columns}
	}

	return roles, nil
}

func roleWanted(roles []model.Role, role model.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// sniffDateColumn picks the first column whose leading five non-empty values
// all parse as calendar dates.
func sniffDateColumn(t model.HeaderedTable) (string, bool) {
	for i, col := range t.Columns {
		checked := 0
		allDates := true
		for _, row := range t.Rows {
			if i >= len(row) {
				continue
			}
			cell := strings.TrimSpace(row[i])
			if cell == "" {
				continue
			}
			if _, ok := ParseDate(cell); !ok {
				allDates = false
				break
			}
			checked++
			if checked == 5 {
				break
			}
		}
		if checked > 0 && allDates {
			return col, true
		}
	}
	return "", false
}

// fuzzyMatchColumn returns the column closest to any keyword at or above the
// cutoff. The first keyword that yields any match decides; among columns the
// highest similarity wins, earlier column on ties.
func fuzzyMatchColumn(keywords, lower, original []string) (string, bool) {
	for _, kw := range keywords {
		best := -1
		bestScore := 0.0
		for i, col := range lower {
			if col == "" {
				continue
			}
			if s := Similarity(kw, col); s >= FuzzyMatchCutoff && s > bestScore {
				best = i
				bestScore = s
			}
		}
		if best >= 0 {
			return original[best], true
		}
	}
	return "", false
}
