package report

import "strings"

const (
	typeRevenue = "REVENUE"

	ClassFixed    = "FIXED"
	ClassVariable = "VARIABLE"
)

// IsRevenue decides whether an entry counts as revenue. The cost center's
// type wins; the entry's own stored type is the fallback for entries whose
// cost center relation cannot be resolved.
func IsRevenue(costCenterType, entryType string) bool {
	t := costCenterType
	if t == "" {
		t = entryType
	}
	return t == typeRevenue
}

// NormalizeExpenseClass folds a raw expense class onto FIXED or VARIABLE.
// Matching is case-insensitive and anything that is not FIXED, including an
// absent value, is VARIABLE.
func NormalizeExpenseClass(raw string) string {
	if strings.ToUpper(raw) == ClassFixed {
		return ClassFixed
	}
	return ClassVariable
}
