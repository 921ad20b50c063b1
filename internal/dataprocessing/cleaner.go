package dataprocessing

import (
	"strconv"
	"strings"

	"wellpulse/pkg/contracts/domain"
)

// headerJunk removes the characters the survey template leaks into header
// cells: embedded newlines and the square brackets around scale hints.
var headerJunk = strings.NewReplacer("\n", "", "[", "", "]", "")

// NormalizeHeader canonicalizes a raw header cell so column binding is
// insensitive to the trailing spaces and embedded newlines the survey
// template carries. Junk characters are removed before trimming, which
// makes the function idempotent.
func NormalizeHeader(raw string) string {
	return strings.TrimSpace(headerJunk.Replace(raw))
}

// GapKind classifies one cell the cleaner could not use as-is.
type GapKind string

const (
	// GapNonNumeric marks a non-empty cell that failed numeric coercion.
	GapNonNumeric GapKind = "non_numeric"
	// GapUnknownPosture marks a posture cell outside the documented categories.
	GapUnknownPosture GapKind = "unknown_posture"
	// GapMissingCandidate marks a row with an empty candidate cell.
	GapMissingCandidate GapKind = "missing_candidate"
	// GapBadDay marks a row whose day cell is not a whole number.
	GapBadDay GapKind = "bad_day"
)

// Gap records where a cleaning rule fired and what it saw.
type Gap struct {
	Kind      GapKind
	Candidate string
	Row       int
	Column    string
	Raw       string
}

// CleaningAudit accumulates the gaps found while cleaning one sheet.
// Coercion failures become missing samples rather than errors; the audit
// keeps them reportable.
type CleaningAudit struct {
	Gaps []Gap
}

func (a *CleaningAudit) record(kind GapKind, candidate string, row int, column, raw string) {
	a.Gaps = append(a.Gaps, Gap{
		Kind:      kind,
		Candidate: candidate,
		Row:       row,
		Column:    column,
		Raw:       raw,
	})
}

// CountByKind returns how many gaps of the given kind were recorded.
func (a *CleaningAudit) CountByKind(kind GapKind) int {
	count := 0
	for _, gap := range a.Gaps {
		if gap.Kind == kind {
			count++
		}
	}
	return count
}

// coerceNumeric converts one cell into a sample. Empty cells are missing
// values; non-empty cells that do not parse as a number are missing too,
// with ok=false so the caller can audit them. Thousands separators are
// tolerated because Excel sometimes formats numeric cells with them.
func coerceNumeric(raw string) (domain.Sample, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return domain.MissingSample(), true
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", ""), 64)
	if err != nil {
		return domain.MissingSample(), false
	}
	return domain.NewSample(value), true
}

// parseDay converts a day cell into its integer value. Excel frequently
// serializes integers as "3" or "3.0"; both are accepted. Fractional or
// non-numeric days are rejected because the day is a grouping key.
func parseDay(raw string) (int, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	day := int(value)
	if float64(day) != value {
		return 0, false
	}
	return day, true
}
