package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"wellpulse/internal/errors"
	"wellpulse/pkg/contracts/domain"
)

// Canonical column names after NormalizeHeader. The survey template writes
// several headers with trailing spaces; normalization makes binding
// independent of that.
const (
	ColCandidate = "Candidate"
	ColDay       = "Day"
	ColEnergy    = "Energy Level 0 - 10"
	ColMood      = "Mood 0 - 10"
	ColClarity   = "Mental Clarity 0 - 10"
	ColAnxiety   = "Anxiety 0 - 10"
	ColPain      = "Pain During Yoga 0 - 10"
	ColHeartRate = "Max Heart Rate During Walk/Run"
	ColPosture   = "Overall Posture Improvement 1 -5 degrees"
)

// requiredColumns lists every column the pipeline binds. A sheet missing
// any of them cannot be processed.
var requiredColumns = []string{
	ColCandidate,
	ColDay,
	ColEnergy,
	ColMood,
	ColClarity,
	ColAnxiety,
	ColPain,
	ColHeartRate,
	ColPosture,
}

// Parser reads the survey workbook into the cleaned observation table.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a parser. A nil logger falls back to slog.Default.
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// ParseWorkbook loads the named sheet from the workbook at path and returns
// the cleaned table. Missing file, missing sheet, missing columns and an
// empty sheet are load errors; cell-level problems become missing samples
// recorded in the table's audit.
func (p *Parser) ParseWorkbook(ctx context.Context, path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewLoadError(fmt.Sprintf("failed to open survey workbook %s", path), err)
	}
	defer f.Close()

	if !hasSheet(f, sheet) {
		return nil, errors.NewLoadError(
			fmt.Sprintf("sheet %q not found in workbook (available: %s)", sheet, strings.Join(f.GetSheetList(), ", ")), nil)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.NewLoadError(fmt.Sprintf("failed to read sheet %q", sheet), err)
	}
	if len(rows) == 0 {
		return nil, errors.NewLoadError(fmt.Sprintf("sheet %q is empty", sheet), nil)
	}

	columnIndex := make(map[string]int, len(rows[0]))
	for i, cell := range rows[0] {
		if name := NormalizeHeader(cell); name != "" {
			columnIndex[name] = i
		}
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columnIndex[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, errors.NewLoadError(
			fmt.Sprintf("sheet %q is missing required columns: %s", sheet, strings.Join(missing, "; ")), nil)
	}

	table := &Table{}
	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		if isEmptyRow(row) {
			continue
		}
		rowNum := rowIdx + 1 // 1-based, as the sheet displays it

		candidate := strings.TrimSpace(cellAt(row, columnIndex[ColCandidate]))
		if candidate == "" {
			table.Audit.record(GapMissingCandidate, "", rowNum, ColCandidate, "")
			p.logger.WarnContext(ctx, "skipping row without candidate",
				slog.Int("row", rowNum))
			continue
		}

		dayRaw := cellAt(row, columnIndex[ColDay])
		day, ok := parseDay(dayRaw)
		if !ok {
			table.Audit.record(GapBadDay, candidate, rowNum, ColDay, dayRaw)
			p.logger.WarnContext(ctx, "skipping row with unusable day",
				slog.Int("row", rowNum),
				slog.String("candidate", candidate),
				slog.String("value", dayRaw))
			continue
		}

		obs := domain.Observation{Candidate: candidate, Day: day}
		obs.Energy = p.numericCell(ctx, &table.Audit, row, columnIndex, ColEnergy, candidate, rowNum)
		obs.Mood = p.numericCell(ctx, &table.Audit, row, columnIndex, ColMood, candidate, rowNum)
		obs.MentalClarity = p.numericCell(ctx, &table.Audit, row, columnIndex, ColClarity, candidate, rowNum)
		obs.Anxiety = p.numericCell(ctx, &table.Audit, row, columnIndex, ColAnxiety, candidate, rowNum)
		obs.Pain = p.numericCell(ctx, &table.Audit, row, columnIndex, ColPain, candidate, rowNum)
		obs.HeartRate = p.numericCell(ctx, &table.Audit, row, columnIndex, ColHeartRate, candidate, rowNum)

		postureRaw := cellAt(row, columnIndex[ColPosture])
		obs.PostureRaw = strings.TrimSpace(postureRaw)
		posture, known := domain.MapPosture(postureRaw)
		if !known {
			table.Audit.record(GapUnknownPosture, candidate, rowNum, ColPosture, postureRaw)
			p.logger.WarnContext(ctx, "posture category not recognized, treating as missing",
				slog.Int("row", rowNum),
				slog.String("candidate", candidate),
				slog.String("value", postureRaw))
		}
		obs.Posture = posture

		table.Observations = append(table.Observations, obs)
	}

	if table.Len() == 0 {
		return nil, errors.NewLoadError(fmt.Sprintf("sheet %q has no survey rows", sheet), nil)
	}

	p.logger.InfoContext(ctx, "parsed survey sheet",
		slog.String("sheet", sheet),
		slog.Int("observations", table.Len()),
		slog.Int("candidates", len(table.Candidates())),
		slog.Int("cleaning_gaps", len(table.Audit.Gaps)))

	return table, nil
}

// numericCell coerces one metric cell and audits it when a non-empty value
// fails to parse.
func (p *Parser) numericCell(ctx context.Context, audit *CleaningAudit, row []string, columnIndex map[string]int, column, candidate string, rowNum int) domain.Sample {
	raw := cellAt(row, columnIndex[column])
	sample, ok := coerceNumeric(raw)
	if !ok {
		audit.record(GapNonNumeric, candidate, rowNum, column, raw)
		p.logger.WarnContext(ctx, "non-numeric cell coerced to missing",
			slog.Int("row", rowNum),
			slog.String("candidate", candidate),
			slog.String("column", column),
			slog.String("value", raw))
	}
	return sample
}

func hasSheet(f *excelize.File, sheet string) bool {
	for _, name := range f.GetSheetList() {
		if name == sheet {
			return true
		}
	}
	return false
}

// cellAt reads a cell by index, tolerating the short rows excelize returns
// when trailing cells are empty.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
