// Package importer reads box descriptions from outside the pipeline:
// CSV and Excel batch sheets, free-text prompts, and DXF files written
// by the export package. Column headers are matched case-insensitively
// against a list of aliases and CSV delimiters are detected automatically.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/BoxCut/internal/model"
	"github.com/xuri/excelize/v2"
)

// BatchRow is one box description read from a batch file.
type BatchRow struct {
	Name   string
	Line   int // 1-based line or row number in the source file
	Params model.RawParams
}

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Rows     []BatchRow
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
// A value of -1 means the column is absent.
type ColumnMapping struct {
	Name      int
	Width     int
	Depth     int
	Height    int
	Thickness int
	Kerf      int
	Material  int
	Style     int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"name":      {"name", "label", "description", "desc", "item"},
	"width":     {"width", "w", "width (mm)", "x"},
	"depth":     {"depth", "d", "depth (mm)", "length", "len", "y"},
	"height":    {"height", "h", "height (mm)", "z"},
	"thickness": {"thickness", "t", "thick", "thickness (mm)", "material thickness"},
	"kerf":      {"kerf", "kerf (mm)", "blade", "cut width"},
	"material":  {"material", "mat", "stock", "board"},
	"style":     {"style", "type", "template"},
}

// positionalMapping is used when the first row is not a header:
// name, width, depth, height, thickness, kerf, material, style.
var positionalMapping = ColumnMapping{
	Name: 0, Width: 1, Depth: 2, Height: 3, Thickness: 4, Kerf: 5, Material: 6, Style: 7,
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Returns the mapping and true if a header was detected, or the positional
// mapping and false if no cell matched a known alias.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{-1, -1, -1, -1, -1, -1, -1, -1}
	slots := map[string]*int{
		"name":      &mapping.Name,
		"width":     &mapping.Width,
		"depth":     &mapping.Depth,
		"height":    &mapping.Height,
		"thickness": &mapping.Thickness,
		"kerf":      &mapping.Kerf,
		"material":  &mapping.Material,
		"style":     &mapping.Style,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				if slot := slots[role]; *slot == -1 {
					*slot = i
				}
			}
		}
	}

	if !isHeader {
		return positionalMapping, false
	}
	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseOptionalFloat parses a dimension cell. Empty cells yield nil so the
// pipeline applies its defaults.
func parseOptionalFloat(row []string, idx int, column, rowLabel string) (*float64, string) {
	s := getCell(row, idx)
	if s == "" {
		return nil, ""
	}
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return nil, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, column, s)
	}
	return &v, ""
}

// parseRow extracts a BatchRow using the given column mapping. Range checks
// are left to the normalizer so batch and interactive input fail alike.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, line int, catalog model.Catalog) (BatchRow, string, string) {
	out := BatchRow{Line: line, Name: getCell(row, mapping.Name)}
	if out.Name == "" {
		out.Name = fmt.Sprintf("box-%d", line)
	}

	fields := []struct {
		column string
		idx    int
		dst    **float64
	}{
		{"width", mapping.Width, &out.Params.Width},
		{"depth", mapping.Depth, &out.Params.Depth},
		{"height", mapping.Height, &out.Params.Height},
		{"thickness", mapping.Thickness, &out.Params.Thickness},
		{"kerf", mapping.Kerf, &out.Params.Kerf},
	}
	for _, f := range fields {
		v, errMsg := parseOptionalFloat(row, f.idx, f.column, rowLabel)
		if errMsg != "" {
			return BatchRow{}, errMsg, ""
		}
		*f.dst = v
	}

	var warning string
	if m := getCell(row, mapping.Material); m != "" {
		key, ok := MaterialKey(m, catalog)
		if !ok {
			warning = fmt.Sprintf("%s: Unrecognised material '%s', using it as given", rowLabel, m)
		}
		out.Params.Material = key
	}
	out.Params.Style = strings.ToLower(getCell(row, mapping.Style))

	return out, "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports box descriptions from a CSV file. Material names are
// resolved against catalog.
func ImportCSV(path string, catalog model.Catalog) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	var warnings []string
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		warnings = append(warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	result = ImportCSVFromReader(bytes.NewReader(data), delimiter, catalog)
	result.Warnings = append(warnings, result.Warnings...)
	return result
}

// ImportCSVFromReader imports box descriptions from a CSV reader with a
// known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune, catalog model.Catalog) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", catalog)
}

// ImportExcel imports box descriptions from the first sheet of an Excel file.
func ImportExcel(path string, catalog model.Catalog) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", catalog)
}

// ImportFile dispatches on the file extension.
func ImportFile(path string, catalog model.Catalog) ImportResult {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xlsm") {
		return ImportExcel(path, catalog)
	}
	return ImportCSV(path, catalog)
}

// importFromRows is the shared import logic for both CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, catalog model.Catalog) ImportResult {
	result := ImportResult{}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")
	} else if len(rows[0]) >= 2 {
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		parsed, errMsg, warning := parseRow(row, mapping, rowLabel, lineNum, catalog)

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		result.Rows = append(result.Rows, parsed)
	}

	if len(result.Rows) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
	}

	return result
}
