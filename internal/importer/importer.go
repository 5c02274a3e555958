// Package importer reads building records into a site from CSV and Excel
// lists and from DXF drawings. It supports automatic delimiter detection,
// flexible column mapping and case-insensitive header recognition; bad rows
// are collected as errors, never fatal.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jmoralesv/sombra/internal/model"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Buildings []model.Building
	Errors    []string
	Warnings  []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	HeightCode   int
	CadastralRef int
	Group        int
	Footprint    int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"heightcode": {"height code", "heightcode", "height", "floors", "plantas", "code"},
	"cadastral":  {"cadastral ref", "cadastral", "refcat", "ref", "reference", "parcel"},
	"group":      {"group", "group id", "block", "manzana"},
	"footprint":  {"footprint", "polygon", "outline", "coords", "coordinates", "ring"},
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe; the delimiter
// that produces the most consistent column count across lines wins.
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

// DetectColumns examines a header row and returns a ColumnMapping. Matching
// is case-insensitive against the known aliases for each role. Returns the
// mapping and true if a header was detected, or the default positional
// mapping (height code, cadastral ref, group, footprint) and false if not.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{HeightCode: -1, CadastralRef: -1, Group: -1, Footprint: -1}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "heightcode":
					if mapping.HeightCode == -1 {
						mapping.HeightCode = i
					}
				case "cadastral":
					if mapping.CadastralRef == -1 {
						mapping.CadastralRef = i
					}
				case "group":
					if mapping.Group == -1 {
						mapping.Group = i
					}
				case "footprint":
					if mapping.Footprint == -1 {
						mapping.Footprint = i
					}
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{HeightCode: 0, CadastralRef: 1, Group: 2, Footprint: 3}, false
	}
	return mapping, true
}

// ImportCSV imports buildings from a CSV file.
func ImportCSV(path string) ImportResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot read file: %v", err)}}
	}
	return ImportCSVFromReader(bytes.NewReader(data), DetectCSVDelimiter(data))
}

// ImportCSVFromReader imports buildings from CSV content with the given delimiter.
func ImportCSVFromReader(r io.Reader, delimiter rune) ImportResult {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot parse CSV: %v", err)}}
	}
	return importRows(rows)
}

// ImportXLSX imports buildings from the first sheet of an Excel workbook.
func ImportXLSX(path string) ImportResult {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot open workbook: %v", err)}}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ImportResult{Errors: []string{"Workbook contains no sheets"}}
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot read sheet %q: %v", sheets[0], err)}}
	}
	return importRows(rows)
}

// importRows converts raw rows into buildings using detected column mapping.
func importRows(rows [][]string) ImportResult {
	result := ImportResult{}
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "File contains no rows")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	start := 0
	if hasHeader {
		start = 1
	}
	if mapping.Footprint == -1 {
		result.Errors = append(result.Errors, "No footprint column found")
		return result
	}

	cell := func(row []string, idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	for i := start; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		ring, err := ParseFootprint(cell(row, mapping.Footprint))
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		b := model.NewBuilding(cell(row, mapping.HeightCode), ring)
		b.CadastralRef = cell(row, mapping.CadastralRef)
		if g := cell(row, mapping.Group); g != "" {
			b.GroupID = g
		}
		if model.ParseFloorCount(b.HeightCode) == 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Row %d: height code %q parses to 0 floors; building will cast no shadow", i+1, b.HeightCode))
		}
		result.Buildings = append(result.Buildings, b)
	}
	return result
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// ParseFootprint parses a footprint string of the form "x y; x y; x y"
// (commas also accepted inside pairs) into a ring of at least 3 points.
func ParseFootprint(s string) (model.Ring, error) {
	if s == "" {
		return nil, fmt.Errorf("empty footprint")
	}
	var ring model.Ring
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		fields := strings.FieldsFunc(pair, func(r rune) bool {
			return r == ' ' || r == ','
		})
		if len(fields) != 2 {
			return nil, fmt.Errorf("bad coordinate pair %q", pair)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("bad x coordinate %q", fields[0])
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad y coordinate %q", fields[1])
		}
		ring = append(ring, model.Point2D{X: x, Y: y})
	}
	if len(ring) < 3 {
		return nil, fmt.Errorf("footprint needs at least 3 points, got %d", len(ring))
	}
	return ring, nil
}
