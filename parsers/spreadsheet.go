package parsers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFile = errors.New("only Excel or CSV files allowed (.xlsx, .xls, .csv)")
	ErrEmptySheet      = errors.New("worksheet is empty")
)

// Limits caps how much of an uploaded sheet is read. Zero means no limit.
type Limits struct {
	MaxRows int
	MaxCols int
}

// Sheet is the first worksheet of an upload: a header row plus data rows,
// already trimmed to the configured limits.
type Sheet struct {
	Header []string
	Rows   [][]string
}

// Cell returns the trimmed text at row, col or "" when the row is short.
func (s *Sheet) Cell(row, col int) string {
	if row < 0 || row >= len(s.Rows) || col < 0 {
		return ""
	}
	r := s.Rows[row]
	if col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// AllowedFile reports whether the file name has a supported extension.
func AllowedFile(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls", ".csv":
		return true
	}
	return false
}

// ReadSheet reads the first worksheet of an xlsx, xls or csv upload.
func ReadSheet(r io.Reader, filename string, limits Limits) (*Sheet, error) {
	if !AllowedFile(filename) {
		return nil, ErrUnsupportedFile
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	rows, err := readRows(data, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrEmptySheet)
	}

	sheet := &Sheet{Header: clip(rows[0], limits.MaxCols)}
	for _, row := range rows[1:] {
		if limits.MaxRows > 0 && len(sheet.Rows) >= limits.MaxRows {
			log.Warn().Str("file", filename).Int("maxRows", limits.MaxRows).Msg("sheet truncated")
			break
		}
		sheet.Rows = append(sheet.Rows, clip(row, limits.MaxCols))
	}
	return sheet, nil
}

// DropEmptyRows removes rows where every cell is blank.
func (s *Sheet) DropEmptyRows() {
	kept := s.Rows[:0]
	for _, row := range s.Rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				kept = append(kept, row)
				break
			}
		}
	}
	s.Rows = kept
}

func readRows(data []byte, filename string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		reader := csv.NewReader(SkipBOM(bytes.NewReader(data)))
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1
		return reader.ReadAll()
	case ".xls":
		if !bytes.HasPrefix(data, []byte{0xD0, 0xCF, 0x11, 0xE0}) {
			return nil, errors.New("not a valid .xls workbook")
		}
		workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
		if err != nil {
			return nil, err
		}
		if workbook.NumSheets() == 0 {
			return nil, errors.New("no worksheet found")
		}
		return workbook.ReadAllCells(100000), nil
	default:
		if !bytes.HasPrefix(data, []byte{0x50, 0x4B, 0x03, 0x04}) {
			return nil, errors.New("not a valid .xlsx workbook")
		}
		file, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer func() { _ = file.Close() }()

		sheetName := file.GetSheetName(0)
		if sheetName == "" {
			return nil, errors.New("no worksheet found")
		}
		return file.GetRows(sheetName, excelize.Options{RawCellValue: true})
	}
}

func clip(row []string, maxCols int) []string {
	if maxCols > 0 && len(row) > maxCols {
		row = row[:maxCols]
	}
	out := make([]string, len(row))
	copy(out, row)
	return out
}
