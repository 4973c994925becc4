package dataset

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadTable reads a raw tabular export into memory. The format is
// chosen by file extension: .csv via encoding/csv, .xlsx via
// excelize. The first row is the header.
func LoadTable(path string, logger *slog.Logger) (*RawTable, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		tbl *RawTable
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		tbl, err = loadCSV(path)
	case ".xlsx":
		tbl, err = loadExcel(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("loaded raw table",
		slog.String("path", path),
		slog.Int("rows", len(tbl.Rows)),
		slog.Int("columns", len(tbl.Headers)))
	return tbl, nil
}

func loadCSV(path string) (*RawTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Short rows happen when a trailing field is empty in hand-edited
	// exports; treat them as absent values, not parse errors.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("input file %s has no header row", path)
	}

	return &RawTable{Path: path, Headers: records[0], Rows: records[1:]}, nil
}

func loadExcel(path string) (*RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("input file %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q in %s: %w", sheets[0], path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("input file %s has no header row", path)
	}

	return &RawTable{Path: path, Headers: rows[0], Rows: rows[1:]}, nil
}
