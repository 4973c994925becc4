package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Output file names within the output directory.
const (
	SessionOutputFile = "session_funnel_clean.csv"
	ProductOutputFile = "product_performance_clean.csv"
)

// CSVWriter writes delimited output files into a target directory.
type CSVWriter struct {
	outputDir string
	logger    *slog.Logger
}

// NewCSVWriter creates a writer targeting the given output directory.
func NewCSVWriter(outputDir string, logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{outputDir: outputDir, logger: logger}
}

// Path returns the final location of the named output file.
func (w *CSVWriter) Path(name string) string {
	return filepath.Join(w.outputDir, name)
}

// Write writes headers and records to the named file atomically: the
// data goes to a temporary sibling first and is renamed over the
// final path only after a successful flush and sync.
func (w *CSVWriter) Write(name string, headers []string, records [][]string) error {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	finalPath := w.Path(name)
	tmpPath := finalPath + ".tmp"

	if err := w.writeFile(tmpPath, headers, records); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move output into place: %w", err)
	}

	w.logger.Info("saved output",
		slog.String("path", finalPath),
		slog.Int("rows", len(records)))
	return nil
}

func (w *CSVWriter) writeFile(path string, headers []string, records [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(headers); err != nil {
		file.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, record := range records {
		if err := writer.Write(record); err != nil {
			file.Close()
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return fmt.Errorf("failed to flush output: %w", err)
	}

	if err := file.Sync(); err != nil {
		file.Close()
		return fmt.Errorf("failed to sync output file: %w", err)
	}
	return file.Close()
}
