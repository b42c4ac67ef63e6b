package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/mojifix/internal/model"
)

// ReportStore persists and retrieves scan reports.
type ReportStore interface {
	SaveReport(path m.Path, report m.ScanReport) error
	LoadReport(path m.Path) (m.ScanReport, error)
}

// LocalReportStore writes reports as JSON, or YAML for .yaml/.yml paths.
// Saving replaces the previous report.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

// SaveReport encodes report and atomically replaces path.
func (rs *LocalReportStore) SaveReport(path m.Path, report m.ScanReport) error {
	data, err := encodeReport(string(path), report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	if err := writeFileAtomic(string(path), data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

// LoadReport reads a report written by SaveReport.
func (rs *LocalReportStore) LoadReport(path m.Path) (m.ScanReport, error) {
	var report m.ScanReport

	data, err := os.ReadFile(string(path))
	if err != nil {
		return report, fmt.Errorf("read report %s: %w", path, err)
	}

	if isYAML(string(path)) {
		err = yaml.Unmarshal(data, &report)
	} else {
		err = json.Unmarshal(data, &report)
	}

	if err != nil {
		return report, fmt.Errorf("decode report %s: %w", path, err)
	}

	return report, nil
}

func encodeReport(path string, report m.ScanReport) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(report)
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(report); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))

	return ext == ".yaml" || ext == ".yml"
}
