package services

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Learning modes. Named like the style categories but applied as a
// presentation filter over course content.
const (
	ModeShort     = "Short"
	ModeElaborate = "Elaborate"
	ModeRealistic = "Realistic"
)

// Fixed seed for the Short-mode half sample, so repeated requests see
// the same subset.
const shortSampleSeed = 42

var (
	contentDatasetDir = "datasets"
	contentLogger     = zap.NewNop()
)

// InitContentService points the content service at the dataset
// directory and wires the application logger.
func InitContentService(dir string, logger *zap.Logger) {
	contentDatasetDir = dir
	if logger != nil {
		contentLogger = logger
	}
}

// DatasetDir reports the configured dataset directory.
func DatasetDir() string {
	return contentDatasetDir
}

// ListDatasetFiles walks the dataset directory and returns relative
// paths of every file in it.
func ListDatasetFiles() ([]string, error) {
	if _, err := os.Stat(contentDatasetDir); err != nil {
		return nil, err
	}
	var files []string
	err := filepath.WalkDir(contentDatasetDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(contentDatasetDir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// LoadDataset reads a dataset CSV into row maps keyed by the header
// columns. Parsing is tolerant: ragged rows are padded or truncated to
// the header, rows the reader cannot parse are dropped.
func LoadDataset(filename string) ([]map[string]any, error) {
	f, err := os.Open(filepath.Join(contentDatasetDir, filename))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []map[string]any
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				contentLogger.Warn("skipping malformed dataset row",
					zap.String("file", filename), zap.Error(err))
				continue
			}
			return nil, err
		}
		row := make(map[string]any, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = parseCell(rec[i])
			} else {
				row[col] = nil
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseCell coerces a CSV cell to nil, int, float64, or string.
func parseCell(s string) any {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil {
		if math.IsNaN(f) {
			return nil
		}
		if !strings.ContainsAny(t, ".eE") {
			if i, err := strconv.Atoi(t); err == nil {
				return i
			}
		}
		return f
	}
	return t
}

// ApplyMode filters course content by the requested learning mode.
//
// Short takes a deterministic half sample: a fixed-seed permutation
// selects ceil(n/2) rows and the original order is restored. Realistic
// keeps Intermediate and Advanced rows but falls back to the full set
// rather than returning nothing. Elaborate returns the set unchanged.
func ApplyMode(records []map[string]any, mode string) []map[string]any {
	switch mode {
	case ModeShort:
		if len(records) <= 1 {
			return records
		}
		rng := rand.New(rand.NewSource(shortSampleSeed))
		half := (len(records) + 1) / 2
		idx := rng.Perm(len(records))[:half]
		sort.Ints(idx)
		out := make([]map[string]any, 0, half)
		for _, i := range idx {
			out = append(out, records[i])
		}
		return out
	case ModeRealistic:
		var filtered []map[string]any
		for _, r := range records {
			if d, ok := r["difficulty"].(string); ok && (d == "Intermediate" || d == "Advanced") {
				filtered = append(filtered, r)
			}
		}
		if len(filtered) == 0 {
			return records
		}
		return filtered
	default:
		return records
	}
}

// ValidMode reports whether mode is one of the three learning modes.
func ValidMode(mode string) bool {
	return mode == ModeShort || mode == ModeElaborate || mode == ModeRealistic
}

// SanitizeRecords replaces float NaN values with nil, recursively, so
// JSON serialization never sees an unencodable number.
func SanitizeRecords(records []map[string]any) []map[string]any {
	for i, r := range records {
		records[i] = sanitizeValue(r).(map[string]any)
	}
	return records
}

func sanitizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, inner := range t {
			t[k] = sanitizeValue(inner)
		}
		return t
	case []any:
		for i, inner := range t {
			t[i] = sanitizeValue(inner)
		}
		return t
	case []map[string]any:
		for i, inner := range t {
			t[i] = sanitizeValue(inner).(map[string]any)
		}
		return t
	case float64:
		if math.IsNaN(t) {
			return nil
		}
		return t
	case float32:
		if math.IsNaN(float64(t)) {
			return nil
		}
		return t
	default:
		return v
	}
}
