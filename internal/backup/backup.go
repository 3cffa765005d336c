// Package backup implements export and import of the whole document.
// Export writes the verbatim persisted-document JSON under a dated name;
// import parses, shape-validates and hands the document back for a full
// replace.
package backup

import (
	"fmt"
	"os"
	"path/filepath"

	"lifedash/internal/core"
)

const filenamePrefix = "life-dashboard-backup-"

// Filename returns the export file name with the given date embedded,
// e.g. "life-dashboard-backup-2024-01-15.json".
func Filename(date core.Date) string {
	return fmt.Sprintf("%s%s.json", filenamePrefix, date)
}

// Export writes the document to dir under the dated file name and returns
// the full path. An existing export for the same date is overwritten.
func Export(doc core.AppData, dir string, date core.Date) (string, error) {
	body, err := core.EncodeIndent(doc)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	path := filepath.Join(dir, Filename(date))
	if err := os.WriteFile(path, body, 0644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}
	return path, nil
}

// Import reads and shape-validates an exported document. The current
// document is untouched on any failure; the caller decides whether to
// replace it with the result.
func Import(path string) (core.AppData, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return core.AppData{}, fmt.Errorf("read import file: %w", err)
	}
	doc, err := core.Decode(body)
	if err != nil {
		return core.AppData{}, err
	}
	return doc, nil
}

// Prune removes the oldest exports in dir, keeping at most keep files.
// The dated names sort lexicographically, newest last.
func Prune(dir string, keep int) (int, error) {
	if keep < 1 {
		return 0, fmt.Errorf("invalid keep count %d", keep)
	}
	matches, err := filepath.Glob(filepath.Join(dir, filenamePrefix+"*.json"))
	if err != nil {
		return 0, fmt.Errorf("list exports: %w", err)
	}
	if len(matches) <= keep {
		return 0, nil
	}
	// Glob output is sorted, so the oldest dates come first.
	removed := 0
	for _, path := range matches[:len(matches)-keep] {
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("remove old export: %w", err)
		}
		removed++
	}
	return removed, nil
}
