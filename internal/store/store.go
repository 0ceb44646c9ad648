// Package store reads and writes the flat text files loggoblin keeps
// between runs: the log group list, the subscription list, and the
// synced log files.
package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ReadList reads a line-per-entry file, skipping blank lines.
func ReadList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var items []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			items = append(items, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return items, nil
}

// WriteList writes items one per line, replacing the file.
func WriteList(path string, items []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	for _, item := range items {
		fmt.Fprintln(w, item)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return f.Close()
}

// MergeList unions the selected items into the list file, keeping it
// sorted and unique. A missing file counts as an empty list.
func MergeList(path string, selected []string) ([]string, error) {
	existing, err := ReadList(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	seen := make(map[string]struct{}, len(existing)+len(selected))
	for _, item := range existing {
		seen[item] = struct{}{}
	}
	for _, item := range selected {
		seen[item] = struct{}{}
	}

	merged := make([]string, 0, len(seen))
	for item := range seen {
		merged = append(merged, item)
	}
	sort.Strings(merged)

	if err := WriteList(path, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// CreateFile creates a file for writing, making any missing parent
// directories first.
func CreateFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.Create(path)
}
