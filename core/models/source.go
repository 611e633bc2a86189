package models

import (
	"fmt"
	"os"
	"strings"
)

// SourceDocument is the raw line sequence of one interface-definition file.
// It is immutable once loaded; every component downstream works on copies or
// derived values.
type SourceDocument struct {
	Path  string
	Lines []string
}

// LoadSource performs the single whole-file read of an invocation.
func LoadSource(path string) (*SourceDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return &SourceDocument{Path: path, Lines: lines}, nil
}
