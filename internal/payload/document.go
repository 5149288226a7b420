// Package payload assembles the JSON output document for a cleaning run:
// the cleaned records wrapped together with their provenance stamp.
package payload

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"custclean/internal/csvio"
	"custclean/internal/table"
	"custclean/pkg/metadata"
)

// Document is the JSON file shape for a cleaned dataset.
type Document struct {
	Metadata metadata.Stamp   `json:"metadata"`
	Records  []map[string]any `json:"records"`
}

// BuildDocument wraps the table's records with the given stamp, filling the
// stamp's row and column counts from the table. The content hash is added
// later, when the sidecar stamp is signed.
func BuildDocument(t *table.Table, stamp metadata.Stamp) (*Document, error) {
	records, err := csvio.Rows(t)
	if err != nil {
		return nil, fmt.Errorf("collect records: %w", err)
	}

	stamp.Rows = t.Len()
	stamp.Columns = len(t.Names())

	return &Document{Metadata: stamp, Records: records}, nil
}

// WriteJSON writes the document to path, creating parent directories as
// needed.
func WriteJSON(doc *Document, path string, pretty bool) error {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	return nil
}

// LoadDocument loads a cleaned dataset document from a JSON file.
func LoadDocument(filePath string) (*Document, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return &doc, nil
}
