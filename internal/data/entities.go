package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"seffaflik/internal/model"
)

// EntityList is a saved snapshot of a reference list (organizations,
// plants, balance groups).
type EntityList struct {
	Kind      model.EntityKind `json:"kind"`
	UpdatedAt string           `json:"updated_at"` // RFC 3339
	Entities  []model.Entity   `json:"entities"`
}

// LoadEntities loads a snapshot from a JSON file.
func LoadEntities(filePath string) (*EntityList, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read entities file: %w", err)
	}

	var list EntityList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to parse entities file: %w", err)
	}
	if !list.Kind.Valid() {
		return nil, fmt.Errorf("entities file %s: unknown kind %q", filePath, list.Kind)
	}
	return &list, nil
}

// SaveEntities writes a snapshot, creating the directory if needed.
func SaveEntities(list *EntityList, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	raw, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entities: %w", err)
	}

	if err := os.WriteFile(filePath, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write entities file: %w", err)
	}
	return nil
}

// DefaultEntitiesPath returns where the snapshot of kind is kept:
// $ENTITIES_DIR/<kind>.json, or ./data/<kind>.json.
func DefaultEntitiesPath(kind model.EntityKind) string {
	dir := os.Getenv("ENTITIES_DIR")
	if dir == "" {
		dir = "./data"
	}
	return filepath.Join(dir, string(kind)+".json")
}
