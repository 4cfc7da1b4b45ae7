package data

import (
	"fmt"
	"os"
)

// LoadResponseJSON reads a saved API response (the full {"body": ...}
// envelope) and returns its body, decoded the same way Fetch decodes.
func LoadResponseJSON(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read response file: %w", err)
	}
	return decodeBody(raw)
}
