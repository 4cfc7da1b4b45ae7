// Package credential persists the API key in a small JSON file under the
// user's config directory.
package credential

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tkanos/gonfig"
)

const (
	// DirEnv overrides the credentials directory.
	DirEnv = "SEFFAFLIK_DIR"
	// KeyEnv overrides the key stored in the file.
	KeyEnv = "SEFFAFLIK_API_KEY"
	// FileName is the credentials file inside the directory. gonfig picks the
	// decoder from the extension.
	FileName = "kimlik.json"
)

// ErrNoCredentials is returned when neither the file nor KeyEnv provide a key.
var ErrNoCredentials = errors.New("no API key configured")

// Credentials is the on-disk document.
type Credentials struct {
	APIKey string `json:"api_key" env:"SEFFAFLIK_API_KEY"`
	// LegacyKey is the field name older installations wrote.
	LegacyKey string `json:"istemci_taniticisi,omitempty" env:"SEFFAFLIK_ISTEMCI_TANITICISI"`
}

// Key returns the API key, preferring the current field.
func (c Credentials) Key() string {
	if k := strings.TrimSpace(c.APIKey); k != "" {
		return k
	}
	return strings.TrimSpace(c.LegacyKey)
}

// Store reads and writes credentials in Dir.
type Store struct {
	Dir string
}

// DefaultDir returns $SEFFAFLIK_DIR, else ~/.seffaflik.
func DefaultDir() string {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".seffaflik"
	}
	return filepath.Join(home, ".seffaflik")
}

// NewStore returns a store rooted at dir, or DefaultDir when dir is empty.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = DefaultDir()
	}
	return &Store{Dir: dir}
}

func (s *Store) Path() string {
	return filepath.Join(s.Dir, FileName)
}

// Write saves apiKey, creating the directory if needed. The file is only
// readable by its owner.
func (s *Store) Write(apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return fmt.Errorf("api key must not be empty")
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create credentials directory: %w", err)
	}
	raw, err := json.MarshalIndent(Credentials{APIKey: apiKey}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}
	if err := os.WriteFile(s.Path(), raw, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	return nil
}

// Load returns the configured key. KeyEnv wins over the file.
func (s *Store) Load() (string, error) {
	var creds Credentials
	if _, err := os.Stat(s.Path()); err == nil {
		if err := gonfig.GetConf(s.Path(), &creds); err != nil {
			return "", fmt.Errorf("failed to read credentials file %s: %w", s.Path(), err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("failed to stat credentials file: %w", err)
	}
	if env := strings.TrimSpace(os.Getenv(KeyEnv)); env != "" {
		creds.APIKey = env
	}
	if key := creds.Key(); key != "" {
		return key, nil
	}
	return "", ErrNoCredentials
}
