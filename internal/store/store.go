// Package store persists the practice's aggregate document. A Store
// round-trips the whole document on every call: repositories load it, mutate
// in memory, and save it back. The file-backed implementation keeps one JSON
// file on local disk; there is no partial write visible to callers.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/medicabinet/medicabinet/internal/record"
)

// ErrMalformed wraps a decode failure of the stored document. The store
// never reseeds over data it cannot parse; the error is surfaced so the
// operator can recover the file by hand.
var ErrMalformed = errors.New("stored document is malformed")

// Store is the persistence contract for the aggregate document.
type Store interface {
	// Load returns the current document, seeding the store on first use.
	Load() (*record.Document, error)
	// Save atomically replaces the stored document.
	Save(*record.Document) error
	// Reset discards the stored document; the next Load reseeds.
	Reset() error
}

// FileStore keeps the document as a single JSON file.
type FileStore struct {
	path string
	now  func() time.Time
}

// NewFileStore returns a FileStore writing to path. Parent directories are
// created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// Load reads and decodes the document. A missing file seeds the store and
// returns the seed document. A present document is migrated in memory only;
// the migrated form is persisted by the next Save.
func (s *FileStore) Load() (*record.Document, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		doc := Seed(s.now())
		if err := s.Save(doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store %s: %w", s.path, err)
	}

	var doc record.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	Migrate(&doc)
	return &doc, nil
}

// Save writes the document to a temporary file in the same directory and
// renames it over the store path, so a crash mid-write leaves the previous
// document intact.
func (s *FileStore) Save(doc *record.Document) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".medicabinet-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}

// Reset deletes the stored document. A missing file is not an error.
func (s *FileStore) Reset() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove store %s: %w", s.path, err)
	}
	return nil
}
