package filesystem

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"tally/internal/ports"
)

// ErrNotJSON is returned when a value written to the store is not valid JSON
var ErrNotJSON = errors.New("value is not valid JSON")

// Store implements ports.KeyValueStore as a single JSON document on disk.
// Every value must itself be JSON so the file stays readable and hand-editable.
// The document is re-read whenever its size or modification time changes, so
// writes from other tally processes are seen and kept.
type Store struct {
	path    string
	values  map[string]json.RawMessage
	modTime time.Time
	size    int64
	logger  *zap.Logger
}

// Ensure Store implements KeyValueStore
var _ ports.KeyValueStore = (*Store)(nil)

// Open reads the document at path. A missing file is an empty store.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Expand ~ to home directory
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}

	s := &Store{
		path:   path,
		values: make(map[string]json.RawMessage),
		logger: logger,
	}
	if err := s.reload(); err != nil {
		return nil, err
	}

	logger.Debug("opened file store", zap.String("path", path), zap.Int("keys", len(s.values)))
	return s, nil
}

// reload re-reads the document when it changed on disk since the last read
// or write. A missing or blank file is an empty store.
func (s *Store) reload() error {
	info, err := os.Stat(s.path)
	if errors.Is(err, os.ErrNotExist) {
		if !s.modTime.IsZero() {
			s.logger.Debug("file store removed on disk", zap.String("path", s.path))
		}
		s.values = make(map[string]json.RawMessage)
		s.modTime, s.size = time.Time{}, 0
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", s.path, err)
	}
	if info.ModTime().Equal(s.modTime) && info.Size() == s.size {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	values := make(map[string]json.RawMessage)
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("failed to parse %s: %w", s.path, err)
		}
	}

	s.values = values
	s.modTime, s.size = info.ModTime(), info.Size()
	s.logger.Debug("loaded file store", zap.String("path", s.path), zap.Int("keys", len(values)))
	return nil
}

// DefaultPath returns the document location inside the data directory
func DefaultPath(dataDir string) string {
	return filepath.Join(dataDir, "tally.json")
}

// Path returns the file backing the store
func (s *Store) Path() string {
	return s.path
}

// Get returns the value stored under key
func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	if err := s.reload(); err != nil {
		return nil, false, err
	}
	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(v), true, nil
}

// Set stores value under key and rewrites the file
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.SetMany(ctx, map[string][]byte{key: value})
}

// SetMany stores every entry and rewrites the file once.
// Nothing is changed when any value is invalid.
func (s *Store) SetMany(ctx context.Context, values map[string][]byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for key, value := range values {
		if !json.Valid(value) {
			return fmt.Errorf("%w: key %s", ErrNotJSON, key)
		}
	}
	if err := s.reload(); err != nil {
		return err
	}

	next := make(map[string]json.RawMessage, len(s.values)+len(values))
	for k, v := range s.values {
		next[k] = v
	}
	for k, v := range values {
		next[k] = json.RawMessage(bytes.Clone(v))
	}

	if err := s.write(next); err != nil {
		return err
	}
	s.values = next
	return nil
}

// write replaces the file atomically via a temp file in the same directory
func (s *Store) write(values map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tally-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	if info, err := os.Stat(s.path); err == nil {
		s.modTime, s.size = info.ModTime(), info.Size()
	}

	s.logger.Debug("wrote file store", zap.String("path", s.path), zap.Int("keys", len(values)))
	return nil
}

// Close is a no-op; every write is flushed immediately
func (s *Store) Close() error {
	return nil
}
