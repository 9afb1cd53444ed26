package identifiers

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"maps"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"

	"github.com/agentstation/bookstore/pkg/constants"
	"github.com/agentstation/bookstore/pkg/errors"
)

// Store persists the counter table of a Registry.
type Store interface {
	// Load returns the persisted table. A store that was never written returns an empty table.
	Load() (map[string]int, error)

	// Save replaces the persisted table with counters.
	Save(counters map[string]int) error
}

// Compile-time interface checks to ensure proper implementation.
var (
	_ Store = (*FileStore)(nil)
	_ Store = (*MemoryStore)(nil)
)

// FileStore keeps the counter table in a line-oriented text file.
// Every Save rewrites the whole file through a temporary file and a rename,
// so a crash mid-write leaves the previous table in place.
type FileStore struct {
	fs   afero.Fs
	path string
}

// FileStoreOption configures a FileStore.
type FileStoreOption func(*FileStore)

// WithFs sets the filesystem the store reads and writes. Defaults to the OS filesystem.
func WithFs(fsys afero.Fs) FileStoreOption {
	return func(s *FileStore) {
		if fsys != nil {
			s.fs = fsys
		}
	}
}

// NewFileStore creates a store backed by the file at path.
func NewFileStore(path string, opts ...FileStoreOption) *FileStore {
	if path == "" {
		path = constants.DefaultCounterFile
	}

	s := &FileStore{
		fs:   afero.NewOsFs(),
		path: path,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the counter file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the counter file. A missing file yields an empty table.
func (s *FileStore) Load() (map[string]int, error) {
	f, err := s.fs.Open(s.path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return make(map[string]int), nil
		}
		return nil, errors.WrapStorage("read", s.path, err)
	}
	defer f.Close() //nolint:errcheck // read-only handle

	counters, err := ParseCounters(f)
	if err != nil {
		return nil, errors.WrapStorage("read", s.path, err)
	}
	return counters, nil
}

// Save rewrites the counter file with counters.
func (s *FileStore) Save(counters map[string]int) error {
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := s.fs.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapStorage("mkdir", dir, err)
		}
	}

	var buf bytes.Buffer
	if err := EncodeCounters(&buf, counters); err != nil {
		return errors.WrapStorage("encode", s.path, err)
	}

	tmp := s.path + constants.TempFileSuffix
	if err := afero.WriteFile(s.fs, tmp, buf.Bytes(), constants.FilePermissions); err != nil {
		return errors.WrapStorage("write", tmp, err)
	}

	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.WrapStorage("rename", s.path, err)
	}

	return nil
}

// MemoryStore keeps the counter table in memory. Useful for tests and
// ephemeral runs where identifiers need not survive a restart.
type MemoryStore struct {
	mu       sync.Mutex
	counters map[string]int
	saves    int
}

// NewMemoryStore creates a store preloaded with initial.
func NewMemoryStore(initial map[string]int) *MemoryStore {
	counters := make(map[string]int, len(initial))
	maps.Copy(counters, initial)
	return &MemoryStore{counters: counters}
}

// Load returns a copy of the stored table.
func (s *MemoryStore) Load() (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.counters), nil
}

// Save replaces the stored table with a copy of counters.
func (s *MemoryStore) Save(counters map[string]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters = maps.Clone(counters)
	s.saves++
	return nil
}

// Saves returns how many times Save was called.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
