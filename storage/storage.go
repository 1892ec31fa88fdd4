package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// HighscoreKey is the single key the game persists.
const HighscoreKey = "highscore"

// DefaultPath is where the desktop and terminal front ends keep their highscore.
const DefaultPath = "data/highscore.json"

// FileStore keeps the highscore in a small JSON document.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (fs *FileStore) Path() string {
	return fs.path
}

// LoadHighscore returns 0 without error when nothing was saved yet. A file that
// cannot be parsed yields 0 together with the parse error.
func (fs *FileStore) LoadHighscore() (int, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.load()
}

func (fs *FileStore) load() (int, error) {
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrapf(err, "read %s", fs.path)
	}

	values := make(map[string]json.Number)
	if err := json.Unmarshal(data, &values); err != nil {
		return 0, errors.Wrapf(err, "parse %s", fs.path)
	}
	raw, ok := values[HighscoreKey]
	if !ok {
		return 0, nil
	}
	n, err := raw.Int64()
	if err != nil || n < 0 {
		return 0, errors.Errorf("%s: invalid %s value %q", fs.path, HighscoreKey, raw)
	}
	return int(n), nil
}

// SaveHighscore writes the value through a temporary file so a crash never
// leaves a truncated document behind. A score that does not beat the stored
// one is not written, so games sharing the file never lower it.
func (fs *FileStore) SaveHighscore(score int) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	// an unreadable file counts as 0 and gets replaced
	if stored, err := fs.load(); err == nil && score <= stored {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(fs.path), 0755); err != nil {
		return errors.Wrap(err, "create data directory")
	}

	data, err := json.MarshalIndent(map[string]int{HighscoreKey: score}, "", "  ")
	if err != nil {
		return err
	}

	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}
	return errors.Wrap(os.Rename(tmp, fs.path), "replace highscore file")
}

// MemoryStore keeps the highscore for the lifetime of the process. The web
// server shares one across connections.
type MemoryStore struct {
	mu    sync.Mutex
	value int
}

func NewMemoryStore(initial int) *MemoryStore {
	return &MemoryStore{value: initial}
}

func (ms *MemoryStore) LoadHighscore() (int, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.value, nil
}

// SaveHighscore never lowers the stored value, so concurrent sessions cannot
// overwrite a better score with a worse one.
func (ms *MemoryStore) SaveHighscore(score int) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if score > ms.value {
		ms.value = score
	}
	return nil
}
