// Package store persists the task list as a versioned JSON file.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

const dataDirName = ".tmx"

// tasksFileName carries the record-shape version, the way the browser
// builds versioned their localStorage keys. A shape change means a new
// file name; old files are left alone and simply not read.
const tasksFileName = "tasks_v1.json"

var ErrCorruptData = errors.New("stored tasks are corrupted")

type Store struct {
	path string
}

// NewStore creates a store rooted at dataDir, defaulting to ~/.tmx.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dataDir = filepath.Join(home, dataDirName)
	}
	return &Store{path: filepath.Join(dataDir, tasksFileName)}, nil
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the raw persisted blob. A missing file is not an error:
// it loads as an empty task array.
func (s *Store) Load() ([]byte, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []byte("[]"), nil
		}
		return nil, err
	}
	return b, nil
}

func (s *Store) Save(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func DecodeTasks(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return ErrCorruptData
	}
	return nil
}

func EncodeTasks(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
