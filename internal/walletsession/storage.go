package walletsession

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage is durable client-side storage for the session. Saves overwrite the
// whole object; last writer wins.
type Storage interface {
	Load() (Session, bool, error)
	Save(Session) error
}

// FileStorage keeps the session as a JSON file.
type FileStorage struct {
	Path string
}

func (f *FileStorage) Load() (Session, bool, error) {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Session{}, false, nil
		}
		return Session{}, false, err
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return Session{}, false, err
	}
	return s, true, nil
}

func (f *FileStorage) Save(s Session) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.Path, raw, 0o600)
}
