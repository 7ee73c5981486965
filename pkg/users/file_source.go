package users

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"

	"github.com/quangdm/proctorgate/pkg/logging"
)

// fileRecord is the on-disk JSON shape of one user record
type fileRecord struct {
	User       string `json:"user"`
	PassSHA256 string `json:"pass_sha256"`
	Role       string `json:"role,omitempty"`
	ExamScope  string `json:"exam_scope,omitempty"`
}

// FileSource implements Source over a JSON file
type FileSource struct {
	fs   afero.Fs
	path string
}

// NewFileSource creates a new FileSource. Pass afero.NewOsFs() for the real
// filesystem or a MemMapFs in tests.
func NewFileSource(fs afero.Fs, path string) *FileSource {
	return &FileSource{
		fs:   fs,
		path: path,
	}
}

// Path returns the backing file path
func (s *FileSource) Path() string {
	return s.path
}

// Load implements Source
func (s *FileSource) Load() ([]UserRecord, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoStore
		}
		return nil, &PersistenceError{Path: s.path, Err: err}
	}

	var raw []fileRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &PersistenceError{Path: s.path, Err: fmt.Errorf("parsing: %w", err)}
	}

	records := make([]UserRecord, 0, len(raw))
	for i, fr := range raw {
		if fr.User == "" || fr.PassSHA256 == "" {
			return nil, &PersistenceError{Path: s.path, Err: fmt.Errorf("entry %d: missing user or pass_sha256", i)}
		}
		// Role defaults to viewer when the field is absent
		roleStr := fr.Role
		if roleStr == "" {
			roleStr = string(RoleViewer)
		}
		role, err := ParseRole(roleStr)
		if err != nil {
			return nil, &PersistenceError{Path: s.path, Err: fmt.Errorf("entry %d: %w", i, err)}
		}
		records = append(records, UserRecord{
			Identity:   fr.User,
			SecretHash: fr.PassSHA256,
			Role:       role,
			Scope:      fr.ExamScope,
		})
	}
	return records, nil
}

// Save implements Source. The record list is written to a temporary file in
// the same directory and renamed into place, so a concurrent Load never
// observes a partial write.
func (s *FileSource) Save(records []UserRecord) error {
	raw := make([]fileRecord, 0, len(records))
	for _, rec := range records {
		raw = append(raw, fileRecord{
			User:       rec.Identity,
			PassSHA256: rec.SecretHash,
			Role:       string(rec.Role),
			ExamScope:  rec.Scope,
		})
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return &PersistenceError{Path: s.path, Err: err}
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return &PersistenceError{Path: s.path, Err: err}
	}

	tmp, err := afero.TempFile(s.fs, dir, ".users-*.json")
	if err != nil {
		return &PersistenceError{Path: s.path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		s.fs.Remove(tmpName)
		return &PersistenceError{Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(tmpName)
		return &PersistenceError{Path: s.path, Err: err}
	}
	if err := s.fs.Rename(tmpName, s.path); err != nil {
		s.fs.Remove(tmpName)
		return &PersistenceError{Path: s.path, Err: err}
	}
	return nil
}

// Watch invokes onChange whenever the backing file is modified externally.
// It watches the containing directory so atomic rename-into-place is seen.
// The returned stop function releases the watcher. Watch only works against
// the OS filesystem.
func (s *FileSource) Watch(onChange func()) (func() error, error) {
	if _, ok := s.fs.(*afero.OsFs); !ok {
		return nil, fmt.Errorf("watch requires the OS filesystem")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	base := filepath.Base(s.path)
	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != base {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					logging.App.WithField("path", s.path).Debug("user store changed on disk")
					onChange()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.App.WithError(err).Warn("user store watcher error")
			}
		}
	}()

	return watcher.Close, nil
}
