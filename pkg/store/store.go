// Package store persists the current wallpaper selection.
//
// The record file holds the full path of the current image and nothing
// else. Next to it a symlink is recreated on every save. The symlink points
// at the image path itself, not at the record file; other tools rely on
// that layout.
//
// A Store assumes it is the only writer of its state directory. Two
// processes saving into the same directory race: the record is last write
// wins and a reader may briefly observe the symlink missing.
package store

import (
	"os"

	"github.com/arthur-debert/wallpaper-controller/pkg/errors"
	"github.com/arthur-debert/wallpaper-controller/pkg/paths"
	"github.com/arthur-debert/wallpaper-controller/pkg/types"
)

// Store is the persistent pointer to the current wallpaper.
type Store interface {
	// Current returns the recorded path. ok is false when there is no
	// readable record.
	Current() (path string, ok bool)

	// Save records path and relinks the symlink to it.
	Save(path string) error
}

// FileStore is a Store backed by files in a state directory.
type FileStore struct {
	fs          types.FS
	recordPath  string
	symlinkPath string
}

// New creates a FileStore for stateDir.
func New(fs types.FS, stateDir string) *FileStore {
	return &FileStore{
		fs:          fs,
		recordPath:  paths.RecordPath(stateDir),
		symlinkPath: paths.SymlinkPath(stateDir),
	}
}

// RecordPath returns the record file location.
func (s *FileStore) RecordPath() string { return s.recordPath }

// SymlinkPath returns the symlink location.
func (s *FileStore) SymlinkPath() string { return s.symlinkPath }

// Current reads the record file. Its content is returned verbatim.
func (s *FileStore) Current() (string, bool) {
	data, err := s.fs.ReadFile(s.recordPath)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// LinkTarget returns the current symlink target.
func (s *FileStore) LinkTarget() (string, error) {
	return s.fs.Readlink(s.symlinkPath)
}

// Save overwrites the record with path, removes whatever sits at the
// symlink location (dangling links included) and links it to path.
func (s *FileStore) Save(path string) error {
	if err := s.fs.WriteFile(s.recordPath, []byte(path), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", s.recordPath).
			WithDetail("path", s.recordPath)
	}

	if _, err := s.fs.Lstat(s.symlinkPath); err == nil {
		if err := s.fs.Remove(s.symlinkPath); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrSymlinkRemove, "failed to remove %s", s.symlinkPath).
				WithDetail("path", s.symlinkPath)
		}
	}

	if err := s.fs.Symlink(path, s.symlinkPath); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to create symlink %s", s.symlinkPath).
			WithDetail("path", s.symlinkPath).
			WithDetail("target", path)
	}

	return nil
}
