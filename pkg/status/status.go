// Package status reports on the current wallpaper pointer. It picks the
// state directory the daemon would use but never creates it, and never
// touches the record or the symlink.
package status

import (
	"github.com/arthur-debert/wallpaper-controller/pkg/paths"
	"github.com/arthur-debert/wallpaper-controller/pkg/store"
	"github.com/arthur-debert/wallpaper-controller/pkg/types"
)

// StateLocator finds the state directory without creating it.
type StateLocator interface {
	Locate(explicit string) (string, error)
}

// Report describes the current wallpaper pointer.
type Report struct {
	StateDir    string `json:"state_dir" yaml:"state_dir"`
	RecordPath  string `json:"record_path" yaml:"record_path"`
	SymlinkPath string `json:"symlink_path" yaml:"symlink_path"`

	// Current is the record content; empty when HasRecord is false.
	Current   string `json:"current,omitempty" yaml:"current,omitempty"`
	HasRecord bool   `json:"has_record" yaml:"has_record"`

	// LinkTarget is where the symlink points; empty when it is missing.
	LinkTarget string `json:"link_target,omitempty" yaml:"link_target,omitempty"`

	// InSync is true when the symlink points at the recorded image.
	InSync bool `json:"in_sync" yaml:"in_sync"`

	// ImageExists is true when the recorded image is still on disk.
	ImageExists bool `json:"image_exists" yaml:"image_exists"`
}

// Gather locates the state directory and reads the record and symlink
// found there. A state directory that does not exist yet yields an empty
// report.
func Gather(fs types.FS, locator StateLocator, explicit string) (*Report, error) {
	stateDir, err := locator.Locate(explicit)
	if err != nil {
		return nil, err
	}

	st := store.New(fs, stateDir)
	r := &Report{
		StateDir:    stateDir,
		RecordPath:  paths.RecordPath(stateDir),
		SymlinkPath: paths.SymlinkPath(stateDir),
	}

	r.Current, r.HasRecord = st.Current()
	if target, err := st.LinkTarget(); err == nil {
		r.LinkTarget = target
	}
	r.InSync = r.HasRecord && r.LinkTarget == r.Current

	if r.HasRecord {
		_, err := fs.Stat(r.Current)
		r.ImageExists = err == nil
	}

	return r, nil
}
