package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wallpaper-controller/pkg/filesystem"
	"github.com/arthur-debert/wallpaper-controller/pkg/paths"
	"github.com/arthur-debert/wallpaper-controller/pkg/types"
	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a complete test environment with all dependencies
type TestEnvironment struct {
	HomeDir  string
	XDGData  string
	ImageDir string

	FS   types.FS
	Type EnvType

	// Vars backs Env; tests may edit it freely.
	Vars map[string]string

	t *testing.T
}

// NewTestEnvironment creates a new test environment with HOME and
// XDG_DATA_HOME set in Vars and an empty image directory.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	root := "/virtual"
	switch envType {
	case EnvMemoryOnly:
		env.FS = filesystem.NewAferoFS(afero.NewMemMapFs())
	case EnvIsolated:
		root = t.TempDir()
		env.FS = filesystem.NewOS()
	}

	env.HomeDir = filepath.Join(root, "home")
	env.XDGData = filepath.Join(root, "home", ".local", "share")
	env.ImageDir = filepath.Join(root, "wallpapers")

	for _, dir := range []string{env.HomeDir, env.XDGData, env.ImageDir} {
		if err := env.FS.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	env.Vars = map[string]string{
		paths.EnvHome:        env.HomeDir,
		paths.EnvXDGDataHome: env.XDGData,
	}

	return env
}

// Env looks variables up in Vars.
func (env *TestEnvironment) Env(key string) (string, bool) {
	v, ok := env.Vars[key]
	return v, ok
}

// StateDir returns the state directory the resolver picks from XDG_DATA_HOME.
func (env *TestEnvironment) StateDir() string {
	return filepath.Join(env.XDGData, paths.DataDirName)
}

// AddImages creates files in the image directory and returns their paths
// in the given order.
func (env *TestEnvironment) AddImages(names ...string) []string {
	env.t.Helper()

	created := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(env.ImageDir, name)
		if err := env.FS.WriteFile(path, []byte(name), 0644); err != nil {
			env.t.Fatalf("Failed to create image %s: %v", path, err)
		}
		created = append(created, path)
	}
	return created
}

// ReadRecord returns the record file content in the resolved state directory.
func (env *TestEnvironment) ReadRecord() string {
	env.t.Helper()

	data, err := env.FS.ReadFile(paths.RecordPath(env.StateDir()))
	if err != nil {
		env.t.Fatalf("Failed to read record: %v", err)
	}
	return string(data)
}
