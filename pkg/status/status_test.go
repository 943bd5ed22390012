package status_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wallpaper-controller/pkg/errors"
	"github.com/arthur-debert/wallpaper-controller/pkg/paths"
	"github.com/arthur-debert/wallpaper-controller/pkg/status"
	"github.com/arthur-debert/wallpaper-controller/pkg/store"
	"github.com/arthur-debert/wallpaper-controller/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGather_Empty(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	r, err := status.Gather(env.FS, paths.NewResolver(env.FS, env.Env), "")
	require.NoError(t, err)

	assert.Equal(t, env.StateDir(), r.StateDir)
	assert.Equal(t, filepath.Join(env.StateDir(), "current_wallpaper"), r.RecordPath)
	assert.Equal(t, filepath.Join(env.StateDir(), "current_wallpaper.symlink"), r.SymlinkPath)
	assert.False(t, r.HasRecord)
	assert.Empty(t, r.LinkTarget)
	assert.False(t, r.InSync)
	assert.False(t, r.ImageExists)

	assert.NoDirExists(t, env.StateDir())
}

func TestGather_ExistingStateDir(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	testutil.CreateDir(t, env.XDGData, "wallpaper_controller")

	r, err := status.Gather(env.FS, paths.NewResolver(env.FS, env.Env), "")
	require.NoError(t, err)
	assert.Equal(t, env.StateDir(), r.StateDir)
	assert.False(t, r.HasRecord)
}

func TestGather_AfterSave(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	set := env.AddImages("a.jpg")

	resolver := paths.NewResolver(env.FS, env.Env)
	stateDir, err := resolver.Resolve("")
	require.NoError(t, err)
	require.NoError(t, store.New(env.FS, stateDir).Save(set[0]))

	r, err := status.Gather(env.FS, resolver, "")
	require.NoError(t, err)
	assert.True(t, r.HasRecord)
	assert.Equal(t, set[0], r.Current)
	assert.Equal(t, set[0], r.LinkTarget)
	assert.True(t, r.InSync)
	assert.True(t, r.ImageExists)

	require.NoError(t, os.Remove(set[0]))
	r, err = status.Gather(env.FS, resolver, "")
	require.NoError(t, err)
	assert.False(t, r.ImageExists)
}

func TestGather_OutOfSync(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	resolver := paths.NewResolver(env.FS, env.Env)
	stateDir, err := resolver.Resolve("")
	require.NoError(t, err)

	testutil.CreateFile(t, stateDir, "current_wallpaper", "/walls/b.png")
	testutil.CreateSymlink(t, "/walls/a.jpg", filepath.Join(stateDir, "current_wallpaper.symlink"))

	r, err := status.Gather(env.FS, resolver, "")
	require.NoError(t, err)
	assert.Equal(t, "/walls/b.png", r.Current)
	assert.Equal(t, "/walls/a.jpg", r.LinkTarget)
	assert.False(t, r.InSync)
}

func TestGather_Unresolvable(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Vars = map[string]string{}

	_, err := status.Gather(env.FS, paths.NewResolver(env.FS, env.Env), "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}
