package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/wallpaper-controller/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv points every location the CLI touches into a temp tree and
// clears WALLPAPER_CONTROLLER_* overrides.
func setupEnv(t *testing.T) (dataHome, imageDir string) {
	t.Helper()

	root := t.TempDir()
	dataHome = testutil.CreateDir(t, root, "data")
	imageDir = testutil.CreateDir(t, root, "walls")

	t.Cleanup(xdg.Reload)
	t.Setenv("HOME", testutil.CreateDir(t, root, "home"))
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("XDG_STATE_HOME", testutil.CreateDir(t, root, "state"))
	for _, key := range []string{"STATE_DIR", "IMAGE_DIR", "INTERVAL", "SETTER", "SORT", "ONCE"} {
		t.Setenv("WALLPAPER_CONTROLLER_"+key, "")
		require.NoError(t, os.Unsetenv("WALLPAPER_CONTROLLER_"+key))
	}
	xdg.Reload()

	return dataHome, imageDir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func readRecord(t *testing.T, dataHome string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dataHome, "wallpaper_controller", "current_wallpaper"))
	require.NoError(t, err)
	return string(data)
}

func TestRootCmd_OnceAdvances(t *testing.T) {
	dataHome, imageDir := setupEnv(t)
	a := testutil.CreateFile(t, imageDir, "a.jpg", "a")
	b := testutil.CreateFile(t, imageDir, "b.png", "b")

	_, err := execute(t, "-d", imageDir, "--once", "--sort", "name", "-s", "true")
	require.NoError(t, err)
	assert.Equal(t, a, readRecord(t, dataHome))

	_, err = execute(t, "-d", imageDir, "--once", "--sort", "name", "-s", "true")
	require.NoError(t, err)
	assert.Equal(t, b, readRecord(t, dataHome))

	target, err := os.Readlink(filepath.Join(dataHome, "wallpaper_controller", "current_wallpaper.symlink"))
	require.NoError(t, err)
	assert.Equal(t, b, target)
}

func TestRootCmd_EnvironmentConfig(t *testing.T) {
	dataHome, imageDir := setupEnv(t)
	a := testutil.CreateFile(t, imageDir, "a.jpg", "a")

	t.Setenv("WALLPAPER_CONTROLLER_IMAGE_DIR", imageDir)
	t.Setenv("WALLPAPER_CONTROLLER_ONCE", "true")
	t.Setenv("WALLPAPER_CONTROLLER_SETTER", "true")

	_, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, a, readRecord(t, dataHome))
}

func TestRootCmd_MissingImageDir(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "--once")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "img-directory")
}

func TestRootCmd_ImageDirDoesNotExist(t *testing.T) {
	_, imageDir := setupEnv(t)

	_, err := execute(t, "-d", filepath.Join(imageDir, "nope"), "--once")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONFIG_INVALID")
}

func TestRootCmd_InvalidInterval(t *testing.T) {
	_, imageDir := setupEnv(t)

	_, err := execute(t, "-d", imageDir, "-t", "70000")
	assert.Error(t, err)
}

func TestRootCmd_StateDirUnresolvable(t *testing.T) {
	_, imageDir := setupEnv(t)
	testutil.CreateFile(t, imageDir, "a.jpg", "a")
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "")

	_, err := execute(t, "-d", imageDir, "--once", "-s", "true")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STATE_DIR")
}

func TestRootCmd_Version(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "wallpaper-controller version")
}

func TestStatusCmd_JSON(t *testing.T) {
	dataHome, imageDir := setupEnv(t)
	a := testutil.CreateFile(t, imageDir, "a.jpg", "a")

	_, err := execute(t, "-d", imageDir, "--once", "-s", "true")
	require.NoError(t, err)

	out, err := execute(t, "status", "-o", "json")
	require.NoError(t, err)

	var report map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, filepath.Join(dataHome, "wallpaper_controller"), report["state_dir"])
	assert.Equal(t, a, report["current"])
	assert.Equal(t, true, report["in_sync"])
}

func TestStatusCmd_InvalidFormat(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "status", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestCompletionCmd(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "wallpaper-controller")

	_, err = execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestReportError(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "--once")
	require.Error(t, err)

	var out bytes.Buffer
	ReportError(&out, err)
	assert.True(t, strings.HasPrefix(out.String(), "Error: failed to load configuration: [CONFIG_INVALID]"))
	assert.True(t, strings.HasSuffix(out.String(), "\n"))
	assert.NotContains(t, out.String(), "\x1b[")
}
