package rotation

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wallpaper-controller/pkg/errors"
	"github.com/arthur-debert/wallpaper-controller/pkg/filesystem"
	"github.com/arthur-debert/wallpaper-controller/pkg/images"
	"github.com/arthur-debert/wallpaper-controller/pkg/store"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectNext_Successor(t *testing.T) {
	set := []string{"/w/a.jpg", "/w/b.png", "/w/c.jpeg", "/w/d.jpg"}

	for i, current := range set {
		t.Run(current, func(t *testing.T) {
			got, err := SelectNext(set, current, true)
			require.NoError(t, err)
			assert.Equal(t, set[(i+1)%len(set)], got)
		})
	}
}

func TestSelectNext_WrapsAtLastIndex(t *testing.T) {
	set := []string{"/w/a.jpg", "/w/b.png", "/w/c.jpeg"}

	got, err := SelectNext(set, "/w/c.jpeg", true)
	require.NoError(t, err)
	assert.Equal(t, "/w/a.jpg", got)
}

func TestSelectNext_SingleImage(t *testing.T) {
	got, err := SelectNext([]string{"/w/a.jpg"}, "/w/a.jpg", true)
	require.NoError(t, err)
	assert.Equal(t, "/w/a.jpg", got)
}

func TestSelectNext_FallsBackToFirst(t *testing.T) {
	set := []string{"/w/a.jpg", "/w/b.png", "/w/c.jpeg"}

	tests := []struct {
		name    string
		current string
		ok      bool
	}{
		{"absent record", "", false},
		{"empty record", "", true},
		{"deleted file", "/w/gone.jpg", true},
		{"trailing newline", "/w/b.png\n", true},
		{"different case", "/w/B.png", true},
		{"unclean path", "/w//b.png", true},
		{"absent record ignores stale value", "/w/b.png", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectNext(set, tt.current, tt.ok)
			require.NoError(t, err)
			assert.Equal(t, "/w/a.jpg", got)
		})
	}
}

func TestSelectNext_FirstMatchWins(t *testing.T) {
	set := []string{"/w/a.jpg", "/w/dup.jpg", "/w/b.png", "/w/dup.jpg", "/w/c.jpeg"}

	got, err := SelectNext(set, "/w/dup.jpg", true)
	require.NoError(t, err)
	assert.Equal(t, "/w/b.png", got)
}

func TestSelectNext_EmptySet(t *testing.T) {
	for _, current := range []string{"", "/w/a.jpg"} {
		for _, ok := range []bool{true, false} {
			t.Run(fmt.Sprintf("%q/%v", current, ok), func(t *testing.T) {
				_, err := SelectNext(nil, current, ok)
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
			})
		}
	}
}

func TestAdvance_EndToEnd(t *testing.T) {
	mem := afero.NewMemMapFs()
	for _, name := range []string{"a.jpg", "b.png", "c.jpeg", "notes.txt"} {
		require.NoError(t, afero.WriteFile(mem, filepath.Join("/walls", name), []byte("x"), 0644))
	}
	require.NoError(t, mem.MkdirAll("/state", 0755))

	fs := filesystem.NewAferoFS(mem)
	lister := images.NewLister(fs, images.OrderListing)
	st := store.New(fs, "/state")

	// No prior record
	next, err := Advance(lister, st, "/walls")
	require.NoError(t, err)
	assert.Equal(t, "/walls/a.jpg", next)

	// Record holds b.png
	require.NoError(t, afero.WriteFile(mem, st.RecordPath(), []byte("/walls/b.png"), 0644))
	next, err = Advance(lister, st, "/walls")
	require.NoError(t, err)
	assert.Equal(t, "/walls/c.jpeg", next)

	// Record holds the last image: wrap
	next, err = Advance(lister, st, "/walls")
	require.NoError(t, err)
	assert.Equal(t, "/walls/a.jpg", next)

	// Record holds a deleted file
	require.NoError(t, afero.WriteFile(mem, st.RecordPath(), []byte("/walls/deleted.jpg"), 0644))
	next, err = Advance(lister, st, "/walls")
	require.NoError(t, err)
	assert.Equal(t, "/walls/a.jpg", next)
}

func TestAdvance_RecordFeedsNextCycle(t *testing.T) {
	imageDir := t.TempDir()
	stateDir := t.TempDir()
	for _, name := range []string{"a.jpg", "b.png", "c.jpeg"} {
		require.NoError(t, os.WriteFile(filepath.Join(imageDir, name), []byte("x"), 0644))
	}

	fs := filesystem.NewOS()
	lister := images.NewLister(fs, images.OrderListing)
	st := store.New(fs, stateDir)

	set, err := lister.List(imageDir)
	require.NoError(t, err)
	require.Len(t, set, 3)

	first, err := Advance(lister, st, imageDir)
	require.NoError(t, err)

	record, err := os.ReadFile(st.RecordPath())
	require.NoError(t, err)
	assert.Equal(t, first, string(record))

	link, err := os.Readlink(st.SymlinkPath())
	require.NoError(t, err)
	assert.Equal(t, first, link)

	second, err := Advance(lister, st, imageDir)
	require.NoError(t, err)

	i := indexOf(set, first)
	require.GreaterOrEqual(t, i, 0)
	assert.Equal(t, set[(i+1)%len(set)], second)
}

func TestAdvance_EmptyDirectoryLeavesRecord(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/walls", 0755))
	require.NoError(t, afero.WriteFile(mem, "/state/current_wallpaper", []byte("/walls/a.jpg"), 0644))

	fs := filesystem.NewAferoFS(mem)
	st := store.New(fs, "/state")

	_, err := Advance(images.NewLister(fs, images.OrderListing), st, "/walls")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	current, ok := st.Current()
	assert.True(t, ok)
	assert.Equal(t, "/walls/a.jpg", current)
}

func TestAdvance_UnreadableDirectory(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())

	_, err := Advance(images.NewLister(fs, images.OrderListing), store.New(fs, "/state"), "/missing")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrImageDirRead))
}

func indexOf(set []string, s string) int {
	for i, v := range set {
		if v == s {
			return i
		}
	}
	return -1
}
