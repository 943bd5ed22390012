// Package images enumerates the wallpaper candidates in an image directory.
package images

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/wallpaper-controller/pkg/errors"
	"github.com/arthur-debert/wallpaper-controller/pkg/logging"
	"github.com/arthur-debert/wallpaper-controller/pkg/types"
)

// Order controls how the Image Set is ordered.
type Order string

const (
	// OrderListing keeps the order the filesystem enumerates entries in.
	OrderListing Order = "listing"
	// OrderName sorts entries by path.
	OrderName Order = "name"
)

// ParseOrder parses a --sort value.
func ParseOrder(s string) (Order, error) {
	switch Order(strings.ToLower(s)) {
	case OrderListing, "":
		return OrderListing, nil
	case OrderName:
		return OrderName, nil
	default:
		return OrderListing, fmt.Errorf("unknown order: %s", s)
	}
}

// allowedExtensions are compared case-sensitively.
var allowedExtensions = map[string]bool{
	"jpg":  true,
	"png":  true,
	"jpeg": true,
}

// Lister builds the Image Set for a directory.
type Lister struct {
	fs    types.FS
	order Order
}

// NewLister creates a Lister reading through fs.
func NewLister(fs types.FS, order Order) *Lister {
	if order == "" {
		order = OrderListing
	}
	return &Lister{fs: fs, order: order}
}

// List returns the regular files directly inside dir whose extension is
// jpg, png or jpeg. Symlinks are followed. Entries that cannot be stat'ed
// are skipped. Failing to read dir itself is an ErrImageDirRead error.
func (l *Lister) List(dir string) ([]string, error) {
	logger := logging.GetLogger("images")

	entries, err := l.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrImageDirRead, "failed to read image directory %s", dir).
			WithDetail("dir", dir)
	}

	images := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !allowedExtensions[extension(entry.Name())] {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		info, err := l.fs.Stat(path)
		if err != nil {
			logger.Debug().Err(err).Str("path", path).Msg("Skipping unreadable entry")
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		images = append(images, path)
	}

	if l.order == OrderName {
		sort.Strings(images)
	}

	logger.Debug().Str("dir", dir).Int("count", len(images)).Msg("Listed images")
	return images, nil
}

// extension returns the text after the last dot of name. A name whose only
// dot is the leading one (".jpg") has no extension.
func extension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i+1:]
}
