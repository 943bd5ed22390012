package rotation

import (
	"github.com/arthur-debert/wallpaper-controller/pkg/errors"
	"github.com/arthur-debert/wallpaper-controller/pkg/logging"
	"github.com/arthur-debert/wallpaper-controller/pkg/store"
)

// ImageLister builds the ordered Image Set for a directory.
type ImageLister interface {
	List(dir string) ([]string, error)
}

// SelectNext returns the image following current in images.
//
// current is compared by exact string equality and the first match wins.
// The successor of the last image is the first one. When current is absent
// or not in images, the first image is returned. An empty images yields an
// ErrNotFound error.
func SelectNext(images []string, current string, ok bool) (string, error) {
	if len(images) == 0 {
		return "", errors.New(errors.ErrNotFound, "no next image file found")
	}

	if ok {
		for i, image := range images {
			if image == current {
				return images[(i+1)%len(images)], nil
			}
		}
	}

	return images[0], nil
}

// Advance lists imageDir, picks the image after the one recorded in st and
// saves it. It returns the saved path.
func Advance(lister ImageLister, st store.Store, imageDir string) (string, error) {
	logger := logging.GetLogger("rotation")

	images, err := lister.List(imageDir)
	if err != nil {
		return "", err
	}

	current, ok := st.Current()
	logger.Debug().Str("current", current).Bool("recorded", ok).Int("images", len(images)).Msg("Selecting next image")

	next, err := SelectNext(images, current, ok)
	if err != nil {
		return "", err
	}

	if err := st.Save(next); err != nil {
		return "", err
	}

	return next, nil
}
