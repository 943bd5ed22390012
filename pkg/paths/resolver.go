package paths

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/wallpaper-controller/pkg/errors"
	"github.com/arthur-debert/wallpaper-controller/pkg/logging"
	"github.com/arthur-debert/wallpaper-controller/pkg/types"
	"github.com/rs/zerolog"
)

// EnvLookup reports the value of an environment variable and whether it is set.
type EnvLookup func(key string) (string, bool)

// Resolver locates the state directory holding the current-wallpaper record.
type Resolver struct {
	fs        types.FS
	lookupEnv EnvLookup
	logger    zerolog.Logger
}

// NewResolver creates a Resolver. A nil lookupEnv reads the process environment.
func NewResolver(fs types.FS, lookupEnv EnvLookup) *Resolver {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	return &Resolver{
		fs:        fs,
		lookupEnv: lookupEnv,
		logger:    logging.GetLogger("paths"),
	}
}

// Resolve returns an existing state directory using, in order:
//  1. explicit, if it already is a directory (it is never created)
//  2. $XDG_DATA_HOME/wallpaper_controller, created if missing
//  3. $HOME/.wallpaper_controller, created if missing
//
// An environment variable set to the empty string counts as unset, so an
// empty $XDG_DATA_HOME falls through to $HOME instead of resolving a
// relative directory against the working directory.
func (r *Resolver) Resolve(explicit string) (string, error) {
	return r.resolve(explicit, true)
}

// Locate picks the directory Resolve would use without creating anything.
// A missing candidate is returned as is; one that exists but is not a
// directory is skipped, as in Resolve.
func (r *Resolver) Locate(explicit string) (string, error) {
	return r.resolve(explicit, false)
}

func (r *Resolver) resolve(explicit string, create bool) (string, error) {
	if explicit != "" {
		if r.isDir(explicit) {
			return explicit, nil
		}
		r.logger.Debug().Str("dir", explicit).Msg("Explicit state directory is not a directory, falling back")
	}

	candidates := []struct {
		env  string
		name string
	}{
		{EnvXDGDataHome, DataDirName},
		{EnvHome, HomeDirName},
	}

	for _, c := range candidates {
		base, ok := r.lookupEnv(c.env)
		if !ok || base == "" {
			continue
		}

		dir := filepath.Join(base, c.name)
		if _, err := r.fs.Stat(dir); os.IsNotExist(err) {
			if !create {
				return dir, nil
			}
			r.logger.Info().Str("dir", dir).Msg("Creating state directory")
			if err := r.fs.MkdirAll(dir, 0755); err != nil {
				return "", errors.Wrapf(err, errors.ErrDirCreate, "failed to create state directory %s", dir).
					WithDetail("dir", dir)
			}
		}

		if r.isDir(dir) {
			return dir, nil
		}
		r.logger.Debug().Str("dir", dir).Str("env", c.env).Msg("State directory candidate is not a directory")
	}

	return "", errors.New(errors.ErrNotFound,
		"no state directory found ($XDG_DATA_HOME or $HOME unset) or it is not a directory")
}

func (r *Resolver) isDir(path string) bool {
	info, err := r.fs.Stat(path)
	return err == nil && info.IsDir()
}
