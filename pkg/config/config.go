package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/arthur-debert/wallpaper-controller/pkg/errors"
	"github.com/arthur-debert/wallpaper-controller/pkg/images"
	"github.com/arthur-debert/wallpaper-controller/pkg/paths"
	"github.com/arthur-debert/wallpaper-controller/pkg/setter"
	"github.com/arthur-debert/wallpaper-controller/pkg/types"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override, e.g. WALLPAPER_CONTROLLER_INTERVAL.
const EnvPrefix = "WALLPAPER_CONTROLLER_"

// Configuration keys
const (
	KeyStateDir = "state_dir"
	KeyImageDir = "image_dir"
	KeyInterval = "interval"
	KeySetter   = "setter"
	KeySort     = "sort"
	KeyOnce     = "once"
)

// DefaultInterval is the rotation interval in seconds.
const DefaultInterval = 120

// Config is the validated daemon configuration.
type Config struct {
	// StateDir is the explicit state directory, empty when not given.
	StateDir string
	// ImageDir is absolute and known to be a directory.
	ImageDir string
	// IntervalSeconds fits in 16 bits, as on the command line.
	IntervalSeconds uint16
	Setter          string
	Sort            images.Order
	Once            bool
}

// Interval returns IntervalSeconds as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		KeyStateDir: "",
		KeyImageDir: "",
		KeyInterval: DefaultInterval,
		KeySetter:   setter.DefaultCommand,
		KeySort:     string(images.OrderListing),
		KeyOnce:     false,
	}
}

// Load layers defaults, WALLPAPER_CONTROLLER_* environment variables and
// overrides (explicitly set command line flags, keyed by Key* names), in
// that order, then validates the result against fs.
func Load(fs types.FS, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	envKey := func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	return fromKoanf(fs, k)
}

func fromKoanf(fs types.FS, k *koanf.Koanf) (*Config, error) {
	cfg := &Config{
		StateDir: paths.ExpandHome(k.String(KeyStateDir)),
		Setter:   strings.TrimSpace(k.String(KeySetter)),
	}

	interval, err := strconv.ParseUint(k.String(KeyInterval), 10, 16)
	if err != nil {
		return nil, errors.Newf(errors.ErrConfigInvalid,
			"invalid interval %q: must be a whole number of seconds between 0 and 65535", k.String(KeyInterval))
	}
	cfg.IntervalSeconds = uint16(interval)

	if cfg.Sort, err = images.ParseOrder(k.String(KeySort)); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigInvalid, "invalid sort order")
	}

	if once := k.String(KeyOnce); once != "" {
		if cfg.Once, err = strconv.ParseBool(once); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigInvalid, "invalid once value %q", once)
		}
	}

	if cfg.Setter == "" {
		return nil, errors.New(errors.ErrConfigInvalid, "setter command must not be empty")
	}

	imageDir := paths.ExpandHome(k.String(KeyImageDir))
	if imageDir == "" {
		return nil, errors.New(errors.ErrConfigInvalid, `required flag "img-directory" not set`)
	}
	if cfg.ImageDir, err = filepath.Abs(imageDir); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigInvalid, "cannot make %s absolute", imageDir)
	}

	info, err := fs.Stat(cfg.ImageDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigInvalid, "image directory %s is not accessible", cfg.ImageDir).
			WithDetail("dir", cfg.ImageDir)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrConfigInvalid, "image directory %s is not a directory", cfg.ImageDir).
			WithDetail("dir", cfg.ImageDir)
	}

	return cfg, nil
}
