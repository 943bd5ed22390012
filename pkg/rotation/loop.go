package rotation

import (
	"context"
	"time"

	"github.com/arthur-debert/wallpaper-controller/pkg/errors"
	"github.com/arthur-debert/wallpaper-controller/pkg/logging"
	"github.com/arthur-debert/wallpaper-controller/pkg/setter"
	"github.com/arthur-debert/wallpaper-controller/pkg/store"
)

// StateResolver locates the state directory for one cycle.
type StateResolver interface {
	Resolve(explicit string) (string, error)
}

// StoreFactory opens the record store inside a resolved state directory.
type StoreFactory func(stateDir string) store.Store

// Loop drives the rotation: one cycle immediately, then one per Interval.
type Loop struct {
	Resolver StateResolver
	Lister   ImageLister
	NewStore StoreFactory
	Setter   setter.Setter

	// StateDir is the explicit state directory, may be empty.
	StateDir string
	ImageDir string
	Interval time.Duration

	// Once stops after the first cycle.
	Once bool
}

// Run cycles until ctx is cancelled, returning nil in that case. Only a
// state directory that cannot be resolved ends Run with an error; every
// other cycle failure is logged and the loop sleeps as usual. With Once
// set, the first cycle's error (if any) is returned.
func (l *Loop) Run(ctx context.Context) error {
	logger := logging.GetLogger("rotation")
	logger.Info().
		Str("imageDir", l.ImageDir).
		Dur("interval", l.Interval).
		Msg("Starting wallpaper rotation")

	for {
		_, err := l.Cycle()
		if errors.IsErrorCode(err, errors.ErrStateDir) {
			return err
		}
		if l.Once {
			return err
		}

		if !sleep(ctx, l.Interval) {
			logger.Info().Msg("Stopping wallpaper rotation")
			return nil
		}
	}
}

// sleep waits for d and reports false if ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// Cycle performs one resolve, select, persist and apply pass and returns
// the applied image.
func (l *Loop) Cycle() (string, error) {
	logger := logging.GetLogger("rotation")
	done := logging.LogOperationStart(logger, "cycle")
	defer done()

	stateDir, err := l.Resolver.Resolve(l.StateDir)
	if err != nil {
		logger.Error().Err(err).Msg("Cannot resolve state directory")
		return "", errors.Wrap(err, errors.ErrStateDir, "failed to resolve state directory")
	}

	next, err := Advance(l.Lister, l.NewStore(stateDir), l.ImageDir)
	if err != nil {
		logger.Error().Err(err).
			Str("code", string(errors.GetErrorCode(err))).
			Str("imageDir", l.ImageDir).
			Fields(errors.GetErrorDetails(err)).
			Msg("Skipping wallpaper change")
		return "", err
	}

	logger.Info().Str("image", next).Str("stateDir", stateDir).Msg("Wallpaper selected")

	if err := l.Setter.Apply(next); err != nil {
		logger.Error().Err(err).
			Str("code", string(errors.GetErrorCode(err))).
			Str("image", next).
			Fields(errors.GetErrorDetails(err)).
			Msg("Failed to start wallpaper setter")
		return next, err
	}

	return next, nil
}
