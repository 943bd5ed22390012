// Package setter hands the chosen image to the external wallpaper program.
package setter

import (
	"os/exec"
	"strings"

	"github.com/arthur-debert/wallpaper-controller/pkg/errors"
	"github.com/arthur-debert/wallpaper-controller/pkg/logging"
)

// DefaultCommand is the setter command line used when none is configured.
const DefaultCommand = "swww img"

// Setter applies an image as the wallpaper.
type Setter interface {
	Apply(imagePath string) error
}

// CommandSetter runs an external program with the image path appended as
// the final argument. The program is started detached: Apply returns as
// soon as the process has been spawned and its exit status is never
// inspected.
type CommandSetter struct {
	Program string
	Args    []string
}

// NewCommandSetter splits commandLine on whitespace into program and
// leading arguments.
func NewCommandSetter(commandLine string) (*CommandSetter, error) {
	fields := strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "setter command is empty")
	}
	return &CommandSetter{Program: fields[0], Args: fields[1:]}, nil
}

// Apply starts the setter for imagePath without waiting for it.
func (s *CommandSetter) Apply(imagePath string) error {
	logger := logging.GetLogger("setter")

	args := append(append([]string{}, s.Args...), imagePath)
	logging.LogCommand(logger, s.Program, args)

	cmd := exec.Command(s.Program, args...)
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, errors.ErrSetterSpawn, "failed to start %s", s.Program).
			WithDetail("program", s.Program)
	}

	// Reap the child so it does not linger as a zombie.
	go func() {
		_ = cmd.Wait()
	}()

	return nil
}
