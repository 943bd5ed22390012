package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Rotate the desktop wallpaper through a directory of images"
	MsgStatusShort     = "Show the current wallpaper record"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagStateDir  = "Directory holding the current wallpaper record (used only if it exists)"
	MsgFlagImageDir  = "Directory of .jpg, .jpeg and .png images to rotate through"
	MsgFlagInterval  = "Seconds between wallpaper changes"
	MsgFlagSetter    = "Command that sets the wallpaper; the image path is appended"
	MsgFlagSort      = "Image order: listing (directory order) or name"
	MsgFlagOnce      = "Change the wallpaper once and exit"
	MsgFlagOutput    = "Output format: auto, term, text, json or yaml"
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrSetter     = "invalid setter: %w"
	MsgErrFormat     = "invalid output format: %w"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/version-template.txt
	msgVersionTemplateRaw string
	MsgVersionTemplate    = strings.TrimSpace(msgVersionTemplateRaw) + "\n"
)
