package cli

import (
	"fmt"

	"github.com/arthur-debert/wallpaper-controller/internal/version"
	"github.com/arthur-debert/wallpaper-controller/pkg/config"
	"github.com/arthur-debert/wallpaper-controller/pkg/filesystem"
	"github.com/arthur-debert/wallpaper-controller/pkg/images"
	"github.com/arthur-debert/wallpaper-controller/pkg/logging"
	"github.com/arthur-debert/wallpaper-controller/pkg/paths"
	"github.com/arthur-debert/wallpaper-controller/pkg/rotation"
	"github.com/arthur-debert/wallpaper-controller/pkg/setter"
	"github.com/arthur-debert/wallpaper-controller/pkg/status"
	"github.com/arthur-debert/wallpaper-controller/pkg/store"
	"github.com/arthur-debert/wallpaper-controller/pkg/types"
	"github.com/arthur-debert/wallpaper-controller/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flagKeys maps root command flags onto configuration keys. Only flags the
// user actually set are layered over defaults and the environment.
var flagKeys = map[string]string{
	"wallpaper-id-dir": config.KeyStateDir,
	"img-directory":    config.KeyImageDir,
	"time":             config.KeyInterval,
	"setter":           config.KeySetter,
	"sort":             config.KeySort,
	"once":             config.KeyOnce,
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		stateDir  string
		imageDir  string
		interval  uint16
		setterCmd string
		sortOrder string
		once      bool
	)

	rootCmd := &cobra.Command{
		Use:     "wallpaper-controller",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := filesystem.NewOS()

			cfg, err := config.Load(fs, changedFlags(cmd.Flags()))
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}

			loop, err := newLoop(fs, cfg)
			if err != nil {
				return err
			}

			log.Debug().
				Str("imageDir", cfg.ImageDir).
				Str("stateDir", cfg.StateDir).
				Uint16("interval", cfg.IntervalSeconds).
				Str("setter", cfg.Setter).
				Str("sort", string(cfg.Sort)).
				Bool("once", cfg.Once).
				Msg("Configuration loaded")

			return loop.Run(cmd.Context())
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.SetVersionTemplate(MsgVersionTemplate)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	flags := rootCmd.Flags()
	flags.StringVarP(&stateDir, "wallpaper-id-dir", "i", "", MsgFlagStateDir)
	flags.StringVarP(&imageDir, "img-directory", "d", "", MsgFlagImageDir)
	flags.Uint16VarP(&interval, "time", "t", config.DefaultInterval, MsgFlagInterval)
	flags.StringVarP(&setterCmd, "setter", "s", setter.DefaultCommand, MsgFlagSetter)
	flags.StringVar(&sortOrder, "sort", string(images.OrderListing), MsgFlagSort)
	flags.BoolVar(&once, "once", false, MsgFlagOnce)

	_ = rootCmd.MarkFlagDirname("wallpaper-id-dir")
	_ = rootCmd.MarkFlagDirname("img-directory")
	_ = rootCmd.RegisterFlagCompletionFunc("sort", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(images.OrderListing), string(images.OrderName)}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// changedFlags collects the flags set on the command line, keyed for config.Load.
func changedFlags(flags *pflag.FlagSet) map[string]interface{} {
	overrides := make(map[string]interface{})
	flags.Visit(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			overrides[key] = f.Value.String()
		}
	})
	return overrides
}

func newLoop(fs types.FS, cfg *config.Config) (*rotation.Loop, error) {
	s, err := setter.NewCommandSetter(cfg.Setter)
	if err != nil {
		return nil, fmt.Errorf(MsgErrSetter, err)
	}

	return &rotation.Loop{
		Resolver: paths.NewResolver(fs, nil),
		Lister:   images.NewLister(fs, cfg.Sort),
		NewStore: func(stateDir string) store.Store {
			return store.New(fs, stateDir)
		},
		Setter:   s,
		StateDir: cfg.StateDir,
		ImageDir: cfg.ImageDir,
		Interval: cfg.Interval(),
		Once:     cfg.Once,
	}, nil
}

func newStatusCmd() *cobra.Command {
	var (
		stateDir string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: MsgStatusShort,
		Long:  MsgStatusLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ui.ParseFormat(output)
			if err != nil {
				return fmt.Errorf(MsgErrFormat, err)
			}

			renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			fs := filesystem.NewOS()
			report, err := status.Gather(fs, paths.NewResolver(fs, nil), paths.ExpandHome(stateDir))
			if err != nil {
				return err
			}

			return renderer.RenderStatus(report)
		},
	}

	cmd.Flags().StringVarP(&stateDir, "wallpaper-id-dir", "i", "", MsgFlagStateDir)
	cmd.Flags().StringVarP(&output, "output", "o", ui.FormatAuto.String(), MsgFlagOutput)
	_ = cmd.MarkFlagDirname("wallpaper-id-dir")
	_ = cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
