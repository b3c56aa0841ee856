package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bjaus/gridfile/internal/config"
	"github.com/bjaus/gridfile/internal/logging"
	"github.com/bjaus/gridfile/internal/ui"
)

// env is the state shared by all commands of one invocation. It is filled
// in by the root command's PersistentPreRunE.
type env struct {
	app    *App
	cfg    *config.Config
	status *ui.UI // stderr
	data   *ui.UI // stdout
}

func newRootCmd(e *env) *cobra.Command {
	var (
		configPath string
		debugMode  bool
		colorFlag  string
		logFormat  string
	)

	rootCmd := &cobra.Command{
		Use:   "gridfile",
		Short: "View, edit, and convert CSV, JSON, and JSONL files",
		Long: `gridfile loads CSV, JSON, and JSON Lines files into a table of text cells,
previews them, applies edits, and writes them back in any of the three formats.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch logFormat {
			case "text", "json":
			default:
				return fmt.Errorf("%w: invalid --log-format %q (want text or json)", errUsage, logFormat)
			}
			logging.Setup(debugMode, logFormat == "json", e.app.Stderr)

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if changed(cmd.Flags(), "color") {
				cfg.Color = colorFlag
			}
			mode, err := ui.ParseColorMode(cfg.Color)
			if err != nil {
				return fmt.Errorf("%w: %w", errUsage, err)
			}

			e.cfg = cfg
			e.status = ui.New(e.app.Stderr, mode)
			e.data = ui.New(e.app.Stdout, mode)
			cmd.SetContext(ui.WithUI(cmd.Context(), e.status))

			slog.Debug("config loaded",
				"style", cfg.Style,
				"border", cfg.Border,
				"page_size", cfg.PageSize,
				"max_width", cfg.MaxWidth,
				"color", cfg.Color,
			)
			return nil
		},
	}

	rootCmd.Version = e.app.Version
	rootCmd.SetVersionTemplate("gridfile {{.Version}}\n")
	rootCmd.SetIn(e.app.Stdin)
	rootCmd.SetOut(e.app.Stdout)
	rootCmd.SetErr(e.app.Stderr)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default ~/.config/gridfile/config.yaml, or $"+config.EnvPath+")")
	flags.BoolVar(&debugMode, "debug", false, "Enable debug logging")
	flags.StringVar(&colorFlag, "color", "auto", "Color output: auto|always|never")
	flags.StringVar(&logFormat, "log-format", "text", "Log format: text|json")

	rootCmd.AddCommand(newShowCmd(e))
	rootCmd.AddCommand(newInfoCmd(e))
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newFormatsCmd(e))
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newSaveCmd())

	return rootCmd
}

// usageArgs marks positional argument errors as usage errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
		return nil
	}
}

// changed reports whether the named flag was set on the command line.
func changed(fs *pflag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	return f != nil && f.Changed
}
