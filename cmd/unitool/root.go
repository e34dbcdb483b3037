package unitool

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/arthur-debert/unitool/internal/version"
	"github.com/arthur-debert/unitool/pkg/cobrax/topics"
	"github.com/arthur-debert/unitool/pkg/config"
	"github.com/arthur-debert/unitool/pkg/errors"
	"github.com/arthur-debert/unitool/pkg/logging"
	"github.com/arthur-debert/unitool/pkg/ui"
	"github.com/arthur-debert/unitool/pkg/ui/styles"
	"github.com/arthur-debert/unitool/pkg/unity"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app holds the global flags and everything derived from them before a
// command runs
type app struct {
	verbosity  int
	color      string
	configFile string

	cfg      *config.Config
	table    *styles.Table
	executor unity.Executor
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "unitool",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Short(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(logging.Options{
				Verbosity: a.verbosity,
				NoColor:   a.color == config.ColorNever || os.Getenv("NO_COLOR") != "",
				Console:   cmd.ErrOrStderr(),
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, "no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.color, "color", "", MsgFlagColor)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)
	_ = rootCmd.RegisterFlagCompletionFunc("color", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{config.ColorAuto, config.ColorAlways, config.ColorNever}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newReportCmd(a))
	rootCmd.AddCommand(newTestCmd(a))
	rootCmd.AddCommand(newCompileCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	topicsFS, err := fs.Sub(helpTopics, "topics")
	if err == nil {
		opts := topics.Options{
			Extensions: []string{".md"},
			Renderer:   &topics.MarkdownRenderer{Colored: a.helpColored},
		}
		if _, err := topics.InitializeWithOptions(rootCmd, topicsFS, opts); err != nil {
			log.Warn().Err(err).Msg("Help topics unavailable")
		}
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// setup loads the configuration and resolves the output settings
func (a *app) setup() error {
	cfg, err := config.Load(config.Options{ExplicitFile: a.configFile})
	if err != nil {
		return err
	}
	a.cfg = cfg
	log.Debug().Str("config", cfg.String()).Msg("Configuration loaded")

	if a.color == "" {
		a.color = cfg.Output.Color
	}
	switch a.color {
	case config.ColorAuto, config.ColorAlways, config.ColorNever:
	default:
		return errors.Newf(errors.ErrInvalidInput, "invalid --color %q (want auto, always or never)", a.color)
	}
	if a.color == config.ColorNever {
		pterm.DisableStyling()
	} else {
		pterm.EnableStyling()
	}

	a.table = styles.Default()
	if cfg.Output.StylesFile != "" {
		table, err := styles.Load(cfg.Output.StylesFile)
		if err != nil {
			return errors.Wrap(err, errors.ErrConfigLoad, "failed to load styles").
				WithDetail("file", cfg.Output.StylesFile)
		}
		a.table = table
		for _, name := range table.Names() {
			if !styles.IsKnown(name) {
				log.Warn().Str("style", string(name)).Str("file", cfg.Output.StylesFile).Msg("Unknown style in styles file")
			}
		}
	}
	return nil
}

// printer writes styled output to the command's stdout
func (a *app) printer(cmd *cobra.Command) *ui.Printer {
	format, err := ui.ParseFormat(a.color)
	if err != nil {
		format = ui.FormatAuto
	}
	return ui.NewPrinter(cmd.OutOrStdout(), format, a.table)
}

// helpColored decides whether help topics are rendered with colors
func (a *app) helpColored() bool {
	switch a.color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return ui.DetectFormat(os.Stdout) == ui.FormatTerminal
	}
}

// runner builds a runner for the configured editor. unity.extra_args is
// passed to every invocation.
func (a *app) runner() (*unity.Runner, error) {
	extra, err := unity.SplitExtraArgs(a.cfg.Unity.ExtraArgs)
	if err != nil {
		return nil, err
	}
	editor, err := unity.FindEditor(a.cfg.Unity.EditorPath, a.cfg.Unity.EditorsDir)
	if err != nil {
		return nil, err
	}
	return unity.NewRunner(unity.Options{
		Editor:       editor,
		ResultsPath:  a.cfg.Unity.ResultsPath,
		Timeout:      a.cfg.Unity.Timeout,
		VerifyCounts: a.cfg.Report.VerifyCounts,
		ExtraArgs:    extra,
	}, a.executor), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
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
