package unitool

import (
	"github.com/arthur-debert/unitool/pkg/errors"
	"github.com/arthur-debert/unitool/pkg/logging"
	"github.com/arthur-debert/unitool/pkg/render"
	"github.com/arthur-debert/unitool/pkg/ui/styles"
	"github.com/arthur-debert/unitool/pkg/unity"
	"github.com/spf13/cobra"
)

func newTestCmd(a *app) *cobra.Command {
	var (
		mode       string
		filters    string
		assemblies string
		unityArgs  string
	)

	cmd := &cobra.Command{
		Use:     "test <project>",
		Short:   MsgTestShort,
		Long:    MsgTestLong,
		Example: MsgTestExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveFilterDirs
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.test")

			m, err := unity.ParseMode(mode)
			if err != nil {
				return err
			}
			extra, err := unity.SplitExtraArgs(unityArgs)
			if err != nil {
				return err
			}
			if assemblies == "" {
				assemblies = a.cfg.Unity.Assemblies
			}

			runner, err := a.runner()
			if err != nil {
				return err
			}

			logger.Info().
				Str("project", args[0]).
				Str("mode", m.String()).
				Str("filters", filters).
				Str("assemblies", assemblies).
				Msg("Starting test run")

			p := startProgress(MsgTesting)
			run, err := runner.Test(cmd.Context(), args[0], unity.TestOptions{
				Mode:       m,
				Filters:    filters,
				Assemblies: assemblies,
				ExtraArgs:  extra,
			})
			p.stop()
			if err != nil {
				return err
			}

			out := a.printer(cmd)
			if !run.CompileErrors.Empty() {
				if err := out.Message(styles.Negative, MsgCompileFailed); err != nil {
					return err
				}
				return printCompileErrors(out, run.CompileErrors)
			}

			if err := out.PrintLines(render.Report(run.Report)); err != nil {
				return err
			}

			totals := run.Report.Totals()
			summaryStyle := styles.Positive
			if totals.Failed > 0 {
				summaryStyle = styles.Negative
			}
			if err := out.Messagef(summaryStyle, MsgTestSummary, totals.Passed, totals.Failed, totals.Skipped); err != nil {
				return err
			}
			if totals.Failed > 0 {
				return reported(errors.Newf(errors.ErrTestsFailed, "%d test(s) failed", totals.Failed))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", MsgFlagMode)
	cmd.Flags().StringVarP(&filters, "filters", "f", "", MsgFlagFilters)
	cmd.Flags().StringVarP(&assemblies, "assemblies", "a", "", MsgFlagAssemblies)
	cmd.Flags().StringVar(&unityArgs, "unity-args", "", MsgFlagUnityArgs)
	_ = cmd.MarkFlagRequired("mode")
	_ = cmd.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"edit", "play"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
