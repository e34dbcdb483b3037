package unitool

import (
	"github.com/arthur-debert/unitool/pkg/logging"
	"github.com/arthur-debert/unitool/pkg/render"
	"github.com/arthur-debert/unitool/pkg/report"
	"github.com/spf13/cobra"
)

func newReportCmd(a *app) *cobra.Command {
	var noCheck bool

	cmd := &cobra.Command{
		Use:     "report <results.xml>",
		Short:   MsgReportShort,
		Long:    MsgReportLong,
		Example: MsgReportExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return []string{"xml"}, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.report")
			path := args[0]

			rep, err := report.ParseFile(path, report.WithCountCheck(a.cfg.Report.VerifyCounts && !noCheck))
			if err != nil {
				return err
			}

			totals := rep.Totals()
			logger.Info().
				Str("file", path).
				Int("suites", len(rep.Suites)).
				Int("passed", totals.Passed).
				Int("failed", totals.Failed).
				Int("skipped", totals.Skipped).
				Msg("Rendering report")

			return a.printer(cmd).PrintLines(render.Report(rep))
		},
	}

	cmd.Flags().BoolVar(&noCheck, "no-count-check", false, MsgFlagNoCheck)
	return cmd
}
