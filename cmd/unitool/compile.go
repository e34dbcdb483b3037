package unitool

import (
	"github.com/arthur-debert/unitool/pkg/errors"
	"github.com/arthur-debert/unitool/pkg/ui"
	"github.com/arthur-debert/unitool/pkg/ui/styles"
	"github.com/arthur-debert/unitool/pkg/unity"
	"github.com/spf13/cobra"
)

func newCompileCmd(a *app) *cobra.Command {
	var unityArgs string

	cmd := &cobra.Command{
		Use:     "compile <project>",
		Short:   MsgCompileShort,
		Long:    MsgCompileLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveFilterDirs
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := unity.SplitExtraArgs(unityArgs)
			if err != nil {
				return err
			}
			runner, err := a.runner()
			if err != nil {
				return err
			}

			p := startProgress(MsgCompiling)
			errs, err := runner.Compile(cmd.Context(), args[0], extra...)
			p.stop()
			if err != nil {
				return err
			}

			out := a.printer(cmd)
			if errs.Empty() {
				return out.Message(styles.Positive, MsgCompileSucceeded)
			}
			if err := out.Message(styles.Negative, MsgCompileFailed); err != nil {
				return err
			}
			return printCompileErrors(out, errs)
		},
	}

	cmd.Flags().StringVar(&unityArgs, "unity-args", "", MsgFlagUnityArgs)
	return cmd
}

// printCompileErrors lists the errors and returns the error that sets the
// exit status
func printCompileErrors(out *ui.Printer, errs unity.CompileErrors) error {
	for _, e := range errs {
		if err := out.Messagef("", MsgCompileErrorItem, e); err != nil {
			return err
		}
	}
	return reported(errors.Newf(errors.ErrCompileFailed, "%d compile error(s)", len(errs)))
}
