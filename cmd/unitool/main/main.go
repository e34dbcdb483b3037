package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/unitool/cmd/unitool"
	"github.com/arthur-debert/unitool/pkg/ui/styles"
)

func main() {
	rootCmd := unitool.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		unitool.LogFailure(err)
		if !unitool.IsReported(err) {
			errorStyle := styles.Default().Style(nil, styles.Error)
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf(unitool.MsgErrorFormat, err)))
		}
		os.Exit(1)
	}
}
