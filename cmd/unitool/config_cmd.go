package unitool

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/unitool/pkg/config"
	"github.com/arthur-debert/unitool/pkg/errors"
	"github.com/arthur-debert/unitool/pkg/paths"
	"github.com/arthur-debert/unitool/pkg/ui/styles"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	var initFile bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if initFile {
				path, err := writeUserConfig()
				if err != nil {
					return err
				}
				return a.printer(cmd).Messagef(styles.Info, MsgConfigWritten, path)
			}

			data, err := a.cfg.ToTOML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, MsgFlagInit)
	return cmd
}

// writeUserConfig creates the user config file. An existing file is
// never overwritten.
func writeUserConfig() (string, error) {
	path := paths.ConfigFile()
	if _, err := os.Stat(path); err == nil {
		return "", errors.Newf(errors.ErrInvalidInput, MsgConfigExistsFormat, path).WithDetail("file", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrIO, "cannot create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, []byte(config.GenerateConfigContent()), 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrIO, "cannot write %s", path)
	}
	return path, nil
}
