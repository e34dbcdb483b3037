package unity

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/unitool/pkg/errors"
	"github.com/arthur-debert/unitool/pkg/logging"
	"github.com/hashicorp/go-version"
)

// EditorBinary is the editor executable relative to an installation directory
var EditorBinary = filepath.Join("Editor", "Unity")

// FindEditor returns the editor executable to run. An explicit editorPath
// wins; otherwise the newest installation under editorsDir is used.
// Installation directories are named after their version (e.g. 2022.3.10f1)
// and compared as versions; names that do not parse sort below every
// version and lexically among themselves.
func FindEditor(editorPath, editorsDir string) (string, error) {
	logger := logging.GetLogger("unity.editor")

	if editorPath != "" {
		if !isFile(editorPath) {
			return "", errors.Newf(errors.ErrEditorNotFound, "editor %s does not exist", editorPath).
				WithDetail("path", editorPath)
		}
		return editorPath, nil
	}

	entries, err := os.ReadDir(editorsDir)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrEditorNotFound, "cannot list editors in %s", editorsDir).
			WithDetail("dir", editorsDir)
	}

	var installs []install
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		bin := filepath.Join(editorsDir, e.Name(), EditorBinary)
		if !isFile(bin) {
			logger.Debug().Str("dir", e.Name()).Msg("Skipping directory without editor binary")
			continue
		}
		v, _ := version.NewVersion(e.Name())
		installs = append(installs, install{name: e.Name(), version: v, binary: bin})
	}

	if len(installs) == 0 {
		return "", errors.Newf(errors.ErrEditorNotFound, "no editor installed in %s", editorsDir).
			WithDetail("dir", editorsDir)
	}

	sort.Slice(installs, func(i, j int) bool { return installs[i].less(installs[j]) })
	newest := installs[len(installs)-1]
	logger.Debug().Str("version", newest.name).Str("binary", newest.binary).Msg("Selected editor")
	return newest.binary, nil
}

type install struct {
	name    string
	version *version.Version
	binary  string
}

func (a install) less(b install) bool {
	switch {
	case a.version != nil && b.version != nil && !a.version.Equal(b.version):
		return a.version.LessThan(b.version)
	case a.version == nil && b.version != nil:
		return true
	case a.version != nil && b.version == nil:
		return false
	default:
		return a.name < b.name
	}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
