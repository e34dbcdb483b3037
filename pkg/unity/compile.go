package unity

import (
	"strings"
)

// compileErrorMarker identifies C# compiler errors in the editor log
const compileErrorMarker = "error CS"

// CompileErrors are the distinct compiler error lines of a run, in the
// order they first appeared
type CompileErrors []string

// Empty reports whether compilation succeeded
func (c CompileErrors) Empty() bool {
	return len(c) == 0
}

// ExtractCompileErrors returns every distinct line of output that reports a
// C# compiler error. Duplicates are dropped.
func ExtractCompileErrors(output []byte) CompileErrors {
	seen := make(map[string]struct{})
	var errs CompileErrors

	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if !strings.Contains(line, compileErrorMarker) {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		errs = append(errs, line)
	}
	return errs
}
