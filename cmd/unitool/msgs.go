package unitool

import (
	"embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Compile and test Unity projects from the command line"
	MsgReportShort     = "Render a test results file"
	MsgTestShort       = "Compile the project and run its tests"
	MsgCompileShort    = "Compile the project and display any errors"
	MsgConfigShort     = "Show the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgCompiling          = "Compiling..."
	MsgTesting            = "Compiling and running tests..."
	MsgCompileSucceeded   = "Compilation succeeded"
	MsgCompileFailed      = "Compilation failed"
	MsgCompileErrorItem   = "  %s"
	MsgTestSummary        = "%d passed, %d failed, %d skipped"
	MsgConfigWritten      = "Wrote %s"
	MsgVersionFormat      = "unitool version %s\n  commit: %s\n  built:  %s\n"
	MsgErrorFormat        = "Error: %v"
	MsgConfigExistsFormat = "config file %s already exists"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagColor      = "Color output: auto, always or never (default from output.color)"
	MsgFlagConfig     = "Config file read after the user config"
	MsgFlagMode       = "Test mode: edit or play"
	MsgFlagFilters    = "Optional ';' separated test filters"
	MsgFlagAssemblies = "The ';' separated test assemblies to run (default from unity.assemblies)"
	MsgFlagUnityArgs  = "Extra editor arguments, shell quoted"
	MsgFlagInit       = "Write a commented config file to the user config location"
	MsgFlagNoCheck    = "Accept suites whose total differs from passed + failed + skipped"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/report-long.txt
	msgReportLongRaw string
	MsgReportLong    = strings.TrimSpace(msgReportLongRaw)

	//go:embed msgs/report-example.txt
	msgReportExampleRaw string
	MsgReportExample    = strings.TrimRight(msgReportExampleRaw, "\n")

	//go:embed msgs/test-long.txt
	msgTestLongRaw string
	MsgTestLong    = strings.TrimSpace(msgTestLongRaw)

	//go:embed msgs/test-example.txt
	msgTestExampleRaw string
	MsgTestExample    = strings.TrimRight(msgTestExampleRaw, "\n")

	//go:embed msgs/compile-long.txt
	msgCompileLongRaw string
	MsgCompileLong    = strings.TrimSpace(msgCompileLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)

// helpTopics holds the markdown topics shown by 'unitool help <topic>'
//
//go:embed topics/*.md
var helpTopics embed.FS
