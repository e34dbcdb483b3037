// Package topics adds help topics to a cobra command tree.
//
// Topics are files of a file system, usually one embedded in the binary.
// The file name without extension is the topic name; names starting with
// "option-" document a flag and can also be asked for as "--flag". The
// first line of a topic, minus markdown heading marks, is its title.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

const (
	optionPrefix = "option-"
	indexArg     = "topics"
)

// Topic is a single help document
type Topic struct {
	Name     string
	Title    string
	FilePath string
	Content  string
}

// IsOption reports whether the topic documents a command line flag
func (t *Topic) IsOption() bool {
	return strings.HasPrefix(t.Name, optionPrefix)
}

// Options configures a TopicManager
type Options struct {
	// Extensions selects the topic files. Defaults to .txt and .md.
	Extensions []string
	// Renderer formats topic content. Defaults to Plain.
	Renderer Renderer
}

// TopicManager holds the topics of a file system
type TopicManager struct {
	fsys       fs.FS
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// New creates a manager reading topics from fsys with default options
func New(fsys fs.FS) *TopicManager {
	return NewWithOptions(fsys, Options{})
}

// NewWithOptions creates a manager reading topics from fsys
func NewWithOptions(fsys fs.FS, opts Options) *TopicManager {
	tm := &TopicManager{
		fsys:       fsys,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = Plain
	}
	return tm
}

// Scan loads every topic file below the root of the file system. Files in
// subdirectories are topics too, named after their base name.
func (tm *TopicManager) Scan() error {
	if tm.fsys == nil {
		return nil
	}
	return fs.WalkDir(tm.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ext := path.Ext(p)
		if !tm.accepts(ext) {
			return nil
		}
		data, err := fs.ReadFile(tm.fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), ext)
		tm.topics[name] = &Topic{
			Name:     name,
			Title:    title(string(data)),
			FilePath: p,
			Content:  string(data),
		}
		return nil
	})
}

func (tm *TopicManager) accepts(ext string) bool {
	for _, e := range tm.extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// title is the first non-empty line without markdown heading marks
func title(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
		if line != "" {
			return line
		}
	}
	return ""
}

// GetTopic looks a topic up by name. Flag-style names such as --color
// resolve to the option topic option-color.
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	if t, ok := tm.topics[name]; ok {
		return t, true
	}
	t, ok := tm.topics[optionPrefix+name]
	return t, ok
}

// ListTopics returns the sorted topic names
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats a topic with the configured renderer
func (tm *TopicManager) Render(topic *Topic) string {
	return tm.renderer.Render(topic.Content, path.Ext(topic.FilePath))
}

// WriteIndex lists the topics, general ones with their titles first, then
// the option topics as flags
func (tm *TopicManager) WriteIndex(w io.Writer, appName string) {
	names := tm.ListTopics()
	if len(names) == 0 {
		_, _ = fmt.Fprintln(w, "No help topics available.")
		return
	}

	var general, options []*Topic
	for _, name := range names {
		if t := tm.topics[name]; t.IsOption() {
			options = append(options, t)
		} else {
			general = append(general, t)
		}
	}

	_, _ = fmt.Fprintln(w, "Available help topics:")
	if len(general) > 0 {
		_, _ = fmt.Fprintln(w, "\nGeneral topics:")
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, t := range general {
			_, _ = fmt.Fprintf(tw, "  %s\t%s\n", t.Name, t.Title)
		}
		_ = tw.Flush()
	}
	if len(options) > 0 {
		_, _ = fmt.Fprintln(w, "\nOption topics:")
		for _, t := range options {
			_, _ = fmt.Fprintf(w, "  --%s\n", strings.TrimPrefix(t.Name, optionPrefix))
		}
	}
	_, _ = fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", appName)
}

// Initialize installs topic help on root with default options
func Initialize(root *cobra.Command, fsys fs.FS) (*TopicManager, error) {
	return InitializeWithOptions(root, fsys, Options{})
}

// InitializeWithOptions scans fsys and replaces the help command of root
// with one that serves topics as well as command help
func InitializeWithOptions(root *cobra.Command, fsys fs.FS, opts Options) (*TopicManager, error) {
	tm := NewWithOptions(fsys, opts)
	if err := tm.Scan(); err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}

	commandHelp := root.HelpFunc()
	name := root.Name()
	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: fmt.Sprintf("Help shows the help of a command or a topic.\n\n"+
			"  %s help <command>\n  %s help <topic>\n  %s help %s", name, name, name, indexArg),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return tm.completions(root), cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			tm.help(cmd.OutOrStdout(), root, commandHelp, args)
		},
	}

	if existing, _, err := root.Find([]string{"help"}); err == nil && existing != root && existing.Name() == "help" {
		root.RemoveCommand(existing)
	}
	root.SetHelpCommand(helpCmd)
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if t, ok := tm.GetTopic(args[0]); ok {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), tm.Render(t))
				return
			}
		}
		commandHelp(cmd, args)
	})

	return tm, nil
}

func (tm *TopicManager) help(w io.Writer, root *cobra.Command, commandHelp func(*cobra.Command, []string), args []string) {
	switch {
	case len(args) == 0:
		commandHelp(root, nil)
		return
	case args[0] == indexArg:
		tm.WriteIndex(w, root.Name())
		return
	}

	if t, ok := tm.GetTopic(args[0]); ok {
		_, _ = fmt.Fprint(w, tm.Render(t))
		return
	}
	if target, _, err := root.Find(args); err == nil && target != root {
		commandHelp(target, nil)
		return
	}
	commandHelp(root, args)
}

func (tm *TopicManager) completions(root *cobra.Command) []string {
	out := []string{indexArg}
	for _, c := range root.Commands() {
		if !c.Hidden {
			out = append(out, c.Name())
		}
	}
	return append(out, tm.ListTopics()...)
}
