package cliutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"github.com/jacobrgreen/cliutil/internal/cmdpath"
	"github.com/jacobrgreen/cliutil/internal/textutil"
)

// nameWidth is the column where descriptions start, including the
// two-space indent of each entry.
const nameWidth = 20

// Help writes the help text for the command at path, or for the
// application itself when no path is given.
func (a *App) Help(w io.Writer, path ...string) error {
	target := a.root
	targetPath := cmdpath.New(a.root.Name)
	for _, name := range path {
		sub := findCommand(target.Commands, name)
		if sub == nil {
			return &UsageError{Kind: ErrUnknownCommand, Token: name, Command: targetPath.Segments}
		}
		target, targetPath = sub, targetPath.Child(sub.Name)
	}
	renderHelp(w, a, target, targetPath)
	return nil
}

// CommandPaths lists every command in the tree in declaration order,
// as paths relative to the application. The first entry is the empty
// path of the application itself.
func (a *App) CommandPaths() [][]string {
	var paths [][]string
	var walk func(prefix []string, cmd *Command)
	walk = func(prefix []string, cmd *Command) {
		paths = append(paths, prefix)
		for _, sub := range cmd.Commands {
			child := make([]string, 0, len(prefix)+1)
			child = append(child, prefix...)
			child = append(child, sub.Name)
			walk(child, sub)
		}
	}
	walk([]string{}, a.root)
	return paths
}

func (s *parseState) printHelp(cmd *Command, path *cmdpath.Path) {
	renderHelp(s.app.output, s.app, cmd, path)
}

// helpRow is one aligned name/description entry.
type helpRow struct {
	name string
	desc string
}

// helpRenderer lays out help text for one command.
type helpRenderer struct {
	w      io.Writer
	width  int
	styled bool
}

func renderHelp(w io.Writer, app *App, cmd *Command, path *cmdpath.Path) {
	r := &helpRenderer{
		w:      w,
		width:  textutil.TerminalWidth(w),
		styled: textutil.IsTerminal(w),
	}
	isRoot := len(path.Segments) <= 1

	fmt.Fprintln(r.w, r.bold(path.String()))
	if cmd.Description != "" {
		for _, line := range textutil.Wrap(cmd.Description, r.width) {
			fmt.Fprintln(r.w, line)
		}
	}
	fmt.Fprintln(r.w)

	r.usage(app, cmd, path)
	r.section("Arguments:", argumentRows(cmd))
	r.section("Flags:", flagRows(app, cmd, isRoot))
	r.section("Parameters:", parameterRows(cmd))
	r.section("Subcommands:", subcommandRows(app, cmd, isRoot))
}

func (r *helpRenderer) usage(app *App, cmd *Command, path *cmdpath.Path) {
	line := path.String()
	if len(cmd.Flags) > 0 || len(cmd.Parameters) > 0 || !app.disableHelp {
		line += " [flags]"
	}
	for _, arg := range cmd.Arguments {
		token := "<" + arg.Name + ">"
		if arg.Variadic {
			token += "..."
		}
		if !arg.Required {
			token = "[" + token + "]"
		}
		line += " " + token
	}
	if len(cmd.Commands) > 0 {
		token := "<subcommand>"
		if cmd.Run != nil {
			token = "[" + token + "]"
		}
		line += " " + token
	}

	fmt.Fprintln(r.w, r.bold("Usage:"))
	fmt.Fprintln(r.w, "  "+line)
	fmt.Fprintln(r.w)
}

func (r *helpRenderer) section(title string, rows []helpRow) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintln(r.w, r.bold(title))
	for _, row := range rows {
		r.row(row)
	}
	fmt.Fprintln(r.w)
}

// row prints a two-column entry. Names that overflow their column push
// the description onto the following lines instead of truncating it.
func (r *helpRenderer) row(row helpRow) {
	cell := "  " + row.name
	if row.desc == "" {
		fmt.Fprintln(r.w, r.accent(cell))
		return
	}

	indent := strings.Repeat(" ", nameWidth)
	lines := textutil.Wrap(row.desc, r.width-nameWidth)

	if len(cell) >= nameWidth {
		fmt.Fprintln(r.w, r.accent(cell))
		for _, line := range lines {
			fmt.Fprintln(r.w, indent+line)
		}
		return
	}

	fmt.Fprintln(r.w, r.accent(cell)+strings.Repeat(" ", nameWidth-len(cell))+lines[0])
	for _, line := range lines[1:] {
		fmt.Fprintln(r.w, indent+line)
	}
}

func (r *helpRenderer) bold(s string) string {
	if !r.styled {
		return s
	}
	return color.Bold.Sprint(s)
}

func (r *helpRenderer) accent(s string) string {
	if !r.styled {
		return s
	}
	return color.Cyan.Sprint(s)
}

func argumentRows(cmd *Command) []helpRow {
	rows := make([]helpRow, 0, len(cmd.Arguments))
	for _, arg := range cmd.Arguments {
		rows = append(rows, helpRow{name: arg.Name, desc: arg.Description})
	}
	return rows
}

func flagRows(app *App, cmd *Command, isRoot bool) []helpRow {
	rows := make([]helpRow, 0, len(cmd.Flags)+2)
	for _, f := range cmd.Flags {
		rows = append(rows, helpRow{name: argumentName(f.Short, f.Long, ""), desc: f.Description})
	}
	if !app.disableHelp {
		rows = append(rows, helpRow{name: "-h, --help", desc: "Print help and exit."})
	}
	if isRoot && !app.disableVersion {
		rows = append(rows, helpRow{name: "--version", desc: "Print version and exit."})
	}
	return rows
}

func parameterRows(cmd *Command) []helpRow {
	rows := make([]helpRow, 0, len(cmd.Parameters))
	for _, p := range cmd.Parameters {
		desc := p.Description
		switch {
		case p.Required:
			desc = appendNote(desc, "(required)")
		case p.Default != "":
			desc = appendNote(desc, fmt.Sprintf("(default: %s)", p.Default))
		}
		rows = append(rows, helpRow{name: argumentName(p.Short, p.Long, p.placeholder()), desc: desc})
	}
	return rows
}

func subcommandRows(app *App, cmd *Command, isRoot bool) []helpRow {
	// Builtins are advertised only where real subcommands exist; the
	// help word still works everywhere.
	if len(cmd.Commands) == 0 {
		return nil
	}
	rows := make([]helpRow, 0, len(cmd.Commands)+2)
	for _, sub := range cmd.Commands {
		name := sub.Name
		if len(sub.Aliases) > 0 {
			name += " (" + strings.Join(sub.Aliases, ", ") + ")"
		}
		rows = append(rows, helpRow{name: name, desc: sub.Description})
	}
	if !app.disableHelp {
		rows = append(rows, helpRow{name: "help", desc: "Print help for a command."})
	}
	if isRoot && !app.disableVersion {
		rows = append(rows, helpRow{name: "version", desc: "Print version information."})
	}
	return rows
}

// argumentName renders the name cell for a flag or parameter,
// e.g. `-p, --param=<value>`.
func argumentName(short, long, placeholder string) string {
	var b strings.Builder
	if short != "" {
		b.WriteString("-" + short)
		if long != "" {
			b.WriteString(", ")
		}
	}
	if long != "" {
		b.WriteString("--" + long)
	}
	if placeholder != "" {
		if long != "" {
			b.WriteString("=<" + placeholder + ">")
		} else {
			b.WriteString(" <" + placeholder + ">")
		}
	}
	return b.String()
}

func appendNote(desc, note string) string {
	if desc == "" {
		return note
	}
	return desc + " " + note
}
