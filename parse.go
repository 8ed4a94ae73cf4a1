package cliutil

import (
	"context"
	"os"
	"strings"

	"github.com/jacobrgreen/cliutil/internal/cmdpath"
	"github.com/jacobrgreen/cliutil/internal/ctxlog"
	"github.com/jacobrgreen/cliutil/internal/suggest"
)

// scope is one command on the dispatch chain together with its path.
type scope struct {
	cmd  *Command
	path *cmdpath.Path
}

// parseState tracks a single Run invocation.
type parseState struct {
	app           *App
	chain         []scope
	helpWanted    bool
	versionWanted bool
}

// run walks the arguments against the command tree. Dispatching into a
// subcommand switches the current scope; the remaining arguments are
// parsed against it, exactly as if the subcommand were its own
// application.
func (s *parseState) run(ctx context.Context, args []string) error {
	logger := ctxlog.FromContext(ctx)

	cmd := s.app.root
	path := cmdpath.New(cmd.Name)
	s.chain = append(s.chain, scope{cmd: cmd, path: path})

	logger.Debug("parsing command line", "app", cmd.Name, "args", args)

	var positionals []string
	noMoreFlags := false

	i := 0
	for i < len(args) {
		arg := args[i]
		i++

		switch {
		case noMoreFlags:
			positionals = append(positionals, arg)

		case arg == "--":
			noMoreFlags = true

		// long name (--example)
		case strings.HasPrefix(arg, "--"):
			name, value, hasValue := strings.Cut(arg[2:], "=")
			if !hasValue {
				if !s.app.disableHelp && name == "help" {
					s.helpWanted = true
					continue
				}
				if len(s.chain) == 1 && !s.app.disableVersion && name == "version" {
					s.versionWanted = true
					continue
				}
				if flag := findFlagLong(cmd.Flags, name); flag != nil {
					flag.Value.mark()
					continue
				}
			}
			if param := findParamLong(cmd.Parameters, name); param != nil {
				if !hasValue {
					if i >= len(args) {
						return s.usageError(ErrExpectedValue, arg, path, "")
					}
					value = args[i]
					i++
				}
				if err := s.assign(param, value, path); err != nil {
					return err
				}
				continue
			}
			kind := ErrUnknownArgument
			if hasValue {
				kind = ErrUnexpectedParameter
			}
			return s.usageError(kind, arg, path, s.suggestLong(cmd, name, len(s.chain) == 1))

		// short name (-e)
		case strings.HasPrefix(arg, "-") && arg != "-":
			name, value, hasValue := strings.Cut(arg[1:], "=")
			if !hasValue {
				if !s.app.disableHelp && name == "h" {
					s.helpWanted = true
					continue
				}
				if flag := findFlagShort(cmd.Flags, name); flag != nil {
					flag.Value.mark()
					continue
				}
			}
			if param := findParamShort(cmd.Parameters, name); param != nil {
				if !hasValue {
					if i >= len(args) {
						return s.usageError(ErrExpectedValue, arg, path, "")
					}
					value = args[i]
					i++
				}
				if err := s.assign(param, value, path); err != nil {
					return err
				}
				continue
			}
			return s.usageError(ErrUnknownArgument, arg, path, s.suggestShort(cmd, name))

		// bare word: builtin, subcommand or positional
		default:
			if len(positionals) == 0 {
				if !s.app.disableHelp && arg == "help" {
					return s.helpCommand(cmd, path, args[i:])
				}
				if len(s.chain) == 1 && !s.app.disableVersion && arg == "version" {
					return s.versionCommand(args[i:])
				}
				if sub := findCommand(cmd.Commands, arg); sub != nil {
					cmd = sub
					path = path.Child(sub.Name)
					s.chain = append(s.chain, scope{cmd: cmd, path: path})
					logger.Debug("descending into subcommand", "command", path.String())
					continue
				}
			}
			if len(cmd.Arguments) > 0 {
				positionals = append(positionals, arg)
				continue
			}
			return s.usageError(ErrUnknownCommand, arg, path, s.suggestCommand(cmd, arg, len(s.chain) == 1))
		}
	}

	// The help and version builtins win over everything else, so a
	// command line that is otherwise incomplete still gets help.
	if s.helpWanted {
		s.printHelp(cmd, path)
		return nil
	}
	if s.versionWanted {
		s.printVersion()
		return nil
	}

	for _, sc := range s.chain {
		if err := s.finishScope(sc); err != nil {
			return err
		}
	}
	if err := s.bindArguments(cmd, path, positionals); err != nil {
		return err
	}

	if cmd.Run == nil {
		return s.usageError(ErrExpectedSubcommand, "", path, "")
	}

	logger.Debug("dispatching", "command", path.String())
	return cmd.Run(ctx)
}

// assign validates a parameter value against its type and stores it.
func (s *parseState) assign(param *Parameter, value string, path *cmdpath.Path) error {
	if err := param.Type.check(value); err != nil {
		return &UsageError{
			Kind:    ErrInvalidValue,
			Token:   param.displayName(),
			Command: s.errPath(path),
			Detail:  err.Error(),
		}
	}
	param.Value.setValue(value)
	return nil
}

// finishScope resolves what the command line left unset: environment
// variables, then defaults, then the required checks. It runs for every
// scope on the dispatch chain, parents first.
func (s *parseState) finishScope(sc scope) error {
	for _, flag := range sc.cmd.Flags {
		if flag.Value.IsSet() || flag.EnvVar == "" {
			continue
		}
		if value, ok := os.LookupEnv(flag.EnvVar); ok && envTrue(value) {
			flag.Value.mark()
		}
	}

	for _, param := range sc.cmd.Parameters {
		if param.Value.IsSet() {
			continue
		}
		if param.EnvVar != "" {
			if value, ok := os.LookupEnv(param.EnvVar); ok {
				if err := s.assign(param, value, sc.path); err != nil {
					return err
				}
				continue
			}
		}
		if param.Default != "" {
			param.Value.setValue(param.Default)
			continue
		}
		if param.Required {
			return &UsageError{
				Kind:    ErrMissingParameter,
				Token:   param.displayName(),
				Command: s.errPath(sc.path),
			}
		}
	}
	return nil
}

// bindArguments fills positional destinations in declaration order.
func (s *parseState) bindArguments(cmd *Command, path *cmdpath.Path, positionals []string) error {
	idx := 0
	for _, arg := range cmd.Arguments {
		if arg.Variadic {
			if arg.Required && idx >= len(positionals) {
				return &UsageError{Kind: ErrExpectedArgument, Token: arg.Name, Command: s.errPath(path)}
			}
			for ; idx < len(positionals); idx++ {
				arg.Values.add(positionals[idx])
			}
			continue
		}
		if idx < len(positionals) {
			arg.Value.setValue(positionals[idx])
			idx++
			continue
		}
		if arg.Required {
			return &UsageError{Kind: ErrExpectedArgument, Token: arg.Name, Command: s.errPath(path)}
		}
	}
	if idx < len(positionals) {
		return &UsageError{Kind: ErrUnexpectedArgument, Token: positionals[idx], Command: s.errPath(path)}
	}
	return nil
}

// helpCommand implements the `help [command...]` builtin.
func (s *parseState) helpCommand(cmd *Command, path *cmdpath.Path, rest []string) error {
	target, targetPath := cmd, path
	for _, name := range rest {
		sub := findCommand(target.Commands, name)
		if sub == nil {
			return s.usageError(ErrUnknownCommand, name, targetPath, s.suggestCommand(target, name, false))
		}
		target, targetPath = sub, targetPath.Child(sub.Name)
	}
	s.printHelp(target, targetPath)
	return nil
}

// versionCommand implements the `version` builtin.
func (s *parseState) versionCommand(rest []string) error {
	if len(rest) > 0 {
		return s.usageError(ErrUnexpectedArgument, rest[0], cmdpath.New(s.app.root.Name), "")
	}
	s.printVersion()
	return nil
}

func (s *parseState) usageError(kind error, token string, path *cmdpath.Path, suggestion string) error {
	return &UsageError{Kind: kind, Token: token, Command: s.errPath(path), Suggestion: suggestion}
}

// errPath omits the command path when the help builtins are disabled,
// so error output never advertises a help command that does not exist.
func (s *parseState) errPath(path *cmdpath.Path) []string {
	if s.app.disableHelp {
		return nil
	}
	return append([]string(nil), path.Segments...)
}

func (s *parseState) suggestLong(cmd *Command, name string, isRoot bool) string {
	var candidates []string
	for _, f := range cmd.Flags {
		candidates = append(candidates, f.Long)
	}
	for _, p := range cmd.Parameters {
		candidates = append(candidates, p.Long)
	}
	if !s.app.disableHelp {
		candidates = append(candidates, "help")
	}
	if isRoot && !s.app.disableVersion {
		candidates = append(candidates, "version")
	}
	if near := suggest.Near(name, candidates); near != "" {
		return "--" + near
	}
	return ""
}

func (s *parseState) suggestShort(cmd *Command, name string) string {
	var candidates []string
	for _, f := range cmd.Flags {
		candidates = append(candidates, f.Short)
	}
	for _, p := range cmd.Parameters {
		candidates = append(candidates, p.Short)
	}
	if near := suggest.Near(name, candidates); near != "" {
		return "-" + near
	}
	return ""
}

func (s *parseState) suggestCommand(cmd *Command, word string, isRoot bool) string {
	var candidates []string
	for _, sub := range cmd.Commands {
		candidates = append(candidates, sub.Name)
		candidates = append(candidates, sub.Aliases...)
	}
	if !s.app.disableHelp {
		candidates = append(candidates, "help")
	}
	if isRoot && !s.app.disableVersion {
		candidates = append(candidates, "version")
	}
	return suggest.Near(word, candidates)
}
