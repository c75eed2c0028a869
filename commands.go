package clargs

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/mfridman/clargs/pkg/suggest"
	"github.com/mfridman/clargs/pkg/textutil"
)

// Command is a named subcommand that can be routed to by [Commands].
type Command struct {
	// Name is a single word identifying the command on the command line.
	Name string

	// ShortHelp is a brief description of the command's purpose, shown by [Commands.Usage].
	ShortHelp string

	// Exec runs the command with the arguments that followed its name. It usually creates its own
	// [Parser] to parse them.
	Exec func(args []string) error
}

// Commands routes a subcommand name to the matching [Command]. Its Handle method can be registered
// directly as the subcommand handler:
//
//	cmds := clargs.Commands{
//	    {Name: "add", ShortHelp: "add a task", Exec: runAdd},
//	    {Name: "list", ShortHelp: "list tasks", Exec: runList},
//	}
//	err := p.SetSubcommandHandler(cmds.Handle)
type Commands []*Command

// Handle runs the command called name with args. Names are matched case-insensitively. An unknown
// name fails with [ErrUnknownCommand], with similar command names as suggestions.
func (c Commands) Handle(name string, args []string) error {
	cmd := c.find(name)
	if cmd == nil {
		return c.unknownCommand(name)
	}
	if cmd.Exec == nil {
		return newError(ErrConfiguration, nil, "command %q has no execution function", cmd.Name)
	}
	return cmd.Exec(args)
}

// find searches for a command by name. Returns nil if no command with the given name exists.
func (c Commands) find(name string) *Command {
	for _, cmd := range c {
		if strings.EqualFold(cmd.Name, name) {
			return cmd
		}
	}
	return nil
}

func (c Commands) unknownCommand(name string) error {
	known := make([]string, 0, len(c))
	for _, cmd := range c {
		known = append(known, cmd.Name)
	}
	suggestions := suggest.FindSimilar(name, known, maxSuggestions)
	if len(suggestions) > 0 {
		return newError(ErrUnknownCommand, suggestions, "unknown command %q. Did you mean one of these?\n\t%s",
			name,
			strings.Join(suggestions, "\n\t"))
	}
	return newError(ErrUnknownCommand, nil, "unknown command %q", name)
}

// Usage renders the "Available Commands:" help section, commands sorted by name.
func (c Commands) Usage() string {
	if len(c) == 0 {
		return ""
	}

	sorted := slices.Clone(c)
	slices.SortFunc(sorted, func(a, b *Command) int {
		return cmp.Compare(a.Name, b.Name)
	})

	maxLen := 0
	for _, cmd := range sorted {
		maxLen = max(maxLen, len(cmd.Name))
	}
	nameWidth := maxLen + 4
	wrapWidth := helpWidth - nameWidth

	var b strings.Builder
	b.WriteString("Available Commands:\n")
	for _, cmd := range sorted {
		lines := textutil.Wrap(cmd.ShortHelp, wrapWidth)
		if len(lines) == 0 {
			fmt.Fprintf(&b, "  %s\n", cmd.Name)
			continue
		}
		fmt.Fprintf(&b, "  %s%s\n", textutil.PadRight(cmd.Name, nameWidth), lines[0])

		indentPadding := strings.Repeat(" ", nameWidth+2)
		for _, line := range lines[1:] {
			fmt.Fprintf(&b, "%s%s\n", indentPadding, line)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
