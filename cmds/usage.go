package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

var UsageWriter io.Writer = os.Stderr

func (p *Executor) PrintUsage() {
	p.printCommands(UsageWriter, p.commands, 0)
}

func (p *Executor) printCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share a Command value, print each once
	seen := make(map[*Command]bool)
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	indent := strings.Repeat("  ", depth)
	for _, name := range names {
		command := commands[name]
		if command == nil || seen[command] {
			continue
		}
		if slices.Contains(command.Aliases, name) {
			// printed under the primary name
			continue
		}
		seen[command] = true

		line := indent + name
		for _, arg := range command.ArgNames() {
			line += " " + arg
		}
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)

		if len(command.Subs) > 0 {
			p.printCommands(w, command.Subs, depth+1)
		}
	}
}
