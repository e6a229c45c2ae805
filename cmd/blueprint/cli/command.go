// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// Command is a node in the command tree. A node either groups
// Subcommands or does work through Run.
type Command struct {
	Name    string
	Summary string

	// Description replaces Summary at the top of the command's own help.
	Description string

	// Usage overrides the synthesized usage line.
	Usage string

	Examples []Example

	// Flags builds a fresh flag set. It is called once per parse and
	// once per help rendering, so it must not hold parse state.
	Flags func() *pflag.FlagSet

	Subcommands []*Command

	// Run receives the positional arguments left after flag parsing.
	Run func(args []string) error

	parent *Command
}

// Example is one usage example in help output.
type Example struct {
	Description string
	Command     string
}

// Execute dispatches args through the tree. Help, whether asked for or
// printed because a command name is missing, goes to help.
func (c *Command) Execute(args []string, help io.Writer) error {
	if len(args) > 0 && isHelpFlag(args[0]) {
		c.PrintHelp(help)
		return nil
	}
	if len(c.Subcommands) > 0 {
		return c.dispatch(args, help)
	}
	return c.run(args, help)
}

func (c *Command) dispatch(args []string, help io.Writer) error {
	if len(args) == 0 {
		c.PrintHelp(help)
		return fmt.Errorf("a command is required\n\nRun '%s --help' for usage.", c.path())
	}
	name := args[0]
	for _, sub := range c.Subcommands {
		if sub.Name == name {
			sub.parent = c
			return sub.Execute(args[1:], help)
		}
	}
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("%s takes a command before any flag (got %q)\n\nRun '%s --help' for usage.",
			c.path(), name, c.path())
	}
	if suggestion := suggestCommand(name, c.Subcommands); suggestion != "" {
		return fmt.Errorf("unknown command %q (did you mean %q?)\n\nRun '%s --help' for usage.",
			name, suggestion, c.path())
	}
	return fmt.Errorf("unknown command %q\n\nRun '%s --help' for usage.", name, c.path())
}

func (c *Command) run(args []string, help io.Writer) error {
	if c.Run == nil {
		return fmt.Errorf("%s has nothing to run", c.path())
	}
	if c.Flags == nil {
		return c.Run(args)
	}

	flagSet := c.Flags()
	flagSet.SetOutput(io.Discard)
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			c.PrintHelp(help)
			return nil
		}
		message := err.Error()
		if strings.Contains(message, "unknown flag") {
			// Parse has already consumed flagSet, so look up the
			// suggestion in a fresh one.
			if suggestion := suggestFlag(args, c.Flags()); suggestion != "" {
				message += " (did you mean " + suggestion + "?)"
			}
		}
		return fmt.Errorf("%s\n\nRun '%s --help' for usage.", message, c.path())
	}
	return c.Run(flagSet.Args())
}

// PrintHelp writes the command's help to w.
func (c *Command) PrintHelp(w io.Writer) {
	switch {
	case c.Description != "":
		fmt.Fprintf(w, "%s\n\n", c.Description)
	case c.Summary != "":
		fmt.Fprintf(w, "%s\n\n", c.Summary)
	}

	usage := c.Usage
	if usage == "" {
		if len(c.Subcommands) > 0 {
			usage = c.path() + " <command> [flags]"
		} else {
			usage = c.path() + " [flags]"
		}
	}
	fmt.Fprintf(w, "Usage:\n  %s\n", usage)

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nCommands:\n")
		table := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, sub := range c.Subcommands {
			fmt.Fprintf(table, "  %s\t%s\n", sub.Name, sub.Summary)
		}
		table.Flush()
	}

	if c.Flags != nil {
		var defaults strings.Builder
		flagSet := c.Flags()
		flagSet.SetOutput(&defaults)
		flagSet.PrintDefaults()
		if defaults.Len() > 0 {
			fmt.Fprintf(w, "\nFlags:\n%s", defaults.String())
		}
	}

	if len(c.Examples) > 0 {
		fmt.Fprintf(w, "\nExamples:\n")
		for _, example := range c.Examples {
			if example.Description != "" {
				fmt.Fprintf(w, "  # %s\n", example.Description)
			}
			fmt.Fprintf(w, "  %s\n", example.Command)
			if example.Description != "" {
				fmt.Fprintln(w)
			}
		}
	}

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nRun '%s <command> --help' for more information on a command.\n", c.path())
	}
}

// path is the command as typed, e.g. "blueprint decode".
func (c *Command) path() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.path() + " " + c.Name
}

func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}
