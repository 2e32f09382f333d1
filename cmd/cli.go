// Package cmd implements the command line interface for gqldoc.
package cmd

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type option func(*CommandLine)

// WithFS configures the underlying afero.Fs used to read schemas and config
// files and to write the generated site.
//
func WithFS(fs afero.Fs) option {
	return func(c *CommandLine) {
		c.fs = fs
	}
}

// WithOutput redirects command output, help and usage included.
func WithOutput(w io.Writer) option {
	return func(c *CommandLine) {
		c.out = w
	}
}

// CommandLine is the gqldoc command tree.
type CommandLine struct {
	fs  afero.Fs
	out io.Writer

	cmds []cmder
}

type cmder interface {
	getCommand() *cobra.Command
}

type baseCmd struct {
	*cobra.Command
}

func (cmd *baseCmd) getCommand() *cobra.Command { return cmd.Command }

func (c *CommandLine) addCommand(cmds ...cmder) *CommandLine {
	c.cmds = append(c.cmds, cmds...)
	return c
}

func (c *CommandLine) build(cmds ...cmder) *cobra.Command {
	cmd := c.newRootCmd(c.fs)
	for _, cmdr := range append(cmds, c.cmds...) {
		cmd.AddCommand(cmdr.getCommand())
	}

	if c.out != nil {
		cmd.SetOut(c.out)
		cmd.SetErr(c.out)
	}
	return cmd.Command
}

// NewCLI returns a CommandLine implementation.
func NewCLI(opts ...option) (c *CommandLine) {
	c = new(CommandLine)

	for _, opt := range opts {
		opt(c)
	}

	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}

	return
}

func wrapPanic(err error, stack []byte) error {
	return fmt.Errorf("gqldoc: recovered from unexpected panic: %w\n\n%s", err, stack)
}

// Run executes gqldoc with the given os.Args style arguments.
func (c *CommandLine) Run(args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()

			rerr, ok := r.(error)
			if ok {
				err = wrapPanic(rerr, stack)
				return
			}

			err = wrapPanic(fmt.Errorf("%#v", r), stack)
		}
	}()

	cmd := c.build(c.newVersionCmd(), c.newInitCmd(c.fs))

	cmd.SetArgs(args[1:])
	return cmd.Execute()
}
