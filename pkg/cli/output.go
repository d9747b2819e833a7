package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

var (
	stdoutTTY = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	stderrTTY = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
)

func getColor(noColor bool, attributes ...color.Attribute) *color.Color {
	if noColor {
		c := color.New()
		c.DisableColor()
		return c
	}
	c := color.New(attributes...)
	c.EnableColor()
	return c
}

// outputColor colors command output unless --no-color is set or the app
// does not write to a terminal.
func outputColor(c *cli.Context, attributes ...color.Attribute) *color.Color {
	noColor := c.Bool("no-color") || c.App.Writer != os.Stdout || !stdoutTTY
	return getColor(noColor, attributes...)
}
