// Package cli implements the cmath command-line interface.
//
// Every command reads a scene file (see package scene) and prints the result
// of one kernel operation. --verbose routes the kernel's debug records to
// stderr through charmbracelet/log.
package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/cmath"
)

const appName = "cmath"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at level and installs its logger as the
// kernel logger.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}
	cmath.SetLogger(slog.New(c.Logger))
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "cmath runs geometry and alignment operations on rectangle scenes",
		SilenceUsage: true,
	}

	root.AddCommand(c.fitCommand())
	root.AddCommand(c.packCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.measureCommand())
	root.AddCommand(c.snapCommand())
	root.AddCommand(c.hitCommand())
	return root
}
