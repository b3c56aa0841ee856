// Package cli implements the gridfile command-line interface.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/bjaus/gridfile/internal/ui"
)

// App owns CLI wiring and execution configuration.
type App struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Version string
}

// NewApp constructs an App bound to the process streams.
func NewApp() *App {
	return &App{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Version: "dev",
	}
}

// Execute runs the CLI with the provided args. Errors are printed to
// Stderr before being returned.
func (a *App) Execute(ctx context.Context, args []string) error {
	e := &env{app: a}
	root := newRootCmd(e)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		status := e.status
		if status == nil {
			status = ui.New(a.Stderr, ui.ColorAuto)
		}
		status.Error("%v", err)
		return err
	}
	return nil
}
