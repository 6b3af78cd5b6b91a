// Package appshell binds a run function to the real process: OS filesystem,
// standard streams, signals and exit code.
package appshell

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"prle/internal/app"
)

// RunFunc is the shape of app.RunContext.
type RunFunc func(ctx context.Context, env app.Env, argv []string) int

// Main runs fn under a context cancelled by SIGINT/SIGTERM and exits with its
// code. Without arguments the help text is shown.
func Main(fn RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"--help"}
	}
	env := app.Env{
		FS:     afero.NewOsFs(),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	code := exitCode(ctx, fn(ctx, env, argv))
	stop()
	os.Exit(code)
}

// exitCode reports a signal-interrupted run as cancelled even when fn
// finished cleanly.
func exitCode(ctx context.Context, code int) int {
	if ctx.Err() != nil && code == app.ExitOK {
		return app.ExitCancelled
	}
	return code
}
