package main

import (
	"errors"
	"os"
	"os/exec"
	"runtime"

	"github.com/uf-cli/uf/cmd/uf/cli"
	"github.com/uf-cli/uf/internal"
)

var (
	version   = internal.NotProvided
	gitCommit = internal.NotProvided
	buildDate = internal.NotProvided
)

func main() {
	internal.SetBuildInfo(version, gitCommit, buildDate, runtime.Version())

	app := cli.Application()

	err := app.Execute()
	cli.Shutdown()
	if err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode propagates the child's exit status when the launcher ran the
// program as a subprocess (on unix the program replaces this process and
// carries its own status); every other failure exits 1.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}
