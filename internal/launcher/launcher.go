// Package launcher starts the configured program with the target file as
// its only argument.
package launcher

import (
	"os/exec"

	"github.com/uf-cli/uf/internal/log"
	"github.com/uf-cli/uf/uf"
)

// Run invokes program with path as its sole argument. The program is
// resolved on PATH first so a missing program surfaces as a LaunchError
// before anything is executed. On unix the current process is replaced by
// the program; elsewhere the program runs as a child with inherited stdio.
func Run(program, path string) error {
	argv0, err := exec.LookPath(program)
	if err != nil {
		return uf.LaunchError{Program: program, Err: err}
	}

	log.Debugf("launching %s %s", argv0, path)
	return run(argv0, program, path)
}
