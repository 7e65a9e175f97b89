//go:build unix

package launcher

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/uf-cli/uf/uf"
)

// run replaces the current process with the program, so uf's exit status is
// the program's own. It only returns on failure.
func run(argv0, program, path string) error {
	if err := unix.Exec(argv0, []string{program, path}, os.Environ()); err != nil {
		return uf.LaunchError{Program: program, Err: err}
	}
	return nil
}
