//go:build !unix

package launcher

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/uf-cli/uf/uf"
)

// run starts the program as a child process with inherited stdio and waits
// for it to finish.
func run(argv0, program, path string) error {
	cmd := exec.Command(argv0, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return uf.LaunchError{Program: program, Err: err}
	}
	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("%s exited with an error: %w", program, err)
	}
	return nil
}
