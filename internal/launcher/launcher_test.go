package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uf-cli/uf/uf"
)

func Test_Run_missingProgram(t *testing.T) {
	err := Run("uf-test-program-that-does-not-exist", "/dev/null")
	require.Error(t, err)

	var launchErr uf.LaunchError
	require.ErrorAs(t, err, &launchErr)
	assert.Equal(t, "uf-test-program-that-does-not-exist", launchErr.Program)
	assert.Contains(t, launchErr.Error(), "failed to launch")
}
