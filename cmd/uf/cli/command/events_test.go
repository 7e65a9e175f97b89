package command

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uf-cli/uf/internal/bus"
)

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	orig := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func Test_EventBus_notificationsReachStderr(t *testing.T) {
	out := captureStderr(t, func() {
		SetupEventBus(false)
		bus.Notify("something worth mentioning")
		ShutdownEventBus()
	})

	assert.Contains(t, out, "something worth mentioning")
}

func Test_EventBus_quietDropsNotifications(t *testing.T) {
	out := captureStderr(t, func() {
		SetupEventBus(true)
		bus.Notify("should not be seen")
		ShutdownEventBus()
	})

	assert.Empty(t, out)
}

func Test_ShutdownEventBus_isIdempotent(t *testing.T) {
	SetupEventBus(false)
	ShutdownEventBus()
	ShutdownEventBus()

	// publishing after shutdown is a silent no-op
	bus.Notify("into the void")
}
