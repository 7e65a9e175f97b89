package bus

import (
	"fmt"

	"github.com/wagoodman/go-partybus"

	"github.com/uf-cli/uf/event"
)

// Notify publishes a message intended for presentation to the user on stderr.
func Notify(message string) {
	if len(message) == 0 {
		return
	}
	Publish(partybus.Event{
		Type:  event.CLINotification,
		Value: message,
	})
}

// Notifyf is a convenience wrapper around Notify with fmt.Sprintf semantics.
func Notifyf(format string, args ...interface{}) {
	Notify(fmt.Sprintf(format, args...))
}
