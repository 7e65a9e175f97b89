package command

import (
	"fmt"
	"os"

	"github.com/wagoodman/go-partybus"

	"github.com/uf-cli/uf/event"
	"github.com/uf-cli/uf/internal/bus"
)

var (
	eventBus   *partybus.Bus
	eventsDone chan struct{}
)

// SetupEventBus installs the process-wide event publisher and starts
// draining notification events to stderr. Quiet mode still drains the bus,
// it just drops the messages.
func SetupEventBus(quiet bool) {
	eventBus = partybus.NewBus()
	bus.Set(eventBus)

	sub := eventBus.Subscribe()
	eventsDone = make(chan struct{})
	go func() {
		defer close(eventsDone)
		for e := range sub.Events() {
			if e.Type != event.CLINotification || quiet {
				continue
			}
			if message, ok := e.Value.(string); ok {
				fmt.Fprintln(os.Stderr, message)
			}
		}
	}()
}

// ShutdownEventBus closes the bus and waits until every published event has
// been handled. Safe to call more than once; publishing afterwards is a
// no-op.
func ShutdownEventBus() {
	if eventBus == nil {
		return
	}
	bus.Set(nil)
	eventBus.Close()
	<-eventsDone
	eventBus = nil
}
