package event

import "github.com/wagoodman/go-partybus"

const (
	typePrefix    = "uf"
	cliTypePrefix = typePrefix + "-cli"

	// CLINotification is a partybus event that occurs when auxiliary information is ready for presentation to stderr
	CLINotification partybus.EventType = cliTypePrefix + "-notification"
)
