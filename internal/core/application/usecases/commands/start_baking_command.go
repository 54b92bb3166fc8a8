package commands

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var ErrStartBakingCommandIsNotConstructed = errors.New(
	"StartBakingCommand must be created via NewStartBakingCommand constructor",
)

// StartBakingCommand moves the oldest waiting order into the oven.
type StartBakingCommand struct {
	guard guard.ConstructorGuard
}

func NewStartBakingCommand() StartBakingCommand {
	return StartBakingCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c StartBakingCommand) Validate() error {
	return c.guard.Validate(ErrStartBakingCommandIsNotConstructed)
}
