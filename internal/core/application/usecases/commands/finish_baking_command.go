package commands

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var ErrFinishBakingCommandIsNotConstructed = errors.New(
	"FinishBakingCommand must be created via NewFinishBakingCommand constructor",
)

// FinishBakingCommand takes every baking pizza out of the oven.
type FinishBakingCommand struct {
	guard guard.ConstructorGuard
}

func NewFinishBakingCommand() FinishBakingCommand {
	return FinishBakingCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c FinishBakingCommand) Validate() error {
	return c.guard.Validate(ErrFinishBakingCommandIsNotConstructed)
}
