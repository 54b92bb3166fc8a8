package commands

import (
	"context"
	"errors"

	"pizzeria/internal/pkg/errs"
)

// ErrNoOrderToBake is returned when no order is waiting in Created status.
// It is an expected outcome rather than a failure.
var ErrNoOrderToBake = errors.New("no order to bake")

type StartBakingCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewStartBakingCommandHandler(uowFactory OrderUoWFactory) StartBakingCommandHandler {
	return StartBakingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle bakes the first order in Created status.
func (h StartBakingCommandHandler) Handle(ctx context.Context, cmd StartBakingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	o, err := ordersRepo.GetFirstInCreatedStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderToBake
	}
	if err != nil {
		return err
	}

	if err = o.Bake(); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
