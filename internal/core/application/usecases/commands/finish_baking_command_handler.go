package commands

import (
	"context"
)

type FinishBakingCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewFinishBakingCommandHandler(uowFactory OrderUoWFactory) FinishBakingCommandHandler {
	return FinishBakingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle completes all orders in Baking status within one transaction.
// A failure on any order rolls back the whole batch.
func (h FinishBakingCommandHandler) Handle(ctx context.Context, cmd FinishBakingCommand) error {
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

	orders, err := ordersRepo.GetAllInBakingStatus(ctx)
	if err != nil {
		return err
	}

	for _, o := range orders {
		if err = o.Complete(); err != nil {
			return err
		}

		if err = ordersRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
