package commands_test

import (
	"errors"
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), pizza.NewBuilder(pizza.Large).Spinach(true).Build(), status)
	require.NoError(t, err)
	return o
}

func TestStartBakingCommand_Validate(t *testing.T) {
	require.NoError(t, commands.NewStartBakingCommand().Validate())
	require.ErrorIs(t, commands.StartBakingCommand{}.Validate(), commands.ErrStartBakingCommandIsNotConstructed)
}

func TestStartBakingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	waiting := newOrderInStatus(t, order.Created)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetFirstInCreatedStatus", ctx).Return(waiting, nil).Once(),
		repo.On("Update", ctx, waiting).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartBakingCommandHandler(factory)
	err := h.Handle(ctx, commands.NewStartBakingCommand())

	require.NoError(t, err)
	assert.Equal(t, order.Baking, waiting.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestStartBakingCommandHandler_Handle_NoOrder(t *testing.T) {
	ctx := t.Context()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("GetFirstInCreatedStatus", ctx).
		Return(nil, errs.NewObjectNotFoundError("order", "first in created status")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartBakingCommandHandler(factory)
	err := h.Handle(ctx, commands.NewStartBakingCommand())

	require.ErrorIs(t, err, commands.ErrNoOrderToBake)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestStartBakingCommandHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("GetFirstInCreatedStatus", ctx).Return(nil, errors.New("connection lost")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartBakingCommandHandler(factory)
	err := h.Handle(ctx, commands.NewStartBakingCommand())

	require.EqualError(t, err, "connection lost")
	assert.NotErrorIs(t, err, commands.ErrNoOrderToBake)
}

func TestStartBakingCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	waiting := newOrderInStatus(t, order.Created)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("GetFirstInCreatedStatus", ctx).Return(waiting, nil).Once()
	repo.On("Update", ctx, waiting).Return(errors.New("update error")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartBakingCommandHandler(factory)
	err := h.Handle(ctx, commands.NewStartBakingCommand())

	require.EqualError(t, err, "update error")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
