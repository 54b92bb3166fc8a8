package commands_test

import (
	"errors"
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFinishBakingCommand_Validate(t *testing.T) {
	require.NoError(t, commands.NewFinishBakingCommand().Validate())
	require.ErrorIs(t, commands.FinishBakingCommand{}.Validate(), commands.ErrFinishBakingCommandIsNotConstructed)
}

func TestFinishBakingCommandHandler_Handle_CompletesAllBaking(t *testing.T) {
	ctx := t.Context()
	first := newOrderInStatus(t, order.Baking)
	second := newOrderInStatus(t, order.Baking)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("GetAllInBakingStatus", ctx).Return([]*order.Order{first, second}, nil).Once()
	repo.On("Update", ctx, first).Return(nil).Once()
	repo.On("Update", ctx, second).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFinishBakingCommandHandler(factory)
	err := h.Handle(ctx, commands.NewFinishBakingCommand())

	require.NoError(t, err)
	assert.Equal(t, order.Completed, first.Status())
	assert.Equal(t, order.Completed, second.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestFinishBakingCommandHandler_Handle_NothingBaking(t *testing.T) {
	ctx := t.Context()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("GetAllInBakingStatus", ctx).Return([]*order.Order{}, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFinishBakingCommandHandler(factory)

	require.NoError(t, h.Handle(ctx, commands.NewFinishBakingCommand()))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestFinishBakingCommandHandler_Handle_UpdateErrorStopsBatch(t *testing.T) {
	ctx := t.Context()
	first := newOrderInStatus(t, order.Baking)
	second := newOrderInStatus(t, order.Baking)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("GetAllInBakingStatus", ctx).Return([]*order.Order{first, second}, nil).Once()
	repo.On("Update", ctx, first).Return(errors.New("update error")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFinishBakingCommandHandler(factory)
	err := h.Handle(ctx, commands.NewFinishBakingCommand())

	require.EqualError(t, err, "update error")
	assert.Equal(t, order.Baking, second.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestFinishBakingCommandHandler_Handle_InconsistentOrder(t *testing.T) {
	ctx := t.Context()
	stale := newOrderInStatus(t, order.Created)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("GetAllInBakingStatus", ctx).Return([]*order.Order{stale}, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFinishBakingCommandHandler(factory)
	err := h.Handle(ctx, commands.NewFinishBakingCommand())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Created is not a valid status to complete")
}
