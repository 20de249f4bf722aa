package commands_test

import (
	"testing"

	"fornello/internal/core/application/usecases/commands"
	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteProductCommandHandler_Handle(t *testing.T) {
	t.Run("deletes unreferenced product", func(t *testing.T) {
		ctx := t.Context()
		productID := kernel.NewUUID()
		cmd, err := commands.NewDeleteProductCommand(productID)
		require.NoError(t, err)

		productRepo := new(MockProductRepository)
		orderRepo := new(MockOrderRepository)
		uow := new(MockProductOrderUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		uow.On("ProductRepository").Return(productRepo).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		orderRepo.On("ExistsForProduct", mock.Anything, productID).Return(false, nil).Once()
		productRepo.On("Delete", mock.Anything, productID).Return(nil).Once()

		factory := new(MockProductOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewDeleteProductCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		uow.AssertExpectations(t)
		productRepo.AssertExpectations(t)
	})

	t.Run("rejects product referenced by orders", func(t *testing.T) {
		ctx := t.Context()
		productID := kernel.NewUUID()
		cmd, err := commands.NewDeleteProductCommand(productID)
		require.NoError(t, err)

		productRepo := new(MockProductRepository)
		orderRepo := new(MockOrderRepository)
		uow := new(MockProductOrderUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		orderRepo.On("ExistsForProduct", mock.Anything, productID).Return(true, nil).Once()

		factory := new(MockProductOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewDeleteProductCommandHandler(factory)
		err = h.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrConflict)
		productRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestDeleteProductVariationCommandHandler_Handle(t *testing.T) {
	t.Run("removes variation and updates product", func(t *testing.T) {
		ctx := t.Context()
		variation := catalogVariation(t, "Large", "5.00", true)
		spare := catalogVariation(t, "Medium", "4.00", true)
		aggregate := catalogProduct(t, true, variation, spare)

		cmd, err := commands.NewDeleteProductVariationCommand(aggregate.ID(), variation.ID())
		require.NoError(t, err)

		productRepo := new(MockProductRepository)
		orderRepo := new(MockOrderRepository)
		uow := new(MockProductOrderUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		uow.On("ProductRepository").Return(productRepo).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		orderRepo.On("ExistsForVariation", mock.Anything, variation.ID()).Return(false, nil).Once()
		productRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
		productRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()

		factory := new(MockProductOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewDeleteProductVariationCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		require.Len(t, aggregate.Variations(), 1)
	})

	t.Run("rejects variation referenced by orders", func(t *testing.T) {
		ctx := t.Context()
		variationID := kernel.NewUUID()
		cmd, err := commands.NewDeleteProductVariationCommand(kernel.NewUUID(), variationID)
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		uow := new(MockProductOrderUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		orderRepo.On("ExistsForVariation", mock.Anything, variationID).Return(true, nil).Once()

		factory := new(MockProductOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewDeleteProductVariationCommandHandler(factory)
		err = h.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestDeleteUserCommandHandler_Handle(t *testing.T) {
	t.Run("deletes user without orders", func(t *testing.T) {
		ctx := t.Context()
		userID := kernel.NewUUID()
		cmd, err := commands.NewDeleteUserCommand(userID)
		require.NoError(t, err)

		userRepo := new(MockUserRepository)
		orderRepo := new(MockOrderRepository)
		uow := new(MockUserOrderUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		uow.On("UserRepository").Return(userRepo).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		orderRepo.On("ExistsForUser", mock.Anything, userID).Return(false, nil).Once()
		userRepo.On("Delete", mock.Anything, userID).Return(nil).Once()

		factory := new(MockUserOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewDeleteUserCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		userRepo.AssertExpectations(t)
	})

	t.Run("rejects user with orders", func(t *testing.T) {
		ctx := t.Context()
		userID := kernel.NewUUID()
		cmd, err := commands.NewDeleteUserCommand(userID)
		require.NoError(t, err)

		userRepo := new(MockUserRepository)
		orderRepo := new(MockOrderRepository)
		uow := new(MockUserOrderUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		orderRepo.On("ExistsForUser", mock.Anything, userID).Return(true, nil).Once()

		factory := new(MockUserOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewDeleteUserCommandHandler(factory)
		err = h.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrConflict)
		userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestDeleteOrderCommandHandler_Handle(t *testing.T) {
	t.Run("missing order surfaces not found", func(t *testing.T) {
		ctx := t.Context()
		orderID := kernel.NewUUID()
		cmd, err := commands.NewDeleteOrderCommand(orderID)
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		orderRepo.On("Delete", mock.Anything, orderID).
			Return(errs.NewObjectNotFoundError("orderId", orderID)).Once()

		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewDeleteOrderCommandHandler(factory)
		err = h.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
