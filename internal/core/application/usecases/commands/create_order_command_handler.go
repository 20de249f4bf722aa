package commands

import (
	"context"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/core/domain/model/order"
)

// CreateOrderCommandHandler assembles and persists a new order.
//
// Assembly resolves every cart line against the catalog in request order,
// snapshots the variation's size name and price into the line item, and
// accumulates the total with exact decimal arithmetic. Repeated variation
// ids stay separate line items. The total is computed once here and never
// recomputed afterwards.
type CreateOrderCommandHandler struct {
	uowFactory ProductOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a ProductOrderUoWFactory: the catalog is read and the order
// written inside the same transaction.
func NewCreateOrderCommandHandler(uowFactory ProductOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Returns an ObjectNotFoundError when a cart line's product does not exist
// or its variation does not belong to that product.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	productRepo := uow.ProductRepository()

	items := make([]*order.Item, 0, len(cmd.Items()))
	total := kernel.ZeroMoney()
	for _, line := range cmd.Items() {
		aggregate, err := productRepo.Get(ctx, line.ProductID())
		if err != nil {
			return err
		}

		variation, err := aggregate.Variation(line.VariationID())
		if err != nil {
			return err
		}

		item, err := order.NewItem(
			kernel.NewUUID(),
			variation.ID(),
			variation.SizeName(),
			variation.Price(),
			line.Quantity(),
		)
		if err != nil {
			return err
		}

		items = append(items, item)
		total = total.Add(variation.Price().MulInt(line.Quantity()))
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.UserID(),
		items,
		cmd.PaymentMethod(),
		total,
		cmd.Delivery(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
