package queries

import (
	"context"

	"fornello/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler reads one order within the caller's scope.
// An order owned by another user yields the same ObjectNotFoundError as a
// missing id, so restricted callers cannot probe for foreign orders.
type GetOrderByIDQueryHandler struct {
	reader orderReader
}

// NewGetOrderByIDQueryHandler creates a handler for single-order queries.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{reader: orderReader{db: db}}
}

// Handle executes the scoped lookup.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	conditions := []string{"o.id = ?"}
	args := []any{query.OrderID().Bytes()}

	if scope := query.Scope(); scope.IsRestricted() {
		conditions = append(conditions, "o.user_id = ?")
		args = append(args, scope.UserID().Bytes())
	}

	orders, err := h.reader.fetch(ctx, conditions, args)
	if err != nil {
		return OrderResponse{}, err
	}
	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	return orders[0], nil
}
