package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists the orders visible to the caller.
// The scope filter runs inside the SQL so restricted callers never see other
// users' rows at all.
type GetOrdersQueryHandler struct {
	reader orderReader
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{reader: orderReader{db: db}}
}

// Handle executes the listing query.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if scope := query.Scope(); scope.IsRestricted() {
		conditions = append(conditions, "o.user_id = ?")
		args = append(args, scope.UserID().Bytes())
	}
	if status := query.Status(); status != nil {
		conditions = append(conditions, "o.status = ?")
		args = append(args, status.String())
	}

	return h.reader.fetch(ctx, conditions, args)
}
