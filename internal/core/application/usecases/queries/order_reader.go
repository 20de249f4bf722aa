package queries

import (
	"context"
	"strings"

	"fornello/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderReader assembles presentation-ready order responses from the
// persistence schema. Shared by the order query handlers so the listing and
// the by-id lookup produce identical shapes.
type orderReader struct {
	db *gorm.DB
}

// fetch runs the order head query with the given WHERE conditions and
// attaches items and delivery data. Conditions are joined with AND; results
// come back newest first with the id as tiebreak.
func (r orderReader) fetch(ctx context.Context, conditions []string, args []any) ([]OrderResponse, error) {
	query := `
		SELECT
			o.id,
			o.status,
			o.payment_method,
			o.amount,
			o.created_at,
			u.id,
			u.email,
			u.roles
		FROM orders o
		JOIN users u ON u.id = o.user_id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY o.created_at DESC, o.id ASC"

	rows, err := r.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var orderID, userID uuid.UUID
		var amount decimal.Decimal
		var roles string
		var resp OrderResponse

		err = rows.Scan(
			&orderID,
			&resp.Status,
			&resp.PaymentMethod,
			&amount,
			&resp.CreatedAt,
			&userID,
			&resp.User.Email,
			&roles,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(userID[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = id
		resp.User.ID = ownerID
		resp.User.Roles = splitRoles(roles)
		resp.Amount = amount.StringFixed(2)
		resp.Items = make([]OrderItemResponse, 0)

		index[orderID] = len(orders)
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]uuid.UUID, 0, len(orders))
	for id := range index {
		ids = append(ids, id)
	}

	if err = r.attachItems(ctx, orders, index, ids); err != nil {
		return nil, err
	}
	if err = r.attachDeliveries(ctx, orders, index, ids); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r orderReader) attachItems(
	ctx context.Context,
	orders []OrderResponse,
	index map[uuid.UUID]int,
	ids []uuid.UUID,
) error {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			variation_id,
			size_name,
			unit_price,
			quantity
		FROM order_items
		WHERE order_id IN (?)
		ORDER BY id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id, orderID, variationID uuid.UUID
		var unitPrice decimal.Decimal
		var item OrderItemResponse

		if err = rows.Scan(&id, &orderID, &variationID, &item.SizeName, &unitPrice, &item.Quantity); err != nil {
			return err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return idErr
		}
		varID, idErr := kernel.UUIDFromBytes(variationID[:])
		if idErr != nil {
			return idErr
		}

		item.ID = itemID
		item.VariationID = varID
		item.UnitPrice = unitPrice.StringFixed(2)

		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return rows.Err()
}

func (r orderReader) attachDeliveries(
	ctx context.Context,
	orders []OrderResponse,
	index map[uuid.UUID]int,
	ids []uuid.UUID,
) error {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			receiver_name,
			address,
			number,
			complement,
			district,
			zip_code,
			city,
			state,
			phone
		FROM deliveries
		WHERE order_id IN (?)
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id, orderID uuid.UUID
		var delivery DeliveryResponse

		err = rows.Scan(
			&id,
			&orderID,
			&delivery.ReceiverName,
			&delivery.Address,
			&delivery.Number,
			&delivery.Complement,
			&delivery.District,
			&delivery.ZipCode,
			&delivery.City,
			&delivery.State,
			&delivery.Phone,
		)
		if err != nil {
			return err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return idErr
		}
		delivery.ID = deliveryID

		if i, ok := index[orderID]; ok {
			orders[i].Delivery = delivery
		}
	}

	return rows.Err()
}

func splitRoles(roles string) []string {
	if roles == "" {
		return []string{}
	}
	return strings.Split(roles, ",")
}
