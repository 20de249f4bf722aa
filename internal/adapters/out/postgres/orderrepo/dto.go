// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Implements the repository pattern for the order
// aggregate: one order row owns its item rows and exactly one delivery row.
package orderrepo

import (
	"time"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status        string          `gorm:"type:varchar(32);not null;index"`
	PaymentMethod string          `gorm:"type:varchar(32);not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt     time.Time       `gorm:"not null;index"`
	Items         []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Delivery      DeliveryDTO     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line with its ordering-time snapshot of
// the variation's size name and unit price.
type OrderItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	VariationID uuid.UUID       `gorm:"type:uuid;not null;index"`
	SizeName    string          `gorm:"type:varchar(255);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity    int             `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// DeliveryDTO represents the delivery address and contact of one order.
type DeliveryDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ReceiverName string    `gorm:"type:varchar(255);not null"`
	Address      string    `gorm:"type:varchar(255);not null"`
	Number       string    `gorm:"type:varchar(32);not null"`
	Complement   string    `gorm:"type:varchar(255)"`
	District     string    `gorm:"type:varchar(255);not null"`
	ZipCode      string    `gorm:"type:varchar(32);not null"`
	City         string    `gorm:"type:varchar(255);not null"`
	State        string    `gorm:"type:varchar(64);not null"`
	Phone        string    `gorm:"type:varchar(64);not null"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     orderID,
			VariationID: item.VariationID().Bytes(),
			SizeName:    item.SizeName(),
			UnitPrice:   item.UnitPrice().Decimal(),
			Quantity:    item.Quantity(),
		})
	}

	delivery := aggregate.Delivery()

	return OrderDTO{
		ID:            orderID,
		UserID:        aggregate.UserID().Bytes(),
		Status:        aggregate.Status().String(),
		PaymentMethod: aggregate.PaymentMethod().String(),
		Amount:        aggregate.Amount().Decimal(),
		CreatedAt:     aggregate.CreatedAt(),
		Items:         items,
		Delivery: DeliveryDTO{
			ID:           delivery.ID().Bytes(),
			OrderID:      orderID,
			ReceiverName: delivery.ReceiverName(),
			Address:      delivery.Address(),
			Number:       delivery.Number(),
			Complement:   delivery.Complement(),
			District:     delivery.District(),
			ZipCode:      delivery.ZipCode(),
			City:         delivery.City(),
			State:        delivery.State(),
			Phone:        delivery.Phone(),
		},
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := order.ParsePaymentMethod(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	delivery, err := deliveryToDomain(dto.Delivery)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, userID, items, status, paymentMethod, amount, delivery, dto.CreatedAt)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	variationID, err := kernel.UUIDFromBytes(dto.VariationID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, variationID, dto.SizeName, unitPrice, dto.Quantity)
}

func deliveryToDomain(dto DeliveryDTO) (order.DeliveryData, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.DeliveryData{}, err
	}

	return order.NewDeliveryData(
		id,
		dto.ReceiverName,
		dto.Address,
		dto.Number,
		dto.Complement,
		dto.District,
		dto.ZipCode,
		dto.City,
		dto.State,
		dto.Phone,
	)
}
