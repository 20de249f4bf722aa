package http

import (
	"time"

	"fornello/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// createdAtLayout renders order creation timestamps as dd-MM-yyyy HH:mm:ss.
const createdAtLayout = "02-01-2006 15:04:05"

// Request bodies.

// LoginRequest carries user credentials for token issuance.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterUserRequest carries the data for a new customer account.
type RegisterUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateProductRequest carries a new catalog product with its initial variations.
type CreateProductRequest struct {
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Category    string                   `json:"category"`
	Variations  []CreateVariationRequest `json:"productVariations"`
	Available   bool                     `json:"available"`
}

// CreateVariationRequest carries one size/price option of a product.
type CreateVariationRequest struct {
	SizeName    string          `json:"sizeName"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
}

// UpdateProductRequest is a partial product update; absent fields stay unchanged.
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

// UpdateVariationRequest is a partial variation update; absent fields stay unchanged.
type UpdateVariationRequest struct {
	SizeName    *string          `json:"sizeName"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Available   *bool            `json:"available"`
}

// CreateOrderRequest carries the cart, the payment method token and the
// delivery data for a new order.
type CreateOrderRequest struct {
	Items         []CreateOrderItemRequest `json:"orderItems"`
	PaymentMethod string                   `json:"paymentMethod"`
	DeliveryData  DeliveryDataRequest      `json:"deliveryData"`
}

// CreateOrderItemRequest is one cart line referencing a product variation.
type CreateOrderItemRequest struct {
	ProductID   string `json:"productId"`
	VariationID string `json:"productVariationId"`
	Quantity    int    `json:"quantity"`
}

// DeliveryDataRequest carries the delivery address and contact verbatim.
type DeliveryDataRequest struct {
	ReceiverName string `json:"receiverName"`
	Address      string `json:"address"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	District     string `json:"district"`
	ZipCode      string `json:"zipCode"`
	City         string `json:"city"`
	State        string `json:"state"`
	Phone        string `json:"phoneNumber"`
}

// ChangeOrderStatusRequest carries the status token to set on an order.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// Response bodies.

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// ProductJSON is the wire form of a catalog product.
type ProductJSON struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Variations  []VariationJSON `json:"productVariations"`
	Available   bool            `json:"available"`
}

// VariationJSON is the wire form of one product variation.
type VariationJSON struct {
	ID          string `json:"id"`
	SizeName    string `json:"sizeName"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Available   bool   `json:"available"`
}

// OrderJSON is the wire form of an order, creation timestamp pre-formatted.
type OrderJSON struct {
	ID            string           `json:"id"`
	User          UserJSON         `json:"user"`
	Items         []OrderItemJSON  `json:"orderItems"`
	Status        string           `json:"status"`
	PaymentMethod string           `json:"paymentMethod"`
	Amount        string           `json:"amount"`
	DeliveryData  DeliveryDataJSON `json:"deliveryData"`
	CreatedAt     string           `json:"createdDate"`
}

// OrderItemJSON is one order line with its ordering-time variation snapshot.
type OrderItemJSON struct {
	ID          string `json:"id"`
	VariationID string `json:"productVariationId"`
	SizeName    string `json:"sizeName"`
	UnitPrice   string `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
}

// DeliveryDataJSON is the wire form of an order's delivery data.
type DeliveryDataJSON struct {
	ID           string `json:"id"`
	ReceiverName string `json:"receiverName"`
	Address      string `json:"address"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	District     string `json:"district"`
	ZipCode      string `json:"zipCode"`
	City         string `json:"city"`
	State        string `json:"state"`
	Phone        string `json:"phoneNumber"`
}

// UserJSON is the wire form of a user account. The password hash never
// crosses this boundary.
type UserJSON struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

func productJSON(p queries.ProductResponse) ProductJSON {
	variations := make([]VariationJSON, len(p.Variations))
	for i, v := range p.Variations {
		variations[i] = VariationJSON{
			ID:          v.ID.String(),
			SizeName:    v.SizeName,
			Description: v.Description,
			Price:       v.Price,
			Available:   v.Available,
		}
	}
	return ProductJSON{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Variations:  variations,
		Available:   p.Available,
	}
}

func productListJSON(products []queries.ProductResponse) []ProductJSON {
	response := make([]ProductJSON, len(products))
	for i, p := range products {
		response[i] = productJSON(p)
	}
	return response
}

func orderJSON(o queries.OrderResponse) OrderJSON {
	items := make([]OrderItemJSON, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemJSON{
			ID:          item.ID.String(),
			VariationID: item.VariationID.String(),
			SizeName:    item.SizeName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		}
	}
	return OrderJSON{
		ID: o.ID.String(),
		User: UserJSON{
			ID:    o.User.ID.String(),
			Email: o.User.Email,
			Roles: o.User.Roles,
		},
		Items:         items,
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		Amount:        o.Amount,
		DeliveryData: DeliveryDataJSON{
			ID:           o.Delivery.ID.String(),
			ReceiverName: o.Delivery.ReceiverName,
			Address:      o.Delivery.Address,
			Number:       o.Delivery.Number,
			Complement:   o.Delivery.Complement,
			District:     o.Delivery.District,
			ZipCode:      o.Delivery.ZipCode,
			City:         o.Delivery.City,
			State:        o.Delivery.State,
			Phone:        o.Delivery.Phone,
		},
		CreatedAt: o.CreatedAt.In(time.UTC).Format(createdAtLayout),
	}
}

func orderListJSON(orders []queries.OrderResponse) []OrderJSON {
	response := make([]OrderJSON, len(orders))
	for i, o := range orders {
		response[i] = orderJSON(o)
	}
	return response
}

func userJSON(u queries.UserResponse) UserJSON {
	return UserJSON{
		ID:    u.ID.String(),
		Email: u.Email,
		Roles: u.Roles,
	}
}

func userListJSON(users []queries.UserResponse) []UserJSON {
	response := make([]UserJSON, len(users))
	for i, u := range users {
		response[i] = userJSON(u)
	}
	return response
}
