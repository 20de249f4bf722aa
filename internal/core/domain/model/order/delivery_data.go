package order

import (
	"errors"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/pkg/errs"

	"fornello/internal/pkg/guard"
)

// ErrDeliveryDataIsNotConstructed is returned when a DeliveryData instance was
// not created through the NewDeliveryData factory function.
var ErrDeliveryDataIsNotConstructed = errors.New(
	"DeliveryData must be created via NewDeliveryData constructor",
)

// DeliveryData is the shipping address and contact snapshot attached to exactly
// one order. Field values are stored verbatim as supplied by the caller; only
// presence is checked, everything except the complement is required.
type DeliveryData struct {
	id           kernel.UUID
	receiverName string
	address      string
	number       string
	complement   string
	district     string
	zipCode      string
	city         string
	state        string
	phone        string

	guard guard.ConstructorGuard
}

// NewDeliveryData creates a validated DeliveryData value.
func NewDeliveryData(
	id kernel.UUID,
	receiverName string,
	address string,
	number string,
	complement string,
	district string,
	zipCode string,
	city string,
	state string,
	phone string,
) (DeliveryData, error) {
	if err := id.Validate(); err != nil {
		return DeliveryData{}, err
	}

	if err := errors.Join(
		requireField("receiverName", receiverName),
		requireField("address", address),
		requireField("number", number),
		requireField("district", district),
		requireField("zipCode", zipCode),
		requireField("city", city),
		requireField("state", state),
		requireField("phone", phone),
	); err != nil {
		return DeliveryData{}, err
	}

	return DeliveryData{
		id:           id,
		receiverName: receiverName,
		address:      address,
		number:       number,
		complement:   complement,
		district:     district,
		zipCode:      zipCode,
		city:         city,
		state:        state,
		phone:        phone,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the DeliveryData was created through the constructor.
func (d DeliveryData) Validate() error {
	return d.guard.Validate(ErrDeliveryDataIsNotConstructed)
}

// ID returns the delivery data's unique identifier.
func (d DeliveryData) ID() kernel.UUID { return d.id }

// ReceiverName returns the name of the person receiving the order.
func (d DeliveryData) ReceiverName() string { return d.receiverName }

// Address returns the street address.
func (d DeliveryData) Address() string { return d.address }

// Number returns the street number.
func (d DeliveryData) Number() string { return d.number }

// Complement returns the optional address complement.
func (d DeliveryData) Complement() string { return d.complement }

// District returns the district or neighborhood.
func (d DeliveryData) District() string { return d.district }

// ZipCode returns the postal code.
func (d DeliveryData) ZipCode() string { return d.zipCode }

// City returns the city.
func (d DeliveryData) City() string { return d.city }

// State returns the state or province.
func (d DeliveryData) State() string { return d.state }

// Phone returns the receiver's contact phone number.
func (d DeliveryData) Phone() string { return d.phone }

func requireField(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
