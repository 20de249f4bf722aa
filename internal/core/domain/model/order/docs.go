// Package order contains the ordering aggregate: an Order owning its line
// Items and DeliveryData, with an enumerated Status and PaymentMethod. The
// order total is an exact decimal amount fixed at creation time; only the
// status may change afterwards, and it may change to any valid value.
package order
