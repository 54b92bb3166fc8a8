package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// Toppings lists the optional toppings of a pizza being ordered.
// Its zero value is a plain pizza.
type Toppings struct {
	Pepperoni bool
	Onions    bool
	Spinach   bool
	Olives    bool
}

// PlaceOrderCommand represents a customer ordering one pizza.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, pizza.Small, Toppings{Olives: true, Onions: true})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	size     pizza.Size
	toppings Toppings

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the order ID and the pizza size.
// Toppings need no validation.
func NewPlaceOrderCommand(orderID kernel.UUID, size pizza.Size, toppings Toppings) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		toppings: toppings,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSize(size),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceOrderCommand) Size() pizza.Size {
	return c.size
}

func (c PlaceOrderCommand) Toppings() Toppings {
	return c.toppings
}

// Pizza assembles the ordered pizza.
func (c PlaceOrderCommand) Pizza() pizza.Pizza {
	return pizza.NewBuilder(c.size).
		Pepperoni(c.toppings.Pepperoni).
		Onions(c.toppings.Onions).
		Spinach(c.toppings.Spinach).
		Olives(c.toppings.Olives).
		Build()
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setSize(size pizza.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}

	c.size = size
	return nil
}
