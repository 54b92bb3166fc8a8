package order

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/pizza"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a placed pizza order. It is the aggregate root that tracks one pizza
// from placement through baking to completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must hold a pizza produced by pizza.Builder with a valid size
//   - The pizza is a value and is never replaced after construction
//   - Status transitions follow Created -> Baking -> Completed
type Order struct {
	id     kernel.UUID
	pizza  pizza.Pizza
	status Status

	isConstructed bool
}

// NewOrder places a new order in Created status.
//
// Example:
//
//	p := pizza.NewBuilder(pizza.Small).Olives(true).Build()
//	o, err := order.NewOrder(kernel.NewUUID(), p)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id kernel.UUID, p pizza.Pizza) (*Order, error) {
	o := &Order{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setPizza(p),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persisted state. Unlike NewOrder it accepts
// any valid status.
func RestoreOrder(id kernel.UUID, p pizza.Pizza, status Status) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setPizza(p),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// Pizza returns a copy of the ordered pizza.
func (o *Order) Pizza() pizza.Pizza {
	return o.pizza
}

func (o *Order) Status() Status {
	return o.status
}

// Bake puts the pizza in the oven. Only Created orders can be baked.
func (o *Order) Bake() error {
	newStatus, err := o.status.Bake()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete takes the pizza out of the oven. Only Baking orders can be completed,
// and Completed is final.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setPizza(p pizza.Pizza) error {
	if err := p.Validate(); err != nil {
		return err
	}
	o.pizza = p
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
