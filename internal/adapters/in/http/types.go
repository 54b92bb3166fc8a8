package http

import (
	"pizzeria/internal/core/application/usecases/queries"

	"github.com/google/uuid"
)

// NewOrder is the body of POST /api/v1/orders.
type NewOrder struct {
	Size      string `json:"size"`
	Pepperoni bool   `json:"pepperoni"`
	Onions    bool   `json:"onions"`
	Spinach   bool   `json:"spinach"`
	Olives    bool   `json:"olives"`
}

type OrderCreated struct {
	ID uuid.UUID `json:"id"`
}

type Order struct {
	ID          uuid.UUID `json:"id"`
	Size        string    `json:"size"`
	Toppings    []string  `json:"toppings"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func toOrder(o queries.OrderResponse) Order {
	return Order{
		ID:          o.ID.Bytes(),
		Size:        o.Pizza.Size().String(),
		Toppings:    o.Pizza.Toppings(),
		Description: o.Pizza.String(),
		Status:      o.Status.String(),
	}
}
