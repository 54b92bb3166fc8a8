package queries

import (
	"database/sql"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/pizza"

	"github.com/google/uuid"
)

// OrderResponse is the read model of one order.
type OrderResponse struct {
	ID     kernel.UUID
	Pizza  pizza.Pizza
	Status order.Status
}

// scanOrders reads rows selected as (id, size, pepperoni, onions, spinach, olives, status).
// Rows with an unknown size or status are reported as errors instead of being skipped.
func scanOrders(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var (
			id                                 uuid.UUID
			size, status                       int
			pepperoni, onions, spinach, olives bool
		)

		if err := rows.Scan(&id, &size, &pepperoni, &onions, &spinach, &olives, &status); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		p := pizza.NewBuilder(pizza.Size(size)).
			Pepperoni(pepperoni).
			Onions(onions).
			Spinach(spinach).
			Olives(olives).
			Build()
		if err = p.Validate(); err != nil {
			return nil, err
		}

		s := order.Status(status)
		if err = s.Validate(); err != nil {
			return nil, err
		}

		orders = append(orders, OrderResponse{
			ID:     orderID,
			Pizza:  p,
			Status: s,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
