// Package orderrepo maps order aggregates to the orders table and implements
// ports.OrderRepository on top of GORM.
package orderrepo

import (
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/pizza"

	"github.com/google/uuid"
)

// OrderDTO is the row layout of the orders table. The pizza is flattened into
// one column per attribute.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Size      int       `gorm:"type:smallint;not null"`
	Pepperoni bool      `gorm:"not null;default:false"`
	Onions    bool      `gorm:"not null;default:false"`
	Spinach   bool      `gorm:"not null;default:false"`
	Olives    bool      `gorm:"not null;default:false"`
	Status    int       `gorm:"type:smallint;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	p := o.Pizza()

	return OrderDTO{
		ID:        o.ID().Bytes(),
		Size:      int(p.Size()),
		Pepperoni: p.Pepperoni(),
		Onions:    p.Onions(),
		Spinach:   p.Spinach(),
		Olives:    p.Olives(),
		Status:    int(o.Status()),
	}
}

// toDomain rebuilds the aggregate. The pizza goes through pizza.Builder like any
// other pizza, and RestoreOrder rejects rows with an unknown size or status.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	p := pizza.NewBuilder(pizza.Size(dto.Size)).
		Pepperoni(dto.Pepperoni).
		Onions(dto.Onions).
		Spinach(dto.Spinach).
		Olives(dto.Olives).
		Build()

	return order.RestoreOrder(id, p, order.Status(dto.Status))
}
