package pizza

import (
	"pizzeria/internal/pkg/guard"
)

// Builder accumulates the toppings of a pizza whose size is fixed up front.
//
// Setters overwrite the in-progress value and return the same *Builder so calls
// can be chained. A Builder can be kept as a prototype: every Build call yields
// an independent Pizza reflecting the state at that moment.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	size      Size
	pepperoni bool
	onions    bool
	spinach   bool
	olives    bool
}

// NewBuilder starts a pizza of the given size with every topping off.
func NewBuilder(size Size) *Builder {
	return &Builder{size: size}
}

// NewBuilderFrom seeds a builder with the size and toppings of an existing pizza.
//
// Example:
//
//	withPepperoni := pizza.NewBuilderFrom(plain).Pepperoni(true).Build()
func NewBuilderFrom(p Pizza) *Builder {
	return &Builder{
		size:      p.size,
		pepperoni: p.pepperoni,
		onions:    p.onions,
		spinach:   p.spinach,
		olives:    p.olives,
	}
}

func (b *Builder) Pepperoni(pepperoni bool) *Builder {
	b.pepperoni = pepperoni
	return b
}

func (b *Builder) Onions(onions bool) *Builder {
	b.onions = onions
	return b
}

func (b *Builder) Spinach(spinach bool) *Builder {
	b.spinach = spinach
	return b
}

func (b *Builder) Olives(olives bool) *Builder {
	b.olives = olives
	return b
}

// Build returns a Pizza holding a copy of the current state. The builder stays usable.
func (b *Builder) Build() Pizza {
	return Pizza{
		size:      b.size,
		pepperoni: b.pepperoni,
		onions:    b.onions,
		spinach:   b.spinach,
		olives:    b.olives,
		guard:     guard.NewConstructorGuard(),
	}
}
