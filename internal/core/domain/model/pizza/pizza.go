package pizza

import (
	"errors"
	"strings"

	"pizzeria/internal/pkg/guard"
)

// ErrPizzaIsNotConstructed is returned when a Pizza did not come out of a Builder.
var ErrPizzaIsNotConstructed = errors.New("Pizza must be created via Builder.Build")

// Topping names, in the order Toppings reports them.
const (
	ToppingPepperoni = "pepperoni"
	ToppingOnions    = "onions"
	ToppingSpinach   = "spinach"
	ToppingOlives    = "olives"
)

// Pizza is an immutable pizza: a size and four independent toppings.
//
// All fields are unexported and every method has a value receiver, so once
// Build returns a Pizza nothing can change it. Copies are independent and the
// value may be read from any number of goroutines.
type Pizza struct {
	size      Size
	pepperoni bool
	onions    bool
	spinach   bool
	olives    bool

	guard guard.ConstructorGuard
}

// Validate checks that the pizza was produced by a Builder and carries a valid size.
func (p Pizza) Validate() error {
	if err := p.guard.Validate(ErrPizzaIsNotConstructed); err != nil {
		return err
	}
	return p.size.Validate()
}

func (p Pizza) Size() Size {
	return p.size
}

func (p Pizza) Pepperoni() bool {
	return p.pepperoni
}

func (p Pizza) Onions() bool {
	return p.onions
}

func (p Pizza) Spinach() bool {
	return p.spinach
}

func (p Pizza) Olives() bool {
	return p.olives
}

// Toppings lists the enabled toppings. The returned slice is fresh on every call.
func (p Pizza) Toppings() []string {
	toppings := make([]string, 0, 4)
	if p.pepperoni {
		toppings = append(toppings, ToppingPepperoni)
	}
	if p.onions {
		toppings = append(toppings, ToppingOnions)
	}
	if p.spinach {
		toppings = append(toppings, ToppingSpinach)
	}
	if p.olives {
		toppings = append(toppings, ToppingOlives)
	}
	return toppings
}

// IsEqual compares pizzas by value.
func (p Pizza) IsEqual(other Pizza) bool {
	return p == other
}

// String renders the pizza for logs, e.g. "small pizza with onions, olives".
func (p Pizza) String() string {
	toppings := p.Toppings()
	if len(toppings) == 0 {
		return p.size.String() + " pizza"
	}
	return p.size.String() + " pizza with " + strings.Join(toppings, ", ")
}
