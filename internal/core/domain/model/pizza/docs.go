// Package pizza models the pizza itself: an immutable value assembled through a
// fluent Builder.
//
// The package includes:
//   - Size: the closed set of sizes (Small, Medium, Large)
//   - Pizza: the immutable value, a size plus four independent toppings
//   - Builder: the only producer of valid pizzas
//
// Key rules:
//   - Size is mandatory and fixed when the builder is created
//   - Toppings default to false and may be set in any order, any number of times
//   - Build copies the builder state; later builder changes never reach pizzas
//     that were already built
//   - A Pizza has no mutators and is safe to share between goroutines
//
// Example:
//
//	p := pizza.NewBuilder(pizza.Small).
//	    Olives(true).
//	    Onions(true).
//	    Build()
package pizza
