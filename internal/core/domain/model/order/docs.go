// Package order provides the Order aggregate: one pizza moving through the kitchen.
//
// The package includes:
//   - Order: the aggregate root holding the order identity, its pizza and its status
//   - Status: a state machine enforcing the kitchen workflow
//
// Key business rules:
//   - Orders must have a valid identifier and a pizza produced by pizza.Builder
//   - The pizza of an order never changes after the order is placed
//   - Status follows Created -> Baking -> Completed, with no skipping and no way back
package order
