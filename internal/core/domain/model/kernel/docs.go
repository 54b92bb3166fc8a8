// Package kernel holds the primitives shared by every aggregate of the pizzeria
// domain. Today that is the UUID value object used to identify orders.
package kernel
