package order

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Status is the kitchen state of an order.
//
// State transitions:
//
//	Created ──> Baking ──> Completed
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the status of a freshly placed order waiting for an oven.
	Created

	// Baking means the pizza is in the oven.
	Baking

	// Completed is final: the pizza is out of the oven and served.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Baking:    "Baking",
		Completed: "Completed",
	}
}

// Validate checks if the Status value is one of Created, Baking or Completed.
func (s Status) Validate() error {
	if s != Created && s != Baking && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Bake transitions Created to Baking.
func (s Status) Bake() (Status, error) {
	if s != Created {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to bake", s.String()),
		)
	}

	return Baking, nil
}

// Complete transitions Baking to Completed.
func (s Status) Complete() (Status, error) {
	if s != Baking {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}
