package pizza

import (
	"fmt"
	"strings"

	"pizzeria/internal/pkg/errs"
)

// Size is the mandatory dimension of a pizza.
//
// The zero value is UnknownSize so that a Size that was never set is caught by
// Validate instead of silently becoming Small.
type Size int

const (
	// UnknownSize marks an unset or unrecognised size. It is never valid.
	UnknownSize Size = iota
	Small
	Medium
	Large
)

func getSizeStrings() map[Size]string {
	return map[Size]string{
		UnknownSize: "unknown",
		Small:       "small",
		Medium:      "medium",
		Large:       "large",
	}
}

// Sizes returns every valid size, smallest first.
func Sizes() []Size {
	return []Size{Small, Medium, Large}
}

// ParseSize converts "small", "medium" or "large" (case and surrounding
// whitespace ignored) into a Size.
func ParseSize(s string) (Size, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return UnknownSize, errs.NewValueIsRequiredError("size")
	}

	for _, size := range Sizes() {
		if size.String() == normalized {
			return size, nil
		}
	}

	return UnknownSize, errs.NewValueIsInvalidErrorWithCause(
		"size",
		fmt.Errorf("%q is not one of small, medium, large", s),
	)
}

// Validate rejects UnknownSize and any value outside Small..Large, which can
// only appear through a conversion such as Size(n) from storage or user input.
func (s Size) Validate() error {
	if s < Small || s > Large {
		return errs.NewValueIsOutOfRangeError("size", int(s), int(Small), int(Large))
	}
	return nil
}

// String returns the lower case name of the size, or "unknown".
func (s Size) String() string {
	if str, ok := getSizeStrings()[s]; ok {
		return str
	}
	return getSizeStrings()[UnknownSize]
}
