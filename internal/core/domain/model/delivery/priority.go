package delivery

import (
	"fmt"

	"livraison/internal/pkg/errs"
)

// Priority orders deliveries for the dispatch console. It never affects the
// state machine, only scheduling and display.
type Priority int

const (
	// PriorityUnknown catches uninitialized values; it is never valid.
	PriorityUnknown Priority = iota
	// PriorityLow marks deliveries that can slip without consequence.
	PriorityLow
	// PriorityNormal is the default.
	PriorityNormal
	// PriorityUrgent marks same-day or contractual deliveries.
	PriorityUrgent
)

func getValidPriorityStrings() map[Priority]string {
	//nolint:exhaustive // PriorityUnknown is intentionally excluded as it's invalid
	return map[Priority]string{
		PriorityLow:    "low",
		PriorityNormal: "normal",
		PriorityUrgent: "urgent",
	}
}

// PriorityFromString parses the wire representation of a priority.
func PriorityFromString(s string) (Priority, error) {
	for p, str := range getValidPriorityStrings() {
		if str == s {
			return p, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause("priority",
		fmt.Errorf("%q is not a valid priority", s))
}

// Validate checks that the priority belongs to the closed enumeration.
func (p Priority) Validate() error {
	if _, ok := getValidPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority",
			fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String implements fmt.Stringer.
func (p Priority) String() string {
	if str, ok := getValidPriorityStrings()[p]; ok {
		return str
	}
	return "unknown"
}
