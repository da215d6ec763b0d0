package delivery

import (
	"errors"
	"fmt"

	"livraison/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel for every illegal lifecycle move,
// including re-applying a transition to a delivery already in a terminal
// state. Callers must correct their input; the error is never retried.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of a delivery.
//
// State transitions:
//
//	Pending ──┬──> Assigned ──┬──> InTransit ──┬──> Delivered
//	          │       ^       │                ├──> Incident ──> Assigned (admin reopen)
//	          └───────┼───────┘                │
//	                  └────────────────────────┘
//	     any non-terminal ──> Cancelled (admin only)
//
// Delivered and Cancelled are terminal. Incident only leaves through the
// admin reopen or an admin cancellation.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial state: created, no driver committed yet.
	StatusPending

	// StatusAssigned means a driver has been designated for the delivery.
	StatusAssigned

	// StatusInTransit means the driver took charge and is on the road.
	StatusInTransit

	// StatusDelivered is terminal: confirmed with a signature, stock decremented.
	StatusDelivered

	// StatusIncident means the driver reported a problem; an incident record
	// exists. Only an admin moves the delivery out of this state.
	StatusIncident

	// StatusCancelled is terminal: abandoned by an admin, no stock effect.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusAssigned:  "assigned",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusIncident:  "incident",
		StatusCancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusAssigned:  "assigned",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusIncident:  "incident",
		StatusCancelled: "cancelled",
	}
}

// StatusFromString parses the wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the status belongs to the closed enumeration.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer; safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition may leave the status.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Assign transitions to Assigned when a dispatcher designates a driver.
// Reassignment of an already assigned delivery is allowed.
func (s Status) Assign() (Status, error) {
	if s != StatusPending && s != StatusAssigned {
		return 0, invalidTransition(s, StatusAssigned)
	}
	return StatusAssigned, nil
}

// Start transitions to InTransit when the driver takes charge.
func (s Status) Start() (Status, error) {
	if s != StatusPending && s != StatusAssigned {
		return 0, invalidTransition(s, StatusInTransit)
	}
	return StatusInTransit, nil
}

// Deliver transitions to Delivered; only legal from InTransit.
func (s Status) Deliver() (Status, error) {
	if s != StatusInTransit {
		return 0, invalidTransition(s, StatusDelivered)
	}
	return StatusDelivered, nil
}

// Report transitions to Incident; only legal from InTransit.
func (s Status) Report() (Status, error) {
	if s != StatusInTransit {
		return 0, invalidTransition(s, StatusIncident)
	}
	return StatusIncident, nil
}

// Cancel transitions to Cancelled from any non-terminal status.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, invalidTransition(s, StatusCancelled)
	}
	return StatusCancelled, nil
}

// Reopen transitions Incident back to Assigned; the administrative override.
func (s Status) Reopen() (Status, error) {
	if s != StatusIncident {
		return 0, invalidTransition(s, StatusAssigned)
	}
	return StatusAssigned, nil
}

func invalidTransition(from, to Status) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
