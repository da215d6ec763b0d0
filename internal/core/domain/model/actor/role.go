// Package actor models the identity submitting a mutation: a user id plus a
// role drawn from a closed enumeration. The access guard dispatches on the
// role; nothing in the domain ever compares raw role strings.
package actor

import (
	"fmt"

	"livraison/internal/pkg/errs"
)

// Role is the closed set of actor roles known to the system.
type Role int

const (
	// RoleUnknown catches uninitialized Role values; it is never valid.
	RoleUnknown Role = iota

	// RoleAdmin is the dispatcher/back-office role. Admins may create and
	// mutate any entity and are the only role allowed to cancel deliveries,
	// reopen incidents and resolve incident records.
	RoleAdmin

	// RoleDriver executes deliveries. Drivers may only touch deliveries
	// assigned to them (or claim an unassigned pending one) and only through
	// the execution fields: status, photos, signature, timestamps, incident
	// note.
	RoleDriver

	// RoleClient observes its own deliveries. Any write from a client is
	// denied.
	RoleClient
)

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleAdmin:  "admin",
		RoleDriver: "driver",
		RoleClient: "client",
	}
}

// RoleFromString parses the wire representation of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the role belongs to the closed enumeration.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getValidRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
