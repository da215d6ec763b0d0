package services

import (
	"livraison/internal/core/domain/model/actor"
	"livraison/internal/core/domain/model/delivery"
	"livraison/internal/pkg/errs"
)

// Driver-writable delivery fields. Anything outside this set coming from a
// driver request is a permission error, not a silent drop, so a compromised
// device cannot rewrite addresses or pricing.
var driverWritableFields = map[string]struct{}{
	"status":       {},
	"photos":       {},
	"signature":    {},
	"deliveredAt":  {},
	"startedAt":    {},
	"incidentNote": {},
	"updatedAt":    {},
}

// AccessGuard is the domain service deciding what each role may do to a
// delivery. It is consulted by every command handler before any state is
// touched; permission failures surface before validation failures.
//
// Role policy:
//   - admin: full control, including cancel and the incident reopen override
//   - driver: advances deliveries that belong to them. An unassigned pending
//     delivery counts as claimable, so the first driver to take charge wins.
//     Writes are restricted to the progress fields listed in
//     driverWritableFields.
//   - client: read-only, and only their own deliveries
type AccessGuard struct{}

// NewAccessGuard creates a new AccessGuard instance.
func NewAccessGuard() AccessGuard {
	return AccessGuard{}
}

// CanCreateDelivery reports whether the actor may create deliveries.
// Dispatch is an admin responsibility.
func (g AccessGuard) CanCreateDelivery(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if !a.IsAdmin() {
		return permissionDenied(a, "create delivery")
	}
	return nil
}

// CanTransition reports whether the actor may move the delivery to the
// target status. Ownership rules apply on top of the lifecycle table, which
// stays with the Status type.
func (g AccessGuard) CanTransition(a actor.Actor, d *delivery.Delivery, target delivery.Status) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}

	action := "transition to " + target.String()

	if a.IsAdmin() {
		// Admins may request any transition; dispatch corrects road-side
		// state on a driver's behalf (phone dead, forgot to confirm).
		// Payload requirements still hold in the state machine.
		return nil
	}

	if a.IsDriver() {
		switch target {
		case delivery.StatusInTransit:
			if !g.ownsOrMayClaim(a, d) {
				return permissionDenied(a, action)
			}
			return nil
		case delivery.StatusDelivered, delivery.StatusIncident:
			if !g.owns(a, d) {
				return permissionDenied(a, action)
			}
			return nil
		default:
			return permissionDenied(a, action)
		}
	}

	return permissionDenied(a, action)
}

// CanWriteField reports whether the actor may write the named delivery
// field. Admins write everything; drivers only the progress fields; clients
// nothing.
func (g AccessGuard) CanWriteField(a actor.Actor, field string) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.IsAdmin() {
		return nil
	}
	if a.IsDriver() {
		if _, ok := driverWritableFields[field]; ok {
			return nil
		}
	}
	return permissionDenied(a, "write field "+field)
}

// CanView reports whether the actor may read the delivery. Drivers see
// their own and unclaimed pending deliveries; clients only their own.
func (g AccessGuard) CanView(a actor.Actor, d *delivery.Delivery) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}

	switch {
	case a.IsAdmin():
		return nil
	case a.IsDriver() && g.ownsOrMayClaim(a, d):
		return nil
	case a.Role() == actor.RoleClient && d.ClientID().IsEqual(a.ID()):
		return nil
	}
	return permissionDenied(a, "view delivery")
}

// CanReportIncident reports whether the actor may open an incident against
// the delivery: the driver holding it, or an admin.
func (g AccessGuard) CanReportIncident(a actor.Actor, d *delivery.Delivery) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.IsAdmin() {
		return nil
	}
	if a.IsDriver() && g.owns(a, d) {
		return nil
	}
	return permissionDenied(a, "report incident")
}

// CanResolveIncident reports whether the actor may review or resolve
// incidents. Admin only.
func (g AccessGuard) CanResolveIncident(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if !a.IsAdmin() {
		return permissionDenied(a, "resolve incident")
	}
	return nil
}

// CanManageStock reports whether the actor may create, correct or retire
// stock items. Admin only; the ledger decrement during delivery
// confirmation is a system effect, not an actor permission.
func (g AccessGuard) CanManageStock(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if !a.IsAdmin() {
		return permissionDenied(a, "manage stock")
	}
	return nil
}

func permissionDenied(a actor.Actor, action string) error {
	return errs.NewPermissionDeniedError(a.Role().String(), action)
}

func (g AccessGuard) owns(a actor.Actor, d *delivery.Delivery) bool {
	return d.DriverID() != nil && d.DriverID().IsEqual(a.ID())
}

func (g AccessGuard) ownsOrMayClaim(a actor.Actor, d *delivery.Delivery) bool {
	if d.DriverID() == nil {
		return d.Status() == delivery.StatusPending
	}
	return d.DriverID().IsEqual(a.ID())
}
