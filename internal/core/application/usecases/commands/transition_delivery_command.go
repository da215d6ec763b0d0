package commands

import (
	"errors"
	"fmt"

	"livraison/internal/core/domain/model/actor"
	"livraison/internal/core/domain/model/delivery"
	"livraison/internal/core/domain/model/incident"
	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/pkg/errs"
	"livraison/internal/pkg/guard"
)

var (
	ErrTransitionDeliveryCommandIsNotConstructed = errors.New(
		"TransitionDeliveryCommand must be created via NewTransitionDeliveryCommand constructor",
	)
	ErrTransitionSignatureIsRequired    = errors.New("deliver requires a signature")
	ErrTransitionIncidentIsIncomplete   = errors.New("report_incident requires an incident type and a note")
	ErrTransitionPayloadIsNotApplicable = errors.New("payload fields do not apply to this action")
)

// Action is the lifecycle verb a transition command carries. Each action
// maps to exactly one target status; the legality of the move from the
// current status is decided by the aggregate, and the actor's right to
// request it by the access guard.
type Action int

const (
	// ActionUnknown represents an invalid or undefined action.
	ActionUnknown Action = iota
	// ActionTakeCharge is the driver starting the run (claims if unassigned).
	ActionTakeCharge
	// ActionDeliver is the driver confirming handover with a signature.
	ActionDeliver
	// ActionReportIncident is the driver flagging a problem on the road.
	ActionReportIncident
	// ActionCancel is the admin abandoning the delivery.
	ActionCancel
	// ActionReopen is the admin sending an incident delivery back out.
	ActionReopen
)

func getValidActionStrings() map[Action]string {
	//nolint:exhaustive // ActionUnknown is intentionally excluded as it's invalid
	return map[Action]string{
		ActionTakeCharge:     "take_charge",
		ActionDeliver:        "deliver",
		ActionReportIncident: "report_incident",
		ActionCancel:         "cancel",
		ActionReopen:         "reopen",
	}
}

// ActionFromString parses the wire representation of an action.
func ActionFromString(s string) (Action, error) {
	for action, str := range getValidActionStrings() {
		if str == s {
			return action, nil
		}
	}
	return ActionUnknown, errs.NewValueIsInvalidErrorWithCause("action",
		fmt.Errorf("%q is not a valid action", s))
}

// Validate checks that the action belongs to the closed enumeration.
func (a Action) Validate() error {
	if _, ok := getValidActionStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%d is not a valid action", a))
	}
	return nil
}

// String implements fmt.Stringer; safe to call on any value.
func (a Action) String() string {
	if str, ok := getValidActionStrings()[a]; ok {
		return str
	}
	return "unknown"
}

// TargetStatus returns the status this action drives the delivery to.
func (a Action) TargetStatus() delivery.Status {
	switch a {
	case ActionTakeCharge:
		return delivery.StatusInTransit
	case ActionDeliver:
		return delivery.StatusDelivered
	case ActionReportIncident:
		return delivery.StatusIncident
	case ActionCancel:
		return delivery.StatusCancelled
	case ActionReopen:
		return delivery.StatusAssigned
	default:
		return delivery.StatusUnknown
	}
}

// TransitionPayload carries the action-specific data of a transition:
// the signature for deliver, the incident classification and note for
// report_incident, and proof photos for either of the two.
type TransitionPayload struct {
	Signature    string
	Photos       []string
	IncidentType incident.Type
	IncidentNote string
}

// TransitionDeliveryCommand represents a request to move a delivery through
// its lifecycle. One command type covers every transition so the handler is
// the single place where authorization, concurrency control, the stock
// ledger and the incident recorder meet.
type TransitionDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID  kernel.UUID
	requestedBy actor.Actor
	action      Action
	payload     TransitionPayload

	guard guard.ConstructorGuard
}

// NewTransitionDeliveryCommand creates a transition command, checking that
// the payload matches the action: deliver needs a signature,
// report_incident needs a classification and a note, and the other actions
// carry no payload at all.
func NewTransitionDeliveryCommand(
	deliveryID kernel.UUID,
	requestedBy actor.Actor,
	action Action,
	payload TransitionPayload,
) (TransitionDeliveryCommand, error) {
	cmd := TransitionDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setRequestedBy(requestedBy),
		cmd.setAction(action, payload),
	); err != nil {
		return TransitionDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrTransitionDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to transition.
func (c TransitionDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// RequestedBy returns the actor issuing the command.
func (c TransitionDeliveryCommand) RequestedBy() actor.Actor {
	return c.requestedBy
}

// Action returns the lifecycle verb.
func (c TransitionDeliveryCommand) Action() Action {
	return c.action
}

// Payload returns the action-specific data.
func (c TransitionDeliveryCommand) Payload() TransitionPayload {
	return c.payload
}

func (c *TransitionDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *TransitionDeliveryCommand) setRequestedBy(requestedBy actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}

func (c *TransitionDeliveryCommand) setAction(action Action, payload TransitionPayload) error {
	if err := action.Validate(); err != nil {
		return err
	}

	switch action {
	case ActionDeliver:
		if payload.Signature == "" {
			return ErrTransitionSignatureIsRequired
		}
		if payload.IncidentType != incident.TypeUnknown || payload.IncidentNote != "" {
			return ErrTransitionPayloadIsNotApplicable
		}
	case ActionReportIncident:
		if payload.IncidentNote == "" {
			return ErrTransitionIncidentIsIncomplete
		}
		if err := payload.IncidentType.Validate(); err != nil {
			return ErrTransitionIncidentIsIncomplete
		}
		if payload.Signature != "" {
			return ErrTransitionPayloadIsNotApplicable
		}
	default:
		if payload.Signature != "" || payload.IncidentNote != "" || payload.IncidentType != incident.TypeUnknown {
			return ErrTransitionPayloadIsNotApplicable
		}
	}

	c.action = action
	c.payload = payload
	return nil
}
