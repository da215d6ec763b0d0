package incident

import (
	"errors"
	"fmt"
	"time"

	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/pkg/errs"
	"livraison/internal/pkg/guard"
)

var (
	// ErrIncidentIsNotConstructed is returned when an Incident instance was
	// not created through NewIncident or RestoreIncident.
	ErrIncidentIsNotConstructed = errors.New("Incident must be created via NewIncident or RestoreIncident")

	// ErrDescriptionIsRequired is returned when opening an incident without a
	// description.
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")

	// ErrAlreadyResolved is returned when mutating a resolved incident.
	// Resolution is monotonic.
	ErrAlreadyResolved = errors.New("incident is already resolved")
)

// Type classifies what went wrong on the road.
type Type int

const (
	// TypeUnknown represents an invalid or undefined type.
	TypeUnknown Type = iota
	// TypeDamage covers goods damaged in transit.
	TypeDamage
	// TypeMissing covers packages lost or short on arrival.
	TypeMissing
	// TypeWrongAddress covers undeliverable destination data.
	TypeWrongAddress
	// TypeRefused covers recipients refusing the package.
	TypeRefused
	// TypeOther covers everything else; the description carries the detail.
	TypeOther
)

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[Type]string{
		TypeDamage:       "damage",
		TypeMissing:      "missing",
		TypeWrongAddress: "wrong_address",
		TypeRefused:      "refused",
		TypeOther:        "other",
	}
}

// TypeFromString parses the wire representation of an incident type.
func TypeFromString(s string) (Type, error) {
	for t, str := range getValidTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("incident type",
		fmt.Errorf("%q is not a valid incident type", s))
}

// Validate checks that the type belongs to the closed enumeration.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("incident type",
			fmt.Errorf("%d is not a valid incident type", t))
	}
	return nil
}

// String implements fmt.Stringer; safe to call on any value.
func (t Type) String() string {
	if str, ok := getValidTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Status tracks the handling of an incident: open -> in_review -> resolved.
// Resolution is terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota
	// StatusOpen is the initial state of a freshly reported incident.
	StatusOpen
	// StatusInReview means an admin has picked the incident up.
	StatusInReview
	// StatusResolved is terminal.
	StatusResolved
)

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusOpen:     "open",
		StatusInReview: "in_review",
		StatusResolved: "resolved",
	}
}

// StatusFromString parses the wire representation of an incident status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("incident status",
		fmt.Errorf("%q is not a valid incident status", s))
}

// Validate checks that the status belongs to the closed enumeration.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("incident status",
			fmt.Errorf("%d is not a valid incident status", s))
	}
	return nil
}

// String implements fmt.Stringer; safe to call on any value.
func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Incident is the record of a problem reported against a delivery. It is a
// separate aggregate so resolution workflow and delivery lifecycle evolve
// independently; the coordinator creates one whenever a delivery moves to
// incident status.
type Incident struct {
	id           kernel.UUID
	deliveryID   kernel.UUID
	incidentType Type
	status       Status
	description  string
	reportedBy   kernel.UUID
	reportedAt   time.Time
	resolvedBy   *kernel.UUID
	resolvedAt   *time.Time
	resolution   string

	guard guard.ConstructorGuard
}

// NewIncident opens an incident against a delivery.
func NewIncident(
	id kernel.UUID,
	deliveryID kernel.UUID,
	incidentType Type,
	description string,
	reportedBy kernel.UUID,
	now time.Time,
) (*Incident, error) {
	i := &Incident{
		status:     StatusOpen,
		reportedAt: now,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		i.setID(id),
		i.setDeliveryID(deliveryID),
		i.setType(incidentType),
		i.setDescription(description),
		i.setReportedBy(reportedBy),
	); err != nil {
		return nil, err
	}

	return i, nil
}

// RestoreIncidentSpec carries the persisted state of an incident.
type RestoreIncidentSpec struct {
	ID          kernel.UUID
	DeliveryID  kernel.UUID
	Type        Type
	Status      Status
	Description string
	ReportedBy  kernel.UUID
	ReportedAt  time.Time
	ResolvedBy  *kernel.UUID
	ResolvedAt  *time.Time
	Resolution  string
}

// RestoreIncident reconstructs an incident aggregate from persistence,
// re-checking that resolution fields are present iff the incident is
// resolved.
func RestoreIncident(spec RestoreIncidentSpec) (*Incident, error) {
	i := &Incident{
		status:     spec.Status,
		reportedAt: spec.ReportedAt,
		resolvedBy: spec.ResolvedBy,
		resolvedAt: spec.ResolvedAt,
		resolution: spec.Resolution,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		i.setID(spec.ID),
		i.setDeliveryID(spec.DeliveryID),
		i.setType(spec.Type),
		spec.Status.Validate(),
		i.setDescription(spec.Description),
		i.setReportedBy(spec.ReportedBy),
	); err != nil {
		return nil, err
	}

	resolved := spec.Status == StatusResolved
	if resolved != (spec.ResolvedAt != nil) || resolved != (spec.ResolvedBy != nil) {
		return nil, errs.NewValueIsInvalidError("resolution fields inconsistent with status " + spec.Status.String())
	}

	return i, nil
}

// Validate ensures the incident was created through a constructor.
func (i *Incident) Validate() error {
	if i == nil {
		return ErrIncidentIsNotConstructed
	}
	return i.guard.Validate(ErrIncidentIsNotConstructed)
}

// StartReview picks the incident up for handling. Idempotent while open or
// already in review.
func (i *Incident) StartReview() error {
	if i.status == StatusResolved {
		return ErrAlreadyResolved
	}
	i.status = StatusInReview
	return nil
}

// Resolve closes the incident with an outcome note. resolvedAt and
// resolvedBy are stamped together, exactly once.
func (i *Incident) Resolve(resolvedBy kernel.UUID, resolution string, now time.Time) error {
	if i.status == StatusResolved {
		return ErrAlreadyResolved
	}
	if err := resolvedBy.Validate(); err != nil {
		return err
	}

	i.status = StatusResolved
	i.resolvedBy = &resolvedBy
	resolvedAt := now
	i.resolvedAt = &resolvedAt
	i.resolution = resolution
	return nil
}

// ID returns the incident identity.
func (i *Incident) ID() kernel.UUID { return i.id }

// DeliveryID returns the delivery this incident was reported against.
func (i *Incident) DeliveryID() kernel.UUID { return i.deliveryID }

// Type returns the incident classification.
func (i *Incident) Type() Type { return i.incidentType }

// Status returns the handling status.
func (i *Incident) Status() Status { return i.status }

// Description returns the reporter's account of the problem.
func (i *Incident) Description() string { return i.description }

// ReportedBy returns the reporting actor's id, usually the driver.
func (i *Incident) ReportedBy() kernel.UUID { return i.reportedBy }

// ReportedAt returns the report timestamp.
func (i *Incident) ReportedAt() time.Time { return i.reportedAt }

// ResolvedBy returns the resolving admin's id, nil until resolved.
func (i *Incident) ResolvedBy() *kernel.UUID { return i.resolvedBy }

// ResolvedAt returns the resolution timestamp, nil until resolved.
func (i *Incident) ResolvedAt() *time.Time { return i.resolvedAt }

// Resolution returns the outcome note, empty until resolved.
func (i *Incident) Resolution() string { return i.resolution }

func (i *Incident) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Incident) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	i.deliveryID = deliveryID
	return nil
}

func (i *Incident) setType(incidentType Type) error {
	if err := incidentType.Validate(); err != nil {
		return err
	}
	i.incidentType = incidentType
	return nil
}

func (i *Incident) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}
	i.description = description
	return nil
}

func (i *Incident) setReportedBy(reportedBy kernel.UUID) error {
	if err := reportedBy.Validate(); err != nil {
		return err
	}
	i.reportedBy = reportedBy
	return nil
}
