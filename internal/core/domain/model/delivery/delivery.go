package delivery

import (
	"errors"
	"time"

	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/pkg/errs"
	"livraison/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

	// ErrReferenceIsRequired is returned when creating a delivery without a
	// human-readable reference.
	ErrReferenceIsRequired = errs.NewValueIsRequiredError("reference")

	// ErrClientNameIsRequired is returned when creating a delivery without a
	// client display name.
	ErrClientNameIsRequired = errs.NewValueIsRequiredError("client name")

	// ErrAddressIsRequired is returned when creating a delivery without a
	// destination address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")

	// ErrScheduledAtIsRequired is returned when creating a delivery without a
	// scheduled date.
	ErrScheduledAtIsRequired = errs.NewValueIsRequiredError("scheduledAt")

	// ErrDriverNameIsRequired is returned when assigning a driver without a
	// display name; the name is snapshotted onto the delivery for paperwork.
	ErrDriverNameIsRequired = errs.NewValueIsRequiredError("driver name")

	// ErrSignatureIsRequired is returned on a delivered transition without a
	// signature payload.
	ErrSignatureIsRequired = errs.NewValueIsRequiredError("signature")

	// ErrIncidentNoteIsRequired is returned on an incident transition without
	// a problem description.
	ErrIncidentNoteIsRequired = errs.NewValueIsRequiredError("incident note")

	// ErrPhotoURIIsRequired is returned when appending an empty photo URI.
	ErrPhotoURIIsRequired = errs.NewValueIsRequiredError("photo URI")

	// ErrDriverMismatch is returned when a driver tries to take charge of a
	// delivery already committed to another driver.
	ErrDriverMismatch = errors.New("delivery is assigned to another driver")

	// ErrPricingAlreadySet is returned when changing price or VAT after
	// creation; both are immutable once set.
	ErrPricingAlreadySet = errors.New("pricing is immutable after creation")
)

// Delivery is the aggregate root of the delivery lifecycle. It owns the
// canonical status and enforces every transition rule: which moves are
// legal, which payload each move requires, and which timestamps are set
// exactly once.
//
// Invariants maintained by this type:
//   - reference, clientId, items, price and vatRate never change after creation
//   - driverId is present iff status is assigned, in_transit, delivered or incident
//   - startedAt and deliveredAt are set exactly once; deliveredAt is present
//     iff status is delivered
//   - signature is set at most once, only by the delivered transition
//   - photos are append-only
//   - a terminal delivery (delivered, cancelled) accepts no further transition
type Delivery struct {
	id        kernel.UUID
	reference string
	status    Status
	priority  Priority

	clientID   kernel.UUID
	clientName string
	address    string
	geo        *kernel.GeoPoint

	driverID   *kernel.UUID
	driverName string

	scheduledAt time.Time
	startedAt   *time.Time
	deliveredAt *time.Time

	items        []Item
	photos       []string
	signature    string
	notes        string
	incidentNote string

	price   decimal.Decimal
	vatRate decimal.Decimal

	createdBy kernel.UUID
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewDelivery creates a delivery in pending status. Only dispatcher-role
// actors create deliveries; that rule lives in the access guard, not here.
// Optional attributes (coordinates, notes, pricing) are attached with the
// Set* methods before the aggregate is first persisted.
func NewDelivery(
	id kernel.UUID,
	reference string,
	clientID kernel.UUID,
	clientName string,
	address string,
	priority Priority,
	scheduledAt time.Time,
	items []Item,
	createdBy kernel.UUID,
	now time.Time,
) (*Delivery, error) {
	d := &Delivery{
		status:    StatusPending,
		priority:  priority,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setReference(reference),
		d.setClient(clientID, clientName),
		d.setAddress(address),
		priority.Validate(),
		d.setScheduledAt(scheduledAt),
		d.setItems(items),
		d.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDeliverySpec carries the persisted state of a delivery for
// reconstruction by a repository.
type RestoreDeliverySpec struct {
	ID           kernel.UUID
	Reference    string
	Status       Status
	Priority     Priority
	ClientID     kernel.UUID
	ClientName   string
	Address      string
	Geo          *kernel.GeoPoint
	DriverID     *kernel.UUID
	DriverName   string
	ScheduledAt  time.Time
	StartedAt    *time.Time
	DeliveredAt  *time.Time
	Items        []Item
	Photos       []string
	Signature    string
	Notes        string
	IncidentNote string
	Price        decimal.Decimal
	VatRate      decimal.Decimal
	CreatedBy    kernel.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RestoreDelivery reconstructs a delivery aggregate from persistence,
// re-checking the structural invariants so corrupt rows never become live
// aggregates.
func RestoreDelivery(spec RestoreDeliverySpec) (*Delivery, error) {
	d := &Delivery{
		status:       spec.Status,
		priority:     spec.Priority,
		geo:          spec.Geo,
		driverID:     spec.DriverID,
		driverName:   spec.DriverName,
		startedAt:    spec.StartedAt,
		deliveredAt:  spec.DeliveredAt,
		photos:       spec.Photos,
		signature:    spec.Signature,
		notes:        spec.Notes,
		incidentNote: spec.IncidentNote,
		price:        spec.Price,
		vatRate:      spec.VatRate,
		createdAt:    spec.CreatedAt,
		updatedAt:    spec.UpdatedAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(spec.ID),
		d.setReference(spec.Reference),
		d.setClient(spec.ClientID, spec.ClientName),
		d.setAddress(spec.Address),
		spec.Status.Validate(),
		spec.Priority.Validate(),
		d.setScheduledAt(spec.ScheduledAt),
		d.setItems(spec.Items),
		d.setCreatedBy(spec.CreatedBy),
	); err != nil {
		return nil, err
	}

	if err := d.validateDriverInvariant(); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by identity.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// SetGeo attaches geocoordinates to the destination address.
func (d *Delivery) SetGeo(p kernel.GeoPoint) error {
	if err := p.Validate(); err != nil {
		return err
	}
	d.geo = &p
	return nil
}

// SetNotes attaches free-text instructions for the driver.
func (d *Delivery) SetNotes(notes string) {
	d.notes = notes
}

// SetPricing attaches the billed price and VAT rate. Pricing is set at
// creation and immutable afterwards.
func (d *Delivery) SetPricing(price, vatRate decimal.Decimal) error {
	if !d.price.IsZero() || !d.vatRate.IsZero() {
		return ErrPricingAlreadySet
	}
	if price.IsNegative() || vatRate.IsNegative() {
		return errs.NewValueIsInvalidError("pricing")
	}
	d.price = price
	d.vatRate = vatRate
	return nil
}

// AssignDriver designates (or re-designates) the driver for this delivery
// and moves it to assigned status.
func (d *Delivery) AssignDriver(driverID kernel.UUID, driverName string, now time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if driverName == "" {
		return ErrDriverNameIsRequired
	}

	newStatus, err := d.status.Assign()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.driverID = &driverID
	d.driverName = driverName
	d.touch(now)
	return nil
}

// TakeCharge moves the delivery to in_transit on behalf of the given driver.
// An unassigned pending delivery is claimed by the caller; a delivery already
// committed to another driver is refused. startedAt is stamped on the first
// take-charge only.
func (d *Delivery) TakeCharge(driverID kernel.UUID, driverName string, now time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if d.driverID != nil && !d.driverID.IsEqual(driverID) {
		return ErrDriverMismatch
	}

	newStatus, err := d.status.Start()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.driverID = &driverID
	if driverName != "" {
		d.driverName = driverName
	}
	if d.startedAt == nil {
		started := now
		d.startedAt = &started
	}
	d.touch(now)
	return nil
}

// Deliver confirms the delivery with the customer's signature, stamps
// deliveredAt and moves to the terminal delivered status. The caller is
// responsible for running the stock decrement in the same unit of work.
func (d *Delivery) Deliver(signature string, now time.Time) error {
	if signature == "" {
		return ErrSignatureIsRequired
	}

	newStatus, err := d.status.Deliver()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.signature = signature
	delivered := now
	d.deliveredAt = &delivered
	d.touch(now)
	return nil
}

// ReportIncident records a problem reported from the road and moves the
// delivery to incident status. The incident record itself is a separate
// aggregate created by the coordinator.
func (d *Delivery) ReportIncident(note string, now time.Time) error {
	if note == "" {
		return ErrIncidentNoteIsRequired
	}

	newStatus, err := d.status.Report()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.incidentNote = note
	d.touch(now)
	return nil
}

// Cancel abandons a non-terminal delivery. No stock effect.
func (d *Delivery) Cancel(now time.Time) error {
	newStatus, err := d.status.Cancel()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.touch(now)
	return nil
}

// Reopen is the administrative override moving an incident delivery back to
// assigned. The incident note is cleared; the driver assignment is retained.
func (d *Delivery) Reopen(now time.Time) error {
	newStatus, err := d.status.Reopen()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.incidentNote = ""
	d.touch(now)
	return nil
}

// AddPhoto appends a proof photo URI. Photos are append-only.
func (d *Delivery) AddPhoto(uri string, now time.Time) error {
	if uri == "" {
		return ErrPhotoURIIsRequired
	}
	if d.status.IsTerminal() {
		return invalidTransition(d.status, d.status)
	}

	d.photos = append(d.photos, uri)
	d.touch(now)
	return nil
}

// ID returns the delivery identity.
func (d *Delivery) ID() kernel.UUID { return d.id }

// Reference returns the human-readable reference, e.g. "REF-2024-0042".
func (d *Delivery) Reference() string { return d.reference }

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status { return d.status }

// Priority returns the scheduling priority.
func (d *Delivery) Priority() Priority { return d.priority }

// ClientID returns the client identity.
func (d *Delivery) ClientID() kernel.UUID { return d.clientID }

// ClientName returns the client display name snapshot.
func (d *Delivery) ClientName() string { return d.clientName }

// Address returns the destination address.
func (d *Delivery) Address() string { return d.address }

// Geo returns the optional destination coordinates.
func (d *Delivery) Geo() *kernel.GeoPoint { return d.geo }

// DriverID returns the assigned driver's id, nil while pending.
func (d *Delivery) DriverID() *kernel.UUID { return d.driverID }

// DriverName returns the driver display name snapshot.
func (d *Delivery) DriverName() string { return d.driverName }

// ScheduledAt returns the planned delivery date.
func (d *Delivery) ScheduledAt() time.Time { return d.scheduledAt }

// StartedAt returns the take-charge timestamp, nil until in transit.
func (d *Delivery) StartedAt() *time.Time { return d.startedAt }

// DeliveredAt returns the confirmation timestamp, nil until delivered.
func (d *Delivery) DeliveredAt() *time.Time { return d.deliveredAt }

// Items returns the ordered line items.
func (d *Delivery) Items() []Item { return d.items }

// Photos returns the proof photo URIs in append order.
func (d *Delivery) Photos() []string { return d.photos }

// Signature returns the signature blob reference, empty until delivered.
func (d *Delivery) Signature() string { return d.signature }

// Notes returns the free-text dispatcher instructions.
func (d *Delivery) Notes() string { return d.notes }

// IncidentNote returns the driver's incident description, empty outside
// incident status.
func (d *Delivery) IncidentNote() string { return d.incidentNote }

// Price returns the billed amount excluding VAT; zero when unpriced.
func (d *Delivery) Price() decimal.Decimal { return d.price }

// VatRate returns the VAT rate, e.g. 0.20; zero when unpriced.
func (d *Delivery) VatRate() decimal.Decimal { return d.vatRate }

// CreatedBy returns the creating dispatcher's id.
func (d *Delivery) CreatedBy() kernel.UUID { return d.createdBy }

// CreatedAt returns the creation timestamp.
func (d *Delivery) CreatedAt() time.Time { return d.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (d *Delivery) UpdatedAt() time.Time { return d.updatedAt }

func (d *Delivery) touch(now time.Time) {
	d.updatedAt = now
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setReference(reference string) error {
	if reference == "" {
		return ErrReferenceIsRequired
	}
	d.reference = reference
	return nil
}

func (d *Delivery) setClient(clientID kernel.UUID, clientName string) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	if clientName == "" {
		return ErrClientNameIsRequired
	}
	d.clientID = clientID
	d.clientName = clientName
	return nil
}

func (d *Delivery) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	d.address = address
	return nil
}

func (d *Delivery) setScheduledAt(scheduledAt time.Time) error {
	if scheduledAt.IsZero() {
		return ErrScheduledAtIsRequired
	}
	d.scheduledAt = scheduledAt
	return nil
}

func (d *Delivery) setItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	d.items = items
	return nil
}

func (d *Delivery) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	d.createdBy = createdBy
	return nil
}

// validateDriverInvariant checks the driver-presence rule on restore:
// a driver is required from assigned onward, forbidden while pending.
// Cancelled rows keep whatever driver they had when abandoned, so the
// audit trail records who held the package.
func (d *Delivery) validateDriverInvariant() error {
	needsDriver := d.status == StatusAssigned || d.status == StatusInTransit ||
		d.status == StatusDelivered || d.status == StatusIncident

	if needsDriver && d.driverID == nil {
		return errs.NewValueIsInvalidError("driverId missing for status " + d.status.String())
	}
	if d.status == StatusPending && d.driverID != nil {
		return errs.NewValueIsInvalidError("driverId set for status " + d.status.String())
	}
	if (d.status == StatusDelivered) != (d.deliveredAt != nil) {
		return errs.NewValueIsInvalidError("deliveredAt inconsistent with status " + d.status.String())
	}
	return nil
}
