package load

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	DescriptionMaxLength = 500
	lcvMaxTons           = 3
)

var ErrLoadIsNotConstructed = errors.New("Load must be created via NewLoad constructor")

// Load is the aggregate root for a shipment.
type Load struct {
	id              kernel.UUID
	shipperID       kernel.UUID
	pickup          kernel.Address
	delivery        kernel.Address
	material        string
	description     string
	requirement     kernel.Capacity
	requiredTypes   kernel.VehicleTypeSet
	budget          kernel.Money
	schedule        Schedule
	selectedCarrier *kernel.UUID
	assignedVehicle *kernel.UUID
	status          Status
	createdAt       time.Time
	events          kernel.EventRecorder
	guard           guard.ConstructorGuard
}

// Draft is the shipper's input for a new load. Weight is read only for
// non-tanker loads and volume only for tanker loads; the other figure is ignored.
type Draft struct {
	ShipperID            kernel.UUID
	Pickup               kernel.Address
	Delivery             kernel.Address
	Material             string
	Description          string
	WeightTons           decimal.Decimal
	VolumeLitres         decimal.Decimal
	RequiredTypes        []kernel.VehicleType
	BudgetPrice          decimal.Decimal
	BiddingDeadline      time.Time
	PickupDate           time.Time
	ExpectedDeliveryDate time.Time
}

// NewLoad validates the draft, collecting every field error, and returns a
// CREATED load with no assignment.
func NewLoad(id kernel.UUID, d Draft, now time.Time) (*Load, error) {
	l := &Load{
		status:    Created,
		createdAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setShipper(d.ShipperID),
		l.setMaterial(d.Material),
		l.setDescription(d.Description),
		l.setRoute(d.Pickup, d.Delivery),
		l.setCargo(d.RequiredTypes, d.WeightTons, d.VolumeLitres),
		l.setBudget(d.BudgetPrice),
		l.setSchedule(d.BiddingDeadline, d.PickupDate, d.ExpectedDeliveryDate, now),
	); err != nil {
		return nil, err
	}

	l.events.Record(CreatedEvent{
		Event:           kernel.NewEvent(EventLoadCreated, l.id, now),
		ShipperID:       l.shipperID,
		Material:        l.material,
		RequiredTypes:   l.requiredTypes.Strings(),
		BudgetPrice:     l.budget,
		BiddingDeadline: l.schedule.BiddingDeadline(),
	})
	return l, nil
}

// State is the persisted form of a load.
type State struct {
	ID              kernel.UUID
	ShipperID       kernel.UUID
	Pickup          kernel.Address
	Delivery        kernel.Address
	Material        string
	Description     string
	Requirement     kernel.Capacity
	RequiredTypes   kernel.VehicleTypeSet
	Budget          kernel.Money
	Schedule        Schedule
	SelectedCarrier *kernel.UUID
	AssignedVehicle *kernel.UUID
	Status          Status
	CreatedAt       time.Time
}

// RestoreLoad rehydrates a load from storage. It checks structural
// consistency but not creation-time rules such as dates in the past.
func RestoreLoad(s State) (*Load, error) {
	l := &Load{
		id:              s.ID,
		shipperID:       s.ShipperID,
		pickup:          s.Pickup,
		delivery:        s.Delivery,
		material:        s.Material,
		description:     s.Description,
		requirement:     s.Requirement,
		requiredTypes:   s.RequiredTypes,
		budget:          s.Budget,
		schedule:        s.Schedule,
		selectedCarrier: s.SelectedCarrier,
		assignedVehicle: s.AssignedVehicle,
		status:          s.Status,
		createdAt:       s.CreatedAt,
		guard:           guard.NewConstructorGuard(),
	}

	var assignmentErr error
	hasAssignment := s.SelectedCarrier != nil && s.AssignedVehicle != nil
	if hasAssignment != s.Status.HasAssignment() {
		assignmentErr = errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is inconsistent with assignment present=%t", s.Status, hasAssignment),
		)
	}

	if err := errors.Join(
		s.ID.Validate(),
		s.ShipperID.Validate(),
		s.Pickup.Validate(),
		s.Delivery.Validate(),
		s.Requirement.Validate(),
		s.Budget.Validate(),
		s.Schedule.Validate(),
		s.Status.Validate(),
		assignmentErr,
	); err != nil {
		return nil, err
	}
	if s.RequiredTypes.IsEmpty() {
		return nil, errs.NewValueIsRequiredError("requiredVehicleTypes")
	}

	return l, nil
}

func (l *Load) Validate() error {
	if l == nil {
		return ErrLoadIsNotConstructed
	}
	return l.guard.Validate(ErrLoadIsNotConstructed)
}

func (l *Load) IsEqual(other *Load) bool {
	return other != nil && l.id.IsEqual(other.id)
}

func (l *Load) ID() kernel.UUID {
	return l.id
}

func (l *Load) ShipperID() kernel.UUID {
	return l.shipperID
}

func (l *Load) Pickup() kernel.Address {
	return l.pickup
}

func (l *Load) Delivery() kernel.Address {
	return l.delivery
}

func (l *Load) Material() string {
	return l.material
}

func (l *Load) Description() string {
	return l.description
}

// Requirement is the capacity a vehicle must cover: litres for tanker loads, tons otherwise.
func (l *Load) Requirement() kernel.Capacity {
	return l.requirement
}

func (l *Load) RequiredTypes() kernel.VehicleTypeSet {
	return l.requiredTypes
}

func (l *Load) Budget() kernel.Money {
	return l.budget
}

func (l *Load) Schedule() Schedule {
	return l.schedule
}

// SelectedCarrier returns nil until the load is assigned.
func (l *Load) SelectedCarrier() *kernel.UUID {
	if l.selectedCarrier == nil {
		return nil
	}
	id := *l.selectedCarrier
	return &id
}

// AssignedVehicle returns nil until the load is assigned.
func (l *Load) AssignedVehicle() *kernel.UUID {
	if l.assignedVehicle == nil {
		return nil
	}
	id := *l.assignedVehicle
	return &id
}

func (l *Load) Status() Status {
	return l.status
}

func (l *Load) CreatedAt() time.Time {
	return l.createdAt
}

func (l *Load) IsOwnedBy(shipperID kernel.UUID) bool {
	return l.shipperID.IsEqual(shipperID)
}

func (l *Load) IsAssignedTo(carrierID kernel.UUID) bool {
	return l.selectedCarrier != nil && l.selectedCarrier.IsEqual(carrierID)
}

// CheckOpenForBidding fails unless the load is CREATED and its bidding deadline is still ahead.
func (l *Load) CheckOpenForBidding(now time.Time) error {
	if l.status != Created {
		return errs.NewInvalidStateErrorWithCause("load is not open for bidding", fmt.Errorf("load is %s", l.status))
	}
	if !l.schedule.BiddingOpen(now) {
		return errs.NewInvalidStateError("bidding deadline has passed")
	}
	return nil
}

// CheckAcceptingBids fails unless the load is CREATED, bidding has closed and
// pickup has not been reached.
func (l *Load) CheckAcceptingBids(now time.Time) error {
	if l.status != Created {
		return errs.NewInvalidStateErrorWithCause("load is no longer accepting bids", fmt.Errorf("load is %s", l.status))
	}
	if l.schedule.BiddingOpen(now) {
		return errs.NewInvalidStateError("bidding is still open; bids can be accepted after the deadline")
	}
	if l.schedule.PickupReached(now) {
		return errs.NewInvalidStateError("pickup date has passed; the load has expired")
	}
	return nil
}

// Assign moves the load to ASSIGNED with the winning carrier and vehicle.
func (l *Load) Assign(carrierID, vehicleID kernel.UUID, now time.Time) error {
	if err := errors.Join(carrierID.Validate(), vehicleID.Validate()); err != nil {
		return err
	}
	if err := l.CheckAcceptingBids(now); err != nil {
		return err
	}

	newStatus, err := l.status.Assign()
	if err != nil {
		return err
	}

	l.status = newStatus
	l.selectedCarrier = &carrierID
	l.assignedVehicle = &vehicleID
	l.events.Record(AssignedEvent{
		Event:     kernel.NewEvent(EventLoadAssigned, l.id, now),
		ShipperID: l.shipperID,
		CarrierID: carrierID,
		VehicleID: vehicleID,
	})
	return nil
}

// StartTransit is called by the selected carrier once the load is ASSIGNED.
func (l *Load) StartTransit(carrierID kernel.UUID, now time.Time) error {
	if !l.IsAssignedTo(carrierID) {
		return errs.NewForbiddenError("load is not assigned to this carrier")
	}

	newStatus, err := l.status.StartTransit()
	if err != nil {
		return err
	}
	if l.schedule.BiddingOpen(now) {
		return errs.NewInvalidStateError("transit cannot start before the bidding deadline")
	}

	l.status = newStatus
	l.events.Record(InTransitEvent{
		Event:     kernel.NewEvent(EventLoadInTransit, l.id, now),
		CarrierID: carrierID,
		VehicleID: *l.assignedVehicle,
	})
	return nil
}

// Deliver is called by the selected carrier once the load is IN_TRANSIT.
func (l *Load) Deliver(carrierID kernel.UUID, now time.Time) error {
	if !l.IsAssignedTo(carrierID) {
		return errs.NewForbiddenError("load is not assigned to this carrier")
	}

	newStatus, err := l.status.Deliver()
	if err != nil {
		return err
	}

	l.status = newStatus
	l.events.Record(DeliveredEvent{
		Event:     kernel.NewEvent(EventLoadDelivered, l.id, now),
		ShipperID: l.shipperID,
		CarrierID: carrierID,
		VehicleID: *l.assignedVehicle,
	})
	return nil
}

func (l *Load) DomainEvents() []kernel.DomainEvent {
	return l.events.Events()
}

func (l *Load) ClearDomainEvents() {
	l.events.Clear()
}

func (l *Load) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Load) setShipper(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipperId", err)
	}
	l.shipperID = shipperID
	return nil
}

func (l *Load) setMaterial(material string) error {
	material = strings.TrimSpace(material)
	if material == "" {
		return errs.NewValueIsRequiredError("material")
	}
	l.material = material
	return nil
}

func (l *Load) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if n := utf8.RuneCountInString(description); n > DescriptionMaxLength {
		return errs.NewValueIsOutOfRangeError("description length", n, 0, DescriptionMaxLength)
	}
	l.description = description
	return nil
}

func (l *Load) setRoute(pickup, delivery kernel.Address) error {
	if err := errors.Join(pickup.Validate(), delivery.Validate()); err != nil {
		return err
	}
	if pickup.SameSpot(delivery) {
		return errs.NewInvalidStateError("pickup and delivery locations cannot be on the same street")
	}
	l.pickup = pickup
	l.delivery = delivery
	return nil
}

func (l *Load) setCargo(types []kernel.VehicleType, weightTons, volumeLitres decimal.Decimal) error {
	set, err := kernel.NewVehicleTypeSet(types)
	if err != nil {
		return err
	}

	var requirement kernel.Capacity
	switch {
	case set.Contains(kernel.Tanker) && set.Len() > 1:
		return errs.NewInvalidStateError("TANKER cannot be combined with other vehicle types")
	case set.Contains(kernel.Tanker):
		if !volumeLitres.IsPositive() {
			return errs.NewInvalidStateError("TANKER load must have volume in litres")
		}
		requirement, err = kernel.NewCapacity(kernel.Litres, volumeLitres)
	default:
		if !weightTons.IsPositive() {
			return errs.NewInvalidStateError("non-TANKER load must have weight in tons")
		}
		if set.Contains(kernel.LCV) && weightTons.GreaterThan(decimal.NewFromInt(lcvMaxTons)) {
			return errs.NewInvalidStateError("LCV cannot be used for loads over 3 tons")
		}
		requirement, err = kernel.NewCapacity(kernel.Tons, weightTons)
	}
	if err != nil {
		return err
	}

	l.requiredTypes = set
	l.requirement = requirement
	return nil
}

func (l *Load) setBudget(amount decimal.Decimal) error {
	budget, err := kernel.NewMoney("budgetPrice", amount)
	if err != nil {
		return err
	}
	l.budget = budget
	return nil
}

func (l *Load) setSchedule(biddingDeadline, pickupDate, expectedDeliveryDate, now time.Time) error {
	schedule, err := NewSchedule(biddingDeadline, pickupDate, expectedDeliveryDate, now)
	if err != nil {
		return err
	}
	l.schedule = schedule
	return nil
}
