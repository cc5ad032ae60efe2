package vehicle

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	// lcvMaxTons separates light commercial vehicles from the heavier tonnage types.
	lcvMaxTons = 3
	// manufacturingWindowYears is how far back a manufacturing year may go.
	manufacturingWindowYears = 20
)

var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Dimensions are the cargo bed measurements in feet. Tankers have none and
// flatbeds have no height.
type Dimensions struct {
	LengthFt float64
	WidthFt  float64
	HeightFt float64
}

// Spec is the carrier's input when registering a vehicle. Tons and
// dimensions are ignored for a tanker; litres are ignored for everything else.
type Spec struct {
	Number            string
	Type              kernel.VehicleType
	CapacityTons      decimal.Decimal
	CapacityLitres    decimal.Decimal
	Dimensions        Dimensions
	ManufacturingYear int
}

// Vehicle is the aggregate root for a carrier's vehicle.
//
// Its status is the marketplace's contended resource: a vehicle leaves
// AVAILABLE the moment a bid is placed with it, so one vehicle can never back
// two active bids or two loads at once.
type Vehicle struct {
	id                kernel.UUID
	carrierID         kernel.UUID
	number            Number
	vehicleType       kernel.VehicleType
	capacity          kernel.Capacity
	dimensions        Dimensions
	manufacturingYear int
	status            Status
	createdAt         time.Time
	events            kernel.EventRecorder
	guard             guard.ConstructorGuard
}

// NewVehicle validates spec, collecting every field error, and returns an
// AVAILABLE vehicle owned by carrierID.
//
// Example:
//
//	v, err := NewVehicle(kernel.NewUUID(), carrierID, Spec{
//	    Number:            "MH12AB1234",
//	    Type:              kernel.Tanker,
//	    CapacityLitres:    decimal.NewFromInt(20000),
//	    ManufacturingYear: 2021,
//	}, time.Now())
func NewVehicle(id, carrierID kernel.UUID, spec Spec, now time.Time) (*Vehicle, error) {
	v := &Vehicle{
		status:    Available,
		createdAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setCarrier(carrierID),
		v.setNumber(spec.Number),
		v.setTypeAndCapacity(spec),
		v.setManufacturingYear(spec.ManufacturingYear, now),
	); err != nil {
		return nil, err
	}

	v.events.Record(RegisteredEvent{
		Event:     kernel.NewEvent(EventVehicleRegistered, v.id, now),
		CarrierID: v.carrierID,
		Number:    v.number.String(),
		Type:      v.vehicleType.String(),
		Capacity:  v.capacity.String(),
	})
	return v, nil
}

// State is the persisted form of a vehicle.
type State struct {
	ID                kernel.UUID
	CarrierID         kernel.UUID
	Number            string
	Type              kernel.VehicleType
	Capacity          kernel.Capacity
	Dimensions        Dimensions
	ManufacturingYear int
	Status            Status
	CreatedAt         time.Time
}

// RestoreVehicle rehydrates a vehicle from storage without re-applying
// registration rules such as the manufacturing window.
func RestoreVehicle(s State) (*Vehicle, error) {
	number, numberErr := NewNumber(s.Number)

	var unitErr error
	if s.Type.CapacityUnit() != s.Capacity.Unit() {
		unitErr = errs.NewValueIsInvalidErrorWithCause(
			"capacity",
			fmt.Errorf("%s is rated in %s, got %s", s.Type, s.Type.CapacityUnit(), s.Capacity.Unit()),
		)
	}

	if err := errors.Join(
		s.ID.Validate(),
		s.CarrierID.Validate(),
		numberErr,
		s.Type.Validate(),
		s.Capacity.Validate(),
		unitErr,
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Vehicle{
		id:                s.ID,
		carrierID:         s.CarrierID,
		number:            number,
		vehicleType:       s.Type,
		capacity:          s.Capacity,
		dimensions:        s.Dimensions,
		manufacturingYear: s.ManufacturingYear,
		status:            s.Status,
		createdAt:         s.CreatedAt,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

func (v *Vehicle) CarrierID() kernel.UUID {
	return v.carrierID
}

func (v *Vehicle) Number() Number {
	return v.number
}

func (v *Vehicle) Type() kernel.VehicleType {
	return v.vehicleType
}

// Capacity is litres for a tanker and tons for everything else.
func (v *Vehicle) Capacity() kernel.Capacity {
	return v.capacity
}

func (v *Vehicle) Dimensions() Dimensions {
	return v.dimensions
}

func (v *Vehicle) ManufacturingYear() int {
	return v.manufacturingYear
}

func (v *Vehicle) Status() Status {
	return v.status
}

func (v *Vehicle) CreatedAt() time.Time {
	return v.createdAt
}

func (v *Vehicle) IsOwnedBy(carrierID kernel.UUID) bool {
	return v.carrierID.IsEqual(carrierID)
}

// MarkBidded reserves an AVAILABLE vehicle for a new bid.
func (v *Vehicle) MarkBidded() error {
	return v.transition(v.status.MarkBidded)
}

// Book marks the vehicle of the accepted bid.
func (v *Vehicle) Book() error {
	return v.transition(v.status.Book)
}

// Release returns the vehicle of a rejected bid to the pool.
func (v *Vehicle) Release() error {
	return v.transition(v.status.Release)
}

func (v *Vehicle) StartTransit() error {
	return v.transition(v.status.StartTransit)
}

// CompleteTrip frees the vehicle once its load is delivered.
func (v *Vehicle) CompleteTrip() error {
	return v.transition(v.status.CompleteTrip)
}

func (v *Vehicle) EnterMaintenance() error {
	return v.transition(v.status.EnterMaintenance)
}

// RequestStatus applies a status change asked for by the owning carrier.
// Only AVAILABLE -> MAINTENANCE and MAINTENANCE -> AVAILABLE may be requested;
// every other edge belongs to bidding, assignment, transit or removal.
func (v *Vehicle) RequestStatus(target Status) error {
	switch {
	case target == Maintenance:
		return v.EnterMaintenance()
	case target == Available && v.status == Maintenance:
		return v.transition(v.status.ExitMaintenance)
	default:
		return errs.NewInvalidStateErrorWithCause(
			fmt.Sprintf("vehicle status cannot be changed to %s directly", target),
			fmt.Errorf("vehicle is %s", v.status),
		)
	}
}

// Spec returns the vehicle's current registration details.
func (v *Vehicle) Spec() Spec {
	return Spec{
		Number:            v.number.String(),
		Type:              v.vehicleType,
		CapacityTons:      v.capacity.Tons(),
		CapacityLitres:    v.capacity.Litres(),
		Dimensions:        v.dimensions,
		ManufacturingYear: v.manufacturingYear,
	}
}

// UpdateDetails replaces the registration details of an AVAILABLE or
// MAINTENANCE vehicle. The rules of NewVehicle apply again and every field
// error is collected; on failure nothing changes. The manufacturing window is
// only checked when the year itself changes, so an old vehicle can still be
// edited.
func (v *Vehicle) UpdateDetails(spec Spec, now time.Time) error {
	if v.status != Available && v.status != Maintenance {
		return errs.NewInvalidStateErrorWithCause(
			"vehicle details cannot change while it is committed to a bid or load",
			fmt.Errorf("vehicle is %s", v.status),
		)
	}

	next := &Vehicle{manufacturingYear: v.manufacturingYear}
	var yearErr error
	if spec.ManufacturingYear != v.manufacturingYear {
		yearErr = next.setManufacturingYear(spec.ManufacturingYear, now)
	}
	if err := errors.Join(
		next.setNumber(spec.Number),
		next.setTypeAndCapacity(spec),
		yearErr,
	); err != nil {
		return err
	}

	v.number = next.number
	v.vehicleType = next.vehicleType
	v.capacity = next.capacity
	v.dimensions = next.dimensions
	v.manufacturingYear = next.manufacturingYear

	v.events.Record(UpdatedEvent{
		Event:     kernel.NewEvent(EventVehicleUpdated, v.id, now),
		CarrierID: v.carrierID,
		Number:    v.number.String(),
		Type:      v.vehicleType.String(),
		Capacity:  v.capacity.String(),
	})
	return nil
}

// Removal is the outcome of Remove.
type Removal int

const (
	// HardDelete means the vehicle never took part in a bid or load and may be erased.
	HardDelete Removal = iota + 1
	// SoftRetire means the vehicle is kept as RETIRED for its history.
	SoftRetire
)

// Remove decides how the vehicle leaves the fleet. A vehicle that is still
// committed to a bid or load cannot be removed. An AVAILABLE vehicle without
// history is deleted outright; any other vehicle is retired.
func (v *Vehicle) Remove(hasHistory bool, now time.Time) (Removal, error) {
	if v.status == Retired {
		return 0, errs.NewInvalidStateError("vehicle is already retired")
	}
	if v.status.IsActive() {
		return 0, errs.NewInvalidStateErrorWithCause(
			"vehicle cannot be removed while it is committed to a bid or load",
			fmt.Errorf("vehicle is %s", v.status),
		)
	}
	if !hasHistory && v.status == Available {
		return HardDelete, nil
	}

	if err := v.transition(v.status.Retire); err != nil {
		return 0, err
	}
	v.events.Record(RetiredEvent{
		Event:     kernel.NewEvent(EventVehicleRetired, v.id, now),
		CarrierID: v.carrierID,
		Number:    v.number.String(),
	})
	return SoftRetire, nil
}

func (v *Vehicle) DomainEvents() []kernel.DomainEvent {
	return v.events.Events()
}

func (v *Vehicle) ClearDomainEvents() {
	v.events.Clear()
}

func (v *Vehicle) transition(move func() (Status, error)) error {
	newStatus, err := move()
	if err != nil {
		return err
	}
	v.status = newStatus
	return nil
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setCarrier(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("carrierId", err)
	}
	v.carrierID = carrierID
	return nil
}

func (v *Vehicle) setNumber(raw string) error {
	number, err := NewNumber(raw)
	if err != nil {
		return err
	}
	v.number = number
	return nil
}

func (v *Vehicle) setTypeAndCapacity(spec Spec) error {
	if spec.Type == kernel.UnknownVehicleType {
		return errs.NewValueIsRequiredError("vehicleType")
	}
	if err := spec.Type.Validate(); err != nil {
		return err
	}

	if spec.Type == kernel.Tanker {
		if !spec.CapacityLitres.IsPositive() {
			return errs.NewInvalidStateError("TANKER vehicle must have capacity in litres")
		}
		capacity, err := kernel.NewCapacity(kernel.Litres, spec.CapacityLitres)
		if err != nil {
			return err
		}
		v.vehicleType = spec.Type
		v.capacity = capacity
		v.dimensions = Dimensions{}
		return nil
	}

	var errList []error
	tons := spec.CapacityTons
	switch {
	case !tons.IsPositive():
		errList = append(errList, errs.NewInvalidStateError(
			fmt.Sprintf("%s vehicle must have capacity in tons", spec.Type)))
	case spec.Type == kernel.LCV && tons.GreaterThan(decimal.NewFromInt(lcvMaxTons)):
		errList = append(errList, errs.NewInvalidStateError("LCV capacity cannot exceed 3 tons"))
	case spec.Type != kernel.LCV && !tons.GreaterThan(decimal.NewFromInt(lcvMaxTons)):
		errList = append(errList, errs.NewInvalidStateError(
			fmt.Sprintf("%s capacity must be over 3 tons", spec.Type)))
	}

	dims := spec.Dimensions
	if dims.LengthFt <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("lengthFt"))
	}
	if dims.WidthFt <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("widthFt"))
	}
	if spec.Type == kernel.TrailerFlatbed {
		dims.HeightFt = 0
	} else if dims.HeightFt <= 0 {
		errList = append(errList, errs.NewValueIsRequiredError("heightFt"))
	}

	if err := errors.Join(errList...); err != nil {
		return err
	}

	capacity, err := kernel.NewCapacity(kernel.Tons, tons)
	if err != nil {
		return err
	}
	v.vehicleType = spec.Type
	v.capacity = capacity
	v.dimensions = dims
	return nil
}

func (v *Vehicle) setManufacturingYear(year int, now time.Time) error {
	current := now.Year()
	if year < current-manufacturingWindowYears || year > current {
		return errs.NewValueIsOutOfRangeError("manufacturingYear", year, current-manufacturingWindowYears, current)
	}
	v.manufacturingYear = year
	return nil
}
