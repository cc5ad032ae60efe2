package bid

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrBidIsNotConstructed = errors.New("Bid must be created via NewBid constructor")

// Bid is a carrier's offer on a load.
type Bid struct {
	id             kernel.UUID
	loadID         kernel.UUID
	carrierID      kernel.UUID
	vehicleID      kernel.UUID
	amount         kernel.Money
	estimatedHours int
	status         Status
	createdAt      time.Time
	events         kernel.EventRecorder
	guard          guard.ConstructorGuard
}

// NewBid returns a PENDING bid. Amount and estimated hours must both be positive.
func NewBid(
	id, loadID, carrierID, vehicleID kernel.UUID,
	amount decimal.Decimal,
	estimatedHours int,
	now time.Time,
) (*Bid, error) {
	money, amountErr := kernel.NewMoney("bidAmount", amount)

	var hoursErr error
	if estimatedHours <= 0 {
		hoursErr = errs.NewValueIsInvalidError("estimatedTransitTimeHours")
	}

	if err := errors.Join(
		id.Validate(),
		loadID.Validate(),
		carrierID.Validate(),
		vehicleID.Validate(),
		amountErr,
		hoursErr,
	); err != nil {
		return nil, err
	}

	b := &Bid{
		id:             id,
		loadID:         loadID,
		carrierID:      carrierID,
		vehicleID:      vehicleID,
		amount:         money,
		estimatedHours: estimatedHours,
		status:         Pending,
		createdAt:      now.UTC(),
		guard:          guard.NewConstructorGuard(),
	}
	b.events.Record(PlacedEvent{
		Event:          kernel.NewEvent(EventBidPlaced, id, now),
		LoadID:         loadID,
		CarrierID:      carrierID,
		VehicleID:      vehicleID,
		Amount:         money,
		EstimatedHours: estimatedHours,
	})
	return b, nil
}

// State is the persisted form of a bid.
type State struct {
	ID             kernel.UUID
	LoadID         kernel.UUID
	CarrierID      kernel.UUID
	VehicleID      kernel.UUID
	Amount         kernel.Money
	EstimatedHours int
	Status         Status
	CreatedAt      time.Time
}

func RestoreBid(s State) (*Bid, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.LoadID.Validate(),
		s.CarrierID.Validate(),
		s.VehicleID.Validate(),
		s.Amount.Validate(),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}
	return &Bid{
		id:             s.ID,
		loadID:         s.LoadID,
		carrierID:      s.CarrierID,
		vehicleID:      s.VehicleID,
		amount:         s.Amount,
		estimatedHours: s.EstimatedHours,
		status:         s.Status,
		createdAt:      s.CreatedAt,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (b *Bid) Validate() error {
	if b == nil {
		return ErrBidIsNotConstructed
	}
	return b.guard.Validate(ErrBidIsNotConstructed)
}

func (b *Bid) ID() kernel.UUID {
	return b.id
}

func (b *Bid) LoadID() kernel.UUID {
	return b.loadID
}

func (b *Bid) CarrierID() kernel.UUID {
	return b.carrierID
}

func (b *Bid) VehicleID() kernel.UUID {
	return b.vehicleID
}

func (b *Bid) Amount() kernel.Money {
	return b.amount
}

func (b *Bid) EstimatedHours() int {
	return b.estimatedHours
}

func (b *Bid) Status() Status {
	return b.status
}

func (b *Bid) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Bid) IsPlacedBy(carrierID kernel.UUID) bool {
	return b.carrierID.IsEqual(carrierID)
}

func (b *Bid) IsFor(loadID kernel.UUID) bool {
	return b.loadID.IsEqual(loadID)
}

func (b *Bid) Accept(now time.Time) error {
	newStatus, err := b.status.Accept()
	if err != nil {
		return err
	}
	b.status = newStatus
	b.events.Record(AcceptedEvent{
		Event:     kernel.NewEvent(EventBidAccepted, b.id, now),
		LoadID:    b.loadID,
		CarrierID: b.carrierID,
		VehicleID: b.vehicleID,
		Amount:    b.amount,
	})
	return nil
}

func (b *Bid) Reject(now time.Time) error {
	newStatus, err := b.status.Reject()
	if err != nil {
		return err
	}
	b.status = newStatus
	b.events.Record(RejectedEvent{
		Event:     kernel.NewEvent(EventBidRejected, b.id, now),
		LoadID:    b.loadID,
		CarrierID: b.carrierID,
		VehicleID: b.vehicleID,
	})
	return nil
}

func (b *Bid) DomainEvents() []kernel.DomainEvent {
	return b.events.Events()
}

func (b *Bid) ClearDomainEvents() {
	b.events.Clear()
}
