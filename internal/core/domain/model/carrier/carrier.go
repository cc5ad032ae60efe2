package carrier

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const ratingPlaces = 2

var ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")

// Carrier is the aggregate root for a transport company.
//
// The rating is stored as the sum and count of every score so that the mean
// can be recomputed exactly; Rating rounds it for display.
type Carrier struct {
	id          kernel.UUID
	profile     kernel.Profile
	fleetSize   int
	ratingTotal int
	ratingCount int
	totalTrips  int
	createdAt   time.Time
	events      kernel.EventRecorder
	guard       guard.ConstructorGuard
}

func NewCarrier(id kernel.UUID, profile kernel.Profile, now time.Time) (*Carrier, error) {
	if err := errors.Join(id.Validate(), profile.Validate()); err != nil {
		return nil, err
	}

	c := &Carrier{
		id:        id,
		profile:   profile,
		createdAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}
	c.events.Record(RegisteredEvent{
		Event:       kernel.NewEvent(EventCarrierRegistered, id, now),
		CompanyName: profile.CompanyName(),
		Email:       profile.Email(),
	})
	return c, nil
}

// State is the persisted form of a carrier.
type State struct {
	ID          kernel.UUID
	Profile     kernel.Profile
	FleetSize   int
	RatingTotal int
	RatingCount int
	TotalTrips  int
	CreatedAt   time.Time
}

func RestoreCarrier(s State) (*Carrier, error) {
	var countersErr error
	if s.FleetSize < 0 || s.RatingTotal < 0 || s.RatingCount < 0 || s.TotalTrips < 0 {
		countersErr = errs.NewValueIsInvalidErrorWithCause("counters", fmt.Errorf("negative counter in %+v", s))
	}
	if err := errors.Join(s.ID.Validate(), s.Profile.Validate(), countersErr); err != nil {
		return nil, err
	}
	return &Carrier{
		id:          s.ID,
		profile:     s.Profile,
		fleetSize:   s.FleetSize,
		ratingTotal: s.RatingTotal,
		ratingCount: s.RatingCount,
		totalTrips:  s.TotalTrips,
		createdAt:   s.CreatedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c *Carrier) Validate() error {
	if c == nil {
		return ErrCarrierIsNotConstructed
	}
	return c.guard.Validate(ErrCarrierIsNotConstructed)
}

func (c *Carrier) ID() kernel.UUID {
	return c.id
}

func (c *Carrier) Profile() kernel.Profile {
	return c.profile
}

func (c *Carrier) FleetSize() int {
	return c.fleetSize
}

func (c *Carrier) RatingTotal() int {
	return c.ratingTotal
}

func (c *Carrier) RatingCount() int {
	return c.ratingCount
}

func (c *Carrier) TotalTrips() int {
	return c.totalTrips
}

func (c *Carrier) CreatedAt() time.Time {
	return c.createdAt
}

// Rating is the mean score rounded to 2 decimals, or zero before the first rating.
func (c *Carrier) Rating() decimal.Decimal {
	if c.ratingCount == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(c.ratingTotal)).
		Div(decimal.NewFromInt(int64(c.ratingCount))).
		Round(ratingPlaces)
}

func (c *Carrier) IncrementFleet() {
	c.fleetSize++
}

func (c *Carrier) DecrementFleet() error {
	if c.fleetSize == 0 {
		return errs.NewInvalidStateError("fleet size cannot go below zero")
	}
	c.fleetSize--
	return nil
}

// RecordTrip counts a delivered load.
func (c *Carrier) RecordTrip() {
	c.totalTrips++
}

// Rate records a shipper's score for a delivered load and folds it into the
// carrier's rating. The caller ensures the load has not been rated before.
func (c *Carrier) Rate(ratingID, loadID, shipperID kernel.UUID, score int, now time.Time) (*Rating, error) {
	rating, err := newRating(ratingID, loadID, shipperID, c.id, score, now)
	if err != nil {
		return nil, err
	}

	c.ratingTotal += score
	c.ratingCount++
	c.events.Record(RatedEvent{
		Event:       kernel.NewEvent(EventCarrierRated, c.id, now),
		LoadID:      loadID,
		ShipperID:   shipperID,
		Score:       score,
		Rating:      c.Rating(),
		RatingCount: c.ratingCount,
	})
	return rating, nil
}

func (c *Carrier) DomainEvents() []kernel.DomainEvent {
	return c.events.Events()
}

func (c *Carrier) ClearDomainEvents() {
	c.events.Clear()
}
