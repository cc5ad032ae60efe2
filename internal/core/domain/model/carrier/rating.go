package carrier

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

const (
	MinScore = 1
	MaxScore = 5
)

var ErrRatingIsNotConstructed = errors.New("Rating must be created via Carrier.Rate")

// Rating is one shipper's score for the carrier that delivered one load.
// There is at most one per load.
type Rating struct {
	id        kernel.UUID
	loadID    kernel.UUID
	shipperID kernel.UUID
	carrierID kernel.UUID
	score     int
	createdAt time.Time
	guard     guard.ConstructorGuard
}

func newRating(id, loadID, shipperID, carrierID kernel.UUID, score int, createdAt time.Time) (*Rating, error) {
	var scoreErr error
	if score < MinScore || score > MaxScore {
		scoreErr = errs.NewValueIsOutOfRangeError("rating", score, MinScore, MaxScore)
	}
	if err := errors.Join(
		id.Validate(),
		loadID.Validate(),
		shipperID.Validate(),
		carrierID.Validate(),
		scoreErr,
	); err != nil {
		return nil, err
	}
	return &Rating{
		id:        id,
		loadID:    loadID,
		shipperID: shipperID,
		carrierID: carrierID,
		score:     score,
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func RestoreRating(id, loadID, shipperID, carrierID kernel.UUID, score int, createdAt time.Time) (*Rating, error) {
	return newRating(id, loadID, shipperID, carrierID, score, createdAt)
}

func (r *Rating) Validate() error {
	if r == nil {
		return ErrRatingIsNotConstructed
	}
	return r.guard.Validate(ErrRatingIsNotConstructed)
}

func (r *Rating) ID() kernel.UUID {
	return r.id
}

func (r *Rating) LoadID() kernel.UUID {
	return r.loadID
}

func (r *Rating) ShipperID() kernel.UUID {
	return r.shipperID
}

func (r *Rating) CarrierID() kernel.UUID {
	return r.carrierID
}

func (r *Rating) Score() int {
	return r.score
}

func (r *Rating) CreatedAt() time.Time {
	return r.createdAt
}
