// Package queries contains the marketplace read operations. Detail views
// load aggregates through a Reader so the same visibility rules the domain
// enforces apply to what each party can see. Listings that join several
// tables read straight from the database with raw SQL.
package queries

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/interaction"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// Reader hands out repositories bound to the database outside any
// transaction. Reads never lock.
type Reader interface {
	LoadRepository() ports.LoadRepository
	VehicleRepository() ports.VehicleRepository
	BidRepository() ports.BidRepository
	InteractionRepository() ports.InteractionRepository
	CarrierRepository() ports.CarrierRepository
	ShipperRepository() ports.ShipperRepository
}

// findInteraction returns nil when the carrier never interacted with the load.
func findInteraction(
	ctx context.Context,
	repo ports.InteractionRepository,
	carrierID, loadID kernel.UUID,
) (*interaction.Interaction, error) {
	prior, err := repo.Get(ctx, carrierID, loadID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil //nolint:nilnil // absence is a valid answer
	}
	return prior, err
}
