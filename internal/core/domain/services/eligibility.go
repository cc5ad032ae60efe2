package services

import (
	"fmt"
	"time"

	"freight/internal/core/domain/model/interaction"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/vehicle"
	"freight/internal/pkg/errs"
)

// EligibilityPolicy decides what a carrier may bid on and with what.
//
// Business rules:
//   - A load is biddable while it is CREATED, its bidding deadline is ahead and
//     the carrier has not interacted with it yet
//   - A vehicle qualifies when the carrier owns it, it is AVAILABLE, its type is
//     among the load's required types and its capacity covers the load's
//     requirement in the same unit
type EligibilityPolicy struct{}

func NewEligibilityPolicy() EligibilityPolicy {
	return EligibilityPolicy{}
}

// IsBiddable reports whether the load belongs in the carrier's eligible listing.
func (EligibilityPolicy) IsBiddable(l *load.Load, prior *interaction.Interaction, now time.Time) bool {
	return prior == nil && l.CheckOpenForBidding(now) == nil
}

// CheckVehicle returns the first rule v breaks for l, in this order:
// ownership (Forbidden), retirement, availability, type, capacity (InvalidState).
func (EligibilityPolicy) CheckVehicle(l *load.Load, v *vehicle.Vehicle, carrierID kernel.UUID) error {
	if !v.IsOwnedBy(carrierID) {
		return errs.NewForbiddenError("vehicle does not belong to this carrier")
	}
	if v.Status() == vehicle.Retired {
		return errs.NewInvalidStateError("vehicle is retired")
	}
	if v.Status() != vehicle.Available {
		return errs.NewInvalidStateErrorWithCause("vehicle is not available", fmt.Errorf("vehicle is %s", v.Status()))
	}
	if !l.RequiredTypes().Contains(v.Type()) {
		return errs.NewInvalidStateErrorWithCause(
			"vehicle type is not accepted for this load",
			fmt.Errorf("%s is not one of %v", v.Type(), l.RequiredTypes().Strings()),
		)
	}
	if !v.Capacity().Covers(l.Requirement()) {
		return errs.NewInvalidStateErrorWithCause(
			"vehicle capacity is below the load requirement",
			fmt.Errorf("%s < %s", v.Capacity(), l.Requirement()),
		)
	}
	return nil
}

// EligibleVehicles keeps the vehicles that pass CheckVehicle, preserving order.
func (p EligibilityPolicy) EligibleVehicles(
	l *load.Load,
	vehicles []*vehicle.Vehicle,
	carrierID kernel.UUID,
) []*vehicle.Vehicle {
	eligible := make([]*vehicle.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if p.CheckVehicle(l, v, carrierID) == nil {
			eligible = append(eligible, v)
		}
	}
	return eligible
}
