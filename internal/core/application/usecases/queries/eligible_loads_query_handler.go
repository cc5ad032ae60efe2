package queries

import (
	"context"

	"freight/internal/core/ports"
)

type EligibleLoadsQueryHandler struct {
	reader Reader
	clock  ports.Clock
}

func NewEligibleLoadsQueryHandler(reader Reader, clock ports.Clock) EligibleLoadsQueryHandler {
	return EligibleLoadsQueryHandler{reader: reader, clock: clock}
}

// Handle returns the feed ordered by bidding deadline, soonest first. The
// assignment fields are always empty.
func (h EligibleLoadsQueryHandler) Handle(ctx context.Context, query EligibleLoadsQuery) ([]LoadView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	loads, err := h.reader.LoadRepository().ListOpenForBidding(ctx, query.CarrierID(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	views := make([]LoadView, 0, len(loads))
	for _, l := range loads {
		views = append(views, newLoadView(l).withoutAssignment())
	}
	return views, nil
}
