package load

import (
	"errors"
	"time"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// pastTolerance absorbs clock skew between the client that picked the dates and the server.
const pastTolerance = 5 * time.Minute

var ErrScheduleIsNotConstructed = errs.NewValueIsRequiredError("schedule must be created via NewSchedule")

// Schedule holds the three ordered load timestamps:
// biddingDeadline < pickupDate < expectedDeliveryDate.
type Schedule struct {
	biddingDeadline      time.Time
	pickupDate           time.Time
	expectedDeliveryDate time.Time
	guard                guard.ConstructorGuard
}

// NewSchedule validates a schedule for a new load: every date present, none
// more than five minutes before now, and strictly ordered.
func NewSchedule(biddingDeadline, pickupDate, expectedDeliveryDate, now time.Time) (Schedule, error) {
	var errList []error
	required := map[string]time.Time{
		"biddingDeadline":      biddingDeadline,
		"pickupDate":           pickupDate,
		"expectedDeliveryDate": expectedDeliveryDate,
	}
	for _, name := range []string{"biddingDeadline", "pickupDate", "expectedDeliveryDate"} {
		if required[name].IsZero() {
			errList = append(errList, errs.NewValueIsRequiredError(name))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return Schedule{}, err
	}

	earliest := now.Add(-pastTolerance)
	if biddingDeadline.Before(earliest) {
		errList = append(errList, errs.NewInvalidStateError("biddingDeadline cannot be in the past"))
	}
	if pickupDate.Before(earliest) {
		errList = append(errList, errs.NewInvalidStateError("pickupDate cannot be in the past"))
	}
	if expectedDeliveryDate.Before(earliest) {
		errList = append(errList, errs.NewInvalidStateError("expectedDeliveryDate cannot be in the past"))
	}
	errList = append(errList, validateOrder(biddingDeadline, pickupDate, expectedDeliveryDate))
	if err := errors.Join(errList...); err != nil {
		return Schedule{}, err
	}

	return Schedule{
		biddingDeadline:      biddingDeadline.UTC(),
		pickupDate:           pickupDate.UTC(),
		expectedDeliveryDate: expectedDeliveryDate.UTC(),
		guard:                guard.NewConstructorGuard(),
	}, nil
}

// RestoreSchedule rebuilds a persisted schedule; only the ordering is re-checked.
func RestoreSchedule(biddingDeadline, pickupDate, expectedDeliveryDate time.Time) (Schedule, error) {
	if err := validateOrder(biddingDeadline, pickupDate, expectedDeliveryDate); err != nil {
		return Schedule{}, err
	}
	return Schedule{
		biddingDeadline:      biddingDeadline.UTC(),
		pickupDate:           pickupDate.UTC(),
		expectedDeliveryDate: expectedDeliveryDate.UTC(),
		guard:                guard.NewConstructorGuard(),
	}, nil
}

func validateOrder(biddingDeadline, pickupDate, expectedDeliveryDate time.Time) error {
	var errList []error
	if !biddingDeadline.Before(pickupDate) {
		errList = append(errList, errs.NewInvalidStateError("biddingDeadline must be before pickupDate"))
	}
	if !pickupDate.Before(expectedDeliveryDate) {
		errList = append(errList, errs.NewInvalidStateError("pickupDate must be before expectedDeliveryDate"))
	}
	return errors.Join(errList...)
}

func (s Schedule) BiddingDeadline() time.Time {
	return s.biddingDeadline
}

func (s Schedule) PickupDate() time.Time {
	return s.pickupDate
}

func (s Schedule) ExpectedDeliveryDate() time.Time {
	return s.expectedDeliveryDate
}

// BiddingOpen reports whether now is strictly before the bidding deadline.
func (s Schedule) BiddingOpen(now time.Time) bool {
	return now.Before(s.biddingDeadline)
}

// PickupReached reports whether now is at or after the pickup date.
func (s Schedule) PickupReached(now time.Time) bool {
	return !now.Before(s.pickupDate)
}

func (s Schedule) Validate() error {
	return s.guard.Validate(ErrScheduleIsNotConstructed)
}
