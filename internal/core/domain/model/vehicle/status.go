package vehicle

import (
	"fmt"
	"strings"

	"freight/internal/pkg/errs"
)

// Status is the vehicle state.
//
//	Available ──> Bidded ──> Booked ──> InTransit ──> Available
//	    │  ▲         │
//	    ▼  │         └──> Available (bid rejected)
//	Maintenance
//
// Available and Maintenance vehicles may also be retired.
type Status int

const (
	UnknownStatus Status = iota
	Available
	Bidded
	Booked
	InTransit
	Maintenance
	Retired
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is not a wire value
	return map[Status]string{
		Available:   "AVAILABLE",
		Bidded:      "BIDDED",
		Booked:      "BOOKED",
		InTransit:   "IN_TRANSIT",
		Maintenance: "MAINTENANCE",
		Retired:     "RETIRED",
	}
}

func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if name == normalized {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a vehicle status", s))
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsActive reports whether the vehicle is committed to a bid or a load.
func (s Status) IsActive() bool {
	return s == Bidded || s == Booked || s == InTransit
}

func (s Status) MarkBidded() (Status, error) {
	return s.move(Bidded, Available)
}

func (s Status) Book() (Status, error) {
	return s.move(Booked, Bidded)
}

func (s Status) StartTransit() (Status, error) {
	return s.move(InTransit, Booked)
}

// Release returns a vehicle whose bid was rejected to the pool.
func (s Status) Release() (Status, error) {
	return s.move(Available, Bidded)
}

func (s Status) CompleteTrip() (Status, error) {
	return s.move(Available, InTransit)
}

func (s Status) EnterMaintenance() (Status, error) {
	return s.move(Maintenance, Available)
}

func (s Status) ExitMaintenance() (Status, error) {
	return s.move(Available, Maintenance)
}

func (s Status) Retire() (Status, error) {
	return s.move(Retired, Available, Maintenance)
}

func (s Status) move(to Status, from ...Status) (Status, error) {
	for _, allowed := range from {
		if s == allowed {
			return to, nil
		}
	}
	return UnknownStatus, errs.NewInvalidStateErrorWithCause(
		fmt.Sprintf("vehicle cannot become %s", to),
		fmt.Errorf("vehicle is %s", s),
	)
}
