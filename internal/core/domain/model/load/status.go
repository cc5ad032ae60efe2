package load

import (
	"fmt"
	"strings"

	"freight/internal/pkg/errs"
)

// Status is the load lifecycle state.
//
//	Created ──> Assigned ──> InTransit ──> Delivered
type Status int

const (
	Unknown Status = iota
	Created
	Assigned
	InTransit
	Delivered
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is not a wire value
	return map[Status]string{
		Created:   "CREATED",
		Assigned:  "ASSIGNED",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
	}
}

// ParseStatus accepts a wire name in any case.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if name == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a load status", s))
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Created, Assigned, InTransit, Delivered}
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

// HasAssignment reports whether a load in this status must carry a selected
// carrier and an assigned vehicle.
func (s Status) HasAssignment() bool {
	return s == Assigned || s == InTransit || s == Delivered
}

func (s Status) Assign() (Status, error) {
	if s != Created {
		return Unknown, invalidTransition(s, Assigned)
	}
	return Assigned, nil
}

func (s Status) StartTransit() (Status, error) {
	if s != Assigned {
		return Unknown, invalidTransition(s, InTransit)
	}
	return InTransit, nil
}

func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return Unknown, invalidTransition(s, Delivered)
	}
	return Delivered, nil
}

func invalidTransition(from, to Status) error {
	return errs.NewInvalidStateErrorWithCause(
		fmt.Sprintf("load cannot become %s", to),
		fmt.Errorf("load is %s", from),
	)
}
