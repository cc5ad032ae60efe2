package bid

import (
	"fmt"
	"strings"

	"freight/internal/pkg/errs"
)

// Status is the bid state. Pending is the only non-terminal state.
type Status int

const (
	UnknownStatus Status = iota
	Pending
	Accepted
	Rejected
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is not a wire value
	return map[Status]string{
		Pending:  "PENDING",
		Accepted: "ACCEPTED",
		Rejected: "REJECTED",
	}
}

func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if name == normalized {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a bid status", s))
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

func (s Status) Accept() (Status, error) {
	if s != Pending {
		return UnknownStatus, errs.NewInvalidStateErrorWithCause("bid is no longer pending", fmt.Errorf("bid is %s", s))
	}
	return Accepted, nil
}

func (s Status) Reject() (Status, error) {
	if s != Pending {
		return UnknownStatus, errs.NewInvalidStateErrorWithCause("bid is no longer pending", fmt.Errorf("bid is %s", s))
	}
	return Rejected, nil
}
