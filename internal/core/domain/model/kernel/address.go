package kernel

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

	pincodePattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)
)

// Address is a postal location. Pincodes are six digits and never start with 0.
type Address struct {
	street  string
	city    string
	state   string
	pincode string
	guard   guard.ConstructorGuard
}

// NewAddress trims every part and collects all field errors. label prefixes
// parameter names in errors ("pickup.city") so one form can carry several addresses.
func NewAddress(label, street, city, state, pincode string) (Address, error) {
	a := Address{
		street:  strings.TrimSpace(street),
		city:    strings.TrimSpace(city),
		state:   strings.TrimSpace(state),
		pincode: strings.TrimSpace(pincode),
	}

	var errList []error
	if a.street == "" {
		errList = append(errList, errs.NewValueIsRequiredError(label+".street"))
	}
	if a.city == "" {
		errList = append(errList, errs.NewValueIsRequiredError(label+".city"))
	}
	if a.state == "" {
		errList = append(errList, errs.NewValueIsRequiredError(label+".state"))
	}
	if !pincodePattern.MatchString(a.pincode) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			label+".pincode",
			fmt.Errorf("%q is not a valid 6-digit pincode", a.pincode),
		))
	}
	if err := errors.Join(errList...); err != nil {
		return Address{}, err
	}

	a.guard = guard.NewConstructorGuard()
	return a, nil
}

func (a Address) Street() string {
	return a.street
}

func (a Address) City() string {
	return a.city
}

func (a Address) State() string {
	return a.state
}

func (a Address) Pincode() string {
	return a.pincode
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// SameSpot reports whether both addresses share street (case-insensitively) and pincode.
func (a Address) SameSpot(other Address) bool {
	return strings.EqualFold(a.street, other.street) && a.pincode == other.pincode
}

func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.state == other.state &&
		a.pincode == other.pincode
}
