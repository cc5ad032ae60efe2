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
	ErrProfileIsNotConstructed = errs.NewValueIsRequiredError("profile must be created via NewProfile")

	emailPattern         = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	contactNumberPattern = regexp.MustCompile(`^\d{10}$`)
	gstNumberPattern     = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
)

// Profile is the business identity of a carrier or shipper. Email, contact
// number and GST number are each unique across parties of the same role.
type Profile struct {
	ownerName     string
	companyName   string
	email         string
	contactNumber string
	gstNumber     string
	address       Address
	guard         guard.ConstructorGuard
}

// NewProfile normalizes the email to lower case and the GST number to upper
// case, then collects every field error.
func NewProfile(ownerName, companyName, email, contactNumber, gstNumber string, address Address) (Profile, error) {
	p := Profile{
		ownerName:     strings.TrimSpace(ownerName),
		companyName:   strings.TrimSpace(companyName),
		email:         strings.ToLower(strings.TrimSpace(email)),
		contactNumber: strings.TrimSpace(contactNumber),
		gstNumber:     strings.ToUpper(strings.TrimSpace(gstNumber)),
		address:       address,
	}

	var errList []error
	if p.ownerName == "" {
		errList = append(errList, errs.NewValueIsRequiredError("ownerName"))
	}
	if p.companyName == "" {
		errList = append(errList, errs.NewValueIsRequiredError("companyName"))
	}
	if !emailPattern.MatchString(p.email) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("contactEmail", fmt.Errorf("%q is not an email", email)))
	}
	if !contactNumberPattern.MatchString(p.contactNumber) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"contactNumber",
			fmt.Errorf("%q is not a 10-digit number", contactNumber),
		))
	}
	if !gstNumberPattern.MatchString(p.gstNumber) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("gstNumber", fmt.Errorf("%q is not a GSTIN", gstNumber)))
	}
	if err := address.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := errors.Join(errList...); err != nil {
		return Profile{}, err
	}

	p.guard = guard.NewConstructorGuard()
	return p, nil
}

func (p Profile) OwnerName() string {
	return p.ownerName
}

func (p Profile) CompanyName() string {
	return p.companyName
}

func (p Profile) Email() string {
	return p.email
}

func (p Profile) ContactNumber() string {
	return p.contactNumber
}

func (p Profile) GSTNumber() string {
	return p.gstNumber
}

func (p Profile) Address() Address {
	return p.address
}

func (p Profile) Validate() error {
	return p.guard.Validate(ErrProfileIsNotConstructed)
}
