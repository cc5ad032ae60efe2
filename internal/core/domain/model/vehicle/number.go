package vehicle

import (
	"fmt"
	"regexp"
	"strings"

	"freight/internal/pkg/errs"
)

var numberPattern = regexp.MustCompile(`^[A-Z]{2}\d{2}[A-Z]{1,2}\d{4}$`)

var numberSeparators = strings.NewReplacer(" ", "", "-", "", ".", "")

// Number is a registration number in the national format, e.g. MH12AB1234.
type Number string

// NewNumber strips spaces, dashes and dots, upper-cases the rest and checks
// the format, so "mh-12 ab.1234" and "MH12AB1234" are the same number.
func NewNumber(raw string) (Number, error) {
	normalized := strings.ToUpper(numberSeparators.Replace(strings.TrimSpace(raw)))
	if normalized == "" {
		return "", errs.NewValueIsRequiredError("vehicleNumber")
	}
	if !numberPattern.MatchString(normalized) {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"vehicleNumber",
			fmt.Errorf("%q does not match the format AA00AA0000", raw),
		)
	}
	return Number(normalized), nil
}

func (n Number) String() string {
	return string(n)
}
