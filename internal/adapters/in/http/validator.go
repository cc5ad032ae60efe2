package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"freight/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// requestValidator checks the shape of request bodies before they reach the
// core: presence, formats and lengths. Rules that span several fields or
// entities stay in the domain constructors.
type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &requestValidator{validate: v}
}

// Validate reports every failed field as a typed validation error, joined.
func (rv *requestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	errList := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fieldPath(fe)
		if fe.Tag() == "required" {
			errList = append(errList, errs.NewValueIsRequiredError(field))
			continue
		}
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(field, ruleError(fe)))
	}
	return errors.Join(errList...)
}

// fieldPath drops the top-level struct name, so "registerShipperRequest.address.pincode"
// is reported as "address.pincode".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func ruleError(fe validator.FieldError) error {
	if fe.Param() == "" {
		return fmt.Errorf("must satisfy %s", fe.Tag())
	}
	return fmt.Errorf("must satisfy %s=%s", fe.Tag(), fe.Param())
}
