package kernel

import (
	"fmt"
	"slices"
	"strings"

	"freight/internal/pkg/errs"
)

// VehicleType is the closed set of vehicle categories loads ask for and
// vehicles are registered as.
type VehicleType int

const (
	UnknownVehicleType VehicleType = iota
	TrailerFlatbed
	OpenBody
	ClosedContainer
	Tanker
	Refrigerated
	LCV
)

func getVehicleTypeStrings() map[VehicleType]string {
	//nolint:exhaustive // UnknownVehicleType has no wire name
	return map[VehicleType]string{
		TrailerFlatbed:  "TRAILER_FLATBED",
		OpenBody:        "OPEN_BODY",
		ClosedContainer: "CLOSED_CONTAINER",
		Tanker:          "TANKER",
		Refrigerated:    "REFRIGERATED",
		LCV:             "LCV",
	}
}

// ParseVehicleType accepts the wire name in any case, surrounded by spaces.
func ParseVehicleType(s string) (VehicleType, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for t, name := range getVehicleTypeStrings() {
		if name == normalized {
			return t, nil
		}
	}
	return UnknownVehicleType, errs.NewValueIsInvalidErrorWithCause(
		"vehicleType",
		fmt.Errorf("%q is not a known vehicle type", s),
	)
}

func (t VehicleType) String() string {
	if s, ok := getVehicleTypeStrings()[t]; ok {
		return s
	}
	return "UNKNOWN"
}

func (t VehicleType) Validate() error {
	if _, ok := getVehicleTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("vehicleType", fmt.Errorf("%d is not a valid vehicle type", t))
	}
	return nil
}

// CapacityUnit is the unit a vehicle of this type is rated in: litres for
// tankers, tons for everything else.
func (t VehicleType) CapacityUnit() CapacityUnit {
	if t == Tanker {
		return Litres
	}
	return Tons
}

// VehicleTypeSet is a sorted, duplicate-free, non-empty set of vehicle types.
type VehicleTypeSet struct {
	types []VehicleType
}

// NewVehicleTypeSet de-duplicates types and rejects an empty set or unknown members.
func NewVehicleTypeSet(types []VehicleType) (VehicleTypeSet, error) {
	if len(types) == 0 {
		return VehicleTypeSet{}, errs.NewValueIsRequiredError("requiredVehicleTypes")
	}
	set := make([]VehicleType, 0, len(types))
	for _, t := range types {
		if err := t.Validate(); err != nil {
			return VehicleTypeSet{}, err
		}
		if !slices.Contains(set, t) {
			set = append(set, t)
		}
	}
	slices.Sort(set)
	return VehicleTypeSet{types: set}, nil
}

// ParseVehicleTypeSet parses wire names and builds the set, collecting every unknown name.
func ParseVehicleTypeSet(names []string) (VehicleTypeSet, error) {
	types := make([]VehicleType, 0, len(names))
	var unknown []string
	for _, name := range names {
		t, err := ParseVehicleType(name)
		if err != nil {
			unknown = append(unknown, name)
			continue
		}
		types = append(types, t)
	}
	if len(unknown) > 0 {
		return VehicleTypeSet{}, errs.NewValueIsInvalidErrorWithCause(
			"requiredVehicleTypes",
			fmt.Errorf("unknown vehicle types: %s", strings.Join(unknown, ", ")),
		)
	}
	return NewVehicleTypeSet(types)
}

func (s VehicleTypeSet) Contains(t VehicleType) bool {
	return slices.Contains(s.types, t)
}

func (s VehicleTypeSet) Types() []VehicleType {
	return slices.Clone(s.types)
}

func (s VehicleTypeSet) Len() int {
	return len(s.types)
}

func (s VehicleTypeSet) IsEmpty() bool {
	return len(s.types) == 0
}

// Strings returns the wire names in set order.
func (s VehicleTypeSet) Strings() []string {
	names := make([]string, len(s.types))
	for i, t := range s.types {
		names[i] = t.String()
	}
	return names
}
