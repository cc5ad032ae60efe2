package kernel

import (
	"fmt"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// CapacityUnit tags a Capacity as a weight or a volume.
type CapacityUnit int

const (
	UnknownCapacityUnit CapacityUnit = iota
	Tons
	Litres
)

func (u CapacityUnit) String() string {
	switch u {
	case Tons:
		return "TONS"
	case Litres:
		return "LITRES"
	default:
		return "UNKNOWN"
	}
}

var ErrCapacityIsNotConstructed = errs.NewValueIsRequiredError("capacity must be created via NewCapacity")

// Capacity is a positive quantity in exactly one unit. Loads carry their
// requirement as a Capacity and vehicles their rating, so a tons figure can
// never be compared against a litres figure.
type Capacity struct {
	unit  CapacityUnit
	value decimal.Decimal
	guard guard.ConstructorGuard
}

func NewCapacity(unit CapacityUnit, value decimal.Decimal) (Capacity, error) {
	if unit != Tons && unit != Litres {
		return Capacity{}, errs.NewValueIsInvalidErrorWithCause("capacityUnit", fmt.Errorf("%d is not a valid unit", unit))
	}
	if !value.IsPositive() {
		return Capacity{}, errs.NewValueIsInvalidErrorWithCause(
			"capacity",
			fmt.Errorf("%s %s is not greater than 0", value.String(), unit),
		)
	}
	return Capacity{unit: unit, value: value, guard: guard.NewConstructorGuard()}, nil
}

func (c Capacity) Unit() CapacityUnit {
	return c.unit
}

func (c Capacity) Value() decimal.Decimal {
	return c.value
}

// Tons returns the weight, or zero for a volume.
func (c Capacity) Tons() decimal.Decimal {
	if c.unit == Tons {
		return c.value
	}
	return decimal.Zero
}

// Litres returns the volume, or zero for a weight.
func (c Capacity) Litres() decimal.Decimal {
	if c.unit == Litres {
		return c.value
	}
	return decimal.Zero
}

// Covers reports whether c can carry required: same unit and at least as much.
func (c Capacity) Covers(required Capacity) bool {
	return c.unit == required.unit && c.value.GreaterThanOrEqual(required.value)
}

func (c Capacity) Validate() error {
	return c.guard.Validate(ErrCapacityIsNotConstructed)
}

func (c Capacity) String() string {
	return fmt.Sprintf("%s %s", c.value.String(), c.unit)
}
