package kernel

import (
	"fmt"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney")

// Money is a strictly positive amount in rupees, kept as a decimal so bids
// compare and sum without float drift.
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

func NewMoney(param string, amount decimal.Decimal) (Money, error) {
	if !amount.IsPositive() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			param,
			fmt.Errorf("%s is not greater than 0", amount.String()),
		)
	}
	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return m.amount.MarshalJSON()
}
