package queries

import (
	"errors"

	"freight/internal/pkg/guard"
)

var ErrLoadsByStatusQueryIsNotConstructed = errors.New(
	"LoadsByStatusQuery must be created via NewLoadsByStatusQuery constructor",
)

// LoadsByStatusQuery counts every load per lifecycle status. It feeds the
// marketplace stats job.
type LoadsByStatusQuery struct {
	guard guard.ConstructorGuard
}

func NewLoadsByStatusQuery() LoadsByStatusQuery {
	return LoadsByStatusQuery{guard: guard.NewConstructorGuard()}
}

func (q LoadsByStatusQuery) Validate() error {
	return q.guard.Validate(ErrLoadsByStatusQueryIsNotConstructed)
}
