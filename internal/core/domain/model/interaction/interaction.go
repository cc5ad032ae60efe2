// Package interaction records a carrier's one terminal decision on a load:
// it bid, or it is not interested. There is at most one per carrier and load,
// and it never changes.
package interaction

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

type Kind int

const (
	UnknownKind Kind = iota
	Bidded
	NotInterested
)

func getKindStrings() map[Kind]string {
	//nolint:exhaustive // UnknownKind is not a wire value
	return map[Kind]string{
		Bidded:        "BIDDED",
		NotInterested: "NOT_INTERESTED",
	}
}

func ParseKind(s string) (Kind, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for kind, name := range getKindStrings() {
		if name == normalized {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not an interaction", s))
}

func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "UNKNOWN"
}

func (k Kind) Validate() error {
	if _, ok := getKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid interaction", k))
	}
	return nil
}

var ErrInteractionIsNotConstructed = errors.New("Interaction must be created via NewInteraction constructor")

type Interaction struct {
	id        kernel.UUID
	carrierID kernel.UUID
	loadID    kernel.UUID
	kind      Kind
	createdAt time.Time
	guard     guard.ConstructorGuard
}

func NewInteraction(id, carrierID, loadID kernel.UUID, kind Kind, now time.Time) (*Interaction, error) {
	if err := errors.Join(id.Validate(), carrierID.Validate(), loadID.Validate(), kind.Validate()); err != nil {
		return nil, err
	}
	return &Interaction{
		id:        id,
		carrierID: carrierID,
		loadID:    loadID,
		kind:      kind,
		createdAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreInteraction rehydrates a stored interaction; it applies the same checks as NewInteraction.
func RestoreInteraction(id, carrierID, loadID kernel.UUID, kind Kind, createdAt time.Time) (*Interaction, error) {
	i, err := NewInteraction(id, carrierID, loadID, kind, createdAt)
	if err != nil {
		return nil, err
	}
	i.createdAt = createdAt
	return i, nil
}

func (i *Interaction) Validate() error {
	if i == nil {
		return ErrInteractionIsNotConstructed
	}
	return i.guard.Validate(ErrInteractionIsNotConstructed)
}

func (i *Interaction) ID() kernel.UUID {
	return i.id
}

func (i *Interaction) CarrierID() kernel.UUID {
	return i.carrierID
}

func (i *Interaction) LoadID() kernel.UUID {
	return i.loadID
}

func (i *Interaction) Kind() Kind {
	return i.kind
}

func (i *Interaction) CreatedAt() time.Time {
	return i.createdAt
}
