package commands

import (
	"context"

	"freight/internal/core/domain/model/interaction"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"
)

// MarkNotInterestedCommandHandler records a NOT_INTERESTED interaction. The
// load must still be open for bidding and the carrier must not have
// interacted with it before. The load row is locked so the check cannot
// interleave with a concurrent bid or acceptance.
type MarkNotInterestedCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewMarkNotInterestedCommandHandler(uowFactory UoWFactory, clock ports.Clock) MarkNotInterestedCommandHandler {
	return MarkNotInterestedCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h MarkNotInterestedCommandHandler) Handle(ctx context.Context, cmd MarkNotInterestedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.clock.Now()

	l, err := uow.LoadRepository().GetForUpdate(ctx, cmd.LoadID())
	if err != nil {
		return err
	}
	if err = l.CheckOpenForBidding(now); err != nil {
		return err
	}

	interactions := uow.InteractionRepository()
	if err = ensureNoInteraction(ctx, interactions, cmd.CarrierID(), l.ID()); err != nil {
		return err
	}

	record, err := interaction.NewInteraction(kernel.NewUUID(), cmd.CarrierID(), l.ID(), interaction.NotInterested, now)
	if err != nil {
		return err
	}
	if err = interactions.Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
