package commands

import (
	"context"

	"yardgate/internal/pkg/keylock"
)

// RegisterBillingCommandHandler settles billing for a stored record,
// transitioning it to Billed and marking the billed flag in one step.
type RegisterBillingCommandHandler struct {
	uowFactory ContainerUoWFactory
	locks      *keylock.KeyedMutex
}

// NewRegisterBillingCommandHandler creates a handler for billing settlements.
func NewRegisterBillingCommandHandler(uowFactory ContainerUoWFactory, locks *keylock.KeyedMutex) RegisterBillingCommandHandler {
	return RegisterBillingCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle processes the billing settlement under the record's slot lock.
// Billing a record that is already Billed succeeds without touching it.
func (h *RegisterBillingCommandHandler) Handle(ctx context.Context, cmd RegisterBillingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.locks.Lock(slotKey(cmd.InternalID()))
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	containerRepo := uow.ContainerRepository()
	record, err := containerRepo.GetByInternalID(ctx, cmd.InternalID())
	if err != nil {
		return err
	}

	if err = record.RegisterBilling(cmd.ClerkName()); err != nil {
		return err
	}

	if err = containerRepo.Update(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
