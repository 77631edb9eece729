package commands

import (
	"context"

	"yardgate/internal/pkg/keylock"
)

// SubmitEIRCommandHandler processes equipment interchange reports. A
// successful submission records the EIR on the history ledger and resolves
// the yard placement in the same transaction.
type SubmitEIRCommandHandler struct {
	uowFactory ContainerUoWFactory
	locks      *keylock.KeyedMutex
}

// NewSubmitEIRCommandHandler creates a handler for interchange report submissions.
func NewSubmitEIRCommandHandler(uowFactory ContainerUoWFactory, locks *keylock.KeyedMutex) SubmitEIRCommandHandler {
	return SubmitEIRCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle processes the interchange report under the record's slot lock.
// A rejected report leaves the record exactly as it was.
func (h *SubmitEIRCommandHandler) Handle(ctx context.Context, cmd SubmitEIRCommand) error {
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

	if err = record.CompleteEIR(cmd.Condition(), cmd.SealNumber(), cmd.InspectorName()); err != nil {
		return err
	}

	if err = containerRepo.Update(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
