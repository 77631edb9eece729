package commands

import (
	"context"

	"yardgate/internal/pkg/keylock"
)

// CompleteChecklistCommandHandler advances a record to Ready once its
// arrival checklist is done, from GateIn directly or out of an inspection.
type CompleteChecklistCommandHandler struct {
	uowFactory ContainerUoWFactory
	locks      *keylock.KeyedMutex
}

// NewCompleteChecklistCommandHandler creates a handler for checklist completions.
func NewCompleteChecklistCommandHandler(uowFactory ContainerUoWFactory, locks *keylock.KeyedMutex) CompleteChecklistCommandHandler {
	return CompleteChecklistCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle processes the checklist completion under the record's slot lock.
func (h *CompleteChecklistCommandHandler) Handle(ctx context.Context, cmd CompleteChecklistCommand) error {
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

	if err = record.CompleteChecklist(cmd.InspectorName()); err != nil {
		return err
	}

	if err = containerRepo.Update(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
