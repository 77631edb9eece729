package commands

import (
	"context"

	"yardgate/internal/pkg/keylock"
)

// OpenInspectionCommandHandler diverts a GateIn record into the Inspection
// state. The record still reaches Ready through its checklist afterwards.
type OpenInspectionCommandHandler struct {
	uowFactory ContainerUoWFactory
	locks      *keylock.KeyedMutex
}

// NewOpenInspectionCommandHandler creates a handler for inspection openings.
func NewOpenInspectionCommandHandler(uowFactory ContainerUoWFactory, locks *keylock.KeyedMutex) OpenInspectionCommandHandler {
	return OpenInspectionCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle processes the inspection opening command under the record's slot lock.
func (h *OpenInspectionCommandHandler) Handle(ctx context.Context, cmd OpenInspectionCommand) error {
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

	if err = record.OpenInspection(cmd.InspectorName()); err != nil {
		return err
	}

	if err = containerRepo.Update(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
