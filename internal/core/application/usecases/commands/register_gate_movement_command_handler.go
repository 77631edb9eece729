package commands

import (
	"context"
	"errors"

	"yardgate/internal/core/domain/model/gate"
	"yardgate/internal/core/domain/services"
	"yardgate/internal/pkg/errs"
	"yardgate/internal/pkg/keylock"
)

// RegisterGateMovementCommandHandler handles gate kiosk movement reports.
//
// Every movement becomes an immutable gate ledger entry. An ENTRADA also
// admits the container into the yard: it advances a schedule-seeded record
// out of Created, or, for a walk-in, allocates a slot and seeds a new record
// via the GateAdmitter. A SAÍDA closes the active record and frees its slot.
// The ledger append and the record mutation commit in one transaction.
type RegisterGateMovementCommandHandler struct {
	uowFactory UoWFactory
	admitter   services.GateAdmitter
	locks      *keylock.KeyedMutex
}

// NewRegisterGateMovementCommandHandler creates a handler for gate movements.
// Requires a UoWFactory spanning the gate ledger, container, and yard slot
// repositories, and the shared command lock set.
func NewRegisterGateMovementCommandHandler(
	uowFactory UoWFactory,
	admitter services.GateAdmitter,
	locks *keylock.KeyedMutex,
) RegisterGateMovementCommandHandler {
	return RegisterGateMovementCommandHandler{
		uowFactory: uowFactory,
		admitter:   admitter,
		locks:      locks,
	}
}

// Handle processes one gate movement. A duplicate ENTRADA for a container
// already in the yard fails the lifecycle guard and rolls the ledger entry
// back with it; a SAÍDA for a container without an active record fails with
// NoActiveContainerError.
func (h *RegisterGateMovementCommandHandler) Handle(ctx context.Context, cmd RegisterGateMovementCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	entry, err := gate.NewLogEntry(
		cmd.EntryID(),
		cmd.ContainerNumber(),
		cmd.Movement(),
		cmd.Plate(),
		cmd.DriverName(),
		cmd.InspectorName(),
		cmd.CargoStatus(),
	)
	if err != nil {
		return err
	}

	actor := cmd.InspectorName()
	if actor == "" {
		actor = cmd.DriverName()
	}

	if cmd.Movement() == gate.Entrada {
		return h.handleEntry(ctx, entry, actor)
	}
	return h.handleExit(ctx, entry, actor)
}

func (h *RegisterGateMovementCommandHandler) handleEntry(ctx context.Context, entry *gate.LogEntry, actor string) error {
	// Lock order is container key first, then the allocation key. The exit
	// path takes only the container key, so an entry and an exit for the
	// same number never run concurrently.
	unlockRecord := h.locks.Lock(containerKey(entry.ContainerNumber()))
	defer unlockRecord()

	unlock := h.locks.Lock(allocationKey)
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.GateLogRepository().Add(ctx, entry); err != nil {
		return err
	}

	containerRepo := uow.ContainerRepository()
	record, err := containerRepo.GetActiveByNumber(ctx, entry.ContainerNumber())
	switch {
	case err == nil:
		// Schedule-seeded record waiting in Created. A record already past
		// Created fails the lifecycle guard here.
		if err = record.RegisterGateEntry(actor, entry.CargoStatus()); err != nil {
			return err
		}
		if err = containerRepo.Update(ctx, record); err != nil {
			return err
		}

	case errors.Is(err, errs.ErrObjectNotFound):
		slotRepo := uow.YardSlotRepository()
		arena, arenaErr := slotRepo.GetArena(ctx)
		if arenaErr != nil {
			return arenaErr
		}

		record, err = h.admitter.Admit(entry, arena, actor)
		if err != nil {
			return err
		}

		if err = containerRepo.Add(ctx, record); err != nil {
			return err
		}

		slot, slotErr := arena.Lookup(record.InternalID())
		if slotErr != nil {
			return slotErr
		}
		if err = slotRepo.SaveSlot(ctx, slot); err != nil {
			return err
		}

	default:
		return err
	}

	return uow.Commit(ctx)
}

func (h *RegisterGateMovementCommandHandler) handleExit(ctx context.Context, entry *gate.LogEntry, actor string) error {
	unlock := h.locks.Lock(containerKey(entry.ContainerNumber()))
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	containerRepo := uow.ContainerRepository()
	record, err := containerRepo.GetActiveByNumber(ctx, entry.ContainerNumber())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewNoActiveContainerError(entry.ContainerNumber())
		}
		return err
	}

	if err = record.RegisterGateExit(actor); err != nil {
		return err
	}

	if err = uow.GateLogRepository().Add(ctx, entry); err != nil {
		return err
	}
	if err = containerRepo.Update(ctx, record); err != nil {
		return err
	}

	slotRepo := uow.YardSlotRepository()
	arena, err := slotRepo.GetArena(ctx)
	if err != nil {
		return err
	}
	if err = arena.Release(record.InternalID()); err != nil {
		return err
	}

	slot, err := arena.Lookup(record.InternalID())
	if err != nil {
		return err
	}
	if err = slotRepo.SaveSlot(ctx, slot); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
