package commands

import (
	"context"
	"errors"

	"yardgate/internal/core/domain/model/container"
	"yardgate/internal/core/domain/model/kernel"
	"yardgate/internal/pkg/errs"
	"yardgate/internal/pkg/keylock"
)

// ConfirmScheduleCommandHandler handles appointment confirmation.
//
// The first confirmation transitions the schedule PENDENTE -> CONFIRMADO and
// seeds a container record in the Created state, bound to the lowest free
// yard slot. Confirming an already confirmed schedule changes nothing and
// succeeds, so operator double-submits are harmless.
type ConfirmScheduleCommandHandler struct {
	uowFactory UoWFactory
	locks      *keylock.KeyedMutex
}

// NewConfirmScheduleCommandHandler creates a handler for appointment
// confirmation. Requires a UoWFactory spanning the schedule, container, and
// yard slot repositories, and the shared command lock set.
func NewConfirmScheduleCommandHandler(uowFactory UoWFactory, locks *keylock.KeyedMutex) ConfirmScheduleCommandHandler {
	return ConfirmScheduleCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle processes the confirmation command. Slot allocation and record
// seeding happen in the same transaction as the schedule update, under the
// allocation lock, so a full yard rejects the confirmation without leaving a
// half-confirmed schedule behind.
func (h *ConfirmScheduleCommandHandler) Handle(ctx context.Context, cmd ConfirmScheduleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.locks.Lock(allocationKey)
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	scheduleRepo := uow.ScheduleRepository()
	appointment, err := scheduleRepo.Get(ctx, cmd.ScheduleID())
	if err != nil {
		return err
	}

	if !appointment.Confirm() {
		return nil
	}

	if err = h.seedRecord(ctx, uow, appointment.ContainerNumber(), appointment.ShippingLine(), appointment.Location()); err != nil {
		return err
	}

	if err = scheduleRepo.Update(ctx, appointment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// seedRecord creates the Created-state container record for a freshly
// confirmed appointment. When the container already has an active record in
// the yard (it arrived as a walk-in before the confirmation) nothing is
// seeded.
func (h *ConfirmScheduleCommandHandler) seedRecord(
	ctx context.Context,
	uow UoW,
	containerNumber, shippingLine, terminal string,
) error {
	containerRepo := uow.ContainerRepository()

	_, err := containerRepo.GetActiveByNumber(ctx, containerNumber)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	slotRepo := uow.YardSlotRepository()
	arena, err := slotRepo.GetArena(ctx)
	if err != nil {
		return err
	}

	recordID := kernel.NewUUID()
	internalID, err := arena.Allocate(recordID)
	if err != nil {
		return err
	}

	record, err := container.NewContainer(recordID, internalID, containerNumber)
	if err != nil {
		return err
	}
	if err = record.UpdateDetails("", shippingLine, "", terminal); err != nil {
		return err
	}

	if err = containerRepo.Add(ctx, record); err != nil {
		return err
	}

	slot, err := arena.Lookup(internalID)
	if err != nil {
		return err
	}

	return slotRepo.SaveSlot(ctx, slot)
}
