package commands_test

import (
	"testing"

	"yardgate/internal/core/application/usecases/commands"
	"yardgate/internal/core/domain/model/container"
	"yardgate/internal/core/domain/model/kernel"
	"yardgate/internal/core/domain/model/schedule"
	"yardgate/internal/core/domain/model/yard"
	"yardgate/internal/pkg/errs"
	"yardgate/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPendingSchedule(t *testing.T, id kernel.UUID) *schedule.Schedule {
	t.Helper()
	appointment, err := schedule.NewSchedule(id, "MSCU1234567", "40HC", "MSC", "terminal-1", "2026-09-15", "14:00")
	require.NoError(t, err)
	return appointment
}

func TestConfirmScheduleCommandHandler_Handle_SeedsRecord(t *testing.T) {
	ctx := t.Context()
	scheduleID := kernel.NewUUID()
	cmd, err := commands.NewConfirmScheduleCommand(scheduleID)
	require.NoError(t, err)

	appointment := newPendingSchedule(t, scheduleID)
	arena, err := yard.NewArena(4)
	require.NoError(t, err)

	scheduleRepo := new(MockScheduleRepository)
	containerRepo := new(MockContainerRepository)
	slotRepo := new(MockYardSlotRepository)
	uow := new(MockUoW)

	var seeded *container.Container
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ScheduleRepository").Return(scheduleRepo).Once(),
		scheduleRepo.On("Get", mock.Anything, scheduleID).Return(appointment, nil).Once(),
		uow.On("ContainerRepository").Return(containerRepo).Once(),
		containerRepo.On("GetActiveByNumber", mock.Anything, "MSCU1234567").
			Return(nil, errs.NewObjectNotFoundError("containerNumber", "MSCU1234567")).Once(),
		uow.On("YardSlotRepository").Return(slotRepo).Once(),
		slotRepo.On("GetArena", mock.Anything).Return(arena, nil).Once(),
		containerRepo.On("Add", mock.Anything, mock.AnythingOfType("*container.Container")).
			Run(func(args mock.Arguments) { seeded = args.Get(1).(*container.Container) }).
			Return(nil).Once(),
		slotRepo.On("SaveSlot", mock.Anything, mock.AnythingOfType("yard.Slot")).Return(nil).Once(),
		scheduleRepo.On("Update", mock.Anything, appointment).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmScheduleCommandHandler(factory, new(keylock.KeyedMutex))
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, appointment.IsConfirmed())
	require.NotNil(t, seeded)
	assert.Equal(t, container.Created, seeded.State())
	assert.Equal(t, 0, seeded.InternalID())
	assert.Equal(t, "MSCU1234567", seeded.ContainerNumber())
	assert.Equal(t, "MSC", seeded.ShippingLine())
	assert.Equal(t, "terminal-1", seeded.Terminal())

	scheduleRepo.AssertExpectations(t)
	containerRepo.AssertExpectations(t)
	slotRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestConfirmScheduleCommandHandler_Handle_AlreadyConfirmedIsNoop(t *testing.T) {
	ctx := t.Context()
	scheduleID := kernel.NewUUID()
	cmd, err := commands.NewConfirmScheduleCommand(scheduleID)
	require.NoError(t, err)

	appointment := newPendingSchedule(t, scheduleID)
	appointment.Confirm()

	scheduleRepo := new(MockScheduleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ScheduleRepository").Return(scheduleRepo).Once(),
		scheduleRepo.On("Get", mock.Anything, scheduleID).Return(appointment, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmScheduleCommandHandler(factory, new(keylock.KeyedMutex))
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	scheduleRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestConfirmScheduleCommandHandler_Handle_ScheduleNotFound(t *testing.T) {
	ctx := t.Context()
	scheduleID := kernel.NewUUID()
	cmd, err := commands.NewConfirmScheduleCommand(scheduleID)
	require.NoError(t, err)

	scheduleRepo := new(MockScheduleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ScheduleRepository").Return(scheduleRepo).Once(),
		scheduleRepo.On("Get", mock.Anything, scheduleID).
			Return(nil, errs.NewObjectNotFoundError("scheduleID", scheduleID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmScheduleCommandHandler(factory, new(keylock.KeyedMutex))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestConfirmScheduleCommandHandler_Handle_YardFull(t *testing.T) {
	ctx := t.Context()
	scheduleID := kernel.NewUUID()
	cmd, err := commands.NewConfirmScheduleCommand(scheduleID)
	require.NoError(t, err)

	appointment := newPendingSchedule(t, scheduleID)
	arena, err := yard.RestoreArena(1, map[int]kernel.UUID{0: kernel.NewUUID()})
	require.NoError(t, err)

	scheduleRepo := new(MockScheduleRepository)
	containerRepo := new(MockContainerRepository)
	slotRepo := new(MockYardSlotRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ScheduleRepository").Return(scheduleRepo).Once(),
		scheduleRepo.On("Get", mock.Anything, scheduleID).Return(appointment, nil).Once(),
		uow.On("ContainerRepository").Return(containerRepo).Once(),
		containerRepo.On("GetActiveByNumber", mock.Anything, "MSCU1234567").
			Return(nil, errs.NewObjectNotFoundError("containerNumber", "MSCU1234567")).Once(),
		uow.On("YardSlotRepository").Return(slotRepo).Once(),
		slotRepo.On("GetArena", mock.Anything).Return(arena, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmScheduleCommandHandler(factory, new(keylock.KeyedMutex))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
