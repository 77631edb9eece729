package commands_test

import (
	"testing"

	"yardgate/internal/core/application/usecases/commands"
	"yardgate/internal/core/domain/model/container"
	"yardgate/internal/core/domain/model/gate"
	"yardgate/internal/core/domain/model/kernel"
	"yardgate/internal/core/domain/model/yard"
	"yardgate/internal/core/domain/services"
	"yardgate/internal/pkg/errs"
	"yardgate/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGateMovementHandler(factory commands.UoWFactory) commands.RegisterGateMovementCommandHandler {
	return commands.NewRegisterGateMovementCommandHandler(factory, services.NewGateAdmitter(), new(keylock.KeyedMutex))
}

func newEntryCommand(t *testing.T, number string) commands.RegisterGateMovementCommand {
	t.Helper()
	cmd, err := commands.NewRegisterGateMovementCommand(
		kernel.NewUUID(), number, gate.Entrada, "ABC-1D23", "J. Pereira", "inspector.silva", container.Cheio)
	require.NoError(t, err)
	return cmd
}

func newExitCommand(t *testing.T, number string) commands.RegisterGateMovementCommand {
	t.Helper()
	cmd, err := commands.NewRegisterGateMovementCommand(
		kernel.NewUUID(), number, gate.Saida, "ABC-1D23", "J. Pereira", "inspector.silva", container.Cheio)
	require.NoError(t, err)
	return cmd
}

// newStoredRecord builds a record already placed in the yard and billed, the
// state a container is normally in when its truck shows up at the exit gate.
func newStoredRecord(t *testing.T, number string, internalID int) *container.Container {
	t.Helper()
	record, err := container.NewContainer(kernel.NewUUID(), internalID, number)
	require.NoError(t, err)
	require.NoError(t, record.RegisterGateEntry("gate-kiosk", container.Cheio))
	require.NoError(t, record.CompleteChecklist("inspector.silva"))
	require.NoError(t, record.CompleteEIR("INTACTO", "SL-991", "inspector.silva"))
	require.NoError(t, record.RegisterBilling("billing.desk"))
	return record
}

func TestRegisterGateMovementCommandHandler_Handle_WalkInEntry(t *testing.T) {
	ctx := t.Context()
	cmd := newEntryCommand(t, "MSCU1234567")

	arena, err := yard.NewArena(4)
	require.NoError(t, err)

	gateRepo := new(MockGateLogRepository)
	containerRepo := new(MockContainerRepository)
	slotRepo := new(MockYardSlotRepository)
	uow := new(MockUoW)

	var admitted *container.Container
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("GateLogRepository").Return(gateRepo).Once(),
		gateRepo.On("Add", mock.Anything, mock.AnythingOfType("*gate.LogEntry")).Return(nil).Once(),
		uow.On("ContainerRepository").Return(containerRepo).Once(),
		containerRepo.On("GetActiveByNumber", mock.Anything, "MSCU1234567").
			Return(nil, errs.NewObjectNotFoundError("containerNumber", "MSCU1234567")).Once(),
		uow.On("YardSlotRepository").Return(slotRepo).Once(),
		slotRepo.On("GetArena", mock.Anything).Return(arena, nil).Once(),
		containerRepo.On("Add", mock.Anything, mock.AnythingOfType("*container.Container")).
			Run(func(args mock.Arguments) { admitted = args.Get(1).(*container.Container) }).
			Return(nil).Once(),
		slotRepo.On("SaveSlot", mock.Anything, mock.AnythingOfType("yard.Slot")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newGateMovementHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, admitted)
	assert.Equal(t, container.GateIn, admitted.State())
	assert.Equal(t, container.Cheio, admitted.CargoStatus())
	assert.Equal(t, 0, admitted.InternalID())
	assert.Equal(t, 1, arena.OccupiedCount())

	gateRepo.AssertExpectations(t)
	containerRepo.AssertExpectations(t)
	slotRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterGateMovementCommandHandler_Handle_EntryAdvancesSeededRecord(t *testing.T) {
	ctx := t.Context()
	cmd := newEntryCommand(t, "MSCU1234567")

	seeded, err := container.NewContainer(kernel.NewUUID(), 2, "MSCU1234567")
	require.NoError(t, err)

	gateRepo := new(MockGateLogRepository)
	containerRepo := new(MockContainerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("GateLogRepository").Return(gateRepo).Once(),
		gateRepo.On("Add", mock.Anything, mock.AnythingOfType("*gate.LogEntry")).Return(nil).Once(),
		uow.On("ContainerRepository").Return(containerRepo).Once(),
		containerRepo.On("GetActiveByNumber", mock.Anything, "MSCU1234567").Return(seeded, nil).Once(),
		containerRepo.On("Update", mock.Anything, seeded).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newGateMovementHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, container.GateIn, seeded.State())
	assert.Equal(t, container.Cheio, seeded.CargoStatus())
	gateRepo.AssertExpectations(t)
	containerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterGateMovementCommandHandler_Handle_DuplicateEntryRejected(t *testing.T) {
	ctx := t.Context()
	cmd := newEntryCommand(t, "MSCU1234567")

	inside, err := container.NewContainer(kernel.NewUUID(), 2, "MSCU1234567")
	require.NoError(t, err)
	require.NoError(t, inside.RegisterGateEntry("gate-kiosk", container.Cheio))

	gateRepo := new(MockGateLogRepository)
	containerRepo := new(MockContainerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("GateLogRepository").Return(gateRepo).Once(),
		gateRepo.On("Add", mock.Anything, mock.AnythingOfType("*gate.LogEntry")).Return(nil).Once(),
		uow.On("ContainerRepository").Return(containerRepo).Once(),
		containerRepo.On("GetActiveByNumber", mock.Anything, "MSCU1234567").Return(inside, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newGateMovementHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	assert.Equal(t, container.GateIn, inside.State())
}

func TestRegisterGateMovementCommandHandler_Handle_Exit(t *testing.T) {
	ctx := t.Context()
	cmd := newExitCommand(t, "MSCU1234567")

	record := newStoredRecord(t, "MSCU1234567", 2)
	arena, err := yard.RestoreArena(4, map[int]kernel.UUID{2: record.ID()})
	require.NoError(t, err)

	gateRepo := new(MockGateLogRepository)
	containerRepo := new(MockContainerRepository)
	slotRepo := new(MockYardSlotRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContainerRepository").Return(containerRepo).Once(),
		containerRepo.On("GetActiveByNumber", mock.Anything, "MSCU1234567").Return(record, nil).Once(),
		uow.On("GateLogRepository").Return(gateRepo).Once(),
		gateRepo.On("Add", mock.Anything, mock.AnythingOfType("*gate.LogEntry")).Return(nil).Once(),
		containerRepo.On("Update", mock.Anything, record).Return(nil).Once(),
		uow.On("YardSlotRepository").Return(slotRepo).Once(),
		slotRepo.On("GetArena", mock.Anything).Return(arena, nil).Once(),
		slotRepo.On("SaveSlot", mock.Anything, mock.AnythingOfType("yard.Slot")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newGateMovementHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, container.Closed, record.State())
	assert.Equal(t, 0, arena.OccupiedCount())
	gateRepo.AssertExpectations(t)
	containerRepo.AssertExpectations(t)
	slotRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterGateMovementCommandHandler_Handle_ExitWithoutActiveRecord(t *testing.T) {
	ctx := t.Context()
	cmd := newExitCommand(t, "TCLU7654321")

	containerRepo := new(MockContainerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContainerRepository").Return(containerRepo).Once(),
		containerRepo.On("GetActiveByNumber", mock.Anything, "TCLU7654321").
			Return(nil, errs.NewObjectNotFoundError("containerNumber", "TCLU7654321")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newGateMovementHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrNoActiveContainer)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRegisterGateMovementCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterGateMovementCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	h := newGateMovementHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
