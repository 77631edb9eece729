package commands_test

import (
	"context"

	"yardgate/internal/core/application/usecases/commands"
	"yardgate/internal/core/domain/model/container"
	"yardgate/internal/core/domain/model/gate"
	"yardgate/internal/core/domain/model/kernel"
	"yardgate/internal/core/domain/model/schedule"
	"yardgate/internal/core/domain/model/yard"
	"yardgate/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockContainerRepository struct{ mock.Mock }

func (m *MockContainerRepository) Add(ctx context.Context, aggregate *container.Container) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockContainerRepository) Update(ctx context.Context, aggregate *container.Container) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockContainerRepository) Get(ctx context.Context, id kernel.UUID) (*container.Container, error) {
	args := m.Called(ctx, id)
	record, _ := args.Get(0).(*container.Container)
	return record, args.Error(1)
}

func (m *MockContainerRepository) GetByInternalID(ctx context.Context, internalID int) (*container.Container, error) {
	args := m.Called(ctx, internalID)
	record, _ := args.Get(0).(*container.Container)
	return record, args.Error(1)
}

func (m *MockContainerRepository) GetActiveByNumber(ctx context.Context, containerNumber string) (*container.Container, error) {
	args := m.Called(ctx, containerNumber)
	record, _ := args.Get(0).(*container.Container)
	return record, args.Error(1)
}

type MockScheduleRepository struct{ mock.Mock }

func (m *MockScheduleRepository) Add(ctx context.Context, aggregate *schedule.Schedule) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockScheduleRepository) Update(ctx context.Context, aggregate *schedule.Schedule) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockScheduleRepository) Get(ctx context.Context, id kernel.UUID) (*schedule.Schedule, error) {
	args := m.Called(ctx, id)
	appointment, _ := args.Get(0).(*schedule.Schedule)
	return appointment, args.Error(1)
}

func (m *MockScheduleRepository) GetAllPending(ctx context.Context) ([]*schedule.Schedule, error) {
	args := m.Called(ctx)
	appointments, _ := args.Get(0).([]*schedule.Schedule)
	return appointments, args.Error(1)
}

type MockGateLogRepository struct{ mock.Mock }

func (m *MockGateLogRepository) Add(ctx context.Context, entry *gate.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockGateLogRepository) GetByContainerNumber(ctx context.Context, containerNumber string) ([]*gate.LogEntry, error) {
	args := m.Called(ctx, containerNumber)
	entries, _ := args.Get(0).([]*gate.LogEntry)
	return entries, args.Error(1)
}

type MockYardSlotRepository struct{ mock.Mock }

func (m *MockYardSlotRepository) EnsureCapacity(ctx context.Context, capacity int) error {
	args := m.Called(ctx, capacity)
	return args.Error(0)
}

func (m *MockYardSlotRepository) GetArena(ctx context.Context) (*yard.Arena, error) {
	args := m.Called(ctx)
	arena, _ := args.Get(0).(*yard.Arena)
	return arena, args.Error(1)
}

func (m *MockYardSlotRepository) SaveSlot(ctx context.Context, slot yard.Slot) error {
	args := m.Called(ctx, slot)
	return args.Error(0)
}

type MockScheduleUoW struct{ mock.Mock }

func (m *MockScheduleUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockScheduleUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockScheduleUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockScheduleUoW) ScheduleRepository() ports.ScheduleRepository {
	args := m.Called()
	return args.Get(0).(ports.ScheduleRepository)
}

type MockScheduleUoWFactory struct{ mock.Mock }

func (m *MockScheduleUoWFactory) Create() commands.ScheduleUoW {
	args := m.Called()
	return args.Get(0).(commands.ScheduleUoW)
}

type MockContainerUoW struct{ mock.Mock }

func (m *MockContainerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockContainerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockContainerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockContainerUoW) ContainerRepository() ports.ContainerRepository {
	args := m.Called()
	return args.Get(0).(ports.ContainerRepository)
}

type MockContainerUoWFactory struct{ mock.Mock }

func (m *MockContainerUoWFactory) Create() commands.ContainerUoW {
	args := m.Called()
	return args.Get(0).(commands.ContainerUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ContainerRepository() ports.ContainerRepository {
	args := m.Called()
	return args.Get(0).(ports.ContainerRepository)
}

func (m *MockUoW) ScheduleRepository() ports.ScheduleRepository {
	args := m.Called()
	return args.Get(0).(ports.ScheduleRepository)
}

func (m *MockUoW) GateLogRepository() ports.GateLogRepository {
	args := m.Called()
	return args.Get(0).(ports.GateLogRepository)
}

func (m *MockUoW) YardSlotRepository() ports.YardSlotRepository {
	args := m.Called()
	return args.Get(0).(ports.YardSlotRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
