package commands_test

import (
	"testing"

	"yardgate/internal/core/application/usecases/commands"
	"yardgate/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateScheduleCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateScheduleCommand(id, "MSCU1234567", "40HC", "MSC", "terminal-1", "2026-09-15", "14:00")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ScheduleID())
	assert.Equal(t, "MSCU1234567", cmd.ContainerNumber())
	assert.Equal(t, "40HC", cmd.ContainerType())
	assert.Equal(t, "MSC", cmd.ShippingLine())
	assert.Equal(t, "terminal-1", cmd.Location())
	assert.Equal(t, "2026-09-15", cmd.Date())
	assert.Equal(t, "14:00", cmd.TimeOfDay())
}

func TestNewCreateScheduleCommand_InvalidScheduleID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateScheduleCommand(invalidID, "MSCU1234567", "", "", "", "2026-09-15", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateScheduleCommand_EmptyContainerNumber(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewCreateScheduleCommand(id, "", "", "", "", "2026-09-15", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrContainerNumberIsRequired)
}

func TestNewCreateScheduleCommand_EmptyDate(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewCreateScheduleCommand(id, "MSCU1234567", "", "", "", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDateIsRequired)
}

func TestCreateScheduleCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateScheduleCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateScheduleCommandIsNotConstructed)
}
