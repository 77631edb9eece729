package commands_test

import (
	"testing"

	"yardgate/internal/core/application/usecases/commands"
	"yardgate/internal/core/domain/model/container"
	"yardgate/internal/pkg/errs"
	"yardgate/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitEIRCommand_Validation(t *testing.T) {
	t.Run("valid_input", func(t *testing.T) {
		cmd, err := commands.NewSubmitEIRCommand(2, "INTACTO", "SL-991", "inspector.silva")
		require.NoError(t, err)
		assert.Equal(t, 2, cmd.InternalID())
		assert.Equal(t, "INTACTO", cmd.Condition())
		assert.Equal(t, "SL-991", cmd.SealNumber())
		assert.Equal(t, "inspector.silva", cmd.InspectorName())
	})

	t.Run("missing_condition", func(t *testing.T) {
		_, err := commands.NewSubmitEIRCommand(2, "", "SL-991", "inspector.silva")
		require.ErrorIs(t, err, errs.ErrIncompleteEIR)
	})

	t.Run("missing_seal_number", func(t *testing.T) {
		_, err := commands.NewSubmitEIRCommand(2, "INTACTO", "", "inspector.silva")
		require.ErrorIs(t, err, errs.ErrIncompleteEIR)
	})

	t.Run("missing_inspector", func(t *testing.T) {
		_, err := commands.NewSubmitEIRCommand(2, "INTACTO", "SL-991", "")
		require.ErrorIs(t, err, commands.ErrInspectorNameIsRequired)
	})
}

func TestSubmitEIRCommandHandler_Handle_PlacesFullContainer(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSubmitEIRCommand(2, "INTACTO", "SL-991", "inspector.silva")
	require.NoError(t, err)

	record := newGateInRecord(t, 2)
	require.NoError(t, record.CompleteChecklist("inspector.silva"))

	repo := new(MockContainerRepository)
	uow := new(MockContainerUoW)
	expectRecordMutation(ctx, uow, repo, 2, record)

	factory := new(MockContainerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitEIRCommandHandler(factory, new(keylock.KeyedMutex))
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, container.Full, record.State())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSubmitEIRCommandHandler_Handle_IncompleteReportNeverTouchesRecord(t *testing.T) {
	ctx := t.Context()

	_, err := commands.NewSubmitEIRCommand(2, "", "", "inspector.silva")
	require.ErrorIs(t, err, errs.ErrIncompleteEIR)

	// A zero command fails its own validation before any lock or transaction.
	factory := new(MockContainerUoWFactory)
	h := commands.NewSubmitEIRCommandHandler(factory, new(keylock.KeyedMutex))
	err = h.Handle(ctx, commands.SubmitEIRCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
