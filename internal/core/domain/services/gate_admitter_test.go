package services_test

import (
	"testing"

	"yardgate/internal/core/domain/model/container"
	"yardgate/internal/core/domain/model/gate"
	"yardgate/internal/core/domain/model/kernel"
	"yardgate/internal/core/domain/model/yard"
	"yardgate/internal/core/domain/services"
	"yardgate/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEntryMovement(t *testing.T, number string) *gate.LogEntry {
	t.Helper()
	entry, err := gate.NewLogEntry(kernel.NewUUID(), number, gate.Entrada,
		"ABC-1D23", "J. Pereira", "inspector.silva", container.Cheio)
	require.NoError(t, err)
	return entry
}

func TestGateAdmitter_Admit(t *testing.T) {
	t.Run("seeds_record_in_lowest_free_slot", func(t *testing.T) {
		admitter := services.NewGateAdmitter()
		arena, err := yard.NewArena(4)
		require.NoError(t, err)

		record, err := admitter.Admit(newEntryMovement(t, "MSCU1234567"), arena, "gate-kiosk")

		require.NoError(t, err)
		assert.Equal(t, 0, record.InternalID())
		assert.Equal(t, "MSCU1234567", record.ContainerNumber())
		assert.Equal(t, container.GateIn, record.State())
		assert.Equal(t, container.Cheio, record.CargoStatus())
		assert.Equal(t, 1, arena.OccupiedCount())

		index, found := arena.FindByContainer(record.ID())
		assert.True(t, found)
		assert.Equal(t, 0, index)
	})

	t.Run("fails_when_yard_is_full", func(t *testing.T) {
		admitter := services.NewGateAdmitter()
		arena, err := yard.NewArena(1)
		require.NoError(t, err)

		_, err = admitter.Admit(newEntryMovement(t, "MSCU1234567"), arena, "gate-kiosk")
		require.NoError(t, err)

		_, err = admitter.Admit(newEntryMovement(t, "TCLU7654321"), arena, "gate-kiosk")

		require.ErrorIs(t, err, errs.ErrCapacityExceeded)
		assert.Equal(t, 1, arena.OccupiedCount())
	})

	t.Run("releases_slot_when_actor_is_missing", func(t *testing.T) {
		admitter := services.NewGateAdmitter()
		arena, err := yard.NewArena(4)
		require.NoError(t, err)

		_, err = admitter.Admit(newEntryMovement(t, "MSCU1234567"), arena, "")

		require.Error(t, err)
		assert.Equal(t, 0, arena.OccupiedCount())
	})

	t.Run("rejects_invalid_entry", func(t *testing.T) {
		admitter := services.NewGateAdmitter()
		arena, err := yard.NewArena(4)
		require.NoError(t, err)

		var zero gate.LogEntry
		_, err = admitter.Admit(&zero, arena, "gate-kiosk")

		require.Error(t, err)
	})
}
