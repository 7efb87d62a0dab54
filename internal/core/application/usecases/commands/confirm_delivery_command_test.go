package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entregas/internal/core/application/usecases/commands"
	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/errs"
)

func TestNewConfirmDeliveryCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewConfirmDeliveryCommand(id, " 30111222 ", 7, "firma-1.png", "  left with doorman ")
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Equal(t, "30111222", cmd.ReceiverDocument())
	assert.Equal(t, int64(7), cmd.DelivererID())
	assert.Equal(t, "firma-1.png", cmd.SignatureRef())
	assert.Equal(t, "left with doorman", cmd.Notes())

	_, err = commands.NewConfirmDeliveryCommand(id, "   ", 7, "", "")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewConfirmDeliveryCommand(id, "30111222", 0, "", "")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	assert.ErrorIs(t, commands.ConfirmDeliveryCommand{}.Validate(), commands.ErrConfirmDeliveryCommandIsNotConstructed)
}
