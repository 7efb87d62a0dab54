package tangoconnect_test

import (
	"testing"
	"time"

	"entregas/internal/adapters/out/tangoconnect"
	"entregas/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCandidate(t *testing.T) {
	base := tangoconnect.Invoice{
		NumeroFactura: " FC-A-0003-00000045 ",
		FechaFactura:  "2025-02-14",
		Cliente: tangoconnect.Customer{
			RazonSocial: " Distribuidora Norte SA ",
			Direccion:   "Belgrano 55",
			Localidad:   "Jujuy",
			CUIT:        "30-12345678-9",
		},
	}

	t.Run("should map invoice fields", func(t *testing.T) {
		c, err := tangoconnect.ToCandidate(base)

		require.NoError(t, err)
		assert.Equal(t, "FC-A-0003-00000045", c.Number.String())
		assert.Equal(t, "Distribuidora Norte SA", c.Customer)
		assert.Equal(t, "Belgrano 55", c.Address)
		assert.Equal(t, "Jujuy", c.Locality)
		assert.Equal(t, time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC), c.Date)
	})

	t.Run("should accept local timestamps", func(t *testing.T) {
		inv := base
		inv.FechaFactura = "2025-02-14T08:30:00"

		c, err := tangoconnect.ToCandidate(inv)

		require.NoError(t, err)
		assert.Equal(t, 8, c.Date.Hour())
	})

	t.Run("should reject empty invoice number", func(t *testing.T) {
		inv := base
		inv.NumeroFactura = "  "

		_, err := tangoconnect.ToCandidate(inv)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unparseable date", func(t *testing.T) {
		inv := base
		inv.FechaFactura = "14/02/2025"

		_, err := tangoconnect.ToCandidate(inv)

		require.Error(t, err)
	})

	t.Run("should require customer name", func(t *testing.T) {
		inv := base
		inv.Cliente.RazonSocial = ""

		_, err := tangoconnect.ToCandidate(inv)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
