package kernel_test

import (
	"strings"
	"testing"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoiceNumber(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		n, err := kernel.NewInvoiceNumber("  A-0001 ")

		require.NoError(t, err)
		require.NoError(t, n.Validate())
		assert.Equal(t, "A-0001", n.String())
	})

	t.Run("rejects blank values", func(t *testing.T) {
		_, err := kernel.NewInvoiceNumber("   ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects oversized values", func(t *testing.T) {
		_, err := kernel.NewInvoiceNumber(strings.Repeat("9", kernel.MaxInvoiceNumberLength+1))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects control characters", func(t *testing.T) {
		_, err := kernel.NewInvoiceNumber("A-00\n01")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("equality compares the normalized value", func(t *testing.T) {
		a, _ := kernel.NewInvoiceNumber("A-0001")
		b, _ := kernel.NewInvoiceNumber(" A-0001")
		c, _ := kernel.NewInvoiceNumber("A-0002")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var n kernel.InvoiceNumber
		require.ErrorIs(t, n.Validate(), kernel.ErrInvoiceNumberIsNotConstructed)
	})
}
