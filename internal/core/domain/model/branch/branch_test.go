package branch_test

import (
	"testing"

	"entregas/internal/core/domain/model/branch"
	"entregas/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBranch(t *testing.T) {
	t.Run("should create active branch", func(t *testing.T) {
		b, err := branch.NewBranch("  Sucursal Norte ", branch.Contact{Locality: "Rosario", Email: "norte@example.com"})

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.Equal(t, "Sucursal Norte", b.Name())
		assert.True(t, b.IsActive())
		assert.Zero(t, b.ID())
		require.NoError(t, b.ValidateAcceptsOrders())
	})

	t.Run("should require name", func(t *testing.T) {
		_, err := branch.NewBranch(" ", branch.Contact{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject malformed email", func(t *testing.T) {
		_, err := branch.NewBranch("Centro", branch.Contact{Email: "not-an-email"})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreBranch(t *testing.T) {
	b, err := branch.RestoreBranch(branch.Snapshot{ID: 4, Name: "Sur", Active: false})
	require.NoError(t, err)
	assert.Equal(t, int64(4), b.ID())
	require.ErrorIs(t, b.ValidateAcceptsOrders(), errs.ErrValueIsInvalid)

	_, err = branch.RestoreBranch(branch.Snapshot{Name: "Sur"})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestBranch_ZeroValueIsInvalid(t *testing.T) {
	var b branch.Branch
	require.ErrorIs(t, b.Validate(), branch.ErrBranchIsNotConstructed)
}
