package user_test

import (
	"testing"

	"entregas/internal/core/domain/model/user"
	"entregas/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestNewUser(t *testing.T) {
	t.Run("should hash password and normalize email", func(t *testing.T) {
		u, err := user.NewUser("Ana Perez", " Ana@Example.COM ", "secreto1", user.Operator, nil)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, "ana@example.com", u.Email())
		assert.NotEqual(t, "secreto1", u.Snapshot().PasswordHash)
		assert.True(t, u.CheckPassword("secreto1"))
		assert.False(t, u.CheckPassword("otro"))
		assert.True(t, u.IsActive())
	})

	t.Run("should bind branch staff to a branch", func(t *testing.T) {
		_, err := user.NewUser("Luis", "luis@example.com", "secreto1", user.BranchStaff, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		u, err := user.NewUser("Luis", "luis@example.com", "secreto1", user.BranchStaff, int64Ptr(2))
		require.NoError(t, err)
		assert.True(t, u.CanServeBranch(2))
		assert.False(t, u.CanServeBranch(3))
	})

	t.Run("should reject short password and bad role", func(t *testing.T) {
		_, err := user.NewUser("Luis", "luis@example.com", "123", user.Role("ROOT"), nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "password")
		assert.Contains(t, err.Error(), "role")
	})
}

func TestUser_CanServeBranch(t *testing.T) {
	admin, err := user.NewUser("Root", "root@example.com", "secreto1", user.Admin, nil)
	require.NoError(t, err)
	assert.True(t, admin.CanServeBranch(99))
}

func TestParseRole(t *testing.T) {
	r, err := user.ParseRole("BRANCH")
	require.NoError(t, err)
	assert.Equal(t, user.BranchStaff, r)

	_, err = user.ParseRole("SUCURSAL")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRestoreUser(t *testing.T) {
	u, err := user.NewUser("Ana", "ana@example.com", "secreto1", user.Admin, nil)
	require.NoError(t, err)
	s := u.Snapshot()
	s.ID = 10
	s.Active = false

	restored, err := user.RestoreUser(s)

	require.NoError(t, err)
	assert.Equal(t, int64(10), restored.ID())
	assert.False(t, restored.IsActive())
	assert.True(t, restored.CheckPassword("secreto1"))

	_, err = user.RestoreUser(user.Snapshot{Name: "x", Email: "x@example.com", Role: user.Admin})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
