package queries_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entregas/internal/core/application/usecases/queries"
)

func TestGetBranchesQueryHandler_Handle(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .* FROM branches ORDER BY name`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address", "locality", "postal_code", "phone", "email", "active"}).
			AddRow(int64(1), "Sucursal Centro", "San Martin 50", "Rosario", "2000", "341-555-0101", "centro@example.com", true).
			AddRow(int64(2), "Sucursal Norte", "", "", "", "", "", false))

	got, err := queries.NewGetBranchesQueryHandler(db).Handle(t.Context(), queries.NewGetBranchesQuery())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, queries.BranchView{
		ID:         1,
		Name:       "Sucursal Centro",
		Address:    "San Martin 50",
		Locality:   "Rosario",
		PostalCode: "2000",
		Phone:      "341-555-0101",
		Email:      "centro@example.com",
		Active:     true,
	}, got[0])
	assert.False(t, got[1].Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBranchesQuery_NotConstructedViaConstructor(t *testing.T) {
	_, err := queries.NewGetBranchesQueryHandler(nil).Handle(t.Context(), queries.GetBranchesQuery{})
	assert.ErrorIs(t, err, queries.ErrGetBranchesQueryIsNotConstructed)
}
