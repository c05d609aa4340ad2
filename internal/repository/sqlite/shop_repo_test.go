package sqlite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planning-bot/internal/domain"
	"planning-bot/internal/repository/sqlite"
	"planning-bot/internal/testutil"
)

func TestShops(t *testing.T) {
	repo := sqlite.NewSqliteShopRepo(testutil.NewTestDB(t))

	require.NoError(t, repo.CreateShop("SUD"))
	require.NoError(t, repo.CreateShop("NORD"))
	assert.ErrorIs(t, repo.CreateShop("NORD"), domain.ErrDuplicateShop)

	shops, err := repo.GetAllShops()
	require.NoError(t, err)
	assert.Equal(t, []string{"NORD", "SUD"}, shops)

	ok, err := repo.ShopExists("NORD")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.ShopExists("EST")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEmployeesPerShop(t *testing.T) {
	repo := sqlite.NewSqliteShopRepo(testutil.NewTestDB(t))
	require.NoError(t, repo.CreateShop("NORD"))
	require.NoError(t, repo.CreateShop("SUD"))

	require.NoError(t, repo.AddEmployee("NORD", "BOB"))
	require.NoError(t, repo.AddEmployee("NORD", "ALICE"))
	require.NoError(t, repo.AddEmployee("SUD", "ALICE"))
	assert.ErrorIs(t, repo.AddEmployee("NORD", "BOB"), domain.ErrDuplicateEmployee)

	nord, err := repo.GetEmployees("NORD")
	require.NoError(t, err)
	assert.Equal(t, []string{"BOB", "ALICE"}, nord)

	require.NoError(t, repo.ResetEmployees("NORD"))
	nord, err = repo.GetEmployees("NORD")
	require.NoError(t, err)
	assert.Empty(t, nord)

	sud, err := repo.GetEmployees("SUD")
	require.NoError(t, err)
	assert.Equal(t, []string{"ALICE"}, sud)

	assert.ErrorIs(t, repo.RemoveEmployee("SUD", "BOB"), domain.ErrEmployeeNotFound)
}

func TestAddEmployeeNeedsShop(t *testing.T) {
	repo := sqlite.NewSqliteShopRepo(testutil.NewTestDB(t))
	assert.Error(t, repo.AddEmployee("NOWHERE", "ALICE"), "foreign key")
}
