package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planning-bot/internal/domain"
	"planning-bot/internal/repository/sqlite"
	"planning-bot/internal/testutil"
)

func newShopService(t *testing.T) *ShopService {
	t.Helper()
	return NewShopService(sqlite.NewSqliteShopRepo(testutil.NewTestDB(t)))
}

func TestCreateShopNormalizes(t *testing.T) {
	svc := newShopService(t)

	name, err := svc.CreateShop("  klick   centre ")
	require.NoError(t, err)
	assert.Equal(t, "KLICK CENTRE", name)

	_, err = svc.CreateShop("Klick Centre")
	assert.ErrorIs(t, err, domain.ErrDuplicateShop)

	_, err = svc.CreateShop("   ")
	assert.ErrorIs(t, err, domain.ErrEmptyName)
}

func TestSelectShopCreatesOnce(t *testing.T) {
	svc := newShopService(t)

	name, err := svc.SelectShop("nord")
	require.NoError(t, err)
	assert.Equal(t, "NORD", name)
	_, err = svc.SelectShop("Nord")
	require.NoError(t, err)

	shops, err := svc.GetAllShops()
	require.NoError(t, err)
	assert.Equal(t, []string{"NORD"}, shops)
}

func TestEmployeesKeepInsertionOrder(t *testing.T) {
	svc := newShopService(t)
	shop, err := svc.CreateShop("nord")
	require.NoError(t, err)

	for _, name := range []string{"zoe", "alice", "Marc"} {
		_, err := svc.AddEmployee(shop, name)
		require.NoError(t, err)
	}
	_, err = svc.AddEmployee(shop, "ALICE")
	assert.ErrorIs(t, err, domain.ErrDuplicateEmployee)

	employees, err := svc.GetEmployees(shop)
	require.NoError(t, err)
	assert.Equal(t, []string{"ZOE", "ALICE", "MARC"}, employees)

	require.NoError(t, svc.RemoveEmployee(shop, "alice"))
	assert.ErrorIs(t, svc.RemoveEmployee(shop, "alice"), domain.ErrEmployeeNotFound)

	_, err = svc.AddEmployee(shop, "alice")
	require.NoError(t, err)
	employees, err = svc.GetEmployees(shop)
	require.NoError(t, err)
	assert.Equal(t, []string{"ZOE", "MARC", "ALICE"}, employees)

	require.NoError(t, svc.ResetEmployees(shop))
	employees, err = svc.GetEmployees(shop)
	require.NoError(t, err)
	assert.Empty(t, employees)
}

func TestAddEmployeeUnknownShop(t *testing.T) {
	svc := newShopService(t)
	_, err := svc.AddEmployee("NOWHERE", "alice")
	assert.ErrorIs(t, err, domain.ErrShopNotFound)
}
