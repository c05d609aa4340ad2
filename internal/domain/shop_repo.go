package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName         = errors.New("nom vide")
	ErrDuplicateShop     = errors.New("cette boutique existe déjà")
	ErrDuplicateEmployee = errors.New("cet employé existe déjà")
	ErrShopNotFound      = errors.New("boutique introuvable")
	ErrEmployeeNotFound  = errors.New("employé introuvable")
)

type ShopRepo interface {
	GetAllShops() ([]string, error)
	CreateShop(name string) error
	ShopExists(name string) (bool, error)
	GetEmployees(shop string) ([]string, error)
	AddEmployee(shop, name string) error
	RemoveEmployee(shop, name string) error
	ResetEmployees(shop string) error
}

// NormalizeName trims and upper-cases shop and employee names so that
// "alice " and "ALICE" are the same person.
func NormalizeName(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}
