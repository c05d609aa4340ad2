package service

import (
	"fmt"

	"planning-bot/internal/domain"
)

// ShopService manages shops and their ordered employee lists.
type ShopService struct {
	Repo domain.ShopRepo
}

func NewShopService(repo domain.ShopRepo) *ShopService {
	return &ShopService{Repo: repo}
}

// CreateShop registers name, upper-cased, and returns the stored name.
func (s *ShopService) CreateShop(name string) (string, error) {
	name = domain.NormalizeName(name)
	if name == "" {
		return "", domain.ErrEmptyName
	}
	return name, s.Repo.CreateShop(name)
}

// SelectShop returns the stored name of shop, creating it when missing.
func (s *ShopService) SelectShop(name string) (string, error) {
	name = domain.NormalizeName(name)
	if name == "" {
		return "", domain.ErrEmptyName
	}
	ok, err := s.Repo.ShopExists(name)
	if err != nil {
		return "", err
	}
	if ok {
		return name, nil
	}
	return name, s.Repo.CreateShop(name)
}

func (s *ShopService) GetAllShops() ([]string, error) {
	return s.Repo.GetAllShops()
}

func (s *ShopService) GetEmployees(shop string) ([]string, error) {
	return s.Repo.GetEmployees(shop)
}

func (s *ShopService) AddEmployee(shop, name string) (string, error) {
	name = domain.NormalizeName(name)
	if name == "" {
		return "", domain.ErrEmptyName
	}
	ok, err := s.Repo.ShopExists(shop)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrShopNotFound, shop)
	}
	return name, s.Repo.AddEmployee(shop, name)
}

// RemoveEmployee drops name from the list. Planned cells stay in stored
// weeks; they reappear if the employee is added again.
func (s *ShopService) RemoveEmployee(shop, name string) error {
	return s.Repo.RemoveEmployee(shop, domain.NormalizeName(name))
}

func (s *ShopService) ResetEmployees(shop string) error {
	return s.Repo.ResetEmployees(shop)
}
