package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"planning-bot/internal/domain"
	"planning-bot/internal/model"
)

type SqliteShopRepo struct {
	db *sql.DB
}

func NewSqliteShopRepo(db *sql.DB) *SqliteShopRepo {
	return &SqliteShopRepo{db: db}
}

func (r *SqliteShopRepo) GetAllShops() ([]string, error) {
	rows, err := r.db.Query(`SELECT name FROM shops ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var shops []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		shops = append(shops, name)
	}
	return shops, rows.Err()
}

func (r *SqliteShopRepo) CreateShop(name string) error {
	res, err := r.db.Exec(
		`INSERT INTO shops (name, created_at) VALUES (?, ?) ON CONFLICT (name) DO NOTHING`,
		name, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrDuplicateShop
	}
	return nil
}

func (r *SqliteShopRepo) ShopExists(name string) (bool, error) {
	var one int
	err := r.db.QueryRow(`SELECT 1 FROM shops WHERE name = ?`, name).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

// GetEmployees returns the employees of shop in the order they were added.
func (r *SqliteShopRepo) GetEmployees(shop string) ([]string, error) {
	rows, err := r.db.Query(
		`SELECT id, shop, name, position FROM employees WHERE shop = ? ORDER BY position, id`,
		shop,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var e model.EmployeeRecord
		if err := rows.Scan(&e.ID, &e.Shop, &e.Name, &e.Position); err != nil {
			return nil, err
		}
		names = append(names, e.Name)
	}
	return names, rows.Err()
}

func (r *SqliteShopRepo) AddEmployee(shop, name string) error {
	res, err := r.db.Exec(
		`INSERT INTO employees (shop, name, position)
		 SELECT ?, ?, COALESCE(MAX(position), -1) + 1 FROM employees WHERE shop = ?
		 ON CONFLICT (shop, name) DO NOTHING`,
		shop, name, shop,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrDuplicateEmployee
	}
	return nil
}

func (r *SqliteShopRepo) RemoveEmployee(shop, name string) error {
	res, err := r.db.Exec(`DELETE FROM employees WHERE shop = ? AND name = ?`, shop, name)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *SqliteShopRepo) ResetEmployees(shop string) error {
	_, err := r.db.Exec(`DELETE FROM employees WHERE shop = ?`, shop)
	return err
}
