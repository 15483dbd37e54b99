package storage

import (
	"context"
	"database/sql"

	"warung-pos/internal/domain"

	"github.com/lib/pq"
)

type MenuStore struct {
	DB *sql.DB
}

func NewMenuStore(db *sql.DB) *MenuStore {
	return &MenuStore{DB: db}
}

func (s *MenuStore) GetMenus(ctx context.Context, ids []int) (map[int]domain.Menu, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, name, category_id, price, is_available, created_at
		FROM menus
		WHERE id = ANY($1)
	`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menus := make(map[int]domain.Menu, len(ids))
	for rows.Next() {
		var menu domain.Menu
		if err := rows.Scan(&menu.ID, &menu.Name, &menu.CategoryID, &menu.Price, &menu.IsAvailable, &menu.CreatedAt); err != nil {
			return nil, err
		}
		menus[menu.ID] = menu
	}
	return menus, rows.Err()
}

func (s *MenuStore) ListMenus(ctx context.Context) ([]domain.Menu, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, name, category_id, price, is_available, created_at
		FROM menus
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menus := []domain.Menu{}
	for rows.Next() {
		var menu domain.Menu
		if err := rows.Scan(&menu.ID, &menu.Name, &menu.CategoryID, &menu.Price, &menu.IsAvailable, &menu.CreatedAt); err != nil {
			return nil, err
		}
		menus = append(menus, menu)
	}
	return menus, rows.Err()
}

func (s *MenuStore) CreateMenu(ctx context.Context, menu *domain.Menu) error {
	return s.DB.QueryRowContext(ctx, `
		INSERT INTO menus (name, category_id, price, is_available)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, menu.Name, menu.CategoryID, menu.Price, menu.IsAvailable).Scan(&menu.ID, &menu.CreatedAt)
}

func (s *MenuStore) UpdateMenu(ctx context.Context, menu *domain.Menu) error {
	result, err := s.DB.ExecContext(ctx, `
		UPDATE menus
		SET name = $1, category_id = $2, price = $3, is_available = $4
		WHERE id = $5
	`, menu.Name, menu.CategoryID, menu.Price, menu.IsAvailable, menu.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrMenuNotFound
	}
	return nil
}

func (s *MenuStore) DeleteMenu(ctx context.Context, id int) (int64, error) {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM menus WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *MenuStore) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, name, created_at FROM categories ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (s *MenuStore) CreateCategory(ctx context.Context, category *domain.Category) error {
	return s.DB.QueryRowContext(ctx, `
		INSERT INTO categories (name) VALUES ($1) RETURNING id, created_at
	`, category.Name).Scan(&category.ID, &category.CreatedAt)
}

func (s *MenuStore) UpdateCategory(ctx context.Context, category *domain.Category) error {
	result, err := s.DB.ExecContext(ctx, `
		UPDATE categories SET name = $1 WHERE id = $2
	`, category.Name, category.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (s *MenuStore) DeleteCategory(ctx context.Context, id int) (int64, error) {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
