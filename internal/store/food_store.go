package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AnthonyAlbero/TCC-fittracker/internal/domain"
)

const (
	listLimit   = 100
	searchLimit = 50
)

type FoodStore struct {
	db *sql.DB
}

func NewFoodStore(db *sql.DB) *FoodStore {
	return &FoodStore{db: db}
}

func (s *FoodStore) Create(ctx context.Context, f domain.Food) (*domain.Food, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO foods (name, category, calories, portion_grams, protein, carbs, fat)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, f.Name, f.Category, f.Calories, f.PortionGrams, f.Protein, f.Carbs, f.Fat)
	if err != nil {
		return nil, fmt.Errorf("failed to create food: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}
	f.ID = id
	return &f, nil
}

func (s *FoodStore) List(ctx context.Context) ([]*domain.Food, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, category, calories, portion_grams, protein, carbs, fat
		FROM foods ORDER BY name ASC LIMIT ?
	`, listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}
	defer rows.Close()

	return scanFoods(rows)
}

// Search matches the query against food names and categories,
// case-insensitively.
func (s *FoodStore) Search(ctx context.Context, query string) ([]*domain.Food, error) {
	pattern := "%" + query + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, category, calories, portion_grams, protein, carbs, fat
		FROM foods
		WHERE name LIKE ? COLLATE NOCASE OR category LIKE ? COLLATE NOCASE
		ORDER BY name ASC LIMIT ?
	`, pattern, pattern, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search foods: %w", err)
	}
	defer rows.Close()

	return scanFoods(rows)
}

func (s *FoodStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM foods`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count foods: %w", err)
	}
	return n, nil
}

func scanFoods(rows *sql.Rows) ([]*domain.Food, error) {
	var foods []*domain.Food
	for rows.Next() {
		f := &domain.Food{}
		if err := rows.Scan(&f.ID, &f.Name, &f.Category, &f.Calories, &f.PortionGrams, &f.Protein, &f.Carbs, &f.Fat); err != nil {
			return nil, fmt.Errorf("failed to scan food: %w", err)
		}
		foods = append(foods, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating foods: %w", err)
	}
	return foods, nil
}
