package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AnthonyAlbero/TCC-fittracker/internal/domain"
)

type FoodEntryStore struct {
	db *sql.DB
}

func NewFoodEntryStore(db *sql.DB) *FoodEntryStore {
	return &FoodEntryStore{db: db}
}

func (s *FoodEntryStore) Create(ctx context.Context, e domain.FoodEntry) (*domain.FoodEntry, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO food_entries (food_name, calories, portion_grams, protein, carbs, fat, date, time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.FoodName, e.Calories, e.PortionGrams, e.Protein, e.Carbs, e.Fat, e.Date, e.Time)
	if err != nil {
		return nil, fmt.Errorf("failed to create food entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *FoodEntryStore) GetByID(ctx context.Context, id int64) (*domain.FoodEntry, error) {
	e := &domain.FoodEntry{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, food_name, calories, portion_grams, protein, carbs, fat, date, time, created_at
		FROM food_entries WHERE id = ?
	`, id).Scan(&e.ID, &e.FoodName, &e.Calories, &e.PortionGrams, &e.Protein, &e.Carbs, &e.Fat, &e.Date, &e.Time, &e.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get food entry: %w", err)
	}
	return e, nil
}

// ListByDate returns the entries logged on date (YYYY-MM-DD), newest first.
func (s *FoodEntryStore) ListByDate(ctx context.Context, date string) ([]*domain.FoodEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, food_name, calories, portion_grams, protein, carbs, fat, date, time, created_at
		FROM food_entries WHERE date = ? ORDER BY created_at DESC, id DESC
	`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list food entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.FoodEntry
	for rows.Next() {
		e := &domain.FoodEntry{}
		if err := rows.Scan(&e.ID, &e.FoodName, &e.Calories, &e.PortionGrams, &e.Protein, &e.Carbs, &e.Fat, &e.Date, &e.Time, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan food entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating food entries: %w", err)
	}
	return entries, nil
}

func (s *FoodEntryStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM food_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete food entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
