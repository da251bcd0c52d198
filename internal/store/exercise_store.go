package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AnthonyAlbero/TCC-fittracker/internal/domain"
)

type ExerciseStore struct {
	db *sql.DB
}

func NewExerciseStore(db *sql.DB) *ExerciseStore {
	return &ExerciseStore{db: db}
}

func (s *ExerciseStore) Create(ctx context.Context, e domain.Exercise) (*domain.Exercise, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO exercises (name, category, calories_per_minute, intensity)
		VALUES (?, ?, ?, ?)
	`, e.Name, e.Category, e.CaloriesPerMinute, e.Intensity)
	if err != nil {
		return nil, fmt.Errorf("failed to create exercise: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}
	e.ID = id
	return &e, nil
}

func (s *ExerciseStore) List(ctx context.Context) ([]*domain.Exercise, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, category, calories_per_minute, intensity
		FROM exercises ORDER BY name ASC LIMIT ?
	`, listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	defer rows.Close()

	return scanExercises(rows)
}

// Search matches the query against exercise names and categories,
// case-insensitively.
func (s *ExerciseStore) Search(ctx context.Context, query string) ([]*domain.Exercise, error) {
	pattern := "%" + query + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, category, calories_per_minute, intensity
		FROM exercises
		WHERE name LIKE ? COLLATE NOCASE OR category LIKE ? COLLATE NOCASE
		ORDER BY name ASC LIMIT ?
	`, pattern, pattern, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search exercises: %w", err)
	}
	defer rows.Close()

	return scanExercises(rows)
}

func (s *ExerciseStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM exercises`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count exercises: %w", err)
	}
	return n, nil
}

func scanExercises(rows *sql.Rows) ([]*domain.Exercise, error) {
	var exercises []*domain.Exercise
	for rows.Next() {
		e := &domain.Exercise{}
		if err := rows.Scan(&e.ID, &e.Name, &e.Category, &e.CaloriesPerMinute, &e.Intensity); err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exercises: %w", err)
	}
	return exercises, nil
}
