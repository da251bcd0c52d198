package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AnthonyAlbero/TCC-fittracker/internal/domain"
)

type WorkoutEntryStore struct {
	db *sql.DB
}

func NewWorkoutEntryStore(db *sql.DB) *WorkoutEntryStore {
	return &WorkoutEntryStore{db: db}
}

func (s *WorkoutEntryStore) Create(ctx context.Context, e domain.WorkoutEntry) (*domain.WorkoutEntry, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO workout_entries (exercise_name, category, duration_min, calories_burned, intensity, date, time)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.ExerciseName, e.Category, e.DurationMin, e.CaloriesBurned, e.Intensity, e.Date, e.Time)
	if err != nil {
		return nil, fmt.Errorf("failed to create workout entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *WorkoutEntryStore) GetByID(ctx context.Context, id int64) (*domain.WorkoutEntry, error) {
	e := &domain.WorkoutEntry{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, exercise_name, category, duration_min, calories_burned, intensity, date, time, created_at
		FROM workout_entries WHERE id = ?
	`, id).Scan(&e.ID, &e.ExerciseName, &e.Category, &e.DurationMin, &e.CaloriesBurned, &e.Intensity, &e.Date, &e.Time, &e.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workout entry: %w", err)
	}
	return e, nil
}

// ListByDate returns the workouts logged on date (YYYY-MM-DD), newest first.
func (s *WorkoutEntryStore) ListByDate(ctx context.Context, date string) ([]*domain.WorkoutEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, exercise_name, category, duration_min, calories_burned, intensity, date, time, created_at
		FROM workout_entries WHERE date = ? ORDER BY created_at DESC, id DESC
	`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list workout entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.WorkoutEntry
	for rows.Next() {
		e := &domain.WorkoutEntry{}
		if err := rows.Scan(&e.ID, &e.ExerciseName, &e.Category, &e.DurationMin, &e.CaloriesBurned, &e.Intensity, &e.Date, &e.Time, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan workout entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workout entries: %w", err)
	}
	return entries, nil
}

func (s *WorkoutEntryStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM workout_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete workout entry: %w", err)
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
