package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AnthonyAlbero/TCC-fittracker/internal/domain"
)

// ProfileStore holds the single user profile. Get returns nil when no profile
// has been saved yet.
type ProfileStore struct {
	db *sql.DB
}

func NewProfileStore(db *sql.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

func (s *ProfileStore) Get(ctx context.Context) (*domain.UserProfile, error) {
	p := &domain.UserProfile{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, age, height_cm, weight_kg, gender, activity_level, goal, updated_at
		FROM user_profiles ORDER BY id ASC LIMIT 1
	`).Scan(&p.ID, &p.Age, &p.HeightCm, &p.WeightKg, &p.Gender, &p.ActivityLevel, &p.Goal, &p.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// Upsert updates the stored profile, creating it on first save.
func (s *ProfileStore) Upsert(ctx context.Context, p domain.UserProfile) (*domain.UserProfile, error) {
	existing, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO user_profiles (age, height_cm, weight_kg, gender, activity_level, goal)
			VALUES (?, ?, ?, ?, ?, ?)
		`, p.Age, p.HeightCm, p.WeightKg, p.Gender, p.ActivityLevel, p.Goal)
		if err != nil {
			return nil, fmt.Errorf("failed to create profile: %w", err)
		}
		return s.Get(ctx)
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE user_profiles
		SET age = ?, height_cm = ?, weight_kg = ?, gender = ?, activity_level = ?, goal = ?,
		    updated_at = datetime('now')
		WHERE id = ?
	`, p.Age, p.HeightCm, p.WeightKg, p.Gender, p.ActivityLevel, p.Goal, existing.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.Get(ctx)
}
