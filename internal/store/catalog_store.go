package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/takedajouji/FitU/internal/apperrors"
	"github.com/takedajouji/FitU/internal/database"
	model "github.com/takedajouji/FitU/internal/models"
	"github.com/takedajouji/FitU/internal/scanner"
)

const exerciseSelectColumns = `
	e.id, e.name, e.category, e.difficulty,
	e.calories_per_minute, e.muscle_groups,
	e.description, e.is_active, e.created_at`

// CatalogStore expose le catalogue d'exercices (données de référence,
// lecture seule pour le cœur applicatif)
type CatalogStore struct{}

func NewCatalogStore() *CatalogStore {
	return &CatalogStore{}
}

// GetByID retourne une entrée du catalogue, apperrors.NotFoundError si absente
func (s *CatalogStore) GetByID(ctx context.Context, id string) (*model.Exercise, error) {
	row := database.DB.QueryRow(ctx, `
		SELECT `+exerciseSelectColumns+`
		FROM exercises e
		WHERE e.id=$1`,
		id,
	)

	ex, err := scanner.ScanExercise(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("exercise", id)
		}
		return nil, fmt.Errorf("could not get exercise: %w", err)
	}

	return ex, nil
}

// ListActive retourne toutes les entrées actives du catalogue
func (s *CatalogStore) ListActive(ctx context.Context) ([]model.Exercise, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT `+exerciseSelectColumns+`
		FROM exercises e
		WHERE e.is_active = true
		ORDER BY e.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query exercises: %w", err)
	}
	defer rows.Close()

	return collectExercises(rows)
}

// ListByCategories retourne les entrées actives appartenant aux catégories données
func (s *CatalogStore) ListByCategories(ctx context.Context, categories []string) ([]model.Exercise, error) {
	if len(categories) == 0 {
		return nil, nil
	}

	rows, err := database.DB.Query(ctx, `
		SELECT `+exerciseSelectColumns+`
		FROM exercises e
		WHERE e.is_active = true AND e.category = ANY($1)
		ORDER BY e.name`,
		categories,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query exercises by category: %w", err)
	}
	defer rows.Close()

	return collectExercises(rows)
}

// ListByDifficulty retourne jusqu'à limit entrées actives d'une difficulté donnée
func (s *CatalogStore) ListByDifficulty(ctx context.Context, difficulty string, limit int) ([]model.Exercise, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT `+exerciseSelectColumns+`
		FROM exercises e
		WHERE e.is_active = true AND e.difficulty = $1
		ORDER BY e.name
		LIMIT $2`,
		difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query exercises by difficulty: %w", err)
	}
	defer rows.Close()

	return collectExercises(rows)
}

func collectExercises(rows pgx.Rows) ([]model.Exercise, error) {
	var exercises []model.Exercise
	for rows.Next() {
		ex, err := scanner.ScanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan exercise row: %w", err)
		}
		exercises = append(exercises, *ex)
	}
	return exercises, rows.Err()
}
