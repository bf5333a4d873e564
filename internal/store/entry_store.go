package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/takedajouji/FitU/internal/apperrors"
	"github.com/takedajouji/FitU/internal/database"
	model "github.com/takedajouji/FitU/internal/models"
	"github.com/takedajouji/FitU/internal/scanner"
)

const foodSelectColumns = `
	f.id, f.user_id, f.name,
	f.calories_per_serving, f.servings,
	f.protein_g, f.carbs_g, f.fat_g,
	f.fiber_g, f.sugar_g, f.sodium_mg,
	f.meal_type, f.consumed_at,
	f.created_at, f.updated_at`

const logSelectColumns = `
	l.id, l.user_id, l.exercise_id, l.duration_minutes,
	l.sets, l.reps, l.weight_kg, l.distance_km, l.calories_burned,
	l.performed_at, l.notes, l.rating,
	l.created_at, l.updated_at,
	e.name, e.category, e.calories_per_minute, e.muscle_groups`

// EntryStore persiste les entrées alimentaires et les séances d'exercice,
// indexées par utilisateur et horodatage
type EntryStore struct{}

func NewEntryStore() *EntryStore {
	return &EntryStore{}
}

// CreateFoodEntry insère une entrée alimentaire et renseigne id et dates
func (s *EntryStore) CreateFoodEntry(ctx context.Context, entry *model.FoodEntry) error {
	err := database.DB.QueryRow(ctx, `
		INSERT INTO food_entries(user_id, name, calories_per_serving, servings,
			protein_g, carbs_g, fat_g, fiber_g, sugar_g, sodium_mg,
			meal_type, consumed_at, created_at, updated_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,NOW(),NOW())
		RETURNING id, created_at, updated_at`,
		entry.UserID, entry.Name, entry.CaloriesPerServing, entry.Servings,
		entry.ProteinG, entry.CarbsG, entry.FatG, entry.FiberG, entry.SugarG,
		entry.SodiumMg, entry.MealType, entry.ConsumedAt,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		return fmt.Errorf("could not create food entry: %w", err)
	}
	return nil
}

// GetFoodEntry retourne une entrée alimentaire par id
func (s *EntryStore) GetFoodEntry(ctx context.Context, id string) (*model.FoodEntry, error) {
	row := database.DB.QueryRow(ctx, `
		SELECT `+foodSelectColumns+`
		FROM food_entries f
		WHERE f.id=$1`,
		id,
	)

	entry, err := scanner.ScanFoodEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("food entry", id)
		}
		return nil, fmt.Errorf("could not get food entry: %w", err)
	}
	return entry, nil
}

// FoodEntriesBetween retourne les entrées d'un utilisateur dans [from, to]
func (s *EntryStore) FoodEntriesBetween(ctx context.Context, userID string, from, to time.Time) ([]model.FoodEntry, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT `+foodSelectColumns+`
		FROM food_entries f
		WHERE f.user_id=$1 AND f.consumed_at >= $2 AND f.consumed_at <= $3
		ORDER BY f.consumed_at`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query food entries: %w", err)
	}
	defer rows.Close()

	var entries []model.FoodEntry
	for rows.Next() {
		entry, err := scanner.ScanFoodEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan food entry row: %w", err)
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

// UpdateFoodEntry met à jour une entrée alimentaire existante
func (s *EntryStore) UpdateFoodEntry(ctx context.Context, entry *model.FoodEntry) error {
	res, err := database.DB.Exec(ctx, `
		UPDATE food_entries
		SET name=$1, calories_per_serving=$2, servings=$3,
			protein_g=$4, carbs_g=$5, fat_g=$6, fiber_g=$7, sugar_g=$8,
			sodium_mg=$9, meal_type=$10, consumed_at=$11, updated_at=NOW()
		WHERE id=$12`,
		entry.Name, entry.CaloriesPerServing, entry.Servings,
		entry.ProteinG, entry.CarbsG, entry.FatG, entry.FiberG, entry.SugarG,
		entry.SodiumMg, entry.MealType, entry.ConsumedAt, entry.ID,
	)
	if err != nil {
		return fmt.Errorf("could not update food entry: %w", err)
	}
	if res.RowsAffected() == 0 {
		return apperrors.NewNotFound("food entry", entry.ID)
	}
	return nil
}

// DeleteFoodEntry supprime une entrée alimentaire
func (s *EntryStore) DeleteFoodEntry(ctx context.Context, id string) error {
	res, err := database.DB.Exec(ctx, `DELETE FROM food_entries WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("could not delete food entry: %w", err)
	}
	if res.RowsAffected() == 0 {
		return apperrors.NewNotFound("food entry", id)
	}
	return nil
}

// CreateExerciseLog insère une séance d'exercice et renseigne id et dates.
// Les calories brûlées sont figées ici, jamais recalculées ensuite.
func (s *EntryStore) CreateExerciseLog(ctx context.Context, lg *model.ExerciseLog) error {
	err := database.DB.QueryRow(ctx, `
		INSERT INTO exercise_logs(user_id, exercise_id, duration_minutes,
			sets, reps, weight_kg, distance_km, calories_burned,
			performed_at, notes, rating, created_at, updated_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,NOW(),NOW())
		RETURNING id, created_at, updated_at`,
		lg.UserID, lg.ExerciseID, lg.DurationMinutes,
		lg.Sets, lg.Reps, lg.WeightKg, lg.DistanceKm, lg.CaloriesBurned,
		lg.PerformedAt, lg.Notes, lg.Rating,
	).Scan(&lg.ID, &lg.CreatedAt, &lg.UpdatedAt)

	if err != nil {
		return fmt.Errorf("could not create exercise log: %w", err)
	}
	return nil
}

// GetExerciseLog retourne une séance par id, avec les champs du catalogue joints
func (s *EntryStore) GetExerciseLog(ctx context.Context, id string) (*model.ExerciseLog, error) {
	row := database.DB.QueryRow(ctx, `
		SELECT `+logSelectColumns+`
		FROM exercise_logs l
		JOIN exercises e ON l.exercise_id = e.id
		WHERE l.id=$1`,
		id,
	)

	lg, err := scanner.ScanExerciseLog(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("exercise log", id)
		}
		return nil, fmt.Errorf("could not get exercise log: %w", err)
	}
	return lg, nil
}

// ExerciseLogsBetween retourne les séances d'un utilisateur dans [from, to],
// enrichies des champs du catalogue pour les moteurs de scoring
func (s *EntryStore) ExerciseLogsBetween(ctx context.Context, userID string, from, to time.Time) ([]model.ExerciseLog, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT `+logSelectColumns+`
		FROM exercise_logs l
		JOIN exercises e ON l.exercise_id = e.id
		WHERE l.user_id=$1 AND l.performed_at >= $2 AND l.performed_at <= $3
		ORDER BY l.performed_at`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query exercise logs: %w", err)
	}
	defer rows.Close()

	var logs []model.ExerciseLog
	for rows.Next() {
		lg, err := scanner.ScanExerciseLog(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan exercise log row: %w", err)
		}
		logs = append(logs, *lg)
	}
	return logs, rows.Err()
}

// DeleteExerciseLog supprime une séance
func (s *EntryStore) DeleteExerciseLog(ctx context.Context, id string) error {
	res, err := database.DB.Exec(ctx, `DELETE FROM exercise_logs WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("could not delete exercise log: %w", err)
	}
	if res.RowsAffected() == 0 {
		return apperrors.NewNotFound("exercise log", id)
	}
	return nil
}
