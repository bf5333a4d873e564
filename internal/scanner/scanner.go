// Package scanner centralise la conversion des lignes SQL vers les modèles.
package scanner

import (
	"database/sql"

	"github.com/lib/pq"
	model "github.com/takedajouji/FitU/internal/models"
	"github.com/takedajouji/FitU/internal/utils"
)

// RowScanner est satisfait par pgx.Row et pgx.Rows
type RowScanner interface {
	Scan(dest ...interface{}) error
}

// ScanUserProfile scanne une ligne SQL vers un UserProfile
// Utilise les types sql.Null* et les convertit automatiquement
func ScanUserProfile(row RowScanner) (*model.UserProfile, error) {
	var user model.UserProfile
	var avatar, activityLevel, fitnessGoal sql.NullString
	var age, calorieGoal sql.NullInt64
	var weight, height sql.NullFloat64
	var updatedBy sql.NullString

	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &avatar,
		&age, &weight, &height,
		&activityLevel, &fitnessGoal, &calorieGoal,
		&user.JoinDate, &user.CreatedAt, &user.UpdatedAt,
		&user.CreatedBy, &updatedBy,
	)
	if err != nil {
		return nil, err
	}

	// Conversions
	user.Avatar = utils.NullStringToString(avatar)
	user.ActivityLevel = utils.NullStringToString(activityLevel)
	user.FitnessGoal = utils.NullStringToString(fitnessGoal)
	user.Age = utils.NullInt64ToInt(age)
	user.Weight = utils.NullFloat64ToFloat64(weight)
	user.Height = utils.NullFloat64ToFloat64(height)
	user.DailyCalorieGoal = utils.NullInt64ToInt(calorieGoal)
	user.UpdatedBy = utils.NullStringToPointer(updatedBy)

	return &user, nil
}

// ScanExercise scanne une ligne SQL vers une entrée du catalogue d'exercices
// avec pq.Array pour les groupes musculaires (colonne text[])
func ScanExercise(row RowScanner) (*model.Exercise, error) {
	var ex model.Exercise
	var caloriesPerMinute sql.NullFloat64
	var description sql.NullString

	err := row.Scan(
		&ex.ID, &ex.Name, &ex.Category, &ex.Difficulty,
		&caloriesPerMinute, pq.Array(&ex.MuscleGroups),
		&description, &ex.IsActive, &ex.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	ex.CaloriesPerMinute = utils.NullFloat64ToPointer(caloriesPerMinute)
	ex.Description = utils.NullStringToString(description)

	return &ex, nil
}

// ScanFoodEntry scanne une ligne SQL vers une FoodEntry
func ScanFoodEntry(row RowScanner) (*model.FoodEntry, error) {
	var entry model.FoodEntry

	err := row.Scan(
		&entry.ID, &entry.UserID, &entry.Name,
		&entry.CaloriesPerServing, &entry.Servings,
		&entry.ProteinG, &entry.CarbsG, &entry.FatG,
		&entry.FiberG, &entry.SugarG, &entry.SodiumMg,
		&entry.MealType, &entry.ConsumedAt,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// ScanExerciseLog scanne une ligne SQL vers un ExerciseLog, avec les champs
// du catalogue joints (nom, catégorie, taux preset, groupes musculaires)
func ScanExerciseLog(row RowScanner) (*model.ExerciseLog, error) {
	var lg model.ExerciseLog
	var sets, reps, calories, rating sql.NullInt64
	var weight, distance, preset sql.NullFloat64
	var notes sql.NullString

	err := row.Scan(
		&lg.ID, &lg.UserID, &lg.ExerciseID, &lg.DurationMinutes,
		&sets, &reps, &weight, &distance, &calories,
		&lg.PerformedAt, &notes, &rating,
		&lg.CreatedAt, &lg.UpdatedAt,
		&lg.ExerciseName, &lg.ExerciseCategory, &preset, pq.Array(&lg.MuscleGroups),
	)
	if err != nil {
		return nil, err
	}

	lg.Sets = utils.NullInt64ToPointer(sets)
	lg.Reps = utils.NullInt64ToPointer(reps)
	lg.WeightKg = utils.NullFloat64ToPointer(weight)
	lg.DistanceKm = utils.NullFloat64ToPointer(distance)
	lg.CaloriesBurned = utils.NullInt64ToPointer(calories)
	lg.Rating = utils.NullInt64ToPointer(rating)
	lg.Notes = utils.NullStringToString(notes)
	lg.PresetCaloriesMin = utils.NullFloat64ToPointer(preset)

	return &lg, nil
}
