package model

import (
	"time"
)

// Méthodes de calcul des calories d'une séance
const (
	CalcMethodManual    = "manual"
	CalcMethodAutomatic = "automatic"
)

// ExerciseLog est une séance d'exercice journalisée. Les calories brûlées
// sont figées à la création (calcul automatique ou saisie manuelle) et ne
// sont jamais recalculées ensuite.
type ExerciseLog struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	ExerciseID      string    `json:"exerciseId"`
	DurationMinutes int       `json:"durationMinutes"` // 1..1440
	Sets            *int      `json:"sets,omitempty"`            // 1..100
	Reps            *int      `json:"reps,omitempty"`            // 1..1000
	WeightKg        *float64  `json:"weightKg,omitempty"`        // 0..1000
	DistanceKm      *float64  `json:"distanceKm,omitempty"`      // 0..1000
	CaloriesBurned  *int      `json:"caloriesBurned,omitempty"`  // 0..5000
	PerformedAt     time.Time `json:"performedAt"`
	Notes           string    `json:"notes,omitempty"`
	Rating          *int      `json:"rating,omitempty"` // 1..5

	// Champs joints depuis le catalogue (lecture seule, pour les scorers)
	ExerciseName      string   `json:"exerciseName,omitempty"`
	ExerciseCategory  string   `json:"exerciseCategory,omitempty"`
	PresetCaloriesMin *float64 `json:"presetCaloriesPerMin,omitempty"`
	MuscleGroups      []string `json:"muscleGroups,omitempty"`

	DateFields
}

// BurnedOrZero retourne les calories brûlées en traitant l'absence comme zéro
func (l *ExerciseLog) BurnedOrZero() int {
	if l.CaloriesBurned == nil {
		return 0
	}
	return *l.CaloriesBurned
}
