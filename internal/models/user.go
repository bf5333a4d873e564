package model

import (
	"time"
)

// Niveaux d'activité reconnus pour un profil utilisateur
const (
	ActivitySedentary        = "sedentary"
	ActivityLightlyActive    = "lightly_active"
	ActivityModeratelyActive = "moderately_active"
	ActivityVeryActive       = "very_active"
	ActivityExtremelyActive  = "extremely_active"
)

// Objectifs fitness reconnus
const (
	GoalLoseWeight     = "lose_weight"
	GoalBuildMuscle    = "build_muscle"
	GoalImproveFitness = "improve_fitness"
	GoalMaintainWeight = "maintain_weight"
	GoalGainWeight     = "gain_weight"
)

// DateFields contient les champs d'audit standard pour toutes les entités
type DateFields struct {
	CreatedBy *string   `json:"createdBy,omitempty"`
	UpdatedBy *string   `json:"updatedBy,omitempty"`
	DeletedAt time.Time `json:"deletedAt,omitempty"`
	DeletedBy *string   `json:"deletedBy,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

type UserProfile struct {
	ID               string    `json:"id,omitempty"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Avatar           string    `json:"avatar,omitempty"`
	Age              int       `json:"age,omitempty"`
	Weight           float64   `json:"weight,omitempty"`
	Height           float64   `json:"height,omitempty"`
	ActivityLevel    string    `json:"activityLevel,omitempty"` // sedentary ... extremely_active
	FitnessGoal      string    `json:"fitnessGoal,omitempty"`   // lose_weight ... gain_weight
	DailyCalorieGoal int       `json:"dailyCalorieGoal"`        // 0 = pas d'objectif défini
	JoinDate         time.Time `json:"joinDate,omitempty"`
	DateFields
}

// ExpectedDifficulty dérive la difficulté attendue depuis le niveau d'activité
func (u *UserProfile) ExpectedDifficulty() string {
	switch u.ActivityLevel {
	case ActivitySedentary, ActivityLightlyActive:
		return DifficultyBeginner
	case ActivityModeratelyActive, ActivityVeryActive:
		return DifficultyIntermediate
	case ActivityExtremelyActive:
		return DifficultyAdvanced
	default:
		return DifficultyBeginner
	}
}

// ValidActivityLevel vérifie qu'un niveau d'activité est reconnu
func ValidActivityLevel(level string) bool {
	switch level {
	case ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive,
		ActivityVeryActive, ActivityExtremelyActive:
		return true
	}
	return false
}

// ValidFitnessGoal vérifie qu'un objectif fitness est reconnu
func ValidFitnessGoal(goal string) bool {
	switch goal {
	case GoalLoseWeight, GoalBuildMuscle, GoalImproveFitness,
		GoalMaintainWeight, GoalGainWeight:
		return true
	}
	return false
}

// UserCreator contient les informations de l'utilisateur créateur d'une entité
type UserCreator struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}
