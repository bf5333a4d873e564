package model

import (
	"time"
)

// Catégories d'exercices du catalogue
const (
	CategoryCardio      = "cardio"
	CategoryStrength    = "strength"
	CategoryFlexibility = "flexibility"
	CategorySports      = "sports"
	CategoryFunctional  = "functional"
)

// Niveaux de difficulté
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Exercise est une entrée du catalogue d'exercices (données de référence,
// semées une fois, jamais modifiées par le cœur applicatif)
type Exercise struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`   // cardio, strength, flexibility, sports, functional
	Difficulty        string    `json:"difficulty"` // beginner, intermediate, advanced
	CaloriesPerMinute *float64  `json:"caloriesPerMinute,omitempty"`
	MuscleGroups      []string  `json:"muscleGroups"`
	Description       string    `json:"description,omitempty"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
}

// TargetsMuscleGroup indique si l'exercice cible un groupe musculaire donné
func (e *Exercise) TargetsMuscleGroup(group string) bool {
	for _, g := range e.MuscleGroups {
		if g == group {
			return true
		}
	}
	return false
}

// ValidCategory vérifie qu'une catégorie est reconnue
func ValidCategory(category string) bool {
	switch category {
	case CategoryCardio, CategoryStrength, CategoryFlexibility,
		CategorySports, CategoryFunctional:
		return true
	}
	return false
}

// ValidDifficulty vérifie qu'une difficulté est reconnue
func ValidDifficulty(difficulty string) bool {
	switch difficulty {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// HarderDifficulty retourne la difficulté un cran au-dessus (plafonnée à advanced)
func HarderDifficulty(difficulty string) string {
	switch difficulty {
	case DifficultyBeginner:
		return DifficultyIntermediate
	default:
		return DifficultyAdvanced
	}
}

// EasierDifficulty retourne la difficulté un cran en dessous (plancher à beginner)
func EasierDifficulty(difficulty string) string {
	switch difficulty {
	case DifficultyAdvanced:
		return DifficultyIntermediate
	default:
		return DifficultyBeginner
	}
}
