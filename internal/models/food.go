package model

import (
	"math"
	"time"
)

// Types de repas reconnus
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// FoodEntry est une entrée alimentaire journalisée par un utilisateur
type FoodEntry struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	Name               string    `json:"name"`
	CaloriesPerServing int       `json:"caloriesPerServing"` // 0..10000
	Servings           float64   `json:"servings"`           // 0.01..100
	ProteinG           float64   `json:"proteinG"`
	CarbsG             float64   `json:"carbsG"`
	FatG               float64   `json:"fatG"`
	FiberG             float64   `json:"fiberG"`
	SugarG             float64   `json:"sugarG"`
	SodiumMg           float64   `json:"sodiumMg"`
	MealType           string    `json:"mealType"` // breakfast, lunch, dinner, snack
	ConsumedAt         time.Time `json:"consumedAt"`
	DateFields
}

// TotalCalories est une valeur dérivée, jamais stockée : calories par portion
// multipliées par le nombre de portions, arrondies à l'entier le plus proche
func (f *FoodEntry) TotalCalories() int {
	return int(math.Round(float64(f.CaloriesPerServing) * f.Servings))
}

// ValidMealType vérifie qu'un type de repas est reconnu
func ValidMealType(mealType string) bool {
	switch mealType {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}
