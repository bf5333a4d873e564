package model

// Sources des recommandations (les cinq scorers)
const (
	SourceGoalBased           = "goal_based"
	SourceProgressiveOverload = "progressive_overload"
	SourceBehavioral          = "behavioral"
	SourceBalanceRecovery     = "balance_recovery"
	SourceAdaptiveDifficulty  = "adaptive_difficulty"
)

// Recommendation est une suggestion d'exercice pondérée, recalculée à chaque
// requête (jamais persistée)
type Recommendation struct {
	Exercise   Exercise `json:"exercise"`
	Score      int      `json:"score"`
	Source     string   `json:"source"`
	Reason     string   `json:"reason"`
	Confidence int      `json:"confidence"`
}

// RecommendationOptions sont les préférences optionnelles d'une requête de
// recommandation
type RecommendationOptions struct {
	WorkoutType        string   `json:"workout_type,omitempty"`
	DurationPreference int      `json:"duration_preference,omitempty"`
	EquipmentAvailable []string `json:"equipment_available,omitempty"`
	EnergyLevel        string   `json:"energy_level,omitempty"` // low, normal, high
	TimeConstraint     int      `json:"time_constraint,omitempty"`
	FocusAreas         []string `json:"focus_areas,omitempty"`
	Limit              int      `json:"limit,omitempty"`
	GoalOverride       string   `json:"goal,omitempty"`
}
