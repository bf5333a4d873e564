package model

// Statuts d'un bilan calorique journalier
const (
	StatusUnderGoal = "UNDER_GOAL"
	StatusOverGoal  = "OVER_GOAL"
	StatusNoGoalSet = "NO_GOAL_SET"
)

// DailyBalance est le bilan calorique d'une journée. Valeur calculée à la
// demande, jamais persistée.
type DailyBalance struct {
	Date              string `json:"date"` // YYYY-MM-DD
	FoodCalories      int    `json:"food_calories"`
	ExerciseCalories  int    `json:"exercise_calories"`
	NetCalories       int    `json:"net_calories"` // food - exercise, peut être négatif
	DailyGoal         int    `json:"daily_goal"`
	CalorieBalance    int    `json:"calorie_balance"` // goal - net
	IsUnderGoal       bool   `json:"is_under_goal"`
	IsOverGoal        bool   `json:"is_over_goal"`
	GoalPercentage    int    `json:"goal_percentage"`
	Status            string `json:"status"` // UNDER_GOAL, OVER_GOAL, NO_GOAL_SET
	RemainingCalories int    `json:"remaining_calories"`
	ExcessCalories    int    `json:"excess_calories"`
}

// WeeklyTotals agrège les 7 bilans journaliers d'une semaine
type WeeklyTotals struct {
	FoodCalories     int `json:"food_calories"`
	ExerciseCalories int `json:"exercise_calories"`
	NetCalories      int `json:"net_calories"`
}

// WeeklyBalance est le bilan calorique d'une semaine calendaire
type WeeklyBalance struct {
	WeekStart        string         `json:"week_start"` // YYYY-MM-DD
	DailyBalances    []DailyBalance `json:"daily_balances"`
	WeeklyTotals     WeeklyTotals   `json:"weekly_totals"`
	WeeklyAverageNet int            `json:"weekly_average_net"`
	DaysUnderGoal    int            `json:"days_under_goal"`
	DaysOverGoal     int            `json:"days_over_goal"`
	SuccessRate      int            `json:"success_rate"` // % de jours sous l'objectif
}
