// Package balance calcule les bilans caloriques journaliers et hebdomadaires.
// Lecture seule : aucune écriture, le résultat est une pure fonction des
// entrées stockées.
package balance

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/takedajouji/FitU/internal/apperrors"
	model "github.com/takedajouji/FitU/internal/models"
)

// UserReader fournit le profil utilisateur (objectif calorique journalier)
type UserReader interface {
	GetByID(ctx context.Context, id string) (*model.UserProfile, error)
}

// EntryReader fournit les entrées alimentaires et séances d'une plage horaire
type EntryReader interface {
	FoodEntriesBetween(ctx context.Context, userID string, from, to time.Time) ([]model.FoodEntry, error)
	ExerciseLogsBetween(ctx context.Context, userID string, from, to time.Time) ([]model.ExerciseLog, error)
}

type Engine struct {
	users   UserReader
	entries EntryReader
}

func NewEngine(users UserReader, entries EntryReader) *Engine {
	return &Engine{users: users, entries: entries}
}

// DayWindow retourne la fenêtre [00:00:00.000, 23:59:59.999] d'une date locale
func DayWindow(date time.Time) (time.Time, time.Time) {
	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	to := from.Add(24*time.Hour - time.Millisecond)
	return from, to
}

// DailyBalance calcule le bilan calorique d'une journée. Un utilisateur
// inconnu est traité comme non provisionné (objectif 0), jamais comme une
// erreur ; toute autre défaillance de lecture remonte en CalculationError.
func (e *Engine) DailyBalance(ctx context.Context, userID string, date time.Time) (*model.DailyBalance, error) {
	from, to := DayWindow(date)
	dateStr := from.Format("2006-01-02")

	foods, err := e.entries.FoodEntriesBetween(ctx, userID, from, to)
	if err != nil {
		return nil, apperrors.NewCalculation("daily balance", userID, dateStr, err)
	}

	logs, err := e.entries.ExerciseLogsBetween(ctx, userID, from, to)
	if err != nil {
		return nil, apperrors.NewCalculation("daily balance", userID, dateStr, err)
	}

	foodCalories := 0
	for i := range foods {
		foodCalories += foods[i].TotalCalories()
	}

	exerciseCalories := 0
	for i := range logs {
		exerciseCalories += logs[i].BurnedOrZero()
	}

	goal, err := e.lookupGoal(ctx, userID)
	if err != nil {
		return nil, apperrors.NewCalculation("daily balance", userID, dateStr, err)
	}

	net := foodCalories - exerciseCalories

	b := &model.DailyBalance{
		Date:             dateStr,
		FoodCalories:     foodCalories,
		ExerciseCalories: exerciseCalories,
		NetCalories:      net,
		DailyGoal:        goal,
		CalorieBalance:   goal - net,
		Status:           model.StatusNoGoalSet,
	}

	if goal > 0 {
		b.IsUnderGoal = net <= goal
		b.IsOverGoal = net > goal
		b.GoalPercentage = int(math.Round(float64(net) / float64(goal) * 100))
		if b.IsUnderGoal {
			b.Status = model.StatusUnderGoal
			if remaining := goal - net; remaining > 0 {
				b.RemainingCalories = remaining
			}
		} else {
			b.Status = model.StatusOverGoal
			b.ExcessCalories = net - goal
		}
	}

	return b, nil
}

// WeeklyBalance calcule les 7 bilans journaliers à partir de weekStart et
// leurs agrégats
func (e *Engine) WeeklyBalance(ctx context.Context, userID string, weekStart time.Time) (*model.WeeklyBalance, error) {
	start, _ := DayWindow(weekStart)

	week := &model.WeeklyBalance{
		WeekStart:     start.Format("2006-01-02"),
		DailyBalances: make([]model.DailyBalance, 0, 7),
	}

	for i := 0; i < 7; i++ {
		day, err := e.DailyBalance(ctx, userID, start.AddDate(0, 0, i))
		if err != nil {
			return nil, err
		}

		week.DailyBalances = append(week.DailyBalances, *day)
		week.WeeklyTotals.FoodCalories += day.FoodCalories
		week.WeeklyTotals.ExerciseCalories += day.ExerciseCalories
		week.WeeklyTotals.NetCalories += day.NetCalories

		if day.IsUnderGoal {
			week.DaysUnderGoal++
		}
		if day.IsOverGoal {
			week.DaysOverGoal++
		}
	}

	week.WeeklyAverageNet = int(math.Round(float64(week.WeeklyTotals.NetCalories) / 7))
	week.SuccessRate = int(math.Round(float64(week.DaysUnderGoal) / 7 * 100))

	return week, nil
}

// lookupGoal retourne l'objectif calorique journalier de l'utilisateur.
// Utilisateur absent → 0 (nouveau profil non provisionné, pas une erreur).
func (e *Engine) lookupGoal(ctx context.Context, userID string) (int, error) {
	user, err := e.users.GetByID(ctx, userID)
	if err != nil {
		var nf *apperrors.NotFoundError
		if errors.As(err, &nf) {
			return 0, nil
		}
		return 0, err
	}
	if user.DailyCalorieGoal <= 0 {
		return 0, nil
	}
	return user.DailyCalorieGoal, nil
}
