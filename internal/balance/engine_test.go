package balance

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/takedajouji/FitU/internal/apperrors"
	model "github.com/takedajouji/FitU/internal/models"
)

type fakeUserStore struct {
	user *model.UserProfile
	err  error
}

func (f *fakeUserStore) GetByID(ctx context.Context, id string) (*model.UserProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.user == nil {
		return nil, apperrors.NewNotFound("user", id)
	}
	return f.user, nil
}

type fakeEntryStore struct {
	foods []model.FoodEntry
	logs  []model.ExerciseLog
	err   error
}

func (f *fakeEntryStore) FoodEntriesBetween(ctx context.Context, userID string, from, to time.Time) ([]model.FoodEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.FoodEntry
	for _, e := range f.foods {
		if e.UserID == userID && !e.ConsumedAt.Before(from) && !e.ConsumedAt.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEntryStore) ExerciseLogsBetween(ctx context.Context, userID string, from, to time.Time) ([]model.ExerciseLog, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.ExerciseLog
	for _, l := range f.logs {
		if l.UserID == userID && !l.PerformedAt.Before(from) && !l.PerformedAt.After(to) {
			out = append(out, l)
		}
	}
	return out, nil
}

func intPtr(v int) *int { return &v }

func foodAt(t time.Time, calories int, servings float64) model.FoodEntry {
	return model.FoodEntry{
		UserID:             "u1",
		Name:               "test food",
		CaloriesPerServing: calories,
		Servings:           servings,
		MealType:           model.MealLunch,
		ConsumedAt:         t,
	}
}

func logAt(t time.Time, burned int) model.ExerciseLog {
	return model.ExerciseLog{
		UserID:          "u1",
		ExerciseID:      "e1",
		DurationMinutes: 30,
		CaloriesBurned:  intPtr(burned),
		PerformedAt:     t,
	}
}

var testDay = time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

func TestDailyBalance_Statuses(t *testing.T) {
	noon := testDay.Add(12 * time.Hour)

	tests := []struct {
		name          string
		goal          int
		foods         []model.FoodEntry
		logs          []model.ExerciseLog
		wantNet       int
		wantStatus    string
		wantRemaining int
		wantExcess    int
	}{
		{
			name:          "under goal with no exercise history",
			goal:          2000,
			foods:         []model.FoodEntry{foodAt(noon, 1800, 1)},
			wantNet:       1800,
			wantStatus:    model.StatusUnderGoal,
			wantRemaining: 200,
		},
		{
			name:       "over goal",
			goal:       2000,
			foods:      []model.FoodEntry{foodAt(noon, 2500, 1)},
			wantNet:    2500,
			wantStatus: model.StatusOverGoal,
			wantExcess: 500,
		},
		{
			name:       "net equal to goal counts as under",
			goal:       2000,
			foods:      []model.FoodEntry{foodAt(noon, 2000, 1)},
			wantNet:    2000,
			wantStatus: model.StatusUnderGoal,
		},
		{
			name:       "no goal set regardless of entries",
			goal:       0,
			foods:      []model.FoodEntry{foodAt(noon, 3000, 1)},
			wantNet:    3000,
			wantStatus: model.StatusNoGoalSet,
		},
		{
			name:       "exercise reduces net below zero",
			goal:       2000,
			foods:      []model.FoodEntry{foodAt(noon, 300, 1)},
			logs:       []model.ExerciseLog{logAt(noon, 500)},
			wantNet:    -200,
			wantStatus: model.StatusUnderGoal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &fakeUserStore{user: &model.UserProfile{ID: "u1", DailyCalorieGoal: tt.goal}}
			entries := &fakeEntryStore{foods: tt.foods, logs: tt.logs}
			engine := NewEngine(users, entries)

			got, err := engine.DailyBalance(context.Background(), "u1", testDay)
			if err != nil {
				t.Fatalf("DailyBalance() error = %v", err)
			}

			if got.NetCalories != tt.wantNet {
				t.Errorf("NetCalories = %d, want %d", got.NetCalories, tt.wantNet)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", got.Status, tt.wantStatus)
			}
			if got.RemainingCalories != tt.wantRemaining {
				t.Errorf("RemainingCalories = %d, want %d", got.RemainingCalories, tt.wantRemaining)
			}
			if got.ExcessCalories != tt.wantExcess {
				t.Errorf("ExcessCalories = %d, want %d", got.ExcessCalories, tt.wantExcess)
			}

			// Les deux drapeaux sont complémentaires quand un objectif existe
			if tt.goal > 0 && got.IsUnderGoal == got.IsOverGoal {
				t.Errorf("IsUnderGoal = %v and IsOverGoal = %v, want complementary", got.IsUnderGoal, got.IsOverGoal)
			}
			if tt.goal == 0 && (got.IsUnderGoal || got.IsOverGoal) {
				t.Errorf("flags set without a goal: under=%v over=%v", got.IsUnderGoal, got.IsOverGoal)
			}
		})
	}
}

func TestDailyBalance_DerivedTotalsAndRounding(t *testing.T) {
	noon := testDay.Add(12 * time.Hour)

	// 333 × 1.5 = 499.5 → 500
	users := &fakeUserStore{user: &model.UserProfile{ID: "u1"}}
	entries := &fakeEntryStore{foods: []model.FoodEntry{foodAt(noon, 333, 1.5)}}
	engine := NewEngine(users, entries)

	got, err := engine.DailyBalance(context.Background(), "u1", testDay)
	if err != nil {
		t.Fatalf("DailyBalance() error = %v", err)
	}
	if got.FoodCalories != 500 {
		t.Errorf("FoodCalories = %d, want 500", got.FoodCalories)
	}
}

func TestDailyBalance_WindowExclusion(t *testing.T) {
	entries := &fakeEntryStore{foods: []model.FoodEntry{
		foodAt(testDay.Add(-time.Second), 100, 1),      // veille
		foodAt(testDay, 200, 1),                        // minuit pile
		foodAt(testDay.Add(24*time.Hour-time.Second), 300, 1), // fin de journée
		foodAt(testDay.Add(24*time.Hour), 400, 1),      // lendemain
	}}
	engine := NewEngine(&fakeUserStore{}, entries)

	got, err := engine.DailyBalance(context.Background(), "u1", testDay)
	if err != nil {
		t.Fatalf("DailyBalance() error = %v", err)
	}
	if got.FoodCalories != 500 {
		t.Errorf("FoodCalories = %d, want 500 (entries outside the day excluded)", got.FoodCalories)
	}
}

func TestDailyBalance_UnknownUserDegrades(t *testing.T) {
	// Utilisateur absent = profil non provisionné, jamais une erreur
	entries := &fakeEntryStore{foods: []model.FoodEntry{foodAt(testDay.Add(time.Hour), 800, 1)}}
	engine := NewEngine(&fakeUserStore{}, entries)

	got, err := engine.DailyBalance(context.Background(), "u1", testDay)
	if err != nil {
		t.Fatalf("DailyBalance() error = %v", err)
	}
	if got.Status != model.StatusNoGoalSet {
		t.Errorf("Status = %q, want %q", got.Status, model.StatusNoGoalSet)
	}
	if got.DailyGoal != 0 {
		t.Errorf("DailyGoal = %d, want 0", got.DailyGoal)
	}
}

func TestDailyBalance_UserReadFailureIsCalculationError(t *testing.T) {
	users := &fakeUserStore{err: fmt.Errorf("connection reset")}
	engine := NewEngine(users, &fakeEntryStore{})

	_, err := engine.DailyBalance(context.Background(), "u1", testDay)
	if err == nil {
		t.Fatal("DailyBalance() error = nil, want CalculationError")
	}

	var calcErr *apperrors.CalculationError
	if !errors.As(err, &calcErr) {
		t.Fatalf("error type = %T, want *apperrors.CalculationError", err)
	}
	if calcErr.UserID != "u1" || calcErr.Date != "2025-03-10" {
		t.Errorf("error context = (%s, %s), want (u1, 2025-03-10)", calcErr.UserID, calcErr.Date)
	}
}

func TestDailyBalance_GoalPercentage(t *testing.T) {
	noon := testDay.Add(12 * time.Hour)
	users := &fakeUserStore{user: &model.UserProfile{ID: "u1", DailyCalorieGoal: 2000}}
	entries := &fakeEntryStore{foods: []model.FoodEntry{foodAt(noon, 1500, 1)}}
	engine := NewEngine(users, entries)

	got, err := engine.DailyBalance(context.Background(), "u1", testDay)
	if err != nil {
		t.Fatalf("DailyBalance() error = %v", err)
	}
	if got.GoalPercentage != 75 {
		t.Errorf("GoalPercentage = %d, want 75", got.GoalPercentage)
	}
	if got.CalorieBalance != 500 {
		t.Errorf("CalorieBalance = %d, want 500", got.CalorieBalance)
	}
}

func TestDailyBalance_Idempotent(t *testing.T) {
	noon := testDay.Add(12 * time.Hour)
	users := &fakeUserStore{user: &model.UserProfile{ID: "u1", DailyCalorieGoal: 1800}}
	entries := &fakeEntryStore{
		foods: []model.FoodEntry{foodAt(noon, 600, 2)},
		logs:  []model.ExerciseLog{logAt(noon, 250)},
	}
	engine := NewEngine(users, entries)

	first, err := engine.DailyBalance(context.Background(), "u1", testDay)
	if err != nil {
		t.Fatalf("DailyBalance() error = %v", err)
	}
	second, err := engine.DailyBalance(context.Background(), "u1", testDay)
	if err != nil {
		t.Fatalf("DailyBalance() error = %v", err)
	}
	if *first != *second {
		t.Errorf("repeated computation differs: %+v vs %+v", first, second)
	}
}

func TestWeeklyBalance_Aggregates(t *testing.T) {
	users := &fakeUserStore{user: &model.UserProfile{ID: "u1", DailyCalorieGoal: 2000}}

	// 3 jours sous l'objectif, 2 jours au-dessus, 2 jours vides (sous l'objectif)
	var foods []model.FoodEntry
	for i, calories := range []int{1500, 1800, 1900, 2500, 2200} {
		foods = append(foods, foodAt(testDay.AddDate(0, 0, i).Add(12*time.Hour), calories, 1))
	}
	entries := &fakeEntryStore{foods: foods}
	engine := NewEngine(users, entries)

	got, err := engine.WeeklyBalance(context.Background(), "u1", testDay)
	if err != nil {
		t.Fatalf("WeeklyBalance() error = %v", err)
	}

	if len(got.DailyBalances) != 7 {
		t.Fatalf("len(DailyBalances) = %d, want 7", len(got.DailyBalances))
	}

	wantFood := 1500 + 1800 + 1900 + 2500 + 2200
	if got.WeeklyTotals.FoodCalories != wantFood {
		t.Errorf("WeeklyTotals.FoodCalories = %d, want %d", got.WeeklyTotals.FoodCalories, wantFood)
	}

	// Les totaux hebdomadaires sont la somme des 7 valeurs journalières
	sumNet := 0
	for _, day := range got.DailyBalances {
		sumNet += day.NetCalories
	}
	if got.WeeklyTotals.NetCalories != sumNet {
		t.Errorf("WeeklyTotals.NetCalories = %d, want %d", got.WeeklyTotals.NetCalories, sumNet)
	}

	// round(9900/7) = round(1414.28) = 1414
	if got.WeeklyAverageNet != 1414 {
		t.Errorf("WeeklyAverageNet = %d, want 1414", got.WeeklyAverageNet)
	}

	if got.DaysUnderGoal != 5 || got.DaysOverGoal != 2 {
		t.Errorf("days under/over = %d/%d, want 5/2", got.DaysUnderGoal, got.DaysOverGoal)
	}

	// round(5/7×100) = round(71.43) = 71
	if got.SuccessRate != 71 {
		t.Errorf("SuccessRate = %d, want 71", got.SuccessRate)
	}

	if got.WeekStart != "2025-03-10" {
		t.Errorf("WeekStart = %q, want 2025-03-10", got.WeekStart)
	}
}
