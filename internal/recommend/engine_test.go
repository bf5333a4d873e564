package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/takedajouji/FitU/internal/apperrors"
	model "github.com/takedajouji/FitU/internal/models"
)

type fakeUserReader struct {
	user *model.UserProfile
	err  error
}

func (f *fakeUserReader) GetByID(ctx context.Context, id string) (*model.UserProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.user == nil {
		return nil, apperrors.NewNotFound("user", id)
	}
	return f.user, nil
}

type fakeLogReader struct {
	logs []model.ExerciseLog
	err  error
}

func (f *fakeLogReader) ExerciseLogsBetween(ctx context.Context, userID string, from, to time.Time) ([]model.ExerciseLog, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.logs, nil
}

type fakeCatalog struct {
	exercises []model.Exercise
	err       error
}

func (f *fakeCatalog) GetByID(ctx context.Context, id string) (*model.Exercise, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.exercises {
		if f.exercises[i].ID == id {
			return &f.exercises[i], nil
		}
	}
	return nil, apperrors.NewNotFound("exercise", id)
}

func (f *fakeCatalog) ListActive(ctx context.Context) ([]model.Exercise, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Exercise
	for _, ex := range f.exercises {
		if ex.IsActive {
			out = append(out, ex)
		}
	}
	return out, nil
}

func (f *fakeCatalog) ListByCategories(ctx context.Context, categories []string) ([]model.Exercise, error) {
	if f.err != nil {
		return nil, f.err
	}
	wanted := make(map[string]bool, len(categories))
	for _, c := range categories {
		wanted[c] = true
	}
	var out []model.Exercise
	for _, ex := range f.exercises {
		if ex.IsActive && wanted[ex.Category] {
			out = append(out, ex)
		}
	}
	return out, nil
}

func (f *fakeCatalog) ListByDifficulty(ctx context.Context, difficulty string, limit int) ([]model.Exercise, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Exercise
	for _, ex := range f.exercises {
		if ex.IsActive && ex.Difficulty == difficulty {
			out = append(out, ex)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func exercise(id, name, category, difficulty string, cpm float64, groups ...string) model.Exercise {
	return model.Exercise{
		ID:                id,
		Name:              name,
		Category:          category,
		Difficulty:        difficulty,
		CaloriesPerMinute: floatPtr(cpm),
		MuscleGroups:      groups,
		IsActive:          true,
	}
}

// testCatalog couvre les cinq catégories et les trois niveaux de difficulté
func testCatalog() *fakeCatalog {
	return &fakeCatalog{exercises: []model.Exercise{
		exercise("ex-run", "Running", model.CategoryCardio, model.DifficultyIntermediate, 11.5, "legs", "core"),
		exercise("ex-walk", "Walking", model.CategoryCardio, model.DifficultyBeginner, 4.0, "legs"),
		exercise("ex-rope", "Jump Rope", model.CategoryCardio, model.DifficultyAdvanced, 12.3, "legs", "shoulders"),
		exercise("ex-squat", "Squats", model.CategoryStrength, model.DifficultyBeginner, 7.0, "legs", "core"),
		exercise("ex-bench", "Bench Press", model.CategoryStrength, model.DifficultyIntermediate, 6.0, "chest", "arms"),
		exercise("ex-dead", "Deadlift", model.CategoryStrength, model.DifficultyAdvanced, 7.5, "back", "legs"),
		exercise("ex-yoga", "Yoga Flow", model.CategoryFlexibility, model.DifficultyBeginner, 3.0, "core"),
		exercise("ex-burpee", "Burpees", model.CategoryFunctional, model.DifficultyAdvanced, 12.0, "full_body"),
		exercise("ex-plank", "Plank", model.CategoryFunctional, model.DifficultyBeginner, 3.5, "core"),
	}}
}

func historyLog(exerciseID string, daysAgo int, opts func(*model.ExerciseLog)) model.ExerciseLog {
	lg := model.ExerciseLog{
		UserID:          "u1",
		ExerciseID:      exerciseID,
		DurationMinutes: 30,
		PerformedAt:     time.Now().AddDate(0, 0, -daysAgo),
	}
	if opts != nil {
		opts(&lg)
	}
	return lg
}

func TestRecommend_UnknownUserIsFatal(t *testing.T) {
	engine := NewEngine(&fakeUserReader{}, &fakeLogReader{}, testCatalog())

	_, err := engine.Recommend(context.Background(), "ghost", model.RecommendationOptions{})
	if err == nil {
		t.Fatal("Recommend() error = nil, want NotFoundError")
	}
	var notFound *apperrors.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error type = %T, want *apperrors.NotFoundError", err)
	}
}

func TestRecommend_HistoryFailureIsCalculationError(t *testing.T) {
	users := &fakeUserReader{user: &model.UserProfile{ID: "u1", FitnessGoal: model.GoalLoseWeight}}
	entries := &fakeLogReader{err: errors.New("db down")}
	engine := NewEngine(users, entries, testCatalog())

	_, err := engine.Recommend(context.Background(), "u1", model.RecommendationOptions{})
	var calcErr *apperrors.CalculationError
	if !errors.As(err, &calcErr) {
		t.Fatalf("error type = %T, want *apperrors.CalculationError", err)
	}
}

func TestRecommend_FusionInvariants(t *testing.T) {
	users := &fakeUserReader{user: &model.UserProfile{
		ID:            "u1",
		ActivityLevel: model.ActivityModeratelyActive,
		FitnessGoal:   model.GoalLoseWeight,
	}}
	entries := &fakeLogReader{logs: []model.ExerciseLog{
		historyLog("ex-run", 3, func(lg *model.ExerciseLog) {
			lg.ExerciseName = "Running"
			lg.ExerciseCategory = model.CategoryCardio
			lg.Rating = intPtr(5)
		}),
	}}
	engine := NewEngine(users, entries, testCatalog())

	result, err := engine.Recommend(context.Background(), "u1", model.RecommendationOptions{})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if len(result.Recommendations) == 0 {
		t.Fatal("no recommendations produced")
	}
	if len(result.Recommendations) > 10 {
		t.Errorf("len = %d, want at most the default limit of 10", len(result.Recommendations))
	}

	seen := make(map[string]bool)
	for i, rec := range result.Recommendations {
		if seen[rec.Exercise.ID] {
			t.Errorf("duplicate exercise %s in fused list", rec.Exercise.ID)
		}
		seen[rec.Exercise.ID] = true

		if rec.Confidence < 50 || rec.Confidence > 100 {
			t.Errorf("confidence %d out of range for %s", rec.Confidence, rec.Exercise.Name)
		}
		if i > 0 && result.Recommendations[i-1].Score < rec.Score {
			t.Errorf("list not sorted by score desc at index %d", i)
		}
	}

	if len(result.Weights) != 5 {
		t.Errorf("len(Weights) = %d, want 5", len(result.Weights))
	}
	if result.Weights[model.SourceGoalBased] != WeightGoalBased {
		t.Errorf("goal weight = %v, want %v", result.Weights[model.SourceGoalBased], WeightGoalBased)
	}
}

func TestRecommend_LimitRespected(t *testing.T) {
	users := &fakeUserReader{user: &model.UserProfile{
		ID:          "u1",
		FitnessGoal: model.GoalImproveFitness,
	}}
	engine := NewEngine(users, &fakeLogReader{}, testCatalog())

	result, err := engine.Recommend(context.Background(), "u1", model.RecommendationOptions{Limit: 2})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(result.Recommendations) > 2 {
		t.Errorf("len = %d, want at most 2", len(result.Recommendations))
	}
}

func TestFuse_FirstSourceWinsAndWeightsApply(t *testing.T) {
	engine := NewEngine(&fakeUserReader{}, &fakeLogReader{}, testCatalog())

	run := exercise("ex-run", "Running", model.CategoryCardio, model.DifficultyIntermediate, 11.5, "legs")
	walk := exercise("ex-walk", "Walking", model.CategoryCardio, model.DifficultyBeginner, 4.0, "legs")

	results := make([][]Candidate, 5)
	results[0] = []Candidate{{Exercise: run, RawScore: 100, Reason: "goal pick"}}
	results[1] = []Candidate{
		{Exercise: run, RawScore: 90, Reason: "overload pick"}, // doublon, ignoré
		{Exercise: walk, RawScore: 90, Reason: "overload pick"},
	}

	fused := engine.fuse(results, 10)
	if len(fused) != 2 {
		t.Fatalf("len = %d, want 2 (duplicate dropped)", len(fused))
	}

	first := fused[0]
	if first.Exercise.ID != "ex-run" || first.Source != model.SourceGoalBased {
		t.Errorf("winner = %s from %s, want ex-run from goal_based", first.Exercise.ID, first.Source)
	}
	// round(100 × 0.35) = 35
	if first.Score != 35 {
		t.Errorf("Score = %d, want 35", first.Score)
	}
	// 50 + 30 (goal) + 20 (raw > 80) = 100
	if first.Confidence != 100 {
		t.Errorf("Confidence = %d, want 100", first.Confidence)
	}

	second := fused[1]
	// round(90 × 0.25) = 23 ; 50 + 20 (raw > 80) = 70
	if second.Score != 23 || second.Confidence != 70 {
		t.Errorf("second = (score %d, confidence %d), want (23, 70)", second.Score, second.Confidence)
	}
}
