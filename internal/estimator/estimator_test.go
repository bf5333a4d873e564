package estimator

import (
	"context"
	"testing"
	"time"

	model "github.com/takedajouji/FitU/internal/models"
)

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

func intPtr(v int) *int         { return &v }
func floatPtr(v float64) *float64 { return &v }

func comparableLog(preset float64, duration, burned int) model.ExerciseLog {
	return model.ExerciseLog{
		UserID:            "u1",
		ExerciseID:        "e1",
		DurationMinutes:   duration,
		CaloriesBurned:    intPtr(burned),
		PresetCaloriesMin: floatPtr(preset),
		PerformedAt:       time.Now().AddDate(0, 0, -1),
	}
}

func TestEstimate(t *testing.T) {
	running := &model.Exercise{Name: "Running", CaloriesPerMinute: floatPtr(12)}
	noRate := &model.Exercise{Name: "Plank"}

	tests := []struct {
		name       string
		ex         *model.Exercise
		duration   int
		manual     *int
		want       int
		wantMethod string
	}{
		{
			name:       "manual entry wins over preset",
			ex:         running,
			duration:   10,
			manual:     intPtr(50),
			want:       50,
			wantMethod: model.CalcMethodManual,
		},
		{
			name:       "automatic from preset rate",
			ex:         running,
			duration:   10,
			want:       120,
			wantMethod: model.CalcMethodAutomatic,
		},
		{
			name:       "automatic rounds half up",
			ex:         &model.Exercise{CaloriesPerMinute: floatPtr(8.5)},
			duration:   3, // 25.5 → 26
			want:       26,
			wantMethod: model.CalcMethodAutomatic,
		},
		{
			name:       "manual zero falls back to automatic",
			ex:         running,
			duration:   10,
			manual:     intPtr(0),
			want:       120,
			wantMethod: model.CalcMethodAutomatic,
		},
		{
			name:       "no preset rate degrades to zero",
			ex:         noRate,
			duration:   30,
			want:       0,
			wantMethod: model.CalcMethodAutomatic,
		},
		{
			name:       "nil exercise degrades to zero",
			duration:   30,
			want:       0,
			wantMethod: model.CalcMethodAutomatic,
		},
		{
			name:       "zero duration degrades to zero",
			ex:         running,
			want:       0,
			wantMethod: model.CalcMethodAutomatic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, method := Estimate(tt.ex, tt.duration, tt.manual)
			if got != tt.want || method != tt.wantMethod {
				t.Errorf("Estimate() = (%d, %q), want (%d, %q)", got, method, tt.want, tt.wantMethod)
			}
		})
	}
}

func TestProfile(t *testing.T) {
	tests := []struct {
		name           string
		logs           []model.ExerciseLog
		wantComparable int
		wantFlagged    int
		wantRate       int
		wantTracker    bool
	}{
		{
			name: "empty history",
		},
		{
			name: "entries matching the preset are not flagged",
			logs: []model.ExerciseLog{
				comparableLog(10, 30, 300), // exactement la valeur attendue
				comparableLog(10, 30, 310), // écart 3.3%, sous le seuil
			},
			wantComparable: 2,
		},
		{
			name: "large deviation flags a manual entry",
			logs: []model.ExerciseLog{
				comparableLog(10, 30, 300),
				comparableLog(10, 30, 450), // écart 50%
			},
			wantComparable: 2,
			wantFlagged:    1,
			wantRate:       50,
			wantTracker:    true,
		},
		{
			name: "rate is over total logs not comparable ones",
			logs: []model.ExerciseLog{
				comparableLog(10, 30, 500),
				{UserID: "u1", DurationMinutes: 20, PerformedAt: time.Now()},
				{UserID: "u1", DurationMinutes: 20, PerformedAt: time.Now()},
				{UserID: "u1", DurationMinutes: 20, PerformedAt: time.Now()},
			},
			wantComparable: 1,
			wantFlagged:    1,
			wantRate:       25, // 1/4, sous le seuil tracker
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est := NewEstimator(&fakeLogReader{logs: tt.logs})
			got, err := est.Profile(context.Background(), "u1")
			if err != nil {
				t.Fatalf("Profile() error = %v", err)
			}

			if got.TotalLogs != len(tt.logs) {
				t.Errorf("TotalLogs = %d, want %d", got.TotalLogs, len(tt.logs))
			}
			if got.ComparableLogs != tt.wantComparable {
				t.Errorf("ComparableLogs = %d, want %d", got.ComparableLogs, tt.wantComparable)
			}
			if got.FlaggedManual != tt.wantFlagged {
				t.Errorf("FlaggedManual = %d, want %d", got.FlaggedManual, tt.wantFlagged)
			}
			if got.ManualInputRate != tt.wantRate {
				t.Errorf("ManualInputRate = %d, want %d", got.ManualInputRate, tt.wantRate)
			}
			if got.LikelyTrackerUser != tt.wantTracker {
				t.Errorf("LikelyTrackerUser = %v, want %v", got.LikelyTrackerUser, tt.wantTracker)
			}
		})
	}
}

func TestSmartSuggestion(t *testing.T) {
	sprint := &model.Exercise{Category: model.CategoryCardio, CaloriesPerMinute: floatPtr(12.3)}
	walk := &model.Exercise{Category: model.CategoryCardio, CaloriesPerMinute: floatPtr(4)}
	lifting := &model.Exercise{Category: model.CategoryStrength, CaloriesPerMinute: floatPtr(6)}

	tests := []struct {
		name     string
		profile  *BehaviorProfile
		ex       *model.Exercise
		duration int
		wantType string
	}{
		{
			name:     "nil profile yields nothing",
			ex:       sprint,
			duration: 30,
		},
		{
			name:     "tracker user takes priority over intensity",
			profile:  &BehaviorProfile{TotalLogs: 10, LikelyTrackerUser: true},
			ex:       sprint,
			duration: 30,
			wantType: "manual_entry",
		},
		{
			name:     "high intensity cardio",
			profile:  &BehaviorProfile{TotalLogs: 10},
			ex:       sprint,
			duration: 15,
			wantType: "intensity_check",
		},
		{
			name:     "long strength session",
			profile:  &BehaviorProfile{TotalLogs: 10},
			ex:       lifting,
			duration: 45,
			wantType: "intensity_check",
		},
		{
			name:     "new user nudge",
			profile:  &BehaviorProfile{TotalLogs: 2},
			ex:       walk,
			duration: 20,
			wantType: "getting_started",
		},
		{
			name:     "nothing to say",
			profile:  &BehaviorProfile{TotalLogs: 10},
			ex:       walk,
			duration: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SmartSuggestion(tt.profile, tt.ex, tt.duration)
			if tt.wantType == "" {
				if got != nil {
					t.Fatalf("SmartSuggestion() = %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("SmartSuggestion() = nil, want type %q", tt.wantType)
			}
			if got.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", got.Type, tt.wantType)
			}
		})
	}
}
