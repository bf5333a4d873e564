// Package estimator calcule les calories brûlées d'une séance au moment de
// son enregistrement (saisie manuelle ou taux preset × durée) et dresse un
// profil comportemental de saisie sur l'historique récent.
package estimator

import (
	"context"
	"fmt"
	"math"
	"time"

	model "github.com/takedajouji/FitU/internal/models"
)

// Seuils du profil comportemental
const (
	historyDays          = 30
	manualDeviationRatio = 0.05 // écart relatif au-delà duquel une saisie est jugée manuelle
	trackerUserRate      = 30   // % de saisies manuelles classant un utilisateur "tracker"
	highIntensityRate    = 10.0 // cal/min au-delà duquel un cardio est haute intensité
	longStrengthMinutes  = 20
	fewWorkoutsThreshold = 5
)

// LogReader fournit l'historique des séances d'un utilisateur
type LogReader interface {
	ExerciseLogsBetween(ctx context.Context, userID string, from, to time.Time) ([]model.ExerciseLog, error)
}

type Estimator struct {
	entries LogReader
}

func NewEstimator(entries LogReader) *Estimator {
	return &Estimator{entries: entries}
}

// Estimate calcule les calories d'une séance. Une saisie manuelle non nulle
// gagne toujours sur le calcul automatique ; sans durée ni taux preset le
// résultat dégénère à 0.
func Estimate(ex *model.Exercise, durationMinutes int, manualCalories *int) (int, string) {
	if manualCalories != nil && *manualCalories != 0 {
		return *manualCalories, model.CalcMethodManual
	}

	if durationMinutes > 0 && ex != nil && ex.CaloriesPerMinute != nil {
		return int(math.Round(*ex.CaloriesPerMinute * float64(durationMinutes))), model.CalcMethodAutomatic
	}

	return 0, model.CalcMethodAutomatic
}

// BehaviorProfile résume les habitudes de saisie calorique d'un utilisateur
// sur les 30 derniers jours
type BehaviorProfile struct {
	TotalLogs         int  `json:"total_logs"`
	ComparableLogs    int  `json:"comparable_logs"`
	FlaggedManual     int  `json:"flagged_manual"`
	ManualInputRate   int  `json:"manual_input_rate"` // % de l'ensemble des séances
	LikelyTrackerUser bool `json:"likely_tracker_user"`
}

// Profile analyse l'historique récent : une séance comparable (taux preset et
// durée connus) est jugée "probablement manuelle" quand la valeur saisie
// s'écarte de plus de 5% de la valeur attendue
func (e *Estimator) Profile(ctx context.Context, userID string) (*BehaviorProfile, error) {
	now := time.Now()
	logs, err := e.entries.ExerciseLogsBetween(ctx, userID, now.AddDate(0, 0, -historyDays), now)
	if err != nil {
		return nil, fmt.Errorf("could not load exercise history: %w", err)
	}

	profile := &BehaviorProfile{TotalLogs: len(logs)}

	for i := range logs {
		lg := &logs[i]
		if lg.PresetCaloriesMin == nil || lg.DurationMinutes <= 0 || lg.CaloriesBurned == nil {
			continue
		}

		expected := *lg.PresetCaloriesMin * float64(lg.DurationMinutes)
		if expected <= 0 {
			continue
		}
		profile.ComparableLogs++

		deviation := math.Abs(float64(*lg.CaloriesBurned)-expected) / expected
		if deviation > manualDeviationRatio {
			profile.FlaggedManual++
		}
	}

	if profile.TotalLogs > 0 {
		profile.ManualInputRate = int(math.Round(float64(profile.FlaggedManual) / float64(profile.TotalLogs) * 100))
	}
	profile.LikelyTrackerUser = profile.ManualInputRate > trackerUserRate

	return profile, nil
}

// Suggestion est un conseil de saisie non contraignant affiché après un log
type Suggestion struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// SmartSuggestion retourne la suggestion de plus haute priorité pour la
// séance qui vient d'être enregistrée, ou nil. Une seule suggestion est
// émise : nudge tracker, puis note haute intensité, puis note découverte.
func SmartSuggestion(profile *BehaviorProfile, ex *model.Exercise, durationMinutes int) *Suggestion {
	if profile == nil {
		return nil
	}

	if profile.LikelyTrackerUser {
		return &Suggestion{
			Type:    "manual_entry",
			Message: "You often adjust calories yourself - entering the value from your tracker keeps your balance accurate.",
		}
	}

	highIntensityCardio := ex != nil && ex.Category == model.CategoryCardio &&
		ex.CaloriesPerMinute != nil && *ex.CaloriesPerMinute > highIntensityRate
	longStrength := ex != nil && ex.Category == model.CategoryStrength &&
		durationMinutes > longStrengthMinutes

	if highIntensityCardio || longStrength {
		return &Suggestion{
			Type:    "intensity_check",
			Message: "Intense session - a heart rate monitor gives a better calorie estimate than the preset rate.",
		}
	}

	if profile.TotalLogs < fewWorkoutsThreshold {
		return &Suggestion{
			Type:    "getting_started",
			Message: "Log a few more workouts and the estimates will adapt to your habits.",
		}
	}

	return nil
}
