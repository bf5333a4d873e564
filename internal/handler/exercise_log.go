package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/takedajouji/FitU/internal/apperrors"
	"github.com/takedajouji/FitU/internal/estimator"
	"github.com/takedajouji/FitU/internal/middleware"
	model "github.com/takedajouji/FitU/internal/models"
	"github.com/takedajouji/FitU/internal/utils"
)

type LogExerciseRequest struct {
	ExerciseID      string     `json:"exercise_id"`
	DurationMinutes int        `json:"duration_minutes"`
	Sets            *int       `json:"sets,omitempty"`
	Reps            *int       `json:"reps,omitempty"`
	WeightKg        *float64   `json:"weight_kg,omitempty"`
	DistanceKm      *float64   `json:"distance_km,omitempty"`
	CaloriesBurned  *int       `json:"calories_burned,omitempty"`
	PerformedAt     *time.Time `json:"performed_at,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	Rating          *int       `json:"rating,omitempty"`
}

// LogExerciseResponse expose la séance créée, la méthode de calcul retenue
// et l'éventuelle suggestion comportementale
type LogExerciseResponse struct {
	Log                  *model.ExerciseLog    `json:"log"`
	CalculationMethod    string                `json:"calculation_method"`
	PresetCaloriesPerMin *float64              `json:"preset_calories_per_min"`
	SmartSuggestion      *estimator.Suggestion `json:"smart_suggestion"`
}

func validateLogRequest(req *LogExerciseRequest) error {
	if req.ExerciseID == "" {
		return apperrors.NewValidation("exercise_id", "is required")
	}
	if req.DurationMinutes < 1 || req.DurationMinutes > 1440 {
		return apperrors.NewValidation("duration_minutes", "must be between 1 and 1440")
	}
	if req.Sets != nil && (*req.Sets < 1 || *req.Sets > 100) {
		return apperrors.NewValidation("sets", "must be between 1 and 100")
	}
	if req.Reps != nil && (*req.Reps < 1 || *req.Reps > 1000) {
		return apperrors.NewValidation("reps", "must be between 1 and 1000")
	}
	if req.WeightKg != nil && (*req.WeightKg < 0 || *req.WeightKg > 1000) {
		return apperrors.NewValidation("weight_kg", "must be between 0 and 1000")
	}
	if req.DistanceKm != nil && (*req.DistanceKm < 0 || *req.DistanceKm > 1000) {
		return apperrors.NewValidation("distance_km", "must be between 0 and 1000")
	}
	if req.CaloriesBurned != nil && (*req.CaloriesBurned < 0 || *req.CaloriesBurned > 5000) {
		return apperrors.NewValidation("calories_burned", "must be between 0 and 5000")
	}
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		return apperrors.NewValidation("rating", "must be between 1 and 5")
	}
	return nil
}

// LogExercise enregistre une séance. Les calories sont figées ici : saisie
// manuelle si fournie, sinon taux preset × durée. Le profil comportemental
// de l'utilisateur produit au plus une suggestion consultative.
func LogExercise(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	var req LogExerciseRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	if err := validateLogRequest(&req); err != nil {
		utils.WriteError(w, err)
		return
	}

	ctx := context.Background()

	exercise, err := catalogStore.GetByID(ctx, req.ExerciseID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	calories, method := estimator.Estimate(exercise, req.DurationMinutes, req.CaloriesBurned)

	// Le profil est consultatif : son échec ne bloque pas l'enregistrement
	profile, err := calorieEstimator.Profile(ctx, user.ID)
	if err != nil {
		utils.LogError("could not build behavior profile for %s: %v", user.ID, err)
		profile = nil
	}
	suggestion := estimator.SmartSuggestion(profile, exercise, req.DurationMinutes)

	performedAt := time.Now()
	if req.PerformedAt != nil {
		performedAt = *req.PerformedAt
	}

	lg := model.ExerciseLog{
		UserID:          user.ID,
		ExerciseID:      exercise.ID,
		DurationMinutes: req.DurationMinutes,
		Sets:            req.Sets,
		Reps:            req.Reps,
		WeightKg:        req.WeightKg,
		DistanceKm:      req.DistanceKm,
		CaloriesBurned:  &calories,
		PerformedAt:     performedAt,
		Notes:           req.Notes,
		Rating:          req.Rating,
	}

	if err := entryStore.CreateExerciseLog(ctx, &lg); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save exercise log", err)
		return
	}

	lg.ExerciseName = exercise.Name
	lg.ExerciseCategory = exercise.Category
	lg.PresetCaloriesMin = exercise.CaloriesPerMinute
	lg.MuscleGroups = exercise.MuscleGroups

	utils.Success(w, LogExerciseResponse{
		Log:                  &lg,
		CalculationMethod:    method,
		PresetCaloriesPerMin: exercise.CaloriesPerMinute,
		SmartSuggestion:      suggestion,
	})
}

// GetExerciseLogs liste les séances récentes de l'utilisateur (?days=, défaut 30)
func GetExerciseLogs(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	days := 30
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 365 {
			utils.WriteError(w, apperrors.NewValidation("days", "must be between 1 and 365"))
			return
		}
		days = parsed
	}

	now := time.Now()
	logs, err := entryStore.ExerciseLogsBetween(context.Background(), user.ID, now.AddDate(0, 0, -days), now)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query exercise logs", err)
		return
	}

	utils.Success(w, logs)
}

// DeleteExerciseLog supprime une séance de l'utilisateur
func DeleteExerciseLog(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	logID := vars["id"]

	ctx := context.Background()
	lg, err := entryStore.GetExerciseLog(ctx, logID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	if !middleware.IsOwner(r, lg.UserID) {
		utils.ErrorSimple(w, http.StatusForbidden, "you are not authorized to delete this log")
		return
	}

	if err := entryStore.DeleteExerciseLog(ctx, logID); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.Success(w, map[string]bool{"success": true})
}
