package handler

import (
	"context"
	"net/http"

	"github.com/takedajouji/FitU/internal/apperrors"
	"github.com/takedajouji/FitU/internal/middleware"
	model "github.com/takedajouji/FitU/internal/models"
	"github.com/takedajouji/FitU/internal/utils"
)

// GetMe retourne le profil de l'utilisateur authentifié
func GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	utils.Success(w, user)
}

type UpdateProfileRequest struct {
	Name             string  `json:"name,omitempty"`
	Age              int     `json:"age,omitempty"`
	Weight           float64 `json:"weight,omitempty"`
	Height           float64 `json:"height,omitempty"`
	ActivityLevel    string  `json:"activityLevel,omitempty"`
	FitnessGoal      string  `json:"fitnessGoal,omitempty"`
	DailyCalorieGoal *int    `json:"dailyCalorieGoal,omitempty"`
}

// UpdateMe met à jour le profil de l'utilisateur authentifié (mesures,
// niveau d'activité, objectif fitness, objectif calorique journalier)
func UpdateMe(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	var req UpdateProfileRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	if req.ActivityLevel != "" && !model.ValidActivityLevel(req.ActivityLevel) {
		utils.WriteError(w, apperrors.NewValidation("activityLevel", "unknown activity level"))
		return
	}
	if req.FitnessGoal != "" && !model.ValidFitnessGoal(req.FitnessGoal) {
		utils.WriteError(w, apperrors.NewValidation("fitnessGoal", "unknown fitness goal"))
		return
	}
	if req.DailyCalorieGoal != nil && *req.DailyCalorieGoal < 0 {
		utils.WriteError(w, apperrors.NewValidation("dailyCalorieGoal", "must be zero or positive"))
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Age != 0 {
		user.Age = req.Age
	}
	if req.Weight != 0 {
		user.Weight = req.Weight
	}
	if req.Height != 0 {
		user.Height = req.Height
	}
	if req.ActivityLevel != "" {
		user.ActivityLevel = req.ActivityLevel
	}
	if req.FitnessGoal != "" {
		user.FitnessGoal = req.FitnessGoal
	}
	if req.DailyCalorieGoal != nil {
		user.DailyCalorieGoal = *req.DailyCalorieGoal
	}

	if err := userStore.Update(context.Background(), &user); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.Success(w, user)
}

// UploadAvatar téléverse un avatar vers Cloudinary et met à jour le profil
func UploadAvatar(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	if cloudinarySvc == nil {
		utils.ErrorSimple(w, http.StatusServiceUnavailable, "avatar upload is not configured")
		return
	}

	// 5 Mo max
	if err := r.ParseMultipartForm(5 << 20); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid multipart form", err)
		return
	}

	file, _, err := r.FormFile("avatar")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "missing avatar file", err)
		return
	}
	defer file.Close()

	ctx := context.Background()
	url, err := cloudinarySvc.UploadAvatar(ctx, file, user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not upload avatar", err)
		return
	}

	if err := userStore.UpdateAvatar(ctx, user.ID, url); err != nil {
		utils.WriteError(w, err)
		return
	}

	user.Avatar = url
	utils.Success(w, user)
}
