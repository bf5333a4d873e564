package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/takedajouji/FitU/internal/apperrors"
	model "github.com/takedajouji/FitU/internal/models"
	"github.com/takedajouji/FitU/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type SignupRequest struct {
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Password         string  `json:"password"`
	Age              int     `json:"age,omitempty"`
	Weight           float64 `json:"weight,omitempty"`
	Height           float64 `json:"height,omitempty"`
	ActivityLevel    string  `json:"activityLevel,omitempty"`
	FitnessGoal      string  `json:"fitnessGoal,omitempty"`
	DailyCalorieGoal int     `json:"dailyCalorieGoal,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup crée un compte et ouvre une première session
func Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	if req.Email == "" || req.Password == "" || req.Name == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "name, email and password are required")
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
	if req.DailyCalorieGoal < 0 {
		utils.WriteError(w, apperrors.NewValidation("dailyCalorieGoal", "must be zero or positive"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not hash password", err)
		return
	}

	user := model.UserProfile{
		Name:             req.Name,
		Email:            req.Email,
		Age:              req.Age,
		Weight:           req.Weight,
		Height:           req.Height,
		ActivityLevel:    req.ActivityLevel,
		FitnessGoal:      req.FitnessGoal,
		DailyCalorieGoal: req.DailyCalorieGoal,
	}

	ctx := context.Background()
	if err := userStore.Create(ctx, &user, string(hashed)); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create user", err)
		return
	}

	ip, userAgent := utils.ExtractIPAndUserAgent(r)
	token, err := utils.CreateSession(ctx, user.ID, ip, userAgent)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// Login authentifie par email et mot de passe et ouvre une session
func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	ctx := context.Background()
	user, passwordHash, err := userStore.GetByEmail(ctx, req.Email)
	if err != nil {
		var nf *apperrors.NotFoundError
		if errors.As(err, &nf) {
			utils.ErrorSimple(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not authenticate", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	ip, userAgent := utils.ExtractIPAndUserAgent(r)
	token, err := utils.CreateSession(ctx, user.ID, ip, userAgent)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// Logout invalide la session courante (soft delete)
func Logout(w http.ResponseWriter, r *http.Request) {
	token, err := utils.GetToken(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "missing token")
		return
	}

	if err := utils.InvalidateSession(context.Background(), token); err != nil {
		utils.Error(w, http.StatusNotFound, "session not found or already logged out", err)
		return
	}

	utils.Message(w, "logged out")
}
