package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/takedajouji/FitU/internal/apperrors"
	"github.com/takedajouji/FitU/internal/balance"
	"github.com/takedajouji/FitU/internal/middleware"
	model "github.com/takedajouji/FitU/internal/models"
	"github.com/takedajouji/FitU/internal/utils"
)

type FoodEntryRequest struct {
	Name               string     `json:"name"`
	CaloriesPerServing int        `json:"calories_per_serving"`
	Servings           float64    `json:"servings"`
	ProteinG           float64    `json:"protein_g,omitempty"`
	CarbsG             float64    `json:"carbs_g,omitempty"`
	FatG               float64    `json:"fat_g,omitempty"`
	FiberG             float64    `json:"fiber_g,omitempty"`
	SugarG             float64    `json:"sugar_g,omitempty"`
	SodiumMg           float64    `json:"sodium_mg,omitempty"`
	MealType           string     `json:"meal_type"`
	ConsumedAt         *time.Time `json:"consumed_at,omitempty"`
}

// foodEntryResponse ajoute le total dérivé, jamais stocké, à la réponse
type foodEntryResponse struct {
	model.FoodEntry
	TotalCalories int `json:"total_calories"`
}

func toFoodResponse(entry model.FoodEntry) foodEntryResponse {
	return foodEntryResponse{FoodEntry: entry, TotalCalories: entry.TotalCalories()}
}

func validateFoodRequest(req *FoodEntryRequest) error {
	if req.Name == "" {
		return apperrors.NewValidation("name", "is required")
	}
	if req.CaloriesPerServing < 0 || req.CaloriesPerServing > 10000 {
		return apperrors.NewValidation("calories_per_serving", "must be between 0 and 10000")
	}
	if req.Servings < 0.01 || req.Servings > 100 {
		return apperrors.NewValidation("servings", "must be between 0.01 and 100")
	}
	for field, value := range map[string]float64{
		"protein_g": req.ProteinG,
		"carbs_g":   req.CarbsG,
		"fat_g":     req.FatG,
		"fiber_g":   req.FiberG,
		"sugar_g":   req.SugarG,
		"sodium_mg": req.SodiumMg,
	} {
		if value < 0 {
			return apperrors.NewValidation(field, "must be zero or positive")
		}
	}
	if !model.ValidMealType(req.MealType) {
		return apperrors.NewValidation("meal_type", "must be breakfast, lunch, dinner or snack")
	}
	return nil
}

// LogFood enregistre une entrée alimentaire pour l'utilisateur authentifié
func LogFood(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	var req FoodEntryRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	if err := validateFoodRequest(&req); err != nil {
		utils.WriteError(w, err)
		return
	}

	consumedAt := time.Now()
	if req.ConsumedAt != nil {
		consumedAt = *req.ConsumedAt
	}

	entry := model.FoodEntry{
		UserID:             user.ID,
		Name:               req.Name,
		CaloriesPerServing: req.CaloriesPerServing,
		Servings:           req.Servings,
		ProteinG:           req.ProteinG,
		CarbsG:             req.CarbsG,
		FatG:               req.FatG,
		FiberG:             req.FiberG,
		SugarG:             req.SugarG,
		SodiumMg:           req.SodiumMg,
		MealType:           req.MealType,
		ConsumedAt:         consumedAt,
	}

	if err := entryStore.CreateFoodEntry(context.Background(), &entry); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save food entry", err)
		return
	}

	utils.Success(w, toFoodResponse(entry))
}

// GetFoodEntries liste les entrées alimentaires d'une journée (défaut: aujourd'hui)
func GetFoodEntries(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	date, err := utils.ParseDateParam(r, "date")
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	from, to := balance.DayWindow(date)
	entries, err := entryStore.FoodEntriesBetween(context.Background(), user.ID, from, to)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query food entries", err)
		return
	}

	responses := make([]foodEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toFoodResponse(entry))
	}

	utils.Success(w, responses)
}

// UpdateFoodEntry met à jour une entrée alimentaire de l'utilisateur
func UpdateFoodEntry(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	entryID := vars["id"]

	ctx := context.Background()
	entry, err := entryStore.GetFoodEntry(ctx, entryID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	// Seul le propriétaire peut modifier son entrée
	if !middleware.IsOwner(r, entry.UserID) {
		utils.ErrorSimple(w, http.StatusForbidden, "you are not authorized to update this entry")
		return
	}

	var req FoodEntryRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	if err := validateFoodRequest(&req); err != nil {
		utils.WriteError(w, err)
		return
	}

	entry.Name = req.Name
	entry.CaloriesPerServing = req.CaloriesPerServing
	entry.Servings = req.Servings
	entry.ProteinG = req.ProteinG
	entry.CarbsG = req.CarbsG
	entry.FatG = req.FatG
	entry.FiberG = req.FiberG
	entry.SugarG = req.SugarG
	entry.SodiumMg = req.SodiumMg
	entry.MealType = req.MealType
	if req.ConsumedAt != nil {
		entry.ConsumedAt = *req.ConsumedAt
	}

	if err := entryStore.UpdateFoodEntry(ctx, entry); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.Success(w, toFoodResponse(*entry))
}

// DeleteFoodEntry supprime une entrée alimentaire de l'utilisateur
func DeleteFoodEntry(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	entryID := vars["id"]

	ctx := context.Background()
	entry, err := entryStore.GetFoodEntry(ctx, entryID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	if !middleware.IsOwner(r, entry.UserID) {
		utils.ErrorSimple(w, http.StatusForbidden, "you are not authorized to delete this entry")
		return
	}

	if err := entryStore.DeleteFoodEntry(ctx, entryID); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.Success(w, map[string]bool{"success": true})
}
