package handler

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/takedajouji/FitU/internal/apperrors"
	model "github.com/takedajouji/FitU/internal/models"
	"github.com/takedajouji/FitU/internal/utils"
)

// GetExercises liste le catalogue actif, filtrable par catégorie ou difficulté
func GetExercises(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	category := query.Get("category")
	difficulty := query.Get("difficulty")

	if category != "" && !model.ValidCategory(category) {
		utils.WriteError(w, apperrors.NewValidation("category", "unknown category"))
		return
	}
	if difficulty != "" && !model.ValidDifficulty(difficulty) {
		utils.WriteError(w, apperrors.NewValidation("difficulty", "unknown difficulty"))
		return
	}

	ctx := context.Background()

	var (
		exercises []model.Exercise
		err       error
	)
	switch {
	case category != "":
		exercises, err = catalogStore.ListByCategories(ctx, []string{category})
	case difficulty != "":
		exercises, err = catalogStore.ListByDifficulty(ctx, difficulty, 100)
	default:
		exercises, err = catalogStore.ListActive(ctx)
	}

	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query exercise catalog", err)
		return
	}

	utils.Success(w, exercises)
}

// GetExercise retourne une entrée du catalogue par id
func GetExercise(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	ex, err := catalogStore.GetByID(context.Background(), id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.Success(w, ex)
}
