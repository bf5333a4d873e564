package handler

import (
	"context"
	"net/http"

	"github.com/takedajouji/FitU/internal/middleware"
	model "github.com/takedajouji/FitU/internal/models"
	"github.com/takedajouji/FitU/internal/utils"
)

// GetRecommendations exécute les cinq scorers et retourne la liste fusionnée.
// Contrairement au bilan calorique, un profil inconnu est une erreur 404 :
// sans profil, aucune base de recommandation.
func GetRecommendations(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	var opts model.RecommendationOptions
	if r.Body != nil && r.ContentLength > 0 {
		if err := utils.DecodeJSON(r, &opts); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
			return
		}
	}

	if opts.Limit < 0 || opts.Limit > 50 {
		opts.Limit = 0 // retombe sur la limite par défaut du moteur
	}

	result, err := recommendEngine.Recommend(context.Background(), user.ID, opts)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.Success(w, result)
}
