package handler

import (
	"net/http"

	"github.com/takedajouji/FitU/internal/balance"
	"github.com/takedajouji/FitU/internal/estimator"
	"github.com/takedajouji/FitU/internal/recommend"
	"github.com/takedajouji/FitU/internal/services"
	"github.com/takedajouji/FitU/internal/store"
	"github.com/takedajouji/FitU/internal/utils"
)

// Stores et moteurs partagés par les handlers. Les stores sont sans état :
// la connexion Postgres n'est sollicitée qu'à l'appel.
var (
	userStore    = store.NewUserStore()
	catalogStore = store.NewCatalogStore()
	entryStore   = store.NewEntryStore()

	balanceEngine    = balance.NewEngine(userStore, entryStore)
	calorieEstimator = estimator.NewEstimator(entryStore)
	recommendEngine  = recommend.NewEngine(userStore, entryStore, catalogStore)

	cloudinarySvc *services.CloudinaryService
)

// SetCloudinary câble le service d'avatars (optionnel, depuis main)
func SetCloudinary(svc *services.CloudinaryService) {
	cloudinarySvc = svc
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
