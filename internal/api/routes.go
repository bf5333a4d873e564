package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/takedajouji/FitU/internal/handler"
	"github.com/takedajouji/FitU/internal/middleware"
	"github.com/takedajouji/FitU/internal/utils"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.LoggerMiddleware)

	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(middleware.AuthMiddleware)

	// Auth
	r.HandleFunc("/auth/signup", handler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)

	// Profil utilisateur
	authenticatedRoutes.HandleFunc("/users/me", handler.GetMe).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/users/me", handler.UpdateMe).Methods(http.MethodPut, http.MethodPatch)
	authenticatedRoutes.HandleFunc("/users/me/avatar", handler.UploadAvatar).Methods(http.MethodPost)

	// Catalogue d'exercices (public, lecture seule)
	r.HandleFunc("/exercises", handler.GetExercises).Methods(http.MethodGet)
	r.HandleFunc("/exercises/{id}", handler.GetExercise).Methods(http.MethodGet)

	// Journal alimentaire
	authenticatedRoutes.HandleFunc("/foods", handler.LogFood).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/foods", handler.GetFoodEntries).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/foods/{id}", handler.UpdateFoodEntry).Methods(http.MethodPut, http.MethodPatch)
	authenticatedRoutes.HandleFunc("/foods/{id}", handler.DeleteFoodEntry).Methods(http.MethodDelete)

	// Séances d'exercice
	authenticatedRoutes.HandleFunc("/workouts", handler.LogExercise).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/workouts", handler.GetExerciseLogs).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/workouts/{id}", handler.DeleteExerciseLog).Methods(http.MethodDelete)

	// Bilans caloriques
	authenticatedRoutes.HandleFunc("/balance/daily", handler.GetDailyBalance).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/balance/weekly", handler.GetWeeklyBalance).Methods(http.MethodGet)

	// Recommandations
	authenticatedRoutes.HandleFunc("/recommendations", handler.GetRecommendations).Methods(http.MethodPost)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
