package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/takedajouji/FitU/internal/apperrors"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Field   string      `json:"field,omitempty"`
	Message string      `json:"message,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// Success répond 200 avec les données encapsulées
func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Data: data})
}

// Error log l'erreur sous-jacente et répond avec le message donné
func Error(w http.ResponseWriter, status int, msg string, err error) {
	if err != nil {
		LogError("[%d] %s: %v", status, msg, err)
	} else {
		LogError("[%d] %s", status, msg)
	}
	JSON(w, status, APIResponse{Success: false, Error: msg})
}

// ErrorSimple répond avec un message d'erreur sans cause sous-jacente
func ErrorSimple(w http.ResponseWriter, status int, msg string) {
	Error(w, status, msg, nil)
}

// Message répond 200 avec un simple message
func Message(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Message: msg})
}

// WriteError traduit la taxonomie d'erreurs du cœur en statut HTTP :
// ValidationError → 400 (avec le champ fautif), NotFoundError → 404,
// CalculationError et le reste → 500
func WriteError(w http.ResponseWriter, err error) {
	var vErr *apperrors.ValidationError
	if errors.As(err, &vErr) {
		LogError("[400] %s", vErr.Error())
		JSON(w, http.StatusBadRequest, APIResponse{Success: false, Error: vErr.Message, Field: vErr.Field})
		return
	}

	var nfErr *apperrors.NotFoundError
	if errors.As(err, &nfErr) {
		Error(w, http.StatusNotFound, nfErr.Error(), nil)
		return
	}

	var cErr *apperrors.CalculationError
	if errors.As(err, &cErr) {
		// Contexte (utilisateur, plage de dates) déjà porté par l'erreur
		Error(w, http.StatusInternalServerError, "calculation failed", cErr)
		return
	}

	Error(w, http.StatusInternalServerError, "internal error", err)
}
