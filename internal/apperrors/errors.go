// Package apperrors définit la taxonomie d'erreurs du cœur applicatif.
// Les handlers HTTP les traduisent en codes de statut via errors.As.
package apperrors

import (
	"fmt"
)

// ValidationError signale un champ d'entrée invalide (→ 400)
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %q: %s", e.Field, e.Message)
}

// NewValidation construit une ValidationError pour un champ donné
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError signale une ressource inconnue (→ 404)
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// NewNotFound construit une NotFoundError pour une ressource donnée
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// CalculationError signale un échec inattendu de lecture pendant une
// agrégation (→ 500, journalisée avec utilisateur et date)
type CalculationError struct {
	Op     string
	UserID string
	Date   string
	Err    error
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("%s failed for user %s (%s): %v", e.Op, e.UserID, e.Date, e.Err)
}

func (e *CalculationError) Unwrap() error {
	return e.Err
}

// NewCalculation construit une CalculationError avec son contexte
func NewCalculation(op, userID, date string, err error) *CalculationError {
	return &CalculationError{Op: op, UserID: userID, Date: date, Err: err}
}
