// Package recommend produit des suggestions d'exercices classées : cinq
// scorers heuristiques indépendants fusionnés par pondération fixe.
package recommend

import (
	"context"
	"time"

	model "github.com/takedajouji/FitU/internal/models"
)

// Pondérations fixes de la fusion, exposées dans la réponse pour transparence
const (
	WeightGoalBased           = 0.35
	WeightProgressiveOverload = 0.25
	WeightBehavioral          = 0.20
	WeightBalanceRecovery     = 0.15
	WeightAdaptiveDifficulty  = 0.05
)

// historyDays est la profondeur d'historique lue pour tous les scorers
const historyDays = 30

// UserReader fournit le profil utilisateur. Contrairement au bilan calorique,
// un utilisateur inconnu est fatal ici : sans profil, pas de recommandation.
type UserReader interface {
	GetByID(ctx context.Context, id string) (*model.UserProfile, error)
}

// LogReader fournit l'historique des séances
type LogReader interface {
	ExerciseLogsBetween(ctx context.Context, userID string, from, to time.Time) ([]model.ExerciseLog, error)
}

// CatalogReader fournit le catalogue d'exercices en lecture seule
type CatalogReader interface {
	GetByID(ctx context.Context, id string) (*model.Exercise, error)
	ListActive(ctx context.Context) ([]model.Exercise, error)
	ListByCategories(ctx context.Context, categories []string) ([]model.Exercise, error)
	ListByDifficulty(ctx context.Context, difficulty string, limit int) ([]model.Exercise, error)
}

// Input est l'entrée commune des cinq scorers : profil, historique des 30
// derniers jours (enrichi des champs catalogue) et options de la requête
type Input struct {
	User    *model.UserProfile
	History []model.ExerciseLog
	Options model.RecommendationOptions
}

// Candidate est un exercice proposé par un scorer, avant fusion
type Candidate struct {
	Exercise model.Exercise
	RawScore int
	Reason   string
}

// Scorer est la capacité commune des cinq heuristiques. Chaque scorer est
// une lecture pure, indépendante des autres : ils peuvent être évalués en
// parallèle puis joints avant la fusion.
type Scorer interface {
	Name() string
	Weight() float64
	Score(ctx context.Context, in *Input) ([]Candidate, error)
}
