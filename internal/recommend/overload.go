package recommend

import (
	"context"
	"fmt"
	"math"

	model "github.com/takedajouji/FitU/internal/models"
)

const (
	overloadMinLogs      = 3
	overloadMinSessions  = 3   // sessions du même exercice pour établir une tendance
	overloadConsistency  = 0.6 // part minimale de progressions entre sessions consécutives
	overloadScorerLimit  = 5
	overloadBaseScore    = 85
	overloadMaxConfBoost = 10
)

// overloadScorer détecte les exercices où la performance récente progresse de
// façon soutenue et propose une variante plus difficile de la même catégorie
// (surcharge progressive)
type overloadScorer struct {
	catalog CatalogReader
}

func (s *overloadScorer) Name() string    { return model.SourceProgressiveOverload }
func (s *overloadScorer) Weight() float64 { return WeightProgressiveOverload }

func (s *overloadScorer) Score(ctx context.Context, in *Input) ([]Candidate, error) {
	if len(in.History) < overloadMinLogs {
		return nil, nil
	}

	// Grouper l'historique par exercice, ordre chronologique préservé
	groups := make(map[string][]model.ExerciseLog)
	var order []string
	for _, lg := range in.History {
		if _, seen := groups[lg.ExerciseID]; !seen {
			order = append(order, lg.ExerciseID)
		}
		groups[lg.ExerciseID] = append(groups[lg.ExerciseID], lg)
	}

	var candidates []Candidate
	for _, exerciseID := range order {
		sessions := groups[exerciseID]
		if len(sessions) < overloadMinSessions {
			continue
		}

		ready, confidence := analyzeTrend(sessions)
		if !ready {
			continue
		}

		variant, err := s.harderVariant(ctx, exerciseID)
		if err != nil {
			return nil, fmt.Errorf("overload scorer: %w", err)
		}
		if variant == nil {
			continue
		}

		candidates = append(candidates, Candidate{
			Exercise: *variant,
			RawScore: overloadBaseScore + confidence,
			Reason:   fmt.Sprintf("you are ready to progress beyond %s", sessions[0].ExerciseName),
		})

		if len(candidates) == overloadScorerLimit {
			break
		}
	}

	return candidates, nil
}

// analyzeTrend juge si la performance progresse de façon soutenue sur les
// sessions consécutives d'un même exercice. La métrique suivie est le poids
// soulevé si présent, sinon les répétitions, sinon la durée. La confiance
// (0..10) reflète la régularité de la progression.
func analyzeTrend(sessions []model.ExerciseLog) (bool, int) {
	improved := 0
	comparisons := len(sessions) - 1

	for i := 1; i < len(sessions); i++ {
		if performanceMetric(&sessions[i]) > performanceMetric(&sessions[i-1]) {
			improved++
		}
	}

	consistency := float64(improved) / float64(comparisons)
	if consistency < overloadConsistency {
		return false, 0
	}

	confidence := int(math.Round(consistency * overloadMaxConfBoost))
	return true, confidence
}

func performanceMetric(lg *model.ExerciseLog) float64 {
	if lg.WeightKg != nil && *lg.WeightKg > 0 {
		return *lg.WeightKg
	}
	if lg.Reps != nil && *lg.Reps > 0 {
		return float64(*lg.Reps)
	}
	return float64(lg.DurationMinutes)
}

// harderVariant cherche dans le catalogue un exercice actif de la même
// catégorie, un cran de difficulté au-dessus, ciblant de préférence un groupe
// musculaire commun. Retourne nil si aucune variante n'existe.
func (s *overloadScorer) harderVariant(ctx context.Context, exerciseID string) (*model.Exercise, error) {
	source, err := s.catalog.GetByID(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	targetDifficulty := model.HarderDifficulty(source.Difficulty)

	siblings, err := s.catalog.ListByCategories(ctx, []string{source.Category})
	if err != nil {
		return nil, err
	}

	var fallback *model.Exercise
	for i := range siblings {
		candidate := &siblings[i]
		if candidate.ID == source.ID || candidate.Difficulty != targetDifficulty {
			continue
		}

		for _, group := range source.MuscleGroups {
			if candidate.TargetsMuscleGroup(group) {
				return candidate, nil
			}
		}
		if fallback == nil {
			fallback = candidate
		}
	}

	return fallback, nil
}
