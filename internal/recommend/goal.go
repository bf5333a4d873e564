package recommend

import (
	"context"
	"fmt"
	"sort"

	model "github.com/takedajouji/FitU/internal/models"
)

const goalScorerLimit = 8

// goalPlan décrit la stratégie d'entraînement dérivée d'un objectif fitness :
// catégories prioritaires (ordonnées) et axes particuliers
type goalPlan struct {
	categories    []string
	intensity     string
	calorieFocus  bool
	strengthFocus bool
}

var goalPlans = map[string]goalPlan{
	model.GoalLoseWeight: {
		categories:   []string{model.CategoryCardio, model.CategoryFunctional},
		intensity:    "moderate",
		calorieFocus: true,
	},
	model.GoalBuildMuscle: {
		categories: []string{model.CategoryStrength},
		intensity:  "high",
	},
	model.GoalImproveFitness: {
		categories: []string{model.CategoryCardio, model.CategoryFunctional, model.CategoryStrength},
		intensity:  "moderate",
	},
	model.GoalMaintainWeight: {
		categories: []string{model.CategoryCardio, model.CategoryStrength, model.CategoryFlexibility},
		intensity:  "moderate",
	},
	model.GoalGainWeight: {
		categories:    []string{model.CategoryStrength},
		intensity:     "moderate",
		strengthFocus: true,
	},
}

// goalScorer propose des exercices alignés sur l'objectif fitness du profil.
// C'est le scorer dominant (pondération 0.35) et le premier dans l'ordre de
// fusion : ses candidats gagnent les dédoublonnages.
type goalScorer struct {
	catalog CatalogReader
}

func (s *goalScorer) Name() string    { return model.SourceGoalBased }
func (s *goalScorer) Weight() float64 { return WeightGoalBased }

func (s *goalScorer) Score(ctx context.Context, in *Input) ([]Candidate, error) {
	goal := in.User.FitnessGoal
	if in.Options.GoalOverride != "" {
		goal = in.Options.GoalOverride
	}

	plan, ok := goalPlans[goal]
	if !ok {
		// Objectif non reconnu : stratégie équilibrée par défaut
		plan = goalPlans[model.GoalImproveFitness]
		goal = model.GoalImproveFitness
	}

	exercises, err := s.catalog.ListByCategories(ctx, plan.categories)
	if err != nil {
		return nil, fmt.Errorf("goal scorer: %w", err)
	}

	categoryRank := make(map[string]int, len(plan.categories))
	for i, c := range plan.categories {
		categoryRank[c] = i
	}

	expectedDifficulty := in.User.ExpectedDifficulty()

	candidates := make([]Candidate, 0, len(exercises))
	for _, ex := range exercises {
		rank, ok := categoryRank[ex.Category]
		if !ok {
			continue
		}

		// Les catégories les plus prioritaires pèsent le plus
		score := 20 * (len(plan.categories) - rank)

		if plan.calorieFocus && ex.CaloriesPerMinute != nil && *ex.CaloriesPerMinute > 8 {
			score += 25
		}
		if plan.strengthFocus && ex.Category == model.CategoryStrength {
			score += 30
		}
		if ex.Difficulty == expectedDifficulty {
			score += 15
		}

		candidates = append(candidates, Candidate{
			Exercise: ex,
			RawScore: score,
			Reason:   fmt.Sprintf("%s fits your %s goal", ex.Name, goal),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].RawScore > candidates[j].RawScore
	})

	if len(candidates) > goalScorerLimit {
		candidates = candidates[:goalScorerLimit]
	}
	return candidates, nil
}
