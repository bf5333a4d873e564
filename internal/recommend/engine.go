package recommend

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/takedajouji/FitU/internal/apperrors"
	model "github.com/takedajouji/FitU/internal/models"
)

const defaultLimit = 10

// Engine orchestre les cinq scorers et fusionne leurs candidats en une liste
// classée unique
type Engine struct {
	users   UserReader
	entries LogReader
	scorers []Scorer
}

// NewEngine câble les cinq scorers dans leur ordre de fusion : goal d'abord
// (il gagne les dédoublonnages), puis overload, behavioral, recovery,
// difficulty
func NewEngine(users UserReader, entries LogReader, catalog CatalogReader) *Engine {
	return &Engine{
		users:   users,
		entries: entries,
		scorers: []Scorer{
			&goalScorer{catalog: catalog},
			&overloadScorer{catalog: catalog},
			&behavioralScorer{catalog: catalog},
			&recoveryScorer{catalog: catalog},
			&difficultyScorer{catalog: catalog},
		},
	}
}

// Result est la réponse complète d'une requête de recommandation
type Result struct {
	UserProfile     *model.UserProfile     `json:"user_profile"`
	Recommendations []model.Recommendation `json:"ai_recommendations"`
	Weights         map[string]float64     `json:"algorithm_breakdown"`
	GeneratedAt     time.Time              `json:"generated_at"`
}

// Recommend produit jusqu'à limit suggestions pour un utilisateur. Un
// utilisateur inconnu est fatal (NotFoundError) : sans profil, aucune base
// de recommandation.
func (e *Engine) Recommend(ctx context.Context, userID string, opts model.RecommendationOptions) (*Result, error) {
	user, err := e.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	history, err := e.entries.ExerciseLogsBetween(ctx, userID, now.AddDate(0, 0, -historyDays), now)
	if err != nil {
		return nil, apperrors.NewCalculation("recommendations", userID, now.Format("2006-01-02"), err)
	}

	in := &Input{User: user, History: history, Options: opts}

	// Les cinq scorers sont des lectures pures et indépendantes : évaluation
	// en parallèle, jointure dans l'ordre fixe avant fusion (le séquentiel
	// produirait un résultat identique)
	results := make([][]Candidate, len(e.scorers))
	errs := make([]error, len(e.scorers))

	var wg sync.WaitGroup
	for i, scorer := range e.scorers {
		wg.Add(1)
		go func(i int, scorer Scorer) {
			defer wg.Done()
			results[i], errs[i] = scorer.Score(ctx, in)
		}(i, scorer)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, apperrors.NewCalculation("recommendations", userID, now.Format("2006-01-02"), err)
		}
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	return &Result{
		UserProfile:     user,
		Recommendations: e.fuse(results, limit),
		Weights:         e.weightTable(),
		GeneratedAt:     now,
	}, nil
}

// fuse concatène les listes dans l'ordre des scorers, dédoublonne par
// exercice (première occurrence gagnante, source et pondération comprises),
// applique la pondération puis classe par score final décroissant
func (e *Engine) fuse(results [][]Candidate, limit int) []model.Recommendation {
	seen := make(map[string]bool)
	fused := make([]model.Recommendation, 0)

	for i, candidates := range results {
		source := e.scorers[i].Name()
		weight := e.scorers[i].Weight()

		for _, c := range candidates {
			if seen[c.Exercise.ID] {
				continue
			}
			seen[c.Exercise.ID] = true

			confidence := 50
			if source == model.SourceGoalBased {
				confidence += 30
			}
			if c.RawScore > 80 {
				confidence += 20
			}
			if confidence > 100 {
				confidence = 100
			}

			fused = append(fused, model.Recommendation{
				Exercise:   c.Exercise,
				Score:      int(math.Round(float64(c.RawScore) * weight)),
				Source:     source,
				Reason:     c.Reason,
				Confidence: confidence,
			})
		}
	}

	sort.SliceStable(fused, func(i, j int) bool {
		return fused[i].Score > fused[j].Score
	})

	if len(fused) > limit {
		fused = fused[:limit]
	}
	return fused
}

func (e *Engine) weightTable() map[string]float64 {
	table := make(map[string]float64, len(e.scorers))
	for _, s := range e.scorers {
		table[s.Name()] = s.Weight()
	}
	return table
}
