package recommend

import (
	"context"
	"fmt"
	"sort"

	model "github.com/takedajouji/FitU/internal/models"
)

const (
	behavioralMinLogs     = 5
	behavioralMinRating   = 4
	behavioralScorerLimit = 5
	behavioralBaseScore   = 70
)

// behavioralScorer repère les exercices que l'utilisateur a bien notés et
// propose des exercices semblables (mêmes catégories) pas encore essayés
type behavioralScorer struct {
	catalog CatalogReader
}

func (s *behavioralScorer) Name() string    { return model.SourceBehavioral }
func (s *behavioralScorer) Weight() float64 { return WeightBehavioral }

func (s *behavioralScorer) Score(ctx context.Context, in *Input) ([]Candidate, error) {
	if len(in.History) < behavioralMinLogs {
		return nil, nil
	}

	tried := make(map[string]bool)
	categoryVotes := make(map[string]int)
	highRated := 0

	for _, lg := range in.History {
		tried[lg.ExerciseID] = true
		if lg.Rating != nil && *lg.Rating >= behavioralMinRating && lg.ExerciseCategory != "" {
			categoryVotes[lg.ExerciseCategory]++
			highRated++
		}
	}

	if highRated == 0 {
		return nil, nil
	}

	// Catégories préférées, les plus plébiscitées d'abord
	preferred := make([]string, 0, len(categoryVotes))
	for category := range categoryVotes {
		preferred = append(preferred, category)
	}
	sort.SliceStable(preferred, func(i, j int) bool {
		if categoryVotes[preferred[i]] != categoryVotes[preferred[j]] {
			return categoryVotes[preferred[i]] > categoryVotes[preferred[j]]
		}
		return preferred[i] < preferred[j]
	})

	exercises, err := s.catalog.ListByCategories(ctx, preferred)
	if err != nil {
		return nil, fmt.Errorf("behavioral scorer: %w", err)
	}

	// La confiance croît avec le nombre de séances bien notées
	confidence := highRated * 3
	if confidence > 15 {
		confidence = 15
	}

	var candidates []Candidate
	for _, ex := range exercises {
		if tried[ex.ID] {
			continue
		}

		candidates = append(candidates, Candidate{
			Exercise: ex,
			RawScore: behavioralBaseScore + confidence,
			Reason:   "similar to highly-rated exercises",
		})

		if len(candidates) == behavioralScorerLimit {
			break
		}
	}

	return candidates, nil
}
