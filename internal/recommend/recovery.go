package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	model "github.com/takedajouji/FitU/internal/models"
)

const (
	recoveryWindowDays  = 7
	recoveryScorerLimit = 4
	recoveryScore       = 75
)

// recoveryScorer cherche les groupes musculaires délaissés sur les 7 derniers
// jours et propose des exercices qui les ciblent, pour équilibrer la charge
type recoveryScorer struct {
	catalog CatalogReader
}

func (s *recoveryScorer) Name() string    { return model.SourceBalanceRecovery }
func (s *recoveryScorer) Weight() float64 { return WeightBalanceRecovery }

func (s *recoveryScorer) Score(ctx context.Context, in *Input) ([]Candidate, error) {
	cutoff := time.Now().AddDate(0, 0, -recoveryWindowDays)

	worked := make(map[string]bool)
	for _, lg := range in.History {
		if lg.PerformedAt.Before(cutoff) {
			continue
		}
		for _, group := range lg.MuscleGroups {
			worked[group] = true
		}
	}

	exercises, err := s.catalog.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("recovery scorer: %w", err)
	}

	// L'ensemble des groupes suivis est celui que couvre le catalogue actif
	underworked := make(map[string]bool)
	for _, ex := range exercises {
		for _, group := range ex.MuscleGroups {
			if !worked[group] {
				underworked[group] = true
			}
		}
	}

	if len(underworked) == 0 {
		return nil, nil
	}

	var candidates []Candidate
	for _, ex := range exercises {
		var hits []string
		for _, group := range ex.MuscleGroups {
			if underworked[group] {
				hits = append(hits, group)
			}
		}
		if len(hits) == 0 {
			continue
		}

		sort.Strings(hits)
		candidates = append(candidates, Candidate{
			Exercise: ex,
			RawScore: recoveryScore,
			Reason:   fmt.Sprintf("targets underworked muscle groups: %s", strings.Join(hits, ", ")),
		})

		if len(candidates) == recoveryScorerLimit {
			break
		}
	}

	return candidates, nil
}
