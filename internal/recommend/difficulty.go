package recommend

import (
	"context"
	"fmt"

	model "github.com/takedajouji/FitU/internal/models"
)

const (
	difficultyScorerLimit = 5
	difficultyScore       = 60

	// Seuils relatifs pour qualifier la tendance de performance récente
	improvingRatio = 1.1
	decliningRatio = 0.9
)

// Niveaux d'énergie déclarés dans les options de la requête
const (
	EnergyLow  = "low"
	EnergyHigh = "high"
)

// difficultyScorer ajuste la difficulté cible d'un cran selon la tendance de
// performance récente, puis d'un cran selon le niveau d'énergie déclaré, et
// propose des exercices à ce niveau
type difficultyScorer struct {
	catalog CatalogReader
}

func (s *difficultyScorer) Name() string    { return model.SourceAdaptiveDifficulty }
func (s *difficultyScorer) Weight() float64 { return WeightAdaptiveDifficulty }

func (s *difficultyScorer) Score(ctx context.Context, in *Input) ([]Candidate, error) {
	target := in.User.ExpectedDifficulty()

	switch recentTrend(in.History) {
	case trendImproving:
		target = model.HarderDifficulty(target)
	case trendDeclining:
		target = model.EasierDifficulty(target)
	}

	switch in.Options.EnergyLevel {
	case EnergyLow:
		target = model.EasierDifficulty(target)
	case EnergyHigh:
		target = model.HarderDifficulty(target)
	}

	exercises, err := s.catalog.ListByDifficulty(ctx, target, difficultyScorerLimit)
	if err != nil {
		return nil, fmt.Errorf("difficulty scorer: %w", err)
	}

	candidates := make([]Candidate, 0, len(exercises))
	for _, ex := range exercises {
		candidates = append(candidates, Candidate{
			Exercise: ex,
			RawScore: difficultyScore,
			Reason:   fmt.Sprintf("%s difficulty matches your current form", target),
		})
	}

	return candidates, nil
}

type trend int

const (
	trendStable trend = iota
	trendImproving
	trendDeclining
)

// recentTrend compare la durée moyenne de la seconde moitié de l'historique
// à celle de la première. L'historique arrive trié chronologiquement.
func recentTrend(history []model.ExerciseLog) trend {
	if len(history) < 4 {
		return trendStable
	}

	mid := len(history) / 2
	early := averageDuration(history[:mid])
	late := averageDuration(history[mid:])
	if early == 0 {
		return trendStable
	}

	switch {
	case late > early*improvingRatio:
		return trendImproving
	case late < early*decliningRatio:
		return trendDeclining
	default:
		return trendStable
	}
}

func averageDuration(logs []model.ExerciseLog) float64 {
	if len(logs) == 0 {
		return 0
	}
	total := 0
	for _, lg := range logs {
		total += lg.DurationMinutes
	}
	return float64(total) / float64(len(logs))
}
