package service

import (
	"fmt"

	"github.com/phrazzld/seimei-api/internal/config"
	"github.com/phrazzld/seimei-api/internal/domain/kantei"
)

// ScoringParams translates the scoring section of the configuration into
// aggregator parameters.
func ScoringParams(cfg config.ScoringConfig) *kantei.Params {
	weights := kantei.Weights{
		Polarity: cfg.Weights.Polarity,
		Element:  cfg.Weights.Element,
		Fortune:  cfg.Weights.Fortune,
		Special:  cfg.Weights.Special,
		Taboo:    cfg.Weights.Taboo,
	}

	params := kantei.NewParams(kantei.ParamsConfig{
		Weights:            &weights,
		MaxScore:           cfg.MaxScore,
		TabooFairThreshold: cfg.TabooFairThreshold,
	})
	// NewParams treats zero as "keep the default", but a zero floor is a
	// legitimate configuration.
	params.Normalization.MinScore = cfg.MinScore
	return params
}

// NewScorer builds the scoring service configured by cfg.
func NewScorer(cfg config.ScoringConfig) (kantei.Service, error) {
	scorer, err := kantei.NewServiceWithParams(ScoringParams(cfg))
	if err != nil {
		return nil, fmt.Errorf("invalid scoring configuration: %w", err)
	}
	return scorer, nil
}
