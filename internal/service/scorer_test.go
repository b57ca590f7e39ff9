package service

import (
	"testing"

	"github.com/phrazzld/seimei-api/internal/config"
	"github.com/phrazzld/seimei-api/internal/domain/kantei"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultScoring() config.ScoringConfig {
	return config.ScoringConfig{
		Weights: config.WeightsConfig{
			Polarity: 0.20,
			Element:  0.25,
			Fortune:  0.30,
			Special:  0.15,
			Taboo:    0.10,
		},
		MinScore:           5,
		MaxScore:           100,
		TabooFairThreshold: 50,
	}
}

func TestScoringParams(t *testing.T) {
	t.Parallel()

	params := ScoringParams(defaultScoring())
	assert.Equal(t, kantei.NewDefaultParams().Weights, params.Weights)
	assert.Equal(t, kantei.DefaultNormalization(), params.Normalization)

	cfg := defaultScoring()
	cfg.MinScore = 0
	cfg.MaxScore = 90
	cfg.TabooFairThreshold = 40
	params = ScoringParams(cfg)
	assert.Equal(t, 0, params.Normalization.MinScore)
	assert.Equal(t, 90, params.Normalization.MaxScore)
	assert.Equal(t, 40, params.Taboo.FairThreshold)
}

func TestNewScorer(t *testing.T) {
	t.Parallel()

	scorer, err := NewScorer(defaultScoring())
	require.NoError(t, err)
	assert.Equal(t, 100, scorer.Params().Normalization.MaxScore)

	cfg := defaultScoring()
	cfg.Weights = config.WeightsConfig{}
	_, err = NewScorer(cfg)
	assert.ErrorIs(t, err, kantei.ErrInvalidWeights)
}
