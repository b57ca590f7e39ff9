package kantei

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultService(t *testing.T) {
	t.Parallel()

	service := NewDefaultService()
	require.NotNil(t, service)

	impl, ok := service.(*defaultService)
	require.True(t, ok, "expected *defaultService")
	assert.Equal(t, *NewDefaultParams(), service.Params())
	assert.NotNil(t, impl.params)
}

func TestNewServiceWithParams(t *testing.T) {
	t.Parallel()

	t.Run("rejects invalid params", func(t *testing.T) {
		_, err := NewServiceWithParams(&Params{Normalization: DefaultNormalization()})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidWeights))
	})

	t.Run("nil params uses defaults", func(t *testing.T) {
		service, err := NewServiceWithParams(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultWeights(), service.Params().Weights)
	})

	t.Run("params are copied", func(t *testing.T) {
		params := NewDefaultParams()
		service, err := NewServiceWithParams(params)
		require.NoError(t, err)
		params.Weights.Taboo = 0
		assert.Equal(t, 0.10, service.Params().Weights.Taboo)
	})
}

func TestServiceCalculate(t *testing.T) {
	t.Parallel()

	service := NewDefaultService()
	name := makeName(t, "田中", []int{5, 4}, "太郎", []int{4, 9})

	result, err := service.Calculate(name)
	require.NoError(t, err)
	assert.Equal(t, 56, result.TotalScore)

	weights := Weights{Taboo: 1}
	overridden, err := service.CalculateWithOverrides(name, Overrides{Weights: &weights})
	require.NoError(t, err)
	assert.Equal(t, 100, overridden.TotalScore)

	// overrides do not leak into later calls
	again, err := service.Calculate(name)
	require.NoError(t, err)
	assert.Equal(t, result.TotalScore, again.TotalScore)
}
