package kantei

import (
	"github.com/phrazzld/seimei-api/internal/domain"
)

// Service defines the interface for name scoring operations
type Service interface {
	// Calculate scores a name with the service parameters
	Calculate(name domain.Name) (*ScoreResult, error)

	// CalculateWithOverrides scores a name with per-call overrides applied
	// on top of the service parameters
	CalculateWithOverrides(name domain.Name, overrides Overrides) (*ScoreResult, error)

	// Params returns a copy of the service parameters
	Params() Params
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new scoring service with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new scoring service with custom parameters
func NewServiceWithParams(params *Params) (Service, error) {
	if params == nil {
		params = NewDefaultParams()
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &defaultService{
		params: params.Apply(Overrides{}),
	}, nil
}

// Calculate implements the Service interface
func (s *defaultService) Calculate(name domain.Name) (*ScoreResult, error) {
	return Calculate(name, s.params)
}

// CalculateWithOverrides implements the Service interface
func (s *defaultService) CalculateWithOverrides(name domain.Name, overrides Overrides) (*ScoreResult, error) {
	return Calculate(name, s.params.Apply(overrides))
}

// Params implements the Service interface
func (s *defaultService) Params() Params {
	return *s.params.Apply(Overrides{})
}
