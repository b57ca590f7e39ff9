package kantei

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidWeights is returned when category weights cannot be normalised.
var ErrInvalidWeights = errors.New("invalid category weights")

// ErrInvalidNormalization is returned when the score bounds are inverted or
// outside 0..100.
var ErrInvalidNormalization = errors.New("invalid score normalization")

// Category identifies one of the five scoring categories.
type Category string

const (
	CategoryPolarity Category = "polarity"
	CategoryElement  Category = "element"
	CategoryFortune  Category = "fortune"
	CategorySpecial  Category = "special"
	CategoryTaboo    Category = "taboo"
)

// Label returns the Japanese category name.
func (c Category) Label() string {
	switch c {
	case CategoryPolarity:
		return "陰陽配列"
	case CategoryElement:
		return "五行"
	case CategoryFortune:
		return "画数吉凶"
	case CategorySpecial:
		return "天地特殊"
	case CategoryTaboo:
		return "禁忌"
	default:
		return string(c)
	}
}

// Categories returns the categories in aggregation order.
func Categories() []Category {
	return []Category{CategoryPolarity, CategoryElement, CategoryFortune, CategorySpecial, CategoryTaboo}
}

// Weights holds the per-category weights. They need not sum to 1; the
// aggregator divides by their total.
type Weights struct {
	Polarity float64 `json:"polarity"`
	Element  float64 `json:"element"`
	Fortune  float64 `json:"fortune"`
	Special  float64 `json:"special"`
	Taboo    float64 `json:"taboo"`
}

// DefaultWeights returns the standard category weights.
func DefaultWeights() Weights {
	return Weights{
		Polarity: 0.20,
		Element:  0.25,
		Fortune:  0.30,
		Special:  0.15,
		Taboo:    0.10,
	}
}

// For returns the weight of a category.
func (w Weights) For(c Category) float64 {
	switch c {
	case CategoryPolarity:
		return w.Polarity
	case CategoryElement:
		return w.Element
	case CategoryFortune:
		return w.Fortune
	case CategorySpecial:
		return w.Special
	case CategoryTaboo:
		return w.Taboo
	default:
		return 0
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Polarity + w.Element + w.Fortune + w.Special + w.Taboo
}

// Validate checks that every weight is a finite non-negative number and
// that at least one is positive.
func (w Weights) Validate() error {
	for _, c := range Categories() {
		v := w.For(c)
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: %s weight %v", ErrInvalidWeights, c, v)
		}
	}
	if w.Sum() <= 0 {
		return fmt.Errorf("%w: weights must have a positive sum", ErrInvalidWeights)
	}
	return nil
}

// Normalization bounds the total score.
type Normalization struct {
	MinScore int `json:"minScore"`
	MaxScore int `json:"maxScore"`
}

// DefaultNormalization returns the standard 5..100 bounds.
func DefaultNormalization() Normalization {
	return Normalization{MinScore: 5, MaxScore: 100}
}

// Validate checks that the bounds lie within 0..100 and are ordered.
func (n Normalization) Validate() error {
	if n.MinScore < 0 || n.MaxScore > 100 || n.MinScore > n.MaxScore {
		return fmt.Errorf("%w: min %d max %d", ErrInvalidNormalization, n.MinScore, n.MaxScore)
	}
	return nil
}

// Params defines all configurable parameters for the aggregator
type Params struct {
	Weights       Weights
	Normalization Normalization
	Taboo         TabooOptions
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance
type ParamsConfig struct {
	// Category weights; a nil pointer keeps the default
	Weights *Weights

	// Score bounds
	MinScore int
	MaxScore int

	// Taboo judge tuning
	TabooFairThreshold  int
	DisabledTabooChecks []TabooCheck
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		Weights:       DefaultWeights(),
		Normalization: DefaultNormalization(),
		Taboo: TabooOptions{
			FairThreshold: DefaultTabooFairThreshold,
		},
	}
}

// NewParams creates a new Params instance with custom configuration
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	// Override weights if provided
	if config.Weights != nil {
		params.Weights = *config.Weights
	}

	// Override score bounds if provided
	if config.MinScore > 0 {
		params.Normalization.MinScore = config.MinScore
	}
	if config.MaxScore > 0 {
		params.Normalization.MaxScore = config.MaxScore
	}

	// Override taboo tuning if provided
	if config.TabooFairThreshold > 0 {
		params.Taboo.FairThreshold = config.TabooFairThreshold
	}
	if len(config.DisabledTabooChecks) > 0 {
		params.Taboo.Disabled = make(map[TabooCheck]bool, len(config.DisabledTabooChecks))
		for _, check := range config.DisabledTabooChecks {
			params.Taboo.Disabled[check] = true
		}
	}

	return params
}

// Validate checks the weights and the score bounds.
func (p *Params) Validate() error {
	if err := p.Weights.Validate(); err != nil {
		return err
	}
	return p.Normalization.Validate()
}

// Overrides are per-call adjustments applied on top of a Params value.
// Zero fields keep the base value.
type Overrides struct {
	Weights             *Weights
	MinScore            *int
	MaxScore            *int
	TabooFairThreshold  *int
	DisabledTabooChecks []TabooCheck
}

// Apply returns a copy of p with the overrides applied. p is not modified.
func (p *Params) Apply(o Overrides) *Params {
	out := &Params{
		Weights:       p.Weights,
		Normalization: p.Normalization,
		Taboo: TabooOptions{
			FairThreshold: p.Taboo.FairThreshold,
		},
	}
	if len(p.Taboo.Disabled) > 0 || len(o.DisabledTabooChecks) > 0 {
		out.Taboo.Disabled = make(map[TabooCheck]bool, len(p.Taboo.Disabled)+len(o.DisabledTabooChecks))
		for k, v := range p.Taboo.Disabled {
			out.Taboo.Disabled[k] = v
		}
		for _, check := range o.DisabledTabooChecks {
			out.Taboo.Disabled[check] = true
		}
	}

	if o.Weights != nil {
		out.Weights = *o.Weights
	}
	if o.MinScore != nil {
		out.Normalization.MinScore = *o.MinScore
	}
	if o.MaxScore != nil {
		out.Normalization.MaxScore = *o.MaxScore
	}
	if o.TabooFairThreshold != nil {
		out.Taboo.FairThreshold = *o.TabooFairThreshold
	}
	return out
}
