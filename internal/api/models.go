package api

import (
	"fmt"

	"github.com/phrazzld/seimei-api/internal/domain"
	"github.com/phrazzld/seimei-api/internal/domain/kantei"
	"github.com/phrazzld/seimei-api/internal/service"
)

// NameRequest is the payload shared by the analyze, kakusu and kantei endpoints.
type NameRequest struct {
	Sei     string          `json:"sei"               validate:"required,max=10"`
	Mei     string          `json:"mei"               validate:"required,max=10"`
	Options *OptionsRequest `json:"options,omitempty"`
}

// OptionsRequest carries per-request scoring adjustments. Range checks are
// left to the scoring engine so that they surface as invalid_options.
type OptionsRequest struct {
	// Weights replaces the whole weight set; omitted categories weigh 0.
	Weights             *WeightsRequest `json:"weights,omitempty"`
	MinScore            *int            `json:"minScore,omitempty"`
	MaxScore            *int            `json:"maxScore,omitempty"`
	TabooFairThreshold  *int            `json:"tabooFairThreshold,omitempty"`
	DisabledTabooChecks []string        `json:"disabledTabooChecks,omitempty"`
	// Strokes maps glyphs to stroke counts that bypass the dictionary.
	Strokes map[string]int `json:"strokes,omitempty"`
}

// WeightsRequest holds per-category weights.
type WeightsRequest struct {
	Polarity float64 `json:"polarity"`
	Element  float64 `json:"element"`
	Fortune  float64 `json:"fortune"`
	Special  float64 `json:"special"`
	Taboo    float64 `json:"taboo"`
}

// nameInput converts the request into service input.
func (r NameRequest) nameInput() service.NameInput {
	in := service.NameInput{Sei: r.Sei, Mei: r.Mei}
	if r.Options != nil {
		in.Strokes = r.Options.Strokes
	}
	return in
}

// analyzeInput converts the request into service input with overrides.
func (r NameRequest) analyzeInput() (service.AnalyzeInput, error) {
	in := service.AnalyzeInput{NameInput: r.nameInput()}
	if r.Options == nil {
		return in, nil
	}

	o := r.Options
	in.Overrides = kantei.Overrides{
		MinScore:           o.MinScore,
		MaxScore:           o.MaxScore,
		TabooFairThreshold: o.TabooFairThreshold,
	}
	if o.Weights != nil {
		in.Overrides.Weights = &kantei.Weights{
			Polarity: o.Weights.Polarity,
			Element:  o.Weights.Element,
			Fortune:  o.Weights.Fortune,
			Special:  o.Weights.Special,
			Taboo:    o.Weights.Taboo,
		}
	}
	for _, name := range o.DisabledTabooChecks {
		check, ok := kantei.ParseTabooCheck(name)
		if !ok {
			return service.AnalyzeInput{}, fmt.Errorf("%w: unknown taboo check %q", service.ErrInvalidOptions, name)
		}
		in.Overrides.DisabledTabooChecks = append(in.Overrides.DisabledTabooChecks, check)
	}
	return in, nil
}

// CharacterResponse describes one resolved character.
type CharacterResponse struct {
	Position int    `json:"position"`
	Part     string `json:"part"`
	Glyph    string `json:"glyph"`
	Strokes  int    `json:"strokes"`
	Reading  string `json:"reading,omitempty"`
	Element  string `json:"element"`
	Polarity string `json:"polarity"`
	Source   string `json:"source"`
}

// JudgmentsResponse holds the detail of every category judge.
type JudgmentsResponse struct {
	Polarity kantei.PolarityResult `json:"polarity"`
	Element  kantei.ElementResult  `json:"element"`
	Special  kantei.SpecialResult  `json:"special"`
	Taboo    kantei.TabooResult    `json:"taboo"`
}

// KakusuResponse is the body of POST /seimei/kakusu.
type KakusuResponse struct {
	Sei        string              `json:"sei"`
	Mei        string              `json:"mei"`
	Characters []CharacterResponse `json:"characters"`
	Counts     domain.Counts       `json:"counts"`
	Timestamp  string              `json:"timestamp"`
}

// KanteiResponse is the body of POST /seimei/kantei.
type KanteiResponse struct {
	Sei                 string                 `json:"sei"`
	Mei                 string                 `json:"mei"`
	Categories          []kantei.CategoryScore `json:"categories"`
	Score               int                    `json:"score"`
	Grade               string                 `json:"grade"`
	Classification      string                 `json:"classification"`
	ClassificationLabel string                 `json:"classificationLabel"`
	Assessment          kantei.Assessment      `json:"assessment"`
	Timestamp           string                 `json:"timestamp"`
}

// AnalysisResponse is the body of POST /seimei/analyze.
type AnalysisResponse struct {
	AnalysisID          string                 `json:"analysisId"`
	Sei                 string                 `json:"sei"`
	Mei                 string                 `json:"mei"`
	Characters          []CharacterResponse    `json:"characters"`
	Counts              domain.Counts          `json:"counts"`
	Fortunes            []kantei.CountFortune  `json:"fortunes"`
	Judgments           JudgmentsResponse      `json:"judgments"`
	Categories          []kantei.CategoryScore `json:"categories"`
	Score               int                    `json:"score"`
	Grade               string                 `json:"grade"`
	Classification      string                 `json:"classification"`
	ClassificationLabel string                 `json:"classificationLabel"`
	Assessment          kantei.Assessment      `json:"assessment"`
	Timestamp           string                 `json:"timestamp"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status     string `json:"status"`
	Dictionary int    `json:"dictionary"`
	Timestamp  string `json:"timestamp"`
}

func characterResponses(details []service.CharacterDetail) []CharacterResponse {
	out := make([]CharacterResponse, len(details))
	for i, d := range details {
		out[i] = CharacterResponse{
			Position: d.Position,
			Part:     string(d.Part),
			Glyph:    d.Glyph,
			Strokes:  d.Strokes,
			Reading:  d.Reading,
			Element:  string(d.Element),
			Polarity: string(d.Polarity),
			Source:   string(d.Source),
		}
	}
	return out
}

func kakusuToResponse(r *service.KakusuResult, ts string) KakusuResponse {
	return KakusuResponse{
		Sei:        r.Name.SurnameText(),
		Mei:        r.Name.GivenText(),
		Characters: characterResponses(r.Characters),
		Counts:     r.Counts,
		Timestamp:  ts,
	}
}

func kanteiToResponse(a *service.Analysis, ts string) KanteiResponse {
	res := a.Result
	return KanteiResponse{
		Sei:                 a.Name.SurnameText(),
		Mei:                 a.Name.GivenText(),
		Categories:          res.Categories,
		Score:               res.TotalScore,
		Grade:               string(res.Grade),
		Classification:      string(res.Classification),
		ClassificationLabel: res.Classification.Label(),
		Assessment:          res.Assessment,
		Timestamp:           ts,
	}
}

func analysisToResponse(a *service.Analysis, ts string) AnalysisResponse {
	res := a.Result
	return AnalysisResponse{
		AnalysisID: a.ID.String(),
		Sei:        a.Name.SurnameText(),
		Mei:        a.Name.GivenText(),
		Characters: characterResponses(a.Characters),
		Counts:     res.Counts,
		Fortunes:   res.Fortune.Counts,
		Judgments: JudgmentsResponse{
			Polarity: res.Polarity,
			Element:  res.Element,
			Special:  res.Special,
			Taboo:    res.Taboo,
		},
		Categories:          res.Categories,
		Score:               res.TotalScore,
		Grade:               string(res.Grade),
		Classification:      string(res.Classification),
		ClassificationLabel: res.Classification.Label(),
		Assessment:          res.Assessment,
		Timestamp:           ts,
	}
}
