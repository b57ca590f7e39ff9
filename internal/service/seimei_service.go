package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/seimei-api/internal/domain"
	"github.com/phrazzld/seimei-api/internal/domain/kantei"
	"github.com/phrazzld/seimei-api/internal/platform/logger"
	"github.com/phrazzld/seimei-api/internal/platform/textutil"
	"github.com/phrazzld/seimei-api/internal/redact"
	"github.com/phrazzld/seimei-api/internal/store"
)

// MaxPartLength is the longest surname or given name accepted, in glyphs.
const MaxPartLength = 10

// IterationMark repeats the preceding character (佐々木).
const IterationMark = "々"

// StrokeSource records where a character's stroke count came from.
type StrokeSource string

const (
	SourceDictionary StrokeSource = "dictionary"
	SourceOverride   StrokeSource = "override"
	SourceRepeat     StrokeSource = "repeat"
)

// NamePart identifies the surname or the given name.
type NamePart string

const (
	PartSurname NamePart = "sei"
	PartGiven   NamePart = "mei"
)

// NameInput is a raw name as supplied by a caller.
type NameInput struct {
	Sei string
	Mei string
	// Strokes maps glyphs to caller-provided stroke counts that take
	// precedence over the dictionary.
	Strokes map[string]int
}

// AnalyzeInput is a name plus per-call scoring overrides.
type AnalyzeInput struct {
	NameInput
	Overrides kantei.Overrides
}

// CharacterDetail describes one resolved character.
type CharacterDetail struct {
	Position int             `json:"position"`
	Part     NamePart        `json:"part"`
	Glyph    string          `json:"glyph"`
	Strokes  int             `json:"strokes"`
	Reading  string          `json:"reading,omitempty"`
	Element  domain.Element  `json:"element"`
	Polarity domain.Polarity `json:"polarity"`
	Source   StrokeSource    `json:"source"`
}

// ResolvedName is a validated name with per-character provenance.
type ResolvedName struct {
	Name       domain.Name
	Characters []CharacterDetail
}

// KakusuResult holds the five classical counts of a name.
type KakusuResult struct {
	ResolvedName
	Counts domain.Counts
}

// Analysis is the complete scoring of one name.
type Analysis struct {
	ID uuid.UUID
	ResolvedName
	Result    *kantei.ScoreResult
	CreatedAt time.Time
}

// SeimeiService provides name resolution and scoring operations.
type SeimeiService interface {
	// Resolve normalizes the input and resolves every glyph to a stroke count.
	// Returns a *domain.ValidationError for empty or over-long parts, an
	// *UnknownCharacterError for glyphs without a stroke count, and a
	// *domain.InvalidStrokeCountError for negative overrides.
	Resolve(ctx context.Context, in NameInput) (*ResolvedName, error)

	// Kakusu resolves the name and computes its five counts.
	Kakusu(ctx context.Context, in NameInput) (*KakusuResult, error)

	// Analyze resolves and scores the name. Invalid overrides return an
	// error wrapping ErrInvalidOptions.
	Analyze(ctx context.Context, in AnalyzeInput) (*Analysis, error)
}

// seimeiServiceImpl implements the SeimeiService interface
type seimeiServiceImpl struct {
	chars  store.CharacterStore
	scorer kantei.Service
	logger *slog.Logger
	now    func() time.Time
}

// NewSeimeiService creates a new SeimeiService.
// It returns an error if any of the required dependencies are nil.
func NewSeimeiService(
	chars store.CharacterStore,
	scorer kantei.Service,
	logger *slog.Logger,
) (SeimeiService, error) {
	if chars == nil {
		return nil, domain.NewValidationError("chars", "cannot be nil", domain.ErrValidation)
	}
	if scorer == nil {
		return nil, domain.NewValidationError("scorer", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &seimeiServiceImpl{
		chars:  chars,
		scorer: scorer,
		logger: logger.With(slog.String("component", "seimei_service")),
		now:    time.Now,
	}, nil
}

// Resolve implements SeimeiService.Resolve
func (s *seimeiServiceImpl) Resolve(ctx context.Context, in NameInput) (*ResolvedName, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	sei, err := splitPart(PartSurname, in.Sei)
	if err != nil {
		return nil, err
	}
	mei, err := splitPart(PartGiven, in.Mei)
	if err != nil {
		return nil, err
	}

	overrides := make(map[string]int, len(in.Strokes))
	for glyph, n := range in.Strokes {
		key := textutil.NormalizeName(glyph)
		if n < 0 {
			return nil, &domain.InvalidStrokeCountError{Glyph: key, StrokeCount: n}
		}
		overrides[key] = n
	}

	r := resolver{ctx: ctx, chars: s.chars, overrides: overrides}
	surname := r.part(PartSurname, sei, 0)
	given := r.part(PartGiven, mei, len(sei))
	if r.err != nil {
		log.Error("dictionary lookup failed", slog.String("error", redact.Error(r.err)))
		return nil, NewSeimeiServiceError("resolve", "dictionary lookup failed", r.err)
	}
	if len(r.unknown) > 0 {
		log.Debug("name contains unknown characters", slog.Any("glyphs", r.unknown))
		return nil, &UnknownCharacterError{Glyphs: r.unknown}
	}

	name, err := domain.NewName(surname, given)
	if err != nil {
		return nil, err
	}

	return &ResolvedName{Name: name, Characters: r.details}, nil
}

// Kakusu implements SeimeiService.Kakusu
func (s *seimeiServiceImpl) Kakusu(ctx context.Context, in NameInput) (*KakusuResult, error) {
	resolved, err := s.Resolve(ctx, in)
	if err != nil {
		return nil, err
	}
	return &KakusuResult{ResolvedName: *resolved, Counts: resolved.Name.Counts()}, nil
}

// Analyze implements SeimeiService.Analyze
func (s *seimeiServiceImpl) Analyze(ctx context.Context, in AnalyzeInput) (*Analysis, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	base := s.scorer.Params()
	if err := base.Apply(in.Overrides).Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	resolved, err := s.Resolve(ctx, in.NameInput)
	if err != nil {
		return nil, err
	}

	result, err := s.scorer.CalculateWithOverrides(resolved.Name, in.Overrides)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return nil, err
		}
		log.Error("scoring failed",
			slog.String("error", redact.Error(err)),
			slog.String("sei", resolved.Name.SurnameText()),
			slog.String("mei", resolved.Name.GivenText()))
		return nil, NewSeimeiServiceError("analyze", "scoring failed", err)
	}

	analysis := &Analysis{
		ID:           uuid.New(),
		ResolvedName: *resolved,
		Result:       result,
		CreatedAt:    s.now().UTC(),
	}

	log.Debug("name analyzed",
		slog.String("analysis_id", analysis.ID.String()),
		slog.Int("total_score", result.TotalScore),
		slog.String("grade", string(result.Grade)))

	return analysis, nil
}

// splitPart normalizes one name part and splits it into glyphs.
func splitPart(part NamePart, raw string) ([]string, error) {
	glyphs := textutil.SplitGlyphs(textutil.NormalizeName(raw))
	if len(glyphs) == 0 {
		return nil, domain.NewValidationError(string(part), "is required", nil)
	}
	if len(glyphs) > MaxPartLength {
		return nil, domain.NewValidationError(string(part),
			fmt.Sprintf("must be at most %d characters", MaxPartLength), nil)
	}
	return glyphs, nil
}

// resolver accumulates lookups for one name so that every unknown glyph is
// reported at once.
type resolver struct {
	ctx       context.Context
	chars     store.CharacterStore
	overrides map[string]int

	details []CharacterDetail
	unknown []string
	err     error
}

func (r *resolver) part(part NamePart, glyphs []string, offset int) []domain.Character {
	out := make([]domain.Character, 0, len(glyphs))
	for i, glyph := range glyphs {
		c, source, ok := r.lookup(glyph, out)
		if !ok {
			continue
		}
		out = append(out, c)
		r.details = append(r.details, CharacterDetail{
			Position: offset + i,
			Part:     part,
			Glyph:    c.Glyph(),
			Strokes:  c.StrokeCount(),
			Reading:  c.Reading(),
			Element:  c.Element(),
			Polarity: c.Polarity(),
			Source:   source,
		})
	}
	return out
}

// lookup resolves a glyph: caller override first, then the iteration mark
// (which copies the preceding character of the same part), then the
// dictionary.
func (r *resolver) lookup(glyph string, prev []domain.Character) (domain.Character, StrokeSource, bool) {
	if r.err != nil {
		return domain.Character{}, "", false
	}

	if n, ok := r.overrides[glyph]; ok {
		c, err := domain.NewCharacter(glyph, n, "")
		if err != nil {
			r.err = err
			return domain.Character{}, "", false
		}
		return c, SourceOverride, true
	}

	if glyph == IterationMark && len(prev) > 0 {
		last := prev[len(prev)-1]
		c, err := domain.NewCharacter(glyph, last.StrokeCount(), last.Reading())
		if err != nil {
			r.err = err
			return domain.Character{}, "", false
		}
		return c, SourceRepeat, true
	}

	c, err := r.chars.GetByGlyph(r.ctx, glyph)
	if err != nil {
		if store.IsNotFoundError(err) {
			r.unknown = appendUnique(r.unknown, glyph)
		} else {
			r.err = err
		}
		return domain.Character{}, "", false
	}
	return c, SourceDictionary, true
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
