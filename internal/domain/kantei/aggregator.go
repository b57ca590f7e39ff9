package kantei

import (
	"fmt"
	"math"

	"github.com/phrazzld/seimei-api/internal/domain"
)

// LetterGrade is the S..E grade of a total score.
type LetterGrade string

const (
	LetterS LetterGrade = "S"
	LetterA LetterGrade = "A"
	LetterB LetterGrade = "B"
	LetterC LetterGrade = "C"
	LetterD LetterGrade = "D"
	LetterE LetterGrade = "E"
)

// GradeFor maps a total score onto a letter grade.
func GradeFor(score int) LetterGrade {
	switch {
	case score >= 95:
		return LetterS
	case score >= 90:
		return LetterA
	case score >= 80:
		return LetterB
	case score >= 70:
		return LetterC
	case score >= 60:
		return LetterD
	default:
		return LetterE
	}
}

// Classification is the coarse verdict on a name.
type Classification string

const (
	ClassExcellentName   Classification = "excellent_name"
	ClassGoodName        Classification = "good_name"
	ClassAverageName     Classification = "average_name"
	ClassProblematicName Classification = "problematic_name"
)

// ClassificationFor maps a total score onto a classification.
func ClassificationFor(score int) Classification {
	switch {
	case score >= 90:
		return ClassExcellentName
	case score >= 70:
		return ClassGoodName
	case score >= 50:
		return ClassAverageName
	default:
		return ClassProblematicName
	}
}

// Label returns the Japanese label of the classification.
func (c Classification) Label() string {
	switch c {
	case ClassExcellentName:
		return "大変良い名前"
	case ClassGoodName:
		return "良い名前"
	case ClassAverageName:
		return "普通の名前"
	default:
		return "問題のある名前"
	}
}

// JudgmentResult is the shape shared by every category judgment.
type JudgmentResult struct {
	Category    Category `json:"category"`
	Name        string   `json:"name"`
	Applies     bool     `json:"applies"`
	RawScore    float64  `json:"rawScore"`
	Description string   `json:"description"`
}

// CategoryScore is a judgment with its weighting applied.
type CategoryScore struct {
	JudgmentResult
	NormalizedScore float64 `json:"normalizedScore"`
	Weight          float64 `json:"weight"`
	WeightedScore   float64 `json:"weightedScore"`
}

// ScoreResult is the complete outcome of scoring a name.
type ScoreResult struct {
	Counts         domain.Counts   `json:"counts"`
	Polarity       PolarityResult  `json:"polarity"`
	Element        ElementResult   `json:"element"`
	Fortune        FortuneResult   `json:"fortune"`
	Special        SpecialResult   `json:"special"`
	Taboo          TabooResult     `json:"taboo"`
	Categories     []CategoryScore `json:"categories"`
	TotalScore     int             `json:"totalScore"`
	Grade          LetterGrade     `json:"grade"`
	Classification Classification  `json:"classification"`
	Assessment     Assessment      `json:"assessment"`
}

// Category returns the score for one category.
func (r *ScoreResult) Category(c Category) (CategoryScore, bool) {
	for _, cs := range r.Categories {
		if cs.Category == c {
			return cs, true
		}
	}
	return CategoryScore{}, false
}

// Calculate runs every judge against the name and combines the results.
// A nil params uses the defaults. The name is re-validated before any judge
// runs, and a judge failure aborts the whole calculation.
func Calculate(name domain.Name, params *Params) (*ScoreResult, error) {
	if params == nil {
		params = NewDefaultParams()
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	surnamePolarity, givenPolarity := name.Polarities()
	polarity := JudgePolarity(surnamePolarity, givenPolarity)

	element, err := JudgeElements(name)
	if err != nil {
		return nil, fmt.Errorf("element judgment failed: %w", err)
	}

	fortune, err := JudgeFortunes(name)
	if err != nil {
		return nil, fmt.Errorf("fortune judgment failed: %w", err)
	}

	special := JudgeSpecial(name.Heaven(), name.Earth())
	taboo := JudgeTaboo(name, params.Taboo)

	judgments := []JudgmentResult{
		polarityJudgment(polarity),
		elementJudgment(element),
		fortuneJudgment(fortune),
		specialJudgment(special),
		tabooJudgment(taboo),
	}

	categories := make([]CategoryScore, len(judgments))
	var weighted float64
	for i, j := range judgments {
		weight := params.Weights.For(j.Category)
		normalized := clampFloat(j.RawScore, 0, 100)
		categories[i] = CategoryScore{
			JudgmentResult:  j,
			NormalizedScore: normalized,
			Weight:          weight,
			WeightedScore:   normalized * weight,
		}
		weighted += normalized * weight
	}

	total := TotalScore(weighted, params.Weights.Sum(), params.Normalization)

	result := &ScoreResult{
		Counts:         name.Counts(),
		Polarity:       polarity,
		Element:        element,
		Fortune:        fortune,
		Special:        special,
		Taboo:          taboo,
		Categories:     categories,
		TotalScore:     total,
		Grade:          GradeFor(total),
		Classification: ClassificationFor(total),
	}
	result.Assessment = buildAssessment(result)

	return result, nil
}

// TotalScore divides the weighted sum by the total weight and rounds it into
// the normalisation bounds. The mean is fixed to six decimals first so that
// scaling every weight by the same factor cannot change the rounded result.
func TotalScore(weightedSum, weightSum float64, n Normalization) int {
	if weightSum <= 0 {
		return n.MinScore
	}
	mean := math.Round(weightedSum/weightSum*1e6) / 1e6
	return clampInt(int(math.Round(mean)), n.MinScore, n.MaxScore)
}

func validateName(name domain.Name) error {
	if len(name.Surname()) == 0 {
		return domain.NewValidationError("sei", "must contain at least one character", nil)
	}
	if len(name.Given()) == 0 {
		return domain.NewValidationError("mei", "must contain at least one character", nil)
	}
	for _, c := range name.Characters() {
		if c.StrokeCount() < 0 {
			return &domain.InvalidStrokeCountError{Glyph: c.Glyph(), StrokeCount: c.StrokeCount()}
		}
	}
	return nil
}

func polarityJudgment(r PolarityResult) JudgmentResult {
	detected := r.Detected()
	description := "特筆すべき陰陽の配列はありません。"
	if len(detected) > 0 {
		description = detected[0].Label
		for _, p := range detected[1:] {
			description += "・" + p.Label
		}
		description += "の配列が見られます。"
	}
	return JudgmentResult{
		Category:    CategoryPolarity,
		Name:        CategoryPolarity.Label(),
		Applies:     len(detected) > 0,
		RawScore:    r.Score,
		Description: description,
	}
}

func elementJudgment(r ElementResult) JudgmentResult {
	return JudgmentResult{
		Category: CategoryElement,
		Name:     CategoryElement.Label(),
		Applies:  true,
		RawScore: r.Score,
		Description: fmt.Sprintf("人格「%s」と地格「%s」は%s、五行は%d種類です。",
			r.Primary.From.Kanji(), r.Primary.To.Kanji(), r.Primary.Relation.Kanji(), r.DistinctElements),
	}
}

func fortuneJudgment(r FortuneResult) JudgmentResult {
	description := ""
	for i, c := range r.Counts {
		if i > 0 {
			description += "、"
		}
		description += fmt.Sprintf("%s%d画（%s）", c.Label, c.Strokes, c.Fortune.Grade.Kanji())
	}
	return JudgmentResult{
		Category:    CategoryFortune,
		Name:        CategoryFortune.Label(),
		Applies:     true,
		RawScore:    r.Score,
		Description: description,
	}
}

func specialJudgment(r SpecialResult) JudgmentResult {
	description := "天格と地格に特殊な組み合わせはありません。"
	if r.Primary != nil {
		description = r.Primary.Description
	}
	return JudgmentResult{
		Category:    CategorySpecial,
		Name:        CategorySpecial.Label(),
		Applies:     r.Primary != nil,
		RawScore:    r.Score,
		Description: description,
	}
}

func tabooJudgment(r TabooResult) JudgmentResult {
	description := "禁忌に該当する文字はありません。"
	if len(r.Issues) > 0 {
		description = fmt.Sprintf("禁忌に%d件該当します（減点%d）。", len(r.Issues), r.TotalPenalty)
	}
	return JudgmentResult{
		Category:    CategoryTaboo,
		Name:        CategoryTaboo.Label(),
		Applies:     len(r.Issues) > 0,
		RawScore:    float64(r.Score),
		Description: description,
	}
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
