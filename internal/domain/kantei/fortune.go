package kantei

import (
	"github.com/phrazzld/seimei-api/internal/domain"
)

// FortuneGrade classifies a stroke count.
type FortuneGrade string

const (
	GradeGreatLuck       FortuneGrade = "great_luck"
	GradeLuck            FortuneGrade = "luck"
	GradeHalfLuck        FortuneGrade = "half_luck"
	GradeNeutral         FortuneGrade = "neutral"
	GradeMisfortune      FortuneGrade = "misfortune"
	GradeGreatMisfortune FortuneGrade = "great_misfortune"
)

// BaseScore maps a grade onto the fortune category scale.
func (g FortuneGrade) BaseScore() int {
	switch g {
	case GradeGreatLuck:
		return 95
	case GradeLuck:
		return 80
	case GradeHalfLuck:
		return 65
	case GradeMisfortune:
		return 30
	case GradeGreatMisfortune:
		return 15
	default:
		return 50
	}
}

// Kanji returns the traditional label for the grade.
func (g FortuneGrade) Kanji() string {
	switch g {
	case GradeGreatLuck:
		return "大吉"
	case GradeLuck:
		return "吉"
	case GradeHalfLuck:
		return "半吉"
	case GradeMisfortune:
		return "凶"
	case GradeGreatMisfortune:
		return "大凶"
	default:
		return "平"
	}
}

// Auspicious reports whether the grade is half-luck or better.
func (g FortuneGrade) Auspicious() bool {
	return g == GradeGreatLuck || g == GradeLuck || g == GradeHalfLuck
}

// FortuneEntry is one row of the stroke-count fortune table.
type FortuneEntry struct {
	Number      int          `json:"number"`
	Grade       FortuneGrade `json:"grade"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
}

// fortuneCycle is the size of the fortune table; larger counts wrap.
const fortuneCycle = 81

var zeroFortune = FortuneEntry{
	Number:      0,
	Grade:       GradeNeutral,
	Title:       "無数",
	Description: "画数がありません。吉凶の判断対象外です。",
}

// LookupFortune returns the fortune entry for a stroke count. Counts above
// 81 wrap around the table; zero yields a neutral entry.
func LookupFortune(n int) (FortuneEntry, error) {
	if n < 0 {
		return FortuneEntry{}, &domain.InvalidStrokeCountError{StrokeCount: n}
	}
	if n == 0 {
		return zeroFortune, nil
	}

	index := n
	if index > fortuneCycle {
		index = n % fortuneCycle
		if index == 0 {
			index = fortuneCycle
		}
	}

	entry := fortuneTable[index-1]
	entry.Number = n
	return entry, nil
}

// CountFortune is the fortune for one of the classical aggregate counts.
type CountFortune struct {
	Count   string       `json:"count"`
	Label   string       `json:"label"`
	Strokes int          `json:"strokes"`
	Fortune FortuneEntry `json:"fortune"`
	Score   int          `json:"score"`
}

// FortuneResult is the fortune category judgment for a name.
type FortuneResult struct {
	Counts []CountFortune `json:"counts"`
	Score  float64        `json:"score"`
}

// JudgeFortunes looks up Heaven, Personality, Earth, Total and, when the
// name has one, Outer. The score is the mean base score of the lookups.
func JudgeFortunes(name domain.Name) (FortuneResult, error) {
	type source struct {
		key, label string
		strokes    int
	}
	sources := []source{
		{"heaven", "天格", name.Heaven()},
		{"personality", "人格", name.Personality()},
		{"earth", "地格", name.Earth()},
		{"total", "総格", name.Total()},
	}
	if name.HasOuter() {
		sources = append(sources, source{"outer", "外格", name.Outer()})
	}

	counts := make([]CountFortune, 0, len(sources))
	sum := 0
	for _, s := range sources {
		entry, err := LookupFortune(s.strokes)
		if err != nil {
			return FortuneResult{}, err
		}
		score := entry.Grade.BaseScore()
		counts = append(counts, CountFortune{
			Count:   s.key,
			Label:   s.label,
			Strokes: s.strokes,
			Fortune: entry,
			Score:   score,
		})
		sum += score
	}

	return FortuneResult{
		Counts: counts,
		Score:  float64(sum) / float64(len(counts)),
	}, nil
}
