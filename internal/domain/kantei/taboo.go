package kantei

import (
	"math"

	"github.com/phrazzld/seimei-api/internal/domain"
)

// TabooCheck identifies one taboo rule.
type TabooCheck string

const (
	TabooSeparable           TabooCheck = "SEPARABLE"
	TabooSingleCharacter     TabooCheck = "SINGLE_CHARACTER"
	TabooPersonalityHardship TabooCheck = "PERSONALITY_HARDSHIP"
	TabooEarthHardship       TabooCheck = "EARTH_HARDSHIP"
	TabooAnimal              TabooCheck = "ANIMAL"
	TabooFish                TabooCheck = "FISH"
	TabooPlant               TabooCheck = "PLANT"
	TabooMineral             TabooCheck = "MINERAL"
	TabooHeavenlyAid         TabooCheck = "HEAVENLY_AID"
	TabooOverHappy           TabooCheck = "OVER_HAPPY"
	TabooOverNoble           TabooCheck = "OVER_NOBLE"
	TabooVulgar              TabooCheck = "VULGAR"
	TabooCalendarSign        TabooCheck = "CALENDAR_SIGN"
	TabooContemptuous        TabooCheck = "CONTEMPTUOUS"
	TabooWeather             TabooCheck = "WEATHER"
	TabooGenderNeutral       TabooCheck = "GENDER_NEUTRAL"
)

// Severity weights a taboo issue.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// BasePenalty returns the penalty for a single match at this severity.
func (s Severity) BasePenalty() int {
	switch s {
	case SeverityCritical:
		return 25
	case SeverityHigh:
		return 20
	case SeverityMedium:
		return 15
	case SeverityLow:
		return 10
	default:
		return 0
	}
}

// TabooGrade buckets the taboo score.
type TabooGrade string

const (
	TabooGradeExcellent TabooGrade = "excellent"
	TabooGradeGood      TabooGrade = "good"
	TabooGradeFair      TabooGrade = "fair"
	TabooGradePoor      TabooGrade = "poor"
)

// DefaultTabooFairThreshold is the lowest score graded fair.
const DefaultTabooFairThreshold = 50

const (
	maxPenaltyMultiplier = 2.0
	perMatchMultiplier   = 0.3
)

// Issue is a single taboo finding.
type Issue struct {
	Type         TabooCheck `json:"type"`
	Label        string     `json:"label"`
	Severity     Severity   `json:"severity"`
	PenaltyScore int        `json:"penaltyScore"`
	MatchedChars []string   `json:"matchedChars"`
	Description  string     `json:"description"`
}

// TabooOptions tunes the taboo judge. The zero value enables every check
// with the default fair threshold.
type TabooOptions struct {
	Disabled      map[TabooCheck]bool
	FairThreshold int
}

// TabooResult collects the taboo issues for a name.
type TabooResult struct {
	Issues       []Issue    `json:"issues"`
	TotalPenalty int        `json:"totalPenalty"`
	Score        int        `json:"score"`
	Grade        TabooGrade `json:"grade"`
}

// HasIssue reports whether a check produced an issue.
func (r TabooResult) HasIssue(check TabooCheck) bool {
	for _, issue := range r.Issues {
		if issue.Type == check {
			return true
		}
	}
	return false
}

// tabooMatch is a raw finding before the penalty is computed.
type tabooMatch struct {
	glyphs []string
	count  int
}

type tabooRule struct {
	check       TabooCheck
	label       string
	severity    Severity
	description string
	match       func(name domain.Name) (tabooMatch, bool)
}

// tabooRules are evaluated in this order.
var tabooRules = []tabooRule{
	{
		check:       TabooSeparable,
		label:       "分離名",
		severity:    SeverityCritical,
		description: "すべての文字が左右に分かれる構成です。家族や縁が離れやすいとされます。",
		match: func(name domain.Name) (tabooMatch, bool) {
			glyphs := glyphsOf(name.Characters())
			for _, g := range glyphs {
				if !separableGlyphs.contains(g) {
					return tabooMatch{}, false
				}
			}
			return tabooMatch{glyphs: glyphs, count: 1}, len(glyphs) > 0
		},
	},
	{
		check:       TabooSingleCharacter,
		label:       "一字名",
		severity:    SeverityHigh,
		description: "名が一文字です。運勢の支えが弱く、孤立しやすいとされます。",
		match: func(name domain.Name) (tabooMatch, bool) {
			given := name.Given()
			if len(given) != 1 {
				return tabooMatch{}, false
			}
			return tabooMatch{glyphs: glyphsOf(given), count: 1}, true
		},
	},
	{
		check:       TabooPersonalityHardship,
		label:       "人格凶数",
		severity:    SeverityHigh,
		description: "人格が9または19の凶数です。才能はあっても苦労を背負いやすい数です。",
		match: func(name domain.Name) (tabooMatch, bool) {
			return tabooMatch{count: 1}, isHardshipCount(name.Personality())
		},
	},
	{
		check:       TabooEarthHardship,
		label:       "地格凶数",
		severity:    SeverityHigh,
		description: "地格が9または19の凶数です。若年期に波乱が多くなりやすい数です。",
		match: func(name domain.Name) (tabooMatch, bool) {
			return tabooMatch{count: 1}, isHardshipCount(name.Earth())
		},
	},
	categoryRule(TabooAnimal, "動物の字", SeverityMedium, animalGlyphs,
		"動物を表す字が含まれています。品位を損なうとされ、名付けでは避けられます。"),
	categoryRule(TabooFish, "魚の字", SeverityMedium, fishGlyphs,
		"魚を表す字が含まれています。名付けには不向きとされます。"),
	categoryRule(TabooPlant, "植物の字", SeverityLow, plantGlyphs,
		"植物を表す字が含まれています。華やかですが、移ろいやすさを暗示するとされます。"),
	categoryRule(TabooMineral, "鉱物の字", SeverityLow, mineralGlyphs,
		"鉱物を表す字が含まれています。硬さが頑固さに通じるとされます。"),
	categoryRule(TabooHeavenlyAid, "神仏の字", SeverityHigh, heavenlyAidGlyphs,
		"神仏や天を表す字が含まれています。字の格が重すぎ、名前負けしやすいとされます。"),
	categoryRule(TabooOverHappy, "過度な吉字", SeverityMedium, overHappyGlyphs,
		"幸福を直接表す字が含まれています。願いが強すぎると逆に運を遠ざけるとされます。"),
	categoryRule(TabooOverNoble, "過度な尊字", SeverityHigh, overNobleGlyphs,
		"高貴さを表す字が含まれています。名前負けや高慢さにつながるとされます。"),
	categoryRule(TabooVulgar, "卑俗な字", SeverityCritical, vulgarGlyphs,
		"卑俗な意味を持つ字が含まれています。名付けには使用すべきではありません。"),
	categoryRule(TabooCalendarSign, "干支の字", SeverityLow, calendarSignGlyphs,
		"干支を表す字が含まれています。時の巡りに運勢が左右されやすいとされます。"),
	categoryRule(TabooContemptuous, "忌み字", SeverityCritical, contemptuousGlyphs,
		"不吉・侮蔑的な意味を持つ字が含まれています。名付けには使用すべきではありません。"),
	categoryRule(TabooWeather, "天候の字", SeverityMedium, weatherGlyphs,
		"天候を表す字が含まれています。気分や運勢の変わりやすさを暗示するとされます。"),
	categoryRule(TabooGenderNeutral, "中性的な字", SeverityLow, genderNeutralGlyphs,
		"性別の判別がつきにくい字が含まれています。読み間違いや誤解が生じることがあります。"),
}

// AllTabooChecks returns every check in evaluation order.
func AllTabooChecks() []TabooCheck {
	checks := make([]TabooCheck, len(tabooRules))
	for i, rule := range tabooRules {
		checks[i] = rule.check
	}
	return checks
}

// ParseTabooCheck resolves a check identifier.
func ParseTabooCheck(s string) (TabooCheck, bool) {
	for _, rule := range tabooRules {
		if string(rule.check) == s {
			return rule.check, true
		}
	}
	return "", false
}

// JudgeTaboo runs every enabled taboo check against the name.
func JudgeTaboo(name domain.Name, opts TabooOptions) TabooResult {
	fairThreshold := opts.FairThreshold
	if fairThreshold <= 0 {
		fairThreshold = DefaultTabooFairThreshold
	}

	issues := make([]Issue, 0)
	total := 0
	for _, rule := range tabooRules {
		if opts.Disabled[rule.check] {
			continue
		}
		m, ok := rule.match(name)
		if !ok {
			continue
		}
		penalty := Penalty(rule.severity, m.count)
		matched := m.glyphs
		if matched == nil {
			matched = []string{}
		}
		issues = append(issues, Issue{
			Type:         rule.check,
			Label:        rule.label,
			Severity:     rule.severity,
			PenaltyScore: penalty,
			MatchedChars: matched,
			Description:  rule.description,
		})
		total += penalty
	}

	score := 100 - total
	if score < 0 {
		score = 0
	}

	return TabooResult{
		Issues:       issues,
		TotalPenalty: total,
		Score:        score,
		Grade:        tabooGrade(score, fairThreshold),
	}
}

// Penalty scales a severity's base penalty by the number of matches,
// capped at twice the base.
func Penalty(severity Severity, matchCount int) int {
	if matchCount < 1 {
		matchCount = 1
	}
	multiplier := math.Min(1+perMatchMultiplier*float64(matchCount-1), maxPenaltyMultiplier)
	return int(math.Round(float64(severity.BasePenalty()) * multiplier))
}

func tabooGrade(score, fairThreshold int) TabooGrade {
	switch {
	case score >= 85:
		return TabooGradeExcellent
	case score >= 70:
		return TabooGradeGood
	case score >= fairThreshold:
		return TabooGradeFair
	default:
		return TabooGradePoor
	}
}

func categoryRule(check TabooCheck, label string, severity Severity, glyphs glyphSet, description string) tabooRule {
	return tabooRule{
		check:       check,
		label:       label,
		severity:    severity,
		description: description,
		match: func(name domain.Name) (tabooMatch, bool) {
			var matched []string
			seen := make(map[string]struct{})
			for _, c := range name.Characters() {
				g := c.Glyph()
				if _, dup := seen[g]; dup || !glyphs.contains(g) {
					continue
				}
				seen[g] = struct{}{}
				matched = append(matched, g)
			}
			return tabooMatch{glyphs: matched, count: len(matched)}, len(matched) > 0
		},
	}
}

func glyphsOf(chars []domain.Character) []string {
	glyphs := make([]string, len(chars))
	for i, c := range chars {
		glyphs[i] = c.Glyph()
	}
	return glyphs
}

func isHardshipCount(n int) bool {
	return n == 9 || n == 19
}
