package kantei

import (
	"fmt"
)

// Assessment is the textual reading assembled from the category results.
type Assessment struct {
	Summary         string   `json:"summary"`
	Strengths       []string `json:"strengths"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

const lowPolarityScore = 50

func buildAssessment(r *ScoreResult) Assessment {
	a := Assessment{
		Summary: fmt.Sprintf("総合評価は%d点（%s評価）、%sです。",
			r.TotalScore, r.Grade, r.Classification.Label()),
		Strengths:       []string{},
		Issues:          []string{},
		Recommendations: []string{},
	}

	// polarity
	for _, p := range r.Polarity.Detected() {
		if p.Score >= 70 {
			a.Strengths = append(a.Strengths, fmt.Sprintf("陰陽配列: %s。%s", p.Label, p.Advice))
		} else {
			a.Issues = append(a.Issues, fmt.Sprintf("陰陽配列: %s。%s", p.Label, p.Advice))
		}
	}
	if len(r.Polarity.Detected()) == 0 {
		a.Strengths = append(a.Strengths, "陰陽の配列に偏りや挟みがなく穏やかです。")
	}

	// element
	primary := r.Element.Primary
	switch primary.Relation {
	case RelationGenerative:
		a.Strengths = append(a.Strengths, fmt.Sprintf("人格（%s）と地格（%s）が相生の関係で、互いを高め合います。",
			primary.From.Kanji(), primary.To.Kanji()))
	case RelationSame:
		a.Strengths = append(a.Strengths, fmt.Sprintf("人格と地格が同じ%sの比和で、安定感があります。", primary.From.Kanji()))
	case RelationDestructive:
		msg := fmt.Sprintf("人格（%s）と地格（%s）が相克の関係です。", primary.From.Kanji(), primary.To.Kanji())
		if primary.Impact == ImpactStrong {
			msg += "影響が強く出やすい組み合わせです。"
		}
		a.Issues = append(a.Issues, msg)
	}
	if r.Element.BalanceScore >= 80 {
		a.Strengths = append(a.Strengths, fmt.Sprintf("五行が%d種類そろい、バランスが良好です。", r.Element.DistinctElements))
	} else if r.Element.DistinctElements <= 2 {
		a.Issues = append(a.Issues, fmt.Sprintf("五行が%d種類に偏っています。", r.Element.DistinctElements))
	}

	// fortune
	for _, c := range r.Fortune.Counts {
		switch c.Fortune.Grade {
		case GradeGreatLuck:
			a.Strengths = append(a.Strengths, fmt.Sprintf("%s%d画は大吉の「%s」です。", c.Label, c.Strokes, c.Fortune.Title))
		case GradeMisfortune, GradeGreatMisfortune:
			a.Issues = append(a.Issues, fmt.Sprintf("%s%d画は%sの「%s」です。",
				c.Label, c.Strokes, c.Fortune.Grade.Kanji(), c.Fortune.Title))
		}
	}

	// special
	for _, c := range r.Special.Applied() {
		if c.Check == CheckConflict || c.Score < 50 {
			a.Issues = append(a.Issues, fmt.Sprintf("%s: %s", c.Label, c.Description))
		} else if c.Score >= 80 {
			a.Strengths = append(a.Strengths, fmt.Sprintf("%s: %s", c.Label, c.Description))
		}
	}

	// taboo
	for _, issue := range r.Taboo.Issues {
		a.Issues = append(a.Issues, fmt.Sprintf("禁忌（%s）: %s", issue.Label, issue.Description))
	}
	if len(r.Taboo.Issues) == 0 {
		a.Strengths = append(a.Strengths, "禁忌に該当する文字はありません。")
	}

	a.Recommendations = recommendations(r)
	return a
}

func recommendations(r *ScoreResult) []string {
	recs := make([]string, 0, 4)

	switch r.Classification {
	case ClassExcellentName:
		recs = append(recs, "非常に優れた名前です。自信を持って名乗りましょう。")
	case ClassGoodName:
		recs = append(recs, "良い名前です。気になる点があれば部分的な見直しで更に良くなります。")
	case ClassAverageName:
		recs = append(recs, "平均的な名前です。下記の点を改善すると運勢が安定します。")
	default:
		recs = append(recs, "課題の多い名前です。改名や通称・雅号の使用を検討してください。")
	}

	if len(r.Taboo.Issues) > 0 {
		recs = append(recs, "禁忌に該当する文字を、意味の穏やかな別の字に置き換えることを検討してください。")
	}
	if r.Special.Has(CheckConflict) {
		recs = append(recs, "天地衝突を避けるため、名の画数を調整することを検討してください。")
	}
	if r.Element.Primary.Relation == RelationDestructive {
		recs = append(recs, "人格と地格の五行が相生になる画数の組み合わせを検討してください。")
	}
	if r.Polarity.Score < lowPolarityScore {
		recs = append(recs, "奇数画と偶数画の並びを整え、陰陽の配列を改善してください。")
	}

	return recs
}
