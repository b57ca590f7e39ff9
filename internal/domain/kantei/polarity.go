package kantei

import (
	"strings"

	"github.com/phrazzld/seimei-api/internal/domain"
)

// PolarityPattern identifies one of the structural yin-yang patterns.
type PolarityPattern string

const (
	PatternShibari         PolarityPattern = "shibari"          // 縛り
	PatternOhbasami        PolarityPattern = "ohbasami"         // 大挟み
	PatternNijuBasami      PolarityPattern = "niju_basami"      // 二重挟み
	PatternChudan          PolarityPattern = "chudan"           // 中断
	PatternHanInyou        PolarityPattern = "han_inyou"        // 善良
	PatternSiroKatayori    PolarityPattern = "siro_katayori"    // 白偏り
	PatternKuroKatayori    PolarityPattern = "kuro_katayori"    // 黒偏り
	PatternUeMakinaoshi    PolarityPattern = "ue_makinaoshi"    // 上蒔き直し
	PatternShitaMakinaoshi PolarityPattern = "shita_makinaoshi" // 下蒔き直し
)

// NeutralPolarityScore is reported when no pattern is detected.
const NeutralPolarityScore = 80.0

const (
	katayoriThreshold    = 0.7
	makinaoshiThreshold  = 0.6
	makinaoshiMinLength  = 4
	katayoriFloor        = 20.0
	katayoriSlope        = 160.0
	alternatingMinLength = 2
)

// PatternResult is the outcome of a single detector.
type PatternResult struct {
	Pattern  PolarityPattern `json:"pattern"`
	Label    string          `json:"label"`
	Detected bool            `json:"detected"`
	Score    float64         `json:"score"`
	Advice   string          `json:"advice"`
}

// PolarityResult collects every detector outcome for a name.
type PolarityResult struct {
	Sequence []domain.Polarity `json:"sequence"`
	Notation string            `json:"notation"`
	Patterns []PatternResult   `json:"patterns"`
	Score    float64           `json:"score"`
}

// Detected returns only the detected patterns, in rule order.
func (r PolarityResult) Detected() []PatternResult {
	var detected []PatternResult
	for _, p := range r.Patterns {
		if p.Detected {
			detected = append(detected, p)
		}
	}
	return detected
}

// Has reports whether the given pattern was detected.
func (r PolarityResult) Has(pattern PolarityPattern) bool {
	for _, p := range r.Patterns {
		if p.Pattern == pattern {
			return p.Detected
		}
	}
	return false
}

type polarityInput struct {
	seq     []domain.Polarity
	surname []domain.Polarity
	given   []domain.Polarity
}

type polarityRule struct {
	pattern PolarityPattern
	label   string
	advice  string
	detect  func(in polarityInput) (bool, float64)
}

func fixed(score float64, pred func(in polarityInput) bool) func(in polarityInput) (bool, float64) {
	return func(in polarityInput) (bool, float64) {
		if pred(in) {
			return true, score
		}
		return false, 0
	}
}

// polarityRules is evaluated in full for every name. Rules may co-fire.
var polarityRules = []polarityRule{
	{
		pattern: PatternShibari,
		label:   "縛り",
		advice:  "陰陽が互いに挟み合い、動きが縛られやすい配列です。周囲との調和を意識しましょう。",
		detect: fixed(30, func(in polarityInput) bool {
			return anyWindow(in.seq, 3, func(w []domain.Polarity) bool {
				return w[0] == w[2] && w[0] != w[1]
			})
		}),
	},
	{
		pattern: PatternOhbasami,
		label:   "大挟み",
		advice:  "中央が両端に挟まれる配列です。板挟みになりやすいため、決断を先送りしないことが大切です。",
		detect: fixed(40, func(in polarityInput) bool {
			return anyWindow(in.seq, 3, func(w []domain.Polarity) bool {
				return w[0] == w[2] && w[1] != w[0]
			})
		}),
	},
	{
		pattern: PatternNijuBasami,
		label:   "二重挟み",
		advice:  "陰が二重に挟まれる配列です。気苦労を抱え込みやすいので、早めに相談する習慣を持ちましょう。",
		detect: fixed(25, func(in polarityInput) bool {
			return anyWindow(in.seq, 4, func(w []domain.Polarity) bool {
				return w[0] == domain.PolarityYang &&
					w[1] == domain.PolarityYin &&
					w[2] == domain.PolarityYin &&
					w[3] == domain.PolarityYang
			})
		}),
	},
	{
		pattern: PatternChudan,
		label:   "中断",
		advice:  "姓と名で陰陽がきれいに分断されています。物事が途中で途切れやすいため、継続を心がけましょう。",
		detect: fixed(35, func(in polarityInput) bool {
			return (all(in.surname, domain.PolarityYang) && all(in.given, domain.PolarityYin)) ||
				(all(in.surname, domain.PolarityYin) && all(in.given, domain.PolarityYang))
		}),
	},
	{
		pattern: PatternHanInyou,
		label:   "善良",
		advice:  "陰陽が交互に並ぶ理想的な配列です。",
		detect: fixed(90, func(in polarityInput) bool {
			if len(in.seq) < alternatingMinLength {
				return false
			}
			for i := 1; i < len(in.seq); i++ {
				if in.seq[i] == in.seq[i-1] {
					return false
				}
			}
			return true
		}),
	},
	{
		pattern: PatternSiroKatayori,
		label:   "白偏り",
		advice:  "陽に偏った配列です。勢いはありますが、独りよがりにならないよう注意しましょう。",
		detect: func(in polarityInput) (bool, float64) {
			return katayori(ratio(in.seq, domain.PolarityYang))
		},
	},
	{
		pattern: PatternKuroKatayori,
		label:   "黒偏り",
		advice:  "陰に偏った配列です。慎重さは長所ですが、消極的になりすぎないようにしましょう。",
		detect: func(in polarityInput) (bool, float64) {
			return katayori(ratio(in.seq, domain.PolarityYin))
		},
	},
	{
		pattern: PatternUeMakinaoshi,
		label:   "上蒔き直し",
		advice:  "前半が陽、後半が陰に傾く配列です。若いうちの勢いを後半まで保つ工夫が必要です。",
		detect: fixed(45, func(in polarityInput) bool {
			return makinaoshi(in.seq, domain.PolarityYang, domain.PolarityYin)
		}),
	},
	{
		pattern: PatternShitaMakinaoshi,
		label:   "下蒔き直し",
		advice:  "前半が陰、後半が陽に傾く配列です。晩成型で、努力が後になって実を結びます。",
		detect: fixed(75, func(in polarityInput) bool {
			return makinaoshi(in.seq, domain.PolarityYin, domain.PolarityYang)
		}),
	},
}

// JudgePolarity runs every polarity detector over the concatenated
// surname and given-name sequence. The score is the mean of the detected
// pattern scores, or NeutralPolarityScore when nothing is detected.
func JudgePolarity(surname, given []domain.Polarity) PolarityResult {
	seq := make([]domain.Polarity, 0, len(surname)+len(given))
	seq = append(seq, surname...)
	seq = append(seq, given...)

	in := polarityInput{seq: seq, surname: surname, given: given}

	patterns := make([]PatternResult, 0, len(polarityRules))
	var sum float64
	var detected int
	for _, rule := range polarityRules {
		ok, score := rule.detect(in)
		result := PatternResult{
			Pattern:  rule.pattern,
			Label:    rule.label,
			Detected: ok,
		}
		if ok {
			result.Score = score
			result.Advice = rule.advice
			sum += score
			detected++
		}
		patterns = append(patterns, result)
	}

	score := NeutralPolarityScore
	if detected > 0 {
		score = sum / float64(detected)
	}

	return PolarityResult{
		Sequence: seq,
		Notation: polarityNotation(seq),
		Patterns: patterns,
		Score:    score,
	}
}

func polarityNotation(seq []domain.Polarity) string {
	var b strings.Builder
	for _, p := range seq {
		b.WriteString(p.Symbol())
	}
	return b.String()
}

func anyWindow(seq []domain.Polarity, size int, pred func([]domain.Polarity) bool) bool {
	for i := 0; i+size <= len(seq); i++ {
		if pred(seq[i : i+size]) {
			return true
		}
	}
	return false
}

func all(seq []domain.Polarity, p domain.Polarity) bool {
	if len(seq) == 0 {
		return false
	}
	for _, v := range seq {
		if v != p {
			return false
		}
	}
	return true
}

func ratio(seq []domain.Polarity, p domain.Polarity) float64 {
	if len(seq) == 0 {
		return 0
	}
	var n int
	for _, v := range seq {
		if v == p {
			n++
		}
	}
	return float64(n) / float64(len(seq))
}

func katayori(r float64) (bool, float64) {
	if r < katayoriThreshold {
		return false, 0
	}
	score := 100 - (r-0.5)*katayoriSlope
	if score < katayoriFloor {
		score = katayoriFloor
	}
	return true, score
}

// makinaoshi splits the sequence as seq[:n/2] and seq[n/2:].
func makinaoshi(seq []domain.Polarity, first, second domain.Polarity) bool {
	if len(seq) < makinaoshiMinLength {
		return false
	}
	half := len(seq) / 2
	return ratio(seq[:half], first) >= makinaoshiThreshold &&
		ratio(seq[half:], second) >= makinaoshiThreshold
}
