package kantei

// SpecialCheck identifies a special Heaven/Earth combination.
type SpecialCheck string

const (
	CheckSumEqual  SpecialCheck = "sum_equal"  // 天地総同数
	CheckConflict  SpecialCheck = "conflict"   // 天地衝突
	CheckEqualEven SpecialCheck = "equal_even" // 天地同数・偶数
	CheckEqualOdd  SpecialCheck = "equal_odd"  // 天地同数・奇数
)

// NeutralSpecialScore is reported when no combination applies.
const NeutralSpecialScore = 50.0

// SpecialCheckResult is the outcome of one combination check.
type SpecialCheckResult struct {
	Check       SpecialCheck `json:"check"`
	Label       string       `json:"label"`
	Applies     bool         `json:"applies"`
	Score       int          `json:"score"`
	Description string       `json:"description"`
}

// SpecialResult collects all four checks for a Heaven/Earth pair.
type SpecialResult struct {
	Heaven  int                  `json:"heaven"`
	Earth   int                  `json:"earth"`
	Checks  []SpecialCheckResult `json:"checks"`
	Primary *SpecialCheckResult  `json:"primary,omitempty"`
	Score   float64              `json:"score"`
}

// Applied returns the checks that apply, in priority order.
func (r SpecialResult) Applied() []SpecialCheckResult {
	var applied []SpecialCheckResult
	for _, c := range r.Checks {
		if c.Applies {
			applied = append(applied, c)
		}
	}
	return applied
}

// Has reports whether the given check applies.
func (r SpecialResult) Has(check SpecialCheck) bool {
	for _, c := range r.Checks {
		if c.Check == check {
			return c.Applies
		}
	}
	return false
}

type rangeBucket struct {
	min, max int // max <= 0 means unbounded
	score    int
}

type adjustment struct {
	values map[int]struct{}
	delta  int
}

type combinationRule struct {
	check       SpecialCheck
	label       string
	description string
	base        int
	buckets     []rangeBucket
	adjustments []adjustment
	applies     func(heaven, earth int) bool
}

func set(values ...int) map[int]struct{} {
	m := make(map[int]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}

var hardshipNumbers = set(9, 19, 29, 39)

// combinationRules are listed in reporting priority order.
var combinationRules = []combinationRule{
	{
		check:       CheckSumEqual,
		label:       "天地総同数",
		description: "天格と地格が同じ数です。運気が一方向に強まり、吉凶ともに極端に出やすくなります。",
		base:        80,
		buckets: []rangeBucket{
			{1, 10, 75}, {11, 20, 80}, {21, 30, 85}, {31, 0, 70},
		},
		adjustments: []adjustment{
			{set(11, 15, 16, 21, 23, 24, 31, 32), 10},
			{set(10, 20, 22, 27, 28), -5},
			{hardshipNumbers, -15},
		},
		applies: func(heaven, earth int) bool {
			return heaven == earth && heaven > 0
		},
	},
	{
		check:       CheckEqualEven,
		label:       "天地同数・偶数",
		description: "天格と地格が同じ偶数です。安定はしますが、変化への対応力に欠けることがあります。",
		base:        60,
		buckets: []rangeBucket{
			{2, 10, 55}, {12, 20, 65}, {22, 30, 70}, {32, 0, 55},
		},
		adjustments: []adjustment{
			{set(16, 24, 32, 48), 10},
			{set(10, 20, 34, 44), -5},
		},
		applies: func(heaven, earth int) bool {
			return heaven == earth && heaven > 0 && heaven%2 == 0
		},
	},
	{
		check:       CheckEqualOdd,
		label:       "天地同数・奇数",
		description: "天格と地格が同じ奇数です。勢いが強い反面、浮き沈みが大きくなりがちです。",
		base:        55,
		buckets: []rangeBucket{
			{1, 9, 50}, {11, 19, 60}, {21, 29, 65}, {31, 0, 45},
		},
		adjustments: []adjustment{
			{set(11, 15, 21, 23, 31, 41), 10},
			{set(27, 43), -5},
			{hardshipNumbers, -15},
		},
		applies: func(heaven, earth int) bool {
			return heaven == earth && heaven > 0 && heaven%2 == 1
		},
	},
}

type countPair struct {
	heaven, earth int
}

const conflictBaseScore = 25

// conflictPairs are ordered (Heaven, Earth) pairs.
var conflictPairs = func() map[countPair]struct{} {
	pairs := make(map[countPair]struct{})
	hardship := []int{9, 19, 29}
	for _, h := range hardship {
		for _, e := range hardship {
			pairs[countPair{h, e}] = struct{}{}
		}
	}
	for _, p := range [][2]int{{3, 5}, {3, 9}, {5, 9}, {3, 19}, {5, 19}, {13, 15}} {
		pairs[countPair{p[0], p[1]}] = struct{}{}
		pairs[countPair{p[1], p[0]}] = struct{}{}
	}
	return pairs
}()

var strongConflictScores = map[countPair]int{
	{9, 9}:   5,
	{19, 19}: 8,
	{29, 29}: 10,
	{9, 19}:  6,
	{19, 9}:  6,
	{9, 29}:  7,
	{29, 9}:  7,
	{19, 29}: 12,
	{29, 19}: 12,
}

// JudgeSpecial tests a Heaven/Earth pair against every special combination.
// Negative counts are normalised with their absolute value. All checks run;
// the score is the mean of those that apply, or NeutralSpecialScore.
func JudgeSpecial(heaven, earth int) SpecialResult {
	heaven, earth = abs(heaven), abs(earth)

	checks := make([]SpecialCheckResult, 0, len(combinationRules)+1)
	checks = append(checks, evaluateCombination(combinationRules[0], heaven, earth))
	checks = append(checks, evaluateConflict(heaven, earth))
	for _, rule := range combinationRules[1:] {
		checks = append(checks, evaluateCombination(rule, heaven, earth))
	}

	result := SpecialResult{Heaven: heaven, Earth: earth, Checks: checks, Score: NeutralSpecialScore}

	var sum, n int
	for i := range checks {
		if !checks[i].Applies {
			continue
		}
		if result.Primary == nil {
			primary := checks[i]
			result.Primary = &primary
		}
		sum += checks[i].Score
		n++
	}
	if n > 0 {
		result.Score = float64(sum) / float64(n)
	}

	return result
}

func evaluateCombination(rule combinationRule, heaven, earth int) SpecialCheckResult {
	result := SpecialCheckResult{Check: rule.check, Label: rule.label}
	if !rule.applies(heaven, earth) {
		return result
	}

	score := rule.base
	for _, b := range rule.buckets {
		if heaven >= b.min && (b.max <= 0 || heaven <= b.max) {
			score = b.score
			break
		}
	}
	for _, adj := range rule.adjustments {
		if _, ok := adj.values[heaven]; ok {
			score += adj.delta
		}
	}

	result.Applies = true
	result.Score = clampInt(score, 0, 100)
	result.Description = rule.description
	return result
}

func evaluateConflict(heaven, earth int) SpecialCheckResult {
	result := SpecialCheckResult{Check: CheckConflict, Label: "天地衝突"}
	pair := countPair{heaven, earth}
	if _, ok := conflictPairs[pair]; !ok {
		return result
	}

	score := conflictBaseScore
	description := "天格と地格が衝突する組み合わせです。家庭や対人面での摩擦に注意が必要です。"
	if strong, ok := strongConflictScores[pair]; ok {
		score = strong
		description = "天格と地格が強く衝突する組み合わせです。急な変化や試練に見舞われやすい配置です。"
	}

	result.Applies = true
	result.Score = clampInt(score, 0, 100)
	result.Description = description
	return result
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
