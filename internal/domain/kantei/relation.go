package kantei

import (
	"github.com/phrazzld/seimei-api/internal/domain"
)

// Relation is the interaction between two elements.
type Relation string

const (
	RelationSame        Relation = "same"        // 比和
	RelationGenerative  Relation = "generative"  // 相生
	RelationDestructive Relation = "destructive" // 相克
)

// Kanji returns the traditional label for the relation.
func (r Relation) Kanji() string {
	switch r {
	case RelationSame:
		return "比和"
	case RelationGenerative:
		return "相生"
	case RelationDestructive:
		return "相克"
	default:
		return ""
	}
}

// Impact grades how strongly a relation colours the reading.
type Impact string

const (
	ImpactStrong   Impact = "strong"
	ImpactModerate Impact = "moderate"
	ImpactWeak     Impact = "weak"
)

// Relation scores
const (
	SameRelationScore        = 75
	GenerativeRelationScore  = 85
	DestructiveRelationScore = 60
)

// RelationResult is the outcome of relating two elements.
type RelationResult struct {
	From     domain.Element `json:"from"`
	To       domain.Element `json:"to"`
	Relation Relation       `json:"relation"`
	Score    int            `json:"score"`
	Impact   Impact         `json:"impact"`
}

type elementPair struct {
	a, b domain.Element
}

// generates maps each element to the element it produces.
var generates = map[domain.Element]domain.Element{
	domain.ElementWood:  domain.ElementFire,
	domain.ElementFire:  domain.ElementEarth,
	domain.ElementEarth: domain.ElementMetal,
	domain.ElementMetal: domain.ElementWater,
	domain.ElementWater: domain.ElementWood,
}

// overcomes maps each element to the element it destroys.
var overcomes = map[domain.Element]domain.Element{
	domain.ElementWood:  domain.ElementEarth,
	domain.ElementEarth: domain.ElementWater,
	domain.ElementWater: domain.ElementFire,
	domain.ElementFire:  domain.ElementMetal,
	domain.ElementMetal: domain.ElementWood,
}

// strongPairs are unordered; both orientations are stored.
var strongPairs = map[elementPair]struct{}{
	{domain.ElementFire, domain.ElementMetal}: {},
	{domain.ElementMetal, domain.ElementFire}: {},
	{domain.ElementWater, domain.ElementFire}: {},
	{domain.ElementFire, domain.ElementWater}: {},
	{domain.ElementWood, domain.ElementEarth}: {},
	{domain.ElementEarth, domain.ElementWood}: {},
}

// Relate classifies the relation between a and b. The check is
// order-independent. An error is returned only when one of the elements is
// not one of the five phases.
func Relate(a, b domain.Element) (RelationResult, error) {
	result := RelationResult{From: a, To: b, Impact: ImpactModerate}

	if !a.Valid() || !b.Valid() {
		return RelationResult{}, &domain.UnknownElementPairError{A: a, B: b}
	}

	switch {
	case a == b:
		result.Relation = RelationSame
		result.Score = SameRelationScore
	case generates[a] == b || generates[b] == a:
		result.Relation = RelationGenerative
		result.Score = GenerativeRelationScore
	case overcomes[a] == b || overcomes[b] == a:
		result.Relation = RelationDestructive
		result.Score = DestructiveRelationScore
		if _, ok := strongPairs[elementPair{a, b}]; ok {
			result.Impact = ImpactStrong
		}
	default:
		return RelationResult{}, &domain.UnknownElementPairError{A: a, B: b}
	}

	return result, nil
}

// BalanceScore scores the spread of elements across a name by the number of
// distinct elements present.
func BalanceScore(elements []domain.Element) int {
	switch distinctElements(elements) {
	case 0:
		return 0
	case 1:
		return 40
	case 2:
		return 65
	case 3:
		return 80
	case 4:
		return 90
	default:
		return 100
	}
}

// ElementResult is the element category judgment for a whole name.
type ElementResult struct {
	Primary          RelationResult   `json:"primary"`
	Elements         []domain.Element `json:"elements"`
	DistinctElements int              `json:"distinctElements"`
	BalanceScore     int              `json:"balanceScore"`
	Score            float64          `json:"score"`
}

// JudgeElements relates the Personality element to the Earth element and
// scores the balance of elements over every character. The category score is
// the mean of the two.
func JudgeElements(name domain.Name) (ElementResult, error) {
	primary, err := Relate(
		domain.ElementOf(name.Personality()),
		domain.ElementOf(name.Earth()),
	)
	if err != nil {
		return ElementResult{}, err
	}

	elements := name.Elements()
	balance := BalanceScore(elements)

	return ElementResult{
		Primary:          primary,
		Elements:         elements,
		DistinctElements: distinctElements(elements),
		BalanceScore:     balance,
		Score:            float64(primary.Score+balance) / 2,
	}, nil
}

func distinctElements(elements []domain.Element) int {
	seen := make(map[domain.Element]struct{}, len(elements))
	for _, e := range elements {
		seen[e] = struct{}{}
	}
	return len(seen)
}
