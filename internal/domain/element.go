package domain

// Element is one of the five phases (五行) derived from a stroke count.
type Element string

// The five elements, in generative order.
const (
	ElementWood  Element = "wood"
	ElementFire  Element = "fire"
	ElementEarth Element = "earth"
	ElementMetal Element = "metal"
	ElementWater Element = "water"
)

var elementKanji = map[Element]string{
	ElementWood:  "木",
	ElementFire:  "火",
	ElementEarth: "土",
	ElementMetal: "金",
	ElementWater: "水",
}

// AllElements returns the five elements in generative order.
func AllElements() []Element {
	return []Element{ElementWood, ElementFire, ElementEarth, ElementMetal, ElementWater}
}

// ElementOf buckets the last digit of a stroke count in pairs:
// {1,2} wood, {3,4} fire, {5,6} earth, {7,8} metal, {9,0} water.
func ElementOf(strokes int) Element {
	switch lastDigit(strokes) {
	case 1, 2:
		return ElementWood
	case 3, 4:
		return ElementFire
	case 5, 6:
		return ElementEarth
	case 7, 8:
		return ElementMetal
	default:
		return ElementWater
	}
}

// Valid reports whether e is one of the five elements.
func (e Element) Valid() bool {
	_, ok := elementKanji[e]
	return ok
}

// Kanji returns the single-character name of the element.
func (e Element) Kanji() string {
	return elementKanji[e]
}

// Polarity is the yin-yang attribute (陰陽) of a stroke count.
type Polarity string

// Polarity values.
const (
	PolarityYang Polarity = "yang"
	PolarityYin  Polarity = "yin"
)

// PolarityOf returns Yang for odd stroke counts and Yin for even ones.
func PolarityOf(strokes int) Polarity {
	if strokes%2 != 0 {
		return PolarityYang
	}
	return PolarityYin
}

// Symbol returns ○ for Yang and ● for Yin, the notation used in printed
// polarity charts.
func (p Polarity) Symbol() string {
	if p == PolarityYang {
		return "○"
	}
	return "●"
}

func lastDigit(n int) int {
	d := n % 10
	if d < 0 {
		d = -d
	}
	return d
}
