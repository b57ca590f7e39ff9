package kantei

type glyphSet map[string]struct{}

func newGlyphSet(glyphs string) glyphSet {
	set := make(glyphSet)
	for _, r := range glyphs {
		set[string(r)] = struct{}{}
	}
	return set
}

func (s glyphSet) contains(glyph string) bool {
	_, ok := s[glyph]
	return ok
}

// Character sets for the taboo checks.
var (
	separableGlyphs = newGlyphSet("川林明朋好妙村相和加知伸休時順則詩語")

	animalGlyphs = newGlyphSet("犬猫馬牛虎熊鹿猿狐狸龍竜鶴亀鳥羊豚鷹蛇虫兎鼠狼")

	fishGlyphs = newGlyphSet("魚鯉鮎鯛鮫鯨鰻鮭鱒鰯鯖鮪")

	plantGlyphs = newGlyphSet("花草菊梅桜竹柳桃杉蘭葉芽萩椿菜蓮")

	mineralGlyphs = newGlyphSet("金銀銅鉄玉石岩鉱鋼珠宝錦")

	heavenlyAidGlyphs = newGlyphSet("天神仏佛聖仙祐佑霊")

	overHappyGlyphs = newGlyphSet("福喜幸寿慶吉祥禄")

	overNobleGlyphs = newGlyphSet("王皇帝君尊貴覇")

	vulgarGlyphs = newGlyphSet("糞屎尿淫痴屁")

	calendarSignGlyphs = newGlyphSet("丑寅卯辰巳午未申酉戌亥甲乙丙丁戊己庚辛壬癸")

	contemptuousGlyphs = newGlyphSet("死殺病悪苦闇鬼毒貧狂凶呆愚")

	weatherGlyphs = newGlyphSet("雨雪雷霧嵐霜雲風虹霞露")

	genderNeutralGlyphs = newGlyphSet("薫翼渚忍瑞晶純望歩")
)
