package kantei

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJudgeTabooSingleCharacterGivenName(t *testing.T) {
	t.Parallel()

	glyphs := []struct {
		glyph   string
		strokes int
	}{
		{"誠", 13}, {"翔", 12}, {"薫", 16}, {"犬", 4}, {"一", 1},
	}

	for _, g := range glyphs {
		name := makeName(t, "佐藤", []int{7, 18}, g.glyph, []int{g.strokes})
		result := JudgeTaboo(name, TabooOptions{})

		var single []Issue
		for _, issue := range result.Issues {
			if issue.Type == TabooSingleCharacter {
				single = append(single, issue)
			}
		}
		require.Len(t, single, 1, "given name %s", g.glyph)
		assert.Equal(t, SeverityHigh, single[0].Severity)
		assert.GreaterOrEqual(t, single[0].PenaltyScore, 20)
		assert.Equal(t, []string{g.glyph}, single[0].MatchedChars)
	}
}

func TestJudgeTabooClean(t *testing.T) {
	t.Parallel()

	name := makeName(t, "田中", []int{5, 4}, "太郎", []int{4, 9})
	result := JudgeTaboo(name, TabooOptions{})
	assert.Empty(t, result.Issues)
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, 0, result.TotalPenalty)
	assert.Equal(t, TabooGradeExcellent, result.Grade)
}

func TestJudgeTabooStructuralChecks(t *testing.T) {
	t.Parallel()

	t.Run("separable name", func(t *testing.T) {
		name := makeName(t, "林", []int{8}, "明", []int{8})
		result := JudgeTaboo(name, TabooOptions{})
		assert.True(t, result.HasIssue(TabooSeparable))
		assert.True(t, result.HasIssue(TabooSingleCharacter))
		assert.Equal(t, 45, result.TotalPenalty) // critical 25 + high 20
		assert.Equal(t, 55, result.Score)
		assert.Equal(t, TabooGradeFair, result.Grade)
	})

	t.Run("personality and earth hardship", func(t *testing.T) {
		name := makeName(t, "山田", []int{3, 5}, "友弘", []int{4, 5})
		result := JudgeTaboo(name, TabooOptions{})
		assert.True(t, result.HasIssue(TabooPersonalityHardship))
		assert.True(t, result.HasIssue(TabooEarthHardship))
		assert.Equal(t, 60, result.Score)
	})
}

func TestJudgeTabooCategoryMatchCounting(t *testing.T) {
	t.Parallel()

	t.Run("distinct matches raise the penalty", func(t *testing.T) {
		name := makeName(t, "山", []int{3}, "犬猫", []int{4, 11})
		result := JudgeTaboo(name, TabooOptions{})
		require.Len(t, result.Issues, 1)
		issue := result.Issues[0]
		assert.Equal(t, TabooAnimal, issue.Type)
		assert.Equal(t, SeverityMedium, issue.Severity)
		assert.Equal(t, []string{"犬", "猫"}, issue.MatchedChars)
		assert.Equal(t, 20, issue.PenaltyScore) // round(15 * 1.3)
	})

	t.Run("repeated glyph counts once", func(t *testing.T) {
		name := makeName(t, "山", []int{3}, "犬犬", []int{4, 4})
		result := JudgeTaboo(name, TabooOptions{})
		require.Len(t, result.Issues, 1)
		assert.Equal(t, []string{"犬"}, result.Issues[0].MatchedChars)
		assert.Equal(t, 15, result.Issues[0].PenaltyScore)
	})
}

func TestJudgeTabooOptions(t *testing.T) {
	t.Parallel()

	name := makeName(t, "林", []int{8}, "明", []int{8})

	disabled := JudgeTaboo(name, TabooOptions{
		Disabled: map[TabooCheck]bool{TabooSingleCharacter: true},
	})
	assert.False(t, disabled.HasIssue(TabooSingleCharacter))
	assert.True(t, disabled.HasIssue(TabooSeparable))
	assert.Equal(t, 75, disabled.Score)
	assert.Equal(t, TabooGradeGood, disabled.Grade)

	strict := JudgeTaboo(name, TabooOptions{FairThreshold: 60})
	assert.Equal(t, 55, strict.Score)
	assert.Equal(t, TabooGradePoor, strict.Grade)
}

func TestPenalty(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		severity Severity
		matches  int
		expected int
	}{
		{SeverityCritical, 1, 25},
		{SeverityHigh, 1, 20},
		{SeverityMedium, 1, 15},
		{SeverityLow, 1, 10},
		{SeverityHigh, 2, 26},
		{SeverityLow, 3, 16},
		{SeverityCritical, 3, 40},
		{SeverityCritical, 10, 50},
		{SeverityHigh, 0, 20},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Penalty(tc.severity, tc.matches), "%s x%d", tc.severity, tc.matches)
	}
}

func TestTabooScoreFloorsAtZero(t *testing.T) {
	t.Parallel()

	name := makeName(t, "糞犬鬼雷", []int{17, 4, 10, 13}, "死", []int{6})
	result := JudgeTaboo(name, TabooOptions{})
	assert.Greater(t, result.TotalPenalty, 100)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, TabooGradePoor, result.Grade)
}

func TestTabooChecksCatalog(t *testing.T) {
	t.Parallel()

	checks := AllTabooChecks()
	require.Len(t, checks, 16)
	assert.Equal(t, TabooSeparable, checks[0])
	assert.Equal(t, TabooGenderNeutral, checks[15])

	check, ok := ParseTabooCheck("VULGAR")
	assert.True(t, ok)
	assert.Equal(t, TabooVulgar, check)

	_, ok = ParseTabooCheck("UNKNOWN")
	assert.False(t, ok)
}
