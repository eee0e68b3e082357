package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mworkman/scheduleme/pkg/core/model"
)

func TestScore_PreferenceMatchesAndMisses(t *testing.T) {
	rules := testRules()
	rules.LocationPreferenceMode = PreferenceSoft
	rules.ShiftPreferenceMode = PreferenceSoft
	emp := newEmployee("E001", "2022-01-15") // prefers ZoneA / Morning

	assert.Equal(t, 2, Score(rules, emp, model.ShiftMorning, "ZoneA"))
	assert.Equal(t, 0, Score(rules, emp, model.ShiftAfternoon, "ZoneA"))
	assert.Equal(t, 0, Score(rules, emp, model.ShiftMorning, "ZoneB"))
	assert.Equal(t, -2, Score(rules, emp, model.ShiftAfternoon, "ZoneB"))
}

func TestScore_IgnoreModeSkipsPenalty(t *testing.T) {
	rules := testRules()
	rules.LocationPreferenceMode = PreferenceIgnore
	rules.ShiftPreferenceMode = PreferenceIgnore
	emp := newEmployee("E001", "2022-01-15")

	// Matches still score, mismatches cost nothing
	assert.Equal(t, 2, Score(rules, emp, model.ShiftMorning, "ZoneA"))
	assert.Equal(t, 0, Score(rules, emp, model.ShiftAfternoon, "ZoneB"))
}

func TestRankCandidates_ScoreDescending(t *testing.T) {
	rules := testRules()
	matching := newEmployee("E001", "2024-01-01")
	mismatched := newEmployee("E002", "2020-01-01")
	mismatched.PreferredLocations = model.NewSet([]string{"ZoneB"})
	mismatched.PreferredShifts = model.NewSet([]string{model.ShiftNight})

	ranked := RankCandidates(rules, []*model.Employee{mismatched, matching}, model.ShiftMorning, "ZoneA")

	// Preference score beats seniority
	assert.Equal(t, "E001", ranked[0].ID)
	assert.Equal(t, "E002", ranked[1].ID)
}

func TestRankCandidates_SeniorityBreaksTies(t *testing.T) {
	rules := testRules()
	rules.UseSeniorityWeighting = true
	junior := newEmployee("E001", "2024-06-01")
	senior := newEmployee("E002", "2020-03-01")
	mid := newEmployee("E003", "2022-09-01")

	ranked := RankCandidates(rules, []*model.Employee{junior, senior, mid}, model.ShiftMorning, "ZoneA")

	assert.Equal(t, []string{"E002", "E003", "E001"}, []string{ranked[0].ID, ranked[1].ID, ranked[2].ID})
}

func TestRankCandidates_PreservesOrderWithoutWeighting(t *testing.T) {
	rules := testRules()
	rules.UseSeniorityWeighting = false
	first := newEmployee("E001", "2024-06-01")
	second := newEmployee("E002", "2020-03-01")
	third := newEmployee("E003", "2022-09-01")

	ranked := RankCandidates(rules, []*model.Employee{first, second, third}, model.ShiftMorning, "ZoneA")

	// Equal scores keep the caller's order, no re-sort by hire date
	assert.Equal(t, []string{"E001", "E002", "E003"}, []string{ranked[0].ID, ranked[1].ID, ranked[2].ID})
}

func TestRankCandidates_DoesNotMutateInput(t *testing.T) {
	rules := testRules()
	junior := newEmployee("E001", "2024-06-01")
	senior := newEmployee("E002", "2020-03-01")
	input := []*model.Employee{junior, senior}

	RankCandidates(rules, input, model.ShiftMorning, "ZoneA")

	assert.Equal(t, "E001", input[0].ID)
	assert.Equal(t, "E002", input[1].ID)
}
