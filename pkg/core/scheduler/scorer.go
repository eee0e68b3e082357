package scheduler

import (
	"sort"

	"github.com/mworkman/scheduleme/pkg/core/model"
)

// Score rates how well a slot matches an employee's preferences.
// Each preference contributes +1 on a match; a mismatch contributes -1
// in soft mode and 0 in ignore mode, giving a total in [-2, 2].
// Strict-mode mismatches never reach the scorer: the evaluator has
// already excluded them.
func Score(rules RuleSet, emp *model.Employee, shift, location string) int {
	score := 0

	if emp.PrefersLocation(location) {
		score++
	} else if rules.LocationPreferenceMode == PreferenceSoft {
		score--
	}

	if emp.PrefersShift(shift) {
		score++
	} else if rules.ShiftPreferenceMode == PreferenceSoft {
		score--
	}

	return score
}

// RankCandidates orders eligible employees for a slot: preference score
// descending, then hire date ascending (earlier hire wins) when
// seniority weighting is on. With weighting off the sort is stable, so
// candidates keep the relative order the caller supplied.
func RankCandidates(rules RuleSet, candidates []*model.Employee, shift, location string) []*model.Employee {
	ranked := make([]*model.Employee, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		scoreI := Score(rules, ranked[i], shift, location)
		scoreJ := Score(rules, ranked[j], shift, location)
		if scoreI != scoreJ {
			return scoreI > scoreJ
		}
		if rules.UseSeniorityWeighting {
			return ranked[i].HireDate.Before(ranked[j].HireDate)
		}
		return false
	})

	return ranked
}
