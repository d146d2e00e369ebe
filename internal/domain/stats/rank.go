package stats

import "sort"

// Ranking stage. Every sort below is stable over deterministically ordered
// input, so equal-on-all-keys rows keep their first-seen order run after run.

func RankScorers(entries []ScorerEntry, limit int) []ScorerEntry {
	out := append([]ScorerEntry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Goals > out[j].Goals
	})
	return out[:min(limit, len(out))]
}

func RankAssists(entries []AssistEntry, limit int) []AssistEntry {
	out := append([]AssistEntry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Assists > out[j].Assists
	})
	return out[:min(limit, len(out))]
}

// RankCleanSheets orders by clean sheets, then appearances. Keepers without a
// single appearance never made it into the fold, so no extra filtering here.
func RankCleanSheets(entries []CleanSheetEntry, limit int) []CleanSheetEntry {
	out := append([]CleanSheetEntry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CleanSheets != out[j].CleanSheets {
			return out[i].CleanSheets > out[j].CleanSheets
		}
		return out[i].Appearances > out[j].Appearances
	})
	return out[:min(limit, len(out))]
}

func RankDisciplinary(entries []DisciplinaryEntry, limit int) []DisciplinaryEntry {
	out := append([]DisciplinaryEntry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Severity() > out[j].Severity()
	})
	return out[:min(limit, len(out))]
}

// SortStandings orders a full table by points, goal difference, then goals
// for, and assigns 1-based positions.
func SortStandings(rows []TeamStanding) []TeamStanding {
	out := append([]TeamStanding(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		if out[i].GoalDifference != out[j].GoalDifference {
			return out[i].GoalDifference > out[j].GoalDifference
		}
		return out[i].GoalsFor > out[j].GoalsFor
	})
	for i := range out {
		out[i].Position = i + 1
	}
	return out
}

func TopScoringTeams(rows []TeamStanding, limit int) []TeamStanding {
	out := playedOnly(rows)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].GoalsFor != out[j].GoalsFor {
			return out[i].GoalsFor > out[j].GoalsFor
		}
		return out[i].GoalDifference > out[j].GoalDifference
	})
	return out[:min(limit, len(out))]
}

func BestDefense(rows []TeamStanding, limit int) []TeamStanding {
	out := playedOnly(rows)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].GoalsAgainst != out[j].GoalsAgainst {
			return out[i].GoalsAgainst < out[j].GoalsAgainst
		}
		return out[i].CleanSheets > out[j].CleanSheets
	})
	return out[:min(limit, len(out))]
}

func BestGoalDifference(rows []TeamStanding, limit int) []TeamStanding {
	out := playedOnly(rows)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].GoalDifference != out[j].GoalDifference {
			return out[i].GoalDifference > out[j].GoalDifference
		}
		return out[i].GoalsFor > out[j].GoalsFor
	})
	return out[:min(limit, len(out))]
}

func MostConceded(rows []TeamStanding, limit int) []TeamStanding {
	out := playedOnly(rows)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GoalsAgainst > out[j].GoalsAgainst
	})
	return out[:min(limit, len(out))]
}

func playedOnly(rows []TeamStanding) []TeamStanding {
	out := make([]TeamStanding, 0, len(rows))
	for _, row := range rows {
		if row.Played > 0 {
			out = append(out, row)
		}
	}
	return out
}
