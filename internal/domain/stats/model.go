package stats

import "strings"

// FilterAll is the wildcard selector for season and competition filters.
const FilterAll = "all"

// Filter narrows the fixture corpus before aggregation. Empty selectors are
// treated as wildcards.
type Filter struct {
	SeasonID    string
	Competition string
}

func (f Filter) Normalize() Filter {
	f.SeasonID = strings.TrimSpace(f.SeasonID)
	f.Competition = strings.TrimSpace(f.Competition)
	if f.SeasonID == "" {
		f.SeasonID = FilterAll
	}
	if f.Competition == "" {
		f.Competition = FilterAll
	}
	return f
}

// Key is the cache key fragment for this filter.
func (f Filter) Key() string {
	f = f.Normalize()
	return f.SeasonID + "|" + f.Competition
}

// Limits caps leaderboard and team table lengths. The deployment default is 20
// individual rows and 10 team rows, both configurable.
type Limits struct {
	Players int
	Teams   int
}

func DefaultLimits() Limits {
	return Limits{Players: 20, Teams: 10}
}

func (l Limits) Normalize() Limits {
	defaults := DefaultLimits()
	if l.Players < 1 {
		l.Players = defaults.Players
	}
	if l.Teams < 1 {
		l.Teams = defaults.Teams
	}
	return l
}

// ScorerEntry is one row of the goal leaderboard, keyed by (player, team) so
// reused player ids across teams never collide.
type ScorerEntry struct {
	PlayerID     string
	PlayerName   string
	JerseyNumber int
	TeamID       string
	TeamName     string
	TeamLogo     string
	Goals        int
}

type AssistEntry struct {
	PlayerID     string
	PlayerName   string
	JerseyNumber int
	TeamID       string
	TeamName     string
	TeamLogo     string
	Assists      int
}

type CleanSheetEntry struct {
	PlayerID     string
	PlayerName   string
	JerseyNumber int
	TeamID       string
	TeamName     string
	TeamLogo     string
	CleanSheets  int
	Appearances  int
}

type DisciplinaryEntry struct {
	PlayerID     string
	PlayerName   string
	JerseyNumber int
	TeamID       string
	TeamName     string
	TeamLogo     string
	YellowCards  int
	RedCards     int
}

// Severity weighs a red card as two yellow-card equivalents.
func (e DisciplinaryEntry) Severity() int {
	return e.RedCards*2 + e.YellowCards
}

// TeamStanding is one league-table row. GoalDifference is always derived from
// GoalsFor and GoalsAgainst, never accumulated on its own.
type TeamStanding struct {
	TeamID         string
	TeamName       string
	TeamLogo       string
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	CleanSheets    int
	Points         int
	Position       int
}

// Diagnostics counts records silently excluded during aggregation. Nothing in
// the data-quality class ever aborts a computation; this is the non-fatal
// signal that some of it was dropped.
type Diagnostics struct {
	SkippedEvents         int
	FixturesWithoutEvents int
}

// Leaderboards bundles the four independent player boards of one computation
// pass.
type Leaderboards struct {
	Scorers      []ScorerEntry
	Assisters    []AssistEntry
	CleanSheets  []CleanSheetEntry
	Disciplinary []DisciplinaryEntry
	Diagnostics  Diagnostics
}

// TeamTables bundles the four team-centric views derived from one standings
// fold.
type TeamTables struct {
	TopScoring         []TeamStanding
	BestDefense        []TeamStanding
	BestGoalDifference []TeamStanding
	MostConceded       []TeamStanding
}
