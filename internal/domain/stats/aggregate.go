package stats

import (
	"github.com/riskibarqy/league-stats/internal/domain/fixture"
	"github.com/riskibarqy/league-stats/internal/domain/team"
)

// SelectFixtures keeps completed fixtures matching the filter, preserving
// input order. Player leaderboards additionally require a recorded events
// collection; team standings do not, because the match score is authoritative
// on its own.
func SelectFixtures(items []fixture.Fixture, f Filter, requireEvents bool) []fixture.Fixture {
	f = f.Normalize()

	out := make([]fixture.Fixture, 0, len(items))
	for _, item := range items {
		if !fixture.IsCompletedStatus(item.Status) {
			continue
		}
		if f.SeasonID != FilterAll && item.SeasonID != f.SeasonID {
			continue
		}
		if f.Competition != FilterAll && item.Competition != f.Competition {
			continue
		}
		if requireEvents && !item.HasEvents() {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Competitions lists distinct non-empty competition labels in first-seen
// order.
func Competitions(items []fixture.Fixture) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, item := range items {
		if item.Competition == "" {
			continue
		}
		if _, ok := seen[item.Competition]; ok {
			continue
		}
		seen[item.Competition] = struct{}{}
		out = append(out, item.Competition)
	}
	return out
}

type playerKey struct {
	playerID string
	teamID   string
}

// Scorers folds goal events into per-player totals. Events whose team or
// player reference does not resolve are dropped and counted, never fatal.
// Entries come back in first-seen order; ranking happens separately.
func Scorers(fixtures []fixture.Fixture) ([]ScorerEntry, int) {
	rows := make(map[playerKey]*ScorerEntry)
	order := make([]playerKey, 0)
	skipped := 0

	for _, fx := range fixtures {
		index := rosterIndexes(fx)
		for _, ev := range fx.Events {
			if ev.Type != fixture.EventGoal {
				continue
			}
			side, player, ok := resolve(fx, index, ev.TeamID, ev.PlayerID)
			if !ok {
				skipped++
				continue
			}
			key := playerKey{playerID: player.ID, teamID: side.ID}
			row, exists := rows[key]
			if !exists {
				row = &ScorerEntry{
					PlayerID:     player.ID,
					PlayerName:   player.Name,
					JerseyNumber: player.JerseyNumber,
					TeamID:       side.ID,
					TeamName:     side.Name,
					TeamLogo:     side.LogoURL,
				}
				rows[key] = row
				order = append(order, key)
			}
			row.Goals++
		}
	}

	return collectScorers(rows, order), skipped
}

// Assists mirrors Scorers but credits the assisting player of goal events that
// carry one.
func Assists(fixtures []fixture.Fixture) ([]AssistEntry, int) {
	rows := make(map[playerKey]*AssistEntry)
	order := make([]playerKey, 0)
	skipped := 0

	for _, fx := range fixtures {
		index := rosterIndexes(fx)
		for _, ev := range fx.Events {
			if ev.Type != fixture.EventGoal || ev.AssistPlayerID == "" {
				continue
			}
			side, player, ok := resolve(fx, index, ev.TeamID, ev.AssistPlayerID)
			if !ok {
				skipped++
				continue
			}
			key := playerKey{playerID: player.ID, teamID: side.ID}
			row, exists := rows[key]
			if !exists {
				row = &AssistEntry{
					PlayerID:     player.ID,
					PlayerName:   player.Name,
					JerseyNumber: player.JerseyNumber,
					TeamID:       side.ID,
					TeamName:     side.Name,
					TeamLogo:     side.LogoURL,
				}
				rows[key] = row
				order = append(order, key)
			}
			row.Assists++
		}
	}

	return collectAssists(rows, order), skipped
}

// CleanSheets credits a fixture's lineup goalkeeper: an appearance on every
// fixture they are listed for, plus a clean sheet when the opponent scored
// zero. Teams without a lineup goalkeeper contribute nothing for that fixture.
func CleanSheets(fixtures []fixture.Fixture) []CleanSheetEntry {
	rows := make(map[playerKey]*CleanSheetEntry)
	order := make([]playerKey, 0)

	credit := func(side team.Team, lineup map[string]struct{}, opponentScore int) {
		keeper, ok := side.Goalkeeper(lineup)
		if !ok {
			return
		}
		key := playerKey{playerID: keeper.ID, teamID: side.ID}
		row, exists := rows[key]
		if !exists {
			row = &CleanSheetEntry{
				PlayerID:     keeper.ID,
				PlayerName:   keeper.Name,
				JerseyNumber: keeper.JerseyNumber,
				TeamID:       side.ID,
				TeamName:     side.Name,
				TeamLogo:     side.LogoURL,
			}
			rows[key] = row
			order = append(order, key)
		}
		row.Appearances++
		if opponentScore == 0 {
			row.CleanSheets++
		}
	}

	for _, fx := range fixtures {
		credit(fx.HomeTeam, fx.HomeLineupSet(), int(fx.AwayScore))
		credit(fx.AwayTeam, fx.AwayLineupSet(), int(fx.HomeScore))
	}

	out := make([]CleanSheetEntry, 0, len(order))
	for _, key := range order {
		out = append(out, *rows[key])
	}
	return out
}

// Disciplinary folds yellow and red card events into per-player counts.
func Disciplinary(fixtures []fixture.Fixture) ([]DisciplinaryEntry, int) {
	rows := make(map[playerKey]*DisciplinaryEntry)
	order := make([]playerKey, 0)
	skipped := 0

	for _, fx := range fixtures {
		index := rosterIndexes(fx)
		for _, ev := range fx.Events {
			if ev.Type != fixture.EventYellowCard && ev.Type != fixture.EventRedCard {
				continue
			}
			side, player, ok := resolve(fx, index, ev.TeamID, ev.PlayerID)
			if !ok {
				skipped++
				continue
			}
			key := playerKey{playerID: player.ID, teamID: side.ID}
			row, exists := rows[key]
			if !exists {
				row = &DisciplinaryEntry{
					PlayerID:     player.ID,
					PlayerName:   player.Name,
					JerseyNumber: player.JerseyNumber,
					TeamID:       side.ID,
					TeamName:     side.Name,
					TeamLogo:     side.LogoURL,
				}
				rows[key] = row
				order = append(order, key)
			}
			if ev.Type == fixture.EventYellowCard {
				row.YellowCards++
			} else {
				row.RedCards++
			}
		}
	}

	out := make([]DisciplinaryEntry, 0, len(order))
	for _, key := range order {
		out = append(out, *rows[key])
	}
	return out, skipped
}

// TeamStandings folds every fixture into per-team totals. Goals come from the
// match score, not from goal events, so incomplete event records cannot skew
// the table. Goal difference is derived at the end of the fold.
func TeamStandings(fixtures []fixture.Fixture) []TeamStanding {
	rows := make(map[string]*TeamStanding)
	order := make([]string, 0)

	row := func(side team.Team) *TeamStanding {
		if side.ID == "" {
			return nil
		}
		r, ok := rows[side.ID]
		if !ok {
			r = &TeamStanding{
				TeamID:   side.ID,
				TeamName: side.Name,
				TeamLogo: side.LogoURL,
			}
			rows[side.ID] = r
			order = append(order, side.ID)
		}
		return r
	}

	for _, fx := range fixtures {
		homeScore := int(fx.HomeScore)
		awayScore := int(fx.AwayScore)

		home := row(fx.HomeTeam)
		away := row(fx.AwayTeam)
		if home != nil {
			applyResult(home, homeScore, awayScore)
		}
		if away != nil {
			applyResult(away, awayScore, homeScore)
		}
	}

	out := make([]TeamStanding, 0, len(order))
	for _, teamID := range order {
		r := *rows[teamID]
		r.GoalDifference = r.GoalsFor - r.GoalsAgainst
		out = append(out, r)
	}
	return out
}

func applyResult(r *TeamStanding, scored, conceded int) {
	r.Played++
	r.GoalsFor += scored
	r.GoalsAgainst += conceded
	if conceded == 0 {
		r.CleanSheets++
	}

	switch {
	case scored > conceded:
		r.Won++
		r.Points += 3
	case scored == conceded:
		r.Drawn++
		r.Points++
	default:
		r.Lost++
	}
}

type rosterIndex struct {
	home map[string]team.Player
	away map[string]team.Player
}

func rosterIndexes(fx fixture.Fixture) rosterIndex {
	return rosterIndex{
		home: fx.HomeTeam.PlayerIndex(),
		away: fx.AwayTeam.PlayerIndex(),
	}
}

func resolve(fx fixture.Fixture, index rosterIndex, teamID, playerID string) (team.Team, team.Player, bool) {
	side, ok := fx.TeamForEvent(fixture.Event{TeamID: teamID})
	if !ok {
		return team.Team{}, team.Player{}, false
	}

	players := index.home
	if side.ID == fx.AwayTeam.ID {
		players = index.away
	}
	player, ok := players[playerID]
	if !ok {
		return team.Team{}, team.Player{}, false
	}
	return side, player, true
}

func collectScorers(rows map[playerKey]*ScorerEntry, order []playerKey) []ScorerEntry {
	out := make([]ScorerEntry, 0, len(order))
	for _, key := range order {
		out = append(out, *rows[key])
	}
	return out
}

func collectAssists(rows map[playerKey]*AssistEntry, order []playerKey) []AssistEntry {
	out := make([]AssistEntry, 0, len(order))
	for _, key := range order {
		out = append(out, *rows[key])
	}
	return out
}
