package memory

import (
	"github.com/riskibarqy/league-stats/internal/domain/fixture"
	"github.com/riskibarqy/league-stats/internal/domain/season"
	"github.com/riskibarqy/league-stats/internal/domain/team"
)

const (
	SeasonIDLiga2026   = "idn-liga-2026"
	CompetitionLeague  = "league"
	CompetitionCupPlay = "cup"
)

func SeedTeams() []team.Team {
	return []team.Team{
		{
			ID:      "idn-persija",
			Name:    "Persija Jakarta",
			LogoURL: "https://cdn.example/logos/idn-persija.png",
			Roster: []team.Player{
				{ID: "psj-gk-01", Name: "Andritany Ardhiyasa", JerseyNumber: 1, IsGoalkeeper: true},
				{ID: "psj-def-01", Name: "Hansamu Yama", JerseyNumber: 4},
				{ID: "psj-mid-01", Name: "Maciej Gajos", JerseyNumber: 8, IsCaptain: true},
				{ID: "psj-fwd-01", Name: "Gustavo Almeida", JerseyNumber: 9},
			},
		},
		{
			ID:      "idn-persib",
			Name:    "Persib Bandung",
			LogoURL: "https://cdn.example/logos/idn-persib.png",
			Roster: []team.Player{
				{ID: "psb-gk-01", Name: "Teja Paku Alam", JerseyNumber: 1, IsGoalkeeper: true},
				{ID: "psb-def-01", Name: "Nick Kuipers", JerseyNumber: 5},
				{ID: "psb-mid-01", Name: "Marc Klok", JerseyNumber: 10, IsCaptain: true},
				{ID: "psb-fwd-01", Name: "David da Silva", JerseyNumber: 7},
			},
		},
		{
			ID:      "idn-persebaya",
			Name:    "Persebaya Surabaya",
			LogoURL: "https://cdn.example/logos/idn-persebaya.png",
			Roster: []team.Player{
				{ID: "prb-gk-01", Name: "Ernando Ari", JerseyNumber: 1, IsGoalkeeper: true},
				{ID: "prb-def-01", Name: "Dusan Stevanovic", JerseyNumber: 3},
				{ID: "prb-mid-01", Name: "Bruno Moreira", JerseyNumber: 11, IsCaptain: true},
				{ID: "prb-fwd-01", Name: "Flavio Silva", JerseyNumber: 9},
			},
		},
		{
			ID:      "idn-baliutd",
			Name:    "Bali United",
			LogoURL: "https://cdn.example/logos/idn-baliutd.png",
			Roster: []team.Player{
				{ID: "blu-gk-01", Name: "Wawan Hendrawan", JerseyNumber: 1, IsGoalkeeper: true},
				{ID: "blu-def-01", Name: "Ricky Fajrin", JerseyNumber: 4, IsCaptain: true},
				{ID: "blu-mid-01", Name: "Eber Bessa", JerseyNumber: 10},
				{ID: "blu-fwd-01", Name: "Ilija Spasojevic", JerseyNumber: 9},
			},
		},
	}
}

func SeedSeasons() []season.Season {
	return []season.Season{
		{
			ID:             SeasonIDLiga2026,
			Name:           "Liga 2026",
			Year:           2026,
			NumberOfGroups: 2,
			TeamsPerGroup:  2,
			Groups: []season.Group{
				{ID: "group-a", Name: "Group A", TeamIDs: []string{"idn-persija", "idn-persib"}},
				{ID: "group-b", Name: "Group B", TeamIDs: []string{"idn-persebaya", "idn-baliutd"}},
			},
			Knockout: season.KnockoutConfig{QualifiersPerGroup: 1, MatchesPerRound: 2},
			IsActive: true,
			Status:   season.StatusSaved,
		},
	}
}

func SeedFixtures() []fixture.Fixture {
	teams := SeedTeams()
	byID := make(map[string]team.Team, len(teams))
	for _, t := range teams {
		byID[t.ID] = t
	}

	return []fixture.Fixture{
		{
			ID:          "fx-0001",
			HomeTeam:    byID["idn-persija"],
			AwayTeam:    byID["idn-persib"],
			HomeScore:   2,
			AwayScore:   1,
			Status:      fixture.StatusCompleted,
			SeasonID:    SeasonIDLiga2026,
			Competition: CompetitionLeague,
			HomeLineup:  []string{"psj-gk-01", "psj-def-01", "psj-mid-01", "psj-fwd-01"},
			AwayLineup:  []string{"psb-gk-01", "psb-def-01", "psb-mid-01", "psb-fwd-01"},
			Events: []fixture.Event{
				{Type: fixture.EventGoal, TeamID: "idn-persija", PlayerID: "psj-fwd-01", AssistPlayerID: "psj-mid-01"},
				{Type: fixture.EventGoal, TeamID: "idn-persija", PlayerID: "psj-fwd-01"},
				{Type: fixture.EventGoal, TeamID: "idn-persib", PlayerID: "psb-fwd-01"},
				{Type: fixture.EventYellowCard, TeamID: "idn-persib", PlayerID: "psb-def-01"},
			},
		},
		{
			ID:          "fx-0002",
			HomeTeam:    byID["idn-persebaya"],
			AwayTeam:    byID["idn-baliutd"],
			HomeScore:   0,
			AwayScore:   0,
			Status:      fixture.StatusCompleted,
			SeasonID:    SeasonIDLiga2026,
			Competition: CompetitionLeague,
			HomeLineup:  []string{"prb-gk-01", "prb-def-01", "prb-mid-01", "prb-fwd-01"},
			AwayLineup:  []string{"blu-gk-01", "blu-def-01", "blu-mid-01", "blu-fwd-01"},
			Events: []fixture.Event{
				{Type: fixture.EventRedCard, TeamID: "idn-baliutd", PlayerID: "blu-def-01"},
			},
		},
		{
			ID:          "fx-0003",
			HomeTeam:    byID["idn-persija"],
			AwayTeam:    byID["idn-persebaya"],
			Status:      fixture.StatusScheduled,
			SeasonID:    SeasonIDLiga2026,
			Competition: CompetitionCupPlay,
		},
	}
}
