package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/league-stats/internal/domain/fixture"
	"github.com/riskibarqy/league-stats/internal/domain/stats"
	"github.com/riskibarqy/league-stats/internal/domain/team"
	"github.com/riskibarqy/league-stats/internal/platform/cache"
)

func statsTestFixtures() []fixture.Fixture {
	alpha := team.Team{ID: "team-a", Name: "Alpha", Roster: []team.Player{
		{ID: "gk-a", Name: "Keeper A", JerseyNumber: 1, IsGoalkeeper: true},
		{ID: "p-9", Name: "Nine", JerseyNumber: 9},
	}}
	beta := team.Team{ID: "team-b", Name: "Beta", Roster: []team.Player{
		{ID: "gk-b", Name: "Keeper B", JerseyNumber: 1, IsGoalkeeper: true},
		{ID: "p-10", Name: "Ten", JerseyNumber: 10},
	}}

	return []fixture.Fixture{
		{
			ID:         "f1",
			HomeTeam:   alpha,
			AwayTeam:   beta,
			HomeScore:  2,
			AwayScore:  0,
			Status:     fixture.StatusCompleted,
			SeasonID:   "season-1",
			HomeLineup: []string{"gk-a", "p-9"},
			AwayLineup: []string{"gk-b", "p-10"},
			Events: []fixture.Event{
				{Type: fixture.EventGoal, TeamID: "team-a", PlayerID: "p-9"},
				{Type: fixture.EventGoal, TeamID: "team-a", PlayerID: "p-9", AssistPlayerID: "gk-a"},
				{Type: fixture.EventYellowCard, TeamID: "team-b", PlayerID: "p-10"},
			},
		},
		{
			// Completed but no events collection recorded: contributes to
			// standings, never to leaderboards.
			ID:        "f2",
			HomeTeam:  beta,
			AwayTeam:  alpha,
			HomeScore: 1,
			AwayScore: 1,
			Status:    fixture.StatusCompleted,
			SeasonID:  "season-1",
		},
		{
			ID:       "f3",
			HomeTeam: alpha,
			AwayTeam: beta,
			Status:   fixture.StatusScheduled,
			SeasonID: "season-1",
		},
	}
}

func TestStatsServiceLeaderboards(t *testing.T) {
	t.Parallel()

	repo := &stubFixtureRepository{items: statsTestFixtures()}
	service := NewStatsService(repo, nil, stats.DefaultLimits())

	boards, err := service.Leaderboards(context.Background(), stats.Filter{SeasonID: "season-1"})
	if err != nil {
		t.Fatalf("Leaderboards error: %v", err)
	}

	if len(boards.Scorers) != 1 || boards.Scorers[0].PlayerID != "p-9" || boards.Scorers[0].Goals != 2 {
		t.Fatalf("unexpected scorers: %+v", boards.Scorers)
	}
	if len(boards.Assisters) != 1 || boards.Assisters[0].PlayerID != "gk-a" {
		t.Fatalf("unexpected assisters: %+v", boards.Assisters)
	}
	if len(boards.Disciplinary) != 1 || boards.Disciplinary[0].YellowCards != 1 {
		t.Fatalf("unexpected disciplinary: %+v", boards.Disciplinary)
	}
	if boards.Diagnostics.FixturesWithoutEvents != 1 {
		t.Fatalf("unexpected diagnostics: %+v", boards.Diagnostics)
	}

	// Both lineup keepers appeared once; only the Alpha keeper kept a clean sheet.
	byID := make(map[string]stats.CleanSheetEntry)
	for _, e := range boards.CleanSheets {
		byID[e.PlayerID] = e
	}
	if byID["gk-a"].CleanSheets != 1 || byID["gk-b"].CleanSheets != 0 {
		t.Fatalf("unexpected clean sheets: %+v", boards.CleanSheets)
	}
}

func TestStatsServiceStandings(t *testing.T) {
	t.Parallel()

	repo := &stubFixtureRepository{items: statsTestFixtures()}
	service := NewStatsService(repo, nil, stats.DefaultLimits())

	rows, err := service.Standings(context.Background(), stats.Filter{})
	if err != nil {
		t.Fatalf("Standings error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("unexpected row count: got=%d want=2", len(rows))
	}
	// Alpha won f1 and drew f2 despite f2 carrying no events.
	if rows[0].TeamID != "team-a" || rows[0].Points != 4 || rows[0].Position != 1 {
		t.Fatalf("unexpected leader: %+v", rows[0])
	}
	if rows[1].TeamID != "team-b" || rows[1].Points != 1 {
		t.Fatalf("unexpected runner-up: %+v", rows[1])
	}
}

func TestStatsServiceTeamTables(t *testing.T) {
	t.Parallel()

	repo := &stubFixtureRepository{items: statsTestFixtures()}
	service := NewStatsService(repo, nil, stats.Limits{Players: 20, Teams: 1})

	tables, err := service.TeamTables(context.Background(), stats.Filter{})
	if err != nil {
		t.Fatalf("TeamTables error: %v", err)
	}
	if len(tables.TopScoring) != 1 || tables.TopScoring[0].TeamID != "team-a" {
		t.Fatalf("unexpected top scoring: %+v", tables.TopScoring)
	}
	if len(tables.BestDefense) != 1 || tables.BestDefense[0].TeamID != "team-a" {
		t.Fatalf("unexpected best defense: %+v", tables.BestDefense)
	}
	if len(tables.MostConceded) != 1 || tables.MostConceded[0].TeamID != "team-b" {
		t.Fatalf("unexpected most conceded: %+v", tables.MostConceded)
	}
}

func TestStatsServiceMemoization(t *testing.T) {
	t.Parallel()

	repo := &stubFixtureRepository{items: statsTestFixtures()}
	service := NewStatsService(repo, cache.NewStore(time.Minute), stats.DefaultLimits())
	ctx := context.Background()

	if _, err := service.Leaderboards(ctx, stats.Filter{}); err != nil {
		t.Fatalf("Leaderboards error: %v", err)
	}
	if _, err := service.Leaderboards(ctx, stats.Filter{}); err != nil {
		t.Fatalf("Leaderboards error: %v", err)
	}
	if got := repo.calls(); got != 1 {
		t.Fatalf("cache miss on second call: listCalls=%d", got)
	}

	service.InvalidateCache(ctx)
	if _, err := service.Leaderboards(ctx, stats.Filter{}); err != nil {
		t.Fatalf("Leaderboards error: %v", err)
	}
	if got := repo.calls(); got != 2 {
		t.Fatalf("invalidation did not force recompute: listCalls=%d", got)
	}
}

func TestStatsServiceCompetitions(t *testing.T) {
	t.Parallel()

	items := statsTestFixtures()
	items[0].Competition = "league"
	items[1].Competition = "cup"
	items[2].Competition = "league"
	repo := &stubFixtureRepository{items: items}
	service := NewStatsService(repo, nil, stats.DefaultLimits())

	got, err := service.Competitions(context.Background())
	if err != nil {
		t.Fatalf("Competitions error: %v", err)
	}
	if len(got) != 2 || got[0] != "league" || got[1] != "cup" {
		t.Fatalf("unexpected competitions: %+v", got)
	}
}
