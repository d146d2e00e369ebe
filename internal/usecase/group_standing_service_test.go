package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/league-stats/internal/domain/fixture"
	"github.com/riskibarqy/league-stats/internal/domain/team"
)

func TestGroupStandings(t *testing.T) {
	t.Parallel()

	alpha := team.Team{ID: "team-1", Name: "Alpha"}
	beta := team.Team{ID: "team-2", Name: "Beta"}
	gamma := team.Team{ID: "team-3", Name: "Gamma"}
	delta := team.Team{ID: "team-4", Name: "Delta"}

	seasonRepo := newStubSeasonRepository(configuredSeason("season-1"))
	teamRepo := &stubTeamRepository{items: []team.Team{alpha, beta, gamma, delta}}
	fixtureRepo := &stubFixtureRepository{items: []fixture.Fixture{
		// Group A internal match, decided.
		{ID: "f1", HomeTeam: alpha, AwayTeam: beta, HomeScore: 2, AwayScore: 1, Status: fixture.StatusCompleted, SeasonID: "season-1"},
		// Cross-group match: never counts toward either group table.
		{ID: "f2", HomeTeam: alpha, AwayTeam: gamma, HomeScore: 5, AwayScore: 0, Status: fixture.StatusCompleted, SeasonID: "season-1"},
		// Other season: excluded.
		{ID: "f3", HomeTeam: gamma, AwayTeam: delta, HomeScore: 1, AwayScore: 0, Status: fixture.StatusCompleted, SeasonID: "season-2"},
	}}

	service := NewGroupStandingService(seasonRepo, fixtureRepo, teamRepo)

	tables, err := service.GroupStandings(context.Background(), "season-1")
	if err != nil {
		t.Fatalf("GroupStandings error: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("unexpected table count: got=%d want=2", len(tables))
	}

	groupA := tables[0]
	if groupA.GroupID != "group-a" {
		t.Fatalf("unexpected group order: %+v", groupA)
	}
	if groupA.Rows[0].TeamID != "team-1" || groupA.Rows[0].Points != 3 {
		t.Fatalf("unexpected group A leader: %+v", groupA.Rows[0])
	}
	// Two teams, one round robin: the single played match completes the group.
	if groupA.TotalMatches != 1 || !groupA.Completed {
		t.Fatalf("unexpected completion: %+v", groupA)
	}
	// Cross-group win must not leak into goals for.
	if groupA.Rows[0].GoalsFor != 2 {
		t.Fatalf("cross-group fixture counted: %+v", groupA.Rows[0])
	}

	groupB := tables[1]
	if groupB.PlayedMatches != 0 || groupB.Completed {
		t.Fatalf("unexpected group B state: %+v", groupB)
	}
	// Unplayed teams still appear, with catalog names and zero totals.
	if len(groupB.Rows) != 2 || groupB.Rows[0].TeamName == "" {
		t.Fatalf("unplayed teams missing or unnamed: %+v", groupB.Rows)
	}

	t.Run("qualification cutoff marks top positions", func(t *testing.T) {
		for _, row := range groupA.Rows {
			if !row.Qualified {
				t.Fatalf("cutoff of 2 in a group of 2 should qualify everyone: %+v", row)
			}
		}
	})
}

func TestGroupStandingsUnknownSeason(t *testing.T) {
	t.Parallel()

	service := NewGroupStandingService(newStubSeasonRepository(), &stubFixtureRepository{}, &stubTeamRepository{})
	if _, err := service.GroupStandings(context.Background(), "season-ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQualifiers(t *testing.T) {
	t.Parallel()

	s := configuredSeason("season-1")
	s.Knockout.QualifiersPerGroup = 1

	alpha := team.Team{ID: "team-1", Name: "Alpha"}
	beta := team.Team{ID: "team-2", Name: "Beta"}
	seasonRepo := newStubSeasonRepository(s)
	teamRepo := &stubTeamRepository{items: []team.Team{alpha, beta, {ID: "team-3", Name: "Gamma"}, {ID: "team-4", Name: "Delta"}}}
	fixtureRepo := &stubFixtureRepository{items: []fixture.Fixture{
		{ID: "f1", HomeTeam: alpha, AwayTeam: beta, HomeScore: 3, AwayScore: 0, Status: fixture.StatusCompleted, SeasonID: "season-1"},
	}}

	service := NewGroupStandingService(seasonRepo, fixtureRepo, teamRepo)
	rows, err := service.Qualifiers(context.Background(), "season-1")
	if err != nil {
		t.Fatalf("Qualifiers error: %v", err)
	}
	// One qualifier per group, two groups.
	if len(rows) != 2 {
		t.Fatalf("unexpected qualifier count: got=%d want=2", len(rows))
	}
	if rows[0].TeamID != "team-1" {
		t.Fatalf("unexpected group A qualifier: %+v", rows[0])
	}
}
