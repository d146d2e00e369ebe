package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/league-stats/internal/domain/fixture"
	"github.com/riskibarqy/league-stats/internal/domain/season"
	"github.com/riskibarqy/league-stats/internal/domain/stats"
	"github.com/riskibarqy/league-stats/internal/domain/team"
)

// GroupTableRow is one standings row inside a group, flagged when its position
// is inside the qualification cutoff.
type GroupTableRow struct {
	stats.TeamStanding
	Qualified bool
}

// GroupTable is the ordered standings of one group of a season's group stage.
type GroupTable struct {
	GroupID        string
	GroupName      string
	Rows           []GroupTableRow
	QualifierCount int
	PlayedMatches  int
	TotalMatches   int
	Completed      bool
}

// GroupStandingService derives per-group tables from the season structure and
// the completed fixtures played between group members.
type GroupStandingService struct {
	seasonRepo  season.Repository
	fixtureRepo fixture.Repository
	teamRepo    team.Repository
}

func NewGroupStandingService(seasonRepo season.Repository, fixtureRepo fixture.Repository, teamRepo team.Repository) *GroupStandingService {
	return &GroupStandingService{
		seasonRepo:  seasonRepo,
		fixtureRepo: fixtureRepo,
		teamRepo:    teamRepo,
	}
}

// GroupStandings computes the table of every group in the season. Teams
// without a completed fixture still appear with zeroed totals so the table
// always shows the full group.
func (s *GroupStandingService) GroupStandings(ctx context.Context, seasonID string) ([]GroupTable, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupStandingService.GroupStandings")
	defer span.End()

	item, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}

	fixtures, err := s.fixtureRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}
	completed := stats.SelectFixtures(fixtures, stats.Filter{SeasonID: seasonID}, false)

	out := make([]GroupTable, 0, len(item.Groups))
	for _, g := range item.Groups {
		table, err := s.groupTable(ctx, g, item.Knockout.QualifiersPerGroup, completed)
		if err != nil {
			return nil, err
		}
		out = append(out, table)
	}
	return out, nil
}

func (s *GroupStandingService) groupTable(ctx context.Context, g season.Group, qualifiers int, completed []fixture.Fixture) (GroupTable, error) {
	members := make(map[string]struct{}, len(g.TeamIDs))
	for _, teamID := range g.TeamIDs {
		members[teamID] = struct{}{}
	}

	// Only matches between two members of this group count toward its table.
	internal := make([]fixture.Fixture, 0)
	for _, fx := range completed {
		if _, home := members[fx.HomeTeam.ID]; !home {
			continue
		}
		if _, away := members[fx.AwayTeam.ID]; !away {
			continue
		}
		internal = append(internal, fx)
	}

	rows := stats.TeamStandings(internal)
	seen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		seen[r.TeamID] = struct{}{}
	}
	for _, teamID := range g.TeamIDs {
		if _, ok := seen[teamID]; ok {
			continue
		}
		row := stats.TeamStanding{TeamID: teamID}
		if member, exists, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
			return GroupTable{}, fmt.Errorf("get team: %w", err)
		} else if exists {
			row.TeamName = member.Name
			row.TeamLogo = member.LogoURL
		}
		rows = append(rows, row)
	}

	sorted := stats.SortStandings(rows)
	tableRows := make([]GroupTableRow, 0, len(sorted))
	for _, r := range sorted {
		tableRows = append(tableRows, GroupTableRow{
			TeamStanding: r,
			Qualified:    qualifiers > 0 && r.Position <= qualifiers,
		})
	}

	total := len(g.TeamIDs) * (len(g.TeamIDs) - 1) / 2
	return GroupTable{
		GroupID:        g.ID,
		GroupName:      g.Name,
		Rows:           tableRows,
		QualifierCount: qualifiers,
		PlayedMatches:  len(internal),
		TotalMatches:   total,
		Completed:      total > 0 && len(internal) >= total,
	}, nil
}

// Qualifiers lists the teams currently inside the cutoff of every group, in
// group order then position order.
func (s *GroupStandingService) Qualifiers(ctx context.Context, seasonID string) ([]GroupTableRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupStandingService.Qualifiers")
	defer span.End()

	tables, err := s.GroupStandings(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	out := make([]GroupTableRow, 0)
	for _, table := range tables {
		for _, row := range table.Rows {
			if row.Qualified {
				out = append(out, row)
			}
		}
	}
	return out, nil
}
