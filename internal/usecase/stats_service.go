package usecase

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/sourcegraph/conc"

	"github.com/riskibarqy/league-stats/internal/domain/fixture"
	"github.com/riskibarqy/league-stats/internal/domain/stats"
	"github.com/riskibarqy/league-stats/internal/platform/cache"
)

// StatsService computes leaderboards and standings on demand and memoizes the
// results per data snapshot. Bumping the snapshot version invalidates every
// cached computation at once.
type StatsService struct {
	fixtureRepo fixture.Repository
	store       *cache.Store
	limits      stats.Limits
	version     atomic.Uint64
}

func NewStatsService(fixtureRepo fixture.Repository, store *cache.Store, limits stats.Limits) *StatsService {
	return &StatsService{
		fixtureRepo: fixtureRepo,
		store:       store,
		limits:      limits.Normalize(),
	}
}

func (s *StatsService) cacheKey(kind string, f stats.Filter) string {
	return "stats:" + kind + ":v" + strconv.FormatUint(s.version.Load(), 10) + ":" + f.Key()
}

// InvalidateCache drops every memoized computation. Called after a data
// refresh so stale tables never outlive their snapshot.
func (s *StatsService) InvalidateCache(ctx context.Context) {
	s.version.Add(1)
	if s.store != nil {
		s.store.DeletePrefix(ctx, "stats:")
	}
}

func (s *StatsService) memoized(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if s.store == nil {
		return loader(ctx)
	}
	return s.store.GetOrLoad(ctx, key, loader)
}

// Leaderboards computes the four player boards in one pass over the filtered
// fixtures. The folds are independent, so they run concurrently.
func (s *StatsService) Leaderboards(ctx context.Context, f stats.Filter) (stats.Leaderboards, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Leaderboards")
	defer span.End()

	f = f.Normalize()
	value, err := s.memoized(ctx, s.cacheKey("leaderboards", f), func(ctx context.Context) (any, error) {
		items, err := s.fixtureRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list fixtures: %w", err)
		}
		return s.computeLeaderboards(items, f), nil
	})
	if err != nil {
		return stats.Leaderboards{}, err
	}

	boards, ok := value.(stats.Leaderboards)
	if !ok {
		return stats.Leaderboards{}, fmt.Errorf("unexpected cached leaderboards type %T", value)
	}
	return boards, nil
}

func (s *StatsService) computeLeaderboards(items []fixture.Fixture, f stats.Filter) stats.Leaderboards {
	eligible := stats.SelectFixtures(items, f, true)
	withoutEvents := len(stats.SelectFixtures(items, f, false)) - len(eligible)

	var (
		scorers       []stats.ScorerEntry
		assists       []stats.AssistEntry
		cleanSheets   []stats.CleanSheetEntry
		disciplinary  []stats.DisciplinaryEntry
		skippedGoals  int
		skippedAssist int
		skippedCards  int
	)

	var wg conc.WaitGroup
	wg.Go(func() { scorers, skippedGoals = stats.Scorers(eligible) })
	wg.Go(func() { assists, skippedAssist = stats.Assists(eligible) })
	wg.Go(func() { cleanSheets = stats.CleanSheets(eligible) })
	wg.Go(func() { disciplinary, skippedCards = stats.Disciplinary(eligible) })
	wg.Wait()

	return stats.Leaderboards{
		Scorers:      stats.RankScorers(scorers, s.limits.Players),
		Assisters:    stats.RankAssists(assists, s.limits.Players),
		CleanSheets:  stats.RankCleanSheets(cleanSheets, s.limits.Players),
		Disciplinary: stats.RankDisciplinary(disciplinary, s.limits.Players),
		Diagnostics: stats.Diagnostics{
			SkippedEvents:         skippedGoals + skippedAssist + skippedCards,
			FixturesWithoutEvents: withoutEvents,
		},
	}
}

// Standings returns the full ordered league table for the filter. No limit
// applies: a table is only meaningful whole.
func (s *StatsService) Standings(ctx context.Context, f stats.Filter) ([]stats.TeamStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Standings")
	defer span.End()

	f = f.Normalize()
	value, err := s.memoized(ctx, s.cacheKey("standings", f), func(ctx context.Context) (any, error) {
		rows, err := s.foldStandings(ctx, f)
		if err != nil {
			return nil, err
		}
		return stats.SortStandings(rows), nil
	})
	if err != nil {
		return nil, err
	}

	rows, ok := value.([]stats.TeamStanding)
	if !ok {
		return nil, fmt.Errorf("unexpected cached standings type %T", value)
	}
	return rows, nil
}

// TeamTables derives the four team views from one standings fold.
func (s *StatsService) TeamTables(ctx context.Context, f stats.Filter) (stats.TeamTables, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TeamTables")
	defer span.End()

	f = f.Normalize()
	value, err := s.memoized(ctx, s.cacheKey("teamtables", f), func(ctx context.Context) (any, error) {
		rows, err := s.foldStandings(ctx, f)
		if err != nil {
			return nil, err
		}
		return stats.TeamTables{
			TopScoring:         stats.TopScoringTeams(rows, s.limits.Teams),
			BestDefense:        stats.BestDefense(rows, s.limits.Teams),
			BestGoalDifference: stats.BestGoalDifference(rows, s.limits.Teams),
			MostConceded:       stats.MostConceded(rows, s.limits.Teams),
		}, nil
	})
	if err != nil {
		return stats.TeamTables{}, err
	}

	tables, ok := value.(stats.TeamTables)
	if !ok {
		return stats.TeamTables{}, fmt.Errorf("unexpected cached team tables type %T", value)
	}
	return tables, nil
}

func (s *StatsService) foldStandings(ctx context.Context, f stats.Filter) ([]stats.TeamStanding, error) {
	items, err := s.fixtureRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}
	return stats.TeamStandings(stats.SelectFixtures(items, f, false)), nil
}

// Competitions lists the distinct competition labels present in the fixture
// corpus, for populating filter dropdowns.
func (s *StatsService) Competitions(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Competitions")
	defer span.End()

	value, err := s.memoized(ctx, s.cacheKey("competitions", stats.Filter{}), func(ctx context.Context) (any, error) {
		items, err := s.fixtureRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list fixtures: %w", err)
		}
		return stats.Competitions(items), nil
	})
	if err != nil {
		return nil, err
	}

	labels, ok := value.([]string)
	if !ok {
		return nil, fmt.Errorf("unexpected cached competitions type %T", value)
	}
	return labels, nil
}
