package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/league-stats/internal/domain/season"
	"github.com/riskibarqy/league-stats/internal/domain/stats"
)

const (
	refreshStatusSuccess = "success"
	refreshStatusFailed  = "failed"

	refreshKindLeaderboards = "leaderboards"
	refreshKindStandings    = "standings"
	refreshKindTeamTables   = "team_tables"

	defaultRefreshWorkers = 4
	maxRefreshWorkers     = 32
)

type RefreshInput struct {
	// SeasonID narrows the warm-up to one season. Empty refreshes every season
	// plus the all-seasons views.
	SeasonID   string
	MaxWorkers int
}

type RefreshResult struct {
	SeasonCount  int                 `json:"season_count"`
	TaskCount    int                 `json:"task_count"`
	SuccessCount int                 `json:"success_count"`
	FailedCount  int                 `json:"failed_count"`
	WorkerCount  int                 `json:"worker_count"`
	Tasks        []RefreshTaskResult `json:"tasks"`
}

type RefreshTaskResult struct {
	SeasonID   string `json:"season_id"`
	Kind       string `json:"kind"`
	Status     string `json:"status"`
	Rows       int    `json:"rows"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

type refreshTask struct {
	seasonID string
	kind     string
}

// RefreshService invalidates memoized statistics and warms them back up, one
// task per season and view kind, fanned out over a bounded worker pool.
type RefreshService struct {
	seasonRepo season.Repository
	statsSvc   *StatsService
	workers    int
}

func NewRefreshService(seasonRepo season.Repository, statsSvc *StatsService, workers int) *RefreshService {
	if workers < 1 {
		workers = defaultRefreshWorkers
	}
	return &RefreshService{
		seasonRepo: seasonRepo,
		statsSvc:   statsSvc,
		workers:    workers,
	}
}

func (s *RefreshService) Refresh(ctx context.Context, input RefreshInput) (RefreshResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RefreshService.Refresh")
	defer span.End()

	if s.statsSvc == nil {
		return RefreshResult{}, fmt.Errorf("%w: stats service is not configured", ErrDependencyUnavailable)
	}

	targets, err := s.resolveTargets(ctx, input.SeasonID)
	if err != nil {
		return RefreshResult{}, err
	}

	tasks := make([]refreshTask, 0, len(targets)*3)
	for _, seasonID := range targets {
		for _, kind := range []string{refreshKindLeaderboards, refreshKindStandings, refreshKindTeamTables} {
			tasks = append(tasks, refreshTask{seasonID: seasonID, kind: kind})
		}
	}

	workerCount := input.MaxWorkers
	if workerCount < 1 {
		workerCount = s.workers
	}
	if workerCount > maxRefreshWorkers {
		workerCount = maxRefreshWorkers
	}
	if workerCount > len(tasks) {
		workerCount = len(tasks)
	}

	// Drop every memoized view first so the warm-up below recomputes against
	// the current fixture snapshot.
	s.statsSvc.InvalidateCache(ctx)

	results := make(chan RefreshTaskResult, len(tasks))

	var successCount atomic.Int32
	var failedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return RefreshResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, task := range tasks {
		task := task
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := RefreshTaskResult{SeasonID: task.seasonID, Kind: task.kind}

			rows, runErr := s.runTask(ctx, task)
			row.Rows = rows
			row.DurationMs = time.Since(start).Milliseconds()
			if runErr != nil {
				row.Status = refreshStatusFailed
				row.Message = runErr.Error()
				failedCount.Add(1)
			} else {
				row.Status = refreshStatusSuccess
				successCount.Add(1)
			}

			results <- row
		}); err != nil {
			workers.Done()
			return RefreshResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	result := RefreshResult{
		SeasonCount: len(targets),
		TaskCount:   len(tasks),
		WorkerCount: workerCount,
	}
	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		if result.Tasks[i].SeasonID != result.Tasks[j].SeasonID {
			return result.Tasks[i].SeasonID < result.Tasks[j].SeasonID
		}
		return result.Tasks[i].Kind < result.Tasks[j].Kind
	})
	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())

	return result, nil
}

func (s *RefreshService) resolveTargets(ctx context.Context, seasonID string) ([]string, error) {
	seasonID = strings.TrimSpace(seasonID)
	if seasonID != "" {
		_, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
		if err != nil {
			return nil, fmt.Errorf("get season: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
		}
		return []string{seasonID}, nil
	}

	items, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	targets := make([]string, 0, len(items)+1)
	targets = append(targets, stats.FilterAll)
	for _, item := range items {
		targets = append(targets, item.ID)
	}
	return targets, nil
}

func (s *RefreshService) runTask(ctx context.Context, task refreshTask) (int, error) {
	filter := stats.Filter{SeasonID: task.seasonID}
	switch task.kind {
	case refreshKindLeaderboards:
		boards, err := s.statsSvc.Leaderboards(ctx, filter)
		if err != nil {
			return 0, err
		}
		return len(boards.Scorers) + len(boards.Assisters) + len(boards.CleanSheets) + len(boards.Disciplinary), nil
	case refreshKindStandings:
		rows, err := s.statsSvc.Standings(ctx, filter)
		if err != nil {
			return 0, err
		}
		return len(rows), nil
	case refreshKindTeamTables:
		tables, err := s.statsSvc.TeamTables(ctx, filter)
		if err != nil {
			return 0, err
		}
		return len(tables.TopScoring) + len(tables.BestDefense) + len(tables.BestGoalDifference) + len(tables.MostConceded), nil
	default:
		return 0, fmt.Errorf("%w: unknown refresh kind %s", ErrInvalidInput, task.kind)
	}
}
