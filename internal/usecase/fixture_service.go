package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/league-stats/internal/domain/fixture"
)

// FixtureListFilter narrows the fixture listing. Empty fields match everything.
type FixtureListFilter struct {
	SeasonID    string
	Competition string
	Status      string
}

// FixtureService exposes the read-only match record.
type FixtureService struct {
	fixtureRepo fixture.Repository
}

func NewFixtureService(fixtureRepo fixture.Repository) *FixtureService {
	return &FixtureService{fixtureRepo: fixtureRepo}
}

func (s *FixtureService) List(ctx context.Context, filter FixtureListFilter) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.List")
	defer span.End()

	items, err := s.fixtureRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}

	seasonID := strings.TrimSpace(filter.SeasonID)
	competition := strings.TrimSpace(filter.Competition)
	status := fixture.NormalizeStatus(filter.Status)
	if strings.TrimSpace(filter.Status) == "" {
		status = ""
	}

	out := make([]fixture.Fixture, 0, len(items))
	for _, item := range items {
		if seasonID != "" && item.SeasonID != seasonID {
			continue
		}
		if competition != "" && item.Competition != competition {
			continue
		}
		if status != "" && fixture.NormalizeStatus(item.Status) != status {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *FixtureService) GetByID(ctx context.Context, fixtureID string) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.GetByID")
	defer span.End()

	fixtureID = strings.TrimSpace(fixtureID)
	if fixtureID == "" {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}

	item, exists, err := s.fixtureRepo.GetByID(ctx, fixtureID)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("get fixture: %w", err)
	}
	if !exists {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture=%s", ErrNotFound, fixtureID)
	}
	return item, nil
}
