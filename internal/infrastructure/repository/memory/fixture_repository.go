package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/league-stats/internal/domain/fixture"
)

type FixtureRepository struct {
	mu    sync.RWMutex
	items []fixture.Fixture
}

func NewFixtureRepository(fixtures []fixture.Fixture) *FixtureRepository {
	return &FixtureRepository{items: append([]fixture.Fixture(nil), fixtures...)}
}

func (r *FixtureRepository) List(_ context.Context) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fixture.Fixture, 0, len(r.items))
	out = append(out, r.items...)
	return out, nil
}

func (r *FixtureRepository) GetByID(_ context.Context, fixtureID string) (fixture.Fixture, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == fixtureID {
			return item, true, nil
		}
	}
	return fixture.Fixture{}, false, nil
}
