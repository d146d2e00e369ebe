package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/league-stats/internal/domain/fixture"
	"github.com/riskibarqy/league-stats/internal/domain/season"
	"github.com/riskibarqy/league-stats/internal/domain/team"
	"github.com/riskibarqy/league-stats/internal/domain/user"
)

func userPrincipal(admin bool) user.Principal {
	return user.Principal{UserID: "user-1", Email: "user@example.com", IsAdmin: admin}
}

type stubFixtureRepository struct {
	mu        sync.Mutex
	items     []fixture.Fixture
	err       error
	listCalls int
}

func (r *stubFixtureRepository) List(context.Context) ([]fixture.Fixture, error) {
	r.mu.Lock()
	r.listCalls++
	r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return append([]fixture.Fixture(nil), r.items...), nil
}

func (r *stubFixtureRepository) GetByID(_ context.Context, fixtureID string) (fixture.Fixture, bool, error) {
	if r.err != nil {
		return fixture.Fixture{}, false, r.err
	}
	for _, item := range r.items {
		if item.ID == fixtureID {
			return item, true, nil
		}
	}
	return fixture.Fixture{}, false, nil
}

func (r *stubFixtureRepository) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listCalls
}

type stubTeamRepository struct {
	items []team.Team
	err   error
}

func (r *stubTeamRepository) List(context.Context) ([]team.Team, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]team.Team(nil), r.items...), nil
}

func (r *stubTeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	if r.err != nil {
		return team.Team{}, false, r.err
	}
	for _, item := range r.items {
		if item.ID == teamID {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}

type stubSeasonRepository struct {
	mu    sync.Mutex
	items map[string]season.Season
	order []string
	err   error
}

func newStubSeasonRepository(items ...season.Season) *stubSeasonRepository {
	r := &stubSeasonRepository{items: make(map[string]season.Season)}
	for _, item := range items {
		r.items[item.ID] = item
		r.order = append(r.order, item.ID)
	}
	return r
}

func (r *stubSeasonRepository) List(context.Context) ([]season.Season, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]season.Season, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *stubSeasonRepository) GetByID(_ context.Context, seasonID string) (season.Season, bool, error) {
	if r.err != nil {
		return season.Season{}, false, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[seasonID]
	return item, ok, nil
}

func (r *stubSeasonRepository) Create(_ context.Context, s season.Season) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[s.ID] = s
	r.order = append(r.order, s.ID)
	return nil
}

func (r *stubSeasonRepository) Update(_ context.Context, s season.Season) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[s.ID] = s
	return nil
}

func (r *stubSeasonRepository) SetActive(_ context.Context, seasonID string) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, item := range r.items {
		item.IsActive = id == seasonID
		r.items[id] = item
	}
	return nil
}

func (r *stubSeasonRepository) Delete(_ context.Context, seasonID string) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, seasonID)
	for i, id := range r.order {
		if id == seasonID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type stubIDGenerator struct {
	next int
}

func (g *stubIDGenerator) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("generated-%d", g.next), nil
}
