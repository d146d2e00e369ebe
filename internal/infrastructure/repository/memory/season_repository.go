package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/league-stats/internal/domain/season"
)

// SeasonRepository keeps seasons under a single mutex so SetActive flips the
// active flag atomically: no reader ever observes zero or two active seasons.
type SeasonRepository struct {
	mu    sync.RWMutex
	items map[string]season.Season
	order []string
}

func NewSeasonRepository(seasons []season.Season) *SeasonRepository {
	r := &SeasonRepository{items: make(map[string]season.Season, len(seasons))}
	for _, item := range seasons {
		r.items[item.ID] = item
		r.order = append(r.order, item.ID)
	}
	return r
}

func (r *SeasonRepository) List(_ context.Context) ([]season.Season, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]season.Season, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *SeasonRepository) GetByID(_ context.Context, seasonID string) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[seasonID]
	return item, ok, nil
}

func (r *SeasonRepository) Create(_ context.Context, s season.Season) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[s.ID]; exists {
		return fmt.Errorf("season %s already exists", s.ID)
	}
	r.items[s.ID] = s
	r.order = append(r.order, s.ID)
	return nil
}

func (r *SeasonRepository) Update(_ context.Context, s season.Season) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[s.ID]; !exists {
		return fmt.Errorf("season %s does not exist", s.ID)
	}
	r.items[s.ID] = s
	return nil
}

func (r *SeasonRepository) SetActive(_ context.Context, seasonID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[seasonID]; !exists {
		return fmt.Errorf("season %s does not exist", seasonID)
	}
	for id, item := range r.items {
		item.IsActive = id == seasonID
		r.items[id] = item
	}
	return nil
}

func (r *SeasonRepository) Delete(_ context.Context, seasonID string) error {
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
