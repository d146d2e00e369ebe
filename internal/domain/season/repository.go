package season

import "context"

// Repository describes season persistence needs from use cases.
//
// SetActive must flip the active flag atomically from the caller's
// perspective: after it returns, exactly the given season is active and no
// reader observes an intermediate zero- or multi-active state.
type Repository interface {
	List(ctx context.Context) ([]Season, error)
	GetByID(ctx context.Context, seasonID string) (Season, bool, error)
	Create(ctx context.Context, s Season) error
	Update(ctx context.Context, s Season) error
	SetActive(ctx context.Context, seasonID string) error
	Delete(ctx context.Context, seasonID string) error
}
