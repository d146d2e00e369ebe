package fixture

import "context"

// Repository describes fixture persistence needs from use cases. Fixtures are
// appended by match recording elsewhere; this engine only reads them.
type Repository interface {
	List(ctx context.Context) ([]Fixture, error)
	GetByID(ctx context.Context, fixtureID string) (Fixture, bool, error)
}
