package postgres

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/league-stats/internal/domain/season"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	const query = `SELECT * FROM seasons WHERE deleted_at IS NULL ORDER BY id`

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select seasons: %w", err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		item, err := seasonFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID string) (season.Season, bool, error) {
	const query = `SELECT * FROM seasons WHERE public_id = $1 AND deleted_at IS NULL`

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, seasonID); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get season: %w", err)
	}

	item, err := seasonFromRow(row)
	if err != nil {
		return season.Season{}, false, err
	}
	return item, true, nil
}

func (r *SeasonRepository) Create(ctx context.Context, s season.Season) error {
	const query = `
		INSERT INTO seasons (
			public_id, name, year, number_of_groups, teams_per_group,
			groups, qualifiers_per_group, matches_per_round, is_active, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())`

	groups, err := sonic.Marshal(s.Groups)
	if err != nil {
		return fmt.Errorf("encode groups of season %s: %w", s.ID, err)
	}

	_, err = r.db.ExecContext(ctx, query,
		s.ID, s.Name, s.Year, s.NumberOfGroups, s.TeamsPerGroup,
		groups, s.Knockout.QualifiersPerGroup, s.Knockout.MatchesPerRound, s.IsActive, s.Status,
	)
	if err != nil {
		return fmt.Errorf("insert season: %w", err)
	}
	return nil
}

func (r *SeasonRepository) Update(ctx context.Context, s season.Season) error {
	const query = `
		UPDATE seasons SET
			name = $2, year = $3, number_of_groups = $4, teams_per_group = $5,
			groups = $6, qualifiers_per_group = $7, matches_per_round = $8, status = $9,
			updated_at = NOW()
		WHERE public_id = $1 AND deleted_at IS NULL`

	groups, err := sonic.Marshal(s.Groups)
	if err != nil {
		return fmt.Errorf("encode groups of season %s: %w", s.ID, err)
	}

	result, err := r.db.ExecContext(ctx, query,
		s.ID, s.Name, s.Year, s.NumberOfGroups, s.TeamsPerGroup,
		groups, s.Knockout.QualifiersPerGroup, s.Knockout.MatchesPerRound, s.Status,
	)
	if err != nil {
		return fmt.Errorf("update season: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update season rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("season %s does not exist", s.ID)
	}
	return nil
}

// SetActive clears and sets the active flag in one transaction so readers
// never observe zero or two active seasons.
func (r *SeasonRepository) SetActive(ctx context.Context, seasonID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin set active: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx,
		`UPDATE seasons SET is_active = FALSE, updated_at = NOW() WHERE is_active AND deleted_at IS NULL`,
	); err != nil {
		return fmt.Errorf("clear active seasons: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE seasons SET is_active = TRUE, updated_at = NOW() WHERE public_id = $1 AND deleted_at IS NULL`,
		seasonID,
	)
	if err != nil {
		return fmt.Errorf("set active season: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set active rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("season %s does not exist", seasonID)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit set active: %w", err)
	}
	return nil
}

func (r *SeasonRepository) Delete(ctx context.Context, seasonID string) error {
	const query = `UPDATE seasons SET deleted_at = NOW(), updated_at = NOW() WHERE public_id = $1 AND deleted_at IS NULL`

	if _, err := r.db.ExecContext(ctx, query, seasonID); err != nil {
		return fmt.Errorf("delete season: %w", err)
	}
	return nil
}
