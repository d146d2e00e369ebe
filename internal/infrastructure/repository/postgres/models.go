package postgres

import (
	"database/sql"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/lib/pq"

	"github.com/riskibarqy/league-stats/internal/domain/fixture"
	"github.com/riskibarqy/league-stats/internal/domain/season"
	"github.com/riskibarqy/league-stats/internal/domain/team"
)

type teamTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	Name      string     `db:"name"`
	LogoURL   string     `db:"logo_url"`
	Roster    []byte     `db:"roster"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

func teamFromRow(row teamTableModel) (team.Team, error) {
	out := team.Team{
		ID:      row.PublicID,
		Name:    row.Name,
		LogoURL: row.LogoURL,
	}
	if len(row.Roster) > 0 {
		if err := sonic.Unmarshal(row.Roster, &out.Roster); err != nil {
			return team.Team{}, fmt.Errorf("decode roster of team %s: %w", row.PublicID, err)
		}
	}
	return out, nil
}

type fixtureTableModel struct {
	ID           int64          `db:"id"`
	PublicID     string         `db:"public_id"`
	HomeTeam     []byte         `db:"home_team"`
	AwayTeam     []byte         `db:"away_team"`
	HomeScore    int            `db:"home_score"`
	AwayScore    int            `db:"away_score"`
	Status       string         `db:"status"`
	SeasonID     sql.NullString `db:"season_public_id"`
	Competition  sql.NullString `db:"competition"`
	Events       []byte         `db:"events"`
	HomeLineup   pq.StringArray `db:"home_lineup"`
	AwayLineup   pq.StringArray `db:"away_lineup"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	DeletedAt    *time.Time     `db:"deleted_at"`
}

func fixtureFromRow(row fixtureTableModel) (fixture.Fixture, error) {
	out := fixture.Fixture{
		ID:          row.PublicID,
		HomeScore:   fixture.Score(row.HomeScore),
		AwayScore:   fixture.Score(row.AwayScore),
		Status:      fixture.NormalizeStatus(row.Status),
		SeasonID:    row.SeasonID.String,
		Competition: row.Competition.String,
		HomeLineup:  row.HomeLineup,
		AwayLineup:  row.AwayLineup,
	}
	if err := sonic.Unmarshal(row.HomeTeam, &out.HomeTeam); err != nil {
		return fixture.Fixture{}, fmt.Errorf("decode home team of fixture %s: %w", row.PublicID, err)
	}
	if err := sonic.Unmarshal(row.AwayTeam, &out.AwayTeam); err != nil {
		return fixture.Fixture{}, fmt.Errorf("decode away team of fixture %s: %w", row.PublicID, err)
	}
	// NULL means no events collection was recorded; an empty JSON array is a
	// recorded-but-empty collection. The distinction drives leaderboard
	// eligibility, so it has to survive the round trip.
	if row.Events != nil {
		out.Events = []fixture.Event{}
		if err := sonic.Unmarshal(row.Events, &out.Events); err != nil {
			return fixture.Fixture{}, fmt.Errorf("decode events of fixture %s: %w", row.PublicID, err)
		}
	}
	return out, nil
}

type seasonTableModel struct {
	ID                 int64      `db:"id"`
	PublicID           string     `db:"public_id"`
	Name               string     `db:"name"`
	Year               int        `db:"year"`
	NumberOfGroups     int        `db:"number_of_groups"`
	TeamsPerGroup      int        `db:"teams_per_group"`
	Groups             []byte     `db:"groups"`
	QualifiersPerGroup int        `db:"qualifiers_per_group"`
	MatchesPerRound    int        `db:"matches_per_round"`
	IsActive           bool       `db:"is_active"`
	Status             string     `db:"status"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
	DeletedAt          *time.Time `db:"deleted_at"`
}

func seasonFromRow(row seasonTableModel) (season.Season, error) {
	out := season.Season{
		ID:             row.PublicID,
		Name:           row.Name,
		Year:           row.Year,
		NumberOfGroups: row.NumberOfGroups,
		TeamsPerGroup:  row.TeamsPerGroup,
		Knockout: season.KnockoutConfig{
			QualifiersPerGroup: row.QualifiersPerGroup,
			MatchesPerRound:    row.MatchesPerRound,
		},
		IsActive: row.IsActive,
		Status:   row.Status,
	}
	if len(row.Groups) > 0 {
		if err := sonic.Unmarshal(row.Groups, &out.Groups); err != nil {
			return season.Season{}, fmt.Errorf("decode groups of season %s: %w", row.PublicID, err)
		}
	}
	return out, nil
}
