package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/league-stats/internal/domain/season"
	"github.com/riskibarqy/league-stats/internal/domain/team"
	"github.com/riskibarqy/league-stats/internal/domain/user"
	"github.com/riskibarqy/league-stats/internal/platform/id"
)

const (
	defaultNumberOfGroups     = 4
	defaultTeamsPerGroup      = 4
	defaultQualifiersPerGroup = 2
	defaultMatchesPerRound    = 2
)

// SeasonService owns the season configuration lifecycle. Every mutation is
// admin-gated and authorization is checked before any state is touched.
type SeasonService struct {
	seasonRepo season.Repository
	teamRepo   team.Repository
	idGen      id.Generator
}

func NewSeasonService(seasonRepo season.Repository, teamRepo team.Repository, idGen id.Generator) *SeasonService {
	return &SeasonService{
		seasonRepo: seasonRepo,
		teamRepo:   teamRepo,
		idGen:      idGen,
	}
}

type CreateSeasonInput struct {
	Name               string
	Year               int
	NumberOfGroups     int
	TeamsPerGroup      int
	QualifiersPerGroup int
	MatchesPerRound    int
}

func requireAdmin(principal user.Principal) error {
	if !principal.IsAdmin {
		return fmt.Errorf("%w: admin privileges required", ErrUnauthorized)
	}
	return nil
}

func (s *SeasonService) List(ctx context.Context) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.List")
	defer span.End()

	items, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return items, nil
}

func (s *SeasonService) GetByID(ctx context.Context, seasonID string) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.GetByID")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return season.Season{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	item, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}
	return item, nil
}

// Active returns the currently active season, if any.
func (s *SeasonService) Active(ctx context.Context) (season.Season, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Active")
	defer span.End()

	items, err := s.seasonRepo.List(ctx)
	if err != nil {
		return season.Season{}, false, fmt.Errorf("list seasons: %w", err)
	}
	for _, item := range items {
		if item.IsActive {
			return item, true, nil
		}
	}
	return season.Season{}, false, nil
}

// Create builds a draft season with empty lettered groups. Omitted structure
// fields fall back to the 4x4 default with two qualifiers over two legs.
func (s *SeasonService) Create(ctx context.Context, principal user.Principal, input CreateSeasonInput) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Create")
	defer span.End()

	if err := requireAdmin(principal); err != nil {
		return season.Season{}, err
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return season.Season{}, fmt.Errorf("%w: season name is required", ErrInvalidInput)
	}
	if input.NumberOfGroups == 0 {
		input.NumberOfGroups = defaultNumberOfGroups
	}
	if input.TeamsPerGroup == 0 {
		input.TeamsPerGroup = defaultTeamsPerGroup
	}
	if input.QualifiersPerGroup == 0 {
		input.QualifiersPerGroup = defaultQualifiersPerGroup
	}
	if input.MatchesPerRound == 0 {
		input.MatchesPerRound = defaultMatchesPerRound
	}
	if input.NumberOfGroups < 1 {
		return season.Season{}, fmt.Errorf("%w: number of groups must be at least 1", ErrInvalidInput)
	}
	if input.TeamsPerGroup < 1 {
		return season.Season{}, fmt.Errorf("%w: teams per group must be at least 1", ErrInvalidInput)
	}

	seasonID, err := s.idGen.NewID()
	if err != nil {
		return season.Season{}, fmt.Errorf("generate season id: %w", err)
	}

	item := season.Season{
		ID:             seasonID,
		Name:           input.Name,
		Year:           input.Year,
		NumberOfGroups: input.NumberOfGroups,
		TeamsPerGroup:  input.TeamsPerGroup,
		Groups:         buildGroups(input.NumberOfGroups),
		Status:         season.StatusDraft,
	}
	if err := (&item).SetKnockout(season.KnockoutConfig{
		QualifiersPerGroup: input.QualifiersPerGroup,
		MatchesPerRound:    input.MatchesPerRound,
	}); err != nil {
		return season.Season{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.seasonRepo.Create(ctx, item); err != nil {
		return season.Season{}, fmt.Errorf("create season: %w", err)
	}
	return item, nil
}

// buildGroups names groups Group A, Group B, ... and falls back to numbering
// past the alphabet.
func buildGroups(n int) []season.Group {
	out := make([]season.Group, 0, n)
	for i := 0; i < n; i++ {
		label := ""
		if i < 26 {
			label = string(rune('A' + i))
		} else {
			label = fmt.Sprintf("%d", i+1)
		}
		out = append(out, season.Group{
			ID:   "group-" + strings.ToLower(label),
			Name: "Group " + label,
		})
	}
	return out
}

type UpdateSeasonInput struct {
	Name           string
	Year           int
	NumberOfGroups int
	TeamsPerGroup  int
}

// Update edits structural fields of a season. Resizing the group list is only
// possible while no teams are assigned.
func (s *SeasonService) Update(ctx context.Context, principal user.Principal, seasonID string, input UpdateSeasonInput) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Update")
	defer span.End()

	if err := requireAdmin(principal); err != nil {
		return season.Season{}, err
	}

	item, err := s.GetByID(ctx, seasonID)
	if err != nil {
		return season.Season{}, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		item.Name = name
	}
	if input.Year != 0 {
		item.Year = input.Year
	}
	if input.TeamsPerGroup != 0 {
		if input.TeamsPerGroup < 1 {
			return season.Season{}, fmt.Errorf("%w: teams per group must be at least 1", ErrInvalidInput)
		}
		item.TeamsPerGroup = input.TeamsPerGroup
	}
	if input.NumberOfGroups != 0 && input.NumberOfGroups != item.NumberOfGroups {
		if err := (&item).SetNumberOfGroups(input.NumberOfGroups); err != nil {
			return season.Season{}, s.configError(err)
		}
		item.Groups = buildGroups(input.NumberOfGroups)
	}

	if err := s.seasonRepo.Update(ctx, item); err != nil {
		return season.Season{}, fmt.Errorf("update season: %w", err)
	}
	return item, nil
}

// AssignTeam places a catalog team into a group of a season.
func (s *SeasonService) AssignTeam(ctx context.Context, principal user.Principal, seasonID, groupID, teamID string) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.AssignTeam")
	defer span.End()

	if err := requireAdmin(principal); err != nil {
		return season.Season{}, err
	}

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return season.Season{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return season.Season{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	item, err := s.GetByID(ctx, seasonID)
	if err != nil {
		return season.Season{}, err
	}
	if err := (&item).AssignTeam(groupID, teamID); err != nil {
		return season.Season{}, s.configError(err)
	}

	if err := s.seasonRepo.Update(ctx, item); err != nil {
		return season.Season{}, fmt.Errorf("update season: %w", err)
	}
	return item, nil
}

func (s *SeasonService) RemoveTeam(ctx context.Context, principal user.Principal, seasonID, groupID, teamID string) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.RemoveTeam")
	defer span.End()

	if err := requireAdmin(principal); err != nil {
		return season.Season{}, err
	}

	item, err := s.GetByID(ctx, seasonID)
	if err != nil {
		return season.Season{}, err
	}
	if err := (&item).RemoveTeam(groupID, teamID); err != nil {
		return season.Season{}, s.configError(err)
	}

	if err := s.seasonRepo.Update(ctx, item); err != nil {
		return season.Season{}, fmt.Errorf("update season: %w", err)
	}
	return item, nil
}

// SetKnockout applies the qualification configuration of a season.
func (s *SeasonService) SetKnockout(ctx context.Context, principal user.Principal, seasonID string, cfg season.KnockoutConfig) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.SetKnockout")
	defer span.End()

	if err := requireAdmin(principal); err != nil {
		return season.Season{}, err
	}

	item, err := s.GetByID(ctx, seasonID)
	if err != nil {
		return season.Season{}, err
	}
	if err := (&item).SetKnockout(cfg); err != nil {
		return season.Season{}, s.configError(err)
	}

	if err := s.seasonRepo.Update(ctx, item); err != nil {
		return season.Season{}, fmt.Errorf("update season: %w", err)
	}
	return item, nil
}

// Save runs the full configuration gate. An invalid configuration is reported
// with every problem found and leaves the stored season untouched.
func (s *SeasonService) Save(ctx context.Context, principal user.Principal, seasonID string) (season.ValidationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Save")
	defer span.End()

	if err := requireAdmin(principal); err != nil {
		return season.ValidationResult{}, err
	}

	item, err := s.GetByID(ctx, seasonID)
	if err != nil {
		return season.ValidationResult{}, err
	}

	result := item.ValidateConfig()
	if !result.Valid {
		return result, nil
	}

	item.Status = season.StatusSaved
	if err := s.seasonRepo.Update(ctx, item); err != nil {
		return season.ValidationResult{}, fmt.Errorf("save season: %w", err)
	}
	return result, nil
}

// Activate makes the season the single active one. Only saved seasons qualify;
// the repository flips the flag atomically.
func (s *SeasonService) Activate(ctx context.Context, principal user.Principal, seasonID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Activate")
	defer span.End()

	if err := requireAdmin(principal); err != nil {
		return err
	}

	item, err := s.GetByID(ctx, seasonID)
	if err != nil {
		return err
	}
	if item.Status != season.StatusSaved {
		return fmt.Errorf("%w: season %s is not saved", ErrConflict, seasonID)
	}

	if err := s.seasonRepo.SetActive(ctx, seasonID); err != nil {
		return fmt.Errorf("activate season: %w", err)
	}
	return nil
}

func (s *SeasonService) Delete(ctx context.Context, principal user.Principal, seasonID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Delete")
	defer span.End()

	if err := requireAdmin(principal); err != nil {
		return err
	}

	item, err := s.GetByID(ctx, seasonID)
	if err != nil {
		return err
	}
	if item.IsActive {
		return fmt.Errorf("%w: active season cannot be deleted", ErrConflict)
	}

	if err := s.seasonRepo.Delete(ctx, seasonID); err != nil {
		return fmt.Errorf("delete season: %w", err)
	}
	return nil
}

// configError maps domain invariant violations onto the service error
// classes. Both sentinels stay matchable via errors.Is.
func (s *SeasonService) configError(err error) error {
	switch {
	case errors.Is(err, season.ErrGroupNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
}
