package season

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

// Configuration lifecycle. A season starts as a draft, gets its groups filled,
// and is only saved once ValidateConfig passes.
const (
	StatusDraft            = "draft"
	StatusGroupsConfigured = "groups_configured"
	StatusSaved            = "saved"
)

const (
	MinMatchesPerRound = 1
	MaxMatchesPerRound = 3
)

// Invariant-violation sentinels. Callers match with errors.Is and surface the
// reason verbatim; these are never coerced into silent fixes.
var (
	ErrGroupNotFound      = crerr.New("group not found in season")
	ErrGroupFull          = crerr.New("group is at capacity")
	ErrTeamAlreadyInGroup = crerr.New("team is already assigned to a group")
	ErrTeamNotInGroup     = crerr.New("team is not assigned to this group")
	ErrGroupCountLocked   = crerr.New("number of groups is locked once teams are assigned")
	ErrTooManyQualifiers  = crerr.New("qualifiers per group cannot exceed teams per group")
	ErrInvalidLegCount    = crerr.New("matches per round must be between 1 and 3")
)

// KnockoutConfig describes how teams leave the group stage. MatchesPerRound 1
// is a single leg, 2 home-and-away aggregate, 3 reserves a decider leg. Bracket
// generation itself consumes this elsewhere.
type KnockoutConfig struct {
	QualifiersPerGroup int
	MatchesPerRound    int
}

// Group is an ordered set of team references capped by the owning season's
// TeamsPerGroup.
type Group struct {
	ID      string
	Name    string
	TeamIDs []string
}

// Season is the structural aggregate standings and qualification depend on.
type Season struct {
	ID             string
	Name           string
	Year           int
	NumberOfGroups int
	TeamsPerGroup  int
	Groups         []Group
	Knockout       KnockoutConfig
	IsActive       bool
	Status         string
}

// Problem is one reason a configuration cannot be saved.
type Problem struct {
	Field  string
	Reason string
}

// ValidationResult is the discriminated outcome of ValidateConfig.
type ValidationResult struct {
	Valid    bool
	Problems []Problem
}

func (s Season) HasAssignedTeams() bool {
	for _, g := range s.Groups {
		if len(g.TeamIDs) > 0 {
			return true
		}
	}
	return false
}

// GroupByTeam indexes team id to group id, the authority for assignment
// exclusivity checks.
func (s Season) GroupByTeam() map[string]string {
	out := make(map[string]string)
	for _, g := range s.Groups {
		for _, teamID := range g.TeamIDs {
			out[teamID] = g.ID
		}
	}
	return out
}

func (s Season) groupIndex(groupID string) (int, error) {
	for i, g := range s.Groups {
		if g.ID == groupID {
			return i, nil
		}
	}
	return 0, crerr.Wrapf(ErrGroupNotFound, "group=%s season=%s", groupID, s.ID)
}

// SetNumberOfGroups changes the group count. Locked as soon as any team is
// assigned, so shrinking can never orphan teams silently.
func (s *Season) SetNumberOfGroups(n int) error {
	if n < 1 {
		return fmt.Errorf("number of groups must be at least 1")
	}
	if n != s.NumberOfGroups && s.HasAssignedTeams() {
		return crerr.Wrapf(ErrGroupCountLocked, "season=%s", s.ID)
	}
	s.NumberOfGroups = n
	return nil
}

// AssignTeam places a team into a group, rejecting capacity overruns and
// duplicate assignment anywhere in the season.
func (s *Season) AssignTeam(groupID, teamID string) error {
	if teamID == "" {
		return fmt.Errorf("team id is required")
	}
	idx, err := s.groupIndex(groupID)
	if err != nil {
		return err
	}
	if assignedGroup, ok := s.GroupByTeam()[teamID]; ok {
		return crerr.Wrapf(ErrTeamAlreadyInGroup, "team=%s group=%s", teamID, assignedGroup)
	}
	if s.TeamsPerGroup > 0 && len(s.Groups[idx].TeamIDs) >= s.TeamsPerGroup {
		return crerr.Wrapf(ErrGroupFull, "group=%s capacity=%d", groupID, s.TeamsPerGroup)
	}

	s.Groups[idx].TeamIDs = append(s.Groups[idx].TeamIDs, teamID)
	if s.Status == StatusDraft {
		s.Status = StatusGroupsConfigured
	}
	return nil
}

func (s *Season) RemoveTeam(groupID, teamID string) error {
	idx, err := s.groupIndex(groupID)
	if err != nil {
		return err
	}
	for i, id := range s.Groups[idx].TeamIDs {
		if id == teamID {
			s.Groups[idx].TeamIDs = append(s.Groups[idx].TeamIDs[:i], s.Groups[idx].TeamIDs[i+1:]...)
			return nil
		}
	}
	return crerr.Wrapf(ErrTeamNotInGroup, "team=%s group=%s", teamID, groupID)
}

// SetKnockout validates and applies the knockout configuration.
func (s *Season) SetKnockout(cfg KnockoutConfig) error {
	if cfg.MatchesPerRound < MinMatchesPerRound || cfg.MatchesPerRound > MaxMatchesPerRound {
		return crerr.Wrapf(ErrInvalidLegCount, "matchesPerRound=%d", cfg.MatchesPerRound)
	}
	if cfg.QualifiersPerGroup < 1 {
		return fmt.Errorf("qualifiers per group must be at least 1")
	}
	if cfg.QualifiersPerGroup > s.TeamsPerGroup {
		return crerr.Wrapf(ErrTooManyQualifiers, "qualifiers=%d teamsPerGroup=%d", cfg.QualifiersPerGroup, s.TeamsPerGroup)
	}
	s.Knockout = cfg
	return nil
}

// ValidateConfig checks everything the save gate requires and reports every
// problem found, not just the first.
func (s Season) ValidateConfig() ValidationResult {
	var problems []Problem

	if s.Name == "" {
		problems = append(problems, Problem{Field: "name", Reason: "name is required"})
	}
	if s.NumberOfGroups < 1 {
		problems = append(problems, Problem{Field: "numberOfGroups", Reason: "must be at least 1"})
	}
	if s.TeamsPerGroup < 1 {
		problems = append(problems, Problem{Field: "teamsPerGroup", Reason: "must be at least 1"})
	}
	if len(s.Groups) != s.NumberOfGroups {
		problems = append(problems, Problem{
			Field:  "groups",
			Reason: fmt.Sprintf("expected %d groups, have %d", s.NumberOfGroups, len(s.Groups)),
		})
	}

	assigned := make(map[string]string)
	for _, g := range s.Groups {
		if len(g.TeamIDs) == 0 {
			problems = append(problems, Problem{
				Field:  "groups",
				Reason: fmt.Sprintf("group %s has no teams assigned", g.ID),
			})
		}
		if s.TeamsPerGroup > 0 && len(g.TeamIDs) > s.TeamsPerGroup {
			problems = append(problems, Problem{
				Field:  "groups",
				Reason: fmt.Sprintf("group %s exceeds capacity of %d", g.ID, s.TeamsPerGroup),
			})
		}
		for _, teamID := range g.TeamIDs {
			if prev, ok := assigned[teamID]; ok {
				problems = append(problems, Problem{
					Field:  "groups",
					Reason: fmt.Sprintf("team %s assigned to both group %s and group %s", teamID, prev, g.ID),
				})
				continue
			}
			assigned[teamID] = g.ID
		}
	}

	if s.Knockout.MatchesPerRound < MinMatchesPerRound || s.Knockout.MatchesPerRound > MaxMatchesPerRound {
		problems = append(problems, Problem{Field: "matchesPerRound", Reason: "must be between 1 and 3"})
	}
	if s.Knockout.QualifiersPerGroup < 1 {
		problems = append(problems, Problem{Field: "qualifiersPerGroup", Reason: "must be at least 1"})
	} else if s.Knockout.QualifiersPerGroup > s.TeamsPerGroup {
		problems = append(problems, Problem{Field: "qualifiersPerGroup", Reason: "cannot exceed teams per group"})
	}

	return ValidationResult{Valid: len(problems) == 0, Problems: problems}
}
