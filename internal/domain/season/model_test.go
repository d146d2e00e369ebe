package season

import (
	"errors"
	"testing"
)

func draftSeason() Season {
	return Season{
		ID:             "season-1",
		Name:           "Season 2026",
		Year:           2026,
		NumberOfGroups: 2,
		TeamsPerGroup:  2,
		Groups: []Group{
			{ID: "group-a", Name: "Group A"},
			{ID: "group-b", Name: "Group B"},
		},
		Knockout: KnockoutConfig{QualifiersPerGroup: 2, MatchesPerRound: 2},
		Status:   StatusDraft,
	}
}

func TestAssignTeam(t *testing.T) {
	t.Parallel()

	t.Run("promotes draft to groups configured", func(t *testing.T) {
		s := draftSeason()
		if err := s.AssignTeam("group-a", "team-1"); err != nil {
			t.Fatalf("AssignTeam error: %v", err)
		}
		if s.Status != StatusGroupsConfigured {
			t.Fatalf("unexpected status: got=%s want=%s", s.Status, StatusGroupsConfigured)
		}
	})

	t.Run("rejects capacity overrun", func(t *testing.T) {
		s := draftSeason()
		_ = s.AssignTeam("group-a", "team-1")
		_ = s.AssignTeam("group-a", "team-2")
		err := s.AssignTeam("group-a", "team-3")
		if !errors.Is(err, ErrGroupFull) {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(s.Groups[0].TeamIDs) != 2 {
			t.Fatalf("rejected assignment mutated the group: %+v", s.Groups[0])
		}
	})

	t.Run("rejects duplicate assignment across groups", func(t *testing.T) {
		s := draftSeason()
		_ = s.AssignTeam("group-a", "team-1")
		err := s.AssignTeam("group-b", "team-1")
		if !errors.Is(err, ErrTeamAlreadyInGroup) {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects unknown group", func(t *testing.T) {
		s := draftSeason()
		err := s.AssignTeam("group-z", "team-1")
		if !errors.Is(err, ErrGroupNotFound) {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRemoveTeam(t *testing.T) {
	t.Parallel()

	s := draftSeason()
	_ = s.AssignTeam("group-a", "team-1")

	if err := s.RemoveTeam("group-a", "team-1"); err != nil {
		t.Fatalf("RemoveTeam error: %v", err)
	}
	if err := s.RemoveTeam("group-a", "team-1"); !errors.Is(err, ErrTeamNotInGroup) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetNumberOfGroups(t *testing.T) {
	t.Parallel()

	s := draftSeason()
	if err := s.SetNumberOfGroups(4); err != nil {
		t.Fatalf("SetNumberOfGroups error: %v", err)
	}

	_ = s.AssignTeam("group-a", "team-1")
	if err := s.SetNumberOfGroups(3); !errors.Is(err, ErrGroupCountLocked) {
		t.Fatalf("unexpected error: %v", err)
	}
	// Re-stating the current count is a no-op, not a violation.
	if err := s.SetNumberOfGroups(4); err != nil {
		t.Fatalf("SetNumberOfGroups same count error: %v", err)
	}
}

func TestSetKnockout(t *testing.T) {
	t.Parallel()

	s := draftSeason()

	if err := s.SetKnockout(KnockoutConfig{QualifiersPerGroup: 3, MatchesPerRound: 2}); !errors.Is(err, ErrTooManyQualifiers) {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SetKnockout(KnockoutConfig{QualifiersPerGroup: 1, MatchesPerRound: 0}); !errors.Is(err, ErrInvalidLegCount) {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SetKnockout(KnockoutConfig{QualifiersPerGroup: 1, MatchesPerRound: 4}); !errors.Is(err, ErrInvalidLegCount) {
		t.Fatalf("unexpected error: %v", err)
	}
	for legs := MinMatchesPerRound; legs <= MaxMatchesPerRound; legs++ {
		if err := s.SetKnockout(KnockoutConfig{QualifiersPerGroup: 2, MatchesPerRound: legs}); err != nil {
			t.Fatalf("SetKnockout legs=%d error: %v", legs, err)
		}
	}
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	t.Run("fully assigned season passes", func(t *testing.T) {
		s := draftSeason()
		_ = s.AssignTeam("group-a", "team-1")
		_ = s.AssignTeam("group-a", "team-2")
		_ = s.AssignTeam("group-b", "team-3")
		_ = s.AssignTeam("group-b", "team-4")

		result := s.ValidateConfig()
		if !result.Valid {
			t.Fatalf("expected valid config, got problems: %+v", result.Problems)
		}
	})

	t.Run("reports every problem", func(t *testing.T) {
		s := draftSeason()
		s.Name = ""
		s.Knockout.QualifiersPerGroup = 3 // exceeds teams per group

		result := s.ValidateConfig()
		if result.Valid {
			t.Fatal("expected invalid config")
		}
		// Empty groups (x2), missing name, qualifier overrun.
		if len(result.Problems) != 4 {
			t.Fatalf("unexpected problem count: got=%d want=4 problems=%+v", len(result.Problems), result.Problems)
		}
	})

	t.Run("flags group count mismatch", func(t *testing.T) {
		s := draftSeason()
		s.NumberOfGroups = 3

		result := s.ValidateConfig()
		if result.Valid {
			t.Fatal("expected invalid config")
		}
		found := false
		for _, p := range result.Problems {
			if p.Field == "groups" {
				found = true
			}
		}
		if !found {
			t.Fatalf("group mismatch not reported: %+v", result.Problems)
		}
	})

	t.Run("flags duplicate assignment", func(t *testing.T) {
		s := draftSeason()
		s.Groups[0].TeamIDs = []string{"team-1", "team-2"}
		s.Groups[1].TeamIDs = []string{"team-1", "team-3"}

		result := s.ValidateConfig()
		if result.Valid {
			t.Fatal("expected invalid config")
		}
	})
}
