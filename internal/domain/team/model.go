package team

import "fmt"

// Player is a roster member of one club. IDs are unique within their team only.
type Player struct {
	ID           string
	Name         string
	JerseyNumber int
	IsGoalkeeper bool
	IsCaptain    bool
}

// Team is a club in the league catalog. Fixtures and groups reference teams,
// they never own them.
type Team struct {
	ID      string
	Name    string
	LogoURL string
	Roster  []Player
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.JerseyNumber < 0 {
		return fmt.Errorf("player jersey number cannot be negative")
	}

	return nil
}

// Validate enforces catalog invariants: at most one goalkeeper and one captain
// per roster, unique player ids and jersey numbers.
func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	seenIDs := make(map[string]struct{}, len(t.Roster))
	seenJerseys := make(map[int]struct{}, len(t.Roster))
	goalkeepers := 0
	captains := 0
	for _, p := range t.Roster {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("roster of team %s: %w", t.ID, err)
		}
		if _, ok := seenIDs[p.ID]; ok {
			return fmt.Errorf("duplicate player id %s in team %s", p.ID, t.ID)
		}
		seenIDs[p.ID] = struct{}{}
		if _, ok := seenJerseys[p.JerseyNumber]; ok {
			return fmt.Errorf("duplicate jersey number %d in team %s", p.JerseyNumber, t.ID)
		}
		seenJerseys[p.JerseyNumber] = struct{}{}
		if p.IsGoalkeeper {
			goalkeepers++
		}
		if p.IsCaptain {
			captains++
		}
	}
	if goalkeepers > 1 {
		return fmt.Errorf("team %s has %d goalkeepers, at most one allowed", t.ID, goalkeepers)
	}
	if captains > 1 {
		return fmt.Errorf("team %s has %d captains, at most one allowed", t.ID, captains)
	}

	return nil
}

// PlayerIndex maps player id to roster entry. Built once per snapshot so event
// resolution stays O(1) instead of scanning the roster per event.
func (t Team) PlayerIndex() map[string]Player {
	out := make(map[string]Player, len(t.Roster))
	for _, p := range t.Roster {
		out[p.ID] = p
	}
	return out
}

// Goalkeeper returns the roster goalkeeper present in the given lineup, if any.
func (t Team) Goalkeeper(lineup map[string]struct{}) (Player, bool) {
	for _, p := range t.Roster {
		if !p.IsGoalkeeper {
			continue
		}
		if _, ok := lineup[p.ID]; ok {
			return p, true
		}
	}
	return Player{}, false
}
