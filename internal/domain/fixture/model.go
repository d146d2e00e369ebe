package fixture

import (
	"strconv"
	"strings"

	"github.com/riskibarqy/league-stats/internal/domain/team"
)

const (
	StatusScheduled = "scheduled"
	StatusLive      = "live"
	StatusCompleted = "completed"
	StatusPostponed = "postponed"
	StatusCancelled = "cancelled"
)

const (
	EventGoal       = "goal"
	EventYellowCard = "yellow_card"
	EventRedCard    = "red_card"
)

// Event is an immutable in-match fact. AssistPlayerID is only meaningful for
// goal events and may be empty.
type Event struct {
	Type           string `json:"type"`
	TeamID         string `json:"teamId"`
	PlayerID       string `json:"playerId"`
	AssistPlayerID string `json:"assistPlayerId,omitempty"`
}

// Score is a non-negative goal count. Upstream records sometimes carry scores
// as quoted strings, so decoding coerces and falls back to 0 instead of failing.
type Score int

func (s *Score) UnmarshalJSON(data []byte) error {
	*s = Score(ParseScore(string(data)))
	return nil
}

// ParseScore coerces a raw numeric or quoted-string score to a non-negative
// int, defaulting to 0 when the value does not parse.
func ParseScore(raw string) int {
	value := strings.TrimSpace(raw)
	value = strings.Trim(value, `"`)
	if value == "" || value == "null" {
		return 0
	}

	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Fixture is one scheduled or played match. Both team snapshots are embedded so
// event resolution never needs a second catalog lookup.
type Fixture struct {
	ID          string
	HomeTeam    team.Team
	AwayTeam    team.Team
	HomeScore   Score
	AwayScore   Score
	Status      string
	SeasonID    string
	Competition string
	Events      []Event
	HomeLineup  []string
	AwayLineup  []string
}

func NormalizeStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func IsCompletedStatus(status string) bool {
	return NormalizeStatus(status) == StatusCompleted
}

// HasEvents reports whether an events collection was recorded at all. A
// completed fixture without one contributes nothing to player leaderboards.
func (f Fixture) HasEvents() bool {
	return f.Events != nil
}

// TeamForEvent resolves an event's team reference against the two embedded
// snapshots. Events referencing neither side are dropped by the aggregation.
func (f Fixture) TeamForEvent(e Event) (team.Team, bool) {
	switch e.TeamID {
	case f.HomeTeam.ID:
		return f.HomeTeam, true
	case f.AwayTeam.ID:
		return f.AwayTeam, true
	default:
		return team.Team{}, false
	}
}

// HomeLineupSet and AwayLineupSet expose lineups as membership sets for
// clean-sheet attribution.
func (f Fixture) HomeLineupSet() map[string]struct{} {
	return lineupSet(f.HomeLineup)
}

func (f Fixture) AwayLineupSet() map[string]struct{} {
	return lineupSet(f.AwayLineup)
}

func lineupSet(ids []string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		out[id] = struct{}{}
	}
	return out
}
