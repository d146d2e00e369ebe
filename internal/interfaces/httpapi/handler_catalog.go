package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-stats/internal/domain/fixture"
	"github.com/riskibarqy/league-stats/internal/domain/team"
	"github.com/riskibarqy/league-stats/internal/usecase"
)

type playerDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	JerseyNumber int    `json:"jerseyNumber"`
	IsGoalkeeper bool   `json:"isGoalkeeper,omitempty"`
	IsCaptain    bool   `json:"isCaptain,omitempty"`
}

type teamDTO struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	LogoURL string      `json:"logoUrl,omitempty"`
	Roster  []playerDTO `json:"roster,omitempty"`
}

type eventDTO struct {
	Type           string `json:"type"`
	TeamID         string `json:"teamId"`
	PlayerID       string `json:"playerId"`
	AssistPlayerID string `json:"assistPlayerId,omitempty"`
}

type fixtureDTO struct {
	ID          string     `json:"id"`
	HomeTeam    teamDTO    `json:"homeTeam"`
	AwayTeam    teamDTO    `json:"awayTeam"`
	HomeScore   int        `json:"homeScore"`
	AwayScore   int        `json:"awayScore"`
	Status      string     `json:"status"`
	SeasonID    string     `json:"seasonId,omitempty"`
	Competition string     `json:"competition,omitempty"`
	Events      []eventDTO `json:"events,omitempty"`
	HomeLineup  []string   `json:"homeLineup,omitempty"`
	AwayLineup  []string   `json:"awayLineup,omitempty"`
}

func teamToDTO(t team.Team, includeRoster bool) teamDTO {
	dto := teamDTO{ID: t.ID, Name: t.Name, LogoURL: t.LogoURL}
	if !includeRoster {
		return dto
	}
	dto.Roster = make([]playerDTO, 0, len(t.Roster))
	for _, p := range t.Roster {
		dto.Roster = append(dto.Roster, playerDTO{
			ID:           p.ID,
			Name:         p.Name,
			JerseyNumber: p.JerseyNumber,
			IsGoalkeeper: p.IsGoalkeeper,
			IsCaptain:    p.IsCaptain,
		})
	}
	return dto
}

func fixtureToDTO(fx fixture.Fixture) fixtureDTO {
	events := make([]eventDTO, 0, len(fx.Events))
	for _, ev := range fx.Events {
		events = append(events, eventDTO{
			Type:           ev.Type,
			TeamID:         ev.TeamID,
			PlayerID:       ev.PlayerID,
			AssistPlayerID: ev.AssistPlayerID,
		})
	}
	if fx.Events == nil {
		events = nil
	}

	return fixtureDTO{
		ID:          fx.ID,
		HomeTeam:    teamToDTO(fx.HomeTeam, false),
		AwayTeam:    teamToDTO(fx.AwayTeam, false),
		HomeScore:   int(fx.HomeScore),
		AwayScore:   int(fx.AwayScore),
		Status:      fx.Status,
		SeasonID:    fx.SeasonID,
		Competition: fx.Competition,
		Events:      events,
		HomeLineup:  fx.HomeLineup,
		AwayLineup:  fx.AwayLineup,
	}
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t, false))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	item, err := h.teamService.GetByID(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item, true))
}

func (h *Handler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtures")
	defer span.End()

	query := r.URL.Query()
	items, err := h.fixtureService.List(ctx, usecase.FixtureListFilter{
		SeasonID:    query.Get("seasonId"),
		Competition: query.Get("competition"),
		Status:      query.Get("status"),
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "list fixtures failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]fixtureDTO, 0, len(items))
	for _, fx := range items {
		out = append(out, fixtureToDTO(fx))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixture")
	defer span.End()

	fixtureID := r.PathValue("fixtureID")
	item, err := h.fixtureService.GetByID(ctx, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "get fixture failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureToDTO(item))
}
