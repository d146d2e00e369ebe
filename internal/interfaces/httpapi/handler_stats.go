package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-stats/internal/domain/stats"
)

type playerBoardRowDTO struct {
	PlayerID     string `json:"playerId"`
	PlayerName   string `json:"playerName"`
	JerseyNumber int    `json:"jerseyNumber"`
	TeamID       string `json:"teamId"`
	TeamName     string `json:"teamName"`
	TeamLogo     string `json:"teamLogo,omitempty"`
	Goals        int    `json:"goals,omitempty"`
	Assists      int    `json:"assists,omitempty"`
	CleanSheets  int    `json:"cleanSheets,omitempty"`
	Appearances  int    `json:"appearances,omitempty"`
	YellowCards  int    `json:"yellowCards,omitempty"`
	RedCards     int    `json:"redCards,omitempty"`
}

type diagnosticsDTO struct {
	SkippedEvents         int `json:"skippedEvents"`
	FixturesWithoutEvents int `json:"fixturesWithoutEvents"`
}

type leaderboardsDTO struct {
	Scorers      []playerBoardRowDTO `json:"scorers"`
	Assisters    []playerBoardRowDTO `json:"assisters"`
	CleanSheets  []playerBoardRowDTO `json:"cleanSheets"`
	Disciplinary []playerBoardRowDTO `json:"disciplinary"`
	Diagnostics  diagnosticsDTO      `json:"diagnostics"`
}

type teamStandingDTO struct {
	Position       int    `json:"position,omitempty"`
	TeamID         string `json:"teamId"`
	TeamName       string `json:"teamName"`
	TeamLogo       string `json:"teamLogo,omitempty"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	CleanSheets    int    `json:"cleanSheets"`
	Points         int    `json:"points"`
}

type teamTablesDTO struct {
	TopScoring         []teamStandingDTO `json:"topScoring"`
	BestDefense        []teamStandingDTO `json:"bestDefense"`
	BestGoalDifference []teamStandingDTO `json:"bestGoalDifference"`
	MostConceded       []teamStandingDTO `json:"mostConceded"`
}

func statsFilterFromQuery(r *http.Request) stats.Filter {
	query := r.URL.Query()
	return stats.Filter{
		SeasonID:    query.Get("seasonId"),
		Competition: query.Get("competition"),
	}
}

func standingToDTO(row stats.TeamStanding) teamStandingDTO {
	return teamStandingDTO{
		Position:       row.Position,
		TeamID:         row.TeamID,
		TeamName:       row.TeamName,
		TeamLogo:       row.TeamLogo,
		Played:         row.Played,
		Won:            row.Won,
		Drawn:          row.Drawn,
		Lost:           row.Lost,
		GoalsFor:       row.GoalsFor,
		GoalsAgainst:   row.GoalsAgainst,
		GoalDifference: row.GoalDifference,
		CleanSheets:    row.CleanSheets,
		Points:         row.Points,
	}
}

func standingsToDTO(rows []stats.TeamStanding) []teamStandingDTO {
	out := make([]teamStandingDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingToDTO(row))
	}
	return out
}

func leaderboardsToDTO(boards stats.Leaderboards) leaderboardsDTO {
	scorers := make([]playerBoardRowDTO, 0, len(boards.Scorers))
	for _, e := range boards.Scorers {
		scorers = append(scorers, playerBoardRowDTO{
			PlayerID: e.PlayerID, PlayerName: e.PlayerName, JerseyNumber: e.JerseyNumber,
			TeamID: e.TeamID, TeamName: e.TeamName, TeamLogo: e.TeamLogo,
			Goals: e.Goals,
		})
	}
	assisters := make([]playerBoardRowDTO, 0, len(boards.Assisters))
	for _, e := range boards.Assisters {
		assisters = append(assisters, playerBoardRowDTO{
			PlayerID: e.PlayerID, PlayerName: e.PlayerName, JerseyNumber: e.JerseyNumber,
			TeamID: e.TeamID, TeamName: e.TeamName, TeamLogo: e.TeamLogo,
			Assists: e.Assists,
		})
	}
	cleanSheets := make([]playerBoardRowDTO, 0, len(boards.CleanSheets))
	for _, e := range boards.CleanSheets {
		cleanSheets = append(cleanSheets, playerBoardRowDTO{
			PlayerID: e.PlayerID, PlayerName: e.PlayerName, JerseyNumber: e.JerseyNumber,
			TeamID: e.TeamID, TeamName: e.TeamName, TeamLogo: e.TeamLogo,
			CleanSheets: e.CleanSheets, Appearances: e.Appearances,
		})
	}
	disciplinary := make([]playerBoardRowDTO, 0, len(boards.Disciplinary))
	for _, e := range boards.Disciplinary {
		disciplinary = append(disciplinary, playerBoardRowDTO{
			PlayerID: e.PlayerID, PlayerName: e.PlayerName, JerseyNumber: e.JerseyNumber,
			TeamID: e.TeamID, TeamName: e.TeamName, TeamLogo: e.TeamLogo,
			YellowCards: e.YellowCards, RedCards: e.RedCards,
		})
	}

	return leaderboardsDTO{
		Scorers:      scorers,
		Assisters:    assisters,
		CleanSheets:  cleanSheets,
		Disciplinary: disciplinary,
		Diagnostics: diagnosticsDTO{
			SkippedEvents:         boards.Diagnostics.SkippedEvents,
			FixturesWithoutEvents: boards.Diagnostics.FixturesWithoutEvents,
		},
	}
}

func (h *Handler) GetLeaderboards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboards")
	defer span.End()

	boards, err := h.statsService.Leaderboards(ctx, statsFilterFromQuery(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "compute leaderboards failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardsToDTO(boards))
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	rows, err := h.statsService.Standings(ctx, statsFilterFromQuery(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "compute standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(rows))
}

func (h *Handler) GetTeamTables(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamTables")
	defer span.End()

	tables, err := h.statsService.TeamTables(ctx, statsFilterFromQuery(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "compute team tables failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamTablesDTO{
		TopScoring:         standingsToDTO(tables.TopScoring),
		BestDefense:        standingsToDTO(tables.BestDefense),
		BestGoalDifference: standingsToDTO(tables.BestGoalDifference),
		MostConceded:       standingsToDTO(tables.MostConceded),
	})
}

func (h *Handler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitions")
	defer span.End()

	labels, err := h.statsService.Competitions(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list competitions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, labels)
}
