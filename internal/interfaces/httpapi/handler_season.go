package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-stats/internal/domain/season"
	"github.com/riskibarqy/league-stats/internal/domain/user"
	"github.com/riskibarqy/league-stats/internal/usecase"
)

type knockoutConfigDTO struct {
	QualifiersPerGroup int `json:"qualifiersPerGroup"`
	MatchesPerRound    int `json:"matchesPerRound"`
}

type groupDTO struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	TeamIDs []string `json:"teamIds"`
}

type seasonDTO struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Year           int               `json:"year,omitempty"`
	NumberOfGroups int               `json:"numberOfGroups"`
	TeamsPerGroup  int               `json:"teamsPerGroup"`
	Groups         []groupDTO        `json:"groups"`
	Knockout       knockoutConfigDTO `json:"knockout"`
	IsActive       bool              `json:"isActive"`
	Status         string            `json:"status"`
}

type validationProblemDTO struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type validationResultDTO struct {
	Valid    bool                   `json:"valid"`
	Problems []validationProblemDTO `json:"problems,omitempty"`
}

type groupTableRowDTO struct {
	teamStandingDTO
	Qualified bool `json:"qualified"`
}

type groupTableDTO struct {
	GroupID        string             `json:"groupId"`
	GroupName      string             `json:"groupName"`
	Rows           []groupTableRowDTO `json:"rows"`
	QualifierCount int                `json:"qualifierCount"`
	PlayedMatches  int                `json:"playedMatches"`
	TotalMatches   int                `json:"totalMatches"`
	Completed      bool               `json:"completed"`
}

type createSeasonRequest struct {
	Name               string `json:"name" validate:"required,max=100"`
	Year               int    `json:"year" validate:"omitempty,gte=2000,lte=2100"`
	NumberOfGroups     int    `json:"numberOfGroups" validate:"omitempty,gte=1,lte=26"`
	TeamsPerGroup      int    `json:"teamsPerGroup" validate:"omitempty,gte=1,lte=32"`
	QualifiersPerGroup int    `json:"qualifiersPerGroup" validate:"omitempty,gte=1"`
	MatchesPerRound    int    `json:"matchesPerRound" validate:"omitempty,gte=1,lte=3"`
}

type updateSeasonRequest struct {
	Name           string `json:"name" validate:"omitempty,max=100"`
	Year           int    `json:"year" validate:"omitempty,gte=2000,lte=2100"`
	NumberOfGroups int    `json:"numberOfGroups" validate:"omitempty,gte=1,lte=26"`
	TeamsPerGroup  int    `json:"teamsPerGroup" validate:"omitempty,gte=1,lte=32"`
}

type assignTeamRequest struct {
	TeamID string `json:"teamId" validate:"required"`
}

type knockoutRequest struct {
	QualifiersPerGroup int `json:"qualifiersPerGroup" validate:"required,gte=1"`
	MatchesPerRound    int `json:"matchesPerRound" validate:"required,gte=1,lte=3"`
}

func seasonToDTO(s season.Season) seasonDTO {
	groups := make([]groupDTO, 0, len(s.Groups))
	for _, g := range s.Groups {
		teamIDs := g.TeamIDs
		if teamIDs == nil {
			teamIDs = []string{}
		}
		groups = append(groups, groupDTO{ID: g.ID, Name: g.Name, TeamIDs: teamIDs})
	}

	return seasonDTO{
		ID:             s.ID,
		Name:           s.Name,
		Year:           s.Year,
		NumberOfGroups: s.NumberOfGroups,
		TeamsPerGroup:  s.TeamsPerGroup,
		Groups:         groups,
		Knockout: knockoutConfigDTO{
			QualifiersPerGroup: s.Knockout.QualifiersPerGroup,
			MatchesPerRound:    s.Knockout.MatchesPerRound,
		},
		IsActive: s.IsActive,
		Status:   s.Status,
	}
}

func groupTableToDTO(table usecase.GroupTable) groupTableDTO {
	rows := make([]groupTableRowDTO, 0, len(table.Rows))
	for _, row := range table.Rows {
		rows = append(rows, groupTableRowDTO{
			teamStandingDTO: standingToDTO(row.TeamStanding),
			Qualified:       row.Qualified,
		})
	}
	return groupTableDTO{
		GroupID:        table.GroupID,
		GroupName:      table.GroupName,
		Rows:           rows,
		QualifierCount: table.QualifierCount,
		PlayedMatches:  table.PlayedMatches,
		TotalMatches:   table.TotalMatches,
		Completed:      table.Completed,
	}
}

func callerPrincipal(r *http.Request) user.Principal {
	principal, _ := principalFromContext(r.Context())
	return principal
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	items, err := h.seasonService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]seasonDTO, 0, len(items))
	for _, item := range items {
		out = append(out, seasonToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetActiveSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetActiveSeason")
	defer span.End()

	item, exists, err := h.seasonService.Active(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get active season failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if !exists {
		writeSuccess(ctx, w, http.StatusOK, nil)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(item))
}

func (h *Handler) GetSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeason")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	item, err := h.seasonService.GetByID(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "get season failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(item))
}

func (h *Handler) GetGroupStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGroupStandings")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	tables, err := h.groupStandingService.GroupStandings(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "group standings failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]groupTableDTO, 0, len(tables))
	for _, table := range tables {
		out = append(out, groupTableToDTO(table))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetQualifiers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetQualifiers")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	rows, err := h.groupStandingService.Qualifiers(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "qualifiers failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]groupTableRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, groupTableRowDTO{
			teamStandingDTO: standingToDTO(row.TeamStanding),
			Qualified:       row.Qualified,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSeason")
	defer span.End()

	var payload createSeasonRequest
	if err := h.decodeRequest(ctx, r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.seasonService.Create(ctx, callerPrincipal(r), usecase.CreateSeasonInput{
		Name:               payload.Name,
		Year:               payload.Year,
		NumberOfGroups:     payload.NumberOfGroups,
		TeamsPerGroup:      payload.TeamsPerGroup,
		QualifiersPerGroup: payload.QualifiersPerGroup,
		MatchesPerRound:    payload.MatchesPerRound,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create season failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, seasonToDTO(item))
}

func (h *Handler) UpdateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSeason")
	defer span.End()

	var payload updateSeasonRequest
	if err := h.decodeRequest(ctx, r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	seasonID := r.PathValue("seasonID")
	item, err := h.seasonService.Update(ctx, callerPrincipal(r), seasonID, usecase.UpdateSeasonInput{
		Name:           payload.Name,
		Year:           payload.Year,
		NumberOfGroups: payload.NumberOfGroups,
		TeamsPerGroup:  payload.TeamsPerGroup,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update season failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(item))
}

func (h *Handler) AssignTeamToGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AssignTeamToGroup")
	defer span.End()

	var payload assignTeamRequest
	if err := h.decodeRequest(ctx, r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	seasonID := r.PathValue("seasonID")
	groupID := r.PathValue("groupID")
	item, err := h.seasonService.AssignTeam(ctx, callerPrincipal(r), seasonID, groupID, payload.TeamID)
	if err != nil {
		h.logger.WarnContext(ctx, "assign team failed",
			"season_id", seasonID, "group_id", groupID, "team_id", payload.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(item))
}

func (h *Handler) RemoveTeamFromGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveTeamFromGroup")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	groupID := r.PathValue("groupID")
	teamID := r.PathValue("teamID")
	item, err := h.seasonService.RemoveTeam(ctx, callerPrincipal(r), seasonID, groupID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "remove team failed",
			"season_id", seasonID, "group_id", groupID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(item))
}

func (h *Handler) SetSeasonKnockout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetSeasonKnockout")
	defer span.End()

	var payload knockoutRequest
	if err := h.decodeRequest(ctx, r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	seasonID := r.PathValue("seasonID")
	item, err := h.seasonService.SetKnockout(ctx, callerPrincipal(r), seasonID, season.KnockoutConfig{
		QualifiersPerGroup: payload.QualifiersPerGroup,
		MatchesPerRound:    payload.MatchesPerRound,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "set knockout failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(item))
}

func (h *Handler) SaveSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveSeason")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	result, err := h.seasonService.Save(ctx, callerPrincipal(r), seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "save season failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	problems := make([]validationProblemDTO, 0, len(result.Problems))
	for _, p := range result.Problems {
		problems = append(problems, validationProblemDTO{Field: p.Field, Reason: p.Reason})
	}
	dto := validationResultDTO{Valid: result.Valid, Problems: problems}

	status := http.StatusOK
	if !result.Valid {
		// Configuration gate rejection: every problem reported, nothing saved.
		status = http.StatusUnprocessableEntity
	}
	writeSuccess(ctx, w, status, dto)
}

func (h *Handler) ActivateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ActivateSeason")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	if err := h.seasonService.Activate(ctx, callerPrincipal(r), seasonID); err != nil {
		h.logger.WarnContext(ctx, "activate season failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "activated"})
}

func (h *Handler) DeleteSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSeason")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	if err := h.seasonService.Delete(ctx, callerPrincipal(r), seasonID); err != nil {
		h.logger.WarnContext(ctx, "delete season failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}
