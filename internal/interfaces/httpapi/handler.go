package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/coach"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/lineup"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/match"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/player"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/playerstats"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/stats"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/team"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/user"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/usecase"
)

type Handler struct {
	userService         *usecase.UserService
	teamService         *usecase.TeamService
	playerService       *usecase.PlayerService
	matchService        *usecase.MatchService
	matchDetailService  *usecase.MatchDetailService
	lineupService       *usecase.LineupService
	teamLogoService     *usecase.TeamLogoService
	logoBackfillService *usecase.LogoBackfillService
	statsService        *usecase.StatsService
	playerStatsService  *usecase.PlayerStatsService
	searchService       *usecase.SearchService
	historyService      *usecase.HistoryService
	sportsService       *usecase.SportsService
	logger              *slog.Logger
	validator           *validator.Validate
}

func NewHandler(
	userService *usecase.UserService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	matchDetailService *usecase.MatchDetailService,
	lineupService *usecase.LineupService,
	teamLogoService *usecase.TeamLogoService,
	logoBackfillService *usecase.LogoBackfillService,
	statsService *usecase.StatsService,
	playerStatsService *usecase.PlayerStatsService,
	searchService *usecase.SearchService,
	historyService *usecase.HistoryService,
	sportsService *usecase.SportsService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		userService:         userService,
		teamService:         teamService,
		playerService:       playerService,
		matchService:        matchService,
		matchDetailService:  matchDetailService,
		lineupService:       lineupService,
		teamLogoService:     teamLogoService,
		logoBackfillService: logoBackfillService,
		statsService:        statsService,
		playerStatsService:  playerStatsService,
		searchService:       searchService,
		historyService:      historyService,
		sportsService:       sportsService,
		logger:              logger,
		validator:           validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// resolveUser maps the authenticated principal to its tracked account.
// Every authorized route that acts on behalf of the caller goes through
// this lookup.
func (h *Handler) resolveUser(ctx context.Context) (user.User, error) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		return user.User{}, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized)
	}

	check, err := h.userService.CheckUser(ctx, principal)
	if err != nil {
		return user.User{}, err
	}

	return check.User, nil
}

type userDTO struct {
	ID         string `json:"id"`
	AuthUserID string `json:"authUserId"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Role       string `json:"role"`
	CreatedAt  string `json:"createdAt"`
}

type coachDTO struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	TeamID string `json:"teamId,omitempty"`
}

type teamDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CoachID   string `json:"coachId,omitempty"`
	IconURL   string `json:"iconUrl,omitempty"`
	CreatedAt string `json:"createdAt"`
}

type playerDTO struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Position     string `json:"position"`
	JerseyNumber int    `json:"jerseyNumber"`
	TeamID       string `json:"teamId,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
	Points       int    `json:"points"`
	Assists      int    `json:"assists"`
	Rebounds     int    `json:"rebounds"`
	Blocks       int    `json:"blocks"`
	Steals       int    `json:"steals"`
}

type teamRefDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IconURL string `json:"iconUrl,omitempty"`
	CoachID string `json:"coachId,omitempty"`
}

type matchDTO struct {
	ID         string      `json:"id"`
	HomeTeamID string      `json:"homeTeamId"`
	AwayTeamID string      `json:"awayTeamId"`
	MatchDate  string      `json:"matchDate"`
	Location   string      `json:"location,omitempty"`
	Season     string      `json:"season,omitempty"`
	Completed  bool        `json:"completed"`
	HomeScore  *int        `json:"homeScore,omitempty"`
	AwayScore  *int        `json:"awayScore,omitempty"`
	AnalystID  string      `json:"analystId,omitempty"`
	HomeTeam   *teamRefDTO `json:"homeTeam,omitempty"`
	AwayTeam   *teamRefDTO `json:"awayTeam,omitempty"`
}

type eventDTO struct {
	ID        int64  `json:"id"`
	MatchID   string `json:"matchId"`
	Timestamp string `json:"timestamp"`
	TeamID    string `json:"teamId"`
	Action    string `json:"action"`
	Points    int    `json:"points"`
	PlayerID  string `json:"playerId"`
	Player    struct {
		FirstName    string `json:"firstName"`
		LastName     string `json:"lastName"`
		Position     string `json:"position"`
		JerseyNumber int    `json:"jerseyNumber"`
	} `json:"player"`
}

type lineupEntryDTO struct {
	PlayerID     string `json:"playerId"`
	Position     string `json:"position"`
	IsStarting   bool   `json:"isStarting"`
	JerseyNumber int    `json:"jerseyNumber"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
}

type statLineDTO struct {
	ID                   int64  `json:"id"`
	MatchID              string `json:"matchId"`
	PlayerID             string `json:"playerId"`
	FirstName            string `json:"firstName"`
	LastName             string `json:"lastName"`
	JerseyNumber         int    `json:"jerseyNumber"`
	Position             string `json:"position"`
	TeamID               string `json:"teamId,omitempty"`
	Points               int    `json:"points"`
	Assists              int    `json:"assists"`
	Rebounds             int    `json:"rebounds"`
	Blocks               int    `json:"blocks"`
	Turnovers            int    `json:"turnovers"`
	Steals               int    `json:"steals"`
	Fouls                int    `json:"fouls"`
	TwoPointsMade        int    `json:"twoPointsMade"`
	TwoPointsAttempted   int    `json:"twoPointsAttempted"`
	ThreePointsMade      int    `json:"threePointsMade"`
	ThreePointsAttempted int    `json:"threePointsAttempted"`
	FreeThrowsMade       int    `json:"freeThrowsMade"`
	FreeThrowsAttempted  int    `json:"freeThrowsAttempted"`
	CreatedAt            string `json:"createdAt"`
}

type matchSummaryDTO struct {
	MatchID    string `json:"matchId"`
	MatchDate  string `json:"matchDate"`
	HomeTeamID string `json:"homeTeamId"`
	AwayTeamID string `json:"awayTeamId"`
	HomeScore  int    `json:"homeScore"`
	AwayScore  int    `json:"awayScore"`
}

type playerAggregateDTO struct {
	PlayerID     string `json:"playerId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	JerseyNumber int    `json:"jerseyNumber"`
	Points       int    `json:"points"`
	Assists      int    `json:"assists"`
	Rebounds     int    `json:"rebounds"`
	Blocks       int    `json:"blocks"`
	Steals       int    `json:"steals"`
}

func userToDTO(v user.User) userDTO {
	return userDTO{
		ID:         v.ID,
		AuthUserID: v.AuthUserID,
		Email:      v.Email,
		FirstName:  v.FirstName,
		LastName:   v.LastName,
		Role:       string(v.Role),
		CreatedAt:  v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func coachToDTO(v coach.Coach) coachDTO {
	return coachDTO{
		ID:     v.ID,
		UserID: v.UserID,
		TeamID: v.TeamID,
	}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:        v.ID,
		Name:      v.Name,
		CoachID:   v.CoachID,
		IconURL:   v.IconURL,
		CreatedAt: v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func teamsToDTO(items []team.Team) []teamDTO {
	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamToDTO(item))
	}
	return out
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:           v.ID,
		FirstName:    v.FirstName,
		LastName:     v.LastName,
		Position:     v.Position,
		JerseyNumber: v.JerseyNumber,
		TeamID:       v.TeamID,
		ImageURL:     v.ImageURL,
		Points:       v.Points,
		Assists:      v.Assists,
		Rebounds:     v.Rebounds,
		Blocks:       v.Blocks,
		Steals:       v.Steals,
	}
}

func playersToDTO(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}
	return out
}

func teamRefToDTO(v *match.TeamRef) *teamRefDTO {
	if v == nil {
		return nil
	}
	return &teamRefDTO{
		ID:      v.ID,
		Name:    v.Name,
		IconURL: v.IconURL,
		CoachID: v.CoachID,
	}
}

func matchToDTO(v match.Match) matchDTO {
	return matchDTO{
		ID:         v.ID,
		HomeTeamID: v.HomeTeamID,
		AwayTeamID: v.AwayTeamID,
		MatchDate:  v.MatchDate.UTC().Format(time.RFC3339),
		Location:   v.Location,
		Season:     v.Season,
		Completed:  v.Completed,
		HomeScore:  v.HomeScore,
		AwayScore:  v.AwayScore,
		AnalystID:  v.AnalystID,
		HomeTeam:   teamRefToDTO(v.HomeTeam),
		AwayTeam:   teamRefToDTO(v.AwayTeam),
	}
}

func matchesToDTO(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchToDTO(item))
	}
	return out
}

func eventToDTO(v match.Event) eventDTO {
	out := eventDTO{
		ID:        v.ID,
		MatchID:   v.MatchID,
		Timestamp: v.Timestamp.UTC().Format(time.RFC3339),
		TeamID:    v.TeamID,
		Action:    v.Action,
		Points:    v.Points,
		PlayerID:  v.PlayerID,
	}
	out.Player.FirstName = v.Player.FirstName
	out.Player.LastName = v.Player.LastName
	out.Player.Position = v.Player.Position
	out.Player.JerseyNumber = v.Player.JerseyNumber
	return out
}

func eventsToDTO(items []match.Event) []eventDTO {
	out := make([]eventDTO, 0, len(items))
	for _, item := range items {
		out = append(out, eventToDTO(item))
	}
	return out
}

func lineupEntryToDTO(v lineup.Entry) lineupEntryDTO {
	return lineupEntryDTO{
		PlayerID:     v.PlayerID,
		Position:     v.Position,
		IsStarting:   v.IsStarting,
		JerseyNumber: v.JerseyNumber,
		FirstName:    v.Player.FirstName,
		LastName:     v.Player.LastName,
	}
}

func lineupEntriesToDTO(items []lineup.Entry) []lineupEntryDTO {
	out := make([]lineupEntryDTO, 0, len(items))
	for _, item := range items {
		out = append(out, lineupEntryToDTO(item))
	}
	return out
}

func statLineToDTO(v playerstats.StatLine) statLineDTO {
	return statLineDTO{
		ID:                   v.ID,
		MatchID:              v.MatchID,
		PlayerID:             v.PlayerID,
		FirstName:            v.Player.FirstName,
		LastName:             v.Player.LastName,
		JerseyNumber:         v.Player.JerseyNumber,
		Position:             v.Player.Position,
		TeamID:               v.Player.TeamID,
		Points:               v.Points,
		Assists:              v.Assists,
		Rebounds:             v.Rebounds,
		Blocks:               v.Blocks,
		Turnovers:            v.Turnovers,
		Steals:               v.Steals,
		Fouls:                v.Fouls,
		TwoPointsMade:        v.TwoPointsMade,
		TwoPointsAttempted:   v.TwoPointsAttempted,
		ThreePointsMade:      v.ThreePointsMade,
		ThreePointsAttempted: v.ThreePointsAttempted,
		FreeThrowsMade:       v.FreeThrowsMade,
		FreeThrowsAttempted:  v.FreeThrowsAttempted,
		CreatedAt:            v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func statLinesToDTO(items []playerstats.StatLine) []statLineDTO {
	out := make([]statLineDTO, 0, len(items))
	for _, item := range items {
		out = append(out, statLineToDTO(item))
	}
	return out
}

func matchSummaryToDTO(v stats.MatchSummary) matchSummaryDTO {
	return matchSummaryDTO{
		MatchID:    v.MatchID,
		MatchDate:  v.MatchDate.UTC().Format(time.RFC3339),
		HomeTeamID: v.HomeTeamID,
		AwayTeamID: v.AwayTeamID,
		HomeScore:  v.HomeScore,
		AwayScore:  v.AwayScore,
	}
}

func matchSummariesToDTO(items []stats.MatchSummary) []matchSummaryDTO {
	out := make([]matchSummaryDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchSummaryToDTO(item))
	}
	return out
}

func playerAggregateToDTO(v stats.PlayerAggregate) playerAggregateDTO {
	return playerAggregateDTO{
		PlayerID:     v.PlayerID,
		FirstName:    v.FirstName,
		LastName:     v.LastName,
		JerseyNumber: v.JerseyNumber,
		Points:       v.Points,
		Assists:      v.Assists,
		Rebounds:     v.Rebounds,
		Blocks:       v.Blocks,
		Steals:       v.Steals,
	}
}

func playerAggregatesToDTO(items []stats.PlayerAggregate) []playerAggregateDTO {
	out := make([]playerAggregateDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerAggregateToDTO(item))
	}
	return out
}
