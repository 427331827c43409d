package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/external/allsports"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/external/espncatalog"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/config"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/player"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/domain/team"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/infrastructure/account/gotrue"
	repocache "github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/infrastructure/repository/cache"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/infrastructure/repository/postgres"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/infrastructure/storage/supabase"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/interfaces/httpapi"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/platform/cache"
	idgen "github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/platform/id"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/platform/logging"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/platform/resilience"
	"github.com/Cipher-Pol-Aigis-Zero/sport-stat-tracker-backend/internal/usecase"
)

// NewHTTPServer wires the full service and returns the server plus a
// cleanup func that releases the database pool.
func NewHTTPServer(cfg config.Config, logger *logging.Logger, accessLogger *slog.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if accessLogger == nil {
		accessLogger = slog.Default()
	}

	db, err := otelsqlx.Connect("postgres",
		normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	cleanup := db.Close

	userRepo := postgres.NewUserRepository(db)
	coachRepo := postgres.NewCoachRepository(db)
	lineupRepo := postgres.NewLineupRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	playerStatsRepo := postgres.NewPlayerStatsRepository(db)
	statsRepo := postgres.NewStatsRepository(db)

	var teamRepo team.Repository = postgres.NewTeamRepository(db)
	var playerRepo player.Repository = postgres.NewPlayerRepository(db)
	if cfg.CacheEnabled {
		store := cache.NewStore(cfg.CacheTTL)
		teamRepo = repocache.NewTeamRepository(teamRepo, store)
		playerRepo = repocache.NewPlayerRepository(playerRepo, store)
	}

	catalog := espncatalog.NewClient(espncatalog.ClientConfig{
		BaseURL:    cfg.CatalogBaseURL,
		Timeout:    cfg.CatalogTimeout,
		MaxRetries: cfg.CatalogMaxRetries,
		CacheTTL:   cfg.CatalogCacheTTL,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.CatalogCircuitEnabled,
			FailureThreshold: cfg.CatalogCircuitFailureCount,
			OpenTimeout:      cfg.CatalogCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.CatalogCircuitHalfOpenMaxReq,
		},
	})

	var provider usecase.SportsDataProvider = unavailableSportsProvider{}
	if cfg.AllSportsEnabled {
		provider = allsports.NewClient(allsports.ClientConfig{
			BaseURL:    cfg.AllSportsBaseURL,
			APIKey:     cfg.AllSportsAPIKey,
			Timeout:    cfg.AllSportsTimeout,
			MaxRetries: cfg.AllSportsMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.AllSportsCircuitEnabled,
				FailureThreshold: cfg.AllSportsCircuitFailureCount,
				OpenTimeout:      cfg.AllSportsCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.AllSportsCircuitHalfOpenMaxReq,
			},
		})
	}

	var objectStore usecase.ObjectStore = unavailableObjectStore{}
	if cfg.SupabaseStorageBaseURL != "" {
		store, err := supabase.NewStore(supabase.StoreConfig{
			BaseURL:    cfg.SupabaseStorageBaseURL,
			Bucket:     cfg.SupabaseStorageBucket,
			ServiceKey: cfg.SupabaseStorageServiceKey,
			Timeout:    cfg.SupabaseStorageTimeout,
			Logger:     logger,
		})
		if err != nil {
			_ = cleanup()
			return nil, nil, fmt.Errorf("build object store: %w", err)
		}
		objectStore = store
	}

	idGen := idgen.NewRandomGenerator()

	userSvc := usecase.NewUserService(userRepo, coachRepo, idGen)
	teamSvc := usecase.NewTeamService(teamRepo, coachRepo, userRepo, playerRepo, matchRepo, idGen)
	playerSvc := usecase.NewPlayerService(playerRepo, coachRepo, idGen)
	matchSvc := usecase.NewMatchService(matchRepo, teamRepo, coachRepo, userRepo, idGen)
	matchDetailSvc := usecase.NewMatchDetailService(matchRepo, teamRepo, lineupRepo)
	lineupSvc := usecase.NewLineupService(coachRepo, lineupRepo)
	teamLogoSvc := usecase.NewTeamLogoService(teamRepo, catalog, objectStore, logger)
	logoBackfillSvc := usecase.NewLogoBackfillService(teamRepo, teamLogoSvc, logger)
	statsSvc := usecase.NewStatsService(statsRepo)
	playerStatsSvc := usecase.NewPlayerStatsService(playerStatsRepo)
	searchSvc := usecase.NewSearchService(playerRepo, teamRepo, accessLogger)
	historySvc := usecase.NewHistoryService(teamRepo, playerRepo, matchRepo)
	sportsSvc := usecase.NewSportsService(provider)

	verifier := gotrue.NewClient(
		&http.Client{Timeout: cfg.GoTrueTimeout},
		cfg.GoTrueBaseURL,
		cfg.GoTrueAPIKey,
		accessLogger,
	)

	handler := httpapi.NewHandler(
		userSvc,
		teamSvc,
		playerSvc,
		matchSvc,
		matchDetailSvc,
		lineupSvc,
		teamLogoSvc,
		logoBackfillSvc,
		statsSvc,
		playerStatsSvc,
		searchSvc,
		historySvc,
		sportsSvc,
		accessLogger,
	)
	router := httpapi.NewRouter(handler, verifier, accessLogger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

// unavailableSportsProvider stands in when ALLSPORTS_ENABLED=false; the
// sports endpoints answer 503.
type unavailableSportsProvider struct{}

func (unavailableSportsProvider) ListLeagues(context.Context) ([]usecase.ExternalLeague, error) {
	return nil, fmt.Errorf("%w: sports data provider is not configured", usecase.ErrDependencyUnavailable)
}

func (unavailableSportsProvider) ListTeams(context.Context, string) ([]usecase.ExternalTeam, error) {
	return nil, fmt.Errorf("%w: sports data provider is not configured", usecase.ErrDependencyUnavailable)
}

// unavailableObjectStore stands in when object storage is not configured.
type unavailableObjectStore struct{}

func (unavailableObjectStore) Upload(context.Context, string, string, []byte) error {
	return fmt.Errorf("%w: object storage is not configured", usecase.ErrDependencyUnavailable)
}

func (unavailableObjectStore) PublicURL(string) (string, error) {
	return "", fmt.Errorf("%w: object storage is not configured", usecase.ErrDependencyUnavailable)
}
