package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/league-stats/internal/config"
	"github.com/riskibarqy/league-stats/internal/domain/fixture"
	"github.com/riskibarqy/league-stats/internal/domain/season"
	"github.com/riskibarqy/league-stats/internal/domain/stats"
	"github.com/riskibarqy/league-stats/internal/domain/team"
	"github.com/riskibarqy/league-stats/internal/infrastructure/account/anubis"
	"github.com/riskibarqy/league-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/league-stats/internal/interfaces/httpapi"
	"github.com/riskibarqy/league-stats/internal/platform/cache"
	idgen "github.com/riskibarqy/league-stats/internal/platform/id"
	"github.com/riskibarqy/league-stats/internal/platform/logging"
	"github.com/riskibarqy/league-stats/internal/platform/resilience"
	"github.com/riskibarqy/league-stats/internal/usecase"
)

// NewHTTPServer wires repositories, services and the HTTP router. The
// returned cleanup closes the database connection and must run after the
// server has shut down.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		fixtureRepo fixture.Repository
		teamRepo    team.Repository
		seasonRepo  season.Repository
		cleanup     = func() error { return nil }
	)

	if cfg.DBURL != "" {
		db, err := openDatabase(cfg)
		if err != nil {
			return nil, nil, err
		}
		fixtureRepo = postgres.NewFixtureRepository(db)
		teamRepo = postgres.NewTeamRepository(db)
		seasonRepo = postgres.NewSeasonRepository(db)
		cleanup = db.Close
		logger.Info("using postgres repositories", "db_name", dbNameFromURL(cfg.DBURL))
	} else {
		fixtureRepo = memory.NewFixtureRepository(memory.SeedFixtures())
		teamRepo = memory.NewTeamRepository(memory.SeedTeams())
		seasonRepo = memory.NewSeasonRepository(memory.SeedSeasons())
		logger.Info("using in-memory repositories", "reason", "DB_URL empty")
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	statsSvc := usecase.NewStatsService(fixtureRepo, store, stats.Limits{
		Players: cfg.LeaderboardLimit,
		Teams:   cfg.TeamTableLimit,
	})
	teamSvc := usecase.NewTeamService(teamRepo)
	fixtureSvc := usecase.NewFixtureService(fixtureRepo)
	seasonSvc := usecase.NewSeasonService(seasonRepo, teamRepo, idgen.NewRandomGenerator())
	groupStandingSvc := usecase.NewGroupStandingService(seasonRepo, fixtureRepo, teamRepo)
	refreshSvc := usecase.NewRefreshService(seasonRepo, statsSvc, cfg.RefreshWorkers)

	anubisClient := anubis.NewClient(
		&http.Client{Timeout: cfg.AnubisTimeout},
		cfg.AnubisBaseURL,
		cfg.AnubisIntrospectPath,
		cfg.AnubisAdminKey,
		resilience.CircuitBreakerConfig{
			Enabled:          cfg.AnubisCircuitEnabled,
			FailureThreshold: cfg.AnubisCircuitFailureCount,
			OpenTimeout:      cfg.AnubisCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.AnubisCircuitHalfOpenMaxReq,
		},
		logger,
	)

	handler := httpapi.NewHandler(statsSvc, teamSvc, fixtureSvc, seasonSvc, groupStandingSvc, refreshSvc, logger)
	router := httpapi.NewRouter(handler, anubisClient, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

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

func openDatabase(cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return db, nil
}
