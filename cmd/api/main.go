// @title AgriQuest API
// @description Quests, credits, badges and scheme eligibility for farmers
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"

	"github.com/limbo/agriquest/internal/api"
	"github.com/limbo/agriquest/internal/repository"
	"github.com/limbo/agriquest/internal/repository/memory"
	"github.com/limbo/agriquest/internal/service"
	"github.com/limbo/agriquest/pkg/cleanup"
	"github.com/limbo/agriquest/pkg/config"
	jwtservice "github.com/limbo/agriquest/pkg/jwt_service"
	"github.com/limbo/agriquest/pkg/refdata"
)

func init() {
	service.InitValidator()
}

type stores struct {
	tx       repository.TxRunner
	users    repository.UsersRepositoryI
	quests   repository.QuestsRepositoryI
	progress repository.ProgressRepositoryI
	credits  repository.CreditsRepositoryI
	health   api.Pinger
}

func main() {
	cfg := config.New()
	slog.SetDefault(newLogger(cfg.GetString("LOG_FORMAT"), cfg.GetString("LOG_LEVEL")))
	defer cleanup.CleanUp()

	ref, err := refdata.Load(cfg.GetString("REFDATA_DIR"))
	if err != nil {
		log.Fatal("loading reference data error: " + err.Error())
	}
	loc, err := time.LoadLocation(cfg.GetString("QUEST_TIMEZONE"))
	if err != nil {
		log.Fatal("loading quest time zone error: " + err.Error())
	}
	secret := cfg.GetString("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	st, err := openStores(cfg, ref)
	if err != nil {
		log.Fatal(err)
	}
	opts := service.Options{Location: loc, Logger: slog.Default()}
	catalog := service.NewCatalogService(st.quests, cfg.GetInt("CATALOG_CACHE_SIZE"), cfg.GetDuration("CATALOG_CACHE_TTL"))
	credits := service.NewCreditService(st.credits, st.tx)
	badges := service.NewBadgeService(st.progress, catalog, ref.Badges, cfg.GetInt("STREAK_LOOKBACK_DAYS"), opts)
	eligibility := service.NewEligibilityService(credits, ref.Schemes, cfg.GetInt("SCHEME_CREDIT_THRESHOLD"))
	serv := api.New(&api.ServicesList{
		UserService:        service.NewUserService(st.users),
		LedgerService:      service.NewLedgerService(st.tx, catalog, st.progress, credits, opts),
		CreditService:      credits,
		BadgeService:       badges,
		EligibilityService: eligibility,
		DashboardService:   service.NewDashboardService(credits, badges, eligibility),
		JwtService:         jwtservice.New(secret),
		Health:             st.health,
		RequestTimeout:     cfg.GetDuration("REQUEST_TIMEOUT"),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err = serv.Run(ctx, cfg.GetString("API_ADDRESS")); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
	slog.Info("server stopped")
}

func openStores(cfg *config.Config, ref *refdata.Set) (*stores, error) {
	switch driver := cfg.GetString("STORE_DRIVER"); driver {
	case "memory":
		store := memory.NewStore(ref.Quests)
		slog.Warn("using in-memory store, data is lost on restart", slog.Int("quests", len(ref.Quests)))
		return &stores{tx: store, users: store, quests: store, progress: store, credits: store}, nil
	case "postgres":
		dbCfg := repository.PGCfg{
			Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
			Username: cfg.GetString("POSTGRES_USER"),
			Password: cfg.GetString("POSTGRES_PASSWORD"),
			DB:       cfg.GetString("POSTGRES_DB"),
		}
		if cfg.GetBool("MIGRATE_ON_START") {
			if err := migrate(dbCfg.ConnString(), cfg.GetString("MIGRATIONS_DIR")); err != nil {
				return nil, err
			}
		}
		pool := repository.NewPool(&dbCfg)
		return &stores{
			tx:       repository.NewTxManager(pool),
			users:    repository.NewUsersRepo(pool),
			quests:   repository.NewQuestsRepo(pool),
			progress: repository.NewProgressRepo(pool),
			credits:  repository.NewCreditsRepo(pool),
			health:   pool,
		}, nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", driver)
	}
}

func migrate(connStr, dir string) error {
	// lib/pq requires TLS unless told otherwise
	if !strings.Contains(connStr, "sslmode=") {
		connStr += "?sslmode=disable"
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("opening migrations connection: %w", err)
	}
	defer conn.Close()
	if err = goose.Up(conn, dir); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}

func newLogger(format, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(os.Stdout, handlerOpts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, handlerOpts))
}
