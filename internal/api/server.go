package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/agriquest/internal/service"
)

const defaultRequestTimeout = 5 * time.Second

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	ledgerService      service.LedgerServiceI
	creditService      service.CreditServiceI
	badgeService       service.BadgeServiceI
	eligibilityService service.EligibilityServiceI
	dashboardService   service.DashboardServiceI
	jwtService         JWTServiceI
	health             Pinger
	requestTimeout     time.Duration
}

type ServicesList struct {
	UserService        service.UserServiceI
	LedgerService      service.LedgerServiceI
	CreditService      service.CreditServiceI
	BadgeService       service.BadgeServiceI
	EligibilityService service.EligibilityServiceI
	DashboardService   service.DashboardServiceI
	JwtService         JWTServiceI
	// Optional store probe for /health
	Health         Pinger
	RequestTimeout time.Duration
}

func New(servicesOptions *ServicesList) *Server {
	timeout := servicesOptions.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	s := &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		ledgerService:      servicesOptions.LedgerService,
		creditService:      servicesOptions.CreditService,
		badgeService:       servicesOptions.BadgeService,
		eligibilityService: servicesOptions.EligibilityService,
		dashboardService:   servicesOptions.DashboardService,
		jwtService:         servicesOptions.JwtService,
		health:             servicesOptions.Health,
		requestTimeout:     timeout,
	}
	s.MountHandlers()
	return s
}

func (s *Server) MountHandlers() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.Health)
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Delete("/account", s.DeleteAccount)
			r.Get("/quests", s.QuestBoard)
			r.Post("/quests/{id}/start", s.StartQuest)
			r.Post("/quests/{id}/complete", s.CompleteQuest)
			r.Get("/credits", s.Balance)
			r.Get("/credits/history", s.CreditHistory)
			r.Get("/badges", s.Badges)
			r.Get("/badges/earned", s.EarnedBadges)
			r.Get("/streak", s.Streak)
			r.Get("/schemes", s.Schemes)
			r.Get("/dashboard", s.Dashboard)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
