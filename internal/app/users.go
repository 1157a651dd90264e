package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"shoplite/internal/config"
	"shoplite/internal/httpapi"
	"shoplite/internal/metrics"
	"shoplite/internal/user"
)

type Users struct {
	cfg     config.Users
	logger  *slog.Logger
	httpSrv *http.Server
}

func NewUsers(cfg config.Users, logger *slog.Logger) *Users {
	store := user.NewStore()

	m := metrics.New("users")
	api := httpapi.NewUsersServer(store, logger, m)

	httpSrv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpapi.WithCORS(m.Middleware(api)),
	}

	return &Users{
		cfg:     cfg,
		logger:  logger,
		httpSrv: httpSrv,
	}
}

func (a *Users) Run(ctx context.Context) error {
	return serve(ctx, a.logger, a.httpSrv, "users")
}

func (a *Users) Close() {
	shutdown(a.httpSrv, a.cfg.ShutdownGracePeriod)
}

func RunUsers() error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	cfg := config.LoadUsers()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := NewUsers(cfg, logger)
	defer app.Close()

	return app.Run(ctx)
}
