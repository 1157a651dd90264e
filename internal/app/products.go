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
	"shoplite/internal/product"
)

type Products struct {
	cfg     config.Products
	logger  *slog.Logger
	httpSrv *http.Server
}

func NewProducts(cfg config.Products, logger *slog.Logger) *Products {
	store := product.NewStore()

	m := metrics.New("products")
	api := httpapi.NewProductsServer(store, logger, m)

	httpSrv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpapi.WithCORS(m.Middleware(api)),
	}

	return &Products{
		cfg:     cfg,
		logger:  logger,
		httpSrv: httpSrv,
	}
}

func (a *Products) Run(ctx context.Context) error {
	return serve(ctx, a.logger, a.httpSrv, "products")
}

func (a *Products) Close() {
	shutdown(a.httpSrv, a.cfg.ShutdownGracePeriod)
}

func RunProducts() error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	cfg := config.LoadProducts()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := NewProducts(cfg, logger)
	defer app.Close()

	return app.Run(ctx)
}
