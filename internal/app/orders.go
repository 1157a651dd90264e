package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shoplite/internal/config"
	"shoplite/internal/httpapi"
	"shoplite/internal/messaging"
	"shoplite/internal/metrics"
	"shoplite/internal/order"
	"shoplite/internal/websocket"
)

type Orders struct {
	cfg       config.Orders
	logger    *slog.Logger
	hub       *websocket.Hub
	publisher messaging.Publisher
	httpSrv   *http.Server
}

func NewOrders(cfg config.Orders, logger *slog.Logger) (*Orders, error) {
	store := order.NewStore()
	hub := websocket.NewHub()

	var publisher messaging.Publisher = messaging.NopPublisher{}
	if cfg.RabbitURL != "" {
		p, err := messaging.NewRabbitPublisher(cfg.RabbitURL, cfg.OrdersExchange)
		if err != nil {
			return nil, err
		}
		publisher = p
	}

	orderSvc := order.NewService(store, publisher, hub, logger)

	m := metrics.New("orders")
	api := httpapi.NewOrdersServer(orderSvc, logger, m)
	wsHandler := websocket.NewHandler(hub, orderSvc, logger)
	api.HandleFunc("GET /orders/{id}/ws", wsHandler.ServeWS)

	httpSrv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpapi.WithCORS(m.Middleware(api)),
	}

	return &Orders{
		cfg:       cfg,
		logger:    logger,
		hub:       hub,
		publisher: publisher,
		httpSrv:   httpSrv,
	}, nil
}

func (a *Orders) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.hub.Run(ctx)

	return serve(ctx, a.logger, a.httpSrv, "orders")
}

func (a *Orders) Close() {
	shutdown(a.httpSrv, a.cfg.ShutdownGracePeriod)
	_ = a.publisher.Close()
}

// RunOrders is the orders-service entrypoint: config, wiring, signal-driven
// shutdown.
func RunOrders() error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	cfg := config.LoadOrders()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := NewOrders(cfg, logger)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer app.Close()

	return app.Run(ctx)
}

func shutdown(srv *http.Server, grace time.Duration) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
