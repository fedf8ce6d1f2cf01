package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"food-agent/internal/config"
	"food-agent/internal/connections/database"
	"food-agent/internal/connections/rabbitmq"
	"food-agent/internal/handlers"
	"food-agent/internal/httpx"
	"food-agent/internal/logger"
	"food-agent/internal/repository"
	"food-agent/internal/service"
	"food-agent/internal/sessions"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to YAML config")
	port := flag.Int("port", 0, "http port (overrides config)")
	flag.Parse()

	lg := logger.New("food-agent")
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		lg.Error("config_load_failed", err, nil)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.HTTP.Port = *port
	}

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		lg.Error("db_connect_failed", err, nil)
		os.Exit(1)
	}
	defer pool.Close()
	lg.Info("db_connected", map[string]any{"host": cfg.Database.Host, "database": cfg.Database.Database})

	store, err := newCartStore(cfg, lg)
	if err != nil {
		lg.Error("cart_store_init_failed", err, nil)
		os.Exit(1)
	}

	var kitchen service.KitchenPublisher
	if cfg.RabbitMQ.Host != "" {
		rmq, err := rabbitmq.Dial(cfg.RabbitMQ)
		if err != nil {
			lg.Error("rabbitmq_connect_failed", err, nil)
			os.Exit(1)
		}
		defer rmq.Close()
		if err := rmq.DeclareTopology(); err != nil {
			lg.Error("rabbitmq_declare_failed", err, nil)
			os.Exit(1)
		}
		kitchen = rmq
		lg.Info("rabbitmq_connected", map[string]any{"host": cfg.RabbitMQ.Host})
	} else {
		lg.Info("kitchen_publisher_disabled", nil)
	}

	repo := repository.New(pool)
	svc := service.New(store, repo.Menu, repo.Orders, kitchen, lg)
	h := handlers.New(svc, repo.Menu, lg)

	srv := httpx.New(":"+strconv.Itoa(cfg.HTTP.Port), handlers.Router(h))
	lg.Info("service_started", map[string]any{"port": cfg.HTTP.Port, "sessions": cfg.Sessions.Backend})
	if err := srv.Run(ctx); err != nil {
		lg.Error("fatal", err, nil)
		os.Exit(1)
	}
	lg.Info("service_stopped", nil)
}

func newCartStore(cfg *config.Config, lg *logger.Logger) (sessions.Store, error) {
	if cfg.Sessions.Backend == "redis" {
		store, err := sessions.NewRedisStore(cfg.Redis.URL, cfg.Sessions.TTLDuration())
		if err != nil {
			return nil, err
		}
		lg.Info("cart_store_redis", map[string]any{"ttl": cfg.Sessions.TTLDuration().String()})
		return store, nil
	}
	return sessions.NewMemoryStore(), nil
}
