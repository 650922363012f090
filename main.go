package main

import (
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"librarygql/cache"
	"librarygql/config"
	"librarygql/db"
	"librarygql/library"
	"librarygql/models"
	"librarygql/schema"
	"librarygql/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := config.NewLogger(os.Stderr, cfg.LogLevel)

	if err := run(cfg, logger); err != nil {
		level.Error(logger).Log("err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger log.Logger) error {
	books, err := setupLibrary(cfg)
	if err != nil {
		return err
	}
	level.Info(logger).Log("backend", cfg.Backend)

	requestCache, err := setupCache(cfg)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	requestCount, requestLatency := library.NewMetrics(registry)

	var s library.Service
	s = library.NewService(books)
	s = library.NewLoggingService(log.With(logger, "component", "library"), s)
	s = library.NewInstrumentingService(requestCount, requestLatency, s)

	graphqlSchema, err := schema.New(s)
	if err != nil {
		return err
	}

	handlers := &service.Handlers{
		Schema:   graphqlSchema,
		Service:  s,
		Cache:    requestCache,
		Logger:   logger,
		GraphiQL: cfg.GraphiQL,
	}
	routes := service.SetupRoutes(handlers, cfg.GraphQLPath, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	errs := make(chan error, 2)
	go func() {
		level.Info(logger).Log("transport", "http", "address", cfg.Addr(), "path", cfg.GraphQLPath, "msg", "listening")
		errs <- http.ListenAndServe(cfg.Addr(), routes)
	}()
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		errs <- fmt.Errorf("%s", <-c)
	}()

	level.Info(logger).Log("terminated", <-errs)
	return nil
}

func setupLibrary(cfg config.Config) (models.Library, error) {
	if cfg.Backend != config.ELASTIC_BACKEND {
		return db.NewMemoryLibrary(), nil
	}

	elasticClient, err := config.NewElasticClient(cfg.ElasticURL)
	if err != nil {
		return nil, err
	}
	return db.NewElasticLibrary(cfg.ElasticIndex, elasticClient), nil
}

func setupCache(cfg config.Config) (cache.RequestCacher, error) {
	if cfg.RedisURL == "" {
		return cache.CreateMemoryCache(cfg.ActivitySize), nil
	}

	redisClient, err := config.NewRedisClient(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	return cache.CreateRedisCache(cfg.ActivitySize, redisClient), nil
}
