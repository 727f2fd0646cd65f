package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"esgweb/internal/apiproxy"
	"esgweb/internal/catalog"
	"esgweb/internal/client"
	"esgweb/internal/env"
	"esgweb/internal/handler"
	"esgweb/internal/report"
	"esgweb/internal/schema"
	"esgweb/internal/service"
	"esgweb/internal/session"
	registrystorage "esgweb/internal/storage"
	"esgweb/internal/storage/lru_cache"
	redisStorage "esgweb/internal/storage/redis"
	"esgweb/internal/toast"
	"esgweb/internal/wrapper"
	"esgweb/middleware"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type App struct{}

const (
	successCode = 0
	failureCode = 1

	registryTTL = 7 * 24 * time.Hour
)

func New() *App {
	return &App{}
}

func (a *App) Run() (exitCode int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env.LoadEnv()
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	cfg, err := loadConfig()
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return failureCode
	}

	rdb := redisStorage.NewRedis(cfg.redisAddr, cfg.redisPassword, cfg.redisDB)
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("couldn't close redis client")
		}
	}()

	apiClient, err := client.NewClient(cfg.backendURL, cfg.partnerAPITimeout)
	if err != nil {
		log.Error().Err(err).Msg("couldn't initialize a backend client")
		return failureCode
	}
	emissionCatalog, err := catalog.Default()
	if err != nil {
		log.Error().Err(err).Msg("couldn't load emission factor catalog")
		return failureCode
	}

	lruCache := lru_cache.NewLRUCache[string, schema.RegistryRecord](ctx,
		cfg.lruCacheSize,
		cfg.lruChanSize,
	)
	registryRedis := redisStorage.New[schema.RegistryRecord](ctx,
		rdb,
		"registry:",
		registryTTL,
		marshalJSON[schema.RegistryRecord],
		unmarshalJSON[schema.RegistryRecord],
		cfg.redisChanSize,
	)
	registryWrapper := wrapper.NewRegistry(apiClient, cfg.registryTimeout)
	registryStorage := registrystorage.New(ctx, lruCache, registryRedis, registryWrapper, cfg.updatePeriod)
	registryService := service.New(registryStorage)

	toasts := toast.NewStore(redisStorage.New[schema.Toast](ctx,
		rdb,
		"toast:",
		cfg.toastTTL,
		marshalJSON[schema.Toast],
		unmarshalJSON[schema.Toast],
		cfg.redisChanSize,
	), cfg.toastTTL)
	sessions := session.NewStore(redisStorage.New[schema.Session](ctx,
		rdb,
		"session:",
		cfg.sessionTTL,
		marshalJSON[schema.Session],
		unmarshalJSON[schema.Session],
		cfg.redisChanSize,
	), apiClient, cfg.sessionTTL)

	partners := wrapper.NewPartnerHook(apiClient, toasts, cfg.partnerAPITimeout, cfg.pageSize)
	materials := wrapper.NewMaterialHook(apiClient, toasts, cfg.partnerAPITimeout)
	scope2 := wrapper.NewScope2Hook(apiClient, toasts, cfg.partnerAPITimeout)
	risk := wrapper.NewRiskHook(apiClient, toasts, cfg.partnerAPITimeout)

	chrome := report.NewChrome(cfg.chromeBin)
	defer func() {
		if err := chrome.Close(); err != nil {
			log.Error().Err(err).Msg("couldn't stop headless chrome")
		}
	}()
	reports := report.NewGenerator(chrome, toasts, cfg.reportWidth, cfg.reportTimeout)

	pages, err := handler.NewPages(handler.Deps{
		Partners:        partners,
		Materials:       materials,
		Scope2:          scope2,
		Risk:            risk,
		Registry:        registryService,
		Reports:         reports,
		Toasts:          toasts,
		Sessions:        sessions,
		Catalog:         emissionCatalog,
		RegistryTimeout: cfg.registryTimeout,
		SecureCookies:   cfg.secureCookies,
	})
	if err != nil {
		log.Error().Err(err).Msg("couldn't parse page templates")
		return failureCode
	}
	lookupHandler := handler.New(registryService, cfg.lookupTimeout)

	backendProxy, err := apiproxy.New(cfg.backendURL)
	if err != nil {
		log.Error().Err(err).Msg("couldn't initialize the api proxy")
		return failureCode
	}
	loginLimit, err := middleware.RateLimit(cfg.loginRateLimit)
	if err != nil {
		log.Error().Err(err).Msg("can't parse LOGIN_RATE_LIMIT")
		return failureCode
	}

	metrics := middleware.NewMetrics()
	inFlight := map[string]interface{ InFlight() int }{
		"partner_api_in_flight":  partners,
		"material_api_in_flight": materials,
		"scope2_api_in_flight":   scope2,
		"risk_api_in_flight":     risk,
		"report_in_flight":       reports,
	}
	for name, h := range inFlight {
		metrics.RegisterGauge(name, "Calls currently in flight.", func() float64 { return float64(h.InFlight()) })
	}
	metrics.RegisterGauge("registry_lru_entries", "Entries in the local registry cache.", func() float64 {
		return float64(lruCache.Len())
	})

	startWarmUpper(ctx, rdb, cfg.warmupSaverPeriod, lruCache, registryStorage)

	router := mux.NewRouter()
	router.Use(metrics.Middleware, middleware.Session(sessions))

	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/healthz", healthz(rdb)).Methods(http.MethodGet)
	pages.RegisterPublic(router, loginLimit)

	protected := router.NewRoute().Subrouter()
	protected.Use(middleware.RequireAuth)
	protected.Handle("/api/v1/registry/lookup", middleware.JsonMiddleware(http.HandlerFunc(lookupHandler.Handle)))
	protected.PathPrefix(apiproxy.PathPrefix).Handler(backendProxy)
	pages.Register(protected)

	server := &http.Server{
		Addr:              ":" + cfg.port,
		Handler:           middleware.Logging(router),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Str("backend", cfg.backendURL).Msg("server started")
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server crashed")
			return failureCode
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
			return failureCode
		}
	}

	return successCode
}

func healthz(rdb *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), time.Second)
		defer cancel()

		w.Header().Set("Content-Type", "application/json")
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("health check: redis unavailable")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"redis unavailable"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}

func marshalJSON[V any](v V) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func unmarshalJSON[V any](s string) (V, error) {
	var v V
	err := json.Unmarshal([]byte(s), &v)
	if err != nil {
		return v, err
	}
	return v, nil
}
