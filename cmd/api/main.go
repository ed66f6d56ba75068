package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhttp "github.com/versionverse/backend/internal/auth/http"
	authservice "github.com/versionverse/backend/internal/auth/service"
	"github.com/versionverse/backend/internal/common/clock"
	"github.com/versionverse/backend/internal/common/config"
	"github.com/versionverse/backend/internal/common/constants"
	commoncrypto "github.com/versionverse/backend/internal/common/crypto"
	"github.com/versionverse/backend/internal/common/db"
	commonhttp "github.com/versionverse/backend/internal/common/http"
	"github.com/versionverse/backend/internal/common/jwtverify"
	"github.com/versionverse/backend/internal/common/logger"
	srv "github.com/versionverse/backend/internal/common/server"
	trackhttp "github.com/versionverse/backend/internal/track/http"
	trackrepo "github.com/versionverse/backend/internal/track/repository"
	trackservice "github.com/versionverse/backend/internal/track/service"
	userrepo "github.com/versionverse/backend/internal/user/repository"
)

func main() {
	log, err := logger.New(os.Getenv("LOG_DIR"), "api", os.Getenv("LOG_LEVEL"))
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("failed to initialize logger: %v\n", err))
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	pool := db.NewPool(log, cfg.DatabaseURL)
	defer pool.Close()

	hasher := commoncrypto.NewBcryptHasher(cfg.BcryptCost)
	idGenerator := commoncrypto.NewUUIDGenerator()
	errorHandler := commonhttp.NewErrorHandler(log)

	issuer := authservice.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL, clock.NewRealClock())
	authSvc := authservice.NewAuthService(userrepo.NewPgRepository(pool), hasher, idGenerator, issuer, log)

	productRepo := trackrepo.NewPgProductRepository(pool)
	updateRepo := trackrepo.NewPgUpdateRepository(pool)
	pointRepo := trackrepo.NewPgUpdatePointRepository(pool)
	resolver := trackservice.NewResolver(productRepo, updateRepo, pointRepo)
	trackSvc := trackservice.New(resolver, productRepo, updateRepo, pointRepo, idGenerator, log)

	apiMux := http.NewServeMux()
	trackhttp.NewHandler(trackSvc, errorHandler, log).Register(apiMux)

	guard := jwtverify.Middleware(cfg.JWTSecret, log)
	timeout := commonhttp.TimeoutMiddleware(cfg.RequestTimeout)

	mux := http.NewServeMux()
	authhttp.NewHandler(authSvc, errorHandler, log).Register(mux)
	mux.HandleFunc("/health", commonhttp.HealthHandler(log))
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/api/", guard(timeout(apiMux)))

	rateLimiter := commonhttp.NewRateLimiter(constants.RateLimitRequestsPerSecond, constants.RateLimitBurst)
	baseHandler := commonhttp.BuildBaseHandler(log, mux)

	rateLimited := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if path == "/health" || path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}
			rateLimiter.Middleware()(next).ServeHTTP(w, r)
		})
	}

	server := srv.NewServer(srv.DefaultServerConfig(cfg.HTTPPort), rateLimited(baseHandler))
	srv.StartWithGracefulShutdown(server, log)
}
