package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quiethours/momentswap/internal/config"
	"github.com/quiethours/momentswap/internal/db"
	"github.com/quiethours/momentswap/internal/exchange"
	"github.com/quiethours/momentswap/internal/handlers"
	"github.com/quiethours/momentswap/internal/middleware"
	"github.com/quiethours/momentswap/internal/repo"
	"github.com/quiethours/momentswap/internal/scheduler"
	"github.com/quiethours/momentswap/internal/session"
)

func main() {

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	setupLogger(cfg.LogFormat)

	if cfg.Env == "prod" && cfg.SessionSecret == config.DefaultSessionSecret {
		log.Fatal("SESSION_SECRET must be set when ENV=prod")
	}

	// Connect to database FIRST
	database, err := db.Connect(
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DBUser,
		cfg.DBPass,
		cfg.DBMaxOpenConns,
		cfg.DBMaxIdleConns,
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(cfg.DatabaseURL()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	slog.Info("connected to database", "host", cfg.DBHost, "name", cfg.DBName)

	// Repos and services
	userRepo := repo.NewUserRepo(database)
	momentRepo := repo.NewMomentRepo(database)
	swapRepo := repo.NewSwapRepo(database)
	sessionRepo := repo.NewSessionRepo(database)

	useTLS := cfg.TLSCertFile != "" && cfg.TLSKeyFile != ""

	sessions := session.NewManager(
		sessionRepo,
		[]byte(cfg.SessionSecret),
		time.Duration(cfg.SessionExpireHours)*time.Hour,
		useTLS,
	)

	authHandler := &handlers.AuthHandler{Users: userRepo, Sessions: sessions}
	exchangeHandler := &handlers.ExchangeHandler{Service: exchange.NewService(database)}
	apiHandler := &handlers.APIHandler{Moments: momentRepo, Swaps: swapRepo}

	// Session cleanup job
	cleanup, err := scheduler.Run(sessionRepo)
	if err != nil {
		log.Fatalf("Failed to start session cleanup: %v", err)
	}
	defer cleanup.Stop()

	// Router
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Prometheus)
	r.Use(middleware.SecurityHeaders(useTLS))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Public pages
	authLimiter := middleware.AuthRateLimiter()
	r.Get("/", handlers.Landing)
	r.Get("/signup", authHandler.SignupForm)
	r.With(authLimiter.Middleware, middleware.MaxBytes(0)).Post("/signup", authHandler.Signup)
	r.Get("/signin", authHandler.SigninForm)
	r.With(authLimiter.Middleware, middleware.MaxBytes(0)).Post("/signin", authHandler.Signin)

	// Authenticated pages
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequirePage(sessions))
		r.Get("/signout", authHandler.Signout)
		r.Get("/exchange", exchangeHandler.Form)
		r.With(middleware.MaxBytes(0)).Post("/exchange", exchangeHandler.Submit)
		r.Get("/gallery", handlers.Gallery)
		r.Get("/stats", handlers.Stats)
	})

	// JSON API
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequireAPI(sessions))
		r.Get("/moments", apiHandler.ListMoments)
		r.Get("/stats", apiHandler.Stats)
	})

	addr := ":" + cfg.Port
	slog.Info("starting server", "addr", addr, "tls", useTLS)
	if useTLS {
		err = http.ListenAndServeTLS(addr, cfg.TLSCertFile, cfg.TLSKeyFile, r)
	} else {
		err = http.ListenAndServe(addr, r)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// setupLogger installs the default slog handler: text for dev, JSON when
// LOG_FORMAT=json.
func setupLogger(format string) {
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		handler = slog.NewTextHandler(os.Stdout, nil)
	}
	slog.SetDefault(slog.New(handler))
}
