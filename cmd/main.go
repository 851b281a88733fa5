package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-gaming-platform/docs"
	"github.com/sbilibin2017/gw-gaming-platform/internal/facades"
	"github.com/sbilibin2017/gw-gaming-platform/internal/handlers"
	"github.com/sbilibin2017/gw-gaming-platform/internal/jwt"
	"github.com/sbilibin2017/gw-gaming-platform/internal/logger"
	"github.com/sbilibin2017/gw-gaming-platform/internal/middlewares"
	"github.com/sbilibin2017/gw-gaming-platform/internal/models"
	"github.com/sbilibin2017/gw-gaming-platform/internal/period"
	"github.com/sbilibin2017/gw-gaming-platform/internal/repositories"
	"github.com/sbilibin2017/gw-gaming-platform/internal/services"
	"github.com/sbilibin2017/gw-gaming-platform/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-gaming-platform API
// @version 1.0.0
// @description Gaming platform backend: authentication, player ledger, recharge packs and admin analytics
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExpSecond int
	OTPTTLSecond int

	RateLimitRPS   float64
	RateLimitBurst int

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string
	FrontendURL        string
}

// parseConfig loads environment variables from a file and returns
// the application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string, dst *int) {
		if err != nil {
			return
		}
		if *dst, err = strconv.Atoi(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	getInt("POSTGRES_PORT", "5432", &cfg.PGPort)
	getInt("POSTGRES_MAX_OPEN_CONNS", "16", &cfg.PGMaxOpenConns)
	getInt("POSTGRES_MAX_IDLE_CONNS", "8", &cfg.PGMaxIdleConns)

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	getInt("REDIS_PORT", "6379", &cfg.RedisPort)
	getInt("REDIS_DB", "0", &cfg.RedisDB)
	getInt("REDIS_POOL_SIZE", "10", &cfg.RedisPoolSize)
	getInt("REDIS_MIN_IDLE_CONNS", "2", &cfg.RedisMinIdleConns)

	// Kafka config, publishing is disabled without brokers
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "transactions")

	// JWT and OTP config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	getInt("JWT_EXP_SECOND", "3600", &cfg.JWTExpSecond)
	getInt("OTP_TTL_SECOND", "300", &cfg.OTPTTLSecond)

	// Rate limit config
	if err == nil {
		if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "10"), 64); err != nil {
			err = fmt.Errorf("RATE_LIMIT_RPS: %w", err)
		}
	}
	getInt("RATE_LIMIT_BURST", "20", &cfg.RateLimitBurst)

	// Google OAuth config, Google login is disabled without a client id
	cfg.GoogleClientID = getEnv("GOOGLE_CLIENT_ID", "")
	cfg.GoogleClientSecret = getEnv("GOOGLE_CLIENT_SECRET", "")
	cfg.GoogleRedirectURI = getEnv("GOOGLE_REDIRECT_URI", "http://localhost:8080/api/v1/auth/google/callback")
	cfg.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")

	return cfg, err
}

// run initializes the logger, database, Redis, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}

	if err := storage.RunMigrations(db.DB); err != nil {
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection: %w", err)
	}
	defer rdb.Close()

	// Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		log.Infow("Kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		log.Warn("KAFKA_BROKERS is empty, transaction events are not published")
	}

	// Google OAuth
	var google services.GoogleProvider
	if cfg.GoogleClientID != "" {
		google = facades.NewGoogleOAuthFacade(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURI)
	} else {
		log.Warn("GOOGLE_CLIENT_ID is empty, Google login is disabled")
	}

	r := newRouter(cfg, db, rdb, kafkaWriter, google)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires repositories, services and handlers into the HTTP routes.
func newRouter(
	cfg config,
	db *sqlx.DB,
	rdb *redis.Client,
	kafkaWriter services.KafkaWriter,
	google services.GoogleProvider,
) http.Handler {
	clock := period.SystemClock{}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	txnReadRepo := repositories.NewTransactionReadRepository(db)
	txnWriteRepo := repositories.NewTransactionWriteRepository(db, middlewares.GetTxFromContext)
	adminProfileRepo := repositories.NewAdminProfileRepository(db)
	packRepo := repositories.NewRechargePackRepository(db, middlewares.GetTxFromContext)
	otpRepo := repositories.NewOTPRepository(rdb, time.Duration(cfg.OTPTTLSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, otpRepo, facades.NewLogOTPSender(), google)
	txnService := services.NewTransactionService(txnWriteRepo, kafkaWriter, clock, services.WithAfterCommit(middlewares.AfterCommit))
	adminService := services.NewAdminService(adminProfileRepo, userReadRepo)
	packService := services.NewRechargePackService(packRepo)
	reportService := services.NewReportService(txnReadRepo, userReadRepo, period.NewResolver(clock))

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.RateLimitMiddleware(middlewares.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)))

	r.Get("/", handlers.NewHealthHandler())

	r.Route("/api/v1", func(r chi.Router) {
		withTx := middlewares.TxMiddleware(db)

		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.With(withTx).Post("/signup", handlers.NewSignupHandler(authService))
			r.Post("/signin", handlers.NewSigninHandler(authService))
			if google != nil {
				r.Get("/login/google", handlers.NewGoogleLoginHandler(authService))
				r.With(withTx).Get("/google/callback", handlers.NewGoogleCallbackHandler(authService, cfg.FrontendURL))
			}
			r.Post("/otp/send", handlers.NewSendOTPHandler(authService))
			r.With(withTx).Post("/otp/verify", handlers.NewVerifyOTPHandler(authService))
		})

		// Player routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens))
			r.With(withTx).Post("/user/create_transaction", handlers.NewCreateTransactionHandler(txnService))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/upi_id", handlers.NewGetUPIHandler(adminService))
			r.Get("/get-recharge-packs", handlers.NewListPacksHandler(packService))
			r.Get("/packs/{pack_id}", handlers.NewGetPackHandler(packService))

			// Admin only routes
			r.Group(func(r chi.Router) {
				r.Use(middlewares.AuthMiddleware(tokens))
				r.Use(middlewares.RequireRole(string(models.RoleAdmin)))

				r.Patch("/update-upi_id", handlers.NewUpdateUPIHandler(adminService))
				r.Get("/get_all_users", handlers.NewGetAllUsersHandler(adminService))

				r.With(withTx).Post("/create-recharge-pack", handlers.NewCreatePackHandler(packService))
				r.With(withTx).Put("/packs/{pack_id}", handlers.NewUpdatePackHandler(packService))
				r.With(withTx).Delete("/packs/{pack_id}", handlers.NewDeletePackHandler(packService))

				r.Get("/dashboard", handlers.NewDashboardHandler(reportService))
				r.Get("/todays_earnings", handlers.NewTodaysEarningsHandler(reportService))
				r.Get("/monthly_earnings", handlers.NewMonthlyEarningsHandler(reportService))
				r.Get("/last_month_earnings", handlers.NewLastMonthEarningsHandler(reportService))
				r.Get("/last_year_earnings", handlers.NewLastYearEarningsHandler(reportService))
				r.Get("/monthly_earnings_with_period", handlers.NewPeriodEarningsHandler(reportService))
				r.Get("/monthly_user_growth", handlers.NewUserGrowthHandler(reportService))
				r.Get("/monthly_combined_data", handlers.NewCombinedHandler(reportService))
				r.Get("/user/{user_id}/transactions", handlers.NewUserTransactionsHandler(reportService))
				r.Get("/users_with_txn_summary", handlers.NewUsersSummaryHandler(reportService))
				r.Get("/all_wallet_data", handlers.NewWalletTotalsHandler(reportService))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}
