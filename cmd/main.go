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
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/museum-guide/internal/facades"
	"github.com/sbilibin2017/museum-guide/internal/handlers"
	"github.com/sbilibin2017/museum-guide/internal/jwt"
	"github.com/sbilibin2017/museum-guide/internal/logger"
	"github.com/sbilibin2017/museum-guide/internal/middlewares"
	"github.com/sbilibin2017/museum-guide/internal/models"
	"github.com/sbilibin2017/museum-guide/internal/repositories"
	"github.com/sbilibin2017/museum-guide/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/museum-guide/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// userRepository is the ledger contract both storage backends satisfy.
type userRepository interface {
	Get(ctx context.Context, username string) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
}

// @title museum-guide API
// @version 1.0.0
// @description Web service for browsing a museum catalog, keeping a personal visit ledger and taking per-museum quizzes
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, corsOrigins,
		dataDir, usersFile, storageBackend,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisAddr, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, infoCacheTTLSecond,
		kafkaBroker, kafkaTopic,
		wikipediaURL, wikipediaTimeoutSecond,
		jwtSecret, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, corsOrigins,
		dataDir, usersFile, storageBackend,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisAddr, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, infoCacheTTLSecond,
		kafkaBroker, kafkaTopic,
		wikipediaURL, wikipediaTimeoutSecond,
		jwtSecret, jwtExpSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, storage, Redis, Kafka, Wikipedia, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel, corsOrigins string,
	dataDir, usersFile, storageBackend string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisAddr string, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, infoCacheTTLSecond int,
	kafkaBroker, kafkaTopic string,
	wikipediaURL string, wikipediaTimeoutSecond int,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	corsOrigins = getEnv("CORS_ALLOWED_ORIGINS", "*")

	// Content and ledger storage config
	dataDir = getEnv("DATA_DIR", "data")
	usersFile = getEnv("USERS_FILE", "data/users.json")
	storageBackend = getEnv("STORAGE_BACKEND", "file")

	// PostgreSQL config (used when STORAGE_BACKEND=postgres)
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config (museum info cache, disabled when REDIS_ADDR is empty)
	redisAddr = getEnv("REDIS_ADDR", "")
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if infoCacheTTLSecond, err = strconv.Atoi(getEnv("MUSEUM_INFO_CACHE_TTL_SECOND", "3600")); err != nil {
		return
	}

	// Kafka config (activity events, disabled when KAFKA_BROKER is empty)
	kafkaBroker = getEnv("KAFKA_BROKER", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "museum-guide-activity")

	// Wikipedia config
	wikipediaURL = getEnv("WIKIPEDIA_API_URL", "https://en.wikipedia.org/w/api.php")
	if wikipediaTimeoutSecond, err = strconv.Atoi(getEnv("WIKIPEDIA_TIMEOUT_SECOND", "5")); err != nil {
		return
	}

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, storage, optional Redis and Kafka clients, and
// the HTTP server. It sets up routes, applies middleware, and handles
// graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel, corsOrigins string,
	dataDir, usersFile, storageBackend string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisAddr string, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, infoCacheTTLSecond int,
	kafkaBroker, kafkaTopic string,
	wikipediaURL string, wikipediaTimeoutSecond int,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Select the user ledger backend
	var userRepo userRepository
	switch storageBackend {
	case "postgres":
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			pgUser, pgPassword, pgHost, pgPort, pgDB)
		logger.Log.Infof("Connecting to PostgreSQL: %s", dsn)

		db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			logger.Log.Errorw("PostgreSQL connection error", "error", err)
			return err
		}
		defer db.Close()
		db.SetMaxOpenConns(pgMaxOpenConns)
		db.SetMaxIdleConns(pgMaxIdleConns)
		if err := db.PingContext(ctx); err != nil {
			logger.Log.Errorw("PostgreSQL ping failed", "error", err)
			return err
		}

		userRepo = repositories.NewPostgresUserRepository(db)
	default:
		logger.Log.Infof("Using file-backed user ledger at %s", usersFile)
		userRepo = repositories.NewFileUserRepository(usersFile)
	}

	// Load the read-only content snapshot
	contentRepo := repositories.NewContentRepository(dataDir)

	// Connect to Redis for the museum info cache, when configured
	var infoCache services.ExtractCache
	if redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         redisAddr,
			Password:     redisPassword,
			DB:           redisDB,
			PoolSize:     redisPoolSize,
			MinIdleConns: redisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Errorw("Redis connection error", "error", err)
			return err
		}
		defer rdb.Close()
		infoCache = repositories.NewMuseumInfoCacheRepository(rdb, time.Duration(infoCacheTTLSecond)*time.Second)
	}

	// Create the Kafka activity event writer, when configured
	var kafkaWriter services.KafkaWriter
	if kafkaBroker != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBroker),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize JWT service
	tokens := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize facades and services
	wikiFacade := facades.NewWikipediaFacade(wikipediaURL, time.Duration(wikipediaTimeoutSecond)*time.Second)
	authService := services.NewAuthService(userRepo, userRepo, tokens)
	ledgerService := services.NewLedgerService(userRepo, userRepo, contentRepo, kafkaWriter)
	infoService := services.NewInfoService(wikiFacade, infoCache)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(corsOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/api/auth/signup", handlers.NewSignupHandler(authService))
	r.Post("/api/auth/login", handlers.NewLoginHandler(authService))
	r.Get("/api/museums", handlers.NewListMuseumsHandler(contentRepo))
	r.Get("/api/museums/search/{query}", handlers.NewSearchMuseumsHandler(contentRepo))
	r.Get("/api/museums/{id}", handlers.NewGetMuseumHandler(contentRepo))
	r.Get("/api/quiz", handlers.NewListQuizzesHandler(contentRepo))
	r.Get("/api/museum-quiz/{museumId}", handlers.NewMuseumQuizHandler(contentRepo))
	r.Get("/api/museum-info/{name}", handlers.NewMuseumInfoHandler(infoService))
	r.Get("/api/museum-location/{name}/{city}", handlers.NewMuseumLocationHandler(contentRepo))

	// Protected routes: token subject must match the path username
	authMiddleware := middlewares.AuthMiddleware(tokens)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/api/user/dashboard/{username}", handlers.NewDashboardHandler(ledgerService))
		r.Post("/api/user/wishlist/{username}", handlers.NewAddWishlistHandler(ledgerService))
		r.Delete("/api/user/wishlist/{username}/{museumId}", handlers.NewRemoveWishlistHandler(ledgerService))
		r.Post("/api/user/visited/{username}", handlers.NewAddVisitedHandler(ledgerService))
		r.Post("/api/user/review/{username}", handlers.NewAddReviewHandler(ledgerService))
		r.Post("/api/user/quiz-score/{username}", handlers.NewAddQuizScoreHandler(ledgerService))
		r.Get("/api/user/quiz-history/{username}", handlers.NewQuizHistoryHandler(ledgerService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
