package main

import (
	"fmt"
	"log"
	"time"

	"github.com/Tarakreddy011/School-Management-App/api"
	"github.com/Tarakreddy011/School-Management-App/config"
	"github.com/Tarakreddy011/School-Management-App/flow"
	"github.com/Tarakreddy011/School-Management-App/logger"
	"github.com/Tarakreddy011/School-Management-App/persistence"
	"github.com/Tarakreddy011/School-Management-App/profile"
	"github.com/Tarakreddy011/School-Management-App/service"
	"github.com/Tarakreddy011/School-Management-App/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger.InitLogger(cfg.LogLevel)
	defer logger.Log.Sync()

	logger.Log.Info("Starting School Management Service",
		zap.Int("port", cfg.Port),
		zap.String("db", cfg.DBType),
	)

	store, err := persistence.NewStorage(cfg.DBType, cfg.DSN, &persistence.Options{
		SkipMigrate: cfg.SkipAutoMigrate,
	})
	if err != nil {
		logger.Log.Fatal("failed to initialize storage", zap.Error(err))
	}

	// Login flow: password strategy behind a rate limiter.
	hasher := flow.NewBcryptHasher(14)
	pwStrategy := flow.NewPasswordStrategy(store, hasher)

	var limiter flow.RateLimiter
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		limiter = flow.NewRedisRateLimiter(client, "school:ratelimit:")
		logger.Log.Info("using redis login rate limiter", zap.String("addr", cfg.RedisAddr))
	} else {
		limiter = flow.NewMemoryRateLimiter()
	}
	limited := flow.NewRateLimitStrategy(pwStrategy, limiter, flow.RateLimitConfig{
		Limit:    cfg.LoginRateLimit,
		Window:   time.Duration(cfg.LoginRateWindowSeconds) * time.Second,
		FailOpen: true,
	})

	login := flow.NewLoginManager()
	login.RegisterStrategy(limited)

	// Sessions: stateless JWT when a secret is configured, revocable
	// database sessions otherwise.
	ttl := time.Duration(cfg.SessionTTLMinutes) * time.Minute
	var strategy session.Strategy
	if cfg.SessionSecret != "" {
		strategy = session.NewHS256Strategy(cfg.SessionSecret, ttl)
		logger.Log.Info("using JWT sessions")
	} else {
		strategy = session.NewDatabaseStrategy(store, ttl)
		logger.Log.Info("using database sessions")
	}
	sessions := session.NewManager(strategy)

	resolver := profile.NewResolver(store)

	h := api.NewHandler(api.Deps{
		Login:         login,
		Sessions:      sessions,
		Resolver:      resolver,
		Students:      service.NewStudentManager(store, store, pwStrategy),
		Staff:         service.NewStaffManager(store, store, pwStrategy),
		Marks:         service.NewMarkManager(store),
		Leaves:        service.NewLeaveManager(store),
		Discipline:    service.NewDisciplineManager(store),
		Complaints:    service.NewComplaintManager(store),
		Announcements: service.NewAnnouncementManager(store),
		Syllabus:      service.NewSyllabusManager(store),
		Summary:       service.NewSummaryManager(store),
	})

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	g := e.Group("/api/v1")
	h.RegisterRoutes(g)

	logger.Log.Info("Server is starting", zap.Int("port", cfg.Port))
	if err := e.Start(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		logger.Log.Fatal("server failed to start", zap.Error(err))
	}
}
