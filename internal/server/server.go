// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"time"

	"dresscircle/internal/cache"
	"dresscircle/internal/config"
	"dresscircle/internal/featureflags"
	"dresscircle/internal/middleware"
	"dresscircle/internal/models"
	"dresscircle/internal/repository"
	"dresscircle/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config          *config.Config
	redis           *redis.Client
	promMiddleware  *fiberprometheus.FiberPrometheus
	startedAt       time.Time
	userRepo        repository.UserRepository
	dressRepo       repository.DressRepository
	txRepo          repository.TransactionRepository
	favRepo         repository.FavoriteRepository
	msgRepo         repository.MessageRepository
	featureFlags    *featureflags.Manager
	listingService  *service.ListingService
	tradeService    *service.TradeService
	favoriteService *service.FavoriteService
	messageService  *service.MessageService
	userService     *service.UserService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize Redis
	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	return NewServerWithDeps(cfg, redisClient)
}

// NewServerWithDeps creates a Server using an already-initialized Redis
// client. Use this in tests or when a bootstrap layer establishes Redis.
func NewServerWithDeps(cfg *config.Config, redisClient *redis.Client) (*Server, error) {
	// Initialize repositories
	userRepo := repository.NewUserRepository()
	dressRepo := repository.NewDressRepository()
	txRepo := repository.NewTransactionRepository()
	favRepo := repository.NewFavoriteRepository()
	msgRepo := repository.NewMessageRepository()

	// Initialize auth middleware and Prometheus metrics
	middleware.InitMiddleware(cfg)
	prom := middleware.InitMetrics("dresscircle-api")

	server := &Server{
		config:         cfg,
		redis:          redisClient,
		promMiddleware: prom,
		startedAt:      time.Now(),
		userRepo:       userRepo,
		dressRepo:      dressRepo,
		txRepo:         txRepo,
		favRepo:        favRepo,
		msgRepo:        msgRepo,
		featureFlags:   featureflags.NewManager(cfg.FeatureFlags),
	}
	server.listingService = service.NewListingService(dressRepo, userRepo)
	server.tradeService = service.NewTradeService(userRepo, dressRepo, txRepo)
	server.favoriteService = service.NewFavoriteService(favRepo, dressRepo, userRepo)
	server.messageService = service.NewMessageService(msgRepo, userRepo)
	server.userService = service.NewUserService(userRepo, dressRepo)

	return server, nil
}

// UserRepo exposes the user repository for bootstrap seeding.
func (s *Server) UserRepo() repository.UserRepository { return s.userRepo }

// DressRepo exposes the dress repository for bootstrap seeding.
func (s *Server) DressRepo() repository.DressRepository { return s.dressRepo }

// AuthRequired returns the authentication middleware for protected routes.
func (s *Server) AuthRequired() fiber.Handler {
	return middleware.AuthRequired
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID and User ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Service metadata and health
	app.Get("/", s.Root)
	api.Get("/health", s.HealthCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "DressCircle Metrics Dashboard",
	}))

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Get("/me", s.AuthRequired(), s.Me)

	// Public dress routes. Specific /trending and /new routes BEFORE the
	// generic /:id route.
	dresses := api.Group("/dresses")
	dresses.Get("/", s.BrowseDresses)
	dresses.Get("/trending", s.TrendingDresses)
	dresses.Get("/new", s.NewArrivals)
	dresses.Get("/:id", s.GetDress)

	// Protected dress routes
	dresses.Post("/", s.AuthRequired(), middleware.RateLimit(
		s.redis, 5, 5*time.Minute, "create_listing"), s.CreateDress)
	dresses.Put("/:id", s.AuthRequired(), s.UpdateDress)
	dresses.Delete("/:id", s.AuthRequired(), s.DeleteDress)

	// User routes. Specific /me/dresses and /profile routes BEFORE the
	// generic /:id route.
	users := api.Group("/users")
	users.Get("/me/dresses", s.AuthRequired(), s.GetMyDresses)
	users.Put("/profile", s.AuthRequired(), s.UpdateProfile)
	users.Get("/:id", s.GetUserProfile)

	// Transaction routes
	transactions := api.Group("/transactions", s.AuthRequired())
	transactions.Post("/purchase", s.PurchaseDress)
	transactions.Get("/history", s.GetTransactionHistory)

	// Favorite routes
	favorites := api.Group("/favorites", s.AuthRequired())
	favorites.Get("/", s.GetFavorites)
	favorites.Post("/:dressId", s.AddFavorite)
	favorites.Delete("/:dressId", s.RemoveFavorite)

	// Message routes. /conversations BEFORE the generic /:userId route.
	messages := api.Group("/messages", s.AuthRequired())
	messages.Get("/conversations", s.GetConversations)
	messages.Post("/", middleware.RateLimit(
		s.redis, 15, time.Minute, "send_message"), s.SendMessage)
	messages.Get("/:userId", s.GetThread)

	// Stats
	api.Get("/stats", s.AuthRequired(), s.GetStats)

	// Fallback for unknown routes
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
		})
	})
}

// Root handles GET / and returns service metadata.
func (s *Server) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "DressCircle API",
		"version": "1.0.0",
		"status":  "running",
		"endpoints": fiber.Map{
			"auth":         "/api/auth/*",
			"users":        "/api/users/*",
			"dresses":      "/api/dresses/*",
			"transactions": "/api/transactions/*",
			"favorites":    "/api/favorites/*",
			"messages":     "/api/messages/*",
			"stats":        "/api/stats",
		},
	})
}

// HealthCheck handles GET /api/health with uptime and store counts.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"uptime":    time.Since(s.startedAt).Seconds(),
		"timestamp": time.Now(),
		"database": fiber.Map{
			"users":        s.userRepo.Count(c.Context()),
			"dresses":      s.dressRepo.Count(c.Context()),
			"transactions": s.txRepo.Count(c.Context()),
		},
	})
}

// Shutdown releases server resources after the HTTP listener has drained.
func (s *Server) Shutdown() error {
	if s.redis != nil {
		return s.redis.Close()
	}
	return nil
}

// App builds the configured Fiber application.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return models.Respond(c, err)
		},
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}
