package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/smarino-dev/tienda-api/internal/api/handlers"
	"github.com/smarino-dev/tienda-api/internal/api/middleware"
	"github.com/smarino-dev/tienda-api/internal/config"
	"github.com/smarino-dev/tienda-api/internal/health"
	"github.com/smarino-dev/tienda-api/internal/metrics"
	repository "github.com/smarino-dev/tienda-api/internal/repositories"
	redisrepo "github.com/smarino-dev/tienda-api/internal/repositories/redis"
	service "github.com/smarino-dev/tienda-api/internal/services"
	"github.com/smarino-dev/tienda-api/internal/tracing"
	"github.com/smarino-dev/tienda-api/pkg/email"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.MustLoad()

	shutdownTracing, err := tracing.Setup(context.Background(), cfg.Tracing.OTLPEndpoint, cfg.Env)
	if err != nil {
		slog.Error("failed to initialize tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}()

	if err := repository.RunMigrations(repos.DB, cfg.Database.MigrationsDir, logger); err != nil {
		slog.Error("failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	redisClient, err := redisrepo.NewClient(cfg)
	if err != nil {
		slog.Error("failed to connect to redis", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	jwtKey := []byte(cfg.Security.JWTSecret)
	rateLimiter := redisrepo.NewRateLimiter(redisClient, &cfg.RateLimit)
	emailService := email.NewService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	userService := service.NewUserService(repos.User, rateLimiter, emailService, jwtKey, cfg.Security.JWTExpiry)
	userHandler := handlers.NewUserHandler(userService)
	productService := service.NewProductService(repos.Product, repos.Category)
	productHandler := handlers.NewProductHandler(productService)
	categoryService := service.NewCategoryService(repos.Category, repos.Product)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	cartService := service.NewCartService(repos.Cart, repos.Product)
	cartHandler := handlers.NewCartHandler(cartService)
	favoriteService := service.NewFavoriteService(repos.Favorite, repos.Product)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("failed to initialize health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env))

	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /auth/register", userHandler.Register())
	routerMux.HandleFunc("POST /auth/login", userHandler.Login())

	routerMux.HandleFunc("GET /products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /products/me", authMiddleware.Authenticate(productHandler.ListMyProducts()))
	routerMux.HandleFunc("GET /products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("POST /products", authMiddleware.Authenticate(productHandler.CreateProduct()))
	routerMux.HandleFunc("PUT /products/{id}", authMiddleware.Authenticate(productHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE /products/{id}", authMiddleware.Authenticate(productHandler.DeleteProduct()))

	routerMux.HandleFunc("GET /categories", categoryHandler.ListCategories())
	routerMux.HandleFunc("GET /categories/{id}", categoryHandler.GetCategory())
	routerMux.HandleFunc("GET /categories/{id}/products", categoryHandler.ListCategoryProducts())
	routerMux.HandleFunc("POST /categories", authMiddleware.Authenticate(middleware.RequireAdmin(categoryHandler.CreateCategory())))
	routerMux.HandleFunc("PUT /categories/{id}", authMiddleware.Authenticate(middleware.RequireAdmin(categoryHandler.UpdateCategory())))
	routerMux.HandleFunc("DELETE /categories/{id}", authMiddleware.Authenticate(middleware.RequireAdmin(categoryHandler.DeleteCategory())))

	routerMux.HandleFunc("GET /cart", authMiddleware.Authenticate(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /cart/{productId}", authMiddleware.Authenticate(cartHandler.AddToCart()))
	routerMux.HandleFunc("PATCH /cart/{productId}", authMiddleware.Authenticate(cartHandler.UpdateQuantity()))
	routerMux.HandleFunc("DELETE /cart/{productId}", authMiddleware.Authenticate(cartHandler.RemoveFromCart()))

	routerMux.HandleFunc("GET /favorites", authMiddleware.Authenticate(favoriteHandler.GetFavorites()))
	routerMux.HandleFunc("POST /favorites/{productId}", authMiddleware.Authenticate(favoriteHandler.AddFavorite()))
	routerMux.HandleFunc("DELETE /favorites/{productId}", authMiddleware.Authenticate(favoriteHandler.RemoveFavorite()))

	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	var handler http.Handler = routerMux
	handler = middleware.CORS(cfg.FrontendURL)(handler)
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "tienda-api")

	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("server is starting", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown encountered an issue", slog.String("error", err.Error()))
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}

	slog.Info("server stopped")
}
