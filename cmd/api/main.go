package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/chicvault/admin-api/internal/application/auth"
	"github.com/chicvault/admin-api/internal/application/images"
	"github.com/chicvault/admin-api/internal/application/usecase"
	"github.com/chicvault/admin-api/internal/infrastructure/cache"
	"github.com/chicvault/admin-api/internal/infrastructure/media"
	"github.com/chicvault/admin-api/internal/infrastructure/postgres"
	httpRouter "github.com/chicvault/admin-api/internal/interfaces/http"
	"github.com/chicvault/admin-api/pkg/config"
	"github.com/chicvault/admin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Los precios se serializan como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("preparar esquema")
	}
	tree := postgres.NewTreeStore(pool)

	redisClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisClient.Ping(ctx); err != nil {
		// La lista de revocación falla en abierto; el servicio arranca igual.
		log.Warn().Err(err).Msg("Redis no disponible, revocación de sesiones degradada")
	}
	blacklist := cache.NewSessionBlacklist(redisClient)

	blobs, err := media.NewCloudinaryStore(cfg.Media.CloudinaryURL)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Cloudinary")
	}
	resolver := images.NewResolver(blobs, cfg.Media.PlaceholderURL)

	categoryRepo := postgres.NewCategoryRepository(tree)
	productRepo := postgres.NewProductRepository(tree)
	featuredRepo := postgres.NewFeaturedRepository(tree)
	userRepo := postgres.NewAdminUserRepository(tree)
	orderRepo := postgres.NewOrderRepository(tree, pool)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo, blobs, resolver)
	productUC := usecase.NewProductUseCase(productRepo, blobs, resolver)
	featuredUC := usecase.NewFeaturedUseCase(featuredRepo, blobs, resolver)
	userUC := usecase.NewUserUseCase(userRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, resolver)
	sessionUC := auth.NewSessionUseCase(userRepo, blacklist, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:     cfg.App.Name,
		ReadTimeout: time.Second * 10,
		// Sin WriteTimeout: los streams SSE de /api/watch viven lo que viva el cliente.
		IdleTimeout: time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ChicVault Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC: categoryUC,
		ProductUC:  productUC,
		FeaturedUC: featuredUC,
		UserUC:     userUC,
		OrderUC:    orderUC,
		SessionUC:  sessionUC,
		Tree:       tree,
		Log:        log,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("servidor detenido")
}
