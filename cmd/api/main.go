package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/tu-usuario/mall-office/internal/application/analytics"
	"github.com/tu-usuario/mall-office/internal/application/auth"
	"github.com/tu-usuario/mall-office/internal/application/payments"
	"github.com/tu-usuario/mall-office/internal/application/usecase"
	infrapdf "github.com/tu-usuario/mall-office/internal/infrastructure/pdf"
	"github.com/tu-usuario/mall-office/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/mall-office/internal/interfaces/http"
	"github.com/tu-usuario/mall-office/pkg/config"
	"github.com/tu-usuario/mall-office/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Sin JWT_SECRET se genera uno aleatorio: los tokens dejan de valer en
	// cada reinicio. Útil en dev, inaceptable en producción.
	if cfg.JWT.Secret == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			log.Fatal().Err(err).Msg("generar JWT secret aleatorio")
		}
		cfg.JWT.Secret = hex.EncodeToString(buf)
		log.Warn().Msg("JWT_SECRET no configurado: usando un secret aleatorio, las sesiones no sobreviven reinicios")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	mallRepo := postgres.NewMallRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	mallUC := usecase.NewMallUseCase(mallRepo)
	storeUC := usecase.NewStoreUseCase(storeRepo)
	clientUC := usecase.NewClientUseCase(clientRepo, userRepo)

	// PDF: comprobante de pago de renta
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	paymentUC := payments.NewPaymentUseCase(paymentRepo, storeRepo, mallRepo, clientRepo, receiptGenerator)
	dashboardUC := appanalytics.NewCollectedRentsUseCase(paymentRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Mall Office API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		MallUC:      mallUC,
		StoreUC:     storeUC,
		ClientUC:    clientUC,
		PaymentUC:   paymentUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
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

	log.Info().Msg("aplicación detenida")
}
