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

	"github.com/unisafe/unisafe-api/internal/application/analytics"
	"github.com/unisafe/unisafe-api/internal/application/auditoria"
	"github.com/unisafe/unisafe-api/internal/application/auth"
	"github.com/unisafe/unisafe-api/internal/application/uploads"
	"github.com/unisafe/unisafe-api/internal/application/usecase"
	"github.com/unisafe/unisafe-api/internal/infrastructure/memcache"
	infrapdf "github.com/unisafe/unisafe-api/internal/infrastructure/pdf"
	"github.com/unisafe/unisafe-api/internal/infrastructure/planilha"
	"github.com/unisafe/unisafe-api/internal/infrastructure/postgres"
	httpRouter "github.com/unisafe/unisafe-api/internal/interfaces/http"
	"github.com/unisafe/unisafe-api/pkg/config"
	"github.com/unisafe/unisafe-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	empresaRepo := postgres.NewEmpresaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	empregadoRepo := postgres.NewEmpregadoRepository(pool)
	uploadRepo := postgres.NewUploadRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	audit := auditoria.NewRecorder(auditRepo, log)

	authUC := auth.NewAuthUseCase(usuarioRepo, empresaRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	empresaUC := usecase.NewEmpresaUseCase(empresaRepo, audit)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo, audit)
	auditUC := usecase.NewAuditUseCase(auditRepo)

	// Pipeline de importação: leitor de planilhas + sessões em memória + tx
	leitor := planilha.NewReader(cfg.Upload.MaxRows)
	sessions := uploads.NewSessionStore(time.Duration(cfg.Upload.SessionMinutes) * time.Minute)
	uploadUC := uploads.NewUseCase(
		uploadRepo, sessions, leitor, txRunner, audit, log,
		time.Duration(cfg.Upload.ImportTimeout)*time.Second,
	)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	empregadoUC := usecase.NewEmpregadoUseCase(empregadoRepo, empresaRepo, pdfGenerator)

	cache := memcache.New(time.Duration(cfg.Cache.TTLSeconds) * time.Second)
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo, cache, audit)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.Upload.MaxFileSizeMB * 1024 * 1024,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "UniSafe API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		EmpresaUC:     empresaUC,
		UsuarioUC:     usuarioUC,
		EmpregadoUC:   empregadoUC,
		AuditUC:       auditUC,
		UploadUC:      uploadUC,
		DashboardUC:   dashboardUC,
		JWTSecret:     cfg.JWT.Secret,
		MaxFileSizeMB: cfg.Upload.MaxFileSizeMB,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
