package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/unisafe/unisafe-api/internal/application/analytics"
	"github.com/unisafe/unisafe-api/internal/application/auth"
	"github.com/unisafe/unisafe-api/internal/application/uploads"
	"github.com/unisafe/unisafe-api/internal/application/usecase"
	"github.com/unisafe/unisafe-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	EmpresaUC   *usecase.EmpresaUseCase
	UsuarioUC   *usecase.UsuarioUseCase
	EmpregadoUC *usecase.EmpregadoUseCase
	AuditUC     *usecase.AuditUseCase
	UploadUC    *uploads.UseCase
	DashboardUC *analytics.DashboardUseCase

	JWTSecret     string
	MaxFileSizeMB int
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	somenteAdmin := RequireRole(entity.RoleAdmin)
	podeImportar := RequireRole(entity.RoleAdmin, entity.RoleGestor)

	// Empresas: leitura para autenticados, escrita só para admin
	empresas := protected.Group("/empresas")
	empresaHandler := NewEmpresaHandler(deps.EmpresaUC)
	empresas.Get("/", empresaHandler.List)
	empresas.Get("/:id", empresaHandler.GetByID)
	empresas.Post("/", somenteAdmin, empresaHandler.Create)
	empresas.Put("/:id", somenteAdmin, empresaHandler.Update)
	empresas.Delete("/:id", somenteAdmin, empresaHandler.Delete)

	// Usuários
	usuarios := protected.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC, deps.AuthUC)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Post("/", somenteAdmin, usuarioHandler.Create)
	usuarios.Put("/:id", somenteAdmin, usuarioHandler.Update)

	// Uploads: ciclo upload -> mapeamento -> importação
	uploadsGroup := protected.Group("/uploads")
	uploadHandler := NewUploadHandler(deps.UploadUC, deps.MaxFileSizeMB)
	uploadsGroup.Get("/", uploadHandler.List)
	uploadsGroup.Get("/:id", uploadHandler.GetByID)
	uploadsGroup.Post("/", podeImportar, uploadHandler.Create)
	uploadsGroup.Put("/:id/mapeamento", podeImportar, uploadHandler.SaveMapping)
	uploadsGroup.Post("/:id/importar", podeImportar, uploadHandler.Import)

	// Empregados (consulta e relatório)
	empregados := protected.Group("/empregados")
	empregadoHandler := NewEmpregadoHandler(deps.EmpregadoUC)
	empregados.Get("/", empregadoHandler.List)
	empregados.Get("/exportar/pdf", empregadoHandler.Relatorio)
	empregados.Get("/:id", empregadoHandler.GetByID)

	// Dashboard e administração do cache
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Dashboard)
	protected.Get("/cache", somenteAdmin, dashboardHandler.CacheStatus)
	protected.Delete("/cache", somenteAdmin, dashboardHandler.ClearCache)

	// Log de auditoria (admin)
	auditHandler := NewAuditHandler(deps.AuditUC)
	protected.Get("/logs", somenteAdmin, auditHandler.List)
}
