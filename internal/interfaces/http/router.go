package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chicvault/admin-api/internal/application/auth"
	"github.com/chicvault/admin-api/internal/application/usecase"
	"github.com/chicvault/admin-api/internal/domain/entity"
	"github.com/chicvault/admin-api/internal/domain/store"
	"github.com/chicvault/admin-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	FeaturedUC *usecase.FeaturedUseCase
	UserUC     *usecase.UserUseCase
	OrderUC    *usecase.OrderUseCase
	SessionUC  *auth.SessionUseCase
	Tree       store.Tree
	Log        *logger.Logger
	JWTSecret  string
}

// Router registra las rutas de la API.
//
// Política de roles: cualquier rol autenticado puede leer; el catálogo y los
// destacados se editan con editor o admin; los usuarios del panel solo con
// admin. Los pedidos son de solo lectura para todos los roles.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login es público, logout requiere la sesión que va a cerrar.
	authHandler := NewAuthHandler(deps.SessionUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	// El resto requiere Bearer Token; el middleware rechaza tokens revocados.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.SessionUC))
	protected.Post("/auth/logout", authHandler.Logout)

	anyRole := RequireRole(entity.RoleAdmin, entity.RoleEditor, entity.RoleViewer)
	canEdit := RequireRole(entity.RoleAdmin, entity.RoleEditor)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Categorías y sus productos anidados
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	productHandler := NewProductHandler(deps.ProductUC)
	categories := protected.Group("/categories")
	categories.Get("/", anyRole, categoryHandler.List)
	categories.Post("/", canEdit, categoryHandler.Create)
	categories.Put("/:key", canEdit, categoryHandler.Update)
	categories.Delete("/:key", canEdit, categoryHandler.Delete)
	categories.Get("/:category/products", anyRole, productHandler.ListByCategory)
	categories.Post("/:category/products", canEdit, productHandler.Create)
	categories.Put("/:category/products/:key", canEdit, productHandler.Update)
	categories.Delete("/:category/products/:key", canEdit, productHandler.Delete)

	// Árbol completo de productos
	protected.Get("/products", anyRole, productHandler.ListAll)

	// Destacados (direccionados por posición)
	featuredHandler := NewFeaturedHandler(deps.FeaturedUC)
	featured := protected.Group("/featured")
	featured.Get("/", anyRole, featuredHandler.List)
	featured.Post("/", canEdit, featuredHandler.Create)
	featured.Put("/:position", canEdit, featuredHandler.Update)
	featured.Delete("/:position", canEdit, featuredHandler.Delete)

	// Usuarios del panel (solo admin)
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users", adminOnly)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Pedidos (solo lectura)
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := protected.Group("/orders", anyRole)
	orders.Get("/", orderHandler.List)
	orders.Get("/summary", orderHandler.Summary)

	// Streams SSE con el snapshot vivo de cada colección
	watchHandler := NewWatchHandler(deps.Tree, deps.Log, deps.CategoryUC, deps.ProductUC, deps.FeaturedUC, deps.OrderUC)
	watch := protected.Group("/watch", anyRole)
	watch.Get("/categories", watchHandler.Categories)
	watch.Get("/products", watchHandler.Products)
	watch.Get("/featured", watchHandler.Featured)
	watch.Get("/orders", watchHandler.Orders)
}
