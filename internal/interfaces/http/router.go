package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/mall-office/internal/application/analytics"
	"github.com/tu-usuario/mall-office/internal/application/auth"
	"github.com/tu-usuario/mall-office/internal/application/payments"
	"github.com/tu-usuario/mall-office/internal/application/usecase"
	"github.com/tu-usuario/mall-office/internal/domain/access"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	MallUC      *usecase.MallUseCase
	StoreUC     *usecase.StoreUseCase
	ClientUC    *usecase.ClientUseCase
	PaymentUC   *payments.PaymentUseCase
	DashboardUC *analytics.CollectedRentsUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
//
// Cada ruta protegida lleva el gate de operación de su entidad: las
// mutaciones son de admin (salvo crear pagos, que admite arrendatarios)
// y las lecturas requieren sesión. El filtro de fila se aplica dentro de
// cada handler.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (protegido; mutaciones solo admin)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", RequireOperation(access.EntityUser, access.OpCreate), userHandler.Create)
	users.Get("/", RequireOperation(access.EntityUser, access.OpQuery), userHandler.List)
	users.Get("/:id", RequireOperation(access.EntityUser, access.OpQuery), userHandler.GetByID)
	users.Put("/:id", RequireOperation(access.EntityUser, access.OpUpdate), userHandler.Update)
	users.Delete("/:id", RequireOperation(access.EntityUser, access.OpDelete), userHandler.Delete)

	// Malls (protegido)
	malls := protected.Group("/malls")
	mallHandler := NewMallHandler(deps.MallUC)
	malls.Post("/", RequireOperation(access.EntityMall, access.OpCreate), mallHandler.Create)
	malls.Get("/", RequireOperation(access.EntityMall, access.OpQuery), mallHandler.List)
	malls.Get("/:id", RequireOperation(access.EntityMall, access.OpQuery), mallHandler.GetByID)
	malls.Put("/:id", RequireOperation(access.EntityMall, access.OpUpdate), mallHandler.Update)
	malls.Delete("/:id", RequireOperation(access.EntityMall, access.OpDelete), mallHandler.Delete)

	// Stores (protegido)
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Post("/", RequireOperation(access.EntityStore, access.OpCreate), storeHandler.Create)
	stores.Get("/", RequireOperation(access.EntityStore, access.OpQuery), storeHandler.List)
	stores.Get("/:id", RequireOperation(access.EntityStore, access.OpQuery), storeHandler.GetByID)
	stores.Put("/:id", RequireOperation(access.EntityStore, access.OpUpdate), storeHandler.Update)
	stores.Delete("/:id", RequireOperation(access.EntityStore, access.OpDelete), storeHandler.Delete)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", RequireOperation(access.EntityClient, access.OpCreate), clientHandler.Create)
	clients.Get("/", RequireOperation(access.EntityClient, access.OpQuery), clientHandler.List)
	clients.Get("/:id", RequireOperation(access.EntityClient, access.OpQuery), clientHandler.GetByID)
	clients.Put("/:id", RequireOperation(access.EntityClient, access.OpUpdate), clientHandler.Update)
	clients.Delete("/:id", RequireOperation(access.EntityClient, access.OpDelete), clientHandler.Delete)

	// Payments (protegido; create admite arrendatarios con chequeo de propiedad)
	paymentsGroup := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	paymentsGroup.Post("/", RequireOperation(access.EntityPayment, access.OpCreate), paymentHandler.Create)
	paymentsGroup.Get("/", RequireOperation(access.EntityPayment, access.OpQuery), paymentHandler.List)
	paymentsGroup.Get("/:id", RequireOperation(access.EntityPayment, access.OpQuery), paymentHandler.GetByID)
	paymentsGroup.Get("/:id/receipt", RequireOperation(access.EntityPayment, access.OpQuery), paymentHandler.Receipt)
	paymentsGroup.Put("/:id", RequireOperation(access.EntityPayment, access.OpUpdate), paymentHandler.Update)
	paymentsGroup.Delete("/:id", RequireOperation(access.EntityPayment, access.OpDelete), paymentHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/collected-rents", RequireOperation(access.EntityPayment, access.OpQuery), dashboardHandler.GetCollectedRents)
}
