package router

import (
	"time"

	"appremises/internal/config"
	"appremises/internal/handler"
	"appremises/internal/middleware"
	"appremises/internal/model"
	"appremises/internal/repository"
	"appremises/internal/service"
	"appremises/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.FrontendURL))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(100, 15*time.Minute))
	r.Use(middleware.BodyLimit(10 << 20)) // 10 MB

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	duenioRepo := repository.NewDuenioRepository(db)
	remiseriaRepo := repository.NewRemiseriaRepository(db)
	coordinadorRepo := repository.NewCoordinadorRepository(db)
	choferRepo := repository.NewChoferRepository(db)
	vehiculoRepo := repository.NewVehiculoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	viajeRepo := repository.NewViajeRepository(db)
	reservaRepo := repository.NewReservaRepository(db)
	usageRepo := repository.NewAppUsageRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, duenioRepo, clienteRepo, dispatcher, cfg)
	duenioSvc := service.NewDuenioService(duenioRepo, usuarioRepo)
	remiseriaSvc := service.NewRemiseriaService(remiseriaRepo, duenioRepo)
	coordinadorSvc := service.NewCoordinadorService(coordinadorRepo, usuarioRepo, duenioRepo, remiseriaRepo, dispatcher)
	choferSvc := service.NewChoferService(choferRepo, remiseriaRepo, vehiculoRepo, duenioRepo)
	vehiculoSvc := service.NewVehiculoService(vehiculoRepo, remiseriaRepo, duenioRepo)
	clienteSvc := service.NewClienteService(clienteRepo, usuarioRepo, viajeRepo)
	tarifaSvc := service.NewTarifaService(rdb)
	viajeSvc := service.NewViajeService(viajeRepo, clienteRepo, coordinadorRepo, choferRepo, vehiculoRepo, remiseriaRepo, tarifaSvc, dispatcher)
	reservaSvc := service.NewReservaService(reservaRepo, clienteRepo, coordinadorRepo, remiseriaRepo, dispatcher)
	dashboardSvc := service.NewDashboardService(coordinadorRepo, viajeRepo, reservaRepo, vehiculoRepo, choferRepo)
	usageSvc := service.NewUsageService(usageRepo, dispatcher)
	reporteSvc := service.NewReporteService(duenioRepo, viajeRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	dueniosH := handler.NewDueniosHandler(duenioSvc, reporteSvc)
	remiseriasH := handler.NewRemiseriasHandler(remiseriaSvc)
	coordinadoresH := handler.NewCoordinadoresHandler(coordinadorSvc)
	choferesH := handler.NewChoferesHandler(choferSvc)
	vehiculosH := handler.NewVehiculosHandler(vehiculoSvc)
	clienteH := handler.NewClienteHandler(authSvc, clienteSvc, viajeSvc, reservaSvc, tarifaSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc, viajeSvc, reservaSvc)
	usageH := handler.NewUsageHandler(usageSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Liveness probe — outside /api and unauthenticated
	r.GET("/api/health", handler.Health(db, rdb))

	api := r.Group("/api")

	// Auth (public)
	auth := api.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/register", authH.Register)
		auth.POST("/refresh", authH.Refresh)
	}

	// Customer app — registration and quoting are public
	api.POST("/cliente/register", clienteH.Register)
	api.POST("/cliente/viajes/calcular-precio", clienteH.CalcularPrecio)

	jwtMW := middleware.JWTAuth(cfg.JWTSecret)

	cliente := api.Group("/cliente", jwtMW, middleware.RequireRole(model.RolCliente))
	{
		cliente.GET("/profile", clienteH.Perfil)
		cliente.PUT("/profile", clienteH.ActualizarPerfil)
		cliente.GET("/viajes", clienteH.Viajes)
		cliente.POST("/viajes/solicitar", clienteH.SolicitarViaje)
		cliente.PATCH("/viajes/:id/cancelar", clienteH.CancelarViaje)
		cliente.GET("/reservas", clienteH.Reservas)
		cliente.POST("/reservas", clienteH.CrearReserva)
		cliente.PATCH("/reservas/:id/cancelar", clienteH.CancelarReserva)
		cliente.GET("/ubicacion-actual", clienteH.UbicacionActual)
	}

	admin := middleware.RequireRole(model.RolAdmin)
	adminODuenio := middleware.RequireRole(model.RolAdmin, model.RolDuenio)

	remiserias := api.Group("/remiserias", jwtMW)
	{
		remiserias.GET("", remiseriasH.Listar)
		remiserias.GET("/:id", remiseriasH.ObtenerPorID)
		remiserias.POST("", admin, remiseriasH.Crear)
		remiserias.PUT("/:id", remiseriasH.Actualizar)
		remiserias.DELETE("/:id", admin, remiseriasH.Eliminar)
	}

	duenios := api.Group("/duenios", jwtMW)
	{
		duenios.GET("", admin, dueniosH.Listar)
		duenios.POST("", admin, dueniosH.Crear)
		duenios.GET("/reportes/viajes.pdf", middleware.RequireRole(model.RolDuenio), dueniosH.ReporteViajesPDF)
		duenios.GET("/:id", adminODuenio, dueniosH.ObtenerPorID)
		duenios.PUT("/:id", adminODuenio, dueniosH.Actualizar)
		duenios.PATCH("/:id/toggle-status", admin, dueniosH.ToggleActivo)
	}

	coordinadores := api.Group("/coordinadores", jwtMW, adminODuenio)
	{
		coordinadores.GET("", coordinadoresH.Listar)
		coordinadores.GET("/:id", coordinadoresH.ObtenerPorID)
		coordinadores.POST("", coordinadoresH.Crear)
		coordinadores.PUT("/:id", coordinadoresH.Actualizar)
		coordinadores.PATCH("/:id/toggle-status", coordinadoresH.ToggleActivo)
		coordinadores.DELETE("/:id", coordinadoresH.Baja)
	}

	choferes := api.Group("/choferes", jwtMW, adminODuenio)
	{
		choferes.GET("", choferesH.Listar)
		choferes.GET("/:id", choferesH.ObtenerPorID)
		choferes.POST("", choferesH.Crear)
		choferes.PUT("/:id", choferesH.Actualizar)
		choferes.PATCH("/:id/toggle-status", choferesH.ToggleEstado)
		choferes.DELETE("/:id", choferesH.Baja)
	}

	vehiculos := api.Group("/vehiculos", jwtMW, adminODuenio)
	{
		vehiculos.GET("", vehiculosH.Listar)
		vehiculos.GET("/:id", vehiculosH.ObtenerPorID)
		vehiculos.POST("", vehiculosH.Crear)
		vehiculos.PUT("/:id", vehiculosH.Actualizar)
		vehiculos.PATCH("/:id/status", vehiculosH.ToggleEstado)
		vehiculos.DELETE("/:id", vehiculosH.Baja)
	}

	dash := api.Group("/coordinator-dashboard", jwtMW, middleware.RequireRole(model.RolCoordinador))
	{
		dash.GET("/viajes/en-curso", dashboardH.ViajesEnCurso)
		dash.GET("/viajes/sin-asignar", dashboardH.ViajesSinAsignar)
		dash.GET("/reservas", dashboardH.ReservasActivas)
		dash.GET("/stats", dashboardH.Stats)
		dash.GET("/vehiculos/tiempo-real", dashboardH.VehiculosTiempoReal)
		dash.GET("/choferes/tiempo-real", dashboardH.ChoferesTiempoReal)
		dash.POST("/viajes", dashboardH.CrearViaje)
		dash.PATCH("/viajes/:id/asignar", dashboardH.AsignarViaje)
		dash.PATCH("/viajes/:id/completar", dashboardH.CompletarViaje)
		dash.PATCH("/viajes/:id/cancelar", dashboardH.CancelarViaje)
		dash.POST("/reservas", dashboardH.CrearReserva)
		dash.PATCH("/reservas/:id/cancelar", dashboardH.CancelarReserva)
		dash.PATCH("/reservas/:id/completar", dashboardH.CompletarReserva)
	}

	usage := api.Group("/app-usage", jwtMW)
	{
		usage.POST("/track", usageH.Track)
		usage.GET("/stats", admin, usageH.Stats)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
