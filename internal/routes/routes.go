package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/essentia-tours/internal/audit"
	"github.com/BruksfildServices01/essentia-tours/internal/auth"
	"github.com/BruksfildServices01/essentia-tours/internal/config"
	"github.com/BruksfildServices01/essentia-tours/internal/handlers"
	"github.com/BruksfildServices01/essentia-tours/internal/infra/storage"
	infraRepo "github.com/BruksfildServices01/essentia-tours/internal/infra/repository"
	"github.com/BruksfildServices01/essentia-tours/internal/middleware"
	"github.com/BruksfildServices01/essentia-tours/internal/models"
	"github.com/BruksfildServices01/essentia-tours/internal/realtime"
	ucBooking "github.com/BruksfildServices01/essentia-tours/internal/usecase/booking"
	ucCheckout "github.com/BruksfildServices01/essentia-tours/internal/usecase/checkout"
	ucCustomer "github.com/BruksfildServices01/essentia-tours/internal/usecase/customer"
	ucDashboard "github.com/BruksfildServices01/essentia-tours/internal/usecase/dashboard"
	ucGuia "github.com/BruksfildServices01/essentia-tours/internal/usecase/guia"
	ucKanban "github.com/BruksfildServices01/essentia-tours/internal/usecase/kanban"
	ucLead "github.com/BruksfildServices01/essentia-tours/internal/usecase/lead"
	ucUser "github.com/BruksfildServices01/essentia-tours/internal/usecase/user"
)

// Deps are the process-wide singletons built in main.
type Deps struct {
	Config  *config.Config
	DB      *gorm.DB
	Pool    *pgxpool.Pool
	Cache   ucDashboard.Cache
	Store   storage.Store
	Gateway ucCheckout.PixGateway
	Hub     *realtime.Hub
}

// RegisterRoutes wires every use case and route. The returned dispatcher
// must be closed on shutdown so queued audit events are flushed.
func RegisterRoutes(r *gin.Engine, d Deps) *audit.Dispatcher {
	cfg := d.Config
	tz := cfg.Server.Timezone
	commission := cfg.Business.DefaultCommissionPercent

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.Metrics())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	jwtManager := auth.NewJWTManager(cfg)

	agendamentoRepo := infraRepo.NewAgendamentoGormRepository(d.DB)
	leadRepo := infraRepo.NewLeadGormRepository(d.DB)
	columnRepo := infraRepo.NewKanbanColumnGormRepository(d.DB)
	customerRepo := infraRepo.NewCustomerGormRepository(d.DB)
	guiaRepo := infraRepo.NewGuiaGormRepository(d.DB)
	userRepo := infraRepo.NewUserGormRepository(d.DB)
	passeioRepo := infraRepo.NewPasseioGormRepository(d.DB)
	txRunner := infraRepo.NewGormTxRunner(d.DB)

	boardReader := infraRepo.NewBoardPgxReader(d.Pool)
	dashboardReader := infraRepo.NewDashboardPgxReader(d.Pool)

	statsUC := ucDashboard.NewGetStats(dashboardReader, d.Cache, tz)

	auditDispatcher := audit.NewDispatcher(
		audit.New(d.DB),
		d.Hub,
		statsUC.Invalidator(),
	)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	ensureClienteUC := ucCustomer.NewEnsureCliente(customerRepo, txRunner, auditDispatcher)

	createAgendamentoUC := ucBooking.NewCreateAgendamento(agendamentoRepo, columnRepo, auditDispatcher, commission)
	updateAgendamentoUC := ucBooking.NewUpdateAgendamento(agendamentoRepo, columnRepo, auditDispatcher)
	deleteAgendamentoUC := ucBooking.NewDeleteAgendamento(agendamentoRepo, auditDispatcher)
	listAgendamentosUC := ucBooking.NewListAgendamentos(agendamentoRepo)

	createLeadUC := ucLead.NewCreateLead(leadRepo, auditDispatcher)
	listLeadsUC := ucLead.NewListLeads(leadRepo)
	convertLeadUC := ucLead.NewConvertLead(
		leadRepo,
		agendamentoRepo,
		ensureClienteUC,
		txRunner,
		auditDispatcher,
		commission,
		tz,
	)

	boardUC := ucKanban.NewGetBoard(boardReader)
	updateStatusUC := ucKanban.NewUpdateItemStatus(leadRepo, agendamentoRepo, columnRepo, auditDispatcher)
	saveColumnUC := ucKanban.NewSaveColumn(columnRepo, auditDispatcher)
	deleteColumnUC := ucKanban.NewDeleteColumn(columnRepo, agendamentoRepo, auditDispatcher)

	guiaDashboardUC := ucDashboard.NewGetGuiaDashboard(guiaRepo, agendamentoRepo, commission, tz)

	registerUC := ucUser.NewRegister(userRepo, jwtManager, auditDispatcher)
	loginUC := ucUser.NewLogin(userRepo, jwtManager)
	meUC := ucUser.NewMe(userRepo)
	usersUC := ucUser.NewUsers(userRepo, auditDispatcher)

	guiasUC := ucGuia.NewGuias(guiaRepo, userRepo, auditDispatcher)

	createReservaUC := ucCheckout.NewCreateReserva(
		agendamentoRepo,
		ensureClienteUC,
		customerRepo,
		txRunner,
		d.Gateway,
		auditDispatcher,
		commission,
		cfg.Payments.PixDiscountPercent,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, meUC, usersUC)
	userHandler := handlers.NewUserHandler(usersUC)

	agendamentoHandler := handlers.NewAgendamentoHandler(
		createAgendamentoUC,
		updateAgendamentoUC,
		deleteAgendamentoUC,
		listAgendamentosUC,
		updateStatusUC,
		agendamentoRepo,
	)
	leadHandler := handlers.NewLeadHandler(createLeadUC, listLeadsUC, convertLeadUC)
	boardHandler := handlers.NewBoardHandler(boardUC, updateStatusUC, saveColumnUC, deleteColumnUC, d.Hub)

	passeioHandler := handlers.NewPasseioHandler(passeioRepo, auditDispatcher)
	dashboardHandler := handlers.NewDashboardHandler(statsUC)
	guiaHandler := handlers.NewGuiaHandler(guiasUC, guiaDashboardUC)

	clienteHandler := handlers.NewClienteHandler(
		ucCustomer.NewListClientes(customerRepo),
		ensureClienteUC,
		ucCustomer.NewPerfil(customerRepo),
		ucCustomer.NewListReservas(agendamentoRepo),
		agendamentoRepo,
		tz,
	)
	reservaHandler := handlers.NewReservaHandler(createReservaUC, listAgendamentosUC)
	uploadHandler := handlers.NewUploadHandler(d.Store)

	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)
	healthHandler := handlers.NewHealthHandler(d.DB, d.Hub)

	// ======================================================
	// 🩺 OPERAÇÃO
	// ======================================================
	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if !cfg.StorageEnabled() {
		r.Static("/uploads", cfg.Storage.UploadDir)
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/me", middleware.OptionalAuth(jwtManager), authHandler.Me)

		api.GET("/passeios", passeioHandler.List)
		api.GET("/passeios/:id", passeioHandler.Get)

		api.POST("/leads", leadHandler.Create)
		api.POST("/reservas", reservaHandler.Create)
		api.POST("/clientes/precheck", clienteHandler.Precheck)

		// ------------------------------
		// 🔐 API AUTENTICADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(jwtManager))
		{
			cliente := secured.Group("/cliente")
			{
				cliente.GET("/perfil", clienteHandler.GetPerfil)
				cliente.PUT("/perfil", clienteHandler.UpdatePerfil)
				cliente.GET("/reservas", clienteHandler.Reservas)
				cliente.GET("/recibo/:id", clienteHandler.Recibo)
			}

			secured.GET(
				"/guia/dashboard",
				middleware.RequireRole(models.RoleAdmin, models.RoleGuia),
				guiaHandler.Dashboard,
			)

			// ------------------------------
			// 🛠️ ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.POST("/auth/update-user-type", authHandler.UpdateUserType)

				admin.GET("/users", userHandler.List)
				admin.POST("/users", userHandler.Create)
				admin.PUT("/users", userHandler.Update)
				admin.DELETE("/users", userHandler.Delete)

				admin.POST("/passeios", passeioHandler.Create)
				admin.PUT("/passeios/:id", passeioHandler.Update)
				admin.DELETE("/passeios/:id", passeioHandler.Delete)

				admin.GET("/agendamentos", agendamentoHandler.List)
				admin.POST("/agendamentos", agendamentoHandler.Create)
				admin.GET("/agendamentos/:id", agendamentoHandler.Get)
				admin.PUT("/agendamentos/:id", agendamentoHandler.Update)
				admin.DELETE("/agendamentos/:id", agendamentoHandler.Delete)
				admin.PATCH("/agendamentos/:id/status", agendamentoHandler.UpdateStatus)

				admin.GET("/leads", leadHandler.List)
				admin.POST("/leads/:id/convert", leadHandler.Convert)

				admin.GET("/reservas", reservaHandler.List)
				admin.GET("/clientes", clienteHandler.List)

				admin.GET("/guias", guiaHandler.List)
				admin.POST("/guias", guiaHandler.Create)
				admin.PUT("/guias/:id", guiaHandler.Update)

				admin.GET("/dashboard", dashboardHandler.Stats)
				admin.POST("/upload", uploadHandler.Upload)

				admin.GET("/admin/board", boardHandler.Board)
				admin.PUT("/admin/board/status", boardHandler.Move)
				admin.POST("/admin/board/columns", boardHandler.SaveColumn)
				admin.DELETE("/admin/board/columns/:id", boardHandler.DeleteColumn)
				admin.GET("/admin/board/ws", boardHandler.Live)

				admin.GET("/admin/audit-logs", auditLogsHandler.List)
			}
		}
	}

	return auditDispatcher
}
