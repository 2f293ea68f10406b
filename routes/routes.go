package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"clinicpro-backend/config"
	"clinicpro-backend/controllers"
	"clinicpro-backend/store"
	"clinicpro-backend/utils"
)

// SetupRouter wires the API. The permission matrix lives here, in front of
// the repositories, never inside them: edit and delete of clients, services
// and invoices are admin-only, as is deleting an appointment; editing an
// appointment is open to any authenticated account.
func SetupRouter(cfg config.Config, db *store.DB) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	authController, err := controllers.NewAuthController(cfg)
	if err != nil {
		return nil, err
	}
	appointmentController := controllers.NewAppointmentController(db)
	clientController := controllers.NewClientController(db)
	serviceController := controllers.NewServiceController(db)
	invoiceController := controllers.NewInvoiceController(db)
	dashboardController := controllers.NewDashboardController(db)
	backupController := controllers.NewBackupController(db)

	auth := r.Group("/auth")
	{
		auth.POST("/login", authController.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", authController.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		admin := utils.RequireAdmin()

		appointments := api.Group("/appointments")
		{
			appointments.POST("", appointmentController.CreateAppointment)
			appointments.GET("", appointmentController.GetAppointments)
			appointments.GET("/:id", appointmentController.GetAppointment)
			appointments.PUT("/:id", appointmentController.UpdateAppointment)
			appointments.DELETE("/:id", admin, appointmentController.DeleteAppointment)
		}

		clients := api.Group("/clients")
		{
			clients.POST("", clientController.CreateClient)
			clients.GET("", clientController.GetClients)
			clients.GET("/:id", clientController.GetClient)
			clients.PUT("/:id", admin, clientController.UpdateClient)
			clients.DELETE("/:id", admin, clientController.DeleteClient)
		}

		services := api.Group("/services")
		{
			services.POST("", serviceController.CreateService)
			services.GET("", serviceController.GetServices)
			services.GET("/:id", serviceController.GetService)
			services.PUT("/:id", admin, serviceController.UpdateService)
			services.DELETE("/:id", admin, serviceController.DeleteService)
		}

		invoices := api.Group("/invoices")
		{
			invoices.POST("", invoiceController.CreateInvoice)
			invoices.POST("/quote", invoiceController.Quote)
			invoices.GET("", invoiceController.GetInvoices)
			invoices.GET("/:id", invoiceController.GetInvoice)
			invoices.PUT("/:id", admin, invoiceController.UpdateInvoice)
			invoices.DELETE("/:id", admin, invoiceController.DeleteInvoice)
		}

		api.GET("/dashboard", dashboardController.GetDashboardOverview)

		api.GET("/backup", admin, backupController.CreateBackup)
		api.POST("/backup/restore", admin, backupController.RestoreBackup)
	}

	return r, nil
}
