package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"petshop/internal/config"
	"petshop/internal/database"
	"petshop/internal/middleware"
	"petshop/internal/modules/booking"
	"petshop/internal/modules/catalog"
	"petshop/internal/modules/customer"
	"petshop/internal/modules/payment"
	"petshop/internal/modules/pet"
	"petshop/internal/modules/tenant"
	"petshop/internal/pkg/clock"
	jwtsvc "petshop/internal/pkg/jwt"
	"petshop/internal/pkg/mercadopago"
	"petshop/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	tenantRepo := repository.NewTenantRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	petRepo := repository.NewPetRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	refundRepo := repository.NewRefundRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	clk := clock.NewSystem()
	gateway := mercadopago.New(cfg.MPAccessToken, mercadopago.WithBaseURL(cfg.MPBaseURL))

	tenantService := tenant.NewService(tenantRepo)
	tenantHandler := tenant.NewHandler(tenantService)

	customerService := customer.NewService(customerRepo)
	customerHandler := customer.NewHandler(customerService)

	petService := pet.NewService(petRepo, customerRepo)
	petHandler := pet.NewHandler(petService)

	catalogService := catalog.NewService(serviceRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(appointmentRepo, petRepo, serviceRepo, paymentRepo, refundRepo, clk)
	bookingHandler := booking.NewHandler(bookingService)

	paymentService := payment.NewService(appointmentRepo, paymentRepo, gateway, log.Printf)
	paymentHandler := payment.NewHandler(paymentService)

	r := gin.Default()
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	// gateway callbacks arrive without tenant routing or credentials
	api := r.Group("/api")
	paymentHandler.RegisterWebhook(api)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		// platform administration, not tenant-scoped
		admin := v1.Group("/")
		admin.Use(middleware.Auth(j), middleware.RequireRole("admin"))
		tenantHandler.RegisterAdminRoutes(admin)

		// everything else runs inside a resolved tenant
		scoped := v1.Group("/")
		scoped.Use(middleware.Tenant(tenantRepo))
		tenantHandler.RegisterInfoRoutes(scoped)

		protected := scoped.Group("/")
		protected.Use(middleware.Auth(j))
		{
			customerHandler.RegisterRoutes(protected)
			petHandler.RegisterRoutes(protected)
			catalogHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
