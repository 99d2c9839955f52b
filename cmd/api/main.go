package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"workshophub/internal/config"
	"workshophub/internal/database"
	"workshophub/internal/middleware"
	"workshophub/internal/modules/auth"
	"workshophub/internal/modules/booking"
	"workshophub/internal/modules/stats"
	"workshophub/internal/modules/workshop"
	jwtsvc "workshophub/internal/pkg/jwt"
	"workshophub/internal/repository"
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

	customerRepo := repository.NewCustomerRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	workshopRepo := repository.NewWorkshopRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(customerRepo, adminRepo, j)
	authHandler := auth.NewHandler(authService)

	workshopService := workshop.NewService(workshopRepo)
	workshopHandler := workshop.NewHandler(workshopService)

	bookingService := booking.NewService(bookingRepo)
	bookingHandler := booking.NewHandler(bookingService)

	statsService := stats.NewService(statsRepo)
	statsHandler := stats.NewHandler(statsService)

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterRoutes(api)
		workshopHandler.RegisterRoutes(api)
		bookingHandler.RegisterRoutes(api)

		// admin-only
		admin := api.Group("/", middleware.RequireAuth(j), middleware.AdminOnly())
		{
			workshopHandler.RegisterAdminRoutes(admin)
			statsHandler.RegisterRoutes(admin)
		}

		// authenticated customers
		customers := api.Group("/", middleware.RequireAuth(j), middleware.CustomerOnly())
		{
			bookingHandler.RegisterCustomerRoutes(customers)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
