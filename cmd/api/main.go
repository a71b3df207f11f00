package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"officespace/internal/config"
	"officespace/internal/database"
	"officespace/internal/middleware"
	"officespace/internal/modules/booking"
	"officespace/internal/modules/calendar"
	"officespace/internal/modules/catalog"
	"officespace/internal/modules/request"
	"officespace/internal/repository"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}

	resourceRepo := repository.NewResourceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	requestRepo := repository.NewRequestRepository(db)

	catalogService := catalog.NewService(resourceRepo, bookingRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, resourceRepo)
	bookingHandler := booking.NewHandler(bookingService)

	requestService := request.NewService(requestRepo, bookingService)
	requestHandler := request.NewHandler(requestService)

	calendarService := calendar.NewService(bookingRepo, requestRepo, resourceRepo)
	calendarHandler := calendar.NewHandler(calendarService, cfg.PollInterval)

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	v1 := r.Group("/api/v1")
	{
		// public: catalog reads and the intake form
		catalogHandler.RegisterPublicRoutes(v1)
		requestHandler.RegisterPublicRoutes(v1)

		// staff back office
		staff := v1.Group("/")
		staff.Use(middleware.StaffTokenAuth(cfg.StaffToken))
		{
			catalogHandler.RegisterStaffRoutes(staff)
			bookingHandler.RegisterRoutes(staff)
			requestHandler.RegisterStaffRoutes(staff)
			calendarHandler.RegisterRoutes(staff)
		}
	}

	logrus.WithField("port", cfg.Port).Info("starting api server")
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
