package config

import (
	"os"
	"time"

	"FoodBridge-Backend/internal/api/handlers"
	"FoodBridge-Backend/internal/api/routes"
	"FoodBridge-Backend/internal/middleware"
	"FoodBridge-Backend/internal/utils"
	"FoodBridge-Backend/internal/utils/mailing"
	"FoodBridge-Backend/pkg/allocation"
	"FoodBridge-Backend/pkg/donation"
	"FoodBridge-Backend/pkg/jwt"
	"FoodBridge-Backend/pkg/ngo"
	"FoodBridge-Backend/pkg/request"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	mailer := mailing.NewMailer()

	// Repository
	requestRepository := request.NewRequestRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	ngoRepository := ngo.NewNGORepository(db)
	allocationRepository := allocation.NewAllocationRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	requestService := request.NewRequestService(requestRepository)
	donationService := donation.NewDonationService(donationRepository)
	ngoService := ngo.NewNGOService(ngoRepository, jwtService, mailer)
	allocationService := allocation.NewAllocationService(allocationRepository)

	// Handler
	requestHandler := handlers.NewRequestHandler(requestService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	ngoHandler := handlers.NewNGOHandler(ngoService, validator)
	allocationHandler := handlers.NewAllocationHandler(allocationService, validator)
	adminHandler := handlers.NewAdminHandler(ngoService)

	// routes
	routesConfig := routes.Config{
		App:               app,
		RequestHandler:    requestHandler,
		DonationHandler:   donationHandler,
		NGOHandler:        ngoHandler,
		AllocationHandler: allocationHandler,
		AdminHandler:      adminHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
