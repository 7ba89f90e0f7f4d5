package routes

import (
	"FoodBridge-Backend/internal/api/handlers"
	"FoodBridge-Backend/internal/middleware"
	"FoodBridge-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	RequestHandler    handlers.RequestHandler
	DonationHandler   handlers.DonationHandler
	NGOHandler        handlers.NGOHandler
	AllocationHandler handlers.AllocationHandler
	AdminHandler      handlers.AdminHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.PublicRoutes()
	c.NGORoutes()
	c.AdminRoutes()
	c.GuestRoute()
}

// Public submission and listing routes. Paths follow the original
// frontend contract, so the request form posts to the root path.
func (c *Config) PublicRoutes() {
	c.App.Post("/", c.RequestHandler.SubmitRequest)
	c.App.Get("/request", c.RequestHandler.GetRequests)

	c.App.Post("/donate", c.DonationHandler.SubmitDonation)
	c.App.Get("/donations", c.DonationHandler.GetDonations)

	c.App.Post("/ngo/signup", c.NGOHandler.Signup)
	c.App.Post("/ngo/login", c.NGOHandler.Login)
}

func (c *Config) NGORoutes() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	c.App.Get("/ngo/me", auth, c.NGOHandler.Me)

	c.App.Post("/allocations", auth, c.AllocationHandler.Allocate)
	c.App.Get("/allocations", auth, c.AllocationHandler.GetNGOAllocations)

	// Administrative correction paths; allocation itself goes through
	// POST /allocations.
	c.App.Patch("/request/:id", auth, c.RequestHandler.UpdateRequestStatus)
	c.App.Patch("/donations/:id", auth, c.DonationHandler.UpdateDonationQuantity)
}

func (c *Config) AdminRoutes() {
	admin := c.App.Group("/admin", c.Middleware.AdminMiddleware())
	admin.Get("/pending-ngos", c.AdminHandler.GetPendingNGOs)
	admin.Patch("/verify-ngo/:id", c.AdminHandler.VerifyNGO)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
