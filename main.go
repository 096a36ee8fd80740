package main

import (
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"supplierhub/internal/config"
	"supplierhub/internal/handlers"
	"supplierhub/internal/middleware"
	"supplierhub/internal/models"
	"supplierhub/internal/repositories"
	"supplierhub/internal/services"
	"supplierhub/pkg/events"
)

func main() {
	cfg := config.Load()

	// --- Database ---
	// TranslateError lets the repositories detect unique-index violations
	// (duplicate supplier email, SKU, slug) as gorm.ErrDuplicatedKey.
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Supplier{}, &models.Product{}, &models.Category{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ client ---
	// The directory stays functional without a broker; event publication
	// is simply skipped then.
	var mqClient *events.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = events.NewClient(events.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Printf("Warning: failed to initialize RabbitMQ client, continuing without events: %v", err)
			mqClient = nil
		} else {
			defer mqClient.Close()
		}
	}

	// --- Repositories ---
	supplierRepo := repositories.NewGORMSupplierRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)

	// --- Services ---
	var publisher events.Publisher
	if mqClient != nil {
		publisher = mqClient
	}
	supplierService := services.NewSupplierService(supplierRepo, publisher)
	productService := services.NewProductService(productRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	adminService := services.NewAdminService(cfg.AdminEmail, cfg.AdminPassword, cfg.AdminToken)

	// --- Handlers ---
	supplierHandler := handlers.NewSupplierHandler(supplierService)
	directoryHandler := handlers.NewDirectoryHandler(supplierService)
	productHandler := handlers.NewProductHandler(productService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())

	apiV1 := app.Group("/api/v1")

	supplierHandler.RegisterRoutes(apiV1)
	directoryHandler.RegisterRoutes(apiV1)
	productHandler.RegisterRoutes(apiV1)
	categoryHandler.RegisterRoutes(apiV1)
	adminHandler.RegisterRoutes(apiV1)

	adminRoutes := apiV1.Group("/admin", middleware.AdminRequired(adminService))
	productHandler.RegisterAdminRoutes(adminRoutes)
	categoryHandler.RegisterAdminRoutes(adminRoutes)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Supplier event consumer ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for supplier events...")
			messageHandler := func(msg amqp.Delivery) error {
				var event events.SupplierEvent
				if err := json.Unmarshal(msg.Body, &event); err != nil {
					log.Printf("Discarding malformed supplier event (tag %d): %v", msg.DeliveryTag, err)
					return nil
				}
				log.Printf("Received supplier event %s for %s (%s)", event.Type, event.SupplierID, event.CompanyName)
				return nil
			}
			if consumerErr := mqClient.ConsumeSupplierEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
