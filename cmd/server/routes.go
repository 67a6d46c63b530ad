package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"atelier-system/config"
	"atelier-system/internal/database"
	"atelier-system/internal/server/handlers"
	"atelier-system/internal/server/middleware"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.DB.DSN == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.NewConnection(cfg.DB.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORS.Origin))

	registerRoutes(r, db)

	addr := ":" + cfg.Server.Port
	log.Printf("Starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func registerRoutes(r *gin.Engine, db *gorm.DB) {
	orderTypeHandler := handlers.NewOrderTypeHandler(db)
	orderHandler := handlers.NewOrderHandler(db)
	invoiceHandler := handlers.NewInvoiceHandler(db)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server is running!")
	})
	r.GET("/health", healthCheckHandler)

	orderTypes := r.Group("/order-types")
	{
		orderTypes.GET("", orderTypeHandler.List)
		orderTypes.POST("", orderTypeHandler.Create)
		orderTypes.DELETE("/:name", orderTypeHandler.Delete)
	}

	orders := r.Group("/orders")
	{
		orders.POST("", orderHandler.Create)
		orders.GET("", orderHandler.List)
		orders.PATCH("/:id", orderHandler.UpdatePaymentStatus)
	}

	r.GET("/invoices/:order_id", invoiceHandler.GetByOrderID)
}

func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now(),
	})
}
