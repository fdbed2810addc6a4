package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pauloferraz/braseiro-api/config"
	"github.com/pauloferraz/braseiro-api/controllers"
	"github.com/pauloferraz/braseiro-api/services"
	"github.com/pauloferraz/braseiro-api/storage"
)

func main() {
	log.Println("Starting Braseiro back-office API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := setupStorage(cfg); err != nil {
		log.Fatalf("Failed to set up storage: %v", err)
	}

	if cfg.AWSS3Bucket != "" {
		s3Service, err := services.InitS3Service()
		if err != nil {
			log.Fatalf("Failed to initialize S3 service: %v", err)
		}
		services.InitImageService(s3Service)
		log.Printf("Image uploads enabled (bucket %s)", cfg.AWSS3Bucket)
	} else {
		log.Println("AWS_S3_BUCKET not set, image uploads disabled")
	}

	router := setupRouter(cfg)

	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupStorage selects and initializes the entity store backend
func setupStorage(cfg *config.Config) error {
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		if err := config.ConnectDatabase(cfg.DatabaseURL); err != nil {
			return err
		}
		store := storage.NewGormStore(config.GetDB())
		if err := store.Migrate(); err != nil {
			return err
		}
		log.Println("Database migration completed successfully")
		storage.Init(store)
	case config.BackendMemory:
		store := storage.NewMemoryStore()
		if err := storage.Seed(store); err != nil {
			return err
		}
		log.Println("Using in-memory storage with sample data")
		storage.Init(store)
	}
	return nil
}

// setupRouter builds the Gin engine with all routes registered
func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if cfg.CORSAllowOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORSAllowOrigins, ",")
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/database/status", databaseStatus)

		v1.GET("/dashboard/stats", controllers.GetDashboardStats)

		v1.GET("/menu", controllers.ListMenuItems)
		v1.GET("/menu/:id", controllers.GetMenuItem)
		v1.POST("/menu", controllers.CreateMenuItem)
		v1.PUT("/menu/:id", controllers.UpdateMenuItem)
		v1.DELETE("/menu/:id", controllers.DeleteMenuItem)
		v1.POST("/menu/:id/image", controllers.UploadMenuItemImage)

		v1.GET("/tables", controllers.ListTables)
		v1.GET("/tables/:id", controllers.GetTable)
		v1.POST("/tables", controllers.CreateTable)
		v1.PUT("/tables/:id", controllers.UpdateTable)
		v1.DELETE("/tables/:id", controllers.DeleteTable)

		v1.GET("/orders", controllers.ListOrders)
		v1.GET("/orders/:id", controllers.GetOrder)
		v1.POST("/orders", controllers.CreateOrder)
		v1.PUT("/orders/:id", controllers.UpdateOrder)
		v1.DELETE("/orders/:id", controllers.DeleteOrder)

		v1.GET("/inventory", controllers.ListInventory)
		v1.GET("/inventory/low-stock", controllers.ListLowStock)
		v1.GET("/inventory/:id", controllers.GetInventoryItem)
		v1.POST("/inventory", controllers.CreateInventoryItem)
		v1.PUT("/inventory/:id", controllers.UpdateInventoryItem)
		v1.DELETE("/inventory/:id", controllers.DeleteInventoryItem)

		v1.GET("/staff", controllers.ListStaff)
		v1.POST("/staff", controllers.CreateStaffMember)
		v1.PUT("/staff/:id", controllers.UpdateStaffMember)
		v1.DELETE("/staff/:id", controllers.DeleteStaffMember)

		v1.GET("/customers", controllers.ListCustomers)
		v1.POST("/customers", controllers.CreateCustomer)
		v1.PUT("/customers/:id", controllers.UpdateCustomer)
		v1.DELETE("/customers/:id", controllers.DeleteCustomer)

		v1.GET("/sales", controllers.ListSales)
		v1.POST("/sales", controllers.CreateSale)
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Braseiro back-office API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(c *gin.Context) {
	db := config.GetDB()
	if db == nil {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Running on in-memory storage, no database configured",
		})
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	var tables []string
	if err := db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public'").Scan(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
