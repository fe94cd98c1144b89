package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	appconfig "github.com/aniketgore/Influencer_Payment_Backend.git/config"
	"github.com/aniketgore/Influencer_Payment_Backend.git/database"
	"github.com/aniketgore/Influencer_Payment_Backend.git/handlers"
	"github.com/aniketgore/Influencer_Payment_Backend.git/middlewares"
	"github.com/aniketgore/Influencer_Payment_Backend.git/services"
	"github.com/aniketgore/Influencer_Payment_Backend.git/store/mongostore"
)

// @title Influencer Payment Coordination API
// @version 1.0
// @description Connects brands, influencers, and clients: influencers submit
// payment requests, clients confirm them with a proof screenshot, admins see
// the aggregate state.
// @BasePath /api/v1
func main() {
	// Load .env file first.
	// It's safe to ignore the error if the file is optional (e.g., in production using real env vars)
	err := godotenv.Load()
	if err != nil {
		log.Printf("Info: No .env file found or error loading it: %v. Relying on system environment variables.", err)
	}

	cfg := appconfig.Load()
	logger := appconfig.GetLogger()

	// Connect to Database (MongoDB implementation in database package)
	database.Connect()
	stores := mongostore.NewStores(database.GetDB())

	uploader := services.NewGCSUploader()
	notifier := services.NewWebhookNotifier(logger, cfg.WebhookDelivery, stores.Outbox)
	if cfg.WebhookDelivery == appconfig.DeliveryOutbox {
		worker := services.NewOutboxWorker(stores.Outbox, notifier, logger)
		go worker.Run(context.Background())
	}

	workflow := services.NewWorkflow(stores, uploader, notifier, cfg, logger)
	handler := handlers.New(workflow, stores, logger)

	// Initialize Gin Router
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- CORS Middleware ---
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With", "X-Admin-Token"}
	corsConfig.AllowCredentials = true

	router.Use(cors.New(corsConfig))

	// --- API Routes ---
	api := router.Group("/api/v1")
	{
		// Directory lookups the forms cascade through
		api.GET("/brands", handler.ListBrands)
		api.GET("/brands/:brandName/influencers", handler.ListInfluencers)
		api.GET("/influencers/:handle/pending-payments", handler.ListPendingPayments)

		// Two-phase payment workflow
		api.POST("/submissions", handler.SubmitInfluencer)
		api.POST("/confirmations", handler.ConfirmPayment)

		// Read-only dashboard, token-gated
		admin := api.Group("/admin", middlewares.AdminRequired(cfg.AdminAPIToken))
		{
			admin.GET("/submissions", handler.AdminListSubmissions)
			admin.GET("/confirmations", handler.AdminListConfirmations)
		}
	}

	// --- Health Check Endpoint ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	log.Printf("Server starting and listening on http://localhost:%s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
