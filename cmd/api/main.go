package main

import (
	"context"
	"log"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/priyansh-ag/jobbot-backend/internal/analytics"
	"github.com/priyansh-ag/jobbot-backend/internal/auth"
	"github.com/priyansh-ag/jobbot-backend/internal/database"
	"github.com/priyansh-ag/jobbot-backend/internal/handlers"
	"github.com/priyansh-ag/jobbot-backend/internal/linkedin"
	"github.com/priyansh-ag/jobbot-backend/internal/scheduler"
	"github.com/priyansh-ag/jobbot-backend/internal/services"
)

var yearMonthRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

func main() {
	// 1. Load Environment Variables
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, relying on environment")
	}

	// 2. Database Connection
	db := database.Connect()

	// 3. Initialize Core Services (Dependencies)
	userService := services.NewUserService(db)
	campaignService := services.NewCampaignService(db)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)
	aiService := services.NewAIService(db)
	analyticsService := analytics.NewService(applicationService, campaignService)

	quota := linkedin.NewDailyQuota(envInt("LINKEDIN_DAILY_LIMIT", linkedin.DefaultDailyLimit))
	linkedinClient := linkedin.NewClient(quota)

	// 4. Background expiry: monitoring jobs past their window flip to
	// expired on a fixed tick.
	sched := scheduler.New(1)
	sched.AddTask("expire-jobs", expireInterval(), func(ctx context.Context) error {
		_, err := jobService.ExpireOldJobs()
		return err
	})
	sched.Start()
	defer sched.Stop()

	// 5. Initialize Handlers
	userHandler := handlers.NewUserHandler(userService)
	campaignHandler := handlers.NewCampaignHandler(campaignService)
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	aiHandler := handlers.NewAIHandler(aiService, userService, jobService)
	linkedinHandler := handlers.NewLinkedInHandler(linkedinClient, jobService)

	// 6. Setup Router & CORS
	registerValidations()
	r := gin.Default()
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // For development only
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	// 7. Define Routes
	api := r.Group("/api/v1")
	if os.Getenv("AUTH_REQUIRED") == "true" {
		if os.Getenv("JWT_KEY") == "" {
			log.Fatal("AUTH_REQUIRED is set but JWT_KEY is missing")
		}
		api.Use(auth.RequireAuth())
	}
	{
		api.GET("/health", handlers.HealthCheck)

		// User Routes
		api.POST("/users", userHandler.CreateProfile)
		api.GET("/users", userHandler.ListProfiles)
		api.GET("/users/:user_id", userHandler.GetProfile)
		api.PUT("/users/:user_id", userHandler.UpdateProfile)
		api.DELETE("/users/:user_id", userHandler.DeleteProfile)

		// Campaign Routes
		api.POST("/campaigns", campaignHandler.CreateCampaign)
		api.GET("/campaigns", campaignHandler.ActiveCampaigns)
		api.GET("/campaigns/:campaign_id", campaignHandler.GetCampaign)
		api.PUT("/campaigns/:campaign_id", campaignHandler.UpdateCampaign)
		api.DELETE("/campaigns/:campaign_id", campaignHandler.DeleteCampaign)
		api.PUT("/campaigns/:campaign_id/stats", campaignHandler.UpdateStats)
		api.GET("/users/:user_id/campaigns", campaignHandler.CampaignsByUser)

		// Job Routes
		api.POST("/jobs", jobHandler.CreateJob)
		api.GET("/jobs", jobHandler.ActiveJobs)
		api.POST("/jobs/expire", jobHandler.ExpireJobs)
		api.GET("/jobs/:job_id", jobHandler.GetJob)
		api.PUT("/jobs/:job_id", jobHandler.UpdateJob)
		api.POST("/jobs/:job_id/apply", jobHandler.MarkApplied)
		api.GET("/campaigns/:campaign_id/jobs", jobHandler.JobsByCampaign)
		api.GET("/jobs/:job_id/application", applicationHandler.ApplicationByJob)

		// Application Routes
		api.POST("/applications", applicationHandler.CreateApplication)
		api.GET("/applications", applicationHandler.RecentApplications)
		api.GET("/applications/:application_id", applicationHandler.GetApplication)
		api.PUT("/applications/:application_id", applicationHandler.UpdateApplication)
		api.GET("/users/:user_id/applications", applicationHandler.ApplicationsByUser)
		api.GET("/users/:user_id/applications/status-counts", applicationHandler.CountByStatus)
		api.GET("/campaigns/:campaign_id/applications", applicationHandler.ApplicationsByCampaign)

		// Analytics Routes
		api.GET("/users/:user_id/analytics", analyticsHandler.UserAnalytics)
		api.GET("/users/:user_id/dashboard", analyticsHandler.Dashboard)

		// AI Routes
		api.GET("/users/:user_id/ai/preferences", aiHandler.GetPreferences)
		api.POST("/users/:user_id/ai/preferences", aiHandler.SetPreferences)
		api.POST("/users/:user_id/ai/generate-cover-letter", aiHandler.GenerateCoverLetter)
		api.POST("/users/:user_id/ai/generate-resume-summary", aiHandler.GenerateResumeSummary)
		api.POST("/users/:user_id/ai/generate-linkedin-message", aiHandler.GenerateOutreachMessage)
		api.GET("/users/:user_id/ai/history", aiHandler.History)

		// LinkedIn Routes
		api.POST("/users/:user_id/linkedin/search-jobs", linkedinHandler.SearchJobs)
		api.POST("/users/:user_id/linkedin/apply", linkedinHandler.Apply)
		api.GET("/linkedin/rate-limit", linkedinHandler.RateLimit)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Server starting on port " + port + "...")
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}

// registerValidations adds the yearmonth rule used by experience dates
// (YYYY-MM, or "present" for a current role).
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("yearmonth", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value == "present" || yearMonthRe.MatchString(value)
		})
	}
}

func expireInterval() time.Duration {
	return time.Duration(envInt("EXPIRE_INTERVAL_SECONDS", 300)) * time.Second
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
