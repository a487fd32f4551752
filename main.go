package main

import (
	"log"
	"net/http"
	"time"

	"inkpress/config"
	"inkpress/handlers"
	"inkpress/middleware"
	"inkpress/models"
	"inkpress/repositories"
	"inkpress/services"
	"inkpress/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var (
	articlesSubmitted *prometheus.CounterVec
	articlesDecided   *prometheus.CounterVec
	pendingBacklog    prometheus.Gauge
)

func init() {
	articlesSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_submitted_total",
			Help: "Total number of articles entered into the moderation queue.",
		},
		[]string{"author_id"},
	)
	articlesDecided = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_decided_total",
			Help: "Total number of moderation decisions, by outcome.",
		},
		[]string{"decision"},
	)
	pendingBacklog = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "articles_pending_backlog",
			Help: "Current number of articles awaiting a moderation decision.",
		},
	)
	prometheus.MustRegister(articlesSubmitted, articlesDecided, pendingBacklog)
}

func main() {
	logging, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Config load error", zap.Error(err))
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		logging.Fatal("Failed to connect to database", zap.Error(err))
	}
	logging.Info("Connected to article store")

	// Repositories
	articleRepo := repositories.NewArticleRepository(db)

	// Services
	validator := services.NewValidator(cfg.MinWordCount)
	workflow := services.NewWorkflow(articleRepo, articlesSubmitted, articlesDecided)
	moderation := services.NewModerationService(articleRepo)

	// Handlers
	articleHandler := handlers.NewArticleHandler(validator, workflow, moderation)
	adminHandler := handlers.NewAdminHandler(workflow, moderation)

	// Pending backlog gauge, refreshed on a schedule.
	c := cron.New()
	_, err = c.AddFunc(cfg.BacklogCronSchedule, func() {
		count, err := moderation.CountCreatedSince(models.StatePending, time.Time{})
		if err != nil {
			logging.Warn("Backlog refresh failed", zap.Error(err))
			return
		}
		pendingBacklog.Set(float64(count))
	})
	if err != nil {
		logging.Fatal("Invalid backlog cron schedule", zap.Error(err))
	}
	c.Start()
	defer c.Stop()

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	secret := []byte(cfg.JWTSecret)

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Authenticated author routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware(secret))
		{
			articles := protected.Group("/articles")
			{
				articles.POST("", articleHandler.SubmitArticle)
				articles.POST("/:id/upvote", articleHandler.Upvote)
				articles.POST("/:id/downvote", articleHandler.Downvote)
			}

			// Cover upload needs configured object storage.
			if cfg.S3Endpoint != "" {
				covers, err := storage.NewCoverStore(cfg)
				if err != nil {
					logging.Fatal("Failed to init cover storage", zap.Error(err))
				}
				uploadHandler := handlers.NewUploadHandler(covers)
				protected.POST("/uploads/cover", uploadHandler.UploadCover)
			} else {
				logging.Info("Cover storage not configured, upload route disabled")
			}

			// Moderator dashboard
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireModerator())
			{
				admin.GET("/articles/pending", adminHandler.GetPendingArticles)
				admin.PUT("/articles/:id/decision", adminHandler.DecideArticle)
				admin.GET("/stats", adminHandler.GetStats)
			}
		}

		// Public routes (published only)
		public := v1.Group("/public")
		{
			public.GET("/articles", articleHandler.GetPublishedArticles)
			public.GET("/articles/:id", articleHandler.GetPublishedArticle)
		}
	}

	logging.Info("Server starting", zap.String("port", cfg.HTTPPort))
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, router))
}
