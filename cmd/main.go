package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Mrvatsan/APTITUDE-AI/internal/config"
	"github.com/Mrvatsan/APTITUDE-AI/internal/db"
	"github.com/Mrvatsan/APTITUDE-AI/internal/event"
	"github.com/Mrvatsan/APTITUDE-AI/internal/generator"
	"github.com/Mrvatsan/APTITUDE-AI/internal/handlers"
	"github.com/Mrvatsan/APTITUDE-AI/internal/mailer"
	"github.com/Mrvatsan/APTITUDE-AI/internal/middleware"
	"github.com/Mrvatsan/APTITUDE-AI/internal/repository"
	"github.com/Mrvatsan/APTITUDE-AI/internal/service"
)

func main() {
	cfg := config.ServiceConfig
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	db.InitMongo(cfg.MongoURI)
	defer db.DisconnectMongo()
	database := db.Client.Database(cfg.MongoDatabase)

	redisClient := db.InitRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	var publisher *event.EventPublisher
	if cfg.RabbitURL != "" && cfg.RabbitExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, platform events will not be published")
	}

	// event.EventPublisher is only an EventSink when configured; a typed nil
	// would dodge the services' nil checks.
	var sink service.EventSink
	if publisher != nil {
		sink = publisher
	}

	userRepo := repository.NewUserRepository(database)
	sessionRepo := repository.NewSessionRepository(database)
	otpRepo := repository.NewOTPRepository(redisClient)

	mail := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)
	gen := generator.New(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeneratorTimeout)

	userService := service.NewUserService(userRepo, otpRepo, mail, sink)
	sessionService := service.NewSessionService(service.NewMemorySessionStore(), gen, userService, sessionRepo, sink)

	authHandler := handlers.NewAuthHandler(userService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	milestoneHandler := handlers.NewMilestoneHandler()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FEAddress},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/login/step1", authHandler.LoginStep1)
		auth.POST("/login/step2", authHandler.LoginStep2)
		auth.GET("/profile", middleware.RequireAuth(), authHandler.Profile)
		auth.POST("/update-xp", middleware.RequireAuth(), authHandler.UpdateXP)
		auth.POST("/update-profile", middleware.RequireAuth(), authHandler.UpdateProfile)
	}

	milestones := r.Group("/api/milestones")
	{
		milestones.GET("/", milestoneHandler.List)
		milestones.GET("/topics", milestoneHandler.Topics)
		milestones.GET("/topic/:topicId", milestoneHandler.Topic)
	}

	session := r.Group("/api/session", middleware.RequireAuth())
	{
		session.POST("/start", sessionHandler.Start)
		session.GET("/question/:sessionId/:index", sessionHandler.Question)
		session.POST("/answer", sessionHandler.Answer)
		session.GET("/result/:sessionId", sessionHandler.Result)
		session.GET("/history", sessionHandler.History)
	}

	log.Printf("[Server] Listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
