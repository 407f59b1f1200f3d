package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kambaz-backend/internal/config"
	"kambaz-backend/internal/db"
	"kambaz-backend/internal/event"
	"kambaz-backend/internal/handlers"
	"kambaz-backend/internal/repository"
	"kambaz-backend/internal/service"
	"kambaz-backend/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.New()

	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	mongoClient, err := db.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Fatal error connecting to MongoDB: %s", err)
	}
	defer db.Disconnect(mongoClient)
	database := mongoClient.Database(cfg.MongoDB)

	// Sessions live in Redis when configured, in process memory otherwise.
	var sessions session.Store
	if cfg.RedisAddr != "" {
		sessions = session.NewRedisStore(redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}))
	} else {
		log.Println("Redis not configured, sessions are held in memory")
		sessions = session.NewMemoryStore()
	}

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitURI != "" && cfg.RabbitExchange != "" {
		publisher, err = event.NewEventPublisher(cfg.RabbitURI, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, domain events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(handlers.SessionMiddleware(sessions))

	// Users
	userRepo := repository.NewUserRepository(database)
	userService := service.NewUserService(userRepo)
	userHandler := handlers.NewUserHandler(userService, sessions)

	// Enrollments
	enrollmentRepo := repository.NewEnrollmentRepository(database)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentService)

	// Courses
	courseRepo := repository.NewCourseRepository(database)
	courseService := service.NewCourseService(courseRepo, enrollmentRepo, userRepo)
	courseHandler := handlers.NewCourseHandler(courseService)

	// Modules
	moduleRepo := repository.NewModuleRepository(database)
	moduleService := service.NewModuleService(moduleRepo)
	moduleHandler := handlers.NewModuleHandler(moduleService)

	// Assignments
	assignmentRepo := repository.NewAssignmentRepository(database)
	assignmentService := service.NewAssignmentService(assignmentRepo)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)

	// Quizzes and attempts
	attemptRepo := repository.NewAttemptRepository(database)
	quizRepo := repository.NewQuizRepository(database)
	quizService := service.NewQuizService(quizRepo, attemptRepo)
	quizHandler := handlers.NewQuizHandler(quizService)
	attemptService := service.NewAttemptService(attemptRepo, quizRepo)
	attemptHandler := handlers.NewAttemptHandler(attemptService)

	router := &handlers.Router{
		User:       userHandler,
		Course:     courseHandler,
		Module:     moduleHandler,
		Assignment: assignmentHandler,
		Enrollment: enrollmentHandler,
		Quiz:       quizHandler,
		Attempt:    attemptHandler,
		Publisher:  publisher,
	}
	router.Register(r)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	<-shutdownChan
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}
	log.Println("Server exited, goodbye!")
}
