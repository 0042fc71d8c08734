package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/proroofers/crm-api/internal/auth"
	"github.com/proroofers/crm-api/internal/config"
	"github.com/proroofers/crm-api/internal/database"
	"github.com/proroofers/crm-api/internal/handlers"
	"github.com/proroofers/crm-api/internal/logs"
	"github.com/proroofers/crm-api/internal/middleware"
	"github.com/proroofers/crm-api/internal/repository"
	"github.com/proroofers/crm-api/internal/services"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logs.Logger.Fatalf("failed to load configuration: %v", err)
	}

	logs.Init(logs.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	gin.SetMode(cfg.Server.GinMode)

	if err := database.Connect(cfg); err != nil {
		logs.Logger.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.Migrate(); err != nil {
		logs.Logger.Fatalf("failed to run migrations: %v", err)
	}

	// pg_indexes lookup, postgres only
	if cfg.Database.Driver == "postgres" {
		if err := database.AddIndexes(database.GetDB()); err != nil {
			logs.Logger.Fatalf("failed to create indexes: %v", err)
		}
	}

	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret)

	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	authService := services.NewAuthService(userRepo, issuer)
	customerService := services.NewCustomerService(customerRepo)
	projectService := services.NewProjectService(projectRepo, customerRepo)
	taskService := services.NewTaskService(taskRepo, userRepo)

	authHandler := handlers.NewAuthHandler(authService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)
	userHandler := handlers.NewUserHandler(authService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "CRM API is running",
		})
	})

	// Auth routes (public)
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	requireAuth := middleware.RequireAuth(issuer)

	customers := r.Group("/customers")
	customers.Use(requireAuth)
	{
		customers.GET("", customerHandler.ListCustomers)
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.PUT("/:id", customerHandler.UpdateCustomer)
		customers.DELETE("/:id", customerHandler.DeleteCustomer)
	}

	projects := r.Group("/projects")
	projects.Use(requireAuth)
	{
		projects.GET("", projectHandler.ListProjects)
		projects.POST("", projectHandler.CreateProject)
		projects.GET("/customer/:customerId", projectHandler.ListProjectsByCustomer)
		projects.GET("/:id", projectHandler.GetProject)
		projects.PUT("/:id", projectHandler.UpdateProject)
		projects.DELETE("/:id", projectHandler.DeleteProject)
	}

	tasks := r.Group("/tasks")
	tasks.Use(requireAuth)
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PUT("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}

	users := r.Group("/users")
	users.Use(requireAuth)
	{
		users.GET("", userHandler.ListUsers)
	}

	addr := cfg.Server.Address + ":" + cfg.Server.Port
	logs.Logger.WithField("addr", addr).Info("server starting")
	if err := r.Run(addr); err != nil {
		logs.Logger.Fatalf("failed to start server: %v", err)
	}
}
