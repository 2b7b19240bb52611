package routes

import (
	"log"

	"github.com/dkueng01/team-rule-tracker/internal/api/handlers"
	"github.com/dkueng01/team-rule-tracker/internal/api/middleware"
	"github.com/dkueng01/team-rule-tracker/internal/auth"
	"github.com/dkueng01/team-rule-tracker/internal/config"
	"github.com/dkueng01/team-rule-tracker/internal/repository"
	"github.com/dkueng01/team-rule-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	teamRepo := repository.NewTeamRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)
	ruleRepo := repository.NewRuleRepository(db)
	breakRepo := repository.NewRuleBreakRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	joinRepo := repository.NewJoinRequestRepository(db)

	// Initialize services
	runner := service.NewTxRunner(db)
	teamService := service.NewTeamService(runner, teamRepo, memberRepo, ruleRepo, breakRepo, paymentRepo, expenseRepo, joinRepo, validator)
	ruleService := service.NewRuleService(runner, memberRepo, ruleRepo, validator)
	ruleBreakService := service.NewRuleBreakService(runner, memberRepo, ruleRepo, breakRepo, validator)
	paymentService := service.NewPaymentService(runner, memberRepo, paymentRepo, validator)
	expenseService := service.NewExpenseService(runner, memberRepo, expenseRepo, validator)
	joinService := service.NewJoinService(runner, teamRepo, memberRepo, joinRepo, validator, cfg.TeamCapacity)

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: Failed to load auth config: %v", err)
		// Continue without auth if config fails to load
		authConfig = nil
	}

	var authHandler *auth.AuthHandler
	var authMiddleware *auth.AuthMiddleware
	if authConfig != nil {
		authService, err := auth.NewAuthService(authConfig)
		if err != nil {
			log.Printf("Warning: Failed to initialize auth service: %v", err)
		} else {
			authHandler = auth.NewAuthHandler(authService)
			authMiddleware = auth.NewAuthMiddleware(authService)
		}
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	teamHandler := handlers.NewTeamHandler(teamService)
	ruleHandler := handlers.NewRuleHandler(ruleService)
	ruleBreakHandler := handlers.NewRuleBreakHandler(ruleBreakService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	joinHandler := handlers.NewJoinHandler(joinService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	if authHandler != nil {
		authGroup := router.Group("/api/auth")
		{
			providerGroup := authGroup.Group("/:provider")
			{
				providerGroup.GET("/start", authHandler.Start)
				providerGroup.GET("/callback", authHandler.Callback)
			}
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.POST("/logout", authHandler.Logout)
		}
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")

	// Apply auth middleware to require authentication for all API endpoints
	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}

	{
		v1.GET("/my-teams", teamHandler.GetMyTeams)

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.POST("", teamHandler.CreateTeam)
			teams.POST("/join-request", joinHandler.RequestToJoin)
			teams.GET("/:teamId/membership", teamHandler.GetMembership)
			teams.GET("/:teamId/data", teamHandler.GetTeamData)
			teams.POST("/:teamId/join-code/rotate", teamHandler.RotateJoinCode)
			teams.PUT("/:teamId/join-enabled", teamHandler.SetJoinEnabled)

			// Join request routes
			teams.GET("/:teamId/join-requests", joinHandler.ListPendingRequests)
			teams.POST("/:teamId/join-requests/:requestId/approve", joinHandler.ApproveRequest)
			teams.POST("/:teamId/join-requests/:requestId/reject", joinHandler.RejectRequest)

			// Rule routes
			teams.POST("/:teamId/rules", ruleHandler.CreateRule)
			teams.PUT("/:teamId/rules/:ruleId", ruleHandler.UpdateRule)
			teams.DELETE("/:teamId/rules/:ruleId", ruleHandler.DeleteRule)

			// Rule break routes
			teams.POST("/:teamId/rule-breaks", ruleBreakHandler.CreateRuleBreak)
			teams.PUT("/:teamId/rule-breaks/:breakId", ruleBreakHandler.UpdateRuleBreak)
			teams.DELETE("/:teamId/rule-breaks/:breakId", ruleBreakHandler.DeleteRuleBreak)

			// Payment routes
			teams.POST("/:teamId/payments", paymentHandler.CreatePayment)
			teams.PUT("/:teamId/payments/:paymentId", paymentHandler.UpdatePayment)
			teams.DELETE("/:teamId/payments/:paymentId", paymentHandler.DeletePayment)

			// Expense routes
			teams.POST("/:teamId/expenses", expenseHandler.CreateExpense)
			teams.PUT("/:teamId/expenses/:expenseId", expenseHandler.UpdateExpense)
			teams.DELETE("/:teamId/expenses/:expenseId", expenseHandler.DeleteExpense)
		}
	}

	return router
}
