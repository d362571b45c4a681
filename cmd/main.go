package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hqdang/Polliwog/config"
	"github.com/hqdang/Polliwog/database"
	"github.com/hqdang/Polliwog/internal/controller"
	adminctrl "github.com/hqdang/Polliwog/internal/controller/admin"
	userctrl "github.com/hqdang/Polliwog/internal/controller/user"
	"github.com/hqdang/Polliwog/internal/logger"
	"github.com/hqdang/Polliwog/internal/middleware"
	"github.com/hqdang/Polliwog/internal/model"
	"github.com/hqdang/Polliwog/internal/repository"
	"github.com/hqdang/Polliwog/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Polliwog Survey API
// @version 1.0
// @description Multi-tenant survey backend with versioned answer regeneration and an OpenAI chat proxy.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewRoleRepository,
			repository.NewTokenRepository,
			repository.NewProjectRepository,
			repository.NewTitleRepository,
			repository.NewQuestionGroupRepository,
			repository.NewQuestionRepository,
			repository.NewOptionRepository,
			repository.NewAnswerRepository,
			repository.NewAnswerHistoryRepository,
			repository.NewLlmHistoryRepository,
		),

		// Services Layer
		fx.Provide(
			func(db *gorm.DB) service.Transactor { return db },
			service.NewLogMailer,
			service.NewSystemPromptGenerator,
			service.NewAuthService,
			service.NewProjectService,
			service.NewCatalogService,
			service.NewAnswerService,
			service.NewAnswerRegenerationService,
			service.NewChatService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewAuthController,
			controller.NewChatController,
			userctrl.NewProjectController,
			userctrl.NewAnswerController,
			adminctrl.NewCatalogController,
			adminctrl.NewProjectAdminController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the route table and manages the HTTP
// server's lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authService service.AuthService,
	authCtrl *controller.AuthController,
	chatCtrl *controller.ChatController,
	projectCtrl *userctrl.ProjectController,
	answerCtrl *userctrl.AnswerController,
	catalogCtrl *adminctrl.CatalogController,
	projectAdminCtrl *adminctrl.ProjectAdminController,
) {
	apiV1 := router.Group("/api/v1")

	auth := apiV1.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/verify-email", authCtrl.VerifyEmail)
		auth.POST("/login", authCtrl.Login)
		auth.POST("/verify-otp", authCtrl.VerifyLoginOtp)
		auth.POST("/refresh", authCtrl.Refresh)
		auth.POST("/forgot-password", authCtrl.ForgotPassword)
		auth.POST("/reset-password", authCtrl.ResetPassword)
	}

	authed := apiV1.Group("")
	authed.Use(middleware.Auth(authService))
	{
		projects := authed.Group("/projects")
		projects.POST("", projectCtrl.CreateProject)
		projects.GET("", projectCtrl.ListProjects)
		projects.GET("/:id", projectCtrl.GetProject)
		projects.PUT("/:id", projectCtrl.UpdateProject)
		projects.DELETE("/:id", projectCtrl.DeleteProject)

		answers := authed.Group("/answers")
		answers.POST("/submit", answerCtrl.SubmitAnswer)
		answers.PUT("/update", answerCtrl.UpdateAnswer)
		answers.POST("/bulk-submit", answerCtrl.BulkSubmitAnswers)
		answers.POST("/regenerate", answerCtrl.RegenerateAnswers)

		authed.POST("/llm-history", answerCtrl.SaveLlmHistory)
		authed.GET("/llm-history", answerCtrl.ListLlmHistory)

		authed.GET("/titles/:title_id/answers", answerCtrl.ListTitleAnswers)

		authed.POST("/chat/completions", chatCtrl.StreamCompletion)
	}

	admin := apiV1.Group("/admin")
	admin.Use(middleware.Auth(authService), middleware.RequireAdmin())
	{
		admin.POST("/titles", catalogCtrl.CreateTitle)
		admin.GET("/titles", catalogCtrl.ListTitles)
		admin.GET("/titles/:title_id/questions", catalogCtrl.ListTitleQuestions)
		admin.POST("/question-groups", catalogCtrl.CreateQuestionGroup)
		admin.POST("/questions", catalogCtrl.CreateQuestion)
		admin.GET("/questions", catalogCtrl.ListQuestions)
		admin.DELETE("/questions/:id", catalogCtrl.DeleteQuestion)
		admin.PUT("/catalog/text", catalogCtrl.UpdateText)
		admin.POST("/options", catalogCtrl.AddOption)
		admin.DELETE("/options/:id", catalogCtrl.DeleteOption)

		admin.GET("/users", projectAdminCtrl.ListUsers)
		admin.GET("/users/:user_id/projects", projectAdminCtrl.ListUserProjects)
		admin.GET("/projects/:id", projectAdminCtrl.GetProject)
		admin.PUT("/projects/:id", projectAdminCtrl.UpdateProject)
		admin.DELETE("/projects/:id", projectAdminCtrl.DeleteProject)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Polliwog API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Token{},
		&model.Project{},
		&model.Title{},
		&model.QuestionGroup{},
		&model.Question{},
		&model.Option{},
		&model.Answer{},
		&model.AnswerHistory{},
		&model.LlmHistory{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}

	if err := seedRoles(db); err != nil {
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

func seedRoles(db *gorm.DB) error {
	for _, name := range []string{model.RoleUser, model.RoleAdmin} {
		var role model.Role
		err := db.Where("name = ?", name).First(&role).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&model.Role{Name: name}).Error; err != nil {
			log.Error().Err(err).Str("role", name).Msg("Failed to seed role")
			return err
		}
	}
	return nil
}
